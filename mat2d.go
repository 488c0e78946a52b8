package rive

import "math"

// Vec2D is a point or vector in 2D space.
type Vec2D struct {
	X, Y float32
}

// Vec returns a Vec2D.
func Vec(x, y float32) Vec2D { return Vec2D{X: x, Y: y} }

// Mat2D is a 2D affine transform in the engine's column layout:
//
//	| X1  X2  Tx |
//	| Y1  Y2  Ty |
//
// which maps x' = X1*x + X2*y + Tx and y' = Y1*x + Y2*y + Ty.
// Across the host boundary a Mat2D always travels as its six scalars in
// field order (see [Mat2D.Values]).
type Mat2D struct {
	X1, Y1 float32
	X2, Y2 float32
	Tx, Ty float32
}

// Identity returns the identity transform.
func Identity() Mat2D {
	return Mat2D{X1: 1, Y2: 1}
}

// Translate returns a translation transform.
func Translate(x, y float32) Mat2D {
	return Mat2D{X1: 1, Y2: 1, Tx: x, Ty: y}
}

// Scale returns a scale transform.
func Scale(sx, sy float32) Mat2D {
	return Mat2D{X1: sx, Y2: sy}
}

// Rotation returns a rotation transform (angle in radians).
func Rotation(radians float32) Mat2D {
	sin, cos := math.Sincos(float64(radians))
	return Mat2D{
		X1: float32(cos), Y1: float32(sin),
		X2: float32(-sin), Y2: float32(cos),
	}
}

// Mat2DFromValues builds a Mat2D from its six scalars in boundary order.
func Mat2DFromValues(x1, y1, x2, y2, tx, ty float32) Mat2D {
	return Mat2D{X1: x1, Y1: y1, X2: x2, Y2: y2, Tx: tx, Ty: ty}
}

// Values returns the six scalars in boundary order.
func (m Mat2D) Values() (x1, y1, x2, y2, tx, ty float32) {
	return m.X1, m.Y1, m.X2, m.Y2, m.Tx, m.Ty
}

// Mul returns m * o, the transform that applies o first and then m.
func (m Mat2D) Mul(o Mat2D) Mat2D {
	return Mat2D{
		X1: m.X1*o.X1 + m.X2*o.Y1,
		Y1: m.Y1*o.X1 + m.Y2*o.Y1,
		X2: m.X1*o.X2 + m.X2*o.Y2,
		Y2: m.Y1*o.X2 + m.Y2*o.Y2,
		Tx: m.X1*o.Tx + m.X2*o.Ty + m.Tx,
		Ty: m.Y1*o.Tx + m.Y2*o.Ty + m.Ty,
	}
}

// MulVec applies the transform to a point.
func (m Mat2D) MulVec(v Vec2D) Vec2D {
	return Vec2D{
		X: m.X1*v.X + m.X2*v.Y + m.Tx,
		Y: m.Y1*v.X + m.Y2*v.Y + m.Ty,
	}
}

// Determinant returns the determinant of the linear part.
func (m Mat2D) Determinant() float32 {
	return m.X1*m.Y2 - m.Y1*m.X2
}

// Invert returns the inverse transform. ok is false when m is singular, in
// which case the returned matrix is the identity.
func (m Mat2D) Invert() (inv Mat2D, ok bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(float64(det)) || math.IsInf(float64(det), 0) {
		return Identity(), false
	}
	d := 1 / det
	return Mat2D{
		X1: m.Y2 * d,
		Y1: -m.Y1 * d,
		X2: -m.X2 * d,
		Y2: m.X1 * d,
		Tx: (m.X2*m.Ty - m.Y2*m.Tx) * d,
		Ty: (m.Y1*m.Tx - m.X1*m.Ty) * d,
	}, true
}

// InvertOrIdentity returns the inverse, or the identity when m is singular.
func (m Mat2D) InvertOrIdentity() Mat2D {
	inv, _ := m.Invert()
	return inv
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat2D) IsIdentity() bool {
	return m == Identity()
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	MinX, MinY, MaxX, MaxY float32
}

// NewAABB returns the box with the given corners.
func NewAABB(minX, minY, maxX, maxY float32) AABB {
	return AABB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Width returns MaxX - MinX.
func (b AABB) Width() float32 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b AABB) Height() float32 { return b.MaxY - b.MinY }

// Contains reports whether p lies inside the box, edges included.
func (b AABB) Contains(p Vec2D) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Expand grows the box to include p.
func (b AABB) Expand(p Vec2D) AABB {
	return AABB{
		MinX: min(b.MinX, p.X),
		MinY: min(b.MinY, p.Y),
		MaxX: max(b.MaxX, p.X),
		MaxY: max(b.MaxY, p.Y),
	}
}
