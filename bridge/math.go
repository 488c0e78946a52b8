package bridge

import "github.com/gogpu/rive"

// Mat2DMultiply returns a × b.
func Mat2DMultiply(a, b rive.Mat2D) rive.Mat2D { return a.Mul(b) }

// Mat2DMultiplyVec2D returns m applied to v.
func Mat2DMultiplyVec2D(m rive.Mat2D, v rive.Vec2D) rive.Vec2D { return m.MulVec(v) }

// Mat2DInvert returns the inverse of m. It reports false, with the
// identity matrix, when m is singular.
func Mat2DInvert(m rive.Mat2D) (rive.Mat2D, bool) { return m.Invert() }

// ComputeAlignment returns the transform placing content inside frame
// under fit, anchored at (alignX, alignY) in [-1, 1].
func ComputeAlignment(fit rive.Fit, alignX, alignY float32, frame, content rive.AABB) rive.Mat2D {
	return rive.ComputeAlignment(fit, rive.Alignment{X: alignX, Y: alignY}, frame, content)
}
