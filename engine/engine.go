// Package engine declares the capabilities an animation engine consumes and
// the content objects it produces.
//
// The engine never draws or allocates host resources itself. It asks a
// [Factory] for paths, paints, images, shaders and buffers, and it draws a
// frame by issuing calls on a [Renderer]. Package host implements these
// interfaces by forwarding every call to host-registered delegates; package
// scenefile is a reference engine built only on these interfaces.
//
// # Ownership
//
// Paths, paints and images are reference counted through [Resource]. The
// creator holds the first reference. Every Ref must be paired with a
// Release; the last Release frees the host object. Shaders and buffers are
// plain values owned by whoever holds them.
//
// Content objects form a borrow chain: an [Artboard] borrows from the [File]
// that produced it and a [Scene] borrows from its [Artboard]. Release them
// in reverse order of creation.
package engine

import "github.com/gogpu/rive"

// Resource is a reference-counted object with an explicit lifetime.
type Resource interface {
	// Ref adds a reference.
	Ref()
	// Release drops a reference. The underlying object is freed when the
	// last reference is dropped.
	Release()
}

// RenderPath is a mutable vector path.
type RenderPath interface {
	Resource

	// Rewind clears all segments, keeping the fill rule.
	Rewind()
	SetFillRule(rule rive.FillRule)
	// AddPath appends path, transformed by m. The path must come from the
	// same Factory.
	AddPath(path RenderPath, m rive.Mat2D)
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubicTo(c1x, c1y, c2x, c2y, x, y float32)
	Close()
}

// RenderShader is an immutable shader made by a Factory. It is opaque to
// the engine and only meaningful to the RenderPaint of the same Factory.
type RenderShader interface{}

// RenderPaint describes how a path is filled or stroked.
type RenderPaint interface {
	Resource

	SetStyle(style rive.PaintStyle)
	SetColor(color rive.ColorInt)
	SetThickness(thickness float32)
	SetJoin(join rive.StrokeJoin)
	SetCap(cap rive.StrokeCap)
	SetBlendMode(mode rive.BlendMode)
	// SetShader replaces the paint's colour source. A nil shader is ignored.
	SetShader(shader RenderShader)
	// InvalidateStroke hints that stroke geometry derived from this paint
	// must be recomputed.
	InvalidateStroke()
}

// TileMode selects how an image shader samples outside the image.
type TileMode int32

const (
	TileClamp TileMode = iota
	TileRepeat
	TileMirror
	TileDecal
)

// RenderImage is a decoded image.
type RenderImage interface {
	Resource

	Width() int
	Height() int
	// MakeShader returns a shader sampling this image.
	MakeShader(tx, ty TileMode, local *rive.Mat2D) RenderShader
}

// RenderBuffer is an immutable block of mesh data made by a Factory.
type RenderBuffer interface {
	// Count returns the number of elements.
	Count() int
}

// Renderer receives the drawing calls for one frame.
type Renderer interface {
	Save()
	Restore()
	// Transform concatenates m onto the current transform.
	Transform(m rive.Mat2D)
	DrawPath(path RenderPath, paint RenderPaint)
	// ClipPath intersects the current clip with path.
	ClipPath(path RenderPath)
	DrawImage(image RenderImage, mode rive.BlendMode, opacity float32)
	// DrawImageMesh draws triangles textured with image. vertices and uvs
	// are float32 buffers of x,y pairs with equal counts; uvs are
	// normalised to [0,1]. indices is a uint16 buffer of triangle corners.
	DrawImageMesh(image RenderImage, vertices, uvs, indices RenderBuffer, mode rive.BlendMode, opacity float32)
}

// Factory allocates render objects.
type Factory interface {
	MakeBufferU16(data []uint16) RenderBuffer
	MakeBufferU32(data []uint32) RenderBuffer
	MakeBufferF32(data []float32) RenderBuffer

	// MakeLinearGradient returns a shader blending colors at stops along
	// the segment from (sx, sy) to (ex, ey). colors and stops have equal
	// length.
	MakeLinearGradient(sx, sy, ex, ey float32, colors []rive.ColorInt, stops []float32) RenderShader
	// MakeRadialGradient returns a shader blending colors at stops from
	// (cx, cy) out to radius.
	MakeRadialGradient(cx, cy, radius float32, colors []rive.ColorInt, stops []float32) RenderShader

	// MakeRenderPath builds a path from raw verbs; each verb consumes
	// PathVerb.PointCount points.
	MakeRenderPath(points []rive.Vec2D, verbs []rive.PathVerb, rule rive.FillRule) RenderPath
	MakeEmptyRenderPath() RenderPath
	MakeRenderPaint() RenderPaint

	// DecodeImage decodes encoded image bytes. It returns nil when the
	// bytes cannot be decoded.
	DecodeImage(data []byte) RenderImage
}
