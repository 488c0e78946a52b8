package host

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// RendererAdapter is an engine.Renderer drawing on a host canvas.
//
// The canvas is lent by the host for one draw. The adapter is not reference
// counted and never releases it.
type RendererAdapter struct {
	b *Binding
	h Handle
}

var _ engine.Renderer = (*RendererAdapter)(nil)

// NewRendererAdapter wraps the host canvas h.
func NewRendererAdapter(b *Binding, h Handle) *RendererAdapter {
	return &RendererAdapter{b: b, h: h}
}

// Handle returns the wrapped handle.
func (r *RendererAdapter) Handle() Handle { return r.h }

// Save pushes the canvas state.
func (r *RendererAdapter) Save() {
	if r.h == Null {
		return
	}
	d := r.b.rendererTable()
	if d.Save == nil {
		nilDelegate(CapabilityRenderer, "Save")
	}
	d.Save(r.h)
}

// Restore pops the state pushed by the matching Save.
func (r *RendererAdapter) Restore() {
	if r.h == Null {
		return
	}
	d := r.b.rendererTable()
	if d.Restore == nil {
		nilDelegate(CapabilityRenderer, "Restore")
	}
	d.Restore(r.h)
}

// Transform concatenates m onto the current matrix.
func (r *RendererAdapter) Transform(m rive.Mat2D) {
	if r.h == Null {
		return
	}
	d := r.b.rendererTable()
	if d.Transform == nil {
		nilDelegate(CapabilityRenderer, "Transform")
	}
	d.Transform(r.h, m.X1, m.Y1, m.X2, m.Y2, m.Tx, m.Ty)
}

// DrawPath fills or strokes path with paint. Nil arguments draw nothing.
func (r *RendererAdapter) DrawPath(path engine.RenderPath, paint engine.RenderPaint) {
	if r.h == Null || path == nil || paint == nil {
		return
	}
	ph, qh := pathHandle(path), paintHandle(paint)
	d := r.b.rendererTable()
	if d.DrawPath == nil {
		nilDelegate(CapabilityRenderer, "DrawPath")
	}
	d.DrawPath(r.h, ph, qh)
}

// ClipPath intersects the clip with path.
func (r *RendererAdapter) ClipPath(path engine.RenderPath) {
	if r.h == Null || path == nil {
		return
	}
	ph := pathHandle(path)
	d := r.b.rendererTable()
	if d.ClipPath == nil {
		nilDelegate(CapabilityRenderer, "ClipPath")
	}
	d.ClipPath(r.h, ph)
}

// DrawImage draws image at the origin of the current matrix.
func (r *RendererAdapter) DrawImage(image engine.RenderImage, mode rive.BlendMode, opacity float32) {
	if r.h == Null || image == nil {
		return
	}
	img := imageAdapter(image)
	if img.h == Null {
		return
	}
	d := r.b.rendererTable()
	if d.DrawImage == nil {
		nilDelegate(CapabilityRenderer, "DrawImage")
	}
	d.DrawImage(r.h, img.h, int32(mode), opacity)
}

// DrawImageMesh forwards a textured triangle mesh. The UVs are converted
// from normalised units to pixels of image before they are forwarded.
// It panics when vertices and uvs hold different or odd scalar counts.
func (r *RendererAdapter) DrawImageMesh(image engine.RenderImage, vertices, uvs, indices engine.RenderBuffer, mode rive.BlendMode, opacity float32) {
	if r.h == Null || image == nil {
		return
	}
	img := imageAdapter(image)
	verts := bufferData[float32](vertices)
	uv := bufferData[float32](uvs)
	idx := bufferData[uint16](indices)
	checkMesh(len(verts), len(uv))
	if img.h == Null {
		return
	}

	pixels := DenormalizeUVs(uv, float32(img.width), float32(img.height))
	d := r.b.rendererTable()
	if d.DrawImageMesh == nil {
		nilDelegate(CapabilityRenderer, "DrawImageMesh")
	}
	d.DrawImageMesh(r.h, img.h, verts, pixels, int32(len(verts)/2),
		idx, int32(len(idx)), int32(mode), opacity)
}
