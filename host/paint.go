package host

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// PaintAdapter is an engine.RenderPaint backed by a host paint.
type PaintAdapter struct {
	b    *Binding
	h    Handle
	refs refCount
}

var _ engine.RenderPaint = (*PaintAdapter)(nil)

// NewPaintAdapter wraps the host paint h. The adapter takes ownership of h.
func NewPaintAdapter(b *Binding, h Handle) *PaintAdapter {
	p := &PaintAdapter{b: b, h: h}
	p.refs.init()
	return p
}

// Handle returns the wrapped handle.
func (p *PaintAdapter) Handle() Handle { return p.h }

// Ref adds a reference.
func (p *PaintAdapter) Ref() { p.refs.ref() }

// Release drops a reference. The last one calls the Release delegate.
func (p *PaintAdapter) Release() {
	if !p.refs.release(CapabilityPaint, p.h) || p.h == Null {
		return
	}
	d := p.b.paintTable()
	if d.Release == nil {
		nilDelegate(CapabilityPaint, "Release")
	}
	rive.Logger().Debug("host: release paint", "handle", uint64(p.h))
	d.Release(p.h)
}

// SetStyle selects fill or stroke.
func (p *PaintAdapter) SetStyle(style rive.PaintStyle) {
	if p.h == Null {
		return
	}
	d := p.b.paintTable()
	if d.Style == nil {
		nilDelegate(CapabilityPaint, "Style")
	}
	d.Style(p.h, int32(style))
}

// SetColor sets a solid ARGB colour.
func (p *PaintAdapter) SetColor(color rive.ColorInt) {
	if p.h == Null {
		return
	}
	d := p.b.paintTable()
	if d.Color == nil {
		nilDelegate(CapabilityPaint, "Color")
	}
	d.Color(p.h, uint32(color))
}

// SetThickness sets the stroke width.
func (p *PaintAdapter) SetThickness(thickness float32) {
	if p.h == Null {
		return
	}
	d := p.b.paintTable()
	if d.Thickness == nil {
		nilDelegate(CapabilityPaint, "Thickness")
	}
	d.Thickness(p.h, thickness)
}

// SetJoin sets the stroke join.
func (p *PaintAdapter) SetJoin(join rive.StrokeJoin) {
	if p.h == Null {
		return
	}
	d := p.b.paintTable()
	if d.Join == nil {
		nilDelegate(CapabilityPaint, "Join")
	}
	d.Join(p.h, int32(join))
}

// SetCap sets the stroke cap.
func (p *PaintAdapter) SetCap(cap rive.StrokeCap) {
	if p.h == Null {
		return
	}
	d := p.b.paintTable()
	if d.Cap == nil {
		nilDelegate(CapabilityPaint, "Cap")
	}
	d.Cap(p.h, int32(cap))
}

// SetBlendMode sets how the paint composites.
func (p *PaintAdapter) SetBlendMode(mode rive.BlendMode) {
	if p.h == Null {
		return
	}
	d := p.b.paintTable()
	if d.BlendMode == nil {
		nilDelegate(CapabilityPaint, "BlendMode")
	}
	d.BlendMode(p.h, int32(mode))
}

// SetShader applies a gradient made by a FactoryAdapter. A nil shader is
// ignored.
func (p *PaintAdapter) SetShader(shader engine.RenderShader) {
	if p.h == Null || shader == nil {
		return
	}
	s, ok := shader.(Shader)
	if !ok {
		panic(ErrForeignObject)
	}
	s.Apply(p.b, p.h)
}

// InvalidateStroke is a no-op. Hosts rebuild stroke geometry lazily.
func (p *PaintAdapter) InvalidateStroke() {}

func paintHandle(paint engine.RenderPaint) Handle {
	a, ok := paint.(*PaintAdapter)
	if !ok || a == nil {
		panic(ErrForeignObject)
	}
	return a.h
}
