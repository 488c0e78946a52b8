package host

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// FactoryAdapter is an engine.Factory allocating host objects through a
// host factory. Every object it returns belongs to the same binding.
type FactoryAdapter struct {
	b    *Binding
	h    Handle
	refs refCount
}

var _ engine.Factory = (*FactoryAdapter)(nil)

// NewFactoryAdapter wraps the host factory h. The adapter takes ownership
// of h.
func NewFactoryAdapter(b *Binding, h Handle) *FactoryAdapter {
	f := &FactoryAdapter{b: b, h: h}
	f.refs.init()
	return f
}

// Handle returns the wrapped handle.
func (f *FactoryAdapter) Handle() Handle { return f.h }

// Binding returns the binding the factory forwards to.
func (f *FactoryAdapter) Binding() *Binding { return f.b }

// Ref adds a reference.
func (f *FactoryAdapter) Ref() { f.refs.ref() }

// Release drops a reference. The last one calls the Release delegate.
func (f *FactoryAdapter) Release() {
	if !f.refs.release(CapabilityFactory, f.h) || f.h == Null {
		return
	}
	d := f.b.factoryTable()
	if d.Release == nil {
		nilDelegate(CapabilityFactory, "Release")
	}
	rive.Logger().Debug("host: release factory", "handle", uint64(f.h))
	d.Release(f.h)
}

// MakeBufferU16 returns a buffer holding a copy of data.
func (f *FactoryAdapter) MakeBufferU16(data []uint16) engine.RenderBuffer {
	return NewBuffer(data)
}

// MakeBufferU32 returns a buffer holding a copy of data.
func (f *FactoryAdapter) MakeBufferU32(data []uint32) engine.RenderBuffer {
	return NewBuffer(data)
}

// MakeBufferF32 returns a buffer holding a copy of data.
func (f *FactoryAdapter) MakeBufferF32(data []float32) engine.RenderBuffer {
	return NewBuffer(data)
}

// MakeLinearGradient returns a *LinearGradient. No delegate is called until
// the gradient is set on a paint.
func (f *FactoryAdapter) MakeLinearGradient(sx, sy, ex, ey float32, colors []rive.ColorInt, stops []float32) engine.RenderShader {
	return &LinearGradient{
		StartX: sx, StartY: sy,
		EndX: ex, EndY: ey,
		Colors: argbWords(colors),
		Stops:  append([]float32(nil), stops...),
	}
}

// MakeRadialGradient returns a *RadialGradient. No delegate is called until
// the gradient is set on a paint.
func (f *FactoryAdapter) MakeRadialGradient(cx, cy, radius float32, colors []rive.ColorInt, stops []float32) engine.RenderShader {
	return &RadialGradient{
		CenterX: cx, CenterY: cy,
		Radius: radius,
		Colors: argbWords(colors),
		Stops:  append([]float32(nil), stops...),
	}
}

// MakeRenderPath passes points as x,y pairs and verbs as bytes to the host.
func (f *FactoryAdapter) MakeRenderPath(points []rive.Vec2D, verbs []rive.PathVerb, rule rive.FillRule) engine.RenderPath {
	if f.h == Null {
		return NewPathAdapter(f.b, Null)
	}
	pts := make([]float32, 0, 2*len(points))
	for _, p := range points {
		pts = append(pts, p.X, p.Y)
	}
	vs := make([]uint8, len(verbs))
	for i, v := range verbs {
		vs[i] = uint8(v)
	}

	d := f.b.factoryTable()
	if d.MakeRenderPath == nil {
		nilDelegate(CapabilityFactory, "MakeRenderPath")
	}
	return NewPathAdapter(f.b, d.MakeRenderPath(f.h, pts, vs, int32(rule)))
}

// MakeEmptyRenderPath asks the host for a new empty path.
func (f *FactoryAdapter) MakeEmptyRenderPath() engine.RenderPath {
	if f.h == Null {
		return NewPathAdapter(f.b, Null)
	}
	d := f.b.factoryTable()
	if d.MakeEmptyRenderPath == nil {
		nilDelegate(CapabilityFactory, "MakeEmptyRenderPath")
	}
	return NewPathAdapter(f.b, d.MakeEmptyRenderPath(f.h))
}

// MakeRenderPaint asks the host for a new paint with default settings.
func (f *FactoryAdapter) MakeRenderPaint() engine.RenderPaint {
	if f.h == Null {
		return NewPaintAdapter(f.b, Null)
	}
	d := f.b.factoryTable()
	if d.MakeRenderPaint == nil {
		nilDelegate(CapabilityFactory, "MakeRenderPaint")
	}
	return NewPaintAdapter(f.b, d.MakeRenderPaint(f.h))
}

// DecodeImage asks the host to decode data. It returns nil, and creates no
// adapter, when the host reports failure with a null handle.
func (f *FactoryAdapter) DecodeImage(data []byte) engine.RenderImage {
	if f.h == Null {
		return nil
	}
	d := f.b.factoryTable()
	if d.DecodeImage == nil {
		nilDelegate(CapabilityFactory, "DecodeImage")
	}
	h := d.DecodeImage(f.h, data)
	if h == Null {
		rive.Logger().Debug("host: image decode failed", "bytes", len(data))
		return nil
	}
	return NewImageAdapter(f.b, h)
}

func argbWords(colors []rive.ColorInt) []uint32 {
	out := make([]uint32, len(colors))
	for i, c := range colors {
		out[i] = uint32(c)
	}
	return out
}
