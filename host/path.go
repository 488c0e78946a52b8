package host

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// PathAdapter is an engine.RenderPath backed by a host path.
type PathAdapter struct {
	b    *Binding
	h    Handle
	refs refCount
}

var _ engine.RenderPath = (*PathAdapter)(nil)

// NewPathAdapter wraps the host path h. The adapter takes ownership of h.
func NewPathAdapter(b *Binding, h Handle) *PathAdapter {
	p := &PathAdapter{b: b, h: h}
	p.refs.init()
	return p
}

// Handle returns the wrapped handle.
func (p *PathAdapter) Handle() Handle { return p.h }

// Ref adds a reference.
func (p *PathAdapter) Ref() { p.refs.ref() }

// Release drops a reference. The last one calls the Release delegate.
func (p *PathAdapter) Release() {
	if !p.refs.release(CapabilityPath, p.h) || p.h == Null {
		return
	}
	d := p.b.pathTable()
	if d.Release == nil {
		nilDelegate(CapabilityPath, "Release")
	}
	rive.Logger().Debug("host: release path", "handle", uint64(p.h))
	d.Release(p.h)
}

// Rewind empties the path, keeping its fill rule.
func (p *PathAdapter) Rewind() {
	if p.h == Null {
		return
	}
	d := p.b.pathTable()
	if d.Rewind == nil {
		nilDelegate(CapabilityPath, "Rewind")
	}
	d.Rewind(p.h)
}

// SetFillRule sets the winding rule used when filling.
func (p *PathAdapter) SetFillRule(rule rive.FillRule) {
	if p.h == Null {
		return
	}
	d := p.b.pathTable()
	if d.FillRule == nil {
		nilDelegate(CapabilityPath, "FillRule")
	}
	d.FillRule(p.h, int32(rule))
}

// AddPath appends path transformed by m. A nil path is ignored; a path made
// by another package panics with ErrForeignObject.
func (p *PathAdapter) AddPath(path engine.RenderPath, m rive.Mat2D) {
	if p.h == Null || path == nil {
		return
	}
	other := pathHandle(path)
	d := p.b.pathTable()
	if d.AddPath == nil {
		nilDelegate(CapabilityPath, "AddPath")
	}
	d.AddPath(p.h, other, m.X1, m.Y1, m.X2, m.Y2, m.Tx, m.Ty)
}

// MoveTo starts a new contour at (x, y).
func (p *PathAdapter) MoveTo(x, y float32) {
	if p.h == Null {
		return
	}
	d := p.b.pathTable()
	if d.MoveTo == nil {
		nilDelegate(CapabilityPath, "MoveTo")
	}
	d.MoveTo(p.h, x, y)
}

// LineTo adds a line to (x, y).
func (p *PathAdapter) LineTo(x, y float32) {
	if p.h == Null {
		return
	}
	d := p.b.pathTable()
	if d.LineTo == nil {
		nilDelegate(CapabilityPath, "LineTo")
	}
	d.LineTo(p.h, x, y)
}

// QuadTo adds a quadratic curve with control point (cx, cy).
func (p *PathAdapter) QuadTo(cx, cy, x, y float32) {
	if p.h == Null {
		return
	}
	d := p.b.pathTable()
	if d.QuadTo == nil {
		nilDelegate(CapabilityPath, "QuadTo")
	}
	d.QuadTo(p.h, cx, cy, x, y)
}

// CubicTo adds a cubic curve with control points c1 and c2.
func (p *PathAdapter) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	if p.h == Null {
		return
	}
	d := p.b.pathTable()
	if d.CubicTo == nil {
		nilDelegate(CapabilityPath, "CubicTo")
	}
	d.CubicTo(p.h, c1x, c1y, c2x, c2y, x, y)
}

// Close closes the current contour.
func (p *PathAdapter) Close() {
	if p.h == Null {
		return
	}
	d := p.b.pathTable()
	if d.Close == nil {
		nilDelegate(CapabilityPath, "Close")
	}
	d.Close(p.h)
}

func pathHandle(path engine.RenderPath) Handle {
	a, ok := path.(*PathAdapter)
	if !ok || a == nil {
		panic(ErrForeignObject)
	}
	return a.h
}
