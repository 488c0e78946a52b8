package host

import "github.com/gogpu/rive/engine"

// Shader is a colour source made by a FactoryAdapter. Apply forwards it to
// the paint h through the paint delegates of b.
type Shader interface {
	engine.RenderShader
	Apply(b *Binding, h Handle)
}

// LinearGradient blends Colors at Stops along the segment from
// (StartX, StartY) to (EndX, EndY).
type LinearGradient struct {
	StartX, StartY float32
	EndX, EndY     float32
	Colors         []uint32
	Stops          []float32
}

// Apply calls the LinearGradient paint delegate.
func (g *LinearGradient) Apply(b *Binding, h Handle) {
	d := b.paintTable()
	if d.LinearGradient == nil {
		nilDelegate(CapabilityPaint, "LinearGradient")
	}
	d.LinearGradient(h, g.StartX, g.StartY, g.EndX, g.EndY, g.Colors, g.Stops)
}

// RadialGradient blends Colors at Stops from the centre (CenterX, CenterY)
// out to Radius.
type RadialGradient struct {
	CenterX, CenterY float32
	Radius           float32
	Colors           []uint32
	Stops            []float32
}

// Apply calls the RadialGradient paint delegate.
func (g *RadialGradient) Apply(b *Binding, h Handle) {
	d := b.paintTable()
	if d.RadialGradient == nil {
		nilDelegate(CapabilityPaint, "RadialGradient")
	}
	d.RadialGradient(h, g.CenterX, g.CenterY, g.Radius, g.Colors, g.Stops)
}
