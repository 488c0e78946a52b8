package hostgg

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/rive"
)

type gradientKind int

const (
	gradientNone gradientKind = iota
	gradientLinear
	gradientRadial
)

// gradient keeps shader geometry in local coordinates. The gg brush is
// built at draw time, once the canvas transform is known.
type gradient struct {
	kind   gradientKind
	a, b   rive.Vec2D // start and end, or center and unused
	radius float32
	colors []rive.ColorInt
	stops  []float32
}

type paint struct {
	style     rive.PaintStyle
	color     rive.ColorInt
	gradient  gradient
	thickness float32
	join      rive.StrokeJoin
	cap       rive.StrokeCap
	blend     rive.BlendMode
}

func newPaint() *paint {
	return &paint{
		style:     rive.StyleFill,
		color:     rive.ARGB(0xff, 0, 0, 0),
		thickness: 1,
		blend:     rive.BlendSrcOver,
	}
}

func (p *paint) setLinear(sx, sy, ex, ey float32, colors []uint32, stops []float32) {
	p.gradient = gradient{
		kind:   gradientLinear,
		a:      rive.Vec(sx, sy),
		b:      rive.Vec(ex, ey),
		colors: toColors(colors),
		stops:  append([]float32(nil), stops...),
	}
}

func (p *paint) setRadial(cx, cy, radius float32, colors []uint32, stops []float32) {
	p.gradient = gradient{
		kind:   gradientRadial,
		a:      rive.Vec(cx, cy),
		radius: radius,
		colors: toColors(colors),
		stops:  append([]float32(nil), stops...),
	}
}

// setColor replaces any gradient with a solid colour.
func (p *paint) setColor(argb uint32) {
	p.color = rive.ColorInt(argb)
	p.gradient = gradient{}
}

func toColors(argb []uint32) []rive.ColorInt {
	out := make([]rive.ColorInt, len(argb))
	for i, c := range argb {
		out[i] = rive.ColorInt(c)
	}
	return out
}

func rgba(c rive.ColorInt) gg.RGBA {
	return gg.RGBA{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
		A: float64(c.Alpha()) / 255,
	}
}

// brush returns the gg brush for p under the device transform m.
func (p *paint) brush(m gg.Matrix) gg.Brush {
	g := p.gradient
	switch g.kind {
	case gradientLinear:
		s := m.TransformPoint(gg.Pt(f64(g.a.X), f64(g.a.Y)))
		e := m.TransformPoint(gg.Pt(f64(g.b.X), f64(g.b.Y)))
		lg := gg.NewLinearGradientBrush(s.X, s.Y, e.X, e.Y)
		for i, c := range g.colors {
			lg.AddColorStop(f64(g.stops[i]), rgba(c))
		}
		return lg
	case gradientRadial:
		c := m.TransformPoint(gg.Pt(f64(g.a.X), f64(g.a.Y)))
		rg := gg.NewRadialGradientBrush(c.X, c.Y, 0, f64(g.radius)*scaleFactor(m))
		for i, col := range g.colors {
			rg.AddColorStop(f64(g.stops[i]), rgba(col))
		}
		return rg
	}
	return gg.Solid(rgba(p.color))
}

func lineCap(c rive.StrokeCap) gg.LineCap {
	switch c {
	case rive.CapRound:
		return gg.LineCapRound
	case rive.CapSquare:
		return gg.LineCapSquare
	}
	return gg.LineCapButt
}

func lineJoin(j rive.StrokeJoin) gg.LineJoin {
	switch j {
	case rive.JoinRound:
		return gg.LineJoinRound
	case rive.JoinBevel:
		return gg.LineJoinBevel
	}
	return gg.LineJoinMiter
}

// blendMode maps a rive blend mode onto gg. ok is false for modes gg cannot
// composite; those fall back to normal blending.
func blendMode(m rive.BlendMode) (mode gg.BlendMode, ok bool) {
	switch m {
	case rive.BlendSrcOver:
		return gg.BlendNormal, true
	case rive.BlendMultiply:
		return gg.BlendMultiply, true
	case rive.BlendScreen:
		return gg.BlendScreen, true
	case rive.BlendOverlay:
		return gg.BlendOverlay, true
	}
	return gg.BlendNormal, false
}

// scaleFactor is the geometric mean of the axis scales of m.
func scaleFactor(m gg.Matrix) float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}
