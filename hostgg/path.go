package hostgg

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/rive"
)

// path is a recorded outline. Points are local coordinates; they are mapped
// through the canvas transform by gg when the path is replayed.
type path struct {
	verbs  []rive.PathVerb
	points []rive.Vec2D
	rule   rive.FillRule
}

func newPath(points []float32, verbs []uint8, rule int32) *path {
	p := &path{rule: rive.FillRule(rule)}
	p.verbs = make([]rive.PathVerb, 0, len(verbs))
	p.points = make([]rive.Vec2D, 0, len(points)/2)
	next := 0
	for _, v := range verbs {
		verb := rive.PathVerb(v)
		n := verb.PointCount()
		if n < 0 || 2*(next+n) > len(points) {
			break
		}
		p.verbs = append(p.verbs, verb)
		for i := range n {
			p.points = append(p.points, rive.Vec(points[2*(next+i)], points[2*(next+i)+1]))
		}
		next += n
	}
	return p
}

func (p *path) rewind() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
}

func (p *path) add(verb rive.PathVerb, pts ...rive.Vec2D) {
	p.verbs = append(p.verbs, verb)
	p.points = append(p.points, pts...)
}

// addPath appends other with every point mapped through m. Adding a path to
// itself appends a transformed copy of its current contents.
func (p *path) addPath(other *path, m rive.Mat2D) {
	verbs := append([]rive.PathVerb(nil), other.verbs...)
	pts := make([]rive.Vec2D, len(other.points))
	for i, pt := range other.points {
		pts[i] = m.MulVec(pt)
	}
	p.verbs = append(p.verbs, verbs...)
	p.points = append(p.points, pts...)
}

// replay rebuilds p as the current path of dc.
func (p *path) replay(dc *gg.Context) {
	dc.ClearPath()
	if p.rule == rive.FillEvenOdd {
		dc.SetFillRule(gg.FillRuleEvenOdd)
	} else {
		dc.SetFillRule(gg.FillRuleNonZero)
	}
	pts := p.points
	for _, v := range p.verbs {
		switch v {
		case rive.VerbMove:
			dc.MoveTo(f64(pts[0].X), f64(pts[0].Y))
		case rive.VerbLine:
			dc.LineTo(f64(pts[0].X), f64(pts[0].Y))
		case rive.VerbQuad:
			dc.QuadraticTo(f64(pts[0].X), f64(pts[0].Y), f64(pts[1].X), f64(pts[1].Y))
		case rive.VerbCubic:
			dc.CubicTo(f64(pts[0].X), f64(pts[0].Y), f64(pts[1].X), f64(pts[1].Y),
				f64(pts[2].X), f64(pts[2].Y))
		case rive.VerbClose:
			dc.ClosePath()
		}
		pts = pts[v.PointCount():]
	}
}

func f64(v float32) float64 { return float64(v) }
