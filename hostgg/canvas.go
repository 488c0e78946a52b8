package hostgg

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/rive"
)

// canvas wraps a caller-owned context. clips counts the clip paths pushed
// since the outermost save level; saves remembers the count at every Save
// so Restore can drop the clips gg pops.
type canvas struct {
	dc    *gg.Context
	clips int
	saves []int
}

func (c *canvas) save() {
	c.saves = append(c.saves, c.clips)
	c.dc.Push()
}

func (c *canvas) restore() {
	if len(c.saves) == 0 {
		return
	}
	c.clips = c.saves[len(c.saves)-1]
	c.saves = c.saves[:len(c.saves)-1]
	c.dc.Pop()
}

func (c *canvas) transform(x1, y1, x2, y2, tx, ty float32) {
	c.dc.Transform(gg.Matrix{
		A: f64(x1), B: f64(x2), C: f64(tx),
		D: f64(y1), E: f64(y2), F: f64(ty),
	})
}

func (c *canvas) clip(p *path) {
	p.replay(c.dc)
	c.dc.Clip()
	c.clips++
}

func (h *Host) drawPath(c *canvas, p *path, pt *paint) {
	if pt.style == rive.StyleStroke && pt.thickness <= 0 {
		return
	}
	dc := c.dc
	end := h.beginBlend(dc, pt.blend)
	defer end()

	p.replay(dc)
	brush := pt.brush(dc.GetTransform())
	var err error
	if pt.style == rive.StyleStroke {
		dc.SetStrokeBrush(brush)
		dc.SetLineWidth(f64(pt.thickness))
		dc.SetLineCap(lineCap(pt.cap))
		dc.SetLineJoin(lineJoin(pt.join))
		err = dc.Stroke()
	} else {
		dc.SetFillBrush(brush)
		err = dc.Fill()
	}
	if err != nil {
		h.opts.log().Warn("hostgg: draw path failed", "style", pt.style, "err", err)
	}
}

// beginBlend opens a compositing layer for modes other than SrcOver and
// returns the function that closes it.
func (h *Host) beginBlend(dc *gg.Context, m rive.BlendMode) func() {
	mode, ok := blendMode(m)
	if !ok {
		h.opts.log().Debug("hostgg: blend mode unsupported, using SrcOver", "mode", m)
	}
	if mode == gg.BlendNormal {
		return func() {}
	}
	dc.PushLayer(mode, 1)
	return dc.PopLayer
}

// drawImage draws pic with its top-left corner at the local origin.
func (h *Host) drawImage(c *canvas, pic *picture, m rive.BlendMode, opacity float32) {
	if opacity <= 0 {
		return
	}
	dc := c.dc
	w, hgt := float64(pic.width()), float64(pic.height())
	t := dc.GetTransform()

	if c.clips == 0 && t.B == 0 && t.D == 0 && t.A > 0 && t.E > 0 {
		mode, _ := blendMode(m)
		dc.DrawImageEx(pic.buf, gg.DrawImageOptions{
			DstWidth:      w,
			DstHeight:     hgt,
			Interpolation: h.opts.interpolation,
			Opacity:       math.Min(f64(opacity), 1),
			BlendMode:     mode,
		})
		return
	}

	end := h.beginBlend(dc, m)
	defer end()
	inv := t.Invert()
	alpha := math.Min(f64(opacity), 1)
	dc.SetFillBrush(gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		l := inv.TransformPoint(gg.Pt(x, y))
		if l.X < 0 || l.Y < 0 || l.X > w || l.Y > hgt {
			return gg.RGBA{}
		}
		col := pic.sample(l.X, l.Y)
		col.A *= alpha
		return col
	}))
	dc.ClearPath()
	dc.SetFillRule(gg.FillRuleNonZero)
	dc.MoveTo(0, 0)
	dc.LineTo(w, 0)
	dc.LineTo(w, hgt)
	dc.LineTo(0, hgt)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		h.opts.log().Warn("hostgg: draw image failed", "err", err)
	}
}

// drawMesh fills the indexed triangles of a mesh with pic in a single
// pass, interpolating uvs (in image pixels) barycentrically. Shared edges
// are covered once, so adjacent triangles leave no seam.
func (h *Host) drawMesh(c *canvas, pic *picture, vertices, uvs []float32, vertexCount int,
	indices []uint16, m rive.BlendMode, opacity float32) {
	if opacity <= 0 {
		return
	}
	vertex := func(i uint16) gg.Point {
		return gg.Pt(f64(vertices[2*int(i)]), f64(vertices[2*int(i)+1]))
	}
	uv := func(i uint16) gg.Point {
		return gg.Pt(f64(uvs[2*int(i)]), f64(uvs[2*int(i)+1]))
	}

	var mesh []texturedTriangle
	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		if int(i0) >= vertexCount || int(i1) >= vertexCount || int(i2) >= vertexCount {
			h.opts.log().Debug("hostgg: mesh index out of range", "triangle", t/3)
			continue
		}
		a, b, cc := vertex(i0), vertex(i1), vertex(i2)
		ua, ub, uc := uv(i0), uv(i1), uv(i2)
		// Same winding for every triangle so overlaps never cancel.
		if b.Sub(a).Cross(cc.Sub(a)) < 0 {
			b, cc = cc, b
			ub, uc = uc, ub
		}
		tri, ok := newTriangle(a, b, cc)
		if !ok {
			continue
		}
		mesh = append(mesh, texturedTriangle{tri: tri, pts: [3]gg.Point{a, b, cc}, uv: [3]gg.Point{ua, ub, uc}})
	}
	if len(mesh) == 0 {
		return
	}

	dc := c.dc
	end := h.beginBlend(dc, m)
	defer end()

	inv := dc.GetTransform().Invert()
	alpha := math.Min(f64(opacity), 1)
	dc.SetFillBrush(gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		p := inv.TransformPoint(gg.Pt(x, y))
		tt := locate(mesh, p)
		wa, wb, wc := tt.tri.weights(p)
		col := pic.sample(wa*tt.uv[0].X+wb*tt.uv[1].X+wc*tt.uv[2].X,
			wa*tt.uv[0].Y+wb*tt.uv[1].Y+wc*tt.uv[2].Y)
		col.A *= alpha
		return col
	}))
	dc.ClearPath()
	dc.SetFillRule(gg.FillRuleNonZero)
	for _, tt := range mesh {
		dc.MoveTo(tt.pts[0].X, tt.pts[0].Y)
		dc.LineTo(tt.pts[1].X, tt.pts[1].Y)
		dc.LineTo(tt.pts[2].X, tt.pts[2].Y)
		dc.ClosePath()
	}
	if err := dc.Fill(); err != nil {
		h.opts.log().Warn("hostgg: draw mesh failed", "err", err)
	}
}

// texturedTriangle is one mesh triangle with its image coordinates.
type texturedTriangle struct {
	tri triangle
	pts [3]gg.Point
	uv  [3]gg.Point
}

// locate returns the triangle containing p, or the one p lies closest to
// when p falls on an antialiased edge outside every triangle.
func locate(mesh []texturedTriangle, p gg.Point) *texturedTriangle {
	best, score := 0, math.Inf(-1)
	for i := range mesh {
		wa, wb, wc := mesh[i].tri.raw(p)
		s := min(wa, wb, wc)
		if s >= 0 {
			return &mesh[i]
		}
		if s > score {
			best, score = i, s
		}
	}
	return &mesh[best]
}

// triangle precomputes the barycentric basis of a, b, c.
type triangle struct {
	a          gg.Point
	v0, v1     gg.Point
	d00, d01   float64
	d11, invDn float64
}

func newTriangle(a, b, c gg.Point) (triangle, bool) {
	t := triangle{a: a, v0: b.Sub(a), v1: c.Sub(a)}
	t.d00 = t.v0.Dot(t.v0)
	t.d01 = t.v0.Dot(t.v1)
	t.d11 = t.v1.Dot(t.v1)
	den := t.d00*t.d11 - t.d01*t.d01
	if math.Abs(den) < 1e-12 {
		return triangle{}, false
	}
	t.invDn = 1 / den
	return t, true
}

// raw returns the unclamped barycentric weights of p. All three are
// non-negative exactly when p lies inside the triangle.
func (t triangle) raw(p gg.Point) (wa, wb, wc float64) {
	v2 := p.Sub(t.a)
	d20 := v2.Dot(t.v0)
	d21 := v2.Dot(t.v1)
	wb = (t.d11*d20 - t.d01*d21) * t.invDn
	wc = (t.d00*d21 - t.d01*d20) * t.invDn
	return 1 - wb - wc, wb, wc
}

// weights returns the barycentric weights of p, clamped to the triangle so
// antialiased edge pixels sample the nearest interior texel.
func (t triangle) weights(p gg.Point) (wa, wb, wc float64) {
	_, wb, wc = t.raw(p)
	wb = min(max(wb, 0), 1)
	wc = min(max(wc, 0), 1)
	if s := wb + wc; s > 1 {
		wb /= s
		wc /= s
	}
	return 1 - wb - wc, wb, wc
}
