package hostgg

import (
	"crypto/sha256"

	"github.com/gogpu/gg"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/host"
	"github.com/gogpu/rive/internal/cache"
)

// Host implements the delegate tables on gg. It is safe for concurrent use
// except that a canvas must only be drawn from one goroutine at a time.
type Host struct {
	opts    options
	decoded *cache.LRU[[sha256.Size]byte, *picture] // nil when disabled

	factories host.Arena[struct{}]
	paths     host.Arena[*path]
	paints    host.Arena[*paint]
	images    host.Arena[*picture]
	canvases  host.Arena[*canvas]
}

// New creates a Host.
func New(opts ...Option) *Host {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	h := &Host{opts: o}
	if o.decodeCache > 0 {
		h.decoded = cache.New[[sha256.Size]byte, *picture](o.decodeCache)
	}
	return h
}

// Bind registers every delegate table of h on b.
func (h *Host) Bind(b *host.Binding) {
	b.RegisterPath(h.PathDelegates())
	b.RegisterImage(h.ImageDelegates())
	b.RegisterPaint(h.PaintDelegates())
	b.RegisterRenderer(h.RendererDelegates())
	b.RegisterFactory(h.FactoryDelegates())
}

// NewBinding returns a binding with every table of h registered.
func (h *Host) NewBinding() *host.Binding {
	b := host.NewBinding()
	h.Bind(b)
	return b
}

// NewFactory returns a factory handle. It is released through the factory
// table's Release delegate.
func (h *Host) NewFactory() host.Handle {
	return h.factories.Insert(struct{}{})
}

// NewCanvas registers dc as a render target. The caller keeps ownership of
// dc and must call ReleaseCanvas when done.
func (h *Host) NewCanvas(dc *gg.Context) host.Handle {
	return h.canvases.Insert(&canvas{dc: dc})
}

// ReleaseCanvas forgets a canvas handle. Unbalanced saves are restored.
func (h *Host) ReleaseCanvas(c host.Handle) {
	cv, ok := h.canvases.Remove(c)
	if !ok {
		return
	}
	for len(cv.saves) > 0 {
		cv.restore()
	}
}

// Live returns the number of factories, paths, paints and images that have
// not been released.
func (h *Host) Live() int {
	return h.factories.Len() + h.paths.Len() + h.paints.Len() + h.images.Len()
}

// decode returns the picture for data, sharing decoded pixels between
// handles. Pictures are never mutated after decoding.
func (h *Host) decode(data []byte) (*picture, error) {
	if h.decoded == nil {
		return decodePicture(data, h.opts.maxImageSide)
	}
	key := sha256.Sum256(data)
	if pic, ok := h.decoded.Get(key); ok {
		return pic, nil
	}
	pic, err := decodePicture(data, h.opts.maxImageSide)
	if err != nil {
		return nil, err
	}
	h.decoded.Add(key, pic)
	return pic, nil
}

func (h *Host) debug(msg string, args ...any) {
	h.opts.log().Debug(msg, args...)
}

func (h *Host) stale(table string, handle host.Handle) {
	h.debug("hostgg: unknown handle", "table", table, "handle", uint64(handle))
}

// PathDelegates returns h's path table.
func (h *Host) PathDelegates() host.PathDelegates {
	with := func(hd host.Handle, fn func(*path)) {
		if p, ok := h.paths.Get(hd); ok {
			fn(p)
			return
		}
		h.stale("path", hd)
	}
	return host.PathDelegates{
		Release: func(hd host.Handle) {
			if _, ok := h.paths.Remove(hd); !ok {
				h.stale("path", hd)
			}
		},
		Rewind: func(hd host.Handle) { with(hd, (*path).rewind) },
		AddPath: func(hd, other host.Handle, x1, y1, x2, y2, tx, ty float32) {
			src, ok := h.paths.Get(other)
			if !ok {
				h.stale("path", other)
				return
			}
			m := rive.Mat2DFromValues(x1, y1, x2, y2, tx, ty)
			with(hd, func(p *path) { p.addPath(src, m) })
		},
		FillRule: func(hd host.Handle, rule int32) {
			with(hd, func(p *path) { p.rule = rive.FillRule(rule) })
		},
		MoveTo: func(hd host.Handle, x, y float32) {
			with(hd, func(p *path) { p.add(rive.VerbMove, rive.Vec(x, y)) })
		},
		LineTo: func(hd host.Handle, x, y float32) {
			with(hd, func(p *path) { p.add(rive.VerbLine, rive.Vec(x, y)) })
		},
		QuadTo: func(hd host.Handle, cx, cy, x, y float32) {
			with(hd, func(p *path) { p.add(rive.VerbQuad, rive.Vec(cx, cy), rive.Vec(x, y)) })
		},
		CubicTo: func(hd host.Handle, c1x, c1y, c2x, c2y, x, y float32) {
			with(hd, func(p *path) {
				p.add(rive.VerbCubic, rive.Vec(c1x, c1y), rive.Vec(c2x, c2y), rive.Vec(x, y))
			})
		},
		Close: func(hd host.Handle) {
			with(hd, func(p *path) { p.add(rive.VerbClose) })
		},
	}
}

// ImageDelegates returns h's image table.
func (h *Host) ImageDelegates() host.ImageDelegates {
	size := func(hd host.Handle, dim func(*picture) int) int32 {
		if pic, ok := h.images.Get(hd); ok {
			return int32(dim(pic))
		}
		h.stale("image", hd)
		return 0
	}
	return host.ImageDelegates{
		Release: func(hd host.Handle) {
			if _, ok := h.images.Remove(hd); !ok {
				h.stale("image", hd)
			}
		},
		Width:  func(hd host.Handle) int32 { return size(hd, (*picture).width) },
		Height: func(hd host.Handle) int32 { return size(hd, (*picture).height) },
	}
}

// PaintDelegates returns h's paint table.
func (h *Host) PaintDelegates() host.PaintDelegates {
	with := func(hd host.Handle, fn func(*paint)) {
		if p, ok := h.paints.Get(hd); ok {
			fn(p)
			return
		}
		h.stale("paint", hd)
	}
	return host.PaintDelegates{
		Release: func(hd host.Handle) {
			if _, ok := h.paints.Remove(hd); !ok {
				h.stale("paint", hd)
			}
		},
		Style: func(hd host.Handle, style int32) {
			with(hd, func(p *paint) { p.style = rive.PaintStyle(style) })
		},
		Color: func(hd host.Handle, argb uint32) {
			with(hd, func(p *paint) { p.setColor(argb) })
		},
		LinearGradient: func(hd host.Handle, sx, sy, ex, ey float32, colors []uint32, stops []float32) {
			with(hd, func(p *paint) { p.setLinear(sx, sy, ex, ey, colors, stops) })
		},
		RadialGradient: func(hd host.Handle, cx, cy, radius float32, colors []uint32, stops []float32) {
			with(hd, func(p *paint) { p.setRadial(cx, cy, radius, colors, stops) })
		},
		Thickness: func(hd host.Handle, thickness float32) {
			with(hd, func(p *paint) { p.thickness = thickness })
		},
		Join: func(hd host.Handle, join int32) {
			with(hd, func(p *paint) { p.join = rive.StrokeJoin(join) })
		},
		Cap: func(hd host.Handle, cp int32) {
			with(hd, func(p *paint) { p.cap = rive.StrokeCap(cp) })
		},
		BlendMode: func(hd host.Handle, mode int32) {
			with(hd, func(p *paint) { p.blend = rive.BlendMode(mode) })
		},
	}
}

// RendererDelegates returns h's renderer table.
func (h *Host) RendererDelegates() host.RendererDelegates {
	with := func(hd host.Handle, fn func(*canvas)) {
		if c, ok := h.canvases.Get(hd); ok {
			fn(c)
			return
		}
		h.stale("canvas", hd)
	}
	return host.RendererDelegates{
		Save:    func(hd host.Handle) { with(hd, (*canvas).save) },
		Restore: func(hd host.Handle) { with(hd, (*canvas).restore) },
		Transform: func(hd host.Handle, x1, y1, x2, y2, tx, ty float32) {
			with(hd, func(c *canvas) { c.transform(x1, y1, x2, y2, tx, ty) })
		},
		DrawPath: func(hd, ph, pt host.Handle) {
			p, ok1 := h.paths.Get(ph)
			paint, ok2 := h.paints.Get(pt)
			if !ok1 || !ok2 {
				h.debug("hostgg: draw path with unknown handle", "path", uint64(ph), "paint", uint64(pt))
				return
			}
			with(hd, func(c *canvas) { h.drawPath(c, p, paint) })
		},
		ClipPath: func(hd, ph host.Handle) {
			p, ok := h.paths.Get(ph)
			if !ok {
				h.stale("path", ph)
				return
			}
			with(hd, func(c *canvas) { c.clip(p) })
		},
		DrawImage: func(hd, img host.Handle, mode int32, opacity float32) {
			pic, ok := h.images.Get(img)
			if !ok {
				h.stale("image", img)
				return
			}
			with(hd, func(c *canvas) { h.drawImage(c, pic, rive.BlendMode(mode), opacity) })
		},
		DrawImageMesh: func(hd, img host.Handle, vertices, uvs []float32, vertexCount int32,
			indices []uint16, indexCount int32, mode int32, opacity float32) {
			pic, ok := h.images.Get(img)
			if !ok {
				h.stale("image", img)
				return
			}
			n := min(int(vertexCount), len(vertices)/2, len(uvs)/2)
			idx := indices[:min(max(int(indexCount), 0), len(indices))]
			with(hd, func(c *canvas) {
				h.drawMesh(c, pic, vertices, uvs, n, idx, rive.BlendMode(mode), opacity)
			})
		},
	}
}

// FactoryDelegates returns h's factory table.
func (h *Host) FactoryDelegates() host.FactoryDelegates {
	check := func(hd host.Handle) bool {
		if _, ok := h.factories.Get(hd); ok {
			return true
		}
		h.stale("factory", hd)
		return false
	}
	return host.FactoryDelegates{
		Release: func(hd host.Handle) {
			if _, ok := h.factories.Remove(hd); !ok {
				h.stale("factory", hd)
			}
		},
		MakeRenderPath: func(hd host.Handle, points []float32, verbs []uint8, rule int32) host.Handle {
			if !check(hd) {
				return host.Null
			}
			return h.paths.Insert(newPath(points, verbs, rule))
		},
		MakeEmptyRenderPath: func(hd host.Handle) host.Handle {
			if !check(hd) {
				return host.Null
			}
			return h.paths.Insert(&path{})
		},
		MakeRenderPaint: func(hd host.Handle) host.Handle {
			if !check(hd) {
				return host.Null
			}
			return h.paints.Insert(newPaint())
		},
		DecodeImage: func(hd host.Handle, data []byte) host.Handle {
			if !check(hd) {
				return host.Null
			}
			pic, err := h.decode(data)
			if err != nil {
				h.debug("hostgg: image decode failed", "bytes", len(data), "err", err)
				return host.Null
			}
			return h.images.Insert(pic)
		},
	}
}
