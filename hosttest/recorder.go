// Package hosttest provides a recording host for tests of code that drives
// engine content through package host.
//
// A Recorder implements every delegate table. Each forwarded call is
// appended to an ordered log, each minted handle is tracked until its
// Release delegate runs, and misuse such as a double release or a call on
// a dead handle is collected as a protocol error instead of panicking.
package hosttest

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/rive/host"
)

// Kind identifies the type of a host object minted by a Recorder.
type Kind string

const (
	KindFactory Kind = "Factory"
	KindCanvas  Kind = "Canvas"
	KindPath    Kind = "Path"
	KindPaint   Kind = "Paint"
	KindImage   Kind = "Image"
)

// Call is one forwarded delegate call.
type Call struct {
	// Op is "<Capability>.<Entry>", for example "Path.MoveTo".
	Op     string
	Handle host.Handle
	Args   []any
}

// String formats the call as Op(args...).
func (c Call) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%d", c.Op, uint64(c.Handle))
	for _, a := range c.Args {
		fmt.Fprintf(&sb, ", %v", a)
	}
	sb.WriteByte(')')
	return sb.String()
}

type object struct {
	kind          Kind
	width, height int32
}

// Recorder is a fake host. The zero value is not usable; call New.
type Recorder struct {
	mu       sync.Mutex
	objects  host.Arena[object]
	calls    []Call
	released []host.Handle
	errs     []string

	// FailDecode makes every DecodeImage call report failure.
	FailDecode bool
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

// NewBinding returns a fresh binding with all of r's tables registered.
func (r *Recorder) NewBinding() *host.Binding {
	b := host.NewBinding()
	r.Bind(b)
	return b
}

// Bind registers r's tables on b.
func (r *Recorder) Bind(b *host.Binding) {
	b.RegisterPath(r.PathDelegates())
	b.RegisterImage(r.ImageDelegates())
	b.RegisterPaint(r.PaintDelegates())
	b.RegisterRenderer(r.RendererDelegates())
	b.RegisterFactory(r.FactoryDelegates())
}

// NewFactory mints a factory handle.
func (r *Recorder) NewFactory() host.Handle {
	return r.objects.Insert(object{kind: KindFactory})
}

// NewCanvas mints a canvas handle.
func (r *Recorder) NewCanvas() host.Handle {
	return r.objects.Insert(object{kind: KindCanvas})
}

// Calls returns a copy of the call log.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Ops returns the Op of every logged call.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]string, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// CallsTo returns the logged calls with the given Op.
func (r *Recorder) CallsTo(op string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of logged calls with the given Op.
func (r *Recorder) Count(op string) int {
	return len(r.CallsTo(op))
}

// ResetCalls clears the call log. Live handles are kept.
func (r *Recorder) ResetCalls() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Released returns the handles passed to Release delegates, in order.
func (r *Recorder) Released() []host.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.released)
}

// Live returns the number of handles that have not been released,
// including factories and canvases.
func (r *Recorder) Live() int {
	return r.objects.Len()
}

// LiveKind returns the number of live handles of kind k.
func (r *Recorder) LiveKind(k Kind) int {
	n := 0
	r.objects.Each(func(_ host.Handle, o object) bool {
		if o.kind == k {
			n++
		}
		return true
	})
	return n
}

// IsLive reports whether h was minted and not yet released.
func (r *Recorder) IsLive(h host.Handle) bool {
	_, ok := r.objects.Get(h)
	return ok
}

// KindOf returns the kind of a live handle, or "".
func (r *Recorder) KindOf(h host.Handle) Kind {
	o, _ := r.objects.Get(h)
	return o.kind
}

// Errors returns the protocol errors observed so far.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.errs)
}

func (r *Recorder) record(op string, h host.Handle, args ...any) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Op: op, Handle: h, Args: args})
	r.mu.Unlock()
}

func (r *Recorder) errorf(format string, args ...any) {
	r.mu.Lock()
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
	r.mu.Unlock()
}

// use logs a call on h and checks that h is a live object of kind k.
func (r *Recorder) use(k Kind, op string, h host.Handle, args ...any) {
	r.record(op, h, args...)
	o, ok := r.objects.Get(h)
	switch {
	case !ok:
		r.errorf("%s on dead handle %d", op, uint64(h))
	case o.kind != k:
		r.errorf("%s on %s handle %d", op, o.kind, uint64(h))
	}
}

func (r *Recorder) release(k Kind, op string, h host.Handle) {
	r.use(k, op, h)
	if _, ok := r.objects.Remove(h); !ok {
		return
	}
	r.mu.Lock()
	r.released = append(r.released, h)
	r.mu.Unlock()
}

func (r *Recorder) mint(o object) host.Handle {
	return r.objects.Insert(o)
}

// PathDelegates returns r's path table.
func (r *Recorder) PathDelegates() host.PathDelegates {
	return host.PathDelegates{
		Release: func(h host.Handle) { r.release(KindPath, "Path.Release", h) },
		Rewind:  func(h host.Handle) { r.use(KindPath, "Path.Rewind", h) },
		AddPath: func(h, other host.Handle, x1, y1, x2, y2, tx, ty float32) {
			r.use(KindPath, "Path.AddPath", h, other, x1, y1, x2, y2, tx, ty)
		},
		FillRule: func(h host.Handle, rule int32) { r.use(KindPath, "Path.FillRule", h, rule) },
		MoveTo:   func(h host.Handle, x, y float32) { r.use(KindPath, "Path.MoveTo", h, x, y) },
		LineTo:   func(h host.Handle, x, y float32) { r.use(KindPath, "Path.LineTo", h, x, y) },
		QuadTo: func(h host.Handle, cx, cy, x, y float32) {
			r.use(KindPath, "Path.QuadTo", h, cx, cy, x, y)
		},
		CubicTo: func(h host.Handle, c1x, c1y, c2x, c2y, x, y float32) {
			r.use(KindPath, "Path.CubicTo", h, c1x, c1y, c2x, c2y, x, y)
		},
		Close: func(h host.Handle) { r.use(KindPath, "Path.Close", h) },
	}
}

// ImageDelegates returns r's image table.
func (r *Recorder) ImageDelegates() host.ImageDelegates {
	return host.ImageDelegates{
		Release: func(h host.Handle) { r.release(KindImage, "Image.Release", h) },
		Width: func(h host.Handle) int32 {
			r.use(KindImage, "Image.Width", h)
			o, _ := r.objects.Get(h)
			return o.width
		},
		Height: func(h host.Handle) int32 {
			r.use(KindImage, "Image.Height", h)
			o, _ := r.objects.Get(h)
			return o.height
		},
	}
}

// PaintDelegates returns r's paint table.
func (r *Recorder) PaintDelegates() host.PaintDelegates {
	return host.PaintDelegates{
		Release: func(h host.Handle) { r.release(KindPaint, "Paint.Release", h) },
		Style:   func(h host.Handle, style int32) { r.use(KindPaint, "Paint.Style", h, style) },
		Color:   func(h host.Handle, argb uint32) { r.use(KindPaint, "Paint.Color", h, argb) },
		LinearGradient: func(h host.Handle, sx, sy, ex, ey float32, colors []uint32, stops []float32) {
			r.use(KindPaint, "Paint.LinearGradient", h, sx, sy, ex, ey, slices.Clone(colors), slices.Clone(stops))
		},
		RadialGradient: func(h host.Handle, cx, cy, radius float32, colors []uint32, stops []float32) {
			r.use(KindPaint, "Paint.RadialGradient", h, cx, cy, radius, slices.Clone(colors), slices.Clone(stops))
		},
		Thickness: func(h host.Handle, t float32) { r.use(KindPaint, "Paint.Thickness", h, t) },
		Join:      func(h host.Handle, join int32) { r.use(KindPaint, "Paint.Join", h, join) },
		Cap:       func(h host.Handle, c int32) { r.use(KindPaint, "Paint.Cap", h, c) },
		BlendMode: func(h host.Handle, mode int32) { r.use(KindPaint, "Paint.BlendMode", h, mode) },
	}
}

// RendererDelegates returns r's renderer table.
func (r *Recorder) RendererDelegates() host.RendererDelegates {
	return host.RendererDelegates{
		Save:    func(h host.Handle) { r.use(KindCanvas, "Renderer.Save", h) },
		Restore: func(h host.Handle) { r.use(KindCanvas, "Renderer.Restore", h) },
		Transform: func(h host.Handle, x1, y1, x2, y2, tx, ty float32) {
			r.use(KindCanvas, "Renderer.Transform", h, x1, y1, x2, y2, tx, ty)
		},
		DrawPath: func(h, path, paint host.Handle) {
			r.use(KindCanvas, "Renderer.DrawPath", h, path, paint)
			r.checkArg(KindPath, "Renderer.DrawPath", path)
			r.checkArg(KindPaint, "Renderer.DrawPath", paint)
		},
		ClipPath: func(h, path host.Handle) {
			r.use(KindCanvas, "Renderer.ClipPath", h, path)
			r.checkArg(KindPath, "Renderer.ClipPath", path)
		},
		DrawImage: func(h, img host.Handle, mode int32, opacity float32) {
			r.use(KindCanvas, "Renderer.DrawImage", h, img, mode, opacity)
			r.checkArg(KindImage, "Renderer.DrawImage", img)
		},
		DrawImageMesh: func(h, img host.Handle, vertices, uvs []float32, vertexCount int32,
			indices []uint16, indexCount int32, mode int32, opacity float32) {
			r.use(KindCanvas, "Renderer.DrawImageMesh", h, img, slices.Clone(vertices), slices.Clone(uvs),
				vertexCount, slices.Clone(indices), indexCount, mode, opacity)
			r.checkArg(KindImage, "Renderer.DrawImageMesh", img)
		},
	}
}

// FactoryDelegates returns r's factory table. Images are decoded with
// image.DecodeConfig, so only formats registered with package image are
// accepted.
func (r *Recorder) FactoryDelegates() host.FactoryDelegates {
	return host.FactoryDelegates{
		Release: func(h host.Handle) { r.release(KindFactory, "Factory.Release", h) },
		MakeRenderPath: func(h host.Handle, points []float32, verbs []uint8, rule int32) host.Handle {
			r.use(KindFactory, "Factory.MakeRenderPath", h, slices.Clone(points), slices.Clone(verbs), rule)
			return r.mint(object{kind: KindPath})
		},
		MakeEmptyRenderPath: func(h host.Handle) host.Handle {
			r.use(KindFactory, "Factory.MakeEmptyRenderPath", h)
			return r.mint(object{kind: KindPath})
		},
		MakeRenderPaint: func(h host.Handle) host.Handle {
			r.use(KindFactory, "Factory.MakeRenderPaint", h)
			return r.mint(object{kind: KindPaint})
		},
		DecodeImage: func(h host.Handle, data []byte) host.Handle {
			r.use(KindFactory, "Factory.DecodeImage", h, len(data))
			if r.FailDecode {
				return host.Null
			}
			cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
			if err != nil {
				return host.Null
			}
			return r.mint(object{kind: KindImage, width: int32(cfg.Width), height: int32(cfg.Height)})
		},
	}
}

func (r *Recorder) checkArg(k Kind, op string, h host.Handle) {
	o, ok := r.objects.Get(h)
	switch {
	case !ok:
		r.errorf("%s with dead %s handle %d", op, k, uint64(h))
	case o.kind != k:
		r.errorf("%s with %s handle %d where %s expected", op, o.kind, uint64(h), k)
	}
}
