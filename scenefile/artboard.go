package scenefile

import (
	"math"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// Artboard is an instance of an artboard. It owns the render paths and
// paints of its shapes and holds a reference on every image it draws.
type Artboard struct {
	file   *File
	m      *artboardModel
	frame  engine.RenderPath
	bg     engine.RenderPaint
	shapes []*shape

	released bool
}

var _ engine.Artboard = (*Artboard)(nil)

type shape struct {
	m *shapeModel

	x, y, rotation float32
	scaleX, scaleY float32
	opacity        float32

	path         engine.RenderPath
	fill, stroke engine.RenderPaint
	image        engine.RenderImage
	vertices     engine.RenderBuffer
	uvs          engine.RenderBuffer
	indices      engine.RenderBuffer

	paintOpacity float32 // opacity last written into the paints
}

func newArtboard(f *File, m *artboardModel) *Artboard {
	fac := f.factory
	ab := &Artboard{file: f, m: m}

	if m.clip || m.hasBackground {
		ab.frame = fac.MakeEmptyRenderPath()
		ab.frame.MoveTo(0, 0)
		ab.frame.LineTo(m.width, 0)
		ab.frame.LineTo(m.width, m.height)
		ab.frame.LineTo(0, m.height)
		ab.frame.Close()
	}
	if m.hasBackground {
		ab.bg = fac.MakeRenderPaint()
		ab.bg.SetStyle(rive.StyleFill)
		ab.bg.SetColor(m.background)
	}

	for _, sm := range m.shapes {
		s := &shape{
			m:            sm,
			x:            sm.x,
			y:            sm.y,
			rotation:     sm.rotation,
			scaleX:       sm.scaleX,
			scaleY:       sm.scaleY,
			opacity:      sm.opacity,
			paintOpacity: sm.opacity,
		}
		if sm.image >= 0 {
			s.image = f.images[sm.image]
			s.image.Ref()
			if sm.mesh != nil {
				s.vertices = fac.MakeBufferF32(sm.mesh.vertices)
				s.uvs = fac.MakeBufferF32(sm.mesh.uvs)
				s.indices = fac.MakeBufferU16(sm.mesh.indices)
			}
		} else {
			s.path = fac.MakeRenderPath(sm.points, sm.verbs, sm.fillRule)
			if sm.fill != nil {
				s.fill = fac.MakeRenderPaint()
				s.fill.SetStyle(rive.StyleFill)
				s.fill.SetBlendMode(sm.blend)
				applyPaint(fac, s.fill, sm.fill, sm.opacity)
			}
			if sm.stroke != nil {
				s.stroke = fac.MakeRenderPaint()
				s.stroke.SetStyle(rive.StyleStroke)
				s.stroke.SetThickness(sm.stroke.thickness)
				s.stroke.SetJoin(sm.stroke.join)
				s.stroke.SetCap(sm.stroke.cap)
				s.stroke.SetBlendMode(sm.blend)
				applyPaint(fac, s.stroke, sm.stroke, sm.opacity)
			}
		}
		ab.shapes = append(ab.shapes, s)
	}
	return ab
}

// applyPaint writes the colour source of pm, faded by opacity, into paint.
func applyPaint(fac engine.Factory, paint engine.RenderPaint, pm *paintModel, opacity float32) {
	g := pm.gradient
	if g == nil {
		paint.SetColor(pm.color.WithOpacity(opacity))
		return
	}
	colors := make([]rive.ColorInt, len(g.colors))
	for i, c := range g.colors {
		colors[i] = c.WithOpacity(opacity)
	}
	if g.radial {
		paint.SetShader(fac.MakeRadialGradient(g.x0, g.y0, g.radius, colors, g.stops))
	} else {
		paint.SetShader(fac.MakeLinearGradient(g.x0, g.y0, g.x1, g.y1, colors, g.stops))
	}
}

// Name returns the artboard name.
func (ab *Artboard) Name() string { return ab.m.name }

// Bounds returns the artboard rectangle at the origin.
func (ab *Artboard) Bounds() rive.AABB { return rive.NewAABB(0, 0, ab.m.width, ab.m.height) }

// AnimationCount returns the number of animations.
func (ab *Artboard) AnimationCount() int    { return len(ab.m.animations) }
func (ab *Artboard) StateMachineCount() int { return len(ab.m.machines) }

// AnimationName returns the name at index, or "" when out of range.
func (ab *Artboard) AnimationName(index int) string {
	if index < 0 || index >= len(ab.m.animations) {
		return ""
	}
	return ab.m.animations[index].name
}

// StateMachineName returns the name at index, or "" when out of range.
func (ab *Artboard) StateMachineName(index int) string {
	if index < 0 || index >= len(ab.m.machines) {
		return ""
	}
	return ab.m.machines[index].name
}

// AnimationAt instances the animation at index, or returns nil.
func (ab *Artboard) AnimationAt(index int) engine.Scene {
	if ab.released || index < 0 || index >= len(ab.m.animations) {
		return nil
	}
	return newAnimation(ab, ab.m.animations[index])
}

// AnimationNamed instances the named animation, or returns nil.
func (ab *Artboard) AnimationNamed(name string) engine.Scene {
	for i, a := range ab.m.animations {
		if a.name == name {
			return ab.AnimationAt(i)
		}
	}
	return nil
}

// StateMachineAt instances the state machine at index, or returns nil.
func (ab *Artboard) StateMachineAt(index int) engine.Scene {
	if ab.released || index < 0 || index >= len(ab.m.machines) {
		return nil
	}
	return newStateMachine(ab, ab.m.machines[index])
}

// StateMachineNamed instances the named state machine, or returns nil.
func (ab *Artboard) StateMachineNamed(name string) engine.Scene {
	for i, sm := range ab.m.machines {
		if sm.name == name {
			return ab.StateMachineAt(i)
		}
	}
	return nil
}

// Release releases the instance's paths and paints and drops its image
// references. It is safe to call more than once.
func (ab *Artboard) Release() {
	if ab.released {
		return
	}
	ab.released = true
	for _, s := range ab.shapes {
		for _, r := range []engine.Resource{s.path, s.fill, s.stroke, s.image} {
			if r != nil {
				r.Release()
			}
		}
	}
	if ab.frame != nil {
		ab.frame.Release()
	}
	if ab.bg != nil {
		ab.bg.Release()
	}
	ab.shapes, ab.frame, ab.bg = nil, nil, nil
}

func (ab *Artboard) translucent() bool {
	return !ab.m.hasBackground || ab.m.background.Alpha() != 0xff
}

// set writes one animated property.
func (ab *Artboard) set(shapeIndex int, p property, v float32) {
	s := ab.shapes[shapeIndex]
	switch p {
	case propX:
		s.x = v
	case propY:
		s.y = v
	case propRotation:
		s.rotation = v
	case propScaleX:
		s.scaleX = v
	case propScaleY:
		s.scaleY = v
	case propOpacity:
		s.opacity = max(0, min(1, v))
	}
}

// update pushes opacity changes into the paints.
func (ab *Artboard) update() {
	fac := ab.file.factory
	for _, s := range ab.shapes {
		if s.opacity == s.paintOpacity {
			continue
		}
		s.paintOpacity = s.opacity
		if s.fill != nil {
			applyPaint(fac, s.fill, s.m.fill, s.opacity)
		}
		if s.stroke != nil {
			applyPaint(fac, s.stroke, s.m.stroke, s.opacity)
		}
	}
}

func (s *shape) transform() rive.Mat2D {
	rad := float32(float64(s.rotation) * math.Pi / 180)
	return rive.Translate(s.x, s.y).Mul(rive.Rotation(rad)).Mul(rive.Scale(s.scaleX, s.scaleY))
}

// hit reports whether pos, in artboard space, falls inside the shape's
// transformed bounds.
func (s *shape) hit(pos rive.Vec2D) bool {
	inv, ok := s.transform().Invert()
	if !ok {
		return false
	}
	return s.m.bounds.Contains(inv.MulVec(pos))
}

func (ab *Artboard) draw(r engine.Renderer) {
	r.Save()
	if ab.frame != nil && ab.m.clip {
		r.ClipPath(ab.frame)
	}
	if ab.bg != nil {
		r.DrawPath(ab.frame, ab.bg)
	}
	for _, s := range ab.shapes {
		r.Save()
		r.Transform(s.transform())
		switch {
		case s.image != nil && s.vertices != nil:
			r.DrawImageMesh(s.image, s.vertices, s.uvs, s.indices, s.m.blend, s.opacity)
		case s.image != nil:
			r.DrawImage(s.image, s.m.blend, s.opacity)
		default:
			if s.fill != nil {
				r.DrawPath(s.path, s.fill)
			}
			if s.stroke != nil {
				r.DrawPath(s.path, s.stroke)
			}
		}
		r.Restore()
	}
	r.Restore()
}
