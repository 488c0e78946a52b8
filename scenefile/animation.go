package scenefile

import (
	"math"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// endTolerance absorbs float error when stepping onto the last frame.
const endTolerance = 1e-6

// animator plays one linear animation on an artboard.
type animator struct {
	ab        *Artboard
	m         *animationModel
	time      float64 // seconds
	direction float64
}

func newAnimator(ab *Artboard, m *animationModel) *animator {
	return &animator{ab: ab, m: m, direction: 1}
}

// advance moves the playhead and reports whether the animation keeps going.
func (a *animator) advance(seconds float32) bool {
	end := a.m.seconds()
	a.time += float64(seconds) * a.direction

	switch a.m.loop {
	case rive.LoopLoop:
		if end <= 0 {
			a.time = 0
			return false
		}
		a.time = math.Mod(a.time, end)
		if a.time < 0 {
			a.time += end
		}
		return true

	case rive.LoopPingPong:
		if end <= 0 {
			a.time = 0
			return false
		}
		for a.time > end || a.time < 0 {
			if a.time > end {
				a.time = 2*end - a.time
			} else {
				a.time = -a.time
			}
			a.direction = -a.direction
		}
		return true

	default:
		if a.time >= end-endTolerance {
			a.time = end
			return false
		}
		if a.time < 0 {
			a.time = 0
		}
		return true
	}
}

// apply writes the interpolated key values at the playhead.
func (a *animator) apply() {
	frame := float32(a.time * float64(a.m.fps))
	for _, k := range a.m.keys {
		a.ab.set(k.shape, k.property, sample(k.frames, frame))
	}
	a.ab.update()
}

// sample interpolates linearly between the keyframes around frame.
func sample(frames []frameDoc, frame float32) float32 {
	if frame <= frames[0].Frame {
		return frames[0].Value
	}
	last := frames[len(frames)-1]
	if frame >= last.Frame {
		return last.Value
	}
	for i := 1; i < len(frames); i++ {
		next := frames[i]
		if frame > next.Frame {
			continue
		}
		prev := frames[i-1]
		span := next.Frame - prev.Frame
		if span <= 0 {
			return next.Value
		}
		t := (frame - prev.Frame) / span
		return prev.Value + (next.Value-prev.Value)*t
	}
	return last.Value
}

// Animation is a linear animation instance used as a scene.
type Animation struct {
	*animator
	released bool
}

var _ engine.Scene = (*Animation)(nil)

func newAnimation(ab *Artboard, m *animationModel) *Animation {
	return &Animation{animator: newAnimator(ab, m)}
}

// Name returns the animation name.
func (a *Animation) Name() string        { return a.m.name }
func (a *Animation) Width() float32      { return a.ab.m.width }
func (a *Animation) Height() float32     { return a.ab.m.height }
func (a *Animation) Loop() rive.Loop     { return a.m.loop }
func (a *Animation) IsTranslucent() bool { return a.ab.translucent() }

// DurationSeconds returns the work-area length in seconds.
func (a *Animation) DurationSeconds() float32 { return float32(a.m.seconds()) }

// Time returns the playhead position in seconds.
func (a *Animation) Time() float32 { return float32(a.time) }

// AdvanceAndApply moves the playhead by seconds, honouring the loop mode,
// and applies the keyframes. It reports whether the animation keeps playing.
func (a *Animation) AdvanceAndApply(seconds float32) bool {
	if a.released {
		return false
	}
	more := a.advance(seconds)
	a.apply()
	return more
}

// Draw draws the artboard in its animated state.
func (a *Animation) Draw(r engine.Renderer) {
	if a.released {
		return
	}
	a.ab.draw(r)
}

// Animations ignore pointer input.
func (a *Animation) PointerDown(rive.Vec2D) {}
func (a *Animation) PointerMove(rive.Vec2D) {}
func (a *Animation) PointerUp(rive.Vec2D)   {}

func (a *Animation) InputCount() int                { return 0 }
func (a *Animation) Input(int) engine.Input         { return nil }
func (a *Animation) InputNamed(string) engine.Input { return nil }

// Release detaches the scene from its artboard. It is safe to call more
// than once.
func (a *Animation) Release() { a.released = true }
