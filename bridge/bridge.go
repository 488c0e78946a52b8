// Package bridge exposes scene sessions through handle-keyed calls that
// take and return only primitive values, for hosts that cannot hold Go
// values directly.
//
// Sessions live in a handle arena. Calls on an unknown session handle
// behave like calls on an empty session: setters and loads report false,
// queries return zero values. Names are copied into caller-supplied
// buffers.
//
// A Bridge carries its own host binding. The package-level functions use
// a default Bridge over host.Default().
package bridge

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/host"
	"github.com/gogpu/rive/scene"
)

// Bridge is a set of sessions sharing one host binding.
type Bridge struct {
	binding  *host.Binding
	opts     []scene.Option
	sessions host.Arena[*scene.Session]
}

// New returns a bridge whose sessions allocate through b. opts are
// applied to every session.
func New(b *host.Binding, opts ...scene.Option) *Bridge {
	return &Bridge{binding: b, opts: opts}
}

// Binding returns the bridge's host binding.
func (br *Bridge) Binding() *host.Binding { return br.binding }

// Sessions returns the number of live sessions.
func (br *Bridge) Sessions() int { return br.sessions.Len() }

// RegisterPathDelegates installs the path table for this bridge.
func (br *Bridge) RegisterPathDelegates(d host.PathDelegates) { br.binding.RegisterPath(d) }

// RegisterImageDelegates installs the image table for this bridge.
func (br *Bridge) RegisterImageDelegates(d host.ImageDelegates) { br.binding.RegisterImage(d) }

// RegisterPaintDelegates installs the paint table for this bridge.
func (br *Bridge) RegisterPaintDelegates(d host.PaintDelegates) { br.binding.RegisterPaint(d) }

// RegisterRendererDelegates installs the renderer table for this bridge.
func (br *Bridge) RegisterRendererDelegates(d host.RendererDelegates) {
	br.binding.RegisterRenderer(d)
}

// RegisterFactoryDelegates installs the factory table for this bridge.
func (br *Bridge) RegisterFactoryDelegates(d host.FactoryDelegates) { br.binding.RegisterFactory(d) }

// SceneNew creates a session allocating through the host factory and
// returns its handle.
func (br *Bridge) SceneNew(factory host.Handle) host.Handle {
	return br.sessions.Insert(scene.New(br.binding, factory, br.opts...))
}

// SceneDelete closes the session and forgets its handle.
func (br *Bridge) SceneDelete(h host.Handle) {
	if s, ok := br.sessions.Remove(h); ok {
		s.Close()
	}
}

func (br *Bridge) session(h host.Handle) *scene.Session {
	s, _ := br.sessions.Get(h)
	return s
}

// SceneLoadFile imports the first length bytes of data.
func (br *Bridge) SceneLoadFile(h host.Handle, data []byte, length int) bool {
	s := br.session(h)
	if s == nil {
		return false
	}
	if length < 0 || length > len(data) {
		length = len(data)
	}
	return report("LoadFile", s.LoadFile(data[:length]))
}

// SceneLoadArtboard selects an artboard by name; "" selects the default one.
func (br *Bridge) SceneLoadArtboard(h host.Handle, name string) bool {
	s := br.session(h)
	return s != nil && report("LoadArtboard", s.LoadArtboard(name))
}

// SceneLoadStateMachine selects a state machine; "" selects the first one.
func (br *Bridge) SceneLoadStateMachine(h host.Handle, name string) bool {
	s := br.session(h)
	return s != nil && report("LoadStateMachine", s.LoadStateMachine(name))
}

// SceneLoadAnimation selects an animation; "" selects the first one.
func (br *Bridge) SceneLoadAnimation(h host.Handle, name string) bool {
	s := br.session(h)
	return s != nil && report("LoadAnimation", s.LoadAnimation(name))
}

// SceneSetBool sets a boolean input of the active state machine.
func (br *Bridge) SceneSetBool(h host.Handle, name string, v bool) bool {
	s := br.session(h)
	return s != nil && report("SetBool", s.SetBool(name, v))
}

// SceneSetNumber sets a number input of the active state machine.
func (br *Bridge) SceneSetNumber(h host.Handle, name string, v float32) bool {
	s := br.session(h)
	return s != nil && report("SetNumber", s.SetNumber(name, v))
}

// SceneFireTrigger fires a trigger input of the active state machine.
func (br *Bridge) SceneFireTrigger(h host.Handle, name string) bool {
	s := br.session(h)
	return s != nil && report("FireTrigger", s.FireTrigger(name))
}

// SceneWidth reports the artboard width, or 0 without an artboard.
func (br *Bridge) SceneWidth(h host.Handle) float32 {
	if s := br.session(h); s != nil {
		return s.Width()
	}
	return 0
}

// SceneHeight reports the artboard height, or 0 without an artboard.
func (br *Bridge) SceneHeight(h host.Handle) float32 {
	if s := br.session(h); s != nil {
		return s.Height()
	}
	return 0
}

// SceneDurationSeconds reports the sub-scene duration; state machines report -1.
func (br *Bridge) SceneDurationSeconds(h host.Handle) float32 {
	if s := br.session(h); s != nil {
		return s.DurationSeconds()
	}
	return 0
}

// SceneLoop returns the numeric rive.Loop value.
func (br *Bridge) SceneLoop(h host.Handle) int32 {
	if s := br.session(h); s != nil {
		return int32(s.Loop())
	}
	return int32(rive.LoopOneShot)
}

// SceneIsTranslucent reports whether the artboard can leave pixels uncovered.
func (br *Bridge) SceneIsTranslucent(h host.Handle) bool {
	s := br.session(h)
	return s != nil && s.IsTranslucent()
}

// SceneName copies the UTF-8 name of the active sub-scene into dst and
// returns the full length of the name in bytes. Calling it with a nil or
// short dst reports the size of buffer needed.
func (br *Bridge) SceneName(h host.Handle, dst []byte) int {
	s := br.session(h)
	if s == nil {
		return 0
	}
	name := s.Name()
	copy(dst, name)
	return len(name)
}

// SceneAdvanceAndApply advances the sub-scene by seconds.
func (br *Bridge) SceneAdvanceAndApply(h host.Handle, seconds float32) bool {
	s := br.session(h)
	return s != nil && s.AdvanceAndApply(seconds)
}

// SceneDraw draws the session onto the host canvas renderer.
func (br *Bridge) SceneDraw(h, renderer host.Handle) {
	if s := br.session(h); s != nil {
		s.Draw(renderer)
	}
}

// ScenePointerDown forwards a press in artboard coordinates.
func (br *Bridge) ScenePointerDown(h host.Handle, pos rive.Vec2D) {
	if s := br.session(h); s != nil {
		s.PointerDown(pos)
	}
}

// ScenePointerMove forwards a pointer move in artboard coordinates.
func (br *Bridge) ScenePointerMove(h host.Handle, pos rive.Vec2D) {
	if s := br.session(h); s != nil {
		s.PointerMove(pos)
	}
}

// ScenePointerUp forwards a release in artboard coordinates.
func (br *Bridge) ScenePointerUp(h host.Handle, pos rive.Vec2D) {
	if s := br.session(h); s != nil {
		s.PointerUp(pos)
	}
}

// Close deletes every session.
func (br *Bridge) Close() {
	br.sessions.Each(func(h host.Handle, _ *scene.Session) bool {
		br.SceneDelete(h)
		return true
	})
}

func report(op string, err error) bool {
	if err != nil {
		rive.Logger().Debug("bridge: call failed", "op", op, "err", err)
		return false
	}
	return true
}
