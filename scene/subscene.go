package scene

import "github.com/gogpu/rive/engine"

// Kind tells which variant a SubScene holds.
type Kind int

const (
	KindNone Kind = iota
	KindStateMachine
	KindAnimation
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindStateMachine:
		return "StateMachine"
	case KindAnimation:
		return "Animation"
	}
	return "Unknown"
}

// SubScene is the active drivable content of a session: nothing, a state
// machine instance or an animation instance.
type SubScene struct {
	kind  Kind
	scene engine.Scene
}

// StateMachine wraps a state machine instance.
func StateMachine(sc engine.Scene) SubScene { return SubScene{kind: KindStateMachine, scene: sc} }

// Animation wraps an animation instance.
func Animation(sc engine.Scene) SubScene { return SubScene{kind: KindAnimation, scene: sc} }

// Kind returns the variant.
func (s SubScene) Kind() Kind { return s.kind }

// Scene returns the wrapped instance, or nil for KindNone.
func (s SubScene) Scene() engine.Scene { return s.scene }

// IsNone reports whether no content is active.
func (s SubScene) IsNone() bool { return s.kind == KindNone || s.scene == nil }

func (s SubScene) release() {
	if s.scene != nil {
		s.scene.Release()
	}
}
