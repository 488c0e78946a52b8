package scenefile

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// StateMachine is a state machine instance used as a scene. Its entry
// state is the first state of the machine.
type StateMachine struct {
	ab     *Artboard
	m      *machineModel
	inputs []engine.Input

	state    int
	anim     *animator
	released bool
}

var _ engine.Scene = (*StateMachine)(nil)

func newStateMachine(ab *Artboard, m *machineModel) *StateMachine {
	sm := &StateMachine{ab: ab, m: m}
	for _, in := range m.inputs {
		switch in.kind {
		case kindBool:
			sm.inputs = append(sm.inputs, &boolInput{name: in.name, value: in.value != 0})
		case kindNumber:
			sm.inputs = append(sm.inputs, &numberInput{name: in.name, value: in.value})
		case kindTrigger:
			sm.inputs = append(sm.inputs, &triggerInput{name: in.name})
		}
	}
	sm.enter(0)
	return sm
}

func (sm *StateMachine) enter(state int) {
	sm.state = state
	sm.anim = nil
	if a := sm.m.states[state].animation; a >= 0 {
		sm.anim = newAnimator(sm.ab, sm.ab.m.animations[a])
	}
}

// Name returns the state machine name.
func (sm *StateMachine) Name() string        { return sm.m.name }
func (sm *StateMachine) Width() float32      { return sm.ab.m.width }
func (sm *StateMachine) Height() float32     { return sm.ab.m.height }
func (sm *StateMachine) IsTranslucent() bool { return sm.ab.translucent() }

// Loop reports LoopOneShot; state machines have no playback mode.
func (sm *StateMachine) Loop() rive.Loop { return rive.LoopOneShot }

// DurationSeconds reports -1; state machines run until stopped.
func (sm *StateMachine) DurationSeconds() float32 { return -1 }

// StateName returns the name of the current state.
func (sm *StateMachine) StateName() string { return sm.m.states[sm.state].name }

// AdvanceAndApply takes at most one transition, clears fired triggers and
// then advances the current state's animation. It reports whether the
// animation keeps going or the state changed.
func (sm *StateMachine) AdvanceAndApply(seconds float32) bool {
	if sm.released {
		return false
	}
	changed := sm.transition()
	for _, in := range sm.inputs {
		if t, ok := in.(*triggerInput); ok {
			t.fired = false
		}
	}
	if sm.anim == nil {
		return changed
	}
	more := sm.anim.advance(seconds)
	sm.anim.apply()
	return more || changed
}

func (sm *StateMachine) transition() bool {
	for _, anyFirst := range []bool{true, false} {
		for _, t := range sm.m.transitions {
			if (t.from == anyState) != anyFirst {
				continue
			}
			if !anyFirst && t.from != sm.state {
				continue
			}
			if t.to == sm.state && t.from == anyState {
				continue
			}
			if sm.satisfied(t.conditions) {
				sm.enter(t.to)
				return true
			}
		}
	}
	return false
}

func (sm *StateMachine) satisfied(conds []conditionModel) bool {
	for _, c := range conds {
		if !sm.holds(c) {
			return false
		}
	}
	return true
}

func (sm *StateMachine) holds(c conditionModel) bool {
	var v float32
	switch in := sm.inputs[c.input].(type) {
	case *triggerInput:
		return in.fired
	case *boolInput:
		if in.value {
			v = 1
		}
	case *numberInput:
		v = in.value
	}
	switch c.op {
	case opNe:
		return v != c.value
	case opLt:
		return v < c.value
	case opLte:
		return v <= c.value
	case opGt:
		return v > c.value
	case opGte:
		return v >= c.value
	default:
		return v == c.value
	}
}

// Draw draws the artboard in its current state.
func (sm *StateMachine) Draw(r engine.Renderer) {
	if sm.released {
		return
	}
	sm.ab.draw(r)
}

// PointerDown runs the listeners for a press at pos.
func (sm *StateMachine) PointerDown(pos rive.Vec2D) { sm.pointer(eventDown, pos) }
func (sm *StateMachine) PointerMove(pos rive.Vec2D) { sm.pointer(eventMove, pos) }
func (sm *StateMachine) PointerUp(pos rive.Vec2D)   { sm.pointer(eventUp, pos) }

func (sm *StateMachine) pointer(ev pointerEvent, pos rive.Vec2D) {
	if sm.released {
		return
	}
	for _, l := range sm.m.listeners {
		if l.event != ev || !sm.ab.shapes[l.shape].hit(pos) {
			continue
		}
		switch in := sm.inputs[l.input].(type) {
		case *boolInput:
			if l.action == actionToggle {
				in.value = !in.value
			} else {
				in.value = l.value != 0
			}
		case *numberInput:
			in.value = l.value
		case *triggerInput:
			in.fired = true
		}
	}
}

// InputCount returns the number of inputs.
func (sm *StateMachine) InputCount() int { return len(sm.inputs) }

// Input returns the input at index, or nil.
func (sm *StateMachine) Input(index int) engine.Input {
	if index < 0 || index >= len(sm.inputs) {
		return nil
	}
	return sm.inputs[index]
}

// InputNamed returns the named input, or nil.
func (sm *StateMachine) InputNamed(name string) engine.Input {
	for _, in := range sm.inputs {
		if in.Name() == name {
			return in
		}
	}
	return nil
}

// Release detaches the scene from its artboard. It is safe to call more
// than once.
func (sm *StateMachine) Release() { sm.released = true }

type boolInput struct {
	name  string
	value bool
}

func (in *boolInput) Name() string           { return in.name }
func (in *boolInput) Kind() engine.InputKind { return engine.InputBool }
func (in *boolInput) Value() bool            { return in.value }
func (in *boolInput) SetValue(v bool)        { in.value = v }

type numberInput struct {
	name  string
	value float32
}

func (in *numberInput) Name() string           { return in.name }
func (in *numberInput) Kind() engine.InputKind { return engine.InputNumber }
func (in *numberInput) Value() float32         { return in.value }
func (in *numberInput) SetValue(v float32)     { in.value = v }

type triggerInput struct {
	name  string
	fired bool
}

func (in *triggerInput) Name() string           { return in.name }
func (in *triggerInput) Kind() engine.InputKind { return engine.InputTrigger }
func (in *triggerInput) Fire()                  { in.fired = true }

var (
	_ engine.BoolInput    = (*boolInput)(nil)
	_ engine.NumberInput  = (*numberInput)(nil)
	_ engine.TriggerInput = (*triggerInput)(nil)
)
