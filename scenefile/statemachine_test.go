package scenefile_test

import (
	"testing"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
	"github.com/gogpu/rive/scenefile"
)

func openMachine(t *testing.T) (*fixture, *scenefile.StateMachine, func()) {
	t.Helper()
	fx := newFixture(t)
	f := fx.open(t, twoArtboards)
	ab := f.ArtboardNamed("B")
	sc := ab.StateMachineNamed("toggle")
	if sc == nil {
		t.Fatal("StateMachineNamed(toggle) = nil")
	}
	return fx, sc.(*scenefile.StateMachine), func() {
		sc.Release()
		ab.Release()
		f.Release()
	}
}

func TestStateMachineMetadata(t *testing.T) {
	_, sm, done := openMachine(t)
	defer done()

	if sm.Name() != "toggle" || sm.Width() != 200 || sm.Height() != 120 {
		t.Errorf("metadata = %q %vx%v", sm.Name(), sm.Width(), sm.Height())
	}
	if sm.Loop() != rive.LoopOneShot || sm.DurationSeconds() != -1 {
		t.Errorf("Loop, Duration = %v, %v, want OneShot, -1", sm.Loop(), sm.DurationSeconds())
	}
	if sm.InputCount() != 3 {
		t.Fatalf("InputCount() = %d, want 3", sm.InputCount())
	}
	kinds := []engine.InputKind{engine.InputBool, engine.InputNumber, engine.InputTrigger}
	for i, k := range kinds {
		if got := sm.Input(i).Kind(); got != k {
			t.Errorf("Input(%d).Kind() = %v, want %v", i, got, k)
		}
	}
	if sm.Input(3) != nil || sm.InputNamed("nope") != nil {
		t.Error("absent input lookup returned a value")
	}
	if got := sm.InputNamed("speed").(engine.NumberInput).Value(); got != 1 {
		t.Errorf("initial speed = %v, want 1", got)
	}
}

func TestStateMachineTransitions(t *testing.T) {
	_, sm, done := openMachine(t)
	defer done()

	if sm.AdvanceAndApply(0.1) {
		t.Error("idle state without animation reported activity")
	}
	if sm.StateName() != "idle" {
		t.Fatalf("state = %q, want idle", sm.StateName())
	}

	sm.InputNamed("on").(engine.BoolInput).SetValue(true)
	if !sm.AdvanceAndApply(0.1) {
		t.Error("transition step returned false")
	}
	if sm.StateName() != "sliding" {
		t.Fatalf("state = %q, want sliding", sm.StateName())
	}

	sm.InputNamed("kick").(engine.TriggerInput).Fire()
	sm.AdvanceAndApply(0.1)
	if sm.StateName() != "spinning" {
		t.Fatalf("state after trigger = %q, want spinning", sm.StateName())
	}
	// The trigger was consumed; the any-state transition does not repeat.
	sm.AdvanceAndApply(0.1)
	if sm.StateName() != "spinning" {
		t.Fatalf("state = %q, want spinning", sm.StateName())
	}

	sm.InputNamed("speed").(engine.NumberInput).SetValue(5)
	sm.AdvanceAndApply(0.1)
	if sm.StateName() != "idle" {
		t.Errorf("state after speed >= 5 = %q, want idle", sm.StateName())
	}
}

func TestStateMachineOneTransitionPerAdvance(t *testing.T) {
	_, sm, done := openMachine(t)
	defer done()

	sm.InputNamed("on").(engine.BoolInput).SetValue(true)
	sm.InputNamed("speed").(engine.NumberInput).SetValue(9)
	sm.AdvanceAndApply(0)
	if sm.StateName() != "sliding" {
		t.Errorf("state = %q, want sliding", sm.StateName())
	}
}

func TestStateMachineListeners(t *testing.T) {
	_, sm, done := openMachine(t)
	defer done()
	on := sm.InputNamed("on").(engine.BoolInput)
	speed := sm.InputNamed("speed").(engine.NumberInput)

	// box spans (10,20)-(50,60) in artboard space.
	sm.PointerDown(rive.Vec(100, 100))
	if on.Value() {
		t.Fatal("pointer outside the shape toggled the input")
	}
	sm.PointerDown(rive.Vec(30, 40))
	if !on.Value() {
		t.Fatal("pointer down on the shape did not toggle the input")
	}
	sm.PointerDown(rive.Vec(30, 40))
	if on.Value() {
		t.Fatal("second pointer down did not toggle back")
	}
	sm.PointerMove(rive.Vec(30, 40))
	sm.PointerUp(rive.Vec(11, 21))
	if speed.Value() != 7 {
		t.Errorf("speed = %v, want 7", speed.Value())
	}
}

func TestReleasedSceneIsInert(t *testing.T) {
	fx, sm, done := openMachine(t)
	defer done()
	sm.Release()

	fx.rec.ResetCalls()
	sm.Draw(fx.renderer())
	if sm.AdvanceAndApply(1) {
		t.Error("released scene reported activity")
	}
	if calls := fx.rec.Calls(); len(calls) != 0 {
		t.Errorf("released scene drew: %v", calls)
	}
}
