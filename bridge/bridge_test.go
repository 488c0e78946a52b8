package bridge_test

import (
	"math"
	"testing"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/bridge"
	"github.com/gogpu/rive/host"
	"github.com/gogpu/rive/hosttest"
)

const doc = `
artboards:
  - name: main
    width: 300
    height: 150
    shapes:
      - {name: btn, rect: [0, 0, 50, 50], fill: {color: "#336699"}}
    animations:
      - {name: pulse, fps: 60, duration: 30, loop: loop}
    stateMachines:
      - name: Button State
        inputs:
          - {name: pressed, type: bool}
          - {name: size, type: number}
          - {name: click, type: trigger}
        states: [{name: idle}, {name: pulsing, animation: pulse}]
        transitions: [{from: idle, to: pulsing, conditions: [{input: pressed}]}]
        listeners: [{shape: btn, event: down, input: pressed, action: set, value: true}]
`

func newBridge(t *testing.T) (*hosttest.Recorder, *bridge.Bridge) {
	t.Helper()
	rec := hosttest.New()
	return rec, bridge.New(rec.NewBinding())
}

func TestSessionCalls(t *testing.T) {
	rec, br := newBridge(t)
	h := br.SceneNew(rec.NewFactory())
	if h == host.Null {
		t.Fatal("SceneNew returned null")
	}
	defer br.SceneDelete(h)

	data := []byte(doc + "\ntrailing: garbage [")
	if !br.SceneLoadFile(h, data, len(doc)) {
		t.Fatal("SceneLoadFile failed on the declared prefix")
	}
	if !br.SceneLoadArtboard(h, "") {
		t.Fatal("SceneLoadArtboard failed")
	}
	if br.SceneLoadAnimation(h, "nope") {
		t.Error("SceneLoadAnimation(nope) succeeded")
	}
	if !br.SceneLoadStateMachine(h, "") {
		t.Fatal("SceneLoadStateMachine failed")
	}

	if br.SceneWidth(h) != 300 || br.SceneHeight(h) != 150 {
		t.Errorf("size = %vx%v", br.SceneWidth(h), br.SceneHeight(h))
	}
	if br.SceneDurationSeconds(h) != -1 || br.SceneLoop(h) != 0 {
		t.Errorf("duration, loop = %v, %v", br.SceneDurationSeconds(h), br.SceneLoop(h))
	}
	if !br.SceneIsTranslucent(h) {
		t.Error("artboard without background reported opaque")
	}

	if !br.SceneSetNumber(h, "size", 2) || !br.SceneFireTrigger(h, "click") {
		t.Error("input setter failed")
	}
	if br.SceneSetBool(h, "size", true) {
		t.Error("SceneSetBool on a number input succeeded")
	}

	if br.SceneAdvanceAndApply(h, 0.1) {
		t.Error("idle state reported activity")
	}
	br.ScenePointerDown(h, rive.Vec(10, 10))
	br.ScenePointerMove(h, rive.Vec(12, 12))
	br.ScenePointerUp(h, rive.Vec(12, 12))
	if !br.SceneAdvanceAndApply(h, 0.1) {
		t.Error("pointer listener did not start the animation")
	}

	canvas := rec.NewCanvas()
	rec.ResetCalls()
	br.SceneDraw(h, canvas)
	if rec.Count("Renderer.DrawPath") != 1 {
		t.Errorf("DrawPath calls = %d, want 1", rec.Count("Renderer.DrawPath"))
	}
}

func TestSceneName(t *testing.T) {
	rec, br := newBridge(t)
	h := br.SceneNew(rec.NewFactory())
	defer br.SceneDelete(h)
	br.SceneLoadFile(h, []byte(doc), len(doc))
	br.SceneLoadArtboard(h, "main")
	br.SceneLoadStateMachine(h, "Button State")

	n := br.SceneName(h, nil)
	if n != len("Button State") {
		t.Fatalf("SceneName(nil) = %d, want %d", n, len("Button State"))
	}
	buf := make([]byte, n)
	if got := br.SceneName(h, buf); got != n || string(buf) != "Button State" {
		t.Errorf("SceneName = %d %q", got, buf)
	}

	short := make([]byte, 6)
	if got := br.SceneName(h, short); got != n || string(short) != "Button" {
		t.Errorf("SceneName(short) = %d %q", got, short)
	}
}

func TestUnknownHandleActsEmpty(t *testing.T) {
	_, br := newBridge(t)
	const h = host.Handle(12345)

	if br.SceneLoadFile(h, []byte(doc), len(doc)) || br.SceneLoadArtboard(h, "") ||
		br.SceneLoadStateMachine(h, "") || br.SceneLoadAnimation(h, "") {
		t.Error("load on unknown handle succeeded")
	}
	if br.SceneSetBool(h, "a", true) || br.SceneSetNumber(h, "a", 1) || br.SceneFireTrigger(h, "a") {
		t.Error("setter on unknown handle succeeded")
	}
	if br.SceneWidth(h) != 0 || br.SceneHeight(h) != 0 || br.SceneDurationSeconds(h) != 0 ||
		br.SceneLoop(h) != 0 || br.SceneIsTranslucent(h) || br.SceneName(h, nil) != 0 {
		t.Error("query on unknown handle returned non-zero")
	}
	if br.SceneAdvanceAndApply(h, 1) {
		t.Error("advance on unknown handle returned true")
	}
	br.SceneDraw(h, 1)
	br.ScenePointerDown(h, rive.Vec(0, 0))
	br.SceneDelete(h)
}

func TestDeleteReleasesEverything(t *testing.T) {
	rec, br := newBridge(t)
	h := br.SceneNew(rec.NewFactory())
	br.SceneLoadFile(h, []byte(doc), len(doc))
	br.SceneLoadArtboard(h, "")
	br.SceneLoadAnimation(h, "")

	br.SceneDelete(h)
	br.SceneDelete(h)
	if n := rec.Live(); n != 0 {
		t.Errorf("%d handles live after delete", n)
	}
	if br.Sessions() != 0 {
		t.Errorf("Sessions() = %d, want 0", br.Sessions())
	}
	if br.SceneLoadArtboard(h, "") {
		t.Error("deleted handle still resolves")
	}
	for _, e := range rec.Errors() {
		t.Errorf("host protocol error: %s", e)
	}
}

func TestBridgeClose(t *testing.T) {
	rec, br := newBridge(t)
	for range 3 {
		h := br.SceneNew(rec.NewFactory())
		br.SceneLoadFile(h, []byte(doc), len(doc))
		br.SceneLoadArtboard(h, "")
	}
	br.Close()
	if br.Sessions() != 0 || rec.Live() != 0 {
		t.Errorf("after Close: %d sessions, %d live handles", br.Sessions(), rec.Live())
	}
}

func TestRegistration(t *testing.T) {
	rec := hosttest.New()
	br := bridge.New(host.NewBinding())
	br.RegisterPathDelegates(rec.PathDelegates())
	br.RegisterImageDelegates(rec.ImageDelegates())
	br.RegisterPaintDelegates(rec.PaintDelegates())
	br.RegisterRendererDelegates(rec.RendererDelegates())
	br.RegisterFactoryDelegates(rec.FactoryDelegates())

	for _, c := range []host.Capability{
		host.CapabilityPath, host.CapabilityImage, host.CapabilityPaint,
		host.CapabilityRenderer, host.CapabilityFactory,
	} {
		if !br.Binding().Registered(c) {
			t.Errorf("%v not registered", c)
		}
	}
}

func TestDefaultBridge(t *testing.T) {
	rec := hosttest.New()
	bridge.RegisterPathDelegates(rec.PathDelegates())
	bridge.RegisterImageDelegates(rec.ImageDelegates())
	bridge.RegisterPaintDelegates(rec.PaintDelegates())
	bridge.RegisterRendererDelegates(rec.RendererDelegates())
	bridge.RegisterFactoryDelegates(rec.FactoryDelegates())

	h := bridge.SceneNew(rec.NewFactory())
	if !bridge.SceneLoadFile(h, []byte(doc), len(doc)) ||
		!bridge.SceneLoadArtboard(h, "") ||
		!bridge.SceneLoadAnimation(h, "pulse") {
		t.Fatal("load through the default bridge failed")
	}
	if got := bridge.SceneLoop(h); got != int32(rive.LoopLoop) {
		t.Errorf("SceneLoop = %d, want %d", got, rive.LoopLoop)
	}
	if d := bridge.SceneDurationSeconds(h); math.Abs(float64(d-0.5)) > 1e-6 {
		t.Errorf("SceneDurationSeconds = %v, want 0.5", d)
	}
	if !bridge.SceneAdvanceAndApply(h, 0.2) {
		t.Error("looping animation stopped")
	}
	bridge.SceneDraw(h, rec.NewCanvas())
	bridge.ScenePointerDown(h, rive.Vec(1, 1))
	bridge.ScenePointerMove(h, rive.Vec(1, 1))
	bridge.ScenePointerUp(h, rive.Vec(1, 1))
	if bridge.SceneName(h, nil) != len("pulse") || bridge.SceneWidth(h) != 300 ||
		bridge.SceneHeight(h) != 150 || !bridge.SceneIsTranslucent(h) {
		t.Error("default bridge queries mismatch")
	}
	if bridge.SceneSetBool(h, "x", true) || bridge.SceneSetNumber(h, "x", 1) ||
		bridge.SceneFireTrigger(h, "x") || bridge.SceneLoadStateMachine(h, "x") {
		t.Error("animation accepted state machine calls")
	}
	bridge.SceneDelete(h)
	if bridge.Default().Sessions() != 0 {
		t.Error("default bridge kept the session")
	}
}
