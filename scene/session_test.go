package scene_test

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
	"github.com/gogpu/rive/host"
	"github.com/gogpu/rive/hosttest"
	"github.com/gogpu/rive/scene"
)

const content = `
images:
  - name: px
    data: iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8DwHwAFBQIAX8jx0gAAAABJRU5ErkJggg==
artboards:
  - name: A
    width: 64
    height: 32
    shapes:
      - {name: dot, rect: [0, 0, 4, 4], fill: {color: "#00ff00"}}
    animations:
      - {name: still, duration: 0}
  - name: B
    width: 320
    height: 240
    background: "#202020"
    shapes:
      - name: box
        path: "M0 0 L40 0 L40 40 L0 40 Z"
        fill: {color: "#ff0000"}
      - {name: pic, image: px, x: 100}
    animations:
      - name: slide
        fps: 30
        duration: 30
        keys:
          - {shape: box, property: x, frames: [{frame: 0, value: 0}, {frame: 30, value: 100}]}
      - name: bounce
        fps: 30
        duration: 15
        loop: pingPong
    stateMachines:
      - name: ui
        inputs:
          - {name: hover, type: bool}
          - {name: level, type: number}
          - {name: go, type: trigger}
        states:
          - {name: rest}
          - {name: moving, animation: slide}
        transitions:
          - {from: rest, to: moving, conditions: [{input: go}]}
`

func newSession(t *testing.T, opts ...scene.Option) (*hosttest.Recorder, *scene.Session) {
	t.Helper()
	rec := hosttest.New()
	s := scene.New(rec.NewBinding(), rec.NewFactory(), opts...)
	return rec, s
}

func mustLoad(t *testing.T, s *scene.Session) {
	t.Helper()
	if err := s.LoadFile([]byte(content)); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
}

func TestEmptySessionQueries(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()

	if s.State() != scene.StateEmpty {
		t.Errorf("State() = %v, want Empty", s.State())
	}
	if s.Width() != 0 || s.Height() != 0 || s.Name() != "" || s.DurationSeconds() != 0 {
		t.Error("empty session returned non-zero metadata")
	}
	if s.Loop() != rive.LoopOneShot || s.IsTranslucent() {
		t.Error("empty session returned non-default loop or translucency")
	}
	if s.AdvanceAndApply(1) {
		t.Error("AdvanceAndApply on empty session returned true")
	}
	s.Draw(1)
	s.PointerDown(rive.Vec(1, 1))
	s.PointerMove(rive.Vec(1, 1))
	s.PointerUp(rive.Vec(1, 1))
	if s.Inputs() != nil || s.Artboards() != nil || s.Animations() != nil || s.StateMachines() != nil {
		t.Error("empty session listed content")
	}
	if err := s.SetBool("x", true); !errors.Is(err, scene.ErrNoScene) {
		t.Errorf("SetBool on empty session = %v, want ErrNoScene", err)
	}
}

func TestLoadSequence(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()

	if err := s.LoadArtboard(""); !errors.Is(err, scene.ErrNoFile) {
		t.Errorf("LoadArtboard before file = %v, want ErrNoFile", err)
	}
	if err := s.LoadStateMachine(""); !errors.Is(err, scene.ErrNoArtboard) {
		t.Errorf("LoadStateMachine before artboard = %v, want ErrNoArtboard", err)
	}

	mustLoad(t, s)
	if s.State() != scene.StateFileLoaded {
		t.Errorf("State() = %v, want FileLoaded", s.State())
	}
	if got := s.Artboards(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Artboards() = %v", got)
	}

	if err := s.LoadArtboard("B"); err != nil {
		t.Fatalf("LoadArtboard(B): %v", err)
	}
	if s.State() != scene.StateArtboardSelected {
		t.Errorf("State() = %v, want ArtboardSelected", s.State())
	}
	if s.Width() != 0 {
		t.Error("Width before sub-scene selection is non-zero")
	}

	if err := s.LoadStateMachine(""); err != nil {
		t.Fatalf("LoadStateMachine: %v", err)
	}
	if s.State() != scene.StateSubSceneSelected {
		t.Errorf("State() = %v, want SubSceneSelected", s.State())
	}
	if s.Width() != 320 || s.Height() != 240 || s.Name() != "ui" {
		t.Errorf("metadata = %vx%v %q, want 320x240 ui", s.Width(), s.Height(), s.Name())
	}
	if s.DurationSeconds() != -1 || s.Loop() != rive.LoopOneShot {
		t.Errorf("state machine duration, loop = %v, %v", s.DurationSeconds(), s.Loop())
	}
	if s.IsTranslucent() {
		t.Error("opaque background reported translucent")
	}
	want := []scene.InputInfo{
		{Name: "hover", Kind: engine.InputBool},
		{Name: "level", Kind: engine.InputNumber},
		{Name: "go", Kind: engine.InputTrigger},
	}
	if got := s.Inputs(); !slices.Equal(got, want) {
		t.Errorf("Inputs() = %v, want %v", got, want)
	}
}

func TestLastSelectionWins(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()
	mustLoad(t, s)
	if err := s.LoadArtboard("B"); err != nil {
		t.Fatal(err)
	}

	if err := s.LoadStateMachine("ui"); err != nil {
		t.Fatal(err)
	}
	if err := s.LoadAnimation("bounce"); err != nil {
		t.Fatal(err)
	}
	if k := s.SubScene().Kind(); k != scene.KindAnimation {
		t.Fatalf("Kind() = %v, want Animation", k)
	}
	if s.Name() != "bounce" || s.Loop() != rive.LoopPingPong {
		t.Errorf("active = %q %v", s.Name(), s.Loop())
	}
	if err := s.SetBool("hover", true); !errors.Is(err, scene.ErrInputNotFound) {
		t.Errorf("SetBool on animation = %v, want ErrInputNotFound", err)
	}

	if err := s.LoadStateMachine(""); err != nil {
		t.Fatal(err)
	}
	if k := s.SubScene().Kind(); k != scene.KindStateMachine {
		t.Fatalf("Kind() = %v, want StateMachine", k)
	}
	if err := s.SetBool("hover", true); err != nil {
		t.Errorf("SetBool on state machine: %v", err)
	}
}

func TestInputSetters(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()
	mustLoad(t, s)
	s.LoadArtboard("B")
	s.LoadStateMachine("")

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"bool", func() error { return s.SetBool("hover", true) }, nil},
		{"number", func() error { return s.SetNumber("level", 3) }, nil},
		{"trigger", func() error { return s.FireTrigger("go") }, nil},
		{"absent", func() error { return s.SetBool("nope", true) }, scene.ErrInputNotFound},
		{"bool as number", func() error { return s.SetNumber("hover", 1) }, scene.ErrInputNotFound},
		{"number as trigger", func() error { return s.FireTrigger("level") }, scene.ErrInputNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if tt.want == nil && err != nil {
				t.Errorf("unexpected error %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	in := s.SubScene().Scene().InputNamed("level").(engine.NumberInput)
	if in.Value() != 3 {
		t.Errorf("level = %v, want 3", in.Value())
	}
	if !s.AdvanceAndApply(0) {
		t.Error("fired trigger did not cause a transition")
	}
}

func TestLoadArtboardFailureClearsSubScene(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()
	mustLoad(t, s)
	s.LoadArtboard("B")
	s.LoadStateMachine("")

	err := s.LoadArtboard("missing")
	if !errors.Is(err, scene.ErrNotFound) {
		t.Fatalf("LoadArtboard(missing) = %v, want ErrNotFound", err)
	}
	if !s.SubScene().IsNone() {
		t.Error("sub-scene survived a failed artboard selection")
	}
	if s.State() != scene.StateFileLoaded {
		t.Errorf("State() = %v, want FileLoaded", s.State())
	}
	if s.Width() != 0 || s.Name() != "" {
		t.Error("queries after failed artboard selection are not zero")
	}
}

func TestLoadArtboardSuccessClearsSubScene(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()
	mustLoad(t, s)
	s.LoadArtboard("B")
	s.LoadAnimation("")

	if err := s.LoadArtboard("A"); err != nil {
		t.Fatal(err)
	}
	if !s.SubScene().IsNone() {
		t.Error("sub-scene survived artboard reselection")
	}
}

func TestSubSceneNotFound(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()
	mustLoad(t, s)
	s.LoadArtboard("B")
	s.LoadAnimation("slide")

	if err := s.LoadStateMachine("nope"); !errors.Is(err, scene.ErrNotFound) {
		t.Fatalf("LoadStateMachine(nope) = %v, want ErrNotFound", err)
	}
	if !s.SubScene().IsNone() {
		t.Error("sub-scene set after failed selection")
	}
	if s.State() != scene.StateArtboardSelected {
		t.Errorf("State() = %v, want ArtboardSelected", s.State())
	}

	s.LoadArtboard("A")
	if err := s.LoadStateMachine(""); !errors.Is(err, scene.ErrNotFound) {
		t.Errorf("LoadStateMachine on artboard without machines = %v, want ErrNotFound", err)
	}
}

func TestLoadFileFailures(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()

	if err := s.LoadFile(nil); !errors.Is(err, scene.ErrEmptyFile) {
		t.Errorf("LoadFile(nil) = %v, want ErrEmptyFile", err)
	}

	mustLoad(t, s)
	s.LoadArtboard("")
	err := s.LoadFile([]byte("artboards: ["))
	if !errors.Is(err, scene.ErrMalformedFile) {
		t.Fatalf("LoadFile(garbage) = %v, want ErrMalformedFile", err)
	}
	if s.State() != scene.StateEmpty {
		t.Errorf("State() after failed load = %v, want Empty", s.State())
	}
}

func TestScenarioTwoArtboardsThirtyFPS(t *testing.T) {
	_, s := newSession(t)
	defer s.Close()
	mustLoad(t, s)

	if err := s.LoadArtboard("B"); err != nil {
		t.Fatal(err)
	}
	if err := s.LoadAnimation(""); err != nil {
		t.Fatal(err)
	}
	if s.Name() != "slide" || s.DurationSeconds() != 1 {
		t.Fatalf("animation = %q, %vs", s.Name(), s.DurationSeconds())
	}

	const dt = float32(1.0 / 30)
	elapsed := float32(0)
	for step := 1; step <= 30; step++ {
		elapsed += dt
		more := s.AdvanceAndApply(dt)
		final := step == 30
		if more == final {
			t.Fatalf("step %d (t=%v): AdvanceAndApply = %v", step, elapsed, more)
		}
	}
}

func TestDrawUsesShortLivedRenderer(t *testing.T) {
	rec, s := newSession(t)
	defer s.Close()
	mustLoad(t, s)
	s.LoadArtboard("B")
	s.LoadAnimation("")

	canvas := rec.NewCanvas()
	rec.ResetCalls()
	s.Draw(canvas)

	calls := rec.Calls()
	if len(calls) == 0 {
		t.Fatal("Draw issued no calls")
	}
	for _, c := range calls {
		if !strings.HasPrefix(c.Op, "Renderer.") {
			t.Errorf("Draw issued %s", c)
		}
		if c.Handle != canvas {
			t.Errorf("%s on handle %d, want canvas %d", c.Op, c.Handle, canvas)
		}
	}
	if !rec.IsLive(canvas) {
		t.Error("Draw released the canvas")
	}
}

func TestCloseReleaseOrder(t *testing.T) {
	rec, s := newSession(t)
	mustLoad(t, s)
	s.LoadArtboard("B")
	s.LoadStateMachine("")
	s.AdvanceAndApply(0.1)

	rec.ResetCalls()
	s.Close()
	s.Close()

	var ops []string
	for _, op := range rec.Ops() {
		if strings.HasSuffix(op, ".Release") {
			ops = append(ops, op)
		}
	}
	if len(ops) == 0 || ops[len(ops)-1] != "Factory.Release" {
		t.Fatalf("release ops = %v, want Factory.Release last", ops)
	}
	imageAt := slices.Index(ops, "Image.Release")
	if imageAt < 0 || imageAt != len(ops)-2 {
		t.Errorf("release ops = %v, want Image.Release right before Factory.Release", ops)
	}
	for _, op := range ops[:imageAt] {
		if op != "Path.Release" && op != "Paint.Release" {
			t.Errorf("unexpected %s before the file's images", op)
		}
	}

	if n := rec.Live(); n != 0 {
		t.Errorf("%d handles live after Close", n)
	}
	for _, e := range rec.Errors() {
		t.Errorf("host protocol error: %s", e)
	}
	if err := s.LoadFile([]byte(content)); !errors.Is(err, scene.ErrClosed) {
		t.Errorf("LoadFile after Close = %v, want ErrClosed", err)
	}
}

func TestReleaseExactlyOncePerHandle(t *testing.T) {
	rec, s := newSession(t)
	mustLoad(t, s)
	for _, name := range []string{"A", "B", "A"} {
		s.LoadArtboard(name)
		s.LoadAnimation("")
		s.LoadStateMachine("")
	}
	mustLoad(t, s)
	s.LoadArtboard("")
	s.Close()

	released := rec.Released()
	seen := make(map[host.Handle]bool, len(released))
	for _, h := range released {
		if seen[h] {
			t.Errorf("handle %d released twice", h)
		}
		seen[h] = true
	}
	if n := rec.Live(); n != 0 {
		t.Errorf("%d handles leaked", n)
	}
	for _, e := range rec.Errors() {
		t.Errorf("host protocol error: %s", e)
	}
}

func TestCustomImporter(t *testing.T) {
	boom := errors.New("boom")
	imp := engine.ImporterFunc(func([]byte, engine.Factory) (engine.File, error) {
		return nil, boom
	})
	_, s := newSession(t, scene.WithImporter(imp))
	defer s.Close()

	err := s.LoadFile([]byte("anything"))
	if !errors.Is(err, scene.ErrMalformedFile) || !errors.Is(err, boom) {
		t.Errorf("LoadFile = %v, want ErrMalformedFile wrapping boom", err)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, s := newSession(t, scene.WithLogger(logger))
	mustLoad(t, s)
	s.Close()

	if !strings.Contains(buf.String(), "scene: file loaded") {
		t.Errorf("log output missing load message: %q", buf.String())
	}
}

func TestKindAndStateStrings(t *testing.T) {
	if scene.KindStateMachine.String() != "StateMachine" || scene.KindNone.String() != "None" {
		t.Error("Kind.String mismatch")
	}
	if scene.StateSubSceneSelected.String() != "SubSceneSelected" {
		t.Error("State.String mismatch")
	}
}
