package scene

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
	"github.com/gogpu/rive/host"
)

// State is the lifecycle stage of a Session.
type State int

const (
	StateEmpty State = iota
	StateFileLoaded
	StateArtboardSelected
	StateSubSceneSelected
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateFileLoaded:
		return "FileLoaded"
	case StateArtboardSelected:
		return "ArtboardSelected"
	case StateSubSceneSelected:
		return "SubSceneSelected"
	}
	return "Unknown"
}

// InputInfo describes one input of the active state machine.
type InputInfo struct {
	Name string
	Kind engine.InputKind
}

// Session owns the content lifecycle of one scene. It is not safe for
// concurrent use.
type Session struct {
	binding  *host.Binding
	factory  *host.FactoryAdapter
	importer engine.Importer
	log      *slog.Logger

	file     engine.File
	artboard engine.Artboard
	sub      SubScene
	closed   bool
}

// New returns an empty session allocating through the host factory
// identified by factory. The session takes ownership of the handle and
// releases it in Close.
func New(b *host.Binding, factory host.Handle, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()

	return &Session{
		binding:  b,
		factory:  host.NewFactoryAdapter(b, factory),
		importer: o.importer,
		log:      o.logger,
	}
}

// State returns the current lifecycle stage.
func (s *Session) State() State {
	switch {
	case s.file == nil:
		return StateEmpty
	case s.artboard == nil:
		return StateFileLoaded
	case s.sub.IsNone():
		return StateArtboardSelected
	}
	return StateSubSceneSelected
}

// SubScene returns the active sub-scene.
func (s *Session) SubScene() SubScene { return s.sub }

// LoadFile imports data, replacing any loaded file together with its
// artboard and sub-scene. On failure the session holds no file.
func (s *Session) LoadFile(data []byte) error {
	if s.closed {
		return ErrClosed
	}
	s.resetFile()
	if len(data) == 0 {
		return ErrEmptyFile
	}

	f, err := s.importer.Import(data, s.factory)
	if err != nil {
		s.log.Debug("scene: import failed", "bytes", len(data), "err", err)
		return fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}
	if f == nil {
		return ErrMalformedFile
	}
	s.file = f
	s.log.Debug("scene: file loaded", "artboards", f.ArtboardCount())
	return nil
}

// LoadArtboard instances the artboard called name, or the default artboard
// when name is empty. The previous artboard and sub-scene are released
// first, so on failure neither is set.
func (s *Session) LoadArtboard(name string) error {
	if s.closed {
		return ErrClosed
	}
	s.resetArtboard()
	if s.file == nil {
		return ErrNoFile
	}

	var ab engine.Artboard
	if name == "" {
		ab = s.file.ArtboardDefault()
	} else {
		ab = s.file.ArtboardNamed(name)
	}
	if ab == nil {
		return fmt.Errorf("%w: artboard %q", ErrNotFound, name)
	}
	s.artboard = ab
	s.log.Debug("scene: artboard selected", "name", ab.Name())
	return nil
}

// LoadStateMachine instances the state machine called name, or the first
// one when name is empty, and makes it the active sub-scene. On failure no
// sub-scene is active.
func (s *Session) LoadStateMachine(name string) error {
	return s.load(KindStateMachine, name)
}

// LoadAnimation instances the animation called name, or the first one
// when name is empty, and makes it the active sub-scene. On failure no
// sub-scene is active.
func (s *Session) LoadAnimation(name string) error {
	return s.load(KindAnimation, name)
}

func (s *Session) load(kind Kind, name string) error {
	if s.closed {
		return ErrClosed
	}
	if s.artboard == nil {
		return ErrNoArtboard
	}

	var sc engine.Scene
	switch {
	case kind == KindStateMachine && name == "":
		sc = s.artboard.StateMachineAt(0)
	case kind == KindStateMachine:
		sc = s.artboard.StateMachineNamed(name)
	case name == "":
		sc = s.artboard.AnimationAt(0)
	default:
		sc = s.artboard.AnimationNamed(name)
	}
	if sc == nil {
		s.selectSubScene(SubScene{})
		return fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}
	s.selectSubScene(SubScene{kind: kind, scene: sc})
	s.log.Debug("scene: sub-scene selected", "kind", kind.String(), "name", sc.Name())
	return nil
}

// selectSubScene replaces the active sub-scene, releasing the old one.
func (s *Session) selectSubScene(next SubScene) {
	prev := s.sub
	s.sub = next
	prev.release()
}

func (s *Session) resetArtboard() {
	s.selectSubScene(SubScene{})
	if s.artboard != nil {
		s.artboard.Release()
		s.artboard = nil
	}
}

func (s *Session) resetFile() {
	s.resetArtboard()
	if s.file != nil {
		s.file.Release()
		s.file = nil
	}
}

// SetBool sets a boolean input of the active state machine.
func (s *Session) SetBool(name string, v bool) error {
	in, err := s.input(name, engine.InputBool)
	if err != nil {
		return err
	}
	b, ok := in.(engine.BoolInput)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInputNotFound, name)
	}
	b.SetValue(v)
	return nil
}

// SetNumber sets a numeric input of the active state machine.
func (s *Session) SetNumber(name string, v float32) error {
	in, err := s.input(name, engine.InputNumber)
	if err != nil {
		return err
	}
	n, ok := in.(engine.NumberInput)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInputNotFound, name)
	}
	n.SetValue(v)
	return nil
}

// FireTrigger fires a trigger input of the active state machine.
func (s *Session) FireTrigger(name string) error {
	in, err := s.input(name, engine.InputTrigger)
	if err != nil {
		return err
	}
	t, ok := in.(engine.TriggerInput)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInputNotFound, name)
	}
	t.Fire()
	return nil
}

func (s *Session) input(name string, kind engine.InputKind) (engine.Input, error) {
	if s.sub.IsNone() {
		return nil, ErrNoScene
	}
	in := s.sub.scene.InputNamed(name)
	if in == nil || in.Kind() != kind {
		return nil, fmt.Errorf("%w: %s %q", ErrInputNotFound, kind, name)
	}
	return in, nil
}

// Inputs lists the inputs of the active sub-scene. Animations have none.
func (s *Session) Inputs() []InputInfo {
	if s.sub.IsNone() {
		return nil
	}
	n := s.sub.scene.InputCount()
	out := make([]InputInfo, 0, n)
	for i := range n {
		if in := s.sub.scene.Input(i); in != nil {
			out = append(out, InputInfo{Name: in.Name(), Kind: in.Kind()})
		}
	}
	return out
}

// Artboards lists the artboard names of the loaded file.
func (s *Session) Artboards() []string {
	if s.file == nil {
		return nil
	}
	names := make([]string, s.file.ArtboardCount())
	for i := range names {
		names[i] = s.file.ArtboardName(i)
	}
	return names
}

// Animations lists the animation names of the selected artboard.
func (s *Session) Animations() []string {
	if s.artboard == nil {
		return nil
	}
	names := make([]string, s.artboard.AnimationCount())
	for i := range names {
		names[i] = s.artboard.AnimationName(i)
	}
	return names
}

// StateMachines lists the state machine names of the selected artboard.
func (s *Session) StateMachines() []string {
	if s.artboard == nil {
		return nil
	}
	names := make([]string, s.artboard.StateMachineCount())
	for i := range names {
		names[i] = s.artboard.StateMachineName(i)
	}
	return names
}

// Width returns the width of the active sub-scene, or 0.
func (s *Session) Width() float32 {
	if s.sub.IsNone() {
		return 0
	}
	return s.sub.scene.Width()
}

// Height returns the height of the active sub-scene, or 0.
func (s *Session) Height() float32 {
	if s.sub.IsNone() {
		return 0
	}
	return s.sub.scene.Height()
}

// Name returns the name of the active sub-scene, or "".
func (s *Session) Name() string {
	if s.sub.IsNone() {
		return ""
	}
	return s.sub.scene.Name()
}

// Loop returns the playback mode of the active sub-scene, or LoopOneShot.
func (s *Session) Loop() rive.Loop {
	if s.sub.IsNone() {
		return rive.LoopOneShot
	}
	return s.sub.scene.Loop()
}

// IsTranslucent reports whether the active sub-scene may leave pixels
// uncovered. It returns false without a sub-scene.
func (s *Session) IsTranslucent() bool {
	if s.sub.IsNone() {
		return false
	}
	return s.sub.scene.IsTranslucent()
}

// DurationSeconds returns the duration of the active sub-scene, -1 for
// state machines, or 0 without a sub-scene.
func (s *Session) DurationSeconds() float32 {
	if s.sub.IsNone() {
		return 0
	}
	return s.sub.scene.DurationSeconds()
}

// AdvanceAndApply advances the active sub-scene and reports whether it has
// more to animate. It returns false without a sub-scene.
func (s *Session) AdvanceAndApply(seconds float32) bool {
	if s.sub.IsNone() {
		return false
	}
	return s.sub.scene.AdvanceAndApply(seconds)
}

// Draw draws the active sub-scene on the host canvas identified by
// renderer. The canvas is borrowed for the duration of the call.
func (s *Session) Draw(renderer host.Handle) {
	if s.sub.IsNone() {
		return
	}
	s.sub.scene.Draw(host.NewRendererAdapter(s.binding, renderer))
}

// PointerDown forwards a pointer press in artboard coordinates.
func (s *Session) PointerDown(pos rive.Vec2D) {
	if !s.sub.IsNone() {
		s.sub.scene.PointerDown(pos)
	}
}

// PointerMove forwards a pointer move in artboard coordinates.
func (s *Session) PointerMove(pos rive.Vec2D) {
	if !s.sub.IsNone() {
		s.sub.scene.PointerMove(pos)
	}
}

// PointerUp forwards a pointer release in artboard coordinates.
func (s *Session) PointerUp(pos rive.Vec2D) {
	if !s.sub.IsNone() {
		s.sub.scene.PointerUp(pos)
	}
}

// Close releases the sub-scene, artboard, file and factory, in that order.
// It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.resetFile()
	s.factory.Release()
	s.log.Debug("scene: session closed")
}
