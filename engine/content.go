package engine

import "github.com/gogpu/rive"

// Importer turns serialized content into a File. Render objects needed by
// the content are allocated through factory, which must outlive the File.
type Importer interface {
	Import(data []byte, factory Factory) (File, error)
}

// ImporterFunc adapts a function to the Importer interface.
type ImporterFunc func(data []byte, factory Factory) (File, error)

// Import calls f(data, factory).
func (f ImporterFunc) Import(data []byte, factory Factory) (File, error) {
	return f(data, factory)
}

// File is imported content holding one or more artboards.
type File interface {
	ArtboardCount() int
	ArtboardName(index int) string

	// ArtboardDefault instances the default artboard. It returns nil when
	// the file has no artboards.
	ArtboardDefault() Artboard
	// ArtboardAt instances the artboard at index, or returns nil.
	ArtboardAt(index int) Artboard
	// ArtboardNamed instances the artboard with the exact name, or returns nil.
	ArtboardNamed(name string) Artboard

	// Release frees the file and the resources it owns. Artboards
	// instanced from it must be released first.
	Release()
}

// Artboard is an instance of a drawable root inside a File.
type Artboard interface {
	Name() string
	Bounds() rive.AABB

	AnimationCount() int
	AnimationName(index int) string
	StateMachineCount() int
	StateMachineName(index int) string

	// AnimationAt instances the animation at index, or returns nil.
	AnimationAt(index int) Scene
	// AnimationNamed instances the animation with the exact name, or returns nil.
	AnimationNamed(name string) Scene
	// StateMachineAt instances the state machine at index, or returns nil.
	StateMachineAt(index int) Scene
	// StateMachineNamed instances the state machine with the exact name, or returns nil.
	StateMachineNamed(name string) Scene

	// Release frees the instance. Scenes instanced from it must be
	// released first.
	Release()
}

// Scene is drivable content: a state machine instance or an animation
// instance bound to an artboard.
type Scene interface {
	Name() string
	Width() float32
	Height() float32
	// Loop reports the playback mode. State machines report LoopOneShot.
	Loop() rive.Loop
	// IsTranslucent reports whether the scene may not cover its bounds
	// with opaque pixels.
	IsTranslucent() bool
	// DurationSeconds returns the length of the content, or -1 when it
	// runs continuously.
	DurationSeconds() float32

	// AdvanceAndApply moves time forward and applies the result to the
	// artboard. It reports whether the content still has more to animate.
	AdvanceAndApply(seconds float32) bool
	Draw(renderer Renderer)

	PointerDown(pos rive.Vec2D)
	PointerMove(pos rive.Vec2D)
	PointerUp(pos rive.Vec2D)

	InputCount() int
	// Input returns the input at index, or nil.
	Input(index int) Input
	// InputNamed returns the input with the exact name, or nil. Scenes
	// without inputs always return nil.
	InputNamed(name string) Input

	Release()
}

// InputKind identifies the type of a state machine input.
type InputKind int32

const (
	InputBool InputKind = iota
	InputNumber
	InputTrigger
)

// String returns the name of the input kind.
func (k InputKind) String() string {
	switch k {
	case InputBool:
		return "Bool"
	case InputNumber:
		return "Number"
	case InputTrigger:
		return "Trigger"
	}
	return "Unknown"
}

// Input is a named state machine input. Concrete inputs also implement
// BoolInput, NumberInput or TriggerInput according to Kind.
type Input interface {
	Name() string
	Kind() InputKind
}

// BoolInput is a boolean state machine input.
type BoolInput interface {
	Input
	Value() bool
	SetValue(v bool)
}

// NumberInput is a numeric state machine input.
type NumberInput interface {
	Input
	Value() float32
	SetValue(v float32)
}

// TriggerInput is a one-shot state machine input, reset after the next
// advance.
type TriggerInput interface {
	Input
	Fire()
}
