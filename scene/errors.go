package scene

import "errors"

var (
	// ErrEmptyFile is returned by LoadFile for empty input.
	ErrEmptyFile = errors.New("scene: empty file")

	// ErrMalformedFile wraps the importer error when a file cannot be
	// imported.
	ErrMalformedFile = errors.New("scene: malformed file")

	// ErrNoFile is returned when an artboard is selected before a file
	// was loaded.
	ErrNoFile = errors.New("scene: no file loaded")

	// ErrNoArtboard is returned when a sub-scene is selected before an
	// artboard.
	ErrNoArtboard = errors.New("scene: no artboard selected")

	// ErrNotFound is returned when a named artboard, animation or state
	// machine does not exist.
	ErrNotFound = errors.New("scene: not found")

	// ErrNoScene is returned by input setters when no sub-scene is active.
	ErrNoScene = errors.New("scene: no state machine or animation selected")

	// ErrInputNotFound is returned by input setters when the active
	// sub-scene has no input of that name and type.
	ErrInputNotFound = errors.New("scene: input not found")

	// ErrClosed is returned by operations on a closed session.
	ErrClosed = errors.New("scene: session closed")
)
