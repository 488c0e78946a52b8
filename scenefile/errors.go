package scenefile

import "errors"

var (
	// ErrInvalidDocument is wrapped by every error reporting a document
	// that parses as YAML but does not describe valid content.
	ErrInvalidDocument = errors.New("scenefile: invalid document")

	// ErrImageDecode is wrapped when the factory cannot decode an image.
	ErrImageDecode = errors.New("scenefile: image decode failed")
)
