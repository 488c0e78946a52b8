package host

import "errors"

var (
	// ErrImageShaderUnsupported is the panic value of ImageAdapter.MakeShader.
	ErrImageShaderUnsupported = errors.New("host: image shaders cannot cross the boundary")

	// ErrForeignObject is the panic value when an adapter receives a path,
	// paint, image, shader or buffer that was not made by this package.
	ErrForeignObject = errors.New("host: object was not created by a host factory")
)
