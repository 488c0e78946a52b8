package host

import (
	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// ImageAdapter is an engine.RenderImage backed by a decoded host image.
// Its dimensions are read once, at construction.
type ImageAdapter struct {
	b      *Binding
	h      Handle
	refs   refCount
	width  int
	height int
}

var _ engine.RenderImage = (*ImageAdapter)(nil)

// NewImageAdapter wraps the host image h and queries its size.
func NewImageAdapter(b *Binding, h Handle) *ImageAdapter {
	img := &ImageAdapter{b: b, h: h}
	img.refs.init()
	if h == Null {
		return img
	}
	d := b.imageTable()
	if d.Width == nil {
		nilDelegate(CapabilityImage, "Width")
	}
	if d.Height == nil {
		nilDelegate(CapabilityImage, "Height")
	}
	img.width = int(d.Width(h))
	img.height = int(d.Height(h))
	return img
}

// Handle returns the wrapped handle.
func (img *ImageAdapter) Handle() Handle { return img.h }

// Width returns the pixel width reported at decode time.
func (img *ImageAdapter) Width() int { return img.width }

// Height returns the pixel height reported at decode time.
func (img *ImageAdapter) Height() int { return img.height }

// Ref adds a reference.
func (img *ImageAdapter) Ref() { img.refs.ref() }

// Release drops a reference. The last one calls the Release delegate.
func (img *ImageAdapter) Release() {
	if !img.refs.release(CapabilityImage, img.h) || img.h == Null {
		return
	}
	d := img.b.imageTable()
	if d.Release == nil {
		nilDelegate(CapabilityImage, "Release")
	}
	rive.Logger().Debug("host: release image", "handle", uint64(img.h))
	d.Release(img.h)
}

// MakeShader always panics with ErrImageShaderUnsupported.
func (img *ImageAdapter) MakeShader(engine.TileMode, engine.TileMode, *rive.Mat2D) engine.RenderShader {
	panic(ErrImageShaderUnsupported)
}

func imageAdapter(image engine.RenderImage) *ImageAdapter {
	a, ok := image.(*ImageAdapter)
	if !ok || a == nil {
		panic(ErrForeignObject)
	}
	return a
}
