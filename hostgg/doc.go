// Package hostgg is a host that performs every delegate on a gg drawing
// context.
//
// A Host owns four handle spaces: factories, paths, paints and images.
// Canvases are registered separately with NewCanvas and wrap a caller
// owned *gg.Context. Bind installs the Host's delegate tables on a
// host.Binding:
//
//	h := hostgg.New()
//	b := host.NewBinding()
//	h.Bind(b)
//
//	dc := gg.NewContext(512, 512)
//	canvas := h.NewCanvas(dc)
//	defer h.ReleaseCanvas(canvas)
//
// Paths are kept as point and verb lists and replayed onto the context for
// every draw, so a path can be drawn on any canvas. Gradient coordinates are
// mapped through the canvas transform at draw time.
//
// Blend modes outside SrcOver, Multiply, Screen and Overlay have no gg
// counterpart and are composited as SrcOver.
//
// Images are decoded with image.Decode. PNG, JPEG, GIF, WebP, BMP and TIFF
// are registered.
package hostgg
