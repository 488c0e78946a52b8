// Package host implements the engine capability interfaces by forwarding
// every call to functions registered by a host application.
//
// A host owns its own drawing objects (paths, paints, images, canvases) and
// identifies each of them to the engine by an opaque [Handle]. It registers
// one delegate table per capability on a [Binding]:
//
//	b := host.NewBinding()
//	b.RegisterPath(host.PathDelegates{...})
//	b.RegisterPaint(host.PaintDelegates{...})
//	...
//	factory := host.NewFactoryAdapter(b, factoryHandle)
//
// The adapters ([PathAdapter], [ImageAdapter], [PaintAdapter],
// [RendererAdapter], [FactoryAdapter]) hold a handle and the binding. Each
// interface call becomes one table lookup and one synchronous delegate call
// with primitive arguments: matrices cross as six scalars, colours as ARGB
// words, gradients as parallel colour and stop slices, and mesh UVs in image
// pixels rather than normalised units.
//
// # Ownership
//
// Path, paint, image and factory adapters are reference counted. The release
// delegate for their handle fires exactly once, when the last reference is
// dropped. Renderer adapters wrap a canvas that the host lends for a single
// draw and never release it.
//
// # Preconditions
//
// Calling into a binding whose table for a capability was never registered,
// invoking a nil delegate entry, drawing a mesh whose vertex and UV buffers
// disagree, or asking an image for a shader are contract failures between
// engine and host. They panic instead of returning errors.
//
// # Concurrency
//
// Registration swaps a table atomically, but replacing a table while
// adapters created under the old one are in use is not supported. Adapters
// are not safe for concurrent use.
//
// The process-wide binding returned by [Default] serves hosts that register
// once at start-up through [RegisterPathDelegates] and friends. Hosts that
// need several bindings at once create them with [NewBinding].
package host
