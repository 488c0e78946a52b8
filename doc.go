// Package rive lets a host application drive a vector-animation engine while
// keeping every drawing and resource operation on the host side.
//
// # Overview
//
// The engine consumes abstract capabilities (paths, paints, images, a
// renderer and an allocation factory). The host owns the concrete objects
// behind those capabilities and identifies each of them to the engine with an
// opaque integer handle. The packages in this module sit on that boundary:
//
//   - rive (this package): shared value types such as [Mat2D], [AABB],
//     [Vec2D], the engine enums and [ComputeAlignment].
//   - engine: the capability and content interfaces the engine talks to.
//   - host: delegate tables, the host-binding context and the adapters that
//     forward each engine call to the host.
//   - scene: a session owning the load, select, advance and draw lifecycle
//     of one piece of content.
//   - bridge: the flat, handle-keyed call surface for foreign hosts.
//   - hostgg: a host implementation drawing with github.com/gogpu/gg.
//   - scenefile: the reference engine importing YAML scene documents.
//
// # Quick Start
//
//	h := hostgg.New()
//	b := h.NewBinding()
//
//	s := scene.New(b, h.NewFactory())
//	defer s.Close()
//	if err := s.LoadFile(data); err != nil {
//	    return err
//	}
//	_ = s.LoadArtboard("")
//	_ = s.LoadAnimation("")
//
//	dc := gg.NewContext(512, 512)
//	canvas := h.NewCanvas(dc)
//	defer h.ReleaseCanvas(canvas)
//	s.AdvanceAndApply(1.0 / 60)
//	s.Draw(canvas)
//
// # Coordinate System
//
// Matrices follow the engine convention: a [Mat2D] stores the two basis
// vectors followed by the translation, and x' = X1*x + X2*y + Tx,
// y' = Y1*x + Y2*y + Ty. Alignment values range from -1 (left/top) to 1
// (right/bottom).
//
// # Threading
//
// Nothing in this module schedules work. Every forwarded call blocks until
// the host returns. Sessions and adapters must not be used from several
// goroutines at once.
package rive

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"
)
