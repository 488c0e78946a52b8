package host

import (
	"sync/atomic"
)

// Capability names one delegate table.
type Capability int

const (
	CapabilityPath Capability = iota
	CapabilityImage
	CapabilityPaint
	CapabilityRenderer
	CapabilityFactory
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapabilityPath:
		return "Path"
	case CapabilityImage:
		return "Image"
	case CapabilityPaint:
		return "Paint"
	case CapabilityRenderer:
		return "Renderer"
	case CapabilityFactory:
		return "Factory"
	default:
		return "Unknown"
	}
}

// Binding holds the current delegate tables of one host.
//
// The zero value has no tables registered and is ready to use.
type Binding struct {
	path     atomic.Pointer[PathDelegates]
	image    atomic.Pointer[ImageDelegates]
	paint    atomic.Pointer[PaintDelegates]
	renderer atomic.Pointer[RendererDelegates]
	factory  atomic.Pointer[FactoryDelegates]
}

// NewBinding returns a binding with no tables registered.
func NewBinding() *Binding {
	return &Binding{}
}

// RegisterPath replaces the path table.
func (b *Binding) RegisterPath(d PathDelegates) { b.path.Store(&d) }

// RegisterImage replaces the image table.
func (b *Binding) RegisterImage(d ImageDelegates) { b.image.Store(&d) }

// RegisterPaint replaces the paint table.
func (b *Binding) RegisterPaint(d PaintDelegates) { b.paint.Store(&d) }

// RegisterRenderer replaces the renderer table.
func (b *Binding) RegisterRenderer(d RendererDelegates) { b.renderer.Store(&d) }

// RegisterFactory replaces the factory table.
func (b *Binding) RegisterFactory(d FactoryDelegates) { b.factory.Store(&d) }

// Registered reports whether a table for c has been registered.
func (b *Binding) Registered(c Capability) bool {
	switch c {
	case CapabilityPath:
		return b.path.Load() != nil
	case CapabilityImage:
		return b.image.Load() != nil
	case CapabilityPaint:
		return b.paint.Load() != nil
	case CapabilityRenderer:
		return b.renderer.Load() != nil
	case CapabilityFactory:
		return b.factory.Load() != nil
	}
	return false
}

func (b *Binding) pathTable() *PathDelegates {
	d := b.path.Load()
	if d == nil {
		notRegistered(CapabilityPath)
	}
	return d
}

func (b *Binding) imageTable() *ImageDelegates {
	d := b.image.Load()
	if d == nil {
		notRegistered(CapabilityImage)
	}
	return d
}

func (b *Binding) paintTable() *PaintDelegates {
	d := b.paint.Load()
	if d == nil {
		notRegistered(CapabilityPaint)
	}
	return d
}

func (b *Binding) rendererTable() *RendererDelegates {
	d := b.renderer.Load()
	if d == nil {
		notRegistered(CapabilityRenderer)
	}
	return d
}

func (b *Binding) factoryTable() *FactoryDelegates {
	d := b.factory.Load()
	if d == nil {
		notRegistered(CapabilityFactory)
	}
	return d
}

func notRegistered(c Capability) {
	panic("host: " + c.String() + " delegates not registered")
}

func nilDelegate(c Capability, op string) {
	panic("host: " + c.String() + "." + op + " delegate is nil")
}

var defaultBinding = NewBinding()

// Default returns the process-wide binding.
func Default() *Binding { return defaultBinding }

// RegisterPathDelegates replaces the path table of the default binding.
func RegisterPathDelegates(d PathDelegates) { defaultBinding.RegisterPath(d) }

// RegisterImageDelegates replaces the image table of the default binding.
func RegisterImageDelegates(d ImageDelegates) { defaultBinding.RegisterImage(d) }

// RegisterPaintDelegates replaces the paint table of the default binding.
func RegisterPaintDelegates(d PaintDelegates) { defaultBinding.RegisterPaint(d) }

// RegisterRendererDelegates replaces the renderer table of the default binding.
func RegisterRendererDelegates(d RendererDelegates) { defaultBinding.RegisterRenderer(d) }

// RegisterFactoryDelegates replaces the factory table of the default binding.
func RegisterFactoryDelegates(d FactoryDelegates) { defaultBinding.RegisterFactory(d) }
