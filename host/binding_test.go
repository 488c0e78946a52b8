package host_test

import (
	"testing"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/host"
	"github.com/gogpu/rive/hosttest"
)

func expectPanic(t *testing.T, want any, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		got := recover()
		if got == nil {
			t.Fatalf("expected panic %v", want)
		}
		if got != want {
			t.Fatalf("panic = %v, want %v", got, want)
		}
	}()
	fn()
}

func TestUnregisteredTablePanics(t *testing.T) {
	b := host.NewBinding()

	tests := []struct {
		name string
		want string
		fn   func()
	}{
		{"path", "host: Path delegates not registered", func() {
			host.NewPathAdapter(b, 1).MoveTo(0, 0)
		}},
		{"image", "host: Image delegates not registered", func() {
			host.NewImageAdapter(b, 1)
		}},
		{"paint", "host: Paint delegates not registered", func() {
			host.NewPaintAdapter(b, 1).SetThickness(1)
		}},
		{"renderer", "host: Renderer delegates not registered", func() {
			host.NewRendererAdapter(b, 1).Save()
		}},
		{"factory", "host: Factory delegates not registered", func() {
			host.NewFactoryAdapter(b, 1).MakeRenderPaint()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanic(t, tt.want, tt.fn)
		})
	}
}

func TestNilDelegatePanics(t *testing.T) {
	b := host.NewBinding()
	b.RegisterPath(host.PathDelegates{})
	b.RegisterPaint(host.PaintDelegates{})

	expectPanic(t, "host: Path.LineTo delegate is nil", func() {
		host.NewPathAdapter(b, 1).LineTo(1, 2)
	})
	expectPanic(t, "host: Paint.LinearGradient delegate is nil", func() {
		shader := host.NewFactoryAdapter(b, 1).MakeLinearGradient(0, 0, 1, 1, nil, nil)
		host.NewPaintAdapter(b, 2).SetShader(shader)
	})
}

func TestRegistered(t *testing.T) {
	b := host.NewBinding()
	if b.Registered(host.CapabilityPath) {
		t.Error("new binding reports Path registered")
	}
	hosttest.New().Bind(b)
	for _, c := range []host.Capability{
		host.CapabilityPath, host.CapabilityImage, host.CapabilityPaint,
		host.CapabilityRenderer, host.CapabilityFactory,
	} {
		if !b.Registered(c) {
			t.Errorf("Registered(%v) = false after Bind", c)
		}
	}
}

func TestReregistrationReplacesTable(t *testing.T) {
	b := host.NewBinding()
	var first, second int
	b.RegisterPath(host.PathDelegates{Close: func(host.Handle) { first++ }})
	p := host.NewPathAdapter(b, 1)
	p.Close()

	b.RegisterPath(host.PathDelegates{Close: func(host.Handle) { second++ }})
	p.Close()

	if first != 1 || second != 1 {
		t.Errorf("calls = %d, %d, want 1, 1", first, second)
	}
}

func TestBindingsAreIndependent(t *testing.T) {
	r1, r2 := hosttest.New(), hosttest.New()
	b1, b2 := r1.NewBinding(), r2.NewBinding()

	f1 := host.NewFactoryAdapter(b1, r1.NewFactory())
	f2 := host.NewFactoryAdapter(b2, r2.NewFactory())
	f1.MakeRenderPath([]rive.Vec2D{{X: 1, Y: 2}}, []rive.PathVerb{rive.VerbMove}, rive.FillNonZero)

	if got := r1.Count("Factory.MakeRenderPath"); got != 1 {
		t.Errorf("first host saw %d MakeRenderPath calls, want 1", got)
	}
	if got := r2.Count("Factory.MakeRenderPath"); got != 0 {
		t.Errorf("second host saw %d MakeRenderPath calls, want 0", got)
	}
	f1.Release()
	f2.Release()
}

func TestDefaultBinding(t *testing.T) {
	r := hosttest.New()
	host.RegisterPathDelegates(r.PathDelegates())
	host.RegisterImageDelegates(r.ImageDelegates())
	host.RegisterPaintDelegates(r.PaintDelegates())
	host.RegisterRendererDelegates(r.RendererDelegates())
	host.RegisterFactoryDelegates(r.FactoryDelegates())

	f := host.NewFactoryAdapter(host.Default(), r.NewFactory())
	p := f.MakeEmptyRenderPath()
	p.Release()
	f.Release()

	if got := r.Live(); got != 0 {
		t.Errorf("Live() = %d, want 0", got)
	}
}

func TestCapabilityString(t *testing.T) {
	tests := []struct {
		c    host.Capability
		want string
	}{
		{host.CapabilityPath, "Path"},
		{host.CapabilityImage, "Image"},
		{host.CapabilityPaint, "Paint"},
		{host.CapabilityRenderer, "Renderer"},
		{host.CapabilityFactory, "Factory"},
		{host.Capability(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Capability(%d).String() = %q, want %q", int(tt.c), got, tt.want)
		}
	}
}
