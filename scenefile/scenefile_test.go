package scenefile_test

import (
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/gogpu/rive/engine"
	"github.com/gogpu/rive/host"
	"github.com/gogpu/rive/hosttest"
	"github.com/gogpu/rive/scenefile"
)

const twoArtboards = `
artboards:
  - name: A
    width: 100
    height: 50
    shapes:
      - name: dot
        rect: [0, 0, 10, 10]
        fill: {color: "#00ff00"}
    animations:
      - {name: idle, duration: 0}
  - name: B
    width: 200
    height: 120
    background: "#ffffff"
    shapes:
      - name: box
        x: 10
        y: 20
        path: "M0 0 L40 0 L40 40 L0 40 Z"
        fill: {color: "#ff0000"}
        stroke: {color: "#000000", thickness: 2, join: round, cap: square}
    animations:
      - name: slide
        fps: 30
        duration: 30
        keys:
          - shape: box
            property: x
            frames: [{frame: 0, value: 10}, {frame: 30, value: 70}]
      - name: spin
        fps: 10
        duration: 10
        loop: loop
        keys:
          - {shape: box, property: rotation, frames: [{frame: 0, value: 0}, {frame: 10, value: 360}]}
    stateMachines:
      - name: toggle
        inputs:
          - {name: on, type: bool}
          - {name: speed, type: number, value: 1}
          - {name: kick, type: trigger}
        states:
          - {name: idle}
          - {name: sliding, animation: slide}
          - {name: spinning, animation: spin}
        transitions:
          - {from: idle, to: sliding, conditions: [{input: on, op: eq, value: true}]}
          - {from: any, to: spinning, conditions: [{input: kick}]}
          - {from: spinning, to: idle, conditions: [{input: speed, op: gte, value: 5}]}
        listeners:
          - {shape: box, event: down, input: on, action: toggle}
          - {shape: box, event: up, input: speed, action: set, value: 7}
`

type fixture struct {
	rec     *hosttest.Recorder
	factory *host.FactoryAdapter
	canvas  host.Handle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := hosttest.New()
	return &fixture{
		rec:     rec,
		factory: host.NewFactoryAdapter(rec.NewBinding(), rec.NewFactory()),
		canvas:  rec.NewCanvas(),
	}
}

func (fx *fixture) renderer() engine.Renderer {
	return host.NewRendererAdapter(fx.factory.Binding(), fx.canvas)
}

func (fx *fixture) open(t *testing.T, doc string) *scenefile.File {
	t.Helper()
	f, err := scenefile.Open([]byte(doc), fx.factory)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return f
}

func (fx *fixture) checkClean(t *testing.T) {
	t.Helper()
	for _, e := range fx.rec.Errors() {
		t.Errorf("host protocol error: %s", e)
	}
}

func pngBase64(w, h int) string {
	return base64.StdEncoding.EncodeToString(hosttest.PNG(w, h, color.White))
}

func TestFileArtboards(t *testing.T) {
	fx := newFixture(t)
	f := fx.open(t, twoArtboards)
	defer f.Release()

	if got := f.ArtboardCount(); got != 2 {
		t.Fatalf("ArtboardCount() = %d, want 2", got)
	}
	if got := f.ArtboardName(1); got != "B" {
		t.Errorf("ArtboardName(1) = %q, want B", got)
	}
	if got := f.ArtboardName(5); got != "" {
		t.Errorf("ArtboardName(5) = %q, want empty", got)
	}

	def := f.ArtboardDefault()
	if def == nil || def.Name() != "A" {
		t.Fatalf("ArtboardDefault() = %v, want A", def)
	}
	def.Release()

	b := f.ArtboardNamed("B")
	if b == nil {
		t.Fatal("ArtboardNamed(B) = nil")
	}
	defer b.Release()
	if bounds := b.Bounds(); bounds.Width() != 200 || bounds.Height() != 120 {
		t.Errorf("Bounds() = %+v", bounds)
	}
	if b.AnimationCount() != 2 || b.AnimationName(0) != "slide" {
		t.Errorf("animations = %d, first %q", b.AnimationCount(), b.AnimationName(0))
	}
	if b.StateMachineCount() != 1 || b.StateMachineName(0) != "toggle" {
		t.Errorf("state machines = %d, first %q", b.StateMachineCount(), b.StateMachineName(0))
	}

	if f.ArtboardNamed("missing") != nil {
		t.Error("ArtboardNamed(missing) != nil")
	}
	if f.ArtboardAt(-1) != nil {
		t.Error("ArtboardAt(-1) != nil")
	}
	if b.AnimationNamed("missing") != nil || b.StateMachineAt(3) != nil {
		t.Error("lookup of absent scene returned a value")
	}
}

func TestArtboardReleasesEverything(t *testing.T) {
	fx := newFixture(t)
	f := fx.open(t, twoArtboards)

	ab := f.ArtboardNamed("B")
	if fx.rec.LiveKind(hosttest.KindPath) == 0 || fx.rec.LiveKind(hosttest.KindPaint) == 0 {
		t.Fatal("artboard allocated no paths or paints")
	}
	ab.Release()
	ab.Release()
	f.Release()

	if n := fx.rec.LiveKind(hosttest.KindPath); n != 0 {
		t.Errorf("%d paths leaked", n)
	}
	if n := fx.rec.LiveKind(hosttest.KindPaint); n != 0 {
		t.Errorf("%d paints leaked", n)
	}
	fx.checkClean(t)
}

func TestDrawOrder(t *testing.T) {
	fx := newFixture(t)
	f := fx.open(t, twoArtboards)
	defer f.Release()
	ab := f.ArtboardNamed("B")
	defer ab.Release()
	sc := ab.AnimationAt(0)
	defer sc.Release()

	fx.rec.ResetCalls()
	sc.Draw(fx.renderer())

	want := []string{
		"Renderer.Save",
		"Renderer.ClipPath",
		"Renderer.DrawPath", // background
		"Renderer.Save",
		"Renderer.Transform",
		"Renderer.DrawPath", // fill
		"Renderer.DrawPath", // stroke
		"Renderer.Restore",
		"Renderer.Restore",
	}
	got := fx.rec.Ops()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, got[i], want[i])
		}
	}
	tr := fx.rec.CallsTo("Renderer.Transform")[0].Args
	if tr[4] != float32(10) || tr[5] != float32(20) {
		t.Errorf("shape translation = %v, %v, want 10, 20", tr[4], tr[5])
	}
	fx.checkClean(t)
}

func TestTranslucency(t *testing.T) {
	fx := newFixture(t)
	f := fx.open(t, twoArtboards)
	defer f.Release()

	a := f.ArtboardNamed("A")
	defer a.Release()
	b := f.ArtboardNamed("B")
	defer b.Release()

	if sc := a.AnimationAt(0); !sc.IsTranslucent() {
		t.Error("artboard without background reported opaque")
	}
	if sc := b.AnimationAt(0); sc.IsTranslucent() {
		t.Error("artboard with opaque background reported translucent")
	}
}

func TestImagesAreShared(t *testing.T) {
	doc := `
images:
  - name: tex
    data: ` + pngBase64(8, 4) + `
artboards:
  - name: main
    width: 10
    height: 10
    shapes:
      - {name: pic, image: tex}
      - name: warp
        image: tex
        mesh: {vertices: [0, 0, 8, 0, 0, 4], uvs: [0, 0, 1, 0, 0, 1], indices: [0, 1, 2]}
`
	fx := newFixture(t)
	f := fx.open(t, doc)
	if n := fx.rec.Count("Factory.DecodeImage"); n != 1 {
		t.Errorf("DecodeImage calls = %d, want 1", n)
	}

	ab1 := f.ArtboardDefault()
	ab2 := f.ArtboardDefault()
	if n := fx.rec.Count("Factory.DecodeImage"); n != 1 {
		t.Errorf("instancing decoded images again: %d calls", n)
	}

	ab1.Release()
	ab2.Release()
	if n := fx.rec.Count("Image.Release"); n != 0 {
		t.Fatalf("image released before the file: %d", n)
	}
	f.Release()
	if n := fx.rec.Count("Image.Release"); n != 1 {
		t.Errorf("Image.Release calls = %d, want 1", n)
	}
	fx.checkClean(t)
}

func TestImageAndMeshDraw(t *testing.T) {
	doc := `
images:
  - name: tex
    data: ` + pngBase64(8, 4) + `
artboards:
  - name: main
    width: 10
    height: 10
    clip: false
    shapes:
      - {name: pic, image: tex, blend: multiply, opacity: 0.5}
      - name: warp
        image: tex
        mesh: {vertices: [0, 0, 8, 0, 0, 4], uvs: [0, 0, 1, 0, 0, 1], indices: [0, 1, 2]}
    animations:
      - {name: still, duration: 0}
`
	fx := newFixture(t)
	f := fx.open(t, doc)
	defer f.Release()
	ab := f.ArtboardDefault()
	defer ab.Release()
	sc := ab.AnimationAt(0)

	fx.rec.ResetCalls()
	sc.Draw(fx.renderer())

	img := fx.rec.CallsTo("Renderer.DrawImage")
	if len(img) != 1 {
		t.Fatalf("DrawImage calls = %d, want 1", len(img))
	}
	if img[0].Args[1] != int32(24) || img[0].Args[2] != float32(0.5) {
		t.Errorf("DrawImage blend, opacity = %v, %v", img[0].Args[1], img[0].Args[2])
	}
	mesh := fx.rec.CallsTo("Renderer.DrawImageMesh")
	if len(mesh) != 1 {
		t.Fatalf("DrawImageMesh calls = %d, want 1", len(mesh))
	}
	uvs := mesh[0].Args[2].([]float32)
	want := []float32{0, 0, 8, 0, 0, 4}
	for i := range want {
		if uvs[i] != want[i] {
			t.Fatalf("uvs = %v, want %v", uvs, want)
		}
	}
	if fx.rec.Count("Renderer.ClipPath") != 0 {
		t.Error("clip: false still clipped")
	}
	fx.checkClean(t)
}

func TestImageDecodeFailure(t *testing.T) {
	doc := `
images:
  - {name: ok, data: ` + pngBase64(1, 1) + `}
  - {name: bad, data: ` + base64.StdEncoding.EncodeToString([]byte("garbage")) + `}
artboards: []
`
	fx := newFixture(t)
	_, err := scenefile.Import([]byte(doc), fx.factory)
	if err == nil {
		t.Fatal("Import succeeded with undecodable image")
	}
	if scenefile.IsInvalid(err) {
		t.Errorf("decode failure reported as invalid document: %v", err)
	}
	if n := fx.rec.LiveKind(hosttest.KindImage); n != 0 {
		t.Errorf("%d images leaked after failed import", n)
	}
}

func TestGradientFill(t *testing.T) {
	doc := `
artboards:
  - name: g
    width: 10
    height: 10
    shapes:
      - name: lin
        rect: [0, 0, 10, 10]
        fill:
          linear:
            start: [0, 0]
            end: [10, 0]
            stops: [{offset: 0, color: "#ff0000"}, {offset: 1, color: "#0000ff80"}]
      - name: rad
        rect: [0, 0, 10, 10]
        stroke:
          radial: {center: [5, 5], radius: 5, stops: [{offset: 0, color: "#fff"}, {offset: 1, color: "#000"}]}
`
	fx := newFixture(t)
	f := fx.open(t, doc)
	defer f.Release()
	ab := f.ArtboardDefault()
	defer ab.Release()

	lin := fx.rec.CallsTo("Paint.LinearGradient")
	if len(lin) != 1 {
		t.Fatalf("LinearGradient calls = %d, want 1", len(lin))
	}
	colors := lin[0].Args[4].([]uint32)
	if colors[0] != 0xffff0000 || colors[1] != 0x800000ff {
		t.Errorf("colors = %x", colors)
	}
	if n := fx.rec.Count("Paint.RadialGradient"); n != 1 {
		t.Errorf("RadialGradient calls = %d, want 1", n)
	}
}
