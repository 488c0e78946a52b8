package bridge_test

import (
	"math"
	"testing"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/bridge"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestMat2DRoundTrip(t *testing.T) {
	mats := []rive.Mat2D{
		rive.Identity(),
		rive.Translate(10, -4),
		rive.Scale(2, 0.5).Mul(rive.Rotation(0.7)),
		rive.Mat2DFromValues(1, 2, 3, 4, 5, 6),
	}
	for _, m := range mats {
		inv, ok := bridge.Mat2DInvert(m)
		if !ok {
			t.Fatalf("Mat2DInvert(%v) failed", m)
		}
		got := bridge.Mat2DMultiply(m, inv)
		x1, y1, x2, y2, tx, ty := got.Values()
		if !near(x1, 1) || !near(y1, 0) || !near(x2, 0) || !near(y2, 1) || !near(tx, 0) || !near(ty, 0) {
			t.Errorf("m × inv(m) = %v, want identity", got)
		}
	}
}

func TestMat2DInvertSingular(t *testing.T) {
	for _, m := range []rive.Mat2D{
		rive.Scale(0, 1),
		rive.Mat2DFromValues(1, 2, 2, 4, 0, 0),
	} {
		if _, ok := bridge.Mat2DInvert(m); ok {
			t.Errorf("Mat2DInvert(%v) succeeded", m)
		}
	}
}

func TestMat2DMultiplyVec2D(t *testing.T) {
	m := rive.Translate(5, 6).Mul(rive.Scale(2, 3))
	got := bridge.Mat2DMultiplyVec2D(m, rive.Vec(1, 1))
	if !near(got.X, 7) || !near(got.Y, 9) {
		t.Errorf("got %v, want (7, 9)", got)
	}
}

func TestComputeAlignment(t *testing.T) {
	frame := rive.NewAABB(0, 0, 200, 100)
	content := rive.NewAABB(0, 0, 50, 50)

	m := bridge.ComputeAlignment(rive.FitContain, 0, 0, frame, content)
	tl := m.MulVec(rive.Vec(0, 0))
	br := m.MulVec(rive.Vec(50, 50))
	if !near(tl.X, 50) || !near(tl.Y, 0) || !near(br.X, 150) || !near(br.Y, 100) {
		t.Errorf("contain/center maps content to (%v)-(%v)", tl, br)
	}

	m = bridge.ComputeAlignment(rive.FitNone, -1, -1, frame, content)
	if p := m.MulVec(rive.Vec(0, 0)); !near(p.X, 0) || !near(p.Y, 0) {
		t.Errorf("none/top-left maps origin to %v", p)
	}
}
