package rive

import "testing"

func TestComputeAlignment(t *testing.T) {
	frame := NewAABB(0, 0, 200, 100)
	content := NewAABB(0, 0, 50, 50)

	tests := []struct {
		name    string
		fit     Fit
		align   Alignment
		wantMin Vec2D // where content (MinX, MinY) lands
		wantMax Vec2D // where content (MaxX, MaxY) lands
	}{
		{"fill", FitFill, Center, Vec(0, 0), Vec(200, 100)},
		{"contain center", FitContain, Center, Vec(50, 0), Vec(150, 100)},
		{"contain left", FitContain, CenterLeft, Vec(0, 0), Vec(100, 100)},
		{"contain right", FitContain, CenterRight, Vec(100, 0), Vec(200, 100)},
		{"cover center", FitCover, Center, Vec(0, -50), Vec(200, 150)},
		{"cover top", FitCover, TopCenter, Vec(0, 0), Vec(200, 200)},
		{"fit width", FitWidth, Center, Vec(0, -50), Vec(200, 150)},
		{"fit height", FitHeight, Center, Vec(50, 0), Vec(150, 100)},
		{"none center", FitNone, Center, Vec(75, 25), Vec(125, 75)},
		{"none top left", FitNone, TopLeft, Vec(0, 0), Vec(50, 50)},
		{"none bottom right", FitNone, BottomRight, Vec(150, 50), Vec(200, 100)},
		{"scale down keeps size", FitScaleDown, Center, Vec(75, 25), Vec(125, 75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeAlignment(tt.fit, tt.align, frame, content)
			gotMin := m.MulVec(Vec(content.MinX, content.MinY))
			gotMax := m.MulVec(Vec(content.MaxX, content.MaxY))
			if !near(gotMin.X, tt.wantMin.X) || !near(gotMin.Y, tt.wantMin.Y) {
				t.Errorf("min corner -> %v, want %v", gotMin, tt.wantMin)
			}
			if !near(gotMax.X, tt.wantMax.X) || !near(gotMax.Y, tt.wantMax.Y) {
				t.Errorf("max corner -> %v, want %v", gotMax, tt.wantMax)
			}
		})
	}
}

func TestComputeAlignmentScaleDownShrinks(t *testing.T) {
	frame := NewAABB(0, 0, 100, 100)
	content := NewAABB(0, 0, 400, 200)
	m := ComputeAlignment(FitScaleDown, Center, frame, content)
	p := m.MulVec(Vec(400, 200))
	if !near(p.X, 100) || !near(p.Y, 75) {
		t.Errorf("content corner -> %v, want (100, 75)", p)
	}
}

func TestComputeAlignmentOffsetContent(t *testing.T) {
	frame := NewAABB(10, 10, 110, 110)
	content := NewAABB(-50, -50, 50, 50)
	m := ComputeAlignment(FitContain, Center, frame, content)
	c := m.MulVec(Vec(0, 0))
	if !near(c.X, 60) || !near(c.Y, 60) {
		t.Errorf("content center -> %v, want frame center (60, 60)", c)
	}
}

func TestFitString(t *testing.T) {
	if FitCover.String() != "Cover" || Fit(99).String() != "Unknown" {
		t.Errorf("unexpected names %q %q", FitCover, Fit(99))
	}
}
