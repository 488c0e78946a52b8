package rive

// Fit selects how content is scaled into a frame.
type Fit int32

const (
	FitFill Fit = iota
	FitContain
	FitCover
	FitWidth
	FitHeight
	FitNone
	FitScaleDown
)

var fitNames = [...]string{
	FitFill:      "Fill",
	FitContain:   "Contain",
	FitCover:     "Cover",
	FitWidth:     "FitWidth",
	FitHeight:    "FitHeight",
	FitNone:      "None",
	FitScaleDown: "ScaleDown",
}

// String returns the name of the fit mode.
func (f Fit) String() string {
	if f >= 0 && int(f) < len(fitNames) {
		return fitNames[f]
	}
	return "Unknown"
}

// Alignment anchors content within a frame. Each component ranges from -1
// (left/top) to 1 (right/bottom); 0 centers.
type Alignment struct {
	X, Y float32
}

// Predefined alignments.
var (
	TopLeft      = Alignment{-1, -1}
	TopCenter    = Alignment{0, -1}
	TopRight     = Alignment{1, -1}
	CenterLeft   = Alignment{-1, 0}
	Center       = Alignment{0, 0}
	CenterRight  = Alignment{1, 0}
	BottomLeft   = Alignment{-1, 1}
	BottomCenter = Alignment{0, 1}
	BottomRight  = Alignment{1, 1}
)

// ComputeAlignment returns the transform that places content into frame
// according to fit and alignment. The content's anchor point (chosen by
// alignment) lands on the frame's anchor point.
//
// Content with zero width or height yields a non-finite scale for the
// modes that divide by it; callers should not align empty content.
func ComputeAlignment(fit Fit, alignment Alignment, frame, content AABB) Mat2D {
	cw := content.Width()
	ch := content.Height()
	x := -content.MinX - cw*0.5 - alignment.X*cw*0.5
	y := -content.MinY - ch*0.5 - alignment.Y*ch*0.5

	sx, sy := float32(1), float32(1)
	switch fit {
	case FitFill:
		sx = frame.Width() / cw
		sy = frame.Height() / ch
	case FitContain:
		s := min(frame.Width()/cw, frame.Height()/ch)
		sx, sy = s, s
	case FitCover:
		s := max(frame.Width()/cw, frame.Height()/ch)
		sx, sy = s, s
	case FitHeight:
		s := frame.Height() / ch
		sx, sy = s, s
	case FitWidth:
		s := frame.Width() / cw
		sx, sy = s, s
	case FitNone:
	case FitScaleDown:
		s := min(frame.Width()/cw, frame.Height()/ch)
		if s > 1 {
			s = 1
		}
		sx, sy = s, s
	}

	tx := frame.MinX + frame.Width()*0.5 + alignment.X*frame.Width()*0.5
	ty := frame.MinY + frame.Height()*0.5 + alignment.Y*frame.Height()*0.5

	return Translate(tx, ty).Mul(Scale(sx, sy)).Mul(Translate(x, y))
}
