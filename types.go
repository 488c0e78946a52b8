package rive

import (
	"fmt"
	"strings"
)

// FillRule selects how the interior of a path is determined.
type FillRule int32

const (
	FillNonZero FillRule = 0
	FillEvenOdd FillRule = 1
)

// String returns the name of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	}
	return fmt.Sprintf("FillRule(%d)", int32(r))
}

// PaintStyle selects whether a paint strokes or fills.
type PaintStyle int32

const (
	StyleStroke PaintStyle = 0
	StyleFill   PaintStyle = 1
)

// String returns the name of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case StyleStroke:
		return "Stroke"
	case StyleFill:
		return "Fill"
	}
	return fmt.Sprintf("PaintStyle(%d)", int32(s))
}

// StrokeJoin is the shape used where two stroked segments meet.
type StrokeJoin int32

const (
	JoinMiter StrokeJoin = 0
	JoinRound StrokeJoin = 1
	JoinBevel StrokeJoin = 2
)

// StrokeCap is the shape used at the ends of open stroked subpaths.
type StrokeCap int32

const (
	CapButt   StrokeCap = 0
	CapRound  StrokeCap = 1
	CapSquare StrokeCap = 2
)

// BlendMode is the compositing operator. Values match the engine's wire
// numbering, which is why the sequence starts at 3 and skips 4 through 13.
type BlendMode int32

const (
	BlendSrcOver    BlendMode = 3
	BlendScreen     BlendMode = 14
	BlendOverlay    BlendMode = 15
	BlendDarken     BlendMode = 16
	BlendLighten    BlendMode = 17
	BlendColorDodge BlendMode = 18
	BlendColorBurn  BlendMode = 19
	BlendHardLight  BlendMode = 20
	BlendSoftLight  BlendMode = 21
	BlendDifference BlendMode = 22
	BlendExclusion  BlendMode = 23
	BlendMultiply   BlendMode = 24
	BlendHue        BlendMode = 25
	BlendSaturation BlendMode = 26
	BlendColor      BlendMode = 27
	BlendLuminosity BlendMode = 28
)

var blendModeNames = map[BlendMode]string{
	BlendSrcOver:    "SrcOver",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendColorDodge: "ColorDodge",
	BlendColorBurn:  "ColorBurn",
	BlendHardLight:  "HardLight",
	BlendSoftLight:  "SoftLight",
	BlendDifference: "Difference",
	BlendExclusion:  "Exclusion",
	BlendMultiply:   "Multiply",
	BlendHue:        "Hue",
	BlendSaturation: "Saturation",
	BlendColor:      "Color",
	BlendLuminosity: "Luminosity",
}

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	if name, ok := blendModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("BlendMode(%d)", int32(m))
}

// ParseBlendMode looks a blend mode up by name, ignoring case.
func ParseBlendMode(name string) (BlendMode, bool) {
	for m, n := range blendModeNames {
		if strings.EqualFold(n, name) {
			return m, true
		}
	}
	return 0, false
}

// Loop is the playback mode of a linear animation.
type Loop int32

const (
	// LoopOneShot plays until the end of the animation.
	LoopOneShot Loop = 0
	// LoopLoop jumps back to the start after reaching the end.
	LoopLoop Loop = 1
	// LoopPingPong plays to the end and then back to the start.
	LoopPingPong Loop = 2
)

// String returns the name of the loop mode.
func (l Loop) String() string {
	switch l {
	case LoopOneShot:
		return "OneShot"
	case LoopLoop:
		return "Loop"
	case LoopPingPong:
		return "PingPong"
	}
	return fmt.Sprintf("Loop(%d)", int32(l))
}

// PathVerb is one command of a raw path, as passed to
// engine.Factory.MakeRenderPath.
type PathVerb uint8

const (
	VerbMove  PathVerb = 0 // 1 point
	VerbLine  PathVerb = 1 // 1 point
	VerbQuad  PathVerb = 2 // 2 points
	VerbCubic PathVerb = 4 // 3 points
	VerbClose PathVerb = 5 // no points
)

// PointCount returns the number of points consumed by the verb, or -1 for
// an unknown verb.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	case VerbClose:
		return 0
	}
	return -1
}

// ColorInt is a packed 0xAARRGGBB color.
type ColorInt uint32

// ARGB packs the four channels.
func ARGB(a, r, g, b uint8) ColorInt {
	return ColorInt(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c ColorInt) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ColorInt) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ColorInt) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ColorInt) Blue() uint8 { return uint8(c) }

// WithOpacity returns c with its alpha multiplied by opacity (clamped to [0,1]).
func (c ColorInt) WithOpacity(opacity float32) ColorInt {
	opacity = max(0, min(1, opacity))
	a := uint8(float32(c.Alpha())*opacity + 0.5)
	return ColorInt(uint32(c)&0x00ffffff | uint32(a)<<24)
}
