package scenefile

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/gogpu/rive"
)

// parsePathData converts SVG-style path data into raw points and verbs.
func parsePathData(d string) ([]rive.Vec2D, []rive.PathVerb, error) {
	p := pathParser{src: d}
	if err := p.parse(); err != nil {
		return nil, nil, err
	}
	return p.points, p.verbs, nil
}

type pathParser struct {
	src    string
	pos    int
	points []rive.Vec2D
	verbs  []rive.PathVerb

	cur, start rive.Vec2D
	open       bool
}

func (p *pathParser) parse() error {
	var cmd byte
	for {
		p.skipSeparators()
		if p.pos >= len(p.src) {
			break
		}
		c := p.src[p.pos]
		switch {
		case isCommand(c):
			if len(p.verbs) == 0 && c != 'M' && c != 'm' {
				return fmt.Errorf("path must start with a moveto, found %q", c)
			}
			cmd = c
			p.pos++
		case cmd == 0:
			return fmt.Errorf("path must start with a command, found %q", c)
		case cmd == 'Z' || cmd == 'z':
			return fmt.Errorf("unexpected number after close at offset %d", p.pos)
		}

		if err := p.command(cmd); err != nil {
			return err
		}
		// A repeated moveto continues as lineto.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	return nil
}

func (p *pathParser) command(cmd byte) error {
	rel := unicode.IsLower(rune(cmd))
	base := rive.Vec2D{}
	if rel {
		base = p.cur
	}

	switch unicode.ToUpper(rune(cmd)) {
	case 'M':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.emit(rive.VerbMove, pt)
		p.start, p.open = pt, true
	case 'L':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.lineTo(pt)
	case 'H':
		x, err := p.number()
		if err != nil {
			return err
		}
		p.lineTo(rive.Vec2D{X: base.X + x, Y: p.cur.Y})
	case 'V':
		y, err := p.number()
		if err != nil {
			return err
		}
		p.lineTo(rive.Vec2D{X: p.cur.X, Y: base.Y + y})
	case 'Q':
		pts, err := p.pointList(base, 2)
		if err != nil {
			return err
		}
		p.implicitMove()
		p.emit(rive.VerbQuad, pts...)
	case 'C':
		pts, err := p.pointList(base, 3)
		if err != nil {
			return err
		}
		p.implicitMove()
		p.emit(rive.VerbCubic, pts...)
	case 'Z':
		if p.open {
			p.verbs = append(p.verbs, rive.VerbClose)
			p.open = false
		}
		p.cur = p.start
	}
	return nil
}

func (p *pathParser) lineTo(pt rive.Vec2D) {
	p.implicitMove()
	p.emit(rive.VerbLine, pt)
}

// implicitMove starts a new contour at the current point after a close.
func (p *pathParser) implicitMove() {
	if !p.open {
		p.emit(rive.VerbMove, p.cur)
		p.start, p.open = p.cur, true
	}
}

func (p *pathParser) emit(v rive.PathVerb, pts ...rive.Vec2D) {
	p.verbs = append(p.verbs, v)
	p.points = append(p.points, pts...)
	if len(pts) > 0 {
		p.cur = pts[len(pts)-1]
	}
}

func (p *pathParser) pointList(base rive.Vec2D, n int) ([]rive.Vec2D, error) {
	pts := make([]rive.Vec2D, n)
	for i := range pts {
		pt, err := p.point(base)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}

func (p *pathParser) point(base rive.Vec2D) (rive.Vec2D, error) {
	x, err := p.number()
	if err != nil {
		return rive.Vec2D{}, err
	}
	y, err := p.number()
	if err != nil {
		return rive.Vec2D{}, err
	}
	return rive.Vec2D{X: base.X + x, Y: base.Y + y}, nil
}

func (p *pathParser) number() (float32, error) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		p.pos++
	}
	digits := false
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
		digits = true
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
			digits = true
		}
	}
	if digits && p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
			p.pos++
		}
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}
	if !digits {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", p.src[start:p.pos], err)
	}
	return float32(v), nil
}

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'Q', 'q', 'C', 'c', 'Z', 'z':
		return true
	}
	return false
}

func rectPath(x, y, w, h float32) ([]rive.Vec2D, []rive.PathVerb) {
	return []rive.Vec2D{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		}, []rive.PathVerb{
			rive.VerbMove, rive.VerbLine, rive.VerbLine, rive.VerbLine, rive.VerbClose,
		}
}
