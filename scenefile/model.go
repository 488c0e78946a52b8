package scenefile

import (
	"encoding/base64"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gogpu/rive"
)

// Validated, immutable form of a document shared by every instance.

type model struct {
	images    []imageModel
	artboards []*artboardModel
}

type imageModel struct {
	name string
	data []byte
}

type artboardModel struct {
	name          string
	width, height float32
	background    rive.ColorInt
	hasBackground bool
	clip          bool
	shapes        []*shapeModel
	animations    []*animationModel
	machines      []*machineModel
}

type shapeModel struct {
	name           string
	x, y, rotation float32
	scaleX, scaleY float32
	opacity        float32
	points         []rive.Vec2D
	verbs          []rive.PathVerb
	fillRule       rive.FillRule
	fill, stroke   *paintModel
	blend          rive.BlendMode
	image          int
	mesh           *meshModel
	bounds         rive.AABB
}

type paintModel struct {
	color     rive.ColorInt
	gradient  *gradientModel
	thickness float32
	join      rive.StrokeJoin
	cap       rive.StrokeCap
}

type gradientModel struct {
	radial         bool
	x0, y0, x1, y1 float32
	radius         float32
	colors         []rive.ColorInt
	stops          []float32
}

type meshModel struct {
	vertices []float32
	uvs      []float32
	indices  []uint16
}

type property int

const (
	propX property = iota
	propY
	propRotation
	propScaleX
	propScaleY
	propOpacity
)

var propertyNames = map[string]property{
	"x":        propX,
	"y":        propY,
	"rotation": propRotation,
	"scaleX":   propScaleX,
	"scaleY":   propScaleY,
	"opacity":  propOpacity,
}

type animationModel struct {
	name     string
	fps      float32
	duration float32 // frames
	loop     rive.Loop
	keys     []keyModel
}

func (a *animationModel) seconds() float64 {
	return float64(a.duration) / float64(a.fps)
}

type keyModel struct {
	shape    int
	property property
	frames   []frameDoc
}

type inputModel struct {
	name  string
	kind  inputKind
	value float32
}

type inputKind int

const (
	kindBool inputKind = iota
	kindNumber
	kindTrigger
)

type machineModel struct {
	name        string
	inputs      []inputModel
	states      []stateModel
	transitions []transitionModel
	listeners   []listenerModel
}

type stateModel struct {
	name      string
	animation int // -1 when the state plays nothing
}

const anyState = -1

type transitionModel struct {
	from, to   int
	conditions []conditionModel
}

type compareOp int

const (
	opEq compareOp = iota
	opNe
	opLt
	opLte
	opGt
	opGte
)

var opNames = map[string]compareOp{
	"eq": opEq, "ne": opNe, "lt": opLt, "lte": opLte, "gt": opGt, "gte": opGte,
}

type conditionModel struct {
	input int
	op    compareOp
	value float32
}

type pointerEvent int

const (
	eventDown pointerEvent = iota
	eventUp
	eventMove
)

type listenerAction int

const (
	actionSet listenerAction = iota
	actionToggle
	actionFire
)

type listenerModel struct {
	shape  int
	event  pointerEvent
	input  int
	action listenerAction
	value  float32
}

// compiler accumulates context for error messages.
type compiler struct {
	path []string
}

func (c *compiler) errorf(format string, args ...any) error {
	where := strings.Join(c.path, ": ")
	if where != "" {
		where += ": "
	}
	return fmt.Errorf("%w: %s%s", ErrInvalidDocument, where, fmt.Sprintf(format, args...))
}

func (c *compiler) push(format string, args ...any) {
	c.path = append(c.path, fmt.Sprintf(format, args...))
}
func (c *compiler) pop() { c.path = c.path[:len(c.path)-1] }

func compile(doc *document) (*model, error) {
	c := &compiler{}
	m := &model{}

	imageIndex := make(map[string]int, len(doc.Images))
	for _, img := range doc.Images {
		if img.Name == "" {
			return nil, c.errorf("image without a name")
		}
		if _, dup := imageIndex[img.Name]; dup {
			return nil, c.errorf("duplicate image %q", img.Name)
		}
		data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(img.Data), ""))
		if err != nil {
			return nil, c.errorf("image %q: %v", img.Name, err)
		}
		imageIndex[img.Name] = len(m.images)
		m.images = append(m.images, imageModel{name: img.Name, data: data})
	}

	seen := make(map[string]bool, len(doc.Artboards))
	for i := range doc.Artboards {
		ad := &doc.Artboards[i]
		if seen[ad.Name] {
			return nil, c.errorf("duplicate artboard %q", ad.Name)
		}
		seen[ad.Name] = true
		c.push("artboard %q", ad.Name)
		ab, err := c.artboard(ad, imageIndex)
		if err != nil {
			return nil, err
		}
		c.pop()
		m.artboards = append(m.artboards, ab)
	}
	return m, nil
}

func (c *compiler) artboard(ad *artboardDoc, images map[string]int) (*artboardModel, error) {
	if ad.Width < 0 || ad.Height < 0 {
		return nil, c.errorf("negative size %vx%v", ad.Width, ad.Height)
	}
	ab := &artboardModel{
		name:   ad.Name,
		width:  ad.Width,
		height: ad.Height,
		clip:   ad.Clip == nil || *ad.Clip,
	}
	if ad.Background != "" {
		col, err := parseColor(ad.Background)
		if err != nil {
			return nil, c.errorf("background: %v", err)
		}
		ab.background, ab.hasBackground = col, true
	}

	shapes := make(map[string]int, len(ad.Shapes))
	for i := range ad.Shapes {
		sd := &ad.Shapes[i]
		if sd.Name == "" {
			return nil, c.errorf("shape %d has no name", i)
		}
		if _, dup := shapes[sd.Name]; dup {
			return nil, c.errorf("duplicate shape %q", sd.Name)
		}
		c.push("shape %q", sd.Name)
		s, err := c.shape(sd, images)
		if err != nil {
			return nil, err
		}
		c.pop()
		shapes[sd.Name] = len(ab.shapes)
		ab.shapes = append(ab.shapes, s)
	}

	anims := make(map[string]int, len(ad.Animations))
	for i := range ad.Animations {
		an := &ad.Animations[i]
		if _, dup := anims[an.Name]; dup {
			return nil, c.errorf("duplicate animation %q", an.Name)
		}
		c.push("animation %q", an.Name)
		a, err := c.animation(an, shapes)
		if err != nil {
			return nil, err
		}
		c.pop()
		anims[an.Name] = len(ab.animations)
		ab.animations = append(ab.animations, a)
	}

	machines := make(map[string]bool, len(ad.StateMachines))
	for i := range ad.StateMachines {
		sm := &ad.StateMachines[i]
		if machines[sm.Name] {
			return nil, c.errorf("duplicate state machine %q", sm.Name)
		}
		machines[sm.Name] = true
		c.push("state machine %q", sm.Name)
		mm, err := c.machine(sm, anims, shapes)
		if err != nil {
			return nil, err
		}
		c.pop()
		ab.machines = append(ab.machines, mm)
	}
	return ab, nil
}

func (c *compiler) shape(sd *shapeDoc, images map[string]int) (*shapeModel, error) {
	s := &shapeModel{
		name:     sd.Name,
		x:        sd.X,
		y:        sd.Y,
		rotation: sd.Rotation,
		scaleX:   valueOr(sd.ScaleX, 1),
		scaleY:   valueOr(sd.ScaleY, 1),
		opacity:  valueOr(sd.Opacity, 1),
		blend:    rive.BlendSrcOver,
		image:    -1,
	}

	if sd.Blend != "" {
		mode, ok := rive.ParseBlendMode(sd.Blend)
		if !ok {
			return nil, c.errorf("unknown blend mode %q", sd.Blend)
		}
		s.blend = mode
	}
	switch strings.ToLower(sd.FillRule) {
	case "", "nonzero":
		s.fillRule = rive.FillNonZero
	case "evenodd":
		s.fillRule = rive.FillEvenOdd
	default:
		return nil, c.errorf("unknown fill rule %q", sd.FillRule)
	}

	if sd.Image != "" {
		idx, ok := images[sd.Image]
		if !ok {
			return nil, c.errorf("unknown image %q", sd.Image)
		}
		s.image = idx
		if sd.Path != "" || sd.Rect != nil || sd.Fill != nil || sd.Stroke != nil {
			return nil, c.errorf("image shapes cannot have geometry or paints")
		}
		if sd.Mesh != nil {
			mesh, err := c.mesh(sd.Mesh)
			if err != nil {
				return nil, err
			}
			s.mesh = mesh
			s.bounds = pointsBounds(pairs(mesh.vertices))
		}
		return s, nil
	}
	if sd.Mesh != nil {
		return nil, c.errorf("mesh without an image")
	}

	switch {
	case sd.Path != "" && sd.Rect != nil:
		return nil, c.errorf("both path and rect given")
	case sd.Path != "":
		pts, verbs, err := parsePathData(sd.Path)
		if err != nil {
			return nil, c.errorf("path: %v", err)
		}
		s.points, s.verbs = pts, verbs
	case sd.Rect != nil:
		if len(sd.Rect) != 4 {
			return nil, c.errorf("rect needs 4 values, got %d", len(sd.Rect))
		}
		s.points, s.verbs = rectPath(sd.Rect[0], sd.Rect[1], sd.Rect[2], sd.Rect[3])
	default:
		return nil, c.errorf("no path, rect or image")
	}
	s.bounds = pointsBounds(s.points)

	if sd.Fill != nil {
		p, err := c.paint(sd.Fill)
		if err != nil {
			return nil, c.errorf("fill: %v", err)
		}
		s.fill = p
	}
	if sd.Stroke != nil {
		p, err := c.paint(&sd.Stroke.paintDoc)
		if err != nil {
			return nil, c.errorf("stroke: %v", err)
		}
		p.thickness = valueOr(sd.Stroke.Thickness, 1)
		if p.join, err = parseJoin(sd.Stroke.Join); err != nil {
			return nil, c.errorf("stroke: %v", err)
		}
		if p.cap, err = parseCap(sd.Stroke.Cap); err != nil {
			return nil, c.errorf("stroke: %v", err)
		}
		s.stroke = p
	}
	return s, nil
}

func (c *compiler) paint(pd *paintDoc) (*paintModel, error) {
	set := 0
	for _, b := range []bool{pd.Color != "", pd.Linear != nil, pd.Radial != nil} {
		if b {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of color, linear and radial is required")
	}

	p := &paintModel{}
	switch {
	case pd.Color != "":
		col, err := parseColor(pd.Color)
		if err != nil {
			return nil, err
		}
		p.color = col
	case pd.Linear != nil:
		if len(pd.Linear.Start) != 2 || len(pd.Linear.End) != 2 {
			return nil, fmt.Errorf("linear gradient needs start and end points")
		}
		g, err := gradientStops(pd.Linear.Stops)
		if err != nil {
			return nil, err
		}
		g.x0, g.y0 = pd.Linear.Start[0], pd.Linear.Start[1]
		g.x1, g.y1 = pd.Linear.End[0], pd.Linear.End[1]
		p.gradient = g
	case pd.Radial != nil:
		if len(pd.Radial.Center) != 2 {
			return nil, fmt.Errorf("radial gradient needs a center point")
		}
		g, err := gradientStops(pd.Radial.Stops)
		if err != nil {
			return nil, err
		}
		g.radial = true
		g.x0, g.y0 = pd.Radial.Center[0], pd.Radial.Center[1]
		g.radius = pd.Radial.Radius
		p.gradient = g
	}
	return p, nil
}

func gradientStops(stops []stopDoc) (*gradientModel, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("gradient needs at least two stops")
	}
	g := &gradientModel{
		colors: make([]rive.ColorInt, len(stops)),
		stops:  make([]float32, len(stops)),
	}
	for i, st := range stops {
		col, err := parseColor(st.Color)
		if err != nil {
			return nil, err
		}
		g.colors[i], g.stops[i] = col, st.Offset
	}
	return g, nil
}

func (c *compiler) mesh(md *meshDoc) (*meshModel, error) {
	if len(md.Vertices) != len(md.UVs) {
		return nil, c.errorf("mesh has %d vertex and %d uv values", len(md.Vertices), len(md.UVs))
	}
	if len(md.Vertices)%2 != 0 {
		return nil, c.errorf("mesh vertex values must come in pairs")
	}
	if len(md.Indices)%3 != 0 {
		return nil, c.errorf("mesh index count %d is not a multiple of 3", len(md.Indices))
	}
	n := len(md.Vertices) / 2
	for _, i := range md.Indices {
		if int(i) >= n {
			return nil, c.errorf("mesh index %d out of range", i)
		}
	}
	return &meshModel{
		vertices: slices.Clone(md.Vertices),
		uvs:      slices.Clone(md.UVs),
		indices:  slices.Clone(md.Indices),
	}, nil
}

func (c *compiler) animation(an *animationDoc, shapes map[string]int) (*animationModel, error) {
	a := &animationModel{name: an.Name, fps: an.FPS, duration: an.Duration}
	if a.fps == 0 {
		a.fps = 60
	}
	if a.fps < 0 || a.duration < 0 {
		return nil, c.errorf("fps and duration must not be negative")
	}
	switch strings.ToLower(an.Loop) {
	case "", "oneshot":
		a.loop = rive.LoopOneShot
	case "loop":
		a.loop = rive.LoopLoop
	case "pingpong":
		a.loop = rive.LoopPingPong
	default:
		return nil, c.errorf("unknown loop %q", an.Loop)
	}

	for _, k := range an.Keys {
		shape, ok := shapes[k.Shape]
		if !ok {
			return nil, c.errorf("key on unknown shape %q", k.Shape)
		}
		prop, ok := propertyNames[k.Property]
		if !ok {
			return nil, c.errorf("unknown property %q", k.Property)
		}
		if len(k.Frames) == 0 {
			return nil, c.errorf("key %s.%s has no frames", k.Shape, k.Property)
		}
		frames := slices.Clone(k.Frames)
		slices.SortStableFunc(frames, func(a, b frameDoc) int {
			switch {
			case a.Frame < b.Frame:
				return -1
			case a.Frame > b.Frame:
				return 1
			}
			return 0
		})
		a.keys = append(a.keys, keyModel{shape: shape, property: prop, frames: frames})
	}
	return a, nil
}

func (c *compiler) machine(sm *stateMachineDoc, anims, shapes map[string]int) (*machineModel, error) {
	mm := &machineModel{name: sm.Name}

	inputs := make(map[string]int, len(sm.Inputs))
	for _, in := range sm.Inputs {
		if in.Name == "" {
			return nil, c.errorf("input without a name")
		}
		if _, dup := inputs[in.Name]; dup {
			return nil, c.errorf("duplicate input %q", in.Name)
		}
		im := inputModel{name: in.Name}
		switch strings.ToLower(in.Type) {
		case "bool", "boolean":
			im.kind = kindBool
		case "number":
			im.kind = kindNumber
		case "trigger":
			im.kind = kindTrigger
		default:
			return nil, c.errorf("input %q: unknown type %q", in.Name, in.Type)
		}
		if in.Value != nil {
			v, ok := scalar(in.Value)
			if !ok {
				return nil, c.errorf("input %q: bad value %v", in.Name, in.Value)
			}
			im.value = v
		}
		inputs[in.Name] = len(mm.inputs)
		mm.inputs = append(mm.inputs, im)
	}

	if len(sm.States) == 0 {
		return nil, c.errorf("no states")
	}
	states := make(map[string]int, len(sm.States))
	for _, st := range sm.States {
		if _, dup := states[st.Name]; dup || st.Name == "any" {
			return nil, c.errorf("bad or duplicate state name %q", st.Name)
		}
		s := stateModel{name: st.Name, animation: -1}
		if st.Animation != "" {
			idx, ok := anims[st.Animation]
			if !ok {
				return nil, c.errorf("state %q: unknown animation %q", st.Name, st.Animation)
			}
			s.animation = idx
		}
		states[st.Name] = len(mm.states)
		mm.states = append(mm.states, s)
	}

	for _, tr := range sm.Transitions {
		t := transitionModel{from: anyState}
		if tr.From != "any" {
			idx, ok := states[tr.From]
			if !ok {
				return nil, c.errorf("transition from unknown state %q", tr.From)
			}
			t.from = idx
		}
		to, ok := states[tr.To]
		if !ok {
			return nil, c.errorf("transition to unknown state %q", tr.To)
		}
		t.to = to
		for _, cd := range tr.Conditions {
			cm, err := c.condition(cd, inputs, mm.inputs)
			if err != nil {
				return nil, err
			}
			t.conditions = append(t.conditions, cm)
		}
		mm.transitions = append(mm.transitions, t)
	}

	for _, ld := range sm.Listeners {
		l, err := c.listener(ld, shapes, inputs, mm.inputs)
		if err != nil {
			return nil, err
		}
		mm.listeners = append(mm.listeners, l)
	}
	return mm, nil
}

func (c *compiler) condition(cd conditionDoc, inputs map[string]int, models []inputModel) (conditionModel, error) {
	idx, ok := inputs[cd.Input]
	if !ok {
		return conditionModel{}, c.errorf("condition on unknown input %q", cd.Input)
	}
	cm := conditionModel{input: idx}
	if models[idx].kind == kindTrigger {
		return cm, nil
	}

	op, ok := opNames[strings.ToLower(cd.Op)]
	if cd.Op == "" {
		op, ok = opEq, true
	}
	if !ok {
		return conditionModel{}, c.errorf("condition on %q: unknown op %q", cd.Input, cd.Op)
	}
	if models[idx].kind == kindBool && op != opEq && op != opNe {
		return conditionModel{}, c.errorf("condition on bool %q: op %q", cd.Input, cd.Op)
	}
	cm.op = op
	if cd.Value != nil {
		v, ok := scalar(cd.Value)
		if !ok {
			return conditionModel{}, c.errorf("condition on %q: bad value %v", cd.Input, cd.Value)
		}
		cm.value = v
	} else if models[idx].kind == kindBool {
		cm.value = 1
	}
	return cm, nil
}

func (c *compiler) listener(ld listenerDoc, shapes, inputs map[string]int, models []inputModel) (listenerModel, error) {
	shape, ok := shapes[ld.Shape]
	if !ok {
		return listenerModel{}, c.errorf("listener on unknown shape %q", ld.Shape)
	}
	in, ok := inputs[ld.Input]
	if !ok {
		return listenerModel{}, c.errorf("listener on unknown input %q", ld.Input)
	}
	l := listenerModel{shape: shape, input: in}

	switch strings.ToLower(ld.Event) {
	case "down":
		l.event = eventDown
	case "up":
		l.event = eventUp
	case "move":
		l.event = eventMove
	default:
		return listenerModel{}, c.errorf("listener: unknown event %q", ld.Event)
	}

	kind := models[in].kind
	switch strings.ToLower(ld.Action) {
	case "set":
		if kind == kindTrigger {
			return listenerModel{}, c.errorf("listener: cannot set trigger %q", ld.Input)
		}
		v, ok := scalar(ld.Value)
		if !ok {
			return listenerModel{}, c.errorf("listener: bad value %v", ld.Value)
		}
		l.action, l.value = actionSet, v
	case "toggle":
		if kind != kindBool {
			return listenerModel{}, c.errorf("listener: toggle needs a bool input")
		}
		l.action = actionToggle
	case "fire", "":
		if kind != kindTrigger {
			return listenerModel{}, c.errorf("listener: fire needs a trigger input")
		}
		l.action = actionFire
	default:
		return listenerModel{}, c.errorf("listener: unknown action %q", ld.Action)
	}
	return l, nil
}

// scalar converts a YAML scalar to a float32; booleans become 0 or 1.
func scalar(v any) (float32, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case int:
		return float32(x), true
	case int64:
		return float32(x), true
	case uint64:
		return float32(x), true
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return float32(x), true
	}
	return 0, false
}

func valueOr(p *float32, def float32) float32 {
	if p == nil {
		return def
	}
	return *p
}

func parseJoin(s string) (rive.StrokeJoin, error) {
	switch strings.ToLower(s) {
	case "", "miter":
		return rive.JoinMiter, nil
	case "round":
		return rive.JoinRound, nil
	case "bevel":
		return rive.JoinBevel, nil
	}
	return 0, fmt.Errorf("unknown join %q", s)
}

func parseCap(s string) (rive.StrokeCap, error) {
	switch strings.ToLower(s) {
	case "", "butt":
		return rive.CapButt, nil
	case "round":
		return rive.CapRound, nil
	case "square":
		return rive.CapSquare, nil
	}
	return 0, fmt.Errorf("unknown cap %q", s)
}

func pairs(v []float32) []rive.Vec2D {
	out := make([]rive.Vec2D, 0, len(v)/2)
	for i := 0; i+1 < len(v); i += 2 {
		out = append(out, rive.Vec2D{X: v[i], Y: v[i+1]})
	}
	return out
}

func pointsBounds(pts []rive.Vec2D) rive.AABB {
	if len(pts) == 0 {
		return rive.AABB{}
	}
	b := rive.NewAABB(pts[0].X, pts[0].Y, pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b = b.Expand(p)
	}
	return b
}
