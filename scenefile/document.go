package scenefile

// YAML layout of a scene document.

type document struct {
	Images    []imageDoc    `yaml:"images"`
	Artboards []artboardDoc `yaml:"artboards"`
}

type imageDoc struct {
	Name string `yaml:"name"`
	Data string `yaml:"data"`
}

type artboardDoc struct {
	Name          string            `yaml:"name"`
	Width         float32           `yaml:"width"`
	Height        float32           `yaml:"height"`
	Background    string            `yaml:"background"`
	Clip          *bool             `yaml:"clip"`
	Shapes        []shapeDoc        `yaml:"shapes"`
	Animations    []animationDoc    `yaml:"animations"`
	StateMachines []stateMachineDoc `yaml:"stateMachines"`
}

type shapeDoc struct {
	Name     string     `yaml:"name"`
	X        float32    `yaml:"x"`
	Y        float32    `yaml:"y"`
	Rotation float32    `yaml:"rotation"`
	ScaleX   *float32   `yaml:"scaleX"`
	ScaleY   *float32   `yaml:"scaleY"`
	Opacity  *float32   `yaml:"opacity"`
	Path     string     `yaml:"path"`
	Rect     []float32  `yaml:"rect"`
	FillRule string     `yaml:"fillRule"`
	Fill     *paintDoc  `yaml:"fill"`
	Stroke   *strokeDoc `yaml:"stroke"`
	Blend    string     `yaml:"blend"`
	Image    string     `yaml:"image"`
	Mesh     *meshDoc   `yaml:"mesh"`
}

type paintDoc struct {
	Color  string     `yaml:"color"`
	Linear *linearDoc `yaml:"linear"`
	Radial *radialDoc `yaml:"radial"`
}

type strokeDoc struct {
	paintDoc  `yaml:",inline"`
	Thickness *float32 `yaml:"thickness"`
	Join      string   `yaml:"join"`
	Cap       string   `yaml:"cap"`
}

type stopDoc struct {
	Offset float32 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

type linearDoc struct {
	Start []float32 `yaml:"start"`
	End   []float32 `yaml:"end"`
	Stops []stopDoc `yaml:"stops"`
}

type radialDoc struct {
	Center []float32 `yaml:"center"`
	Radius float32   `yaml:"radius"`
	Stops  []stopDoc `yaml:"stops"`
}

type meshDoc struct {
	Vertices []float32 `yaml:"vertices"`
	UVs      []float32 `yaml:"uvs"`
	Indices  []uint16  `yaml:"indices"`
}

type animationDoc struct {
	Name     string   `yaml:"name"`
	FPS      float32  `yaml:"fps"`
	Duration float32  `yaml:"duration"`
	Loop     string   `yaml:"loop"`
	Keys     []keyDoc `yaml:"keys"`
}

type keyDoc struct {
	Shape    string     `yaml:"shape"`
	Property string     `yaml:"property"`
	Frames   []frameDoc `yaml:"frames"`
}

type frameDoc struct {
	Frame float32 `yaml:"frame"`
	Value float32 `yaml:"value"`
}

type stateMachineDoc struct {
	Name        string          `yaml:"name"`
	Inputs      []inputDoc      `yaml:"inputs"`
	States      []stateDoc      `yaml:"states"`
	Transitions []transitionDoc `yaml:"transitions"`
	Listeners   []listenerDoc   `yaml:"listeners"`
}

type inputDoc struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value any    `yaml:"value"`
}

type stateDoc struct {
	Name      string `yaml:"name"`
	Animation string `yaml:"animation"`
}

type transitionDoc struct {
	From       string         `yaml:"from"`
	To         string         `yaml:"to"`
	Conditions []conditionDoc `yaml:"conditions"`
}

type conditionDoc struct {
	Input string `yaml:"input"`
	Op    string `yaml:"op"`
	Value any    `yaml:"value"`
}

type listenerDoc struct {
	Shape  string `yaml:"shape"`
	Event  string `yaml:"event"`
	Input  string `yaml:"input"`
	Action string `yaml:"action"`
	Value  any    `yaml:"value"`
}
