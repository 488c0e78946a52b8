package host

// Delegate tables. Every entry receives the handle of the object it acts on
// followed by primitive arguments. Enumerations cross as int32 using the
// numeric values of the rive package types, colours as 0xAARRGGBB words.

// PathDelegates operates on host paths.
type PathDelegates struct {
	Release  func(h Handle)
	Rewind   func(h Handle)
	AddPath  func(h, other Handle, x1, y1, x2, y2, tx, ty float32)
	FillRule func(h Handle, rule int32)
	MoveTo   func(h Handle, x, y float32)
	LineTo   func(h Handle, x, y float32)
	QuadTo   func(h Handle, cx, cy, x, y float32)
	CubicTo  func(h Handle, c1x, c1y, c2x, c2y, x, y float32)
	Close    func(h Handle)
}

// ImageDelegates operates on decoded host images.
type ImageDelegates struct {
	Release func(h Handle)
	Width   func(h Handle) int32
	Height  func(h Handle) int32
}

// PaintDelegates operates on host paints.
type PaintDelegates struct {
	Release func(h Handle)
	Style   func(h Handle, style int32)
	Color   func(h Handle, argb uint32)
	// LinearGradient and RadialGradient receive colors and stops of equal
	// length. The slices are only valid for the duration of the call.
	LinearGradient func(h Handle, sx, sy, ex, ey float32, colors []uint32, stops []float32)
	RadialGradient func(h Handle, cx, cy, radius float32, colors []uint32, stops []float32)
	Thickness      func(h Handle, thickness float32)
	Join           func(h Handle, join int32)
	Cap            func(h Handle, cap int32)
	BlendMode      func(h Handle, mode int32)
}

// RendererDelegates draws on a host canvas.
type RendererDelegates struct {
	Save      func(h Handle)
	Restore   func(h Handle)
	Transform func(h Handle, x1, y1, x2, y2, tx, ty float32)
	DrawPath  func(h, path, paint Handle)
	ClipPath  func(h, path Handle)
	DrawImage func(h, image Handle, mode int32, opacity float32)
	// DrawImageMesh receives vertices and uvs as x,y pairs, uvs in image
	// pixels. vertexCount is the number of pairs.
	DrawImageMesh func(h, image Handle, vertices, uvs []float32, vertexCount int32,
		indices []uint16, indexCount int32, mode int32, opacity float32)
}

// FactoryDelegates allocates host objects. Each Make entry returns the
// handle of a new object; DecodeImage returns Null when decoding fails.
type FactoryDelegates struct {
	Release func(h Handle)
	// MakeRenderPath receives points as x,y pairs and one byte per verb.
	MakeRenderPath      func(h Handle, points []float32, verbs []uint8, rule int32) Handle
	MakeEmptyRenderPath func(h Handle) Handle
	MakeRenderPaint     func(h Handle) Handle
	DecodeImage         func(h Handle, data []byte) Handle
}
