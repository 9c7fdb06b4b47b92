package vgcore

// Scissor is a transform + half-extent pair; extent[0] < 0 means "no
// scissor" (C7/§3).
type Scissor struct {
	xform  TransformMatrix
	extent [2]float32
}

// Fields exposes a Scissor's transform and half-extent for a Renderer
// back-end to turn into shader uniforms.
func (s Scissor) Fields() (xform TransformMatrix, extent [2]float32) {
	return s.xform, s.extent
}

// nvgState is one entry of the bounded state stack (C3): composite op,
// shape-AA flag, fill/stroke paint, stroke width, miter limit, cap/join,
// global alpha, transform, scissor, and text style.
type nvgState struct {
	compositeOperation CompositeOperationState
	shapeAntiAlias     bool
	fill               Paint
	stroke             Paint
	strokeWidth        float32
	miterLimit         float32
	lineJoin           LineCap
	lineCap            LineCap
	alpha              float32
	xform              TransformMatrix
	scissor            Scissor
	fontSize           float32
	letterSpacing      float32
	lineHeight         float32
	fontBlur           float32
	textAlign          Align
	fontID             int
}

func (s *nvgState) reset() {
	s.fill.setPaintColor(RGBA(255, 255, 255, 255))
	s.stroke.setPaintColor(RGBA(0, 0, 0, 255))
	s.compositeOperation = compositeOperationState(SourceOver)
	s.shapeAntiAlias = true
	s.strokeWidth = 1.0
	s.miterLimit = 10.0
	s.lineCap = BUTT
	s.lineJoin = MITER
	s.alpha = 1.0
	s.xform = IdentityMatrix()

	s.scissor.extent = [2]float32{-1.0, -1.0}

	s.fontSize = 16.0
	s.letterSpacing = 0.0
	s.lineHeight = 1.0
	s.fontBlur = 0.0
	s.textAlign = AlignLeft | AlignBaseline
	s.fontID = fontInvalid
}

func (s *nvgState) getFontScale() float32 {
	return minF(quantize(s.xform.getAverageScale(), 0.01), 4.0)
}

func quantize(a, d float32) float32 {
	return float32(int(a/d+0.5)) * d
}

// compositeOperationState resolves a CompositeOperation to the (src,dst)
// blend factor pair applied identically to RGB and alpha.
func compositeOperationState(op CompositeOperation) CompositeOperationState {
	var sfactor, dfactor BlendFactor
	switch op {
	case SourceOver:
		sfactor, dfactor = ONE, ONE_MINUS_SRC_ALPHA
	case SourceIn:
		sfactor, dfactor = DST_ALPHA, ZERO
	case SourceOut:
		sfactor, dfactor = ONE_MINUS_DST_ALPHA, ZERO
	case Atop:
		sfactor, dfactor = DST_ALPHA, ONE_MINUS_SRC_ALPHA
	case DestinationOver:
		sfactor, dfactor = ONE_MINUS_DST_ALPHA, ONE
	case DestinationIn:
		sfactor, dfactor = ZERO, SRC_ALPHA
	case DestinationOut:
		sfactor, dfactor = ZERO, ONE_MINUS_SRC_ALPHA
	case DestinationAtop:
		sfactor, dfactor = ONE_MINUS_DST_ALPHA, SRC_ALPHA
	case Lighter:
		sfactor, dfactor = ONE, ONE
	case Copy:
		sfactor, dfactor = ONE, ZERO
	case XOR:
		sfactor, dfactor = ONE_MINUS_DST_ALPHA, ONE_MINUS_SRC_ALPHA
	default:
		sfactor, dfactor = ONE, ZERO
	}
	return CompositeOperationState{SrcRGB: sfactor, DstRGB: dfactor, SrcAlpha: sfactor, DstAlpha: dfactor}
}

// ShapeAntiAlias toggles the shape antialiasing fringe for subsequent
// fill/stroke calls.
func (c *Context) ShapeAntiAlias(enabled bool) { c.getState().shapeAntiAlias = enabled }

// MiterLimit sets the miter limit of the stroke style.
func (c *Context) MiterLimit(limit float32) { c.getState().miterLimit = limit }

// SetLineCap sets how the end of a stroked line is drawn.
func (c *Context) SetLineCap(cap LineCap) { c.getState().lineCap = cap }

// SetLineJoin sets how sharp path corners are drawn.
func (c *Context) SetLineJoin(join LineCap) { c.getState().lineJoin = join }

// SetGlobalAlpha sets the transparency applied to all rendered shapes.
func (c *Context) SetGlobalAlpha(alpha float32) { c.getState().alpha = alpha }

// SetFillPaint sets current fill style to the given paint.
func (c *Context) SetFillPaint(paint Paint) {
	p := paint
	state := c.getState()
	p.xform = p.xform.Multiply(state.xform)
	p.innerColor.A *= state.alpha
	p.outerColor.A *= state.alpha
	state.fill = p
}

// SetStrokePaint sets current stroke style to the given paint.
func (c *Context) SetStrokePaint(paint Paint) {
	p := paint
	state := c.getState()
	p.xform = p.xform.Multiply(state.xform)
	p.innerColor.A *= state.alpha
	p.outerColor.A *= state.alpha
	state.stroke = p
}

// GlobalCompositeOperation sets the composite operation applied to all
// rendered shapes.
func (c *Context) GlobalCompositeOperation(op CompositeOperation) {
	c.getState().compositeOperation = compositeOperationState(op)
}

// GlobalCompositeBlendFunc sets a single (src,dst) factor pair applied
// identically to RGB and alpha.
func (c *Context) GlobalCompositeBlendFunc(sfactor, dfactor BlendFactor) {
	c.GlobalCompositeBlendFuncSeparate(sfactor, dfactor, sfactor, dfactor)
}

// GlobalCompositeBlendFuncSeparate sets independent RGB/alpha blend
// factors.
func (c *Context) GlobalCompositeBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) {
	c.getState().compositeOperation = CompositeOperationState{
		SrcRGB: srcRGB, DstRGB: dstRGB, SrcAlpha: srcAlpha, DstAlpha: dstAlpha,
	}
}
