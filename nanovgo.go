package vgcore

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/jbonneau/vgcore/fontstash"
)

// Context is the entry point of the package: it owns the command
// buffer, the state stack, the path cache, and the font atlas, and
// drives a Renderer back-end to turn recorded paths into triangles
// (C1-C9 glued together).
type Context struct {
	gl             Renderer
	commands       []float32
	commandX       float32
	commandY       float32
	states         []nvgState
	cache          *nvgPathCache
	tessTol        float32
	distTol        float32
	fringeWidth    float32
	devicePxRatio  float32
	fs             *fontstash.Stash
	fontImages     []int
	fontImageIdx   int
	drawCallCount  int
	fillTriCount   int
	strokeTriCount int
	textTriCount   int

	pick *pickScene
}

// CreateContext wires a Renderer back-end into a fresh Context, ready
// for BeginFrame.
func CreateContext(r Renderer, flags CreateFlags) *Context {
	c := &Context{
		gl:         r,
		cache:      newPathCache(),
		fontImages: make([]int, nvgMaxFontImages),
		fs:         fontstash.New(nvgInitFontImageSize, nvgInitFontImageSize),
		pick:       newPickScene(),
	}
	c.fontImages[0] = r.RenderCreateTexture(TextureAlpha, nvgInitFontImageSize, nvgInitFontImageSize, 0, nil)
	c.states = append(c.states, nvgState{})
	c.getState().reset()
	c.setDevicePixelRatio(1.0)
	return c
}

// Delete tears down the Context, releasing its font atlas textures and
// the back-end itself.
func (c *Context) Delete() {
	for i, fontImage := range c.fontImages {
		if fontImage != 0 {
			c.DeleteImage(fontImage)
			c.fontImages[i] = 0
		}
	}
	c.gl.RenderDelete()
	c.gl = nil
}

// BeginFrame begins drawing a new frame. Calls to the drawing API must
// be wrapped in BeginFrame/EndFrame. windowWidth/windowHeight describe
// the logical viewport; devicePixelRatio scales the antialiasing fringe
// width and the tessellation/distance tolerances for Hi-DPI back-ends.
func (c *Context) BeginFrame(windowWidth, windowHeight int, devicePixelRatio float32) {
	c.states = c.states[:0]
	c.states = append(c.states, nvgState{})
	c.getState().reset()

	c.setDevicePixelRatio(devicePixelRatio)
	c.gl.RenderViewport(windowWidth, windowHeight)

	c.pick.reset(float32(windowWidth), float32(windowHeight))

	c.drawCallCount = 0
	c.fillTriCount = 0
	c.strokeTriCount = 0
	c.textTriCount = 0
}

// CancelFrame drops whatever has been recorded for the current frame
// without issuing any draw calls.
func (c *Context) CancelFrame() { c.gl.RenderCancel() }

// EndFrame ends drawing, flushing remaining render state. When atlas
// textures were added mid-frame, it deletes the earlier ones that are
// smaller than the current atlas, keeps the rest, and moves the current
// atlas to slot 0.
func (c *Context) EndFrame() {
	c.gl.RenderFlush()
	if c.fontImageIdx != 0 {
		fontImage := c.fontImages[c.fontImageIdx]
		if fontImage == 0 {
			return
		}
		iw, ih, _ := c.ImageSize(fontImage)
		j := 0
		for i := 0; i < c.fontImageIdx; i++ {
			nw, nh, _ := c.ImageSize(c.fontImages[i])
			if nw < iw || nh < ih {
				c.DeleteImage(c.fontImages[i])
			} else {
				c.fontImages[j] = c.fontImages[i]
				j++
			}
		}
		c.fontImages[j] = c.fontImages[0]
		j++
		c.fontImages[0] = fontImage
		c.fontImageIdx = 0
		for i := j; i < nvgMaxFontImages; i++ {
			c.fontImages[i] = 0
		}
	}
}

// Save pushes the current render state onto the state stack. A
// matching Restore must be used to pop it.
func (c *Context) Save() {
	if len(c.states) >= nvgMaxStates {
		return
	}
	c.states = append(c.states, c.states[len(c.states)-1])
}

// Restore pops and restores the previous render state.
func (c *Context) Restore() {
	if len(c.states) > 1 {
		c.states = c.states[:len(c.states)-1]
	}
}

// Block runs fn wrapped in a Save/Restore pair.
func (c *Context) Block(fn func()) {
	c.Save()
	defer c.Restore()
	fn()
}

// SetStrokeWidth sets the stroke width of the current stroke style.
func (c *Context) SetStrokeWidth(width float32) { c.getState().strokeWidth = width }

// SetTransformByValue premultiplies the current coordinate system by
// the given matrix:
//
//	[a c e]
//	[b d f]
//	[0 0 1]
func (c *Context) SetTransformByValue(a, b, cc, d, e, f float32) {
	state := c.getState()
	state.xform = state.xform.PreMultiply(TransformMatrix{a, b, cc, d, e, f})
}

// ResetTransform resets the current transform to identity.
func (c *Context) ResetTransform() { c.getState().xform = IdentityMatrix() }

// Translate translates the current coordinate system.
func (c *Context) Translate(x, y float32) {
	state := c.getState()
	state.xform = state.xform.PreMultiply(TranslateMatrix(x, y))
}

// Scale scales the current coordinate system.
func (c *Context) Scale(x, y float32) {
	state := c.getState()
	state.xform = state.xform.PreMultiply(ScaleMatrix(x, y))
}

// Rotate rotates the current coordinate system, angle in radians.
func (c *Context) Rotate(angle float32) {
	state := c.getState()
	state.xform = state.xform.PreMultiply(RotateMatrix(angle))
}

// SkewX, SkewY skew the current coordinate system, angle in radians.
func (c *Context) SkewX(angle float32) {
	state := c.getState()
	state.xform = state.xform.PreMultiply(SkewXMatrix(angle))
}
func (c *Context) SkewY(angle float32) {
	state := c.getState()
	state.xform = state.xform.PreMultiply(SkewYMatrix(angle))
}

// CurrentTransform returns the current transformation matrix.
func (c *Context) CurrentTransform() TransformMatrix { return c.getState().xform }

// SetStrokeColor sets the current stroke style to a solid color.
func (c *Context) SetStrokeColor(col color.Color) { c.getState().stroke.setPaintColor(col) }

// SetFillColor sets the current fill style to a solid color.
func (c *Context) SetFillColor(col color.Color) { c.getState().fill.setPaintColor(col) }

// CreateImage creates a texture by copying pixels from img, returning
// its handle.
func (c *Context) CreateImage(img image.Image) int {
	bounds := img.Bounds()
	size := bounds.Size()

	var rgba *image.RGBA
	switch i := img.(type) {
	case *image.RGBA:
		rgba = i
	default:
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	}
	return c.gl.RenderCreateTexture(TextureRGBA, size.X, size.Y, 0, rgba.Pix)
}

// ImageSize returns the dimensions of a created image.
func (c *Context) ImageSize(img int) (int, int, error) { return c.gl.RenderGetTextureSize(img) }

// DeleteImage deletes a created image.
func (c *Context) DeleteImage(img int) { _ = c.gl.RenderDeleteTexture(img) }

// Scissor sets the scissor rectangle, transformed by the current
// transform.
func (c *Context) Scissor(x, y, w, h float32) {
	state := c.getState()
	w = maxF(0.0, w)
	h = maxF(0.0, h)
	state.scissor.xform = TranslateMatrix(x+w*0.5, y+h*0.5).Multiply(state.xform)
	state.scissor.extent = [2]float32{w * 0.5, h * 0.5}
}

// IntersectScissor intersects the current scissor rectangle with the
// given one, both in the current transform's space; the result is
// always an axis-aligned rectangle in that space.
func (c *Context) IntersectScissor(x, y, w, h float32) {
	state := c.getState()
	if state.scissor.extent[0] < 0 {
		c.Scissor(x, y, w, h)
		return
	}

	pXform := state.scissor.xform.Multiply(state.xform.Inverse())
	ex := state.scissor.extent[0]
	ey := state.scissor.extent[1]
	teX := ex*absF(pXform[0]) + ey*absF(pXform[2])
	teY := ex*absF(pXform[1]) + ey*absF(pXform[3])

	rect := intersectRects(pXform[4]-teX, pXform[5]-teY, teX*2, teY*2, x, y, w, h)
	c.Scissor(rect[0], rect[1], rect[2], rect[3])
}

// ResetScissor disables scissoring.
func (c *Context) ResetScissor() {
	state := c.getState()
	state.scissor.xform = TransformMatrix{}
	state.scissor.extent = [2]float32{-1.0, -1.0}
}

// DebugDumpPathCache prints the cached flattened path data to the log,
// useful when diagnosing a tessellation regression.
func (c *Context) DebugDumpPathCache() {
	log.Printf("dumping %d cached paths", len(c.cache.paths))
	for i := range c.cache.paths {
		path := &c.cache.paths[i]
		log.Printf(" - path %d: fill=%d stroke=%d convex=%v", i, len(path.fill), len(path.stroke), path.convex)
	}
}

// Fill fills the current path with the current fill style. It does not
// register a hit region; call FillHitRegion afterwards for that.
func (c *Context) Fill() {
	state := c.getState()
	fillPaint := state.fill
	c.flattenPaths()

	if c.gl.EdgeAntiAlias() && state.shapeAntiAlias {
		c.expandFill(c.fringeWidth, MITER, 2.4, c.fringeWidth)
	} else {
		c.expandFill(0.0, MITER, 2.4, c.fringeWidth)
	}

	fillPaint.innerColor.A *= state.alpha
	fillPaint.outerColor.A *= state.alpha

	c.gl.RenderFill(&fillPaint, state.compositeOperation, &state.scissor, c.fringeWidth, c.cache.bounds, c.cache.paths)

	for i := range c.cache.paths {
		path := &c.cache.paths[i]
		c.fillTriCount += maxI(0, len(path.fill)-2)
		c.strokeTriCount += maxI(0, len(path.stroke)-2)
		c.drawCallCount += 2
	}
}

// Stroke strokes the current path with the current stroke style. It
// does not register a hit region; call StrokeHitRegion afterwards for
// that.
func (c *Context) Stroke() {
	state := c.getState()
	scale := state.xform.getAverageScale()
	strokeWidth := clampF(state.strokeWidth*scale, 0.0, 200.0)
	strokePaint := state.stroke

	if strokeWidth < c.fringeWidth {
		strokeWidth = c.fringeWidth
	}

	strokePaint.innerColor.A *= state.alpha
	strokePaint.outerColor.A *= state.alpha

	c.flattenPaths()

	if c.gl.EdgeAntiAlias() && state.shapeAntiAlias {
		c.expandStroke(strokeWidth*0.5+c.fringeWidth*0.5, c.fringeWidth, state.lineCap, state.lineJoin, state.miterLimit)
	} else {
		c.expandStroke(strokeWidth*0.5, 0, state.lineCap, state.lineJoin, state.miterLimit)
	}

	c.gl.RenderStroke(&strokePaint, state.compositeOperation, &state.scissor, c.fringeWidth, strokeWidth, c.cache.paths)

	for i := range c.cache.paths {
		path := &c.cache.paths[i]
		c.strokeTriCount += maxI(0, len(path.stroke)-2)
		c.drawCallCount++
	}
}

// CreateFont loads an outline font from filePath and registers it
// under name, returning a handle.
func (c *Context) CreateFont(name, filePath string) int {
	h, err := c.fs.AddFont(name, filePath)
	if err != nil {
		log.Printf("vgcore: %v", err)
		return fontInvalid
	}
	return h
}

// CreateFontFromMemory registers an outline font already in memory.
func (c *Context) CreateFontFromMemory(name string, data []byte) int {
	h, err := c.fs.AddFontFromMemory(name, data)
	if err != nil {
		log.Printf("vgcore: %v", err)
		return fontInvalid
	}
	return h
}

// FindFont returns the handle of a loaded font, or fontInvalid.
func (c *Context) FindFont(name string) int {
	h := c.fs.GetFontByName(name)
	if h < 0 {
		return fontInvalid
	}
	return h
}

// SetFontSize sets the font size of the current text style.
func (c *Context) SetFontSize(size float32) { c.getState().fontSize = size }

// SetTextLetterSpacing sets the letter spacing of the current text style.
func (c *Context) SetTextLetterSpacing(spacing float32) { c.getState().letterSpacing = spacing }

// SetTextLineHeight sets the line height multiplier of the current text style.
func (c *Context) SetTextLineHeight(lineHeight float32) { c.getState().lineHeight = lineHeight }

// SetTextAlign sets the text alignment of the current text style.
func (c *Context) SetTextAlign(align Align) { c.getState().textAlign = align }

// SetFontFaceID sets the font face by handle.
func (c *Context) SetFontFaceID(font int) { c.getState().fontID = font }

// SetFontFace sets the font face by name.
func (c *Context) SetFontFace(font string) { c.getState().fontID = c.FindFont(font) }

func (c *Context) setDevicePixelRatio(ratio float32) {
	c.tessTol = 0.25 / ratio
	c.distTol = 0.01 / ratio
	c.fringeWidth = 1.0 / ratio
	c.devicePxRatio = ratio
}

func (c *Context) getState() *nvgState { return &c.states[len(c.states)-1] }

// appendCommand premultiplies every coordinate in vals by the current
// transform, tracks the new current point, and appends it to the
// command buffer (§4.1/C2).
func (c *Context) appendCommand(vals []float32) {
	xform := c.getState().xform

	if nvgCommands(vals[0]) != nvgCLOSE && nvgCommands(vals[0]) != nvgWINDING {
		c.commandX = vals[len(vals)-2]
		c.commandY = vals[len(vals)-1]
	}

	i := 0
	for i < len(vals) {
		switch nvgCommands(vals[i]) {
		case nvgMOVETO, nvgLINETO:
			vals[i+1], vals[i+2] = xform.TransformPoint(vals[i+1], vals[i+2])
			i += 3
		case nvgBEZIERTO:
			vals[i+1], vals[i+2] = xform.TransformPoint(vals[i+1], vals[i+2])
			vals[i+3], vals[i+4] = xform.TransformPoint(vals[i+3], vals[i+4])
			vals[i+5], vals[i+6] = xform.TransformPoint(vals[i+5], vals[i+6])
			i += 7
		case nvgCLOSE:
			i++
		case nvgWINDING:
			i += 2
		default:
			i++
		}
	}
	c.commands = append(c.commands, vals...)
}

func (c *Context) flushTextTexture() {
	dirty := c.fs.ValidateTexture()
	if dirty != nil {
		fontImage := c.fontImages[c.fontImageIdx]
		if fontImage != 0 {
			data, _, _ := c.fs.GetTextureData()
			x, y := dirty[0], dirty[1]
			w, h := dirty[2]-x, dirty[3]-y
			_ = c.gl.RenderUpdateTexture(fontImage, x, y, w, h, data)
		}
	}
}

func (c *Context) allocTextAtlas() bool {
	c.flushTextTexture()
	if c.fontImageIdx >= nvgMaxFontImages-1 {
		return false
	}
	var iw, ih int
	if c.fontImages[c.fontImageIdx+1] != 0 {
		iw, ih, _ = c.ImageSize(c.fontImages[c.fontImageIdx+1])
	} else {
		iw, ih, _ = c.ImageSize(c.fontImages[c.fontImageIdx])
		if iw > ih {
			ih *= 2
		} else {
			iw *= 2
		}
		if iw > nvgMaxFontImageSize || ih > nvgMaxFontImageSize {
			iw, ih = nvgMaxFontImageSize, nvgMaxFontImageSize
		}
		c.fontImages[c.fontImageIdx+1] = c.gl.RenderCreateTexture(TextureAlpha, iw, ih, 0, nil)
	}
	c.fontImageIdx++
	c.fs.ResetAtlas(iw, ih)
	return true
}

func (c *Context) renderText(verts []Vertex) {
	if len(verts) == 0 {
		return
	}
	state := c.getState()
	paint := state.fill
	paint.image = c.fontImages[c.fontImageIdx]

	c.gl.RenderTriangles(&paint, state.compositeOperation, &state.scissor, verts)

	c.drawCallCount++
	c.textTriCount += len(verts) / 3
}
