package vgcore

// Renderer is the back-end contract a Context drives: texture
// lifecycle, viewport sizing, and the three drawing primitives (fill,
// stroke, text triangles), each handed a resolved Paint and Scissor so
// the back-end never needs to know about the state stack (§6/C6).
//
// Implementations live outside this package — see backend/gl for a
// github.com/goxjs/gl-backed renderer.
type Renderer interface {
	RenderCreateTexture(kind TextureKind, w, h int, flags ImageFlags, data []byte) int
	RenderUpdateTexture(image, x, y, w, h int, data []byte) error
	RenderGetTextureSize(image int) (w, h int, err error)
	RenderDeleteTexture(image int) error

	RenderViewport(width, height int)
	RenderCancel()
	RenderFlush()

	RenderFill(paint *Paint, compositeOp CompositeOperationState, scissor *Scissor, fringe float32, bounds [4]float32, paths []Path)
	RenderStroke(paint *Paint, compositeOp CompositeOperationState, scissor *Scissor, fringe, strokeWidth float32, paths []Path)
	RenderTriangles(paint *Paint, compositeOp CompositeOperationState, scissor *Scissor, verts []Vertex)

	// EdgeAntiAlias reports whether the back-end was created with
	// AntiAlias and therefore wants a fringe on fills/strokes.
	EdgeAntiAlias() bool

	RenderDelete()
}
