package vgcore

import "testing"

// fakeRenderer is a minimal in-memory Renderer used to exercise Context
// without a real GPU, mirroring how the teacher's own tests avoid a
// live GL context.
type fakeRenderer struct {
	nextImage int
	sizes     map[int][2]int
	antiAlias bool
	fillCalls int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{nextImage: 1, sizes: make(map[int][2]int), antiAlias: true}
}

func (f *fakeRenderer) RenderCreateTexture(kind TextureKind, w, h int, flags ImageFlags, data []byte) int {
	id := f.nextImage
	f.nextImage++
	f.sizes[id] = [2]int{w, h}
	return id
}
func (f *fakeRenderer) RenderUpdateTexture(image, x, y, w, h int, data []byte) error { return nil }
func (f *fakeRenderer) RenderGetTextureSize(image int) (int, int, error) {
	s := f.sizes[image]
	return s[0], s[1], nil
}
func (f *fakeRenderer) RenderDeleteTexture(image int) error {
	delete(f.sizes, image)
	return nil
}
func (f *fakeRenderer) RenderViewport(width, height int) {}
func (f *fakeRenderer) RenderCancel()                     {}
func (f *fakeRenderer) RenderFlush()                      {}
func (f *fakeRenderer) RenderFill(paint *Paint, compositeOp CompositeOperationState, scissor *Scissor, fringe float32, bounds [4]float32, paths []Path) {
	f.fillCalls++
}
func (f *fakeRenderer) RenderStroke(paint *Paint, compositeOp CompositeOperationState, scissor *Scissor, fringe, strokeWidth float32, paths []Path) {
}
func (f *fakeRenderer) RenderTriangles(paint *Paint, compositeOp CompositeOperationState, scissor *Scissor, verts []Vertex) {
}
func (f *fakeRenderer) EdgeAntiAlias() bool { return f.antiAlias }
func (f *fakeRenderer) RenderDelete()       {}

func newTestContext() *Context {
	c := CreateContext(newFakeRenderer(), AntiAlias)
	c.BeginFrame(800, 600, 1.0)
	return c
}

func TestSaveRestoreRoundTrips(t *testing.T) {
	c := newTestContext()
	c.SetStrokeWidth(7)
	c.Save()
	c.SetStrokeWidth(2)
	if c.getState().strokeWidth != 2 {
		t.Fatalf("expected stroke width 2 after save+set, got %v", c.getState().strokeWidth)
	}
	c.Restore()
	if c.getState().strokeWidth != 7 {
		t.Fatalf("expected stroke width 7 after restore, got %v", c.getState().strokeWidth)
	}
}

func TestSaveStopsAtMaxStates(t *testing.T) {
	c := newTestContext()
	for i := 0; i < nvgMaxStates+10; i++ {
		c.Save()
	}
	if len(c.states) > nvgMaxStates {
		t.Fatalf("state stack exceeded nvgMaxStates: got %d", len(c.states))
	}
}

func TestRestoreNeverEmptiesStack(t *testing.T) {
	c := newTestContext()
	for i := 0; i < 5; i++ {
		c.Restore()
	}
	if len(c.states) < 1 {
		t.Fatalf("restore emptied the state stack")
	}
}

func TestFillCallsRenderer(t *testing.T) {
	c := newTestContext()
	r := c.gl.(*fakeRenderer)
	c.BeginPath()
	c.Rect(10, 10, 100, 50)
	c.Fill()
	if r.fillCalls != 1 {
		t.Fatalf("expected exactly 1 RenderFill call, got %d", r.fillCalls)
	}
}

func TestRectPathIsConvex(t *testing.T) {
	c := newTestContext()
	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	c.flattenPaths()
	c.calculateJoins(1, MITER, 10)
	if len(c.cache.paths) != 1 {
		t.Fatalf("expected 1 sub-path, got %d", len(c.cache.paths))
	}
	if !c.cache.paths[0].convex {
		t.Fatalf("expected an axis-aligned rectangle to be detected convex")
	}
}

func TestScissorIntersectShrinksToOverlap(t *testing.T) {
	c := newTestContext()
	c.Scissor(0, 0, 100, 100)
	c.IntersectScissor(50, 50, 100, 100)
	state := c.getState()
	if state.scissor.extent[0] <= 0 || state.scissor.extent[1] <= 0 {
		t.Fatalf("expected a positive-area intersection, got extent %v", state.scissor.extent)
	}
}
