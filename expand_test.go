package vgcore

import "testing"

func straightPath(c *Context) {
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(100, 0)
}

func maxVertX(verts []Vertex) float32 {
	m := float32(-1e9)
	for _, v := range verts {
		if v.X > m {
			m = v.X
		}
	}
	return m
}

func TestExpandStrokeSquareCapExtendsFartherThanButtCap(t *testing.T) {
	cButt := newTestContext()
	straightPath(cButt)
	cButt.flattenPaths()
	cButt.expandStroke(5, cButt.fringeWidth, BUTT, MITER, 10)

	cSquare := newTestContext()
	straightPath(cSquare)
	cSquare.flattenPaths()
	cSquare.expandStroke(5, cSquare.fringeWidth, SQUARE, MITER, 10)

	buttMax := maxVertX(cButt.cache.paths[0].stroke)
	squareMax := maxVertX(cSquare.cache.paths[0].stroke)

	// a square cap extends the stroke body by w beyond the endpoint,
	// while a butt cap only extends by the AA fringe; the square cap
	// must therefore reach noticeably farther past the line's end.
	if squareMax <= buttMax+1 {
		t.Fatalf("expected square cap (max x=%v) to extend past butt cap (max x=%v)", squareMax, buttMax)
	}
}

func TestExpandStrokeRoundCapProducesVertices(t *testing.T) {
	c := newTestContext()
	straightPath(c)
	c.flattenPaths()
	c.expandStroke(5, c.fringeWidth, ROUND, MITER, 10)

	path := c.cache.paths[0]
	if len(path.stroke) == 0 {
		t.Fatalf("expected round-capped stroke to produce vertices")
	}
}

func TestExpandFillConvexRectangleSkipsBevelFringe(t *testing.T) {
	c := newTestContext()
	c.BeginPath()
	c.Rect(0, 0, 50, 50)
	c.flattenPaths()
	c.expandFill(1, MITER, 10, c.fringeWidth)

	path := c.cache.paths[0]
	if len(path.fill) != 4 {
		t.Fatalf("expected 4 fill vertices for a rectangle, got %d", len(path.fill))
	}
	if len(path.stroke) != 2*len(path.fill)+2 {
		t.Fatalf("expected a fringe strip of one vertex pair per corner plus the closing pair and no bevel pairs, got %d vertices", len(path.stroke))
	}
}

func TestExpandFillWithoutFringeSkipsStroke(t *testing.T) {
	c := newTestContext()
	c.BeginPath()
	c.Rect(0, 0, 50, 50)
	c.flattenPaths()
	c.expandFill(0, MITER, 10, 0)

	path := c.cache.paths[0]
	if path.stroke != nil {
		t.Fatalf("expected no fringe stroke when w=0, fringeWidth=0")
	}
}

func TestChooseBevelMiterVsBevelDiffer(t *testing.T) {
	p0 := &Point{x: 0, y: 0, dx: 1, dy: 0}
	p1 := &Point{x: 10, y: 0, dx: 0, dy: 1, dmx: 0.70710678, dmy: 0.70710678}

	mx0, my0, mx1, my1 := chooseBevel(false, p0, p1, 2)
	if mx0 != mx1 || my0 != my1 {
		t.Fatalf("expected a miter join to return the same point twice, got (%v,%v) vs (%v,%v)", mx0, my0, mx1, my1)
	}

	bx0, by0, bx1, by1 := chooseBevel(true, p0, p1, 2)
	if bx0 == bx1 && by0 == by1 {
		t.Fatalf("expected a bevel join to return two distinct points")
	}
}
