package vgcore

import "testing"

func TestTesselateBezierFlattensStraightLineToEndpointsOnly(t *testing.T) {
	c := newTestContext()
	c.BeginPath()
	c.MoveTo(0, 0)
	// control points collinear with the endpoints: flat within tolerance
	// at the top level, so tesselateBezier should stop immediately and
	// only emit the end point.
	c.BezierTo(25, 0, 75, 0, 100, 0)
	c.flattenPaths()

	if len(c.cache.paths) != 1 {
		t.Fatalf("expected 1 sub-path, got %d", len(c.cache.paths))
	}
	path := c.cache.paths[0]
	if path.count != 2 {
		t.Fatalf("expected a flat bezier to flatten to 2 points, got %d", path.count)
	}
}

func TestTesselateBezierSubdividesCurvedSegment(t *testing.T) {
	c := newTestContext()
	c.BeginPath()
	c.MoveTo(0, 0)
	// a sharp curve needs several subdivisions to stay within tessTol.
	c.BezierTo(0, 100, 100, 100, 100, 0)
	c.flattenPaths()

	path := c.cache.paths[0]
	if path.count <= 2 {
		t.Fatalf("expected a curved bezier to flatten to more than 2 points, got %d", path.count)
	}
}

func TestTesselateBezierRecursionBailsOutPastDepth10(t *testing.T) {
	c := newTestContext()
	c.cache.addPath()
	// degenerate control points that never satisfy the flatness test
	// force recursion to the level>10 bailout rather than looping forever.
	c.tesselateBezier(0, 0, 1e8, -1e8, -1e8, 1e8, 0, 0.0001, 0, nvgPtCORNER)
	// must terminate; if it didn't, the test itself would hang.
}

func TestPolyAreaSignMatchesWinding(t *testing.T) {
	// screen coordinates, y down: this is the order Rect emits for a
	// solid (CCW) rectangle.
	ccw := []Point{{x: 0, y: 0}, {x: 0, y: 10}, {x: 10, y: 10}, {x: 10, y: 0}}
	if area := polyArea(ccw); area <= 0 {
		t.Fatalf("expected positive area for a CCW square, got %v", area)
	}

	cw := []Point{{x: 0, y: 0}, {x: 10, y: 0}, {x: 10, y: 10}, {x: 0, y: 10}}
	if area := polyArea(cw); area >= 0 {
		t.Fatalf("expected negative area for a CW square, got %v", area)
	}
}

func TestFlattenPathsReversesToMatchDeclaredWinding(t *testing.T) {
	c := newTestContext()
	c.BeginPath()
	// vertices wound CW on the wire, but declared CCW: flattenPaths must
	// reverse the point order so downstream winding-sensitive code (hole
	// detection, convexity) sees what was declared.
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	c.LineTo(10, 10)
	c.LineTo(0, 10)
	c.ClosePath()
	c.PathWinding(CCW)
	c.flattenPaths()

	pts := c.cache.points[c.cache.paths[0].first : c.cache.paths[0].first+c.cache.paths[0].count]
	if area := polyArea(pts); area <= 0 {
		t.Fatalf("expected flattenPaths to reorder points so area is positive (CCW), got %v", area)
	}
}

func TestAddPointMergesCoincidentPoints(t *testing.T) {
	c := newTestContext()
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(0.00001, 0.00001)
	c.LineTo(50, 50)
	c.flattenPaths()

	path := c.cache.paths[0]
	if path.count != 2 {
		t.Fatalf("expected near-duplicate point to be merged, got %d points", path.count)
	}
}

func TestCalculateJoinsMarksConvexForRectangle(t *testing.T) {
	c := newTestContext()
	c.BeginPath()
	c.Rect(0, 0, 20, 10)
	c.flattenPaths()
	c.calculateJoins(1, MITER, 10)

	if !c.cache.paths[0].convex {
		t.Fatalf("expected rectangle to be detected convex")
	}
	if c.cache.paths[0].nbevel < 0 {
		t.Fatalf("nbevel should never go negative, got %d", c.cache.paths[0].nbevel)
	}
}
