package vgcore

import "testing"

func TestHitTestFindsTopmostFill(t *testing.T) {
	c := newTestContext()

	c.BeginPath()
	c.Rect(0, 0, 100, 100)
	c.Fill()
	c.FillHitRegion(1)

	c.BeginPath()
	c.Rect(20, 20, 50, 50)
	c.Fill()
	c.FillHitRegion(2)

	id, ok := c.HitTest(30, 30, TestFill)
	if !ok {
		t.Fatalf("expected a hit at (30,30)")
	}
	if id != 2 {
		t.Fatalf("expected topmost region id 2, got %d", id)
	}

	id, ok = c.HitTest(5, 5, TestFill)
	if !ok || id != 1 {
		t.Fatalf("expected region id 1 at (5,5), got id=%d ok=%v", id, ok)
	}

	_, ok = c.HitTest(500, 500, TestFill)
	if ok {
		t.Fatalf("expected no hit outside every region")
	}
}

func TestHitTestAllOrdersTopmostFirst(t *testing.T) {
	c := newTestContext()

	c.BeginPath()
	c.Rect(0, 0, 100, 100)
	c.Fill()
	c.FillHitRegion(1)

	c.BeginPath()
	c.Rect(0, 0, 100, 100)
	c.Fill()
	c.FillHitRegion(2)

	ids := c.HitTestAll(10, 10, TestFill)
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 1 {
		t.Fatalf("expected [2 1], got %v", ids)
	}
}

func TestInFillRespectsHoleWinding(t *testing.T) {
	c := newTestContext()

	c.BeginPath()
	c.Rect(0, 0, 100, 100)
	c.PathWinding(CCW)
	c.Rect(40, 40, 20, 20)
	c.PathWinding(CW)
	c.Fill()
	c.FillHitRegion(1)

	if !c.InFill(1, 10, 10) {
		t.Fatalf("expected (10,10) to be inside the outer rect")
	}
	if c.InFill(1, 50, 50) {
		t.Fatalf("expected (50,50) inside the hole to be excluded")
	}
}

func TestInStrokeWithinHalfWidth(t *testing.T) {
	c := newTestContext()

	c.SetStrokeWidth(10)
	c.BeginPath()
	c.MoveTo(0, 0)
	c.LineTo(100, 0)
	c.Stroke()
	c.StrokeHitRegion(1)

	if !c.InStroke(1, 50, 0) {
		t.Fatalf("expected a point on the stroked line to be inside the stroke")
	}
	if c.InStroke(1, 50, 20) {
		t.Fatalf("expected a point far from the line to be outside the stroke")
	}
}
