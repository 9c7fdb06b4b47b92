package vgcore

import "math"

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampI(a, mn, mx int) int {
	if a < mn {
		return mn
	}
	if a > mx {
		return mx
	}
	return a
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absF(a float32) float32 {
	if a >= 0 {
		return a
	}
	return -a
}

func signF(a float32) float32 {
	if a >= 0 {
		return 1.0
	}
	return -1.0
}

func clampF(a, mn, mx float32) float32 {
	if a < mn {
		return mn
	}
	if a > mx {
		return mx
	}
	return a
}

// cross is the 2D cross product of (dx1,dy1) and (dx0,dy0), i.e.
// dx1*dy0 - dx0*dy1.
func cross(dx0, dy0, dx1, dy1 float32) float32 {
	return dx1*dy0 - dx0*dy1
}

// normalize normalizes the vector (x, y) in place and returns its
// original length.
func normalize(x, y *float32) float32 {
	d := float32(math.Sqrt(float64(*x**x + *y**y)))
	if d > 1e-6 {
		id := 1.0 / d
		*x *= id
		*y *= id
	}
	return d
}

func ptEquals(x1, y1, x2, y2, tol float32) bool {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx+dy*dy < tol*tol
}

// distPtSeg returns the squared distance from (x,y) to the segment
// (px,py)-(qx,qy).
func distPtSeg(x, y, px, py, qx, qy float32) float32 {
	pqx := qx - px
	pqy := qy - py
	dx := x - px
	dy := y - py
	d := pqx*pqx + pqy*pqy
	t := pqx*dx + pqy*dy
	if d > 0 {
		t /= d
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	dx = px + t*pqx - x
	dy = py + t*pqy - y
	return dx*dx + dy*dy
}

func triarea2(ax, ay, bx, by, cx, cy float32) float32 {
	abx := bx - ax
	aby := by - ay
	acx := cx - ax
	acy := cy - ay
	return acx*aby - abx*acy
}

// intersectRects intersects rectangle (ax,ay,aw,ah) with (bx,by,bw,bh)
// and returns the resulting rectangle, possibly empty.
func intersectRects(ax, ay, aw, ah, bx, by, bw, bh float32) [4]float32 {
	minx := maxF(ax, bx)
	miny := maxF(ay, by)
	maxx := minF(ax+aw, bx+bw)
	maxy := minF(ay+ah, by+bh)
	return [4]float32{minx, miny, maxF(0.0, maxx-minx), maxF(0.0, maxy-miny)}
}

// curveDivs returns the number of segments to approximate an arc of
// radius r and sweep arc within tolerance tol.
func curveDivs(r, arc, tol float32) int {
	da := float32(math.Acos(float64(r/(r+tol)))) * 2.0
	return maxI(2, int(math.Ceil(float64(arc/da))))
}

const pi = math.Pi
