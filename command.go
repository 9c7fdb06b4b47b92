package vgcore

import "math"

// BeginPath clears the current path and sub-paths (C2).
func (c *Context) BeginPath() {
	c.commands = c.commands[:0]
	c.cache.clearPathCache()
}

// MoveTo starts a new sub-path at (x, y).
func (c *Context) MoveTo(x, y float32) {
	c.appendCommand([]float32{float32(nvgMOVETO), x, y})
}

// LineTo appends a line segment from the last point to (x, y).
func (c *Context) LineTo(x, y float32) {
	c.appendCommand([]float32{float32(nvgLINETO), x, y})
}

// BezierTo appends a cubic bezier segment.
func (c *Context) BezierTo(c1x, c1y, c2x, c2y, x, y float32) {
	c.appendCommand([]float32{float32(nvgBEZIERTO), c1x, c1y, c2x, c2y, x, y})
}

// QuadTo appends a quadratic bezier segment, elevated to a cubic with
// control points at 2/3 between endpoints (§4.1).
func (c *Context) QuadTo(cx, cy, x, y float32) {
	x0 := c.commandX
	y0 := c.commandY
	c.appendCommand([]float32{
		float32(nvgBEZIERTO),
		x0 + 2.0/3.0*(cx-x0), y0 + 2.0/3.0*(cy-y0),
		x + 2.0/3.0*(cx-x), y + 2.0/3.0*(cy-y),
		x, y,
	})
}

// ArcTo appends an arc between two tangent lines through (x1,y1), with
// radius, degenerating to a straight LineTo for the cases listed in
// §4.1: co-located points, collinear points within distTol, zero
// radius, or a tangent distance exceeding 10^4.
func (c *Context) ArcTo(x1, y1, x2, y2, radius float32) {
	x0 := c.commandX
	y0 := c.commandY

	if len(c.commands) == 0 {
		return
	}

	if ptEquals(x0, y0, x1, y1, c.distTol) ||
		ptEquals(x1, y1, x2, y2, c.distTol) ||
		distPtSeg(x1, y1, x0, y0, x2, y2) < c.distTol*c.distTol ||
		radius < c.distTol {
		c.LineTo(x1, y1)
		return
	}

	dx0 := x0 - x1
	dy0 := y0 - y1
	dx1 := x2 - x1
	dy1 := y2 - y1
	normalize(&dx0, &dy0)
	normalize(&dx1, &dy1)
	a := float32(math.Acos(float64(dx0*dx1 + dy0*dy1)))
	d := radius / float32(math.Tan(float64(a)/2.0))

	if d > 10000.0 {
		c.LineTo(x1, y1)
		return
	}

	var cx, cy, a0, a1 float32
	var dir Winding
	if cross(dx0, dy0, dx1, dy1) > 0.0 {
		cx = x1 + dx0*d + dy0*radius
		cy = y1 + dy0*d + -dx0*radius
		a0 = float32(math.Atan2(float64(dx0), float64(-dy0)))
		a1 = float32(math.Atan2(float64(-dx1), float64(dy1)))
		dir = CW
	} else {
		cx = x1 + dx0*d + -dy0*radius
		cy = y1 + dy0*d + dx0*radius
		a0 = float32(math.Atan2(float64(-dx0), float64(dy0)))
		a1 = float32(math.Atan2(float64(dx1), float64(-dy1)))
		dir = CCW
	}

	c.Arc(cx, cy, radius, a0, a1, dir)
}

// Arc appends an arc of a circle centered at (cx,cy), decomposing the
// sweep into at most 5 cubic segments, each <= 90 degrees (§4.1).
func (c *Context) Arc(cx, cy, r, a0, a1 float32, dir Winding) {
	var da float32
	move := nvgLINETO
	if len(c.commands) == 0 {
		move = nvgMOVETO
	}

	da = a1 - a0
	if dir == CW {
		if absF(da) >= pi*2 {
			da = pi * 2
		} else {
			for da < 0.0 {
				da += pi * 2
			}
		}
	} else {
		if absF(da) >= pi*2 {
			da = -pi * 2
		} else {
			for da > 0.0 {
				da -= pi * 2
			}
		}
	}

	ndivs := maxI(1, minI(int(math.Ceil(float64(absF(da)/(pi*0.5)))), 5))
	hda := (da / float32(ndivs)) / 2.0
	kappa := absF(4.0 / 3.0 * (1.0 - cosF(hda)) / sinF(hda))

	if dir == CCW {
		kappa = -kappa
	}

	vals := make([]float32, 0, 3+5*7)
	var px, py, ptanx, ptany float32

	for i := 0; i <= ndivs; i++ {
		a := a0 + da*(float32(i)/float32(ndivs))
		dx := cosF(a)
		dy := sinF(a)
		x := cx + dx*r
		y := cy + dy*r
		tanx := -dy * r * kappa
		tany := dx * r * kappa

		if i == 0 {
			vals = append(vals, float32(move), x, y)
		} else {
			vals = append(vals, float32(nvgBEZIERTO),
				px+ptanx, py+ptany,
				x-tanx, y-tany,
				x, y)
		}
		px, py = x, y
		ptanx, ptany = tanx, tany
	}

	c.appendCommand(vals)
}

func cosF(a float32) float32 { return float32(math.Cos(float64(a))) }
func sinF(a float32) float32 { return float32(math.Sin(float64(a))) }

// Rect creates a new rectangle shaped sub-path.
func (c *Context) Rect(x, y, w, h float32) {
	c.appendCommand([]float32{
		float32(nvgMOVETO), x, y,
		float32(nvgLINETO), x, y + h,
		float32(nvgLINETO), x + w, y + h,
		float32(nvgLINETO), x + w, y,
		float32(nvgCLOSE),
	})
}

// RoundedRect creates a new rounded-rectangle sub-path with equal
// corner radii.
func (c *Context) RoundedRect(x, y, w, h, r float32) {
	c.RoundedRectVarying(x, y, w, h, r, r, r, r)
}

// RoundedRectVarying creates a new rounded-rectangle sub-path with
// independent per-corner radii; degenerates to Rect when all four radii
// are below 0.1 (§4.1).
func (c *Context) RoundedRectVarying(x, y, w, h, radTopLeft, radTopRight, radBottomRight, radBottomLeft float32) {
	if radTopLeft < 0.1 && radTopRight < 0.1 && radBottomRight < 0.1 && radBottomLeft < 0.1 {
		c.Rect(x, y, w, h)
		return
	}

	halfw := absF(w) * 0.5
	halfh := absF(h) * 0.5
	rxBL, ryBL := minF(radBottomLeft, halfw)*signF(w), minF(radBottomLeft, halfh)*signF(h)
	rxBR, ryBR := minF(radBottomRight, halfw)*signF(w), minF(radBottomRight, halfh)*signF(h)
	rxTR, ryTR := minF(radTopRight, halfw)*signF(w), minF(radTopRight, halfh)*signF(h)
	rxTL, ryTL := minF(radTopLeft, halfw)*signF(w), minF(radTopLeft, halfh)*signF(h)

	c.appendCommand([]float32{
		float32(nvgMOVETO), x, y + ryTL,
		float32(nvgLINETO), x, y + h - ryBL,
		float32(nvgBEZIERTO), x, y + h - ryBL*(1-Kappa90), x + rxBL*(1-Kappa90), y + h, x + rxBL, y + h,
		float32(nvgLINETO), x + w - rxBR, y + h,
		float32(nvgBEZIERTO), x + w - rxBR*(1-Kappa90), y + h, x + w, y + h - ryBR*(1-Kappa90), x + w, y + h - ryBR,
		float32(nvgLINETO), x + w, y + ryTR,
		float32(nvgBEZIERTO), x + w, y + ryTR*(1-Kappa90), x + w - rxTR*(1-Kappa90), y, x + w - rxTR, y,
		float32(nvgLINETO), x + rxTL, y,
		float32(nvgBEZIERTO), x + rxTL*(1-Kappa90), y, x, y + ryTL*(1-Kappa90), x, y + ryTL,
		float32(nvgCLOSE),
	})
}

// Ellipse creates a new ellipse-shaped sub-path.
func (c *Context) Ellipse(cx, cy, rx, ry float32) {
	c.appendCommand([]float32{
		float32(nvgMOVETO), cx - rx, cy,
		float32(nvgBEZIERTO), cx - rx, cy + ry*Kappa90, cx - rx*Kappa90, cy + ry, cx, cy + ry,
		float32(nvgBEZIERTO), cx + rx*Kappa90, cy + ry, cx + rx, cy + ry*Kappa90, cx + rx, cy,
		float32(nvgBEZIERTO), cx + rx, cy - ry*Kappa90, cx + rx*Kappa90, cy - ry, cx, cy - ry,
		float32(nvgBEZIERTO), cx - rx*Kappa90, cy - ry, cx - rx, cy - ry*Kappa90, cx - rx, cy,
		float32(nvgCLOSE),
	})
}

// Circle creates a new circle-shaped sub-path.
func (c *Context) Circle(cx, cy, r float32) { c.Ellipse(cx, cy, r, r) }

// ClosePath closes the current sub-path with a line segment back to its
// start.
func (c *Context) ClosePath() {
	c.appendCommand([]float32{float32(nvgCLOSE)})
}

// PathWinding sets the current sub-path's winding.
func (c *Context) PathWinding(winding Winding) {
	c.appendCommand([]float32{float32(nvgWINDING), float32(winding)})
}
