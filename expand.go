package vgcore

import "math"

// chooseBevel picks the two outer offset points for a join, returning
// either the bevel pair (bevel != 0) or the single miter-extended point
// twice (§4.3).
func chooseBevel(bevel bool, p0, p1 *Point, w float32) (x0, y0, x1, y1 float32) {
	if bevel {
		x0 = p1.x + p0.dy*w
		y0 = p1.y - p0.dx*w
		x1 = p1.x + p1.dy*w
		y1 = p1.y - p1.dx*w
	} else {
		x0 = p1.x + p1.dmx*w
		y0 = p1.y + p1.dmy*w
		x1 = x0
		y1 = y0
	}
	return
}

func roundJoin(dst []Vertex, p0, p1 *Point, lw, rw, lu, ru float32, ncap int) []Vertex {
	dlx0 := p0.dy
	dly0 := -p0.dx
	dlx1 := p1.dy
	dly1 := -p1.dx

	if p1.flags&nvgPtLEFT != 0 {
		lx0, ly0, lx1, ly1 := chooseBevel(p1.flags&nvgPtINNERBEVEL != 0, p0, p1, lw)
		a0 := float32(math.Atan2(float64(-dly0), float64(-dlx0)))
		a1 := float32(math.Atan2(float64(-dly1), float64(-dlx1)))
		if a1 > a0 {
			a1 -= pi * 2
		}

		dst = appendVert(dst, lx0, ly0, lu, 1)
		dst = appendVert(dst, p1.x-dlx0*rw, p1.y-dly0*rw, ru, 1)

		n := clampI(int(math.Ceil(float64((a0-a1)/pi)*float64(ncap))), 2, ncap)
		for i := 0; i < n; i++ {
			u := float32(i) / float32(n-1)
			a := a0 + u*(a1-a0)
			rx := p1.x + cosF(a)*rw
			ry := p1.y + sinF(a)*rw
			dst = appendVert(dst, p1.x, p1.y, 0.5, 1)
			dst = appendVert(dst, rx, ry, ru, 1)
		}

		dst = appendVert(dst, lx1, ly1, lu, 1)
		dst = appendVert(dst, p1.x-dlx1*rw, p1.y-dly1*rw, ru, 1)
	} else {
		rx0, ry0, rx1, ry1 := chooseBevel(p1.flags&nvgPtINNERBEVEL != 0, p0, p1, -rw)
		a0 := float32(math.Atan2(float64(dly0), float64(dlx0)))
		a1 := float32(math.Atan2(float64(dly1), float64(dlx1)))
		if a1 < a0 {
			a1 += pi * 2
		}

		dst = appendVert(dst, p1.x+dlx0*lw, p1.y+dly0*lw, lu, 1)
		dst = appendVert(dst, rx0, ry0, ru, 1)

		n := clampI(int(math.Ceil(float64((a1-a0)/pi)*float64(ncap))), 2, ncap)
		for i := 0; i < n; i++ {
			u := float32(i) / float32(n-1)
			a := a0 + u*(a1-a0)
			lx := p1.x + cosF(a)*lw
			ly := p1.y + sinF(a)*lw
			dst = appendVert(dst, lx, ly, lu, 1)
			dst = appendVert(dst, p1.x, p1.y, 0.5, 1)
		}

		dst = appendVert(dst, p1.x+dlx1*lw, p1.y+dly1*lw, lu, 1)
		dst = appendVert(dst, rx1, ry1, ru, 1)
	}
	return dst
}

func bevelJoin(dst []Vertex, p0, p1 *Point, lw, rw, lu, ru float32) []Vertex {
	dlx0 := p0.dy
	dly0 := -p0.dx
	dlx1 := p1.dy
	dly1 := -p1.dx

	if p1.flags&nvgPtLEFT != 0 {
		lx0, ly0, lx1, ly1 := chooseBevel(p1.flags&nvgPtINNERBEVEL != 0, p0, p1, lw)
		dst = appendVert(dst, lx0, ly0, lu, 1)
		dst = appendVert(dst, p1.x-dlx0*rw, p1.y-dly0*rw, ru, 1)
		dst = appendVert(dst, lx1, ly1, lu, 1)
		dst = appendVert(dst, p1.x-dlx1*rw, p1.y-dly1*rw, ru, 1)
	} else {
		rx0, ry0, rx1, ry1 := chooseBevel(p1.flags&nvgPtINNERBEVEL != 0, p0, p1, -rw)
		dst = appendVert(dst, p1.x+dlx0*lw, p1.y+dly0*lw, lu, 1)
		dst = appendVert(dst, rx0, ry0, ru, 1)
		dst = appendVert(dst, p1.x+dlx1*lw, p1.y+dly1*lw, lu, 1)
		dst = appendVert(dst, rx1, ry1, ru, 1)
	}
	return dst
}

func appendVert(dst []Vertex, x, y, u, v float32) []Vertex {
	var vv Vertex
	vset(&vv, x, y, u, v)
	return append(dst, vv)
}

func buttCapStart(dst []Vertex, p *Point, dx, dy, w, d, aa float32) []Vertex {
	px := p.x - dx*d
	py := p.y - dy*d
	dlx := dy
	dly := -dx
	dst = appendVert(dst, px+dlx*w-dx*aa, py+dly*w-dy*aa, 0, 0)
	dst = appendVert(dst, px-dlx*w-dx*aa, py-dly*w-dy*aa, 1, 0)
	dst = appendVert(dst, px+dlx*w, py+dly*w, 0, 1)
	dst = appendVert(dst, px-dlx*w, py-dly*w, 1, 1)
	return dst
}

func buttCapEnd(dst []Vertex, p *Point, dx, dy, w, d, aa float32) []Vertex {
	px := p.x + dx*d
	py := p.y + dy*d
	dlx := dy
	dly := -dx
	dst = appendVert(dst, px+dlx*w, py+dly*w, 0, 1)
	dst = appendVert(dst, px-dlx*w, py-dly*w, 1, 1)
	dst = appendVert(dst, px+dlx*w+dx*aa, py+dly*w+dy*aa, 0, 0)
	dst = appendVert(dst, px-dlx*w+dx*aa, py-dly*w+dy*aa, 1, 0)
	return dst
}

// squareCapStart/End extend the cap by w (not aa) past the endpoint so
// the stroke body itself squares off, with the aa fringe continuing
// beyond that — distinct from the butt cap's aa-only extension
// (REDESIGN: the upstream nvg__buttCapStart/End collapsed both cases
// into one ambiguous branch; here each is its own function).
func squareCapStart(dst []Vertex, p *Point, dx, dy, w, aa float32) []Vertex {
	px := p.x - dx*w
	py := p.y - dy*w
	dlx := dy
	dly := -dx
	dst = appendVert(dst, px+dlx*w-dx*aa, py+dly*w-dy*aa, 0, 0)
	dst = appendVert(dst, px-dlx*w-dx*aa, py-dly*w-dy*aa, 1, 0)
	dst = appendVert(dst, px+dlx*w, py+dly*w, 0, 1)
	dst = appendVert(dst, px-dlx*w, py-dly*w, 1, 1)
	return dst
}

func squareCapEnd(dst []Vertex, p *Point, dx, dy, w, aa float32) []Vertex {
	px := p.x + dx*w
	py := p.y + dy*w
	dlx := dy
	dly := -dx
	dst = appendVert(dst, px+dlx*w, py+dly*w, 0, 1)
	dst = appendVert(dst, px-dlx*w, py-dly*w, 1, 1)
	dst = appendVert(dst, px+dlx*w+dx*aa, py+dly*w+dy*aa, 0, 0)
	dst = appendVert(dst, px-dlx*w+dx*aa, py-dly*w+dy*aa, 1, 0)
	return dst
}

func roundCapStart(dst []Vertex, p *Point, dx, dy, w float32, ncap int) []Vertex {
	px, py := p.x, p.y
	dlx := dy
	dly := -dx
	for i := 0; i < ncap; i++ {
		a := float32(i) / float32(ncap-1) * pi
		ax := cosF(a) * w
		ay := sinF(a) * w
		dst = appendVert(dst, px-dlx*ax-dx*ay, py-dly*ax-dy*ay, 0, 1)
		dst = appendVert(dst, px, py, 0.5, 1)
	}
	dst = appendVert(dst, px+dlx*w, py+dly*w, 0, 1)
	dst = appendVert(dst, px-dlx*w, py-dly*w, 1, 1)
	return dst
}

func roundCapEnd(dst []Vertex, p *Point, dx, dy, w float32, ncap int) []Vertex {
	px, py := p.x, p.y
	dlx := dy
	dly := -dx
	dst = appendVert(dst, px+dlx*w, py+dly*w, 0, 1)
	dst = appendVert(dst, px-dlx*w, py-dly*w, 1, 1)
	for i := 0; i < ncap; i++ {
		a := float32(i) / float32(ncap-1) * pi
		ax := cosF(a) * w
		ay := sinF(a) * w
		dst = appendVert(dst, px, py, 0.5, 1)
		dst = appendVert(dst, px-dlx*ax+dx*ay, py-dly*ax+dy*ay, 0, 1)
	}
	return dst
}

// expandStroke turns every flattened sub-path into an antialiased
// triangle-strip stroke outline, handling caps on open sub-paths and
// joins at every interior point; closed sub-paths loop back to their
// first vertex pair (§4.3/C6).
func (c *Context) expandStroke(w, fringeWidth float32, lineCap, lineJoin LineCap, miterLimit float32) {
	aa := fringeWidth
	var u0, u1 float32 = 0, 1

	ncap := curveDivs(w, pi, c.tessTol)

	w += aa * 0.5
	if aa == 0.0 {
		u0, u1 = 0.5, 0.5
	}

	c.calculateJoins(w, lineJoin, miterLimit)

	cache := c.cache
	for pi := range cache.paths {
		path := &cache.paths[pi]
		pts := cache.points[path.first : path.first+path.count]
		if len(pts) == 0 {
			continue
		}

		var loop bool
		if path.closed {
			loop = true
		}

		cverts := 0
		if lineJoin == ROUND {
			cverts += (ncap + 2) * path.nbevel
		} else {
			cverts += 4 * path.nbevel
		}
		if !loop {
			if lineCap == ROUND {
				cverts += (ncap*2 + 2) * 2
			} else {
				cverts += (2 + 2) * 2
			}
		}
		cverts += (len(pts) - boolToInt(!loop)) * 4

		dst := make([]Vertex, 0, cverts)

		var s, e int
		if loop {
			s, e = 0, len(pts)
		} else {
			s, e = 1, len(pts)-1
		}

		if !loop {
			p0 := &pts[0]
			p1 := &pts[1]
			dx := p1.x - p0.x
			dy := p1.y - p0.y
			normalize(&dx, &dy)
			switch lineCap {
			case BUTT:
				dst = buttCapStart(dst, p0, dx, dy, w, -aa*0.5, aa)
			case SQUARE:
				dst = squareCapStart(dst, p0, dx, dy, w, aa)
			case ROUND:
				dst = roundCapStart(dst, p0, dx, dy, w, ncap)
			}
		}

		for j := s; j < e; j++ {
			p0 := &pts[(len(pts)+j-1)%len(pts)]
			p1 := &pts[j%len(pts)]

			if p1.flags&(nvgPtBEVEL|nvgPtINNERBEVEL) != 0 {
				if lineJoin == ROUND {
					dst = roundJoin(dst, p0, p1, w, w, u0, u1, ncap)
				} else {
					dst = bevelJoin(dst, p0, p1, w, w, u0, u1)
				}
			} else {
				dst = appendVert(dst, p1.x+p1.dmx*w, p1.y+p1.dmy*w, u0, 1)
				dst = appendVert(dst, p1.x-p1.dmx*w, p1.y-p1.dmy*w, u1, 1)
			}
		}

		if loop {
			dst = appendVert(dst, dst[0].X, dst[0].Y, u0, 1)
			dst = appendVert(dst, dst[1].X, dst[1].Y, u1, 1)
		} else {
			p0 := &pts[len(pts)-2]
			p1 := &pts[len(pts)-1]
			dx := p1.x - p0.x
			dy := p1.y - p0.y
			normalize(&dx, &dy)
			switch lineCap {
			case BUTT:
				dst = buttCapEnd(dst, p1, dx, dy, w, aa*0.5, aa)
			case SQUARE:
				dst = squareCapEnd(dst, p1, dx, dy, w, aa)
			case ROUND:
				dst = roundCapEnd(dst, p1, dx, dy, w, ncap)
			}
		}

		path.stroke = dst
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// expandFill builds the solid interior triangle fan for every
// sub-path, adding a matching fringe strip offset by fringeWidth unless
// the caller disabled AA; when the path is a single convex sub-path
// (the convex fast path) the fringe's left-side vertices are offset by
// w instead of aa+w and get u=0.5 (§4.4/C6).
func (c *Context) expandFill(w float32, lineJoin LineCap, miterLimit float32, fringeWidth float32) {
	aa := fringeWidth
	fringe := w > 0.0

	c.calculateJoins(w, lineJoin, miterLimit)

	convex := len(c.cache.paths) == 1 && c.cache.paths[0].convex

	cache := c.cache
	for pi := range cache.paths {
		path := &cache.paths[pi]
		pts := cache.points[path.first : path.first+path.count]
		if len(pts) == 0 {
			continue
		}

		woff := float32(0.5)
		if !fringe {
			woff = 0.0
		}

		fill := make([]Vertex, 0, len(pts))
		for j := range pts {
			p := &pts[j]
			fill = appendVert(fill, p.x+p.dmx*woff, p.y+p.dmy*woff, 0.5, 1)
		}
		path.fill = fill

		if fringe {
			lw := aa + w
			rw := aa - w
			lu := float32(0)
			ru := float32(1)
			if convex {
				lw = w
				lu = 0.5
			}

			stroke := make([]Vertex, 0, (len(pts)+1)*2)
			for j := 0; j < len(pts); j++ {
				p0 := &pts[(len(pts)+j-1)%len(pts)]
				p1 := &pts[j]
				if p1.flags&nvgPtBEVEL != 0 {
					stroke = bevelJoin(stroke, p0, p1, lw, rw, lu, ru)
				} else {
					stroke = appendVert(stroke, p1.x+p1.dmx*lw, p1.y+p1.dmy*lw, lu, 1)
					stroke = appendVert(stroke, p1.x-p1.dmx*rw, p1.y-p1.dmy*rw, ru, 1)
				}
			}
			stroke = appendVert(stroke, stroke[0].X, stroke[0].Y, lu, 1)
			stroke = appendVert(stroke, stroke[1].X, stroke[1].Y, ru, 1)
			path.stroke = stroke
		} else {
			path.stroke = nil
		}
	}
}
