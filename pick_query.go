package vgcore

// HitTest returns the id of the topmost registered hit region
// containing (x,y) that matches the given flags, and true, or (0,
// false) if none matches. "Topmost" means most-recently registered
// (§4.7/C9, testable property: HitTest is deterministic and returns the
// region nearest the top of the paint order).
func (c *Context) HitTest(x, y float32, flags HitTestFlags) (int, bool) {
	if x < c.pick.bounds[0] || x > c.pick.bounds[2] || y < c.pick.bounds[1] || y > c.pick.bounds[3] {
		return 0, false
	}
	candidates := c.pick.candidatesAt(x, y)
	best := -1
	for _, idx := range candidates {
		p := c.pick.paths[idx]
		if p.flags&flags == 0 {
			continue
		}
		if !inBounds(x, y, p.bounds) {
			continue
		}
		if pickMatches(p, x, y, flags) {
			if best < 0 || p.order > c.pick.paths[best].order {
				best = idx
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return c.pick.paths[best].id, true
}

// HitTestAll returns the ids of every registered hit region containing
// (x,y) that matches flags, ordered from topmost to bottommost.
func (c *Context) HitTestAll(x, y float32, flags HitTestFlags) []int {
	if x < c.pick.bounds[0] || x > c.pick.bounds[2] || y < c.pick.bounds[1] || y > c.pick.bounds[3] {
		return nil
	}
	candidates := c.pick.candidatesAt(x, y)
	type hit struct {
		id    int
		order int
	}
	var hits []hit
	for _, idx := range candidates {
		p := c.pick.paths[idx]
		if p.flags&flags == 0 || !inBounds(x, y, p.bounds) {
			continue
		}
		if pickMatches(p, x, y, flags) {
			hits = append(hits, hit{p.id, p.order})
		}
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].order > hits[j-1].order; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.id
	}
	return out
}

// InFill reports whether (x,y) lies within the fill region registered
// for id.
func (c *Context) InFill(id int, x, y float32) bool {
	p := c.pick.findByID(id)
	if p == nil || p.flags&TestFill == 0 {
		return false
	}
	return inBounds(x, y, p.bounds) && fillContains(p.fillPolys, x, y)
}

// InStroke reports whether (x,y) lies within strokeWidth/2 of the
// stroke registered for id.
func (c *Context) InStroke(id int, x, y float32) bool {
	p := c.pick.findByID(id)
	if p == nil || p.flags&TestStroke == 0 {
		return false
	}
	return inBounds(x, y, p.bounds) && strokeContains(p.strokePolys, p.strokeWidth, x, y)
}

func (s *pickScene) findByID(id int) *pickPath {
	for i := len(s.paths) - 1; i >= 0; i-- {
		if s.paths[i].id == id {
			return s.paths[i]
		}
	}
	return nil
}

func inBounds(x, y float32, b [4]float32) bool {
	return x >= b[0] && x <= b[2] && y >= b[1] && y <= b[3]
}

func pickMatches(p *pickPath, x, y float32, flags HitTestFlags) bool {
	if flags&TestFill != 0 && p.flags&TestFill != 0 && fillContains(p.fillPolys, x, y) {
		return true
	}
	if flags&TestStroke != 0 && p.flags&TestStroke != 0 && strokeContains(p.strokePolys, p.strokeWidth, x, y) {
		return true
	}
	return false
}

// fillContains runs the standard ray-casting point-in-polygon test
// across every sub-path, accumulating a signed winding count so holes
// (CW sub-paths nested in a CCW outer sub-path) correctly subtract
// (§4.7). flattenPaths has already ordered each sub-path's points to
// match its declared winding, so the geometric crossing direction
// alone carries the sign.
func fillContains(polys []pickSubPath, x, y float32) bool {
	winding := 0
	for _, poly := range polys {
		n := len(poly.pts)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a := poly.pts[i]
			b := poly.pts[(i+1)%n]
			if (a.y <= y) != (b.y <= y) {
				t := (y - a.y) / (b.y - a.y)
				xcross := a.x + t*(b.x-a.x)
				if xcross > x {
					if b.y > a.y {
						winding++
					} else {
						winding--
					}
				}
			}
		}
	}
	return winding != 0
}

// strokeContains tests whether (x,y) is within w/2 of any segment of
// any registered polyline.
func strokeContains(polys []pickSubPath, w, x, y float32) bool {
	half := w * 0.5
	half2 := half * half
	for _, poly := range polys {
		n := len(poly.pts)
		segs := n - 1
		if poly.closed {
			segs = n
		}
		for i := 0; i < segs; i++ {
			a := poly.pts[i]
			b := poly.pts[(i+1)%n]
			if distPtSeg(x, y, a.x, a.y, b.x, b.y) <= half2 {
				return true
			}
		}
	}
	return false
}
