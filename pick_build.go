package vgcore

// FillHitRegion registers the path most recently filled (the cache
// populated by the last Fill call) as a hit region under id, usable
// with TestFill in HitTest/HitTestAll/InFill. Call it immediately after
// Fill, before the next BeginPath clears the cache (§4.7/C9).
func (c *Context) FillHitRegion(id int) {
	polys := c.buildFillPolys()
	if len(polys) == 0 {
		return
	}
	p := &pickPath{
		id:        id,
		fillPolys: polys,
		bounds:    boundsOf(polys),
		flags:     TestFill,
	}
	c.pick.add(p)
}

// StrokeHitRegion registers the path most recently stroked as a hit
// region under id, usable with TestStroke. Call it immediately after
// Stroke.
func (c *Context) StrokeHitRegion(id int) {
	state := c.getState()
	scale := state.xform.getAverageScale()
	strokeWidth := clampF(state.strokeWidth*scale, 0.0, 200.0)

	polys := c.buildLinePolys()
	if len(polys) == 0 {
		return
	}
	p := &pickPath{
		id:          id,
		strokePolys: polys,
		bounds:      growBounds(boundsOf(polys), strokeWidth*0.5+1),
		strokeWidth: strokeWidth,
		flags:       TestStroke,
	}
	c.pick.add(p)
}

func growBounds(b [4]float32, amt float32) [4]float32 {
	return [4]float32{b[0] - amt, b[1] - amt, b[2] + amt, b[3] + amt}
}

// buildFillPolys converts every cached sub-path's flattened points into
// a closed pickSubPath carrying its resolved winding, for use by the
// ray-casting fill test.
func (c *Context) buildFillPolys() []pickSubPath {
	var out []pickSubPath
	for pi := range c.cache.paths {
		path := &c.cache.paths[pi]
		pts := c.cache.points[path.first : path.first+path.count]
		if len(pts) < 3 {
			continue
		}
		poly := pickSubPath{winding: path.winding, closed: true, pts: make([]point2, len(pts))}
		for i, p := range pts {
			poly.pts[i] = point2{p.x, p.y}
		}
		out = append(out, poly)
	}
	return out
}

// buildLinePolys converts every cached sub-path's flattened points into
// an (open or closed) polyline for use by the stroke distance test.
func (c *Context) buildLinePolys() []pickSubPath {
	var out []pickSubPath
	for pi := range c.cache.paths {
		path := &c.cache.paths[pi]
		pts := c.cache.points[path.first : path.first+path.count]
		if len(pts) < 2 {
			continue
		}
		poly := pickSubPath{closed: path.closed, pts: make([]point2, len(pts))}
		for i, p := range pts {
			poly.pts[i] = point2{p.x, p.y}
		}
		out = append(out, poly)
	}
	return out
}
