package vgcore

// Point is one flattened vertex of a sub-path, carrying both its
// position and the per-edge data the stroke/fill expander needs: the
// outgoing edge direction+length, the bisector used to offset a join,
// and corner/bevel flags (C4).
type Point struct {
	x, y   float32
	dx, dy float32
	length float32
	dmx    float32
	dmy    float32
	flags  nvgPointFlags
}

// Vertex is one emitted 2D position plus its (u,v) antialiasing
// coordinate; u encodes distance-to-edge, v is unused by the fringe
// shader but kept for parity with the reference vertex layout.
type Vertex struct {
	X, Y, U, V float32
}

func vset(v *Vertex, x, y, u, vv float32) { v.X, v.Y, v.U, v.V = x, y, u, vv }

// Path is one sub-path's run of points plus its expanded fill/stroke
// vertex slices (C4).
type Path struct {
	first   int
	count   int
	closed  bool
	nbevel  int
	fill    []Vertex
	stroke  []Vertex
	winding Winding
	convex  bool
}

// Fill returns the path's expanded fill triangle fan, for Renderer
// back-ends outside this package.
func (p Path) Fill() []Vertex { return p.fill }

// Stroke returns the path's expanded stroke/fringe triangle strip, for
// Renderer back-ends outside this package.
func (p Path) Stroke() []Vertex { return p.stroke }

// Convex reports whether the path was detected as a single convex
// sub-path, enabling the fill fast path.
func (p Path) Convex() bool { return p.convex }

// nvgPathCache holds every sub-path flattened from the current command
// buffer, plus the bounds of the whole path (C4).
type nvgPathCache struct {
	points []Point
	paths  []Path
	bounds [4]float32
}

func newPathCache() *nvgPathCache {
	return &nvgPathCache{
		points: make([]Point, 0, nvgInitPointsSize),
		paths:  make([]Path, 0, nvgInitPathsSize),
	}
}

func (cache *nvgPathCache) clearPathCache() {
	cache.points = cache.points[:0]
	cache.paths = cache.paths[:0]
}

func (cache *nvgPathCache) lastPath() *Path {
	if len(cache.paths) > 0 {
		return &cache.paths[len(cache.paths)-1]
	}
	return nil
}

func (cache *nvgPathCache) addPath() {
	cache.paths = append(cache.paths, Path{
		first:   len(cache.points),
		winding: CCW,
		convex:  true,
	})
}

func (cache *nvgPathCache) lastPoint() *Point {
	if len(cache.points) > 0 {
		return &cache.points[len(cache.points)-1]
	}
	return nil
}

func (cache *nvgPathCache) addPoint(x, y float32, flags nvgPointFlags, distTol float32) {
	path := cache.lastPath()
	if path == nil {
		return
	}

	if path.count > 0 && len(cache.points) > 0 {
		pt := cache.lastPoint()
		if ptEquals(pt.x, pt.y, x, y, distTol) {
			pt.flags |= flags
			return
		}
	}

	cache.points = append(cache.points, Point{x: x, y: y, flags: flags})
	path.count++
}

func (cache *nvgPathCache) closePath() {
	if path := cache.lastPath(); path != nil {
		path.closed = true
	}
}

func (cache *nvgPathCache) pathWinding(winding Winding) {
	if path := cache.lastPath(); path != nil {
		path.winding = winding
	}
}

// flattenPaths replays the recorded command buffer (whose points were
// already transformed when they were appended), flattening beziers and
// arcs into a run of Points per sub-path (§4.1/C4).
func (c *Context) flattenPaths() {
	cache := c.cache
	if len(cache.paths) > 0 {
		return
	}

	i := 0
	cmds := c.commands
	for i < len(cmds) {
		switch nvgCommands(cmds[i]) {
		case nvgMOVETO:
			cache.addPath()
			cache.addPoint(cmds[i+1], cmds[i+2], nvgPtCORNER, c.distTol)
			i += 3
		case nvgLINETO:
			cache.addPoint(cmds[i+1], cmds[i+2], nvgPtCORNER, c.distTol)
			i += 3
		case nvgBEZIERTO:
			if last := cache.lastPoint(); last != nil {
				c.tesselateBezier(last.x, last.y,
					cmds[i+1], cmds[i+2], cmds[i+3], cmds[i+4], cmds[i+5], cmds[i+6],
					0, nvgPtCORNER)
			}
			i += 7
		case nvgCLOSE:
			cache.closePath()
			i++
		case nvgWINDING:
			cache.pathWinding(Winding(cmds[i+1]))
			i += 2
		default:
			i++
		}
	}

	cache.bounds = [4]float32{1e6, 1e6, -1e6, -1e6}

	for pi := range cache.paths {
		path := &cache.paths[pi]
		pts := cache.points[path.first : path.first+path.count]

		// drop a trailing point that coincides with the first one and
		// mark the sub-path closed
		if len(pts) >= 2 {
			p0 := &pts[len(pts)-1]
			p1 := &pts[0]
			if ptEquals(p0.x, p0.y, p1.x, p1.y, c.distTol) {
				path.count--
				pts = pts[:len(pts)-1]
				path.closed = true
			}
		}

		if len(pts) > 2 {
			area := polyArea(pts)
			if path.winding == CCW && area < 0 {
				polyReverse(pts)
			}
			if path.winding == CW && area > 0 {
				polyReverse(pts)
			}
		}

		for j := range pts {
			p0 := &pts[(len(pts)+j-1)%len(pts)]
			p1 := &pts[j]
			p0.dx = p1.x - p0.x
			p0.dy = p1.y - p0.y
			p0.length = normalize(&p0.dx, &p0.dy)
			cache.bounds[0] = minF(cache.bounds[0], p0.x)
			cache.bounds[1] = minF(cache.bounds[1], p0.y)
			cache.bounds[2] = maxF(cache.bounds[2], p0.x)
			cache.bounds[3] = maxF(cache.bounds[3], p0.y)
		}
	}
}

func polyArea(pts []Point) float32 {
	var area float32
	for i := 2; i < len(pts); i++ {
		a := &pts[0]
		b := &pts[i-1]
		c := &pts[i]
		area += triarea2(a.x, a.y, b.x, b.y, c.x, c.y)
	}
	return area * 0.5
}

func polyReverse(pts []Point) {
	i, j := 0, len(pts)-1
	for i < j {
		pts[i], pts[j] = pts[j], pts[i]
		i++
		j--
	}
}

// tesselateBezier recursively subdivides a cubic bezier by de Casteljau
// until it is flat within c.tessTol, bailing out past depth 10 (§4.2).
func (c *Context) tesselateBezier(x1, y1, x2, y2, x3, y3, x4, y4 float32, level int, typ nvgPointFlags) {
	if level > 10 {
		return
	}

	x12 := (x1 + x2) * 0.5
	y12 := (y1 + y2) * 0.5
	x23 := (x2 + x3) * 0.5
	y23 := (y2 + y3) * 0.5
	x34 := (x3 + x4) * 0.5
	y34 := (y3 + y4) * 0.5
	x123 := (x12 + x23) * 0.5
	y123 := (y12 + y23) * 0.5

	dx := x4 - x1
	dy := y4 - y1
	d2 := absF((x2-x4)*dy - (y2-y4)*dx)
	d3 := absF((x3-x4)*dy - (y3-y4)*dx)

	if (d2+d3)*(d2+d3) < c.tessTol*(dx*dx+dy*dy) {
		c.cache.addPoint(x4, y4, typ, c.distTol)
		return
	}

	x234 := (x23 + x34) * 0.5
	y234 := (y23 + y34) * 0.5
	x1234 := (x123 + x234) * 0.5
	y1234 := (y123 + y234) * 0.5

	c.tesselateBezier(x1, y1, x12, y12, x123, y123, x1234, y1234, level+1, 0)
	c.tesselateBezier(x1234, y1234, x234, y234, x34, y34, x4, y4, level+1, typ)
}

// calculateJoins derives, for every point in every sub-path, the
// direction and miter data its neighboring join will need, and
// determines each path's bevel count and convexity (§4.3/C6).
func (c *Context) calculateJoins(w float32, lineJoin LineCap, miterLimit float32) {
	cache := c.cache
	iw := float32(0)
	if w > 0.0 {
		iw = 1.0 / w
	}

	for pi := range cache.paths {
		path := &cache.paths[pi]
		pts := cache.points[path.first : path.first+path.count]
		if len(pts) == 0 {
			continue
		}
		nleft := 0
		path.nbevel = 0

		for j := range pts {
			p0 := &pts[(len(pts)+j-1)%len(pts)]
			p1 := &pts[j]
			dlx0 := p0.dy
			dly0 := -p0.dx
			dlx1 := p1.dy
			dly1 := -p1.dx

			p1.dmx = (dlx0 + dlx1) * 0.5
			p1.dmy = (dly0 + dly1) * 0.5
			dmr2 := p1.dmx*p1.dmx + p1.dmy*p1.dmy
			if dmr2 > 0.000001 {
				scale := 1.0 / dmr2
				if scale > 600.0 {
					scale = 600.0
				}
				p1.dmx *= scale
				p1.dmy *= scale
			}

			p1.flags &= nvgPtCORNER
			cr := p1.dx*p0.dy - p0.dx*p1.dy
			if cr > 0.0 {
				nleft++
				p1.flags |= nvgPtLEFT
			}

			limit := maxF(1.01, minF(p0.length, p1.length)*iw)
			if (dmr2 * limit * limit) < 1.0 {
				p1.flags |= nvgPtINNERBEVEL
			}

			if p1.flags&nvgPtCORNER != 0 {
				if lineJoin == BEVEL || lineJoin == ROUND || dmr2*miterLimit*miterLimit < 1.0 {
					p1.flags |= nvgPtBEVEL
				}
			}

			if p1.flags&(nvgPtBEVEL|nvgPtINNERBEVEL) != 0 {
				path.nbevel++
			}
		}

		path.convex = nleft == len(pts)
	}
}
