package vgcore

// pickScene is the implicit fixed-depth quadtree spatial index over
// every sub-path registered for hit-testing during a frame (C9). Paths
// are inserted into the smallest node whose bounds fully contain them,
// so a query only has to test candidates along the single root-to-leaf
// path under the query point (§4.7).
type pickScene struct {
	bounds   [4]float32 // xmin,ymin,xmax,ymax of the frame viewport
	root     *quadNode
	paths    []*pickPath
	nextID   int
}

const pickMaxDepth = 5

type quadNode struct {
	bounds   [4]float32
	children [4]*quadNode
	items    []int
	level    int
}

// pickSubPath is one polygon (for fill tests) or open or closed
// polyline (for stroke tests), already transformed to screen space,
// belonging to a registered hit region and carrying its sub-path's
// declared winding.
type pickSubPath struct {
	pts     []point2
	winding Winding
	closed  bool
}

type point2 struct{ x, y float32 }

// pickPath is one registered hit region: an opaque user id, its
// screen-space bounds, and the polygon(s) needed to test fill and/or
// stroke containment against it.
type pickPath struct {
	id          int
	bounds      [4]float32
	fillPolys   []pickSubPath
	strokePolys []pickSubPath
	strokeWidth float32
	flags       HitTestFlags
	order       int
}

func newPickScene() *pickScene {
	return &pickScene{}
}

func (s *pickScene) reset(width, height float32) {
	s.bounds = [4]float32{0, 0, width, height}
	s.root = &quadNode{bounds: s.bounds}
	s.paths = s.paths[:0]
	s.nextID = 0
}

func boundsOf(polys []pickSubPath) [4]float32 {
	b := [4]float32{1e30, 1e30, -1e30, -1e30}
	for _, poly := range polys {
		for _, p := range poly.pts {
			b[0] = minF(b[0], p.x)
			b[1] = minF(b[1], p.y)
			b[2] = maxF(b[2], p.x)
			b[3] = maxF(b[3], p.y)
		}
	}
	return b
}

func unionBounds(a, b [4]float32) [4]float32 {
	return [4]float32{minF(a[0], b[0]), minF(a[1], b[1]), maxF(a[2], b[2]), maxF(a[3], b[3])}
}

func (s *pickScene) add(p *pickPath) {
	p.order = len(s.paths)
	s.paths = append(s.paths, p)
	insert(s.root, len(s.paths)-1, p.bounds, 0)
}

func insert(node *quadNode, idx int, bounds [4]float32, depth int) {
	if depth >= pickMaxDepth {
		node.items = append(node.items, idx)
		return
	}

	cx := (node.bounds[0] + node.bounds[2]) * 0.5
	cy := (node.bounds[1] + node.bounds[3]) * 0.5

	var childIdx = -1
	switch {
	case bounds[2] <= cx && bounds[3] <= cy:
		childIdx = 0 // top-left
	case bounds[0] >= cx && bounds[3] <= cy:
		childIdx = 1 // top-right
	case bounds[2] <= cx && bounds[1] >= cy:
		childIdx = 2 // bottom-left
	case bounds[0] >= cx && bounds[1] >= cy:
		childIdx = 3 // bottom-right
	}

	if childIdx < 0 {
		node.items = append(node.items, idx)
		return
	}

	child := node.children[childIdx]
	if child == nil {
		var cb [4]float32
		switch childIdx {
		case 0:
			cb = [4]float32{node.bounds[0], node.bounds[1], cx, cy}
		case 1:
			cb = [4]float32{cx, node.bounds[1], node.bounds[2], cy}
		case 2:
			cb = [4]float32{node.bounds[0], cy, cx, node.bounds[3]}
		case 3:
			cb = [4]float32{cx, cy, node.bounds[2], node.bounds[3]}
		}
		child = &quadNode{bounds: cb, level: node.level + 1}
		node.children[childIdx] = child
	}
	insert(child, idx, bounds, depth+1)
}

// candidatesAt collects every path index registered in a node along
// the root-to-leaf descent that contains (x,y), node by node from the
// root down (insertion order within each node).
func (s *pickScene) candidatesAt(x, y float32) []int {
	var out []int
	node := s.root
	for node != nil {
		out = append(out, node.items...)
		cx := (node.bounds[0] + node.bounds[2]) * 0.5
		cy := (node.bounds[1] + node.bounds[3]) * 0.5
		var childIdx int
		switch {
		case x <= cx && y <= cy:
			childIdx = 0
		case x > cx && y <= cy:
			childIdx = 1
		case x <= cx && y > cy:
			childIdx = 2
		default:
			childIdx = 3
		}
		node = node.children[childIdx]
	}
	return out
}
