package vgcore

import (
	"image/color"
	"math"
)

// Paint encodes every gradient and image-pattern variant uniformly: a
// transform, an extent, a radius, a feather, and two colors, with an
// optional image handle for patterns (C7).
type Paint struct {
	xform      TransformMatrix
	extent     [2]float32
	radius     float32
	feather    float32
	innerColor NVGColor
	outerColor NVGColor
	image      int
}

// Fields exposes a Paint's components for a Renderer back-end to turn
// into shader uniforms; back-ends live outside this package, so the
// struct fields themselves stay unexported.
func (p Paint) Fields() (xform TransformMatrix, extent [2]float32, radius, feather float32, inner, outer NVGColor, image int) {
	return p.xform, p.extent, p.radius, p.feather, p.innerColor, p.outerColor, p.image
}

func (p *Paint) setPaintColor(c color.Color) {
	*p = Paint{
		xform:      IdentityMatrix(),
		radius:     0,
		feather:    1,
		innerColor: colorFromGo(c),
		outerColor: colorFromGo(c),
	}
}

// LinearGradient creates a gradient along the line from (sx,sy) to
// (ex,ey), fading from icol to ocol.
func LinearGradient(sx, sy, ex, ey float32, icol, ocol color.Color) Paint {
	const large = 1e5
	dx := ex - sx
	dy := ey - sy
	d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if d > 0.0001 {
		dx /= d
		dy /= d
	} else {
		dx = 0
		dy = 1
	}

	var p Paint
	p.xform = TransformMatrix{dy, -dx, dx, dy, sx - dx*large, sy - dy*large}
	p.extent = [2]float32{large, large + d*0.5}
	p.radius = 0
	p.feather = maxF(1.0, d)
	p.innerColor = colorFromGo(icol)
	p.outerColor = colorFromGo(ocol)
	return p
}

// BoxGradient creates a rounded-rectangle gradient useful for drawing
// soft-edged boxes and shadows. r is the corner radius, f the feather.
func BoxGradient(x, y, w, h, r, f float32, icol, ocol color.Color) Paint {
	var p Paint
	p.xform = IdentityMatrix()
	p.xform[4] = x + w*0.5
	p.xform[5] = y + h*0.5
	p.extent = [2]float32{w * 0.5, h * 0.5}
	p.radius = r
	p.feather = maxF(1.0, f)
	p.innerColor = colorFromGo(icol)
	p.outerColor = colorFromGo(ocol)
	return p
}

// RadialGradient creates a gradient centered at (cx,cy) fading from icol
// at inr to ocol at outr.
func RadialGradient(cx, cy, inr, outr float32, icol, ocol color.Color) Paint {
	r := (inr + outr) * 0.5
	f := outr - inr

	var p Paint
	p.xform = IdentityMatrix()
	p.xform[4] = cx
	p.xform[5] = cy
	p.extent = [2]float32{r, r}
	p.radius = r
	p.feather = maxF(1.0, f)
	p.innerColor = colorFromGo(icol)
	p.outerColor = colorFromGo(ocol)
	return p
}

// ImagePattern creates a paint that samples the given image handle,
// centered at (cx,cy), sized (w,h), rotated by angle radians.
func ImagePattern(cx, cy, w, h, angle float32, image int, alpha float32) Paint {
	var p Paint
	p.xform = RotateMatrix(angle)
	p.xform[4] = cx
	p.xform[5] = cy
	p.extent = [2]float32{w, h}
	p.image = image
	p.innerColor = RGBAf(1, 1, 1, alpha)
	p.outerColor = p.innerColor
	return p
}
