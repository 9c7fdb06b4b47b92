package vgcore

import (
	"image/color"
	"math"
)

// NVGColor is a float RGBA color used internally by the math kernel and
// paint pipeline; values are nominally in [0,1] but may exceed it during
// interpolation. It satisfies image/color.Color so it can be handed
// straight to callers that expect the standard library interface.
type NVGColor struct {
	R, G, B, A float32
}

// RGBA implements color.Color.
func (c NVGColor) RGBA() (r, g, b, a uint32) {
	r = uint32(clampF(c.R, 0, 1) * 65535)
	g = uint32(clampF(c.G, 0, 1) * 65535)
	b = uint32(clampF(c.B, 0, 1) * 65535)
	a = uint32(clampF(c.A, 0, 1) * 65535)
	return
}

// RGB creates a new opaque color from 0-255 component values.
func RGB(r, g, b uint8) NVGColor { return RGBA(r, g, b, 255) }

// RGBf creates a new opaque color from 0-1 component values.
func RGBf(r, g, b float32) NVGColor { return RGBAf(r, g, b, 1) }

// RGBA creates a new color from 0-255 component values.
func RGBA(r, g, b, a uint8) NVGColor {
	return NVGColor{float32(r) / 255.0, float32(g) / 255.0, float32(b) / 255.0, float32(a) / 255.0}
}

// RGBAf creates a new color from 0-1 component values.
func RGBAf(r, g, b, a float32) NVGColor { return NVGColor{r, g, b, a} }

// TransRGBA returns c with its alpha channel replaced by a (0-255).
func TransRGBA(c NVGColor, a uint8) NVGColor {
	c.A = float32(a) / 255.0
	return c
}

// TransRGBAf returns c with its alpha channel replaced by a (0-1).
func TransRGBAf(c NVGColor, a float32) NVGColor {
	c.A = a
	return c
}

// LerpRGBA linearly interpolates between c0 and c1 by u in [0,1].
func LerpRGBA(c0, c1 NVGColor, u float32) NVGColor {
	u = clampF(u, 0, 1)
	oneMinus := 1 - u
	return NVGColor{
		R: c0.R*oneMinus + c1.R*u,
		G: c0.G*oneMinus + c1.G*u,
		B: c0.B*oneMinus + c1.B*u,
		A: c0.A*oneMinus + c1.A*u,
	}
}

func hue(h, m1, m2 float32) float32 {
	if h < 0 {
		h += 1
	}
	if h > 1 {
		h -= 1
	}
	switch {
	case h < 1.0/6.0:
		return m1 + (m2-m1)*h*6.0
	case h < 3.0/6.0:
		return m2
	case h < 4.0/6.0:
		return m1 + (m2-m1)*(2.0/3.0-h)*6.0
	default:
		return m1
	}
}

// HSL creates a new opaque color from hue/saturation/lightness (0-1).
func HSL(h, s, l float32) NVGColor { return HSLA(h, s, l, 255) }

// HSLA creates a new color from hue/saturation/lightness (0-1) and an
// 0-255 alpha.
func HSLA(h, s, l float32, a uint8) NVGColor {
	h = float32(math.Mod(float64(h), 1.0))
	if h < 0 {
		h += 1
	}
	s = clampF(s, 0, 1)
	l = clampF(l, 0, 1)
	var m2 float32
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return NVGColor{
		R: clampF(hue(h+1.0/3.0, m1, m2), 0, 1),
		G: clampF(hue(h, m1, m2), 0, 1),
		B: clampF(hue(h-1.0/3.0, m1, m2), 0, 1),
		A: float32(a) / 255.0,
	}
}

// colorFromGo converts a standard library color.Color into NVGColor.
func colorFromGo(c color.Color) NVGColor {
	if nc, ok := c.(NVGColor); ok {
		return nc
	}
	r, g, b, a := c.RGBA()
	return NVGColor{
		R: float32(r) / 65535.0,
		G: float32(g) / 65535.0,
		B: float32(b) / 65535.0,
		A: float32(a) / 65535.0,
	}
}
