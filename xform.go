package vgcore

import "math"

// TransformMatrix is a 2x3 affine transform stored as column-major pairs:
//
//	[a c e]
//	[b d f]
//	[0 0 1]
type TransformMatrix [6]float32

// IdentityMatrix returns the identity transform.
func IdentityMatrix() TransformMatrix {
	return TransformMatrix{1, 0, 0, 1, 0, 0}
}

// TranslateMatrix returns a transform that translates by (tx, ty).
func TranslateMatrix(tx, ty float32) TransformMatrix {
	return TransformMatrix{1, 0, 0, 1, tx, ty}
}

// ScaleMatrix returns a transform that scales by (sx, sy).
func ScaleMatrix(sx, sy float32) TransformMatrix {
	return TransformMatrix{sx, 0, 0, sy, 0, 0}
}

// RotateMatrix returns a transform that rotates by a radians.
func RotateMatrix(a float32) TransformMatrix {
	cs, sn := float32(math.Cos(float64(a))), float32(math.Sin(float64(a)))
	return TransformMatrix{cs, sn, -sn, cs, 0, 0}
}

// SkewXMatrix returns a transform that skews the x axis by a radians.
func SkewXMatrix(a float32) TransformMatrix {
	return TransformMatrix{1, 0, float32(math.Tan(float64(a))), 1, 0, 0}
}

// SkewYMatrix returns a transform that skews the y axis by a radians.
func SkewYMatrix(a float32) TransformMatrix {
	return TransformMatrix{1, float32(math.Tan(float64(a))), 0, 1, 0, 0}
}

// Multiply returns the transform that applies t first and then s
// (matching nvgTransformMultiply).
func (t TransformMatrix) Multiply(s TransformMatrix) TransformMatrix {
	t0 := t[0]*s[0] + t[1]*s[2]
	t2 := t[2]*s[0] + t[3]*s[2]
	t4 := t[4]*s[0] + t[5]*s[2] + s[4]
	t1 := t[0]*s[1] + t[1]*s[3]
	t3 := t[2]*s[1] + t[3]*s[3]
	t5 := t[4]*s[1] + t[5]*s[3] + s[5]
	return TransformMatrix{t0, t1, t2, t3, t4, t5}
}

// PreMultiply returns s*t, i.e. this transform premultiplied by s
// (matching nvgTransformPremultiply, used by Translate/Rotate/Scale).
func (t TransformMatrix) PreMultiply(s TransformMatrix) TransformMatrix {
	return s.Multiply(t)
}

// Inverse returns the inverse transform. A singular matrix yields the
// identity; use TryInverse to learn whether the matrix was invertible.
func (t TransformMatrix) Inverse() TransformMatrix {
	inv, _ := t.TryInverse()
	return inv
}

// TryInverse is Inverse with an explicit success flag (spec.md's
// "inverse reports success/failure" data model requirement).
func (t TransformMatrix) TryInverse() (TransformMatrix, bool) {
	det := float64(t[0])*float64(t[3]) - float64(t[2])*float64(t[1])
	if det > -1e-6 && det < 1e-6 {
		return IdentityMatrix(), false
	}
	invdet := 1.0 / det
	var inv TransformMatrix
	inv[0] = float32(float64(t[3]) * invdet)
	inv[2] = float32(-float64(t[2]) * invdet)
	inv[4] = float32((float64(t[2])*float64(t[5]) - float64(t[3])*float64(t[4])) * invdet)
	inv[1] = float32(-float64(t[1]) * invdet)
	inv[3] = float32(float64(t[0]) * invdet)
	inv[5] = float32((float64(t[1])*float64(t[4]) - float64(t[0])*float64(t[5])) * invdet)
	return inv, true
}

// TransformPoint applies the transform to (sx, sy).
func (t TransformMatrix) TransformPoint(sx, sy float32) (float32, float32) {
	dx := sx*t[0] + sy*t[2] + t[4]
	dy := sx*t[1] + sy*t[3] + t[5]
	return dx, dy
}

// getAverageScale returns the average of the transform's x/y scale
// factors, used to scale stroke width and font size into device space.
func (t TransformMatrix) getAverageScale() float32 {
	sx := float32(math.Sqrt(float64(t[0]*t[0] + t[2]*t[2])))
	sy := float32(math.Sqrt(float64(t[1]*t[1] + t[3]*t[3])))
	return (sx + sy) * 0.5
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg / 180.0 * math.Pi }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 { return rad / math.Pi * 180.0 }
