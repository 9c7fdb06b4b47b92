package vgcore

import "testing"

func TestIdentityMatrixTransformPoint(t *testing.T) {
	m := IdentityMatrix()
	x, y := m.TransformPoint(3, 4)
	if x != 3 || y != 4 {
		t.Fatalf("identity transform changed point: got (%v, %v)", x, y)
	}
}

func TestTranslateMatrixRoundTrip(t *testing.T) {
	m := TranslateMatrix(10, -5)
	inv := m.Inverse()
	x, y := m.TransformPoint(1, 2)
	x, y = inv.TransformPoint(x, y)
	if absF(x-1) > 1e-4 || absF(y-2) > 1e-4 {
		t.Fatalf("translate+inverse did not round-trip: got (%v, %v)", x, y)
	}
}

func TestTryInverseSingularReturnsIdentity(t *testing.T) {
	singular := TransformMatrix{0, 0, 0, 0, 5, 5}
	inv, ok := singular.TryInverse()
	if ok {
		t.Fatalf("expected singular matrix to report ok=false")
	}
	if inv != IdentityMatrix() {
		t.Fatalf("expected identity fallback on singular matrix, got %v", inv)
	}
}

func TestMultiplyAppliesLeftOperandFirst(t *testing.T) {
	// r.Multiply(tr) applies r (rotate 90deg) first, then tr (translate).
	r := RotateMatrix(DegToRad(90))
	tr := TranslateMatrix(5, 0)
	combined := r.Multiply(tr)
	x, y := combined.TransformPoint(1, 0)
	if absF(x-5) > 1e-3 || absF(y-1) > 1e-3 {
		t.Fatalf("unexpected composed transform result: got (%v, %v), want (5, 1)", x, y)
	}
}

func TestDegToRadRadToDeg(t *testing.T) {
	if absF(RadToDeg(DegToRad(180))-180) > 1e-4 {
		t.Fatalf("deg/rad conversion did not round-trip")
	}
}
