package casteljau

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestAffineChain(t *testing.T) {
	const epsilon = 1e-9
	// Translate, then scale, then translate again, as a 2D camera does.
	aff := Translate(Vec(-10, -20)).ThenScale(2, 2).ThenTranslate(Vec(100, 50))
	assertNear(t, Pt(10, 20).Transform(aff), Pt(100, 50), epsilon)
	assertNear(t, Pt(11, 20).Transform(aff), Pt(102, 50), epsilon)

	if s := aff.UniformScale(); math.Abs(s-2) > epsilon {
		t.Errorf("got scale %v, want 2", s)
	}
	diff(t, Pt(0, 0).Transform(aff), Pt(80, 10))

	rot := Scale(1, 1).ThenRotate(math.Pi / 2)
	assertNear(t, Pt(1, 0).Transform(rot), Pt(0, 1), epsilon)
}

func TestAffineSingular(t *testing.T) {
	if d := Scale(0, 0).Determinant(); d != 0 {
		t.Errorf("got determinant %v, want 0", d)
	}
	inv := Scale(0, 0).Invert()
	if !math.IsNaN(inv.N0) && !math.IsInf(inv.N0, 0) {
		t.Errorf("expected inverting a singular transform to produce non-finite values, got %v", inv)
	}
}
