package casteljau

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var testCurves = []CubicBez{
	{Pt(150, 400), Pt(120, 200), Pt(480, 200), Pt(450, 400)},
	{Pt(0, 0), Pt(1.0/3.0, 0), Pt(2.0/3.0, 1.0/3.0), Pt(1, 1)},
	{Pt(-0.1, 1e9), Pt(7.3, -3.3), Pt(1e-7, 0.3), Pt(-123.456, 42)},
	{Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)},
}

func TestCubicBezEndpoints(t *testing.T) {
	for _, c := range testCurves {
		if got := c.Eval(0); got != c.P0 {
			t.Errorf("%v: Eval(0) = %s, want %s", c, got, c.P0)
		}
		if got := c.Eval(1); got != c.P3 {
			t.Errorf("%v: Eval(1) = %s, want %s", c, got, c.P3)
		}
	}
}

func TestCubicBezReversal(t *testing.T) {
	for _, c := range testCurves[:2] {
		r := c.Reverse()
		for i := range 101 {
			ts := float64(i) / 100
			assertNear(t, c.Eval(ts), r.Eval(1-ts), 1e-9)
		}
	}
}

func TestCubicBezMatchesBernstein(t *testing.T) {
	// y = x^2
	c := testCurves[1]
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		mt := 1 - ts
		want := Point(Vec2(c.P0).Mul(mt * mt * mt).
			Add(Vec2(c.P1).Mul(3 * mt * mt * ts)).
			Add(Vec2(c.P2).Mul(3 * mt * ts * ts)).
			Add(Vec2(c.P3).Mul(ts * ts * ts)))
		got := c.Eval(ts)
		assertNear(t, got, want, 1e-12)
		if d := math.Abs(got.Y - got.X*got.X); d > 1e-12 {
			t.Errorf("t=%g: point %s is not on y = x^2", ts, got)
		}
	}
}

func TestCubicBezConstruct(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	got := c.Construct(0.5)
	want := Construction{
		T:     0.5,
		A:     Pt(0, 50),
		B:     Pt(50, 100),
		C:     Pt(100, 50),
		D:     Pt(25, 75),
		E:     Pt(75, 75),
		Point: Pt(50, 75),
	}
	diff(t, want, got)
	diff(t, [5]Point{want.A, want.B, want.C, want.D, want.E}, got.Points())

	segs := got.Segments()
	diff(t, Line{want.D, want.E}, segs[2])
	diff(t, got.Point, segs[2].Eval(got.T))
}

func TestCubicBezClampsT(t *testing.T) {
	c := testCurves[0]
	for _, tc := range []struct {
		t    float64
		want Point
	}{
		{-0.5, c.P0},
		{-1e9, c.P0},
		{1.5, c.P3},
		{math.Inf(1), c.P3},
	} {
		t.Run(fmt.Sprint(tc.t), func(t *testing.T) {
			diff(t, tc.want, c.Eval(tc.t))
			if got := c.Construct(tc.t).T; got < 0 || got > 1 {
				t.Errorf("Construct kept t=%g outside [0, 1]", got)
			}
		})
	}
}

func TestCubicBezConvexHull(t *testing.T) {
	// The control polygon of testCurves[0] spans x ∈ [120, 480], y ∈ [200, 400].
	c := testCurves[0]
	for _, pt := range c.Sample(200) {
		if pt.X < 120 || pt.X > 480 || pt.Y < 200 || pt.Y > 400 {
			t.Fatalf("%s lies outside the control polygon's bounds", pt)
		}
	}
}

func TestCubicBezControlPolygon(t *testing.T) {
	c := testCurves[0]
	want := [4]Line{{c.P0, c.P1}, {c.P1, c.P2}, {c.P2, c.P3}, {c.P3, c.P0}}
	edges := c.ControlPolygon()
	diff(t, want, edges)
	for i, l := range edges {
		if next := edges[(i+1)%len(edges)]; l.P1 != next.P0 {
			t.Errorf("edge %d ends at %s but edge %d starts at %s", i, l.P1, i+1, next.P0)
		}
	}
}

func TestCubicBezSample(t *testing.T) {
	c := testCurves[0]
	if pts := c.Sample(0); pts != nil {
		t.Errorf("got %d points for n=0, want nil", len(pts))
	}
	pts := c.Sample(4)
	if len(pts) != 5 {
		t.Fatalf("got %d points, want 5", len(pts))
	}
	want := []Point{c.P0, c.Eval(0.25), c.Eval(0.5), c.Eval(0.75), c.P3}
	diff(t, want, pts, cmpopts.EquateApprox(0, 1e-9))
}
