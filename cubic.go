package casteljau

// CubicBez is a cubic Bézier segment defined by its four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Construction holds the points produced while evaluating a cubic Bézier with
// De Casteljau's algorithm.
//
// A, B and C interpolate the control polygon's three edges; D and E
// interpolate AB and BC; Point interpolates DE and lies on the curve.
type Construction struct {
	T             float64
	A, B, C, D, E Point
	Point         Point
}

// Points returns the intermediate points in the order A, B, C, D, E.
func (c Construction) Points() [5]Point {
	return [5]Point{c.A, c.B, c.C, c.D, c.E}
}

// Segments returns the construction lines AB, BC and DE. The curve point
// lies on DE at parameter T.
func (c Construction) Segments() [3]Line {
	return [3]Line{{c.A, c.B}, {c.B, c.C}, {c.D, c.E}}
}

// Construct evaluates the curve at t, keeping the intermediate points. t is
// clamped to [0, 1].
func (cb CubicBez) Construct(t float64) Construction {
	t = clamp01(t)
	a := cb.P0.Lerp(cb.P1, t)
	b := cb.P1.Lerp(cb.P2, t)
	c := cb.P2.Lerp(cb.P3, t)
	d := a.Lerp(b, t)
	e := b.Lerp(c, t)
	return Construction{
		T:     t,
		A:     a,
		B:     b,
		C:     c,
		D:     d,
		E:     e,
		Point: Line{d, e}.Eval(t),
	}
}

// Eval returns the point on the curve at t, which is clamped to [0, 1].
func (cb CubicBez) Eval(t float64) Point {
	// The endpoints are returned directly. Lerp at t=1 computes
	// p + 1*(q-p), which need not round to q.
	switch t = clamp01(t); t {
	case 0:
		return cb.P0
	case 1:
		return cb.P3
	}
	return cb.Construct(t).Point
}

// Reverse returns the same curve traversed from P3 to P0.
func (cb CubicBez) Reverse() CubicBez {
	return CubicBez{cb.P3, cb.P2, cb.P1, cb.P0}
}

// Sample returns n+1 points evenly spaced in t, from P0 to P3. It returns nil
// for n < 1.
func (cb CubicBez) Sample(n int) []Point {
	if n < 1 {
		return nil
	}
	out := make([]Point, n+1)
	for i := range n + 1 {
		out[i] = cb.Eval(float64(i) / float64(n))
	}
	return out
}

// ControlPolygon returns the edges of the closed control polygon: P0P1,
// P1P2, P2P3 and P3P0.
func (cb CubicBez) ControlPolygon() [4]Line {
	return [4]Line{{cb.P0, cb.P1}, {cb.P1, cb.P2}, {cb.P2, cb.P3}, {cb.P3, cb.P0}}
}

func clamp01(t float64) float64 {
	// NaN passes through unchanged.
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
