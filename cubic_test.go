package pathfollow

import (
	"math"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2, z = x
	c := CubicBez{
		v(0.0, 0.0, 0.0),
		v(1.0/3.0, 0.0, 1.0/3.0),
		v(2.0/3.0, 1.0/3.0, 2.0/3.0),
		v(1.0, 1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Len(); l >= delta*4 {
			t.Errorf("got difference of %g, want at most %g", l, delta*4)
		}
	}
}

func TestCubicBezDerivDegenerateHandle(t *testing.T) {
	// P1 coincides with P0, so the first derivative vanishes at t = 0.
	c := CubicBez{v(0, 0, 0), v(0, 0, 0), v(1, 1, 0), v(2, 1, 0)}
	d := normalize(c.Deriv(0))
	want := normalize(v(1, 1, 0))
	diff(t, want, d, vecComparer)
}

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := CubicBez{v(1, 2, 3), v(4, 0, 0), v(0, 4, 0), v(-1, -2, -3)}
	diff(t, c.P0, c.Eval(0), vecComparer)
	diff(t, c.P3, c.Eval(1), vecComparer)
}

func TestCubicBezArclen(t *testing.T) {
	// y = x^2
	c := CubicBez{
		v(0.0, 0.0, 0.0),
		v(1.0/3.0, 0.0, 0.0),
		v(2.0/3.0, 1.0/3.0, 0.0),
		v(1.0, 1.0, 0.0),
	}
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		error := c.Arclen(accuracy) - trueArclen
		if math.Abs(error) > accuracy {
			t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
		}
	}
}

func TestCubicBezArclenPathological(t *testing.T) {
	// The first and last control points coincide; the curve folds back.
	c := CubicBez{v(0, 0, 0), v(1, 0, 0), v(1, 0, 0), v(0, 0, 0)}
	got := c.Arclen(1e-9)
	if got <= 0 || math.IsNaN(got) {
		t.Fatalf("got arclength %g", got)
	}
	// x(t) = 3t(1-t), which peaks at 0.75
	if math.Abs(got-1.5) > 1e-6 {
		t.Errorf("got arclength %g, want 1.5", got)
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{v(0, 0, 0), v(1, 2, 0), v(3, 2, 1), v(4, 0, 1)}
	c0, c1 := c.Subdivide()
	for i := range 11 {
		ts := float64(i) / 10
		diff(t, c.Eval(ts/2), c0.Eval(ts), vecComparer)
		diff(t, c.Eval(0.5+ts/2), c1.Eval(ts), vecComparer)
	}
}
