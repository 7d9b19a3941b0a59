package pathfollow

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var _ ParametricCurve = CubicBez{}
var _ Arclener = CubicBez{}
var _ Tangenter = CubicBez{}

// CubicBez is a cubic Bézier segment in 3D.
type CubicBez struct {
	P0 mgl64.Vec3
	P1 mgl64.Vec3
	P2 mgl64.Vec3
	P3 mgl64.Vec3
}

// Eval evaluates the curve in Bernstein form,
// (1-t)³p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³p3.
func (c CubicBez) Eval(t float64) mgl64.Vec3 {
	return mgl64.CubicBezierCurve3D(t, c.P0, c.P1, c.P2, c.P3)
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Len() + d12.Len() + d23.Len() - d03.Len()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).LenSqr()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).LenSqr()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm, dm1, dm2 mgl64.Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Len()
		dmx := d.Sub(dm1.Mul(xi)).Len()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			lerp(c.P0, c.P1, 0.5),
			c.P0.Add(c.P1.Mul(2.0)).Add(c.P2).Mul(0.25),
			pm,
		},
		CubicBez{
			pm,
			c.P1.Add(c.P2.Mul(2.0)).Add(c.P3).Mul(0.25),
			lerp(c.P2, c.P3, 0.5),
			c.P3,
		}
}

// Differentiate returns the derivative curve, a quadratic Bézier.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).Mul(3),
		c.P2.Sub(c.P1).Mul(3),
		c.P3.Sub(c.P2).Mul(3),
	}
}

// Deriv returns the first derivative at t.
//
// When a handle has zero length the derivative vanishes at that end; the
// second derivative gives the direction there instead.
func (c CubicBez) Deriv(t float64) mgl64.Vec3 {
	d := c.Differentiate()
	v := d.Eval(t)
	if v.LenSqr() > 0 {
		return v
	}
	// direction of the derivative's derivative (a line)
	return d.P1.Sub(d.P0).Mul(2 * (1 - t)).Add(d.P2.Sub(d.P1).Mul(2 * t))
}

func (c CubicBez) Transform(m mgl64.Mat4) CubicBez {
	return CubicBez{
		mgl64.TransformCoordinate(c.P0, m),
		mgl64.TransformCoordinate(c.P1, m),
		mgl64.TransformCoordinate(c.P2, m),
		mgl64.TransformCoordinate(c.P3, m),
	}
}

func (c CubicBez) Start() mgl64.Vec3 { return c.P0 }
func (c CubicBez) End() mgl64.Vec3   { return c.P3 }

func (c CubicBez) Seg() Segment {
	return Segment{Kind: BezierSegment, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
