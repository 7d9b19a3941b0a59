package pathfollow

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRepeat(t *testing.T) {
	tests := []struct {
		f, length, want float64
	}{
		{0, 1, 0},
		{0.25, 1, 0.25},
		{1, 1, 0},
		{1.75, 1, 0.75},
		{-0.25, 1, 0.75},
		{-1, 1, 0},
		{7, 3, 1},
		{-7, 3, 2},
	}
	for _, tt := range tests {
		if got := repeat(tt.f, tt.length); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("repeat(%g, %g) = %g, want %g", tt.f, tt.length, got, tt.want)
		}
	}
}

func TestWrap01(t *testing.T) {
	for _, f := range []float64{0, 0.5, 1, 2, -0.5, -3, 1 - 1e-17, 123.999, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := wrap01(f)
		if got < 0 || got >= 1 {
			t.Errorf("wrap01(%g) = %g, outside [0, 1)", f, got)
		}
	}
}

func TestInverseLerp(t *testing.T) {
	tests := []struct {
		a, b, v, want float64
	}{
		{0, 1, 0.3, 0.3},
		{2, 4, 3, 0.5},
		{2, 4, 5, 1},
		{2, 4, 1, 0},
		{4, 2, 3.5, 0.25},
		{1, 1, 1, 0},
		{1, 1, 5, 0},
	}
	for _, tt := range tests {
		if got := inverseLerp(tt.a, tt.b, tt.v); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("inverseLerp(%g, %g, %g) = %g, want %g", tt.a, tt.b, tt.v, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	diff(t, []float64{0, 0, 0.5, 1, 1, 0, 0, 1},
		[]float64{clamp01(-3), clamp01(0), clamp01(0.5), clamp01(1), clamp01(7),
			clamp01(math.NaN()), clamp01(math.Inf(-1)), clamp01(math.Inf(1))})
}

func TestNormalize(t *testing.T) {
	diff(t, v(0, 0.6, 0.8), normalize(v(0, 3, 4)), vecComparer)
	diff(t, v(0, 0, 0), normalize(v(0, 0, 0)))
}

func TestGaussLegendreWeights(t *testing.T) {
	sum := func(coeffs [][2]float64) float64 {
		var s float64
		for _, c := range coeffs {
			s += c[0]
		}
		return s
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, 2.0, sum(gaussLegendreCoeffs8[:]), approx)
	diff(t, 1.0, sum(gaussLegendreCoeffs8Half[:]), approx)
	diff(t, 1.0, sum(gaussLegendreCoeffs16Half[:]), approx)
	diff(t, 1.0, sum(gaussLegendreCoeffs24Half[:]), approx)
}
