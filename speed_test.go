package pathfollow

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinearSpeedCurve(t *testing.T) {
	c := LinearSpeedCurve(0, 1, 1, 3)
	for i := range 11 {
		x := float64(i) / 10
		diff(t, 1+2*x, c.Evaluate(x), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestSpeedCurveClampsOutsideKeys(t *testing.T) {
	c := LinearSpeedCurve(0.2, 1, 0.8, 2)
	if got := c.Evaluate(-5); got != 1 {
		t.Errorf("got %g before the first key, want 1", got)
	}
	if got := c.Evaluate(0.2); got != 1 {
		t.Errorf("got %g at the first key, want 1", got)
	}
	if got := c.Evaluate(5); got != 2 {
		t.Errorf("got %g after the last key, want 2", got)
	}
}

func TestSpeedCurveHitsKeys(t *testing.T) {
	c := NewSpeedCurve(
		Keyframe{Time: 1, Value: 4},
		Keyframe{Time: 0, Value: 1},
		Keyframe{Time: 0.5, Value: 0.25, InTangent: -3, OutTangent: 5},
	)
	diff(t, []float64{0, 0.5, 1}, []float64{c.Keys()[0].Time, c.Keys()[1].Time, c.Keys()[2].Time})
	for _, k := range c.Keys() {
		diff(t, k.Value, c.Evaluate(k.Time), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestSpeedCurveTangents(t *testing.T) {
	// With matching values and tangents 1, the Hermite segment is the line y = x.
	c := NewSpeedCurve(
		Keyframe{Time: 0, Value: 0, OutTangent: 1},
		Keyframe{Time: 2, Value: 2, InTangent: 1},
	)
	diff(t, 0.7, c.Evaluate(0.7), cmpopts.EquateApprox(0, 1e-12))

	// Flat tangents ease in and out around the midpoint.
	c = NewSpeedCurve(Keyframe{Time: 0, Value: 0}, Keyframe{Time: 1, Value: 1})
	if got := c.Evaluate(0.1); got >= 0.1 {
		t.Errorf("got %g, want less than linear 0.1", got)
	}
	diff(t, 0.5, c.Evaluate(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestSpeedCurveStep(t *testing.T) {
	c := NewSpeedCurve(
		Keyframe{Time: 0, Value: 1, OutTangent: math.Inf(1)},
		Keyframe{Time: 1, Value: 5},
	)
	if got := c.Evaluate(0.99); got != 1 {
		t.Errorf("got %g, want 1 until the next key", got)
	}
	if got := c.Evaluate(1); got != 5 {
		t.Errorf("got %g, want 5", got)
	}
}

func TestSpeedCurveAddKey(t *testing.T) {
	c := ConstantSpeedCurve(1)
	if i := c.AddKey(Keyframe{Time: 0.5, Value: 3}); i != 1 {
		t.Errorf("got index %d, want 1", i)
	}
	if i := c.AddKey(Keyframe{Time: 0.5, Value: 2}); i != 1 {
		t.Errorf("got index %d when replacing, want 1", i)
	}
	if c.Len() != 3 {
		t.Fatalf("got %d keys, want 3", c.Len())
	}
	diff(t, 2.0, c.Evaluate(0.5))
}

func TestEmptySpeedCurve(t *testing.T) {
	var c SpeedCurve
	if got := c.Evaluate(0.3); got != 1 {
		t.Errorf("got %g, want 1", got)
	}
	c.SmoothTangents()
}

func TestSpeedCurveForPath(t *testing.T) {
	p := NewPath(Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0), Pt(4, 0, 0))
	c := SpeedCurveForPath(p, 1.5)
	keys := c.Keys()
	if len(keys) != 5 {
		t.Fatalf("got %d keys, want 5", len(keys))
	}
	for i, k := range keys {
		diff(t, float64(i)/4, k.Time)
		diff(t, 1.5, k.Value)
		diff(t, 0.0, k.InTangent)
		diff(t, 0.0, k.OutTangent)
	}
	for i := range 21 {
		diff(t, 1.5, c.Evaluate(float64(i)/20), cmpopts.EquateApprox(0, 1e-12))
	}

	if got := SpeedCurveForPath(NewPath(), 2).Evaluate(0.5); math.Abs(got-2) > 1e-12 {
		t.Errorf("got %g for an empty path, want 2", got)
	}
}

func TestSmoothTangents(t *testing.T) {
	c := NewSpeedCurve(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 1, Value: 1},
		Keyframe{Time: 2, Value: 4},
	)
	c.SmoothTangents()
	keys := c.Keys()
	diff(t, []float64{1, 2, 3}, []float64{keys[0].OutTangent, keys[1].OutTangent, keys[2].InTangent})
}

func TestSpeedFunc(t *testing.T) {
	var p SpeedProfile = SpeedFunc(func(u float64) float64 { return 2 * u })
	if got := p.Evaluate(0.25); got != 0.5 {
		t.Errorf("got %g, want 0.5", got)
	}
}
