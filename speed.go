package pathfollow

import (
	"math"
	"slices"
)

// SpeedProfile maps a normalized position along a path to a speed
// multiplier. A [Follower] evaluates it at its current progress on every
// tick, so speed varies with place rather than with time.
type SpeedProfile interface {
	Evaluate(u float64) float64
}

// SpeedFunc adapts an ordinary function to a [SpeedProfile].
type SpeedFunc func(u float64) float64

func (f SpeedFunc) Evaluate(u float64) float64 { return f(u) }

// Keyframe is a control point of a [SpeedCurve]. The tangents are slopes
// (value per unit of time) on either side of the key. An infinite tangent
// holds the value of the left key until the right key is reached.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// SpeedCurve is a piecewise cubic Hermite curve through keyframes sorted by
// time. Outside the keyframes' time range it holds the value of the nearest
// key. An empty curve evaluates to 1.
type SpeedCurve struct {
	keys []Keyframe
}

var _ SpeedProfile = (*SpeedCurve)(nil)

// NewSpeedCurve returns a curve through the given keys. The keys are copied
// and sorted by time.
func NewSpeedCurve(keys ...Keyframe) *SpeedCurve {
	c := &SpeedCurve{keys: slices.Clone(keys)}
	slices.SortStableFunc(c.keys, func(a, b Keyframe) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})
	return c
}

// LinearSpeedCurve returns a straight curve from (t0, v0) to (t1, v1).
func LinearSpeedCurve(t0, v0, t1, v1 float64) *SpeedCurve {
	var slope float64
	if t1 != t0 {
		slope = (v1 - v0) / (t1 - t0)
	}
	return NewSpeedCurve(
		Keyframe{Time: t0, Value: v0, InTangent: slope, OutTangent: slope},
		Keyframe{Time: t1, Value: v1, InTangent: slope, OutTangent: slope},
	)
}

// ConstantSpeedCurve returns a flat curve at v over [0, 1].
func ConstantSpeedCurve(v float64) *SpeedCurve {
	return LinearSpeedCurve(0, v, 1, v)
}

// SpeedCurveForPath returns a curve with one key per point of p, placed at
// the parameter where that point is reached (i / segment count), all at
// value, with smoothed tangents.
func SpeedCurveForPath(p *Path, value float64) *SpeedCurve {
	n := p.Len()
	if n < 2 {
		return ConstantSpeedCurve(value)
	}
	segCount := float64(n - 1)
	keys := make([]Keyframe, n)
	for i := range keys {
		keys[i] = Keyframe{Time: float64(i) / segCount, Value: value}
	}
	c := NewSpeedCurve(keys...)
	c.SmoothTangents()
	return c
}

// Len returns the number of keys.
func (c *SpeedCurve) Len() int { return len(c.keys) }

// Keys returns a copy of the keys in time order.
func (c *SpeedCurve) Keys() []Keyframe { return slices.Clone(c.keys) }

// AddKey inserts k in time order and returns its index. A key already at
// k.Time is replaced.
func (c *SpeedCurve) AddKey(k Keyframe) int {
	i, found := slices.BinarySearchFunc(c.keys, k.Time, func(e Keyframe, t float64) int {
		switch {
		case e.Time < t:
			return -1
		case e.Time > t:
			return 1
		default:
			return 0
		}
	})
	if found {
		c.keys[i] = k
		return i
	}
	c.keys = slices.Insert(c.keys, i, k)
	return i
}

// SmoothTangents sets every key's tangents to the slope between its
// neighbours. The first and last key use the slope towards their only
// neighbour.
func (c *SpeedCurve) SmoothTangents() {
	n := len(c.keys)
	if n < 2 {
		for i := range c.keys {
			c.keys[i].InTangent, c.keys[i].OutTangent = 0, 0
		}
		return
	}
	slope := func(a, b Keyframe) float64 {
		if b.Time == a.Time {
			return 0
		}
		return (b.Value - a.Value) / (b.Time - a.Time)
	}
	for i := range c.keys {
		var m float64
		switch i {
		case 0:
			m = slope(c.keys[0], c.keys[1])
		case n - 1:
			m = slope(c.keys[n-2], c.keys[n-1])
		default:
			m = slope(c.keys[i-1], c.keys[i+1])
		}
		c.keys[i].InTangent, c.keys[i].OutTangent = m, m
	}
}

// Evaluate returns the curve's value at x.
func (c *SpeedCurve) Evaluate(x float64) float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return 1
	case x <= c.keys[0].Time:
		return c.keys[0].Value
	case x >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}

	// first key strictly after x; 1 <= i <= n-1 after the checks above
	i, _ := slices.BinarySearchFunc(c.keys, x, func(e Keyframe, t float64) int {
		if e.Time <= t {
			return -1
		}
		return 1
	})
	k0, k1 := c.keys[i-1], c.keys[i]
	return hermite(k0, k1, x)
}

func hermite(k0, k1 Keyframe, x float64) float64 {
	if math.IsInf(k0.OutTangent, 0) || math.IsInf(k1.InTangent, 0) {
		return k0.Value
	}
	dt := k1.Time - k0.Time
	if dt == 0 {
		return k1.Value
	}
	t := (x - k0.Time) / dt
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}
