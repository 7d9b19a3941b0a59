package pathfollow

import "github.com/go-gl/mathgl/mgl64"

// Line represents a straight 3D line segment.
type Line struct {
	// The line's start point.
	P0 mgl64.Vec3
	// The line's end point.
	P1 mgl64.Vec3
}

var _ ParametricCurve = Line{}
var _ Arclener = Line{}
var _ Tangenter = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Len()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) Eval(t float64) mgl64.Vec3 {
	return lerp(l.P0, l.P1, t)
}

func (l Line) Deriv(t float64) mgl64.Vec3 {
	return l.P1.Sub(l.P0)
}

func (l Line) Transform(m mgl64.Mat4) Line {
	return Line{
		P0: mgl64.TransformCoordinate(l.P0, m),
		P1: mgl64.TransformCoordinate(l.P1, m),
	}
}

func (l Line) Start() mgl64.Vec3 { return l.P0 }
func (l Line) End() mgl64.Vec3   { return l.P1 }

func (l Line) Seg() Segment {
	return Segment{Kind: LineSegment, P0: l.P0, P1: l.P1}
}
