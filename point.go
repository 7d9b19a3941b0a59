package pathfollow

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// SegmentKind selects the shape of the segment leaving a [PathPoint].
type SegmentKind uint8

const (
	// A straight line to the next point.
	LineSegment SegmentKind = iota
	// A cubic Bézier to the next point, shaped by this point's HandleOut and
	// the next point's HandleIn.
	BezierSegment
)

func (k SegmentKind) String() string {
	switch k {
	case LineSegment:
		return "Line"
	case BezierSegment:
		return "Bezier"
	default:
		return fmt.Sprintf("SegmentKind(%d)", uint8(k))
	}
}

// PathPoint is a single control point of a [Path].
//
// All vectors are in the path's local space. The handles are offsets relative
// to Position and only matter for Bézier segments: HandleOut for the segment
// leaving this point, HandleIn for the segment arriving at it. The last point
// of a path has no outgoing segment, so its Kind and HandleOut are unused.
type PathPoint struct {
	Position  mgl64.Vec3
	HandleIn  mgl64.Vec3
	HandleOut mgl64.Vec3
	Kind      SegmentKind
}

// Pt returns a point at (x, y, z) starting a line segment.
func Pt(x, y, z float64) PathPoint {
	return PathPoint{Position: mgl64.Vec3{x, y, z}}
}

// WithHandles returns a copy of p starting a Bézier segment with the given
// handles.
func (p PathPoint) WithHandles(in, out mgl64.Vec3) PathPoint {
	p.HandleIn = in
	p.HandleOut = out
	p.Kind = BezierSegment
	return p
}

func (p PathPoint) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", p.Kind, p.Position[0], p.Position[1], p.Position[2])
}

// Segment represents a segment of a [Path]. This type acts as a sort of tagged
// union of [Line] and [CubicBez], selected by Kind. Line segments only use P0
// and P1.
type Segment struct {
	Kind SegmentKind
	P0   mgl64.Vec3
	P1   mgl64.Vec3
	P2   mgl64.Vec3
	P3   mgl64.Vec3
}

// Line returns the segment as a line. It is only meaningful for segments of
// kind LineSegment.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic returns the segment as a cubic Bézier. It is only meaningful for
// segments of kind BezierSegment.
func (seg Segment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func (seg Segment) Eval(t float64) mgl64.Vec3 {
	switch seg.Kind {
	case LineSegment:
		return seg.Line().Eval(t)
	case BezierSegment:
		return seg.Cubic().Eval(t)
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.Kind))
	}
}

func (seg Segment) Deriv(t float64) mgl64.Vec3 {
	switch seg.Kind {
	case LineSegment:
		return seg.Line().Deriv(t)
	case BezierSegment:
		return seg.Cubic().Deriv(t)
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.Kind))
	}
}

func (seg Segment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineSegment:
		return seg.Line().Arclen(accuracy)
	case BezierSegment:
		return seg.Cubic().Arclen(accuracy)
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.Kind))
	}
}

func (seg Segment) Start() mgl64.Vec3 {
	return seg.P0
}

func (seg Segment) End() mgl64.Vec3 {
	switch seg.Kind {
	case LineSegment:
		return seg.P1
	case BezierSegment:
		return seg.P3
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.Kind))
	}
}

// Transform applies the affine transformation m to the segment's control
// points.
func (seg Segment) Transform(m mgl64.Mat4) Segment {
	switch seg.Kind {
	case LineSegment:
		return seg.Line().Transform(m).Seg()
	case BezierSegment:
		return seg.Cubic().Transform(m).Seg()
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.Kind))
	}
}
