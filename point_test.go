package pathfollow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPathPointWithHandles(t *testing.T) {
	p := Pt(1, 2, 3)
	if p.Kind != LineSegment {
		t.Errorf("Pt starts a %s segment", p.Kind)
	}
	b := p.WithHandles(v(-1, 0, 0), v(1, 0, 0))
	want := PathPoint{
		Position:  v(1, 2, 3),
		HandleIn:  v(-1, 0, 0),
		HandleOut: v(1, 0, 0),
		Kind:      BezierSegment,
	}
	diff(t, want, b)
	// the receiver is unchanged
	diff(t, LineSegment, p.Kind)

	diff(t, "Line(1, 2, 3)", p.String())
	diff(t, "Bezier(1, 2, 3)", b.String())
}

func TestSegmentDispatch(t *testing.T) {
	line := Line{v(0, 0, 0), v(2, 0, 0)}.Seg()
	cubic := CubicBez{v(0, 0, 0), v(0, 1, 0), v(2, 1, 0), v(2, 0, 0)}.Seg()

	diff(t, v(1, 0, 0), line.Eval(0.5), vecComparer)
	diff(t, v(2, 0, 0), line.End())
	diff(t, 2.0, line.Arclen(DefaultAccuracy))

	diff(t, v(1, 0.75, 0), cubic.Eval(0.5), vecComparer)
	diff(t, v(2, 0, 0), cubic.End())
	diff(t, v(0, 3, 0), cubic.Deriv(0), vecComparer)
	if l := cubic.Arclen(DefaultAccuracy); l <= 2 || l >= 4 {
		t.Errorf("got arclen %g, want between the chord 2 and the polygon 4", l)
	}
}

func TestSegmentTransform(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3)
	line := Line{v(0, 0, 0), v(2, 0, 0)}.Seg().Transform(m)
	diff(t, Segment{Kind: LineSegment, P0: v(1, 2, 3), P1: v(3, 2, 3)}, line, vecComparer)

	cubic := CubicBez{v(0, 0, 0), v(0, 1, 0), v(2, 1, 0), v(2, 0, 0)}.Seg().Transform(m)
	diff(t, v(1, 2, 3), cubic.Start(), vecComparer)
	diff(t, v(3, 2, 3), cubic.End(), vecComparer)
	diff(t, v(1, 3, 3), cubic.P1, vecComparer)
}

func TestSegmentInvalidKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	Segment{Kind: SegmentKind(7)}.Eval(0.5)
}
