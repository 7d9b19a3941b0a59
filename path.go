package pathfollow

import (
	"iter"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MinSamplesPerSegment is the lowest arc table resolution.
	MinSamplesPerSegment = 4
	// MaxSamplesPerSegment is the highest arc table resolution.
	MaxSamplesPerSegment = 40
	// DefaultSamplesPerSegment is the arc table resolution of new paths.
	DefaultSamplesPerSegment = 12
)

// endEpsilon guards the last segment against rounding in t*segCount.
const endEpsilon = 1e-9

// Path is a sequence of control points joined by line and cubic Bézier
// segments, together with a cached arc length table for uniform-speed
// evaluation.
//
// Point positions are in local space; Transform maps them to world space and
// every position a Path returns is in world space. The transform is assumed to
// be affine.
//
// The arc table is never rebuilt implicitly by evaluation. With AutoRebuild
// set, the mutating methods of Path rebuild it before returning. Otherwise, or
// after changing points obtained through [Path.Edit] with AutoRebuild unset,
// call [Path.RebuildArcTable] once the batch of edits is done.
//
// The zero value is an empty path with an identity transform. Paths are not
// safe for concurrent use.
type Path struct {
	// AutoRebuild makes the mutating methods rebuild the arc table.
	AutoRebuild bool

	points    []PathPoint
	samples   int
	transform mgl64.Mat4
	hasXform  bool

	table  ArcTable
	length float64
}

// NewPath returns a path through the given points, with an identity
// transform, the default sample count, AutoRebuild set and a built arc table.
// The points are copied.
func NewPath(points ...PathPoint) *Path {
	p := &Path{
		AutoRebuild: true,
		points:      slices.Clone(points),
		samples:     DefaultSamplesPerSegment,
	}
	p.RebuildArcTable()
	return p
}

// DefaultPath returns a straight path from (-1, 0, 0) to (1, 0, 0).
func DefaultPath() *Path {
	return NewPath(Pt(-1, 0, 0), Pt(1, 0, 0))
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// SegmentCount returns the number of segments, which is one less than the
// number of points, or zero for paths with fewer than two points.
func (p *Path) SegmentCount() int {
	return max(len(p.points)-1, 0)
}

// Point returns the i-th point. It panics if i is out of range.
func (p *Path) Point(i int) PathPoint {
	return p.points[i]
}

// Points returns a copy of the path's points.
func (p *Path) Points() []PathPoint {
	return slices.Clone(p.points)
}

// SetPoint replaces the i-th point. It reports false and changes nothing if i
// is out of range.
func (p *Path) SetPoint(i int, pt PathPoint) bool {
	if i < 0 || i >= len(p.points) {
		return false
	}
	p.points[i] = pt
	p.changed()
	return true
}

// SetPoints replaces all points. The points are copied.
func (p *Path) SetPoints(points ...PathPoint) {
	p.points = slices.Clone(points)
	p.changed()
}

// Append adds points to the end of the path.
func (p *Path) Append(points ...PathPoint) {
	p.points = append(p.points, points...)
	p.changed()
}

// AddPoint appends a line point one unit along +X from the current last
// point, or at the local origin if the path is empty, and returns it.
func (p *Path) AddPoint() PathPoint {
	var pt PathPoint
	if n := len(p.points); n > 0 {
		pt.Position = p.points[n-1].Position.Add(mgl64.Vec3{1, 0, 0})
	}
	p.Append(pt)
	return pt
}

// RemoveLast removes the last point as long as more than two points remain.
// It reports whether a point was removed.
func (p *Path) RemoveLast() bool {
	if len(p.points) <= 2 {
		return false
	}
	p.points = p.points[:len(p.points)-1]
	p.changed()
	return true
}

// Edit calls fn with the path's points for in-place modification. The slice
// must not be retained after fn returns.
func (p *Path) Edit(fn func(points []PathPoint)) {
	fn(p.points)
	p.changed()
}

// SamplesPerSegment returns the arc table resolution.
func (p *Path) SamplesPerSegment() int {
	if p.samples == 0 {
		return DefaultSamplesPerSegment
	}
	return p.samples
}

// SetSamplesPerSegment sets the arc table resolution, clamped to
// [MinSamplesPerSegment, MaxSamplesPerSegment].
func (p *Path) SetSamplesPerSegment(n int) {
	p.samples = min(max(n, MinSamplesPerSegment), MaxSamplesPerSegment)
	p.changed()
}

// Transform returns the local-to-world transform.
func (p *Path) Transform() mgl64.Mat4 {
	if !p.hasXform {
		return mgl64.Ident4()
	}
	return p.transform
}

// SetTransform sets the local-to-world transform.
func (p *Path) SetTransform(m mgl64.Mat4) {
	p.transform = m
	p.hasXform = true
	p.changed()
}

// Origin returns the world position of the local origin. Paths with fewer
// than two points evaluate to it.
func (p *Path) Origin() mgl64.Vec3 {
	return p.toWorld(mgl64.Vec3{})
}

func (p *Path) toWorld(v mgl64.Vec3) mgl64.Vec3 {
	if !p.hasXform {
		return v
	}
	return mgl64.TransformCoordinate(v, p.transform)
}

func (p *Path) changed() {
	if p.AutoRebuild {
		p.RebuildArcTable()
	}
}

// ArcTable returns a copy of the arc table as of the last rebuild.
func (p *Path) ArcTable() ArcTable {
	return p.table.clone()
}

// TotalLength returns the world-space length measured by the last rebuild of
// the arc table. It is the sum of the chords between samples and therefore
// slightly shorter than [Path.Arclen] on curved segments.
func (p *Path) TotalLength() float64 {
	return p.length
}

// RebuildArcTable samples the path at SamplesPerSegment evenly spaced
// parameters per segment and stores the normalized cumulative chord length.
//
// For a path of zero length the table is left unnormalized, all zeros. For
// paths with fewer than two points the table is cleared.
func (p *Path) RebuildArcTable() {
	if len(p.points) < 2 {
		p.table = nil
		p.length = 0
		return
	}

	segCount := len(p.points) - 1
	samples := p.SamplesPerSegment()
	n := segCount*samples + 1
	if cap(p.table) >= n {
		p.table = p.table[:n]
	} else {
		p.table = make(ArcTable, n)
	}

	var total float64
	prev := p.EvaluateAtParameter(0)
	p.table[0] = 0
	k := 1
	for s := range segCount {
		for i := 1; i <= samples; i++ {
			t := (float64(s) + float64(i)/float64(samples)) / float64(segCount)
			cur := p.EvaluateAtParameter(t)
			total += cur.Sub(prev).Len()
			p.table[k] = total
			k++
			prev = cur
		}
	}

	if total > 0 {
		for i := 1; i < n; i++ {
			p.table[i] /= total
		}
	}
	p.length = total
}

// locate maps the path parameter t to a segment index and a segment-local
// parameter. It reports end = true when t is at the end of the path.
func (p *Path) locate(t float64) (seg int, lt float64, end bool) {
	t = clamp01(t)
	segCount := len(p.points) - 1
	segF := t * float64(segCount)
	if segF >= float64(segCount)-endEpsilon {
		return segCount - 1, 1, true
	}
	seg = int(math.Floor(segF))
	return seg, segF - float64(seg), false
}

// EvaluateAtParameter returns the world position at path parameter t. Every
// segment covers an equal share of the parameter range, regardless of its
// length. t is clamped to [0, 1].
func (p *Path) EvaluateAtParameter(t float64) mgl64.Vec3 {
	if len(p.points) < 2 {
		return p.Origin()
	}
	seg, lt, end := p.locate(t)
	if end {
		return p.toWorld(p.points[len(p.points)-1].Position)
	}
	return p.toWorld(p.localSegment(seg).Eval(lt))
}

// EvaluateUniform returns the world position at normalized arc length u, so
// that evenly spaced values of u give evenly spaced positions along the path.
// u is clamped to [0, 1].
func (p *Path) EvaluateUniform(u float64) mgl64.Vec3 {
	return p.EvaluateAtParameter(p.Remap(u))
}

// Remap converts normalized arc length u into a path parameter using the arc
// table. Without a table, u is returned clamped.
func (p *Path) Remap(u float64) float64 {
	return p.table.Remap(u)
}

// TangentAtParameter returns the unit direction of travel in world space at
// path parameter t, or the zero vector where it is undefined.
func (p *Path) TangentAtParameter(t float64) mgl64.Vec3 {
	if len(p.points) < 2 {
		return mgl64.Vec3{}
	}
	seg, lt, _ := p.locate(t)
	return normalize(p.Segment(seg).Deriv(lt))
}

// TangentUniform returns the unit direction of travel at normalized arc
// length u.
func (p *Path) TangentUniform(u float64) mgl64.Vec3 {
	return p.TangentAtParameter(p.Remap(u))
}

func (p *Path) localSegment(i int) Segment {
	a := p.points[i]
	b := p.points[i+1]
	if a.Kind == LineSegment {
		return Line{a.Position, b.Position}.Seg()
	}
	return CubicBez{
		a.Position,
		a.Position.Add(a.HandleOut),
		b.Position.Add(b.HandleIn),
		b.Position,
	}.Seg()
}

// Segment returns the i-th segment in world space. Any kind other than
// LineSegment is treated as a Bézier. It panics if i is out of range.
func (p *Path) Segment(i int) Segment {
	seg := p.localSegment(i)
	if !p.hasXform {
		return seg
	}
	return seg.Transform(p.transform)
}

// Segments returns an iterator over the world-space segments.
func (p *Path) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i := range p.SegmentCount() {
			if !yield(i, p.Segment(i)) {
				return
			}
		}
	}
}

// Arclen returns the world-space length of the path computed analytically
// per segment, accurate to the given accuracy.
func (p *Path) Arclen(accuracy float64) float64 {
	n := p.SegmentCount()
	if n == 0 {
		return 0
	}
	var sum float64
	for _, seg := range p.Segments() {
		sum += seg.Arclen(accuracy / float64(n))
	}
	return sum
}
