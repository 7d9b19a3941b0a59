package main

import (
	"math"

	"github.com/curvekit/pathfollow"
	"github.com/go-gl/mathgl/mgl64"
)

// circleHandle is the handle length, relative to the radius, that makes four
// cubic Béziers approximate a circle.
const circleHandle = 0.5522847498

type namedPath struct {
	name string
	path *pathfollow.Path
}

// presetPaths returns the demo paths: a wavy ring of Béziers, a staircase of
// lines and a Bézier helix.
func presetPaths(samples int) []namedPath {
	paths := []namedPath{
		{"ring", ring(3)},
		{"stairs", stairs(4)},
		{"helix", helix(2, 3, 0.8)},
	}
	for _, np := range paths {
		np.path.SetSamplesPerSegment(samples)
	}
	return paths
}

func ring(r float64) *pathfollow.Path {
	k := r * circleHandle
	var pts []pathfollow.PathPoint
	for i := range 5 {
		a := float64(i) * math.Pi / 2
		pos := mgl64.Vec3{r * math.Cos(a), 0, r * math.Sin(a)}
		if i%2 == 1 {
			pos[1] = 1
		}
		tangent := mgl64.Vec3{-math.Sin(a), 0, math.Cos(a)}.Mul(k)
		pts = append(pts, pathfollow.PathPoint{Position: pos}.WithHandles(tangent.Mul(-1), tangent))
	}
	return pathfollow.NewPath(pts...)
}

func stairs(size float64) *pathfollow.Path {
	h := size / 2
	return pathfollow.NewPath(
		pathfollow.Pt(-h, -1, -h),
		pathfollow.Pt(h, -1, -h),
		pathfollow.Pt(h, 0, -h),
		pathfollow.Pt(h, 0, h),
		pathfollow.Pt(-h, 1, h),
		pathfollow.Pt(-h, 1, -h),
	)
}

func helix(r, height, turns float64) *pathfollow.Path {
	const perTurn = 4
	n := int(math.Ceil(turns*perTurn)) + 1
	k := r * circleHandle
	rise := height / float64(n-1)
	var pts []pathfollow.PathPoint
	for i := range n {
		a := float64(i) * math.Pi / 2
		pos := mgl64.Vec3{r * math.Cos(a), -height/2 + float64(i)*rise, r * math.Sin(a)}
		tangent := mgl64.Vec3{-math.Sin(a) * k, rise / 3, math.Cos(a) * k}
		pts = append(pts, pathfollow.PathPoint{Position: pos}.WithHandles(tangent.Mul(-1), tangent))
	}
	p := pathfollow.NewPath(pts...)
	p.SetTransform(mgl64.HomogRotate3DX(0.2))
	return p
}

// Scene is the viewer's model: the paths and the followers moving on them.
// All followers share the active path.
type Scene struct {
	Paths     []namedPath
	Active    int
	Followers []*pathfollow.Follower
	Trails    []*Trail
}

func NewScene(cfg Config) *Scene {
	s := &Scene{Paths: presetPaths(cfg.SamplesPerSegment)}
	offsets := []float64{0, 0.5}
	for _, off := range offsets {
		f := pathfollow.NewFollower(s.Paths[0].path)
		cfg.Apply(f)
		f.SetOffset(off)
		tr := NewTrail(24)
		f.Target = tr
		s.Followers = append(s.Followers, f)
		s.Trails = append(s.Trails, tr)
	}
	return s
}

// Lead is the follower whose state the viewer reports.
func (s *Scene) Lead() *pathfollow.Follower { return s.Followers[0] }

func (s *Scene) ActivePath() namedPath { return s.Paths[s.Active] }

func (s *Scene) Start() {
	for _, f := range s.Followers {
		f.Start()
	}
}

func (s *Scene) Stop() {
	for _, f := range s.Followers {
		f.Stop()
	}
}

func (s *Scene) Advance(dt float64) {
	for _, f := range s.Followers {
		f.Advance(dt)
	}
}

// Next switches every follower to the next path, keeping progress.
func (s *Scene) Next() {
	s.Active = (s.Active + 1) % len(s.Paths)
	p := s.Paths[s.Active].path
	for i, f := range s.Followers {
		s.Trails[i].Reset()
		f.SwitchPath(p)
	}
}

// SetSamples changes the arc table resolution of every path and returns the
// value the paths settled on.
func (s *Scene) SetSamples(n int) int {
	for _, np := range s.Paths {
		np.path.SetSamplesPerSegment(n)
	}
	return s.ActivePath().path.SamplesPerSegment()
}

// Trail records the most recent positions of a follower.
type Trail struct {
	points []mgl64.Vec3
	size   int
}

var _ pathfollow.Positioner = (*Trail)(nil)

func NewTrail(size int) *Trail {
	return &Trail{size: size}
}

// SetPosition records pos, dropping the oldest position when the trail is
// full. A trail of size zero records nothing.
func (t *Trail) SetPosition(pos mgl64.Vec3) {
	if t.size <= 0 {
		return
	}
	if len(t.points) >= t.size {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, pos)
}

// Points returns the recorded positions, oldest first.
func (t *Trail) Points() []mgl64.Vec3 { return t.points }

func (t *Trail) Reset() { t.points = t.points[:0] }

// Camera orbits the origin.
type Camera struct {
	Distance float64
	Height   float64
	Angle    float64
}

func (c Camera) Eye() mgl64.Vec3 {
	return mgl64.Vec3{c.Distance * math.Cos(c.Angle), c.Height, c.Distance * math.Sin(c.Angle)}
}

// Project maps a world position to a terminal cell in a w×h grid. It reports
// false for positions outside the view volume.
func (c Camera) Project(p mgl64.Vec3, w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	view := mgl64.LookAtV(c.Eye(), mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	// terminal cells are about twice as tall as they are wide
	aspect := float64(w) / (2 * float64(h))
	proj := mgl64.Perspective(mgl64.DegToRad(45), aspect, 0.1, 100)
	win := mgl64.Project(p, view, proj, 0, 0, w, h)
	if win[2] < 0 || win[2] > 1 {
		return 0, 0, false
	}
	x = int(math.Floor(win[0]))
	y = h - 1 - int(math.Floor(win[1]))
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
