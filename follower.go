package pathfollow

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MinDuration is the shortest traversal time a [Follower] accepts.
	MinDuration = 0.01
	// DefaultDuration is the traversal time of new followers.
	DefaultDuration = 5.0
)

// endTolerance decides when a non-looping follower has reached its bound.
const endTolerance = 1e-6

// State is the motion state of a [Follower].
type State uint8

const (
	Stopped State = iota
	Moving
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Moving:
		return "Moving"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Positioner receives the positions computed by a [Follower], typically to
// place an object in a scene.
type Positioner interface {
	SetPosition(pos mgl64.Vec3)
}

// Follower moves along a [Path] over a fixed duration, one [Follower.Advance]
// per tick.
//
// Progress is the normalized value wrap(offset + elapsed/duration). With
// Uniform set, progress is arc length and the follower covers equal distances
// in equal times; otherwise it is the path parameter and every segment takes
// the same time. Speed scales the rate at which elapsed time accumulates,
// evaluated at the current progress.
//
// A Follower never modifies its path. It is not safe for concurrent use.
type Follower struct {
	// Loop wraps progress around at the end of the path instead of stopping.
	Loop bool
	// Reverse runs the follower from the end of the path to the start.
	Reverse bool
	// Uniform selects arc length rather than path parameter for progress.
	Uniform bool
	// Speed is the speed multiplier profile. A nil Speed means a constant 1.
	Speed SpeedProfile
	// Target, if set, receives every recomputed position.
	Target Positioner

	path     *Path
	duration float64
	offset   float64
	elapsed  float64
	state    State
	position mgl64.Vec3
}

// NewFollower returns a stopped follower on path, looping forward at uniform
// speed over DefaultDuration with a linear speed curve of constant 1.
func NewFollower(path *Path) *Follower {
	return &Follower{
		Loop:     true,
		Uniform:  true,
		Speed:    LinearSpeedCurve(0, 1, 1, 1),
		path:     path,
		duration: DefaultDuration,
	}
}

// Path returns the path being followed.
func (f *Follower) Path() *Path { return f.path }

// SetPath sets the path without preserving progress or changing state. Use
// [Follower.SwitchPath] to swap paths during motion.
func (f *Follower) SetPath(p *Path) { f.path = p }

// Duration returns the time it takes to traverse the path at speed 1.
func (f *Follower) Duration() float64 {
	if f.duration <= 0 {
		return DefaultDuration
	}
	return f.duration
}

// SetDuration sets the traversal time. Values below MinDuration and values
// that are not finite become MinDuration. Elapsed time is clamped into the new
// range.
func (f *Follower) SetDuration(d float64) {
	if !(d >= MinDuration) || math.IsInf(d, 1) {
		d = MinDuration
	}
	f.duration = d
	f.elapsed = mgl64.Clamp(f.elapsed, 0, d)
}

// Offset returns the phase shift added to progress.
func (f *Follower) Offset() float64 { return f.offset }

// SetOffset sets the phase shift, wrapped into [0, 1).
func (f *Follower) SetOffset(o float64) {
	f.offset = wrap01(o)
}

// Elapsed returns the accumulated time, in [0, Duration].
func (f *Follower) Elapsed() float64 { return f.elapsed }

// Progress returns the normalized position along the path,
// offset + elapsed/duration wrapped into [0, 1). It drives the position and
// the speed profile.
//
// A whole traversal wraps to 0, so a follower that finished a forward run,
// or starts a reverse one, sits at the start of the path.
func (f *Follower) Progress() float64 {
	return wrap01(f.offset + f.elapsed/f.Duration())
}

// Completion returns the fraction of the traversal time used up, in [0, 1].
// Unlike Progress it ignores the offset and does not wrap: it reads 1 once a
// forward run has finished.
func (f *Follower) Completion() float64 {
	return clamp01(f.elapsed / f.Duration())
}

// State returns whether the follower is moving.
func (f *Follower) State() State { return f.state }

// IsMoving reports whether the follower is moving.
func (f *Follower) IsMoving() bool { return f.state == Moving }

// CurrentPosition returns the last computed position.
func (f *Follower) CurrentPosition() mgl64.Vec3 { return f.position }

// CurrentDirection returns the unit direction of travel at the current
// progress, accounting for Reverse. It is the zero vector without a path.
func (f *Follower) CurrentDirection() mgl64.Vec3 {
	if f.path == nil {
		return mgl64.Vec3{}
	}
	u := f.Progress()
	var dir mgl64.Vec3
	if f.Uniform {
		dir = f.path.TangentUniform(u)
	} else {
		dir = f.path.TangentAtParameter(u)
	}
	if f.Reverse {
		dir = dir.Mul(-1)
	}
	return dir
}

// Start starts the follower from the beginning of its path, or from the end
// when Reverse is set, keeping the current offset. The position is updated
// immediately.
func (f *Follower) Start() {
	f.StartAt(-1)
}

// StartAt is like Start but first sets the offset to startOffset wrapped into
// [0, 1). A negative startOffset keeps the current offset.
func (f *Follower) StartAt(startOffset float64) {
	if startOffset >= 0 {
		f.SetOffset(startOffset)
	}
	if f.Reverse {
		f.elapsed = f.Duration()
	} else {
		f.elapsed = 0
	}
	f.state = Moving
	f.updatePosition()
}

// Stop stops the follower. The position keeps its last value.
func (f *Follower) Stop() {
	f.state = Stopped
}

// SwitchPath moves the follower to p, keeping its normalized progress rather
// than its position: the offset is folded into elapsed time and reset to 0.
// The follower starts moving and its position is updated immediately. A nil p
// or the current path is ignored.
func (f *Follower) SwitchPath(p *Path) {
	if p == nil || p == f.path {
		return
	}
	uNow := f.Progress()
	f.path = p
	f.offset = 0
	f.elapsed = uNow * f.Duration()
	f.state = Moving
	f.updatePosition()
}

// Advance moves the follower forward by dt seconds of time scaled by the
// speed profile at the current progress. It does nothing unless the follower
// is moving and has a path.
//
// A looping follower wraps elapsed time into [0, Duration). Otherwise elapsed
// time is clamped to [0, Duration] and the follower stops when it reaches the
// end it is heading for. A step that is not finite, from dt or the speed
// profile, is ignored.
func (f *Follower) Advance(dt float64) {
	if f.state != Moving || f.path == nil {
		return
	}
	d := f.Duration()

	speed := 1.0
	if f.Speed != nil {
		speed = f.Speed.Evaluate(f.Progress())
	}
	dir := 1.0
	if f.Reverse {
		dir = -1
	}
	step := dir * dt * speed
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return
	}
	f.elapsed += step

	if f.Loop {
		f.elapsed = repeat(f.elapsed, d)
		if f.elapsed == d {
			f.elapsed = 0
		}
	} else {
		f.elapsed = mgl64.Clamp(f.elapsed, 0, d)
		bound := d
		if f.Reverse {
			bound = 0
		}
		if math.Abs(f.elapsed-bound) <= endTolerance {
			f.elapsed = bound
			f.state = Stopped
		}
	}

	f.updatePosition()
}

func (f *Follower) updatePosition() {
	if f.path == nil {
		return
	}
	u := f.Progress()
	if f.Uniform {
		f.position = f.path.EvaluateUniform(u)
	} else {
		f.position = f.path.EvaluateAtParameter(u)
	}
	if f.Target != nil {
		f.Target.SetPosition(f.position)
	}
}

// wrap01 wraps f into [0, 1). Non-finite values map to 0.
func wrap01(f float64) float64 {
	r := repeat(f, 1)
	if !(r < 1) {
		return 0
	}
	return r
}
