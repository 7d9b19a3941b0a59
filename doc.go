// Package pathfollow provides authored 3D paths made of line and cubic Bézier
// segments, and a follower that moves along such a path at a controlled speed.
//
// # Paths
//
// A [Path] is an ordered list of [PathPoint] values. Each point has a
// position, two Bézier handles expressed as offsets from the position, and a
// [SegmentKind] selecting whether the segment to the next point is a straight
// [Line] or a [CubicBez]. Positions are in the path's local space; the path's
// transform maps them into world space, and all evaluation results are world
// positions.
//
// [Path.EvaluateAtParameter] evaluates the path at a parameter t ∈ [0, 1] in
// which every segment covers an equal share, regardless of its length. This is
// cheap but does not move at constant speed: short segments are traversed
// slowly and long ones quickly, and Bézier segments speed up and slow down
// along their length.
//
// # Arc length
//
// [Path.EvaluateUniform] instead takes a normalized arc length u ∈ [0, 1], so
// that evenly spaced u give evenly spaced positions. It relies on an
// [ArcTable]: the cumulative chord length of the path sampled at
// [Path.SamplesPerSegment] parameter steps per segment, divided by the total.
// Evaluating at u looks up the two samples bracketing u and interpolates the
// parameter between them.
//
// Building the table is the only expensive operation on a path. It is never
// done by evaluation. Paths with AutoRebuild set rebuild it in their mutating
// methods; otherwise the caller invokes [Path.RebuildArcTable] after a batch
// of edits.
//
// [Path.TotalLength] is the chord length measured while building the table.
// [Path.Arclen] computes the length analytically with Legendre-Gauss
// quadrature instead.
//
// # Following
//
// A [Follower] drives a normalized progress value across a path over a
// duration. The host calls [Follower.Advance] once per tick with the elapsed
// time; the follower scales it by its [SpeedProfile] evaluated at the current
// progress, so speed is authored per place rather than per moment, and
// updates its position. Followers can loop, run in reverse, start at an
// offset, and switch to a different path while keeping their progress.
//
// # Degenerate input
//
// Nothing in this package fails on geometric input that is merely invalid
// mid-edit. Paths with fewer than two points evaluate to the transform's
// origin, out-of-range parameters are clamped, zero-length paths leave an
// all-zero arc table, and durations are raised to [MinDuration].
package pathfollow
