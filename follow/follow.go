// Package follow turns a planned path into a queue of world-space
// waypoints and advances an agent along it.
//
// The follower does not own the agent's position: callers pass the current
// position in and get the next one back, so any motion system can drive it.
// A waypoint counts as reached once the position is within the arrival
// tolerance; after the last waypoint the follower reports completion.
package follow

import (
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Defaults for a unit-cell grid.
const (
	DefaultSpeed     = 3.0 // world units per second
	DefaultTolerance = 0.1 // world units
)

// Options configures a Follower.
type Options struct {
	// Speed is the movement rate in world units per second. Must be > 0.
	Speed float64
	// Tolerance is the arrival radius around each waypoint. Must be > 0.
	Tolerance float64
}

// Option configures a Follower via functional arguments.
type Option func(*Options)

// DefaultOptions returns Speed=DefaultSpeed and Tolerance=DefaultTolerance.
func DefaultOptions() Options {
	return Options{Speed: DefaultSpeed, Tolerance: DefaultTolerance}
}

// WithSpeed sets the movement rate. Non-positive values are ignored.
func WithSpeed(unitsPerSecond float64) Option {
	return func(o *Options) {
		if unitsPerSecond > 0 {
			o.Speed = unitsPerSecond
		}
	}
}

// WithTolerance sets the arrival radius. Non-positive values are ignored.
func WithTolerance(distance float64) Option {
	return func(o *Options) {
		if distance > 0 {
			o.Tolerance = distance
		}
	}
}

// Follower walks a fixed list of waypoints in order.
// It is not safe for concurrent use.
type Follower struct {
	waypoints []gridgraph.Point
	index     int
	opts      Options
}

// NewFollower maps every cell of path to its world position on g.
// An empty path yields a follower that is already done.
func NewFollower(g *gridgraph.Grid, path []gridgraph.Cell, opts ...Option) *Follower {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	wp := make([]gridgraph.Point, len(path))
	for i, c := range path {
		wp[i] = g.CoordinateToWorld(c.Coord)
	}

	return &Follower{waypoints: wp, opts: cfg}
}

// Len returns the number of waypoints.
func (f *Follower) Len() int { return len(f.waypoints) }

// Index returns the index of the current target waypoint.
// It equals Len() once the path is complete.
func (f *Follower) Index() int { return f.index }

// Done reports whether every waypoint has been reached.
func (f *Follower) Done() bool { return f.index >= len(f.waypoints) }

// Waypoints returns a copy of the waypoint list.
func (f *Follower) Waypoints() []gridgraph.Point {
	out := make([]gridgraph.Point, len(f.waypoints))
	copy(out, f.waypoints)
	return out
}

// Target returns the current waypoint. ok is false when done.
func (f *Follower) Target() (p gridgraph.Point, ok bool) {
	if f.Done() {
		return gridgraph.Point{}, false
	}
	return f.waypoints[f.index], true
}

// Arrive advances to the next waypoint when pos is within tolerance of the
// current one, and reports whether it advanced.
func (f *Follower) Arrive(pos gridgraph.Point) bool {
	target, ok := f.Target()
	if !ok || pos.Distance(target) >= f.opts.Tolerance {
		return false
	}
	f.index++

	return true
}

// Step moves pos towards the current waypoint by Speed*dt without
// overshooting, then applies Arrive. It returns the new position and
// whether the whole path is complete.
func (f *Follower) Step(pos gridgraph.Point, dt time.Duration) (gridgraph.Point, bool) {
	target, ok := f.Target()
	if !ok {
		return pos, true
	}
	next := MoveTowards(pos, target, f.opts.Speed*dt.Seconds())
	f.Arrive(next)

	return next, f.Done()
}

// Reset restarts the follower at the first waypoint.
func (f *Follower) Reset() { f.index = 0 }

// MoveTowards returns a point moved from `from` towards `to` by at most
// maxDelta, landing exactly on `to` when it is closer than that.
func MoveTowards(from, to gridgraph.Point, maxDelta float64) gridgraph.Point {
	d := from.Distance(to)
	if d <= maxDelta || d == 0 {
		return to
	}
	k := maxDelta / d

	return gridgraph.Point{X: from.X + (to.X-from.X)*k, Y: from.Y + (to.Y-from.Y)*k}
}
