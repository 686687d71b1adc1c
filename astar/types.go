// Package astar defines core types, configuration options and sentinel
// errors for A* search over a gridgraph.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal is not on the grid.
	ErrInvalidEndpoint = errors.New("astar: endpoint not on grid")

	// ErrNoPath indicates the open set emptied before the goal was expanded.
	// This is an expected outcome (e.g. the goal is walled off), not a fault.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates the search stopped at WithMaxExpansions.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b gridgraph.Coord) int

// Result holds the outcome of a successful search.
//
//   - Path: cells from start (exclusive) to goal (inclusive). Empty, not nil,
//     when start == goal.
//   - Costs: Costs[i] is the accumulated cost (g) of Path[i].
//   - Cost: total cost of the path; equals len(Path) with unit steps.
//   - Expanded: number of cells moved to the closed set.
type Result struct {
	Path     []gridgraph.Cell
	Costs    []int
	Cost     int
	Expanded int
}

// Coords returns the path as bare coordinates.
func (r Result) Coords() []gridgraph.Coord {
	out := make([]gridgraph.Coord, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Coord
	}
	return out
}

// Options configures a single FindPath call.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// Conn selects neighbor connectivity. When unset (connSet == false)
	// the grid's own connectivity is used.
	Conn    gridgraph.Connectivity
	connSet bool

	// Heuristic estimates remaining cost. Default is Manhattan.
	Heuristic Heuristic

	// OnExpand is called after a cell is moved to the closed set,
	// with the cell and its accumulated cost.
	OnExpand func(c gridgraph.Coord, g int)

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit
	// after that many expansions. 0 disables the limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when FindPath is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - grid connectivity
//   - Manhattan heuristic
//   - no-op OnExpand
//   - no expansion limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Conn:      gridgraph.Conn4,
		Heuristic: Manhattan,
		OnExpand:  func(gridgraph.Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity overrides the grid's connectivity for this search.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
		o.connSet = true
	}
}

// WithDiagonals selects Conn8 when allow is true, Conn4 otherwise.
func WithDiagonals(allow bool) Option {
	if allow {
		return WithConnectivity(gridgraph.Conn8)
	}
	return WithConnectivity(gridgraph.Conn4)
}

// WithHeuristic replaces the Manhattan heuristic. nil is a violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a callback run for every expanded cell.
func WithOnExpand(fn func(c gridgraph.Coord, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
