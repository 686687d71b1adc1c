// Package astar implements A* shortest-path search on a gridgraph.Grid.
//
// Every step costs 1, orthogonal or diagonal. The open set is a min-heap
// with decrease-key; ties on f are broken by lower h, then by insertion
// order, so repeated calls on the same grid state return identical paths.
//
// Complexity:
//
//   - Time:  O(V log V) where V = W×H; every cell is pushed at most once
//     and repositioned with heap.Fix on improvement.
//   - Space: O(V) for the per-call scratch table.
//
// Notes on implementation choices:
//
//   - Search bookkeeping (g, h, parent) lives in a scratch table allocated
//     per call, so no state leaks between calls and concurrent calls on one
//     grid do not interfere.
//   - The grid is read through a Snapshot taken once per call.
//   - Diagonal steps are not blocked by walls on both flanks.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// stepCost is the cost of every move, orthogonal or diagonal.
const stepCost = 1

// FindPath searches for a minimum-cost route from start to goal.
//
// Returns:
//
//   - Result with Path from start (exclusive) to goal (inclusive).
//     start == goal yields an empty, non-nil Path and a nil error.
//   - ErrNoPath when no walkable route exists. This is expected, not
//     exceptional; the caller may mutate the grid and try again.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be on g (ErrInvalidEndpoint).
//
// Neither endpoint has to be walkable: the search starts from start
// regardless, and only walkable cells are entered afterwards.
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !cfg.connSet {
		cfg.Conn = g.Connectivity()
	}
	if !g.InBounds(start.X, start.Y) {
		return Result{}, fmt.Errorf("%w: start (%d,%d)", ErrInvalidEndpoint, start.X, start.Y)
	}
	if !g.InBounds(goal.X, goal.Y) {
		return Result{}, fmt.Errorf("%w: goal (%d,%d)", ErrInvalidEndpoint, goal.X, goal.Y)
	}

	// 3) Fresh scratch state for this call only
	snap := g.Snapshot()
	nodes := make([]node, snap.Len())
	for i := range nodes {
		nodes[i].parent = -1
		nodes[i].heapIdx = -1
	}
	r := &runner{
		cfg:     cfg,
		snap:    snap,
		offsets: gridgraph.Offsets(cfg.Conn),
		goalC:   goal,
		start:   snap.Index(start.X, start.Y),
		goal:    snap.Index(goal.X, goal.Y),
		open:    openPQ{nodes: nodes, items: make([]int, 0, 64)},
	}

	return r.run()
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	cfg      Options
	snap     *gridgraph.Snapshot
	offsets  [][2]int
	goalC    gridgraph.Coord
	start    int
	goal     int
	open     openPQ
	seq      int
	expanded int
}

// run seeds the open set with start and loops until the goal is expanded
// or the open set is exhausted.
func (r *runner) run() (Result, error) {
	s := &r.open.nodes[r.start]
	s.g = 0
	s.h = r.cfg.Heuristic(r.snap.Coordinate(r.start), r.goalC)
	r.enqueue(r.start)

	for r.open.Len() > 0 {
		if err := r.cfg.Ctx.Err(); err != nil {
			return Result{Expanded: r.expanded}, err
		}

		// Lowest f (tie-break h, then seq) moves from open to closed.
		u := heap.Pop(&r.open).(int)
		n := &r.open.nodes[u]
		n.state = closed
		r.expanded++
		r.cfg.OnExpand(r.snap.Coordinate(u), n.g)

		if u == r.goal {
			return r.reconstruct(), nil
		}
		if r.cfg.MaxExpansions > 0 && r.expanded >= r.cfg.MaxExpansions {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w: %d", ErrExpansionLimit, r.expanded)
		}

		r.relax(u)
	}

	return Result{Expanded: r.expanded}, ErrNoPath
}

// relax examines each neighbor of u and records any improvement.
func (r *runner) relax(u int) {
	uc := r.snap.Coordinate(u)
	tentative := r.open.nodes[u].g + stepCost
	for _, d := range r.offsets {
		vx, vy := uc.X+d[0], uc.Y+d[1]
		if !r.snap.InBounds(vx, vy) {
			continue
		}
		v := r.snap.Index(vx, vy)
		if !r.snap.Walkable(v) {
			continue
		}
		nb := &r.open.nodes[v]
		switch nb.state {
		case closed:
			continue
		case unseen:
			nb.g = tentative
			nb.h = r.cfg.Heuristic(gridgraph.Coord{X: vx, Y: vy}, r.goalC)
			nb.parent = u
			r.enqueue(v)
		case open:
			// Only a strictly better g replaces the recorded parent.
			if tentative >= nb.g {
				continue
			}
			nb.g = tentative
			nb.h = r.cfg.Heuristic(gridgraph.Coord{X: vx, Y: vy}, r.goalC)
			nb.parent = u
			heap.Fix(&r.open, nb.heapIdx)
		}
	}
}

// enqueue inserts idx into the open set and stamps its insertion order.
func (r *runner) enqueue(idx int) {
	n := &r.open.nodes[idx]
	n.state = open
	n.seq = r.seq
	r.seq++
	heap.Push(&r.open, idx)
}

// reconstruct walks parent links from goal back to start (exclusive)
// and reverses them into start→goal order.
func (r *runner) reconstruct() Result {
	var rev []int
	for at := r.goal; at != r.start; at = r.open.nodes[at].parent {
		rev = append(rev, at)
	}

	res := Result{
		Path:     make([]gridgraph.Cell, len(rev)),
		Costs:    make([]int, len(rev)),
		Cost:     r.open.nodes[r.goal].g,
		Expanded: r.expanded,
	}
	for i, idx := range rev {
		j := len(rev) - 1 - i
		res.Path[j] = gridgraph.Cell{Coord: r.snap.Coordinate(idx), Walkable: r.snap.Walkable(idx)}
		res.Costs[j] = r.open.nodes[idx].g
	}

	return res
}
