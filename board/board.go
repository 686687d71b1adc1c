// Package board is the grid authority an interactive front-end drives: it
// owns the start and goal cells, applies wall edits and endpoint moves, and
// re-plans on request.
//
// Editing rules:
//
//   - The start and goal cells cannot be toggled into walls.
//   - Moving an endpoint onto the other endpoint (or onto itself) is refused.
//   - The cell an endpoint leaves becomes walkable.
//   - Any edit invalidates the last planned path.
//
// A Board is not safe for concurrent use; one caller drives edits and plans.
package board

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for board construction.
var (
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("board: grid is nil")
	// ErrSameEndpoints indicates start and goal are the same cell.
	ErrSameEndpoints = errors.New("board: start and goal must differ")
	// ErrTooSmall indicates a grid with fewer than two cells.
	ErrTooSmall = errors.New("board: grid needs at least two cells")
)

// Board couples a grid with start/goal endpoints and the last planned path.
type Board struct {
	grid  *gridgraph.Grid
	start gridgraph.Coord
	goal  gridgraph.Coord
	path  []gridgraph.Cell
	valid bool
}

// New builds a board with explicit endpoints.
// Returns ErrNilGrid, gridgraph.ErrOutOfBounds (wrapped) or ErrSameEndpoints.
func New(g *gridgraph.Grid, start, goal gridgraph.Coord) (*Board, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, c := range []gridgraph.Coord{start, goal} {
		if !g.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("board: endpoint: %w: (%d,%d)", gridgraph.ErrOutOfBounds, c.X, c.Y)
		}
	}
	if start == goal {
		return nil, ErrSameEndpoints
	}

	return &Board{grid: g, start: start, goal: goal}, nil
}

// NewRandom places start and goal on two distinct random cells of g.
func NewRandom(g *gridgraph.Grid, rng *rand.Rand) (*Board, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Width()*g.Height() < 2 {
		return nil, ErrTooSmall
	}
	start := gridgraph.Coord{X: rng.Intn(g.Width()), Y: rng.Intn(g.Height())}
	goal := start
	for goal == start {
		goal = gridgraph.Coord{X: rng.Intn(g.Width()), Y: rng.Intn(g.Height())}
	}

	return New(g, start, goal)
}

// Grid returns the underlying grid.
func (b *Board) Grid() *gridgraph.Grid { return b.grid }

// Start returns the start cell.
func (b *Board) Start() gridgraph.Coord { return b.start }

// Goal returns the goal cell.
func (b *Board) Goal() gridgraph.Coord { return b.goal }

// Path returns the last planned path and whether it is still current.
func (b *Board) Path() ([]gridgraph.Cell, bool) { return b.path, b.valid }

// IsEndpoint reports whether c is the start or the goal.
func (b *Board) IsEndpoint(c gridgraph.Coord) bool { return c == b.start || c == b.goal }

// ToggleWall flips the walkability of c. Endpoints are left untouched and
// reported as not changed.
func (b *Board) ToggleWall(c gridgraph.Coord) (bool, error) {
	if b.IsEndpoint(c) {
		return false, nil
	}
	cell, ok := b.grid.Cell(c.X, c.Y)
	if !ok {
		return false, fmt.Errorf("board: toggle: %w: (%d,%d)", gridgraph.ErrOutOfBounds, c.X, c.Y)
	}
	if err := b.grid.SetWalkable(c, !cell.Walkable); err != nil {
		return false, err
	}
	b.invalidate()

	return true, nil
}

// MoveStart relocates the start to c; the old start cell becomes walkable.
func (b *Board) MoveStart(c gridgraph.Coord) (bool, error) {
	return b.move(&b.start, c)
}

// MoveGoal relocates the goal to c; the old goal cell becomes walkable.
func (b *Board) MoveGoal(c gridgraph.Coord) (bool, error) {
	return b.move(&b.goal, c)
}

func (b *Board) move(endpoint *gridgraph.Coord, c gridgraph.Coord) (bool, error) {
	if !b.grid.InBounds(c.X, c.Y) {
		return false, fmt.Errorf("board: move: %w: (%d,%d)", gridgraph.ErrOutOfBounds, c.X, c.Y)
	}
	if b.IsEndpoint(c) {
		return false, nil
	}
	old := *endpoint
	*endpoint = c
	if err := b.grid.SetWalkable(old, true); err != nil {
		return false, err
	}
	b.invalidate()

	return true, nil
}

// Plan runs astar.FindPath from start to goal. On success the path is
// stored and marked current; on any error the stored path is cleared.
func (b *Board) Plan(opts ...astar.Option) (astar.Result, error) {
	res, err := astar.FindPath(b.grid, b.start, b.goal, opts...)
	if err != nil {
		b.invalidate()
		return res, err
	}
	b.path = res.Path
	b.valid = true

	return res, nil
}

func (b *Board) invalidate() {
	b.path = nil
	b.valid = false
}
