// Package gridgraph provides a mutable walkability grid for navigation:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked cell lookup and walkability mutation
//   - Grid ↔ world coordinate mapping
//   - Identification of connected walkable regions and BFS distance fields
//   - The fewest walls to open when a goal is cut off
//
// Cells that are not walkable are never entered by searches; the grid itself
// does not decide why a cell is blocked.
package gridgraph

import (
	"fmt"
	"strings"
)

// Fixed neighbor orders. Callers must not modify the returned slices.
var (
	offsets4 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	offsets8 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

// wallRune marks an unwalkable cell in text layouts.
const wallRune = '#'

// NewGrid constructs a width×height grid with every cell walkable.
// Returns ErrEmptyGrid if either dimension is not positive,
// ErrBadCellSize if the configured cell size is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if !(cfg.CellSize > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadCellSize, cfg.CellSize)
	}
	walkable := make([]bool, width*height)
	for i := range walkable {
		walkable[i] = true
	}

	return &Grid{
		width:    width,
		height:   height,
		cellSize: cfg.CellSize,
		conn:     cfg.Conn,
		walkable: walkable,
	}, nil
}

// FromLayout builds a grid from text rows, top row first (y = 0).
// The rune '#' marks an unwalkable cell; every other rune is walkable.
// Returns ErrEmptyGrid for no rows or an empty first row,
// ErrNonRectangular if any row length (in runes) differs.
func FromLayout(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range rows {
		if n := len([]rune(row)); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}
	g, err := NewGrid(w, len(rows), opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if r == wallRune {
				g.walkable[g.index(x, y)] = false
			}
			x++
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellSize returns the world-space edge length of one cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Connectivity returns the grid's default connectivity.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at (x,y). ok is false for out-of-bounds coordinates.
// Complexity: O(1).
func (g *Grid) Cell(x, y int) (c Cell, ok bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	g.mu.RLock()
	w := g.walkable[g.index(x, y)]
	g.mu.RUnlock()

	return Cell{Coord: Coord{X: x, Y: y}, Walkable: w}, true
}

// Walkable reports whether c is on the grid and walkable.
func (g *Grid) Walkable(c Coord) bool {
	cell, ok := g.Cell(c.X, c.Y)
	return ok && cell.Walkable
}

// SetWalkable changes the walkability of the cell at c.
// Searches already running keep their snapshot; later searches see the change.
// Returns ErrOutOfBounds if c is not on the grid.
func (g *Grid) SetWalkable(c Coord, walkable bool) error {
	if !g.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, c.X, c.Y, g.width, g.height)
	}
	g.mu.Lock()
	g.walkable[g.index(c.X, c.Y)] = walkable
	g.mu.Unlock()

	return nil
}

// Neighbors returns the in-bounds neighbors of c in the fixed order given by
// Offsets(conn). Walkability is reported, not filtered: callers decide.
// Complexity: O(d).
func (g *Grid) Neighbors(c Coord, conn Connectivity) []Cell {
	offsets := Offsets(conn)
	out := make([]Cell, 0, len(offsets))
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, d := range offsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		out = append(out, Cell{Coord: Coord{X: nx, Y: ny}, Walkable: g.walkable[g.index(nx, ny)]})
	}

	return out
}

// Offsets returns the neighbor offsets for conn.
// Should be used in all adjacency traversals so every caller agrees on order.
// The returned slice is shared and must not be modified.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Snapshot copies the current walkability under the read lock.
// Complexity: O(W×H).
func (g *Grid) Snapshot() *Snapshot {
	g.mu.RLock()
	w := make([]bool, len(g.walkable))
	copy(w, g.walkable)
	g.mu.RUnlock()

	return &Snapshot{Width: g.width, Height: g.height, walkable: w}
}

// String renders the grid as rows of '#' (blocked) and '.' (walkable).
func (g *Grid) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.walkable[g.index(x, y)] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(wallRune)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Render is String with an overlay: 'S' at start, 'G' at goal and '*' on
// every path cell in between. Off-grid coordinates are ignored.
func (g *Grid) Render(path []Cell, start, goal Coord) string {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	grid := make([][]byte, len(rows))
	for y, r := range rows {
		grid[y] = []byte(r)
	}
	mark := func(c Coord, b byte) {
		if g.InBounds(c.X, c.Y) {
			grid[c.Y][c.X] = b
		}
	}
	for _, c := range path {
		mark(c.Coord, '*')
	}
	mark(start, 'S')
	mark(goal, 'G')

	var sb strings.Builder
	for _, r := range grid {
		sb.Write(r)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row‑major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// Len returns the number of cells in the snapshot.
func (s *Snapshot) Len() int { return len(s.walkable) }

// InBounds reports whether (x,y) lies within the snapshot.
func (s *Snapshot) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Index maps (x,y) to a row‑major index. The caller checks bounds.
func (s *Snapshot) Index(x, y int) int { return y*s.Width + x }

// Coordinate converts a row‑major index back to a Coord.
func (s *Snapshot) Coordinate(idx int) Coord {
	return Coord{X: idx % s.Width, Y: idx / s.Width}
}

// Walkable reports the walkability of the cell at row-major index idx.
func (s *Snapshot) Walkable(idx int) bool { return s.walkable[idx] }
