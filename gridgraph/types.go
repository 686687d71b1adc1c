package gridgraph

import (
	"sync"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, W, S, N.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Coord is an integer grid coordinate. It is the identity of a cell.
type Coord struct {
	X, Y int
}

// Cell is a value view of one grid tile at the time it was read.
type Cell struct {
	Coord
	Walkable bool
}

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// CellSize is the world-space edge length of one cell. Must be > 0.
	CellSize float64
	// Conn is the default connectivity used by searches on this grid.
	Conn Connectivity
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options with CellSize=1 and Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		CellSize: 1,
		Conn:     Conn4,
	}
}

// WithCellSize sets the world-space size of a cell.
// Non-positive sizes are rejected by the constructor with ErrBadCellSize.
func WithCellSize(size float64) Option {
	return func(o *Options) {
		o.CellSize = size
	}
}

// WithConnectivity sets the default connectivity of the grid.
func WithConnectivity(conn Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// Grid is a fixed-size rectangular table of cells. Width and Height never
// change after construction; walkability is mutable at any time.
//
// Walkability is stored row-major (index = y*Width + x) and guarded by mu,
// so SetWalkable may race with readers safely. Searches work on a Snapshot.
type Grid struct {
	mu       sync.RWMutex
	width    int
	height   int
	cellSize float64
	conn     Connectivity
	walkable []bool
}

// Snapshot is an immutable point-in-time copy of a grid's walkability.
type Snapshot struct {
	Width, Height int
	walkable      []bool
}
