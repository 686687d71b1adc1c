package gridgraph

import "math"

// CoordinateToWorld returns the world position of cell c:
// (c.X*CellSize, c.Y*CellSize). The cell's origin, not its corner.
func (g *Grid) CoordinateToWorld(c Coord) Point {
	return Point{X: float64(c.X) * g.cellSize, Y: float64(c.Y) * g.cellSize}
}

// WorldToCoordinate maps a world position to the nearest cell coordinate,
// rounding half to even. The result may be out of bounds; use CellAt for a
// checked lookup.
func (g *Grid) WorldToCoordinate(p Point) Coord {
	return Coord{
		X: int(math.RoundToEven(p.X / g.cellSize)),
		Y: int(math.RoundToEven(p.Y / g.cellSize)),
	}
}

// CellAt returns the cell nearest to world position p. ok is false when the
// position maps outside the grid.
func (g *Grid) CellAt(p Point) (Cell, bool) {
	c := g.WorldToCoordinate(p)
	return g.Cell(c.X, c.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
