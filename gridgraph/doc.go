// Package gridgraph treats a rectangular 2D grid of walkable and blocked
// cells as a graph for agent navigation.
//
// What:
//
//   - Grid owns a fixed Width×Height table of cells; walkability is mutable.
//   - Cell lookups are bounds-checked and report absence instead of panicking.
//   - Neighbors enumerates 4- or 8-connected cells in a fixed order.
//   - CoordinateToWorld / WorldToCoordinate map cells to world positions.
//   - ConnectedComponents groups walkable cells into regions.
//   - Distances computes a BFS hop-distance field from one cell.
//
// Why:
//
//   - Game maps: plan agent routes with astar, check reachability cheaply.
//   - Editors: toggle walls while searches keep reading consistent snapshots.
//
// Neighbor order:
//
//	(+1,0) (-1,0) (0,+1) (0,-1)                   Conn4
//	(+1,+1) (-1,+1) (+1,-1) (-1,-1)               appended for Conn8
//
// Diagonal neighbors are offered even when both flanking orthogonal cells
// are blocked (no corner-cutting check).
//
// Complexity:
//
//   - Cell, SetWalkable, InBounds: O(1).
//   - Snapshot:                    O(W×H).
//   - ConnectedComponents:         O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - Distances:                   O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: layout rows have differing lengths.
//   - ErrBadCellSize: cell size is not positive.
//   - ErrOutOfBounds: coordinate is not on the grid.
package gridgraph
