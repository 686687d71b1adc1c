package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Manhattan returns |dx| + |dy|. Admissible and consistent for Conn4 with
// unit steps. Under Conn8 with unit diagonal cost it overestimates, so the
// search still terminates but may return a longer than shortest path.
func Manhattan(a, b gridgraph.Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|dx|, |dy|). Admissible for both Conn4 and Conn8
// with unit steps; opt in with WithHeuristic(Chebyshev) for exact Conn8 paths.
func Chebyshev(a, b gridgraph.Coord) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Zero always returns 0, turning the search into uniform-cost (Dijkstra).
func Zero(_, _ gridgraph.Coord) int { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
