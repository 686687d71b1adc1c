package gridgraph

import "fmt"

// Unreachable marks cells with no walkable route from the source in a
// distance field.
const Unreachable = -1

// Distances computes the hop distance from `from` to every cell, moving only
// through walkable cells with conn connectivity and unit step cost.
// The source itself is always distance 0, even when it is blocked, which
// mirrors how searches may start on an unwalkable cell.
// The result is row-major; blocked and unreachable cells hold Unreachable.
//
// Behavior:
//  1. Take a snapshot so concurrent SetWalkable calls cannot tear the field.
//  2. Plain FIFO BFS from the source.
//  3. Each walkable neighbor is assigned dist[u]+1 on first discovery.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (g *Grid) Distances(from Coord, conn Connectivity) ([]int, error) {
	if !g.InBounds(from.X, from.Y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, from.X, from.Y)
	}
	snap := g.Snapshot()
	dist := make([]int, snap.Len())
	for i := range dist {
		dist[i] = Unreachable
	}
	offsets := Offsets(conn)

	src := snap.Index(from.X, from.Y)
	dist[src] = 0
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		uc := snap.Coordinate(u)
		for _, d := range offsets {
			vx, vy := uc.X+d[0], uc.Y+d[1]
			if !snap.InBounds(vx, vy) {
				continue
			}
			v := snap.Index(vx, vy)
			if dist[v] != Unreachable || !snap.Walkable(v) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist, nil
}

// DistanceTo is a convenience wrapper returning the hop distance between two
// cells, or Unreachable.
func (g *Grid) DistanceTo(from, to Coord, conn Connectivity) (int, error) {
	if !g.InBounds(to.X, to.Y) {
		return Unreachable, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, to.X, to.Y)
	}
	dist, err := g.Distances(from, conn)
	if err != nil {
		return Unreachable, err
	}

	return dist[g.index(to.X, to.Y)], nil
}
