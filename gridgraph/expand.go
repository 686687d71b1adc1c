package gridgraph

import (
	"container/list"
	"fmt"
)

// OpenWalls finds the fewest blocked cells that must be made walkable so a
// search from `from` can reach `to` with conn connectivity. It returns those
// cells in route order and their count. A nil slice with cost 0 means `to`
// is already reachable.
//
// Like a search, the source is entered even when blocked, so `from` is never
// reported; a blocked `to` is.
//
// Behavior:
//  1. Validate both coordinates.
//  2. Seed every cell of from's walkable region at cost 0 (a blocked `from`
//     seeds only itself).
//  3. Multi-source 0-1 BFS:
//     • Moving into a walkable cell → cost 0
//     • Moving into a blocked cell  → cost 1
//  4. Stop when `to` is popped and walk the predecessors back.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (g *Grid) OpenWalls(from, to Coord, conn Connectivity) (walls []Coord, cost int, err error) {
	for _, c := range []Coord{from, to} {
		if !g.InBounds(c.X, c.Y) {
			return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
		}
	}
	snap := g.Snapshot()
	src, dst := snap.Index(from.X, from.Y), snap.Index(to.X, to.Y)

	sources := []int{src}
	if snap.Walkable(src) {
		comps := components(snap, conn)
		region := g.Region(comps, from)
		if region >= 0 && region == g.Region(comps, to) {
			return nil, 0, nil
		}
		sources = comps[region]
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, snap.Len())
	prev := make([]int, snap.Len())
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back
	dq := list.New()
	for _, i := range sources {
		dist[i] = 0
		dq.PushBack(i)
	}

	offsets := Offsets(conn)
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if u == dst {
			break
		}
		uc := snap.Coordinate(u)
		for _, d := range offsets {
			vx, vy := uc.X+d[0], uc.Y+d[1]
			if !snap.InBounds(vx, vy) {
				continue
			}
			v := snap.Index(vx, vy)
			step := 0
			if !snap.Walkable(v) {
				step = 1
			}
			nd := dist[u] + step
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	// Every cell can be opened, so dst is always reached.
	for at := dst; prev[at] >= 0; at = prev[at] {
		if !snap.Walkable(at) {
			walls = append(walls, snap.Coordinate(at))
		}
	}
	for i, j := 0, len(walls)-1; i < j; i, j = i+1, j-1 {
		walls[i], walls[j] = walls[j], walls[i]
	}

	return walls, dist[dst], nil
}
