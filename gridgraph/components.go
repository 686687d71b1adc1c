package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells
// according to conn connectivity, using one consistent snapshot.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order. Components are ordered by their
// first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(conn Connectivity) [][]int {
	return components(g.Snapshot(), conn)
}

// components is ConnectedComponents over an existing snapshot.
func components(snap *Snapshot, conn Connectivity) [][]int {
	total := snap.Len()
	seen := make([]bool, total)
	var comps [][]int
	offsets := Offsets(conn)

	for i0 := 0; i0 < total; i0++ {
		if !snap.Walkable(i0) || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := snap.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := u.X+d[0], u.Y+d[1]
				if !snap.InBounds(vx, vy) {
					continue
				}
				vi := snap.Index(vx, vy)
				if seen[vi] || !snap.Walkable(vi) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Region returns the index of the component containing c within comps,
// or -1 when c is blocked or out of bounds.
func (g *Grid) Region(comps [][]int, c Coord) int {
	if !g.InBounds(c.X, c.Y) {
		return -1
	}
	idx := g.index(c.X, c.Y)
	for i, comp := range comps {
		for _, v := range comp {
			if v == idx {
				return i
			}
		}
	}

	return -1
}
