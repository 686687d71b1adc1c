package astar

// nodeState tracks which set a scratch node belongs to.
type nodeState uint8

const (
	unseen nodeState = iota
	open
	closed
)

// node is the per-call search bookkeeping for one cell, stored in a
// row-major scratch table. parent is an index into that table (-1 for none).
type node struct {
	g, h    int
	parent  int
	seq     int       // order of first insertion into the open set
	heapIdx int       // position in openPQ while open
	state   nodeState // unseen, open or closed
}

// f returns g + h. Always derived, never stored.
func (n *node) f() int { return n.g + n.h }

// openPQ is a min-heap of scratch-table indices ordered by the tie-break
// policy: lowest f, then lowest h, then earliest insertion.
// Decrease-key uses heap.Fix with the heapIdx kept on each node.
type openPQ struct {
	nodes []node
	items []int
}

// Len returns the number of items in the heap.
func (pq *openPQ) Len() int { return len(pq.items) }

// Less defines the comparison used by the tie-break policy.
func (pq *openPQ) Less(i, j int) bool {
	a, b := &pq.nodes[pq.items[i]], &pq.nodes[pq.items[j]]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap and keeps heapIdx in sync.
func (pq *openPQ) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.nodes[pq.items[i]].heapIdx = i
	pq.nodes[pq.items[j]].heapIdx = j
}

// Push adds a scratch index x onto the heap.
// Called by heap.Push; x must be of type int.
func (pq *openPQ) Push(x interface{}) {
	idx := x.(int)
	pq.nodes[idx].heapIdx = len(pq.items)
	pq.items = append(pq.items, idx)
}

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to int.
func (pq *openPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	idx := old[n-1]
	pq.items = old[:n-1]
	pq.nodes[idx].heapIdx = -1

	return idx
}
