package algo

import "github.com/elektrokombinacija/mapfm-epea/internal/core"

// node is an EPEA* search-tree node. Nodes are held in an append-only
// arena and referenced by index for path reconstruction, never as
// live pointers forming cycles: parent is an index into the owning
// EPEAStar's node arena, -1 for the root.
type node struct {
	state core.State
	cost  int // g(n)
	heur  int // h(n)

	// value is F(n) = cost + heur + deltaF; deltaF starts at 0 and is
	// increased each time the node is re-inserted after a partial
	// expansion that didn't exhaust its children.
	value      int
	deltaF     int
	collisions int // CAT tiebreak count
	time       int // search depth
	parent     int // index into the arena, -1 for root
}

// nodeHeap orders nodes by (value, collisions, heuristic) ascending.
// Ties beyond that fall to container/heap's internal layout, which is
// not insertion order but is deterministic for a fixed sequence of
// pushes and pops — the search stays reproducible across runs of the
// same input.
type nodeHeap struct {
	arena *[]node
	idx   []int // indices into *arena, heap-ordered
}

func (h nodeHeap) Len() int { return len(h.idx) }
func (h nodeHeap) Less(i, j int) bool {
	a, b := (*h.arena)[h.idx[i]], (*h.arena)[h.idx[j]]
	if a.value != b.value {
		return a.value < b.value
	}
	if a.collisions != b.collisions {
		return a.collisions < b.collisions
	}
	return a.heur < b.heur
}
func (h nodeHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *nodeHeap) Push(x any)   { h.idx = append(h.idx, x.(int)) }
func (h *nodeHeap) Pop() any {
	old := h.idx
	n := len(old)
	i := old[n-1]
	h.idx = old[:n-1]
	return i
}
