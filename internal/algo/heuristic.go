// Package algo implements the MAPFM optimal solver: the per-color SIC
// heuristic and pattern database, the EPEA* joint-state search,
// Independence Detection, and the matching enumerator that compose
// into the full planner.
package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

// Heuristic holds, for every color with at least one goal, a
// height x width table of the shortest 4-connected distance from each
// cell to the nearest goal of that color. Unreachable cells hold
// math.MaxInt (standing in for +∞; every comparison in this package
// treats MaxInt as "infinite" since costs never approach it in
// practice). Built once per Problem via a multi-source BFS from each
// color's goals.
type Heuristic struct {
	width, height int
	byColor       map[int][][]int
}

// Infinite is the sentinel distance for unreachable cells.
const Infinite = int(^uint(0) >> 1) // math.MaxInt, without importing math just for this

// NewHeuristic computes the SIC heuristic table for every color
// present in goals.
func NewHeuristic(grid *core.Grid, goals []core.MarkedLocation) *Heuristic {
	grouped := groupByColor(goals)
	h := &Heuristic{
		width:   grid.Width,
		height:  grid.Height,
		byColor: make(map[int][][]int, len(grouped)),
	}
	for color, colorGoals := range grouped {
		h.byColor[color] = bfsDistances(grid, colorGoals)
	}
	return h
}

func groupByColor(locations []core.MarkedLocation) map[int][]core.MarkedLocation {
	grouped := make(map[int][]core.MarkedLocation)
	for _, loc := range locations {
		grouped[loc.Color] = append(grouped[loc.Color], loc)
	}
	return grouped
}

// bfsItem is a single BFS frontier entry, ordered by cost so a plain
// heap gives nondecreasing expansion order (a FIFO queue would do too,
// since all edges cost 1; the heap form generalizes cleanly and mirrors
// the priority-queue shape used throughout this package).
type bfsItem struct {
	pos  core.Coordinate
	cost int
}

type bfsHeap []bfsItem

func (h bfsHeap) Len() int            { return len(h) }
func (h bfsHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h bfsHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bfsHeap) Push(x any)         { *h = append(*h, x.(bfsItem)) }
func (h *bfsHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func bfsDistances(grid *core.Grid, goals []core.MarkedLocation) [][]int {
	table := make([][]int, grid.Height)
	for y := range table {
		row := make([]int, grid.Width)
		for x := range row {
			row[x] = Infinite
		}
		table[y] = row
	}

	seen := make(map[core.Coordinate]bool)
	frontier := &bfsHeap{}
	heap.Init(frontier)
	for _, g := range goals {
		pos := g.Coordinate()
		if seen[pos] {
			continue
		}
		seen[pos] = true
		heap.Push(frontier, bfsItem{pos: pos, cost: 0})
	}

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(bfsItem)
		table[item.pos.Y][item.pos.X] = item.cost
		for _, n := range grid.Neighbors(item.pos) {
			if !seen[n] {
				seen[n] = true
				heap.Push(frontier, bfsItem{pos: n, cost: item.cost + 1})
			}
		}
	}
	return table
}

// Value returns the precomputed distance from coord to the nearest
// goal of color, or Infinite if color has no goals or coord cannot
// reach one.
func (h *Heuristic) Value(color int, coord core.Coordinate) int {
	table, ok := h.byColor[color]
	if !ok {
		return Infinite
	}
	if coord.Y < 0 || coord.Y >= h.height || coord.X < 0 || coord.X >= h.width {
		return Infinite
	}
	return table[coord.Y][coord.X]
}

// HasColor reports whether any goal of the given color was supplied.
func (h *Heuristic) HasColor(color int) bool {
	_, ok := h.byColor[color]
	return ok
}
