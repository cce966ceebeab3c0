package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

func TestHeuristicManhattanOnOpenGrid(t *testing.T) {
	grid := core.NewGrid(5, 5, make([][]bool, 5))
	goals := []core.MarkedLocation{{X: 4, Y: 4, Color: 0}}
	h := NewHeuristic(grid, goals)
	assert.Equal(t, 8, h.Value(0, core.Coordinate{X: 0, Y: 0}))
	assert.Equal(t, 0, h.Value(0, core.Coordinate{X: 4, Y: 4}))
}

func TestHeuristicGoesAroundWalls(t *testing.T) {
	wall := [][]bool{
		{false, true, false},
		{false, true, false},
		{false, false, false},
	}
	grid := core.NewGrid(3, 3, wall)
	goals := []core.MarkedLocation{{X: 2, Y: 0, Color: 0}}
	h := NewHeuristic(grid, goals)
	// Column x=1 is walled off except at y=2, forcing a detour down and
	// back up: (2,0)-(2,1)-(2,2)-(1,2)-(0,2)-(0,1)-(0,0), distance 6.
	assert.Equal(t, 6, h.Value(0, core.Coordinate{X: 0, Y: 0}))
}

func TestHeuristicUnreachableCellIsInfinite(t *testing.T) {
	// (1,1) is walled in on all four sides: an isolated single-cell goal.
	wall := [][]bool{
		{false, true, false},
		{true, false, true},
		{false, true, false},
	}
	grid := core.NewGrid(3, 3, wall)
	goals := []core.MarkedLocation{{X: 1, Y: 1, Color: 0}}
	h := NewHeuristic(grid, goals)
	assert.Equal(t, Infinite, h.Value(0, core.Coordinate{X: 0, Y: 0}))
}

func TestHeuristicUnknownColorIsInfinite(t *testing.T) {
	grid := core.NewGrid(2, 2, make([][]bool, 2))
	goals := []core.MarkedLocation{{X: 1, Y: 0, Color: 0}}
	h := NewHeuristic(grid, goals)
	assert.False(t, h.HasColor(1))
	assert.Equal(t, Infinite, h.Value(1, core.Coordinate{X: 0, Y: 0}))
}
