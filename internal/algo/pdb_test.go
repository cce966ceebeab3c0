package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

func TestPDBRowsAreSortedByDeltaF(t *testing.T) {
	grid := core.NewGrid(5, 5, make([][]bool, 5))
	goals := []core.MarkedLocation{{X: 4, Y: 4, Color: 0}}
	h := NewHeuristic(grid, goals)
	pdb := NewPDB(h, grid, []int{0})

	table := pdb.Table(0, 0, 0)
	require.NotEmpty(t, table)
	for i := 1; i < len(table); i++ {
		assert.Less(t, table[i-1].DeltaF, table[i].DeltaF)
	}
}

func TestPDBWaitAlwaysHasDeltaFOne(t *testing.T) {
	grid := core.NewGrid(5, 5, make([][]bool, 5))
	goals := []core.MarkedLocation{{X: 4, Y: 4, Color: 0}}
	h := NewHeuristic(grid, goals)
	pdb := NewPDB(h, grid, []int{0})

	table := pdb.Table(0, 2, 2)
	found := false
	for _, row := range table {
		for _, d := range row.Directions {
			if d == core.Wait {
				assert.Equal(t, 1, row.DeltaF)
				found = true
			}
		}
	}
	assert.True(t, found, "WAIT must appear in every cell's table")
}

func TestPDBCollapsesEqualDeltaFDirections(t *testing.T) {
	// At the goal cell itself, every traversable direction moves strictly
	// farther away (Δf = 1 + 1 - 0 = 2), so they all collapse into one row
	// alongside WAIT's own Δf = 1 forming a separate row.
	grid := core.NewGrid(3, 3, make([][]bool, 3))
	goals := []core.MarkedLocation{{X: 1, Y: 1, Color: 0}}
	h := NewHeuristic(grid, goals)
	pdb := NewPDB(h, grid, []int{0})

	table := pdb.Table(0, 1, 1)
	require.Len(t, table, 2)
	assert.Equal(t, 1, table[0].DeltaF)
	assert.Equal(t, []core.Direction{core.Wait}, table[0].Directions)
	assert.Equal(t, 2, table[1].DeltaF)
	assert.Len(t, table[1].Directions, 4)
}

func TestPDBEmptyForUnreachableCell(t *testing.T) {
	wall := [][]bool{
		{false, true, false},
		{true, false, true},
		{false, true, false},
	}
	grid := core.NewGrid(3, 3, wall)
	goals := []core.MarkedLocation{{X: 1, Y: 1, Color: 0}}
	h := NewHeuristic(grid, goals)
	pdb := NewPDB(h, grid, []int{0})

	assert.Empty(t, pdb.Table(0, 0, 0))
}
