package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

func solveSingleAssignment(t *testing.T, width, height int, wall [][]bool, starts, goals []core.MarkedLocation) ([]core.Path, int, bool) {
	t.Helper()
	problem := core.NewProblem(width, height, wall, starts, goals)
	grid := problem.Grid()
	heuristic := NewHeuristic(grid, goals)
	colors := core.ColorCounts(goals)
	colorList := make([]int, 0, len(colors))
	for c := range colors {
		colorList = append(colorList, c)
	}
	pdb := NewPDB(heuristic, grid, colorList)
	mapfProblem := NewMAPFProblem(goals, pdb, heuristic)
	id := NewIDSolver(mapfProblem, width, height)
	return id.Solve(problem.Agents(), Infinite)
}

func openGrid(width, height int) [][]bool {
	wall := make([][]bool, height)
	for y := range wall {
		wall[y] = make([]bool, width)
	}
	return wall
}

func TestStraightLine(t *testing.T) {
	starts := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}}
	goals := []core.MarkedLocation{{X: 4, Y: 0, Color: 0}}
	paths, cost, ok := solveSingleAssignment(t, 5, 1, openGrid(5, 1), starts, goals)
	require.True(t, ok)
	assert.Equal(t, 4, cost)
	require.Len(t, paths, 1)
	assert.Equal(t, core.Coordinate{X: 4, Y: 0}, paths[0].Cells[len(paths[0].Cells)-1])
}

func TestSwapIn2x2(t *testing.T) {
	starts := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}, {X: 1, Y: 0, Color: 1}}
	goals := []core.MarkedLocation{{X: 1, Y: 0, Color: 0}, {X: 0, Y: 0, Color: 1}}
	paths, cost, ok := solveSingleAssignment(t, 2, 2, openGrid(2, 2), starts, goals)
	require.True(t, ok)
	// A direct one-step swap is the only cost-2 plan and it's disallowed
	// (an edge conflict); going around the box costs more. 6 is a known
	// feasible detour, so the true optimum is somewhere in (2, 6].
	assert.Greater(t, cost, 2)
	assert.LessOrEqual(t, cost, 6)
	for _, p := range paths {
		for _, q := range paths {
			if p.Identifier == q.Identifier {
				continue
			}
			assert.False(t, p.Conflicts(q))
		}
	}
}

func TestFaceOffInCorridorIsInfeasible(t *testing.T) {
	starts := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}, {X: 2, Y: 0, Color: 1}}
	goals := []core.MarkedLocation{{X: 2, Y: 0, Color: 0}, {X: 0, Y: 0, Color: 1}}
	_, _, ok := solveSingleAssignment(t, 3, 1, openGrid(3, 1), starts, goals)
	assert.False(t, ok)
}

func TestMatchingChoiceMatters(t *testing.T) {
	starts := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}, {X: 2, Y: 0, Color: 0}}
	goals := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}, {X: 2, Y: 0, Color: 0}}
	problem := core.NewProblem(3, 1, openGrid(3, 1), starts, goals)
	config := DefaultSolverConfig()
	config.Algorithm = ExhaustiveMatchingSorted
	solver := NewMatchingSolver(problem, config)
	paths, cost, ok := solver.Solve()
	require.True(t, ok)
	assert.Equal(t, 0, cost)
	assert.Len(t, paths, 2)
}

func TestIndependenceKeepsThemApart(t *testing.T) {
	starts := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}, {X: 4, Y: 0, Color: 1}}
	goals := []core.MarkedLocation{{X: 4, Y: 4, Color: 0}, {X: 0, Y: 4, Color: 1}}
	paths, cost, ok := solveSingleAssignment(t, 5, 5, openGrid(5, 5), starts, goals)
	require.True(t, ok)
	assert.Equal(t, 16, cost)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, 8, p.Cost())
	}
}

func TestWaitingOnGoalIsFree(t *testing.T) {
	// A sits on its goal for the whole episode and must cost nothing for
	// it; B travels two cells elsewhere, never meeting A's cell, and
	// costs exactly its travel distance.
	starts := []core.MarkedLocation{{X: 3, Y: 0, Color: 0}, {X: 0, Y: 0, Color: 1}}
	goals := []core.MarkedLocation{{X: 3, Y: 0, Color: 0}, {X: 2, Y: 0, Color: 1}}
	paths, cost, ok := solveSingleAssignment(t, 4, 1, openGrid(4, 1), starts, goals)
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	for _, p := range paths {
		if p.Identifier == 0 {
			assert.Equal(t, 0, p.Cost())
		} else {
			assert.Equal(t, 2, p.Cost())
		}
	}
}
