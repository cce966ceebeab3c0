package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

// crossingAssignmentScenario builds a 1-wide, 5-long corridor with two
// same-color agents and two same-color goals, positioned so one
// agent-to-goal bijection is cheap (each agent takes the goal nearest
// its own start) and the other forces the two agents to cross the
// single-width corridor, which is structurally impossible without a
// vertex or edge conflict.
func crossingAssignmentScenario(t *testing.T) (*MatchingSolver, core.GoalAssignment, core.GoalAssignment) {
	t.Helper()
	starts := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}, {X: 4, Y: 0, Color: 0}}
	goals := []core.MarkedLocation{{X: 1, Y: 0, Color: 0}, {X: 3, Y: 0, Color: 0}}
	problem := core.NewProblem(5, 1, openGrid(5, 1), starts, goals)
	solver := NewMatchingSolver(problem, DefaultSolverConfig())

	near := core.NewGoalAssignment([]int{0, 1}, 0) // agent 0 -> goal 0 (x=1), agent 1 -> goal 1 (x=3)
	crossing := core.NewGoalAssignment([]int{1, 0}, 0) // agent 0 -> goal 1 (x=3), agent 1 -> goal 0 (x=1)
	return solver, near, crossing
}

// TestSolveAssignmentVariantRespectsAssignedGoalNotNearestSameColor
// pins down the recoloring that distinguishes two bijections over the
// same same-colored goal set. Before agents and goals are recolored to
// the assignment's goal index, OnGoal only checks domain color, so
// every agent silently treats whichever same-color goal it reaches
// first as its target: the "crossing" assignment would incorrectly
// report itself solved by having each agent settle on the other,
// nearer goal, instead of the one the assignment actually names.
func TestSolveAssignmentVariantRespectsAssignedGoalNotNearestSameColor(t *testing.T) {
	solver, near, crossing := crossingAssignmentScenario(t)

	nearPaths, nearCost, nearOK := solver.solveAssignmentVariant(near, Infinite, false)
	require.True(t, nearOK)
	assert.Equal(t, 2, nearCost)
	require.Len(t, nearPaths, 2)
	for _, p := range nearPaths {
		if p.Identifier == 0 {
			assert.Equal(t, core.Coordinate{X: 1, Y: 0}, p.Cells[len(p.Cells)-1])
		} else {
			assert.Equal(t, core.Coordinate{X: 3, Y: 0}, p.Cells[len(p.Cells)-1])
		}
	}

	// The corridor is one cell wide: an agent going from x=0 to x=3 and
	// another going from x=4 to x=1 must cross, which is impossible
	// without a vertex or edge conflict. If OnGoal correctly resolves
	// to this assignment's specific goal, this bijection is infeasible
	// rather than quietly collapsing onto the "near" solution above.
	_, _, crossingOK := solver.solveAssignmentVariant(crossing, Infinite, false)
	assert.False(t, crossingOK)
}

// TestMatchingSolverPicksCheaperBijection exercises the full exhaustive
// enumeration over both bijections end to end, confirming the overall
// optimum (the "near" pairing) is still found once assignments are
// correctly disambiguated.
func TestMatchingSolverPicksCheaperBijection(t *testing.T) {
	starts := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}, {X: 4, Y: 0, Color: 0}}
	goals := []core.MarkedLocation{{X: 1, Y: 0, Color: 0}, {X: 3, Y: 0, Color: 0}}
	problem := core.NewProblem(5, 1, openGrid(5, 1), starts, goals)
	config := DefaultSolverConfig()
	config.Algorithm = ExhaustiveMatching
	solver := NewMatchingSolver(problem, config)

	paths, cost, ok := solver.Solve()
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	require.Len(t, paths, 2)
}

// TestSortedSolveEvaluatesBeyondQueueLimit confirms a QueueLimit
// smaller than the total number of assignments doesn't drop any of
// them: the best assignment is still found even when it starts out
// past the initial window.
func TestSortedSolveEvaluatesBeyondQueueLimit(t *testing.T) {
	starts := []core.MarkedLocation{{X: 0, Y: 0, Color: 0}, {X: 4, Y: 0, Color: 0}}
	goals := []core.MarkedLocation{{X: 1, Y: 0, Color: 0}, {X: 3, Y: 0, Color: 0}}
	problem := core.NewProblem(5, 1, openGrid(5, 1), starts, goals)
	config := DefaultSolverConfig()
	config.Algorithm = ExhaustiveMatchingSorted
	config.Shuffle = false
	config.QueueLimit = 1
	solver := NewMatchingSolver(problem, config)

	paths, cost, ok := solver.Solve()
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	require.Len(t, paths, 2)
	assert.Equal(t, 2, solver.Stats().AssignmentsEvaluated+solver.Stats().AssignmentsSkipped)
}
