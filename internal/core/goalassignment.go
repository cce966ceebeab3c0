package core

// GoalAssignment is one color-consistent agent -> goal bijection
// candidate: the goal index chosen for each agent (in agent order),
// plus its precomputed initial heuristic.
type GoalAssignment struct {
	GoalIDs          []int
	InitialHeuristic int
}

// NewGoalAssignment pairs a goal-index tuple with its initial
// heuristic.
func NewGoalAssignment(goalIDs []int, initialHeuristic int) GoalAssignment {
	return GoalAssignment{GoalIDs: goalIDs, InitialHeuristic: initialHeuristic}
}

// Less orders goal assignments by initial heuristic, ascending.
func (g GoalAssignment) Less(other GoalAssignment) bool {
	return g.InitialHeuristic < other.InitialHeuristic
}
