package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGoalAssignmentStoresGoalIDsAndHeuristic(t *testing.T) {
	a := NewGoalAssignment([]int{2, 0, 1}, 7)
	assert.Equal(t, []int{2, 0, 1}, a.GoalIDs)
	assert.Equal(t, 7, a.InitialHeuristic)
}

func TestGoalAssignmentLessOrdersByHeuristicAscending(t *testing.T) {
	cheap := NewGoalAssignment([]int{0, 1}, 3)
	expensive := NewGoalAssignment([]int{1, 0}, 9)

	assert.True(t, cheap.Less(expensive))
	assert.False(t, expensive.Less(cheap))
}

func TestGoalAssignmentLessIsStrictNotEqual(t *testing.T) {
	a := NewGoalAssignment([]int{0, 1}, 5)
	b := NewGoalAssignment([]int{1, 0}, 5)

	assert.False(t, a.Less(b))
	assert.False(t, b.Less(a))
}
