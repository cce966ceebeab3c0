package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

func twoAgentRows() []PDBTable {
	return []PDBTable{
		{
			{Directions: []core.Direction{core.North}, DeltaF: 0},
			{Directions: []core.Direction{core.East}, DeltaF: 2},
		},
		{
			{Directions: []core.Direction{core.South}, DeltaF: 1},
			{Directions: []core.Direction{core.West}, DeltaF: 3},
		},
	}
}

func TestOperatorFinderFindsExactSumCombination(t *testing.T) {
	finder := newOperatorFinder(1, twoAgentRows())
	operators, next := finder.find()

	require.Len(t, operators, 1)
	tuples := expandOperators(operators)
	require.Len(t, tuples, 1)
	assert.Equal(t, []core.Direction{core.North, core.South}, tuples[0])
	assert.Equal(t, 3, next)
}

func TestOperatorFinderNoCombinationMatchesTarget(t *testing.T) {
	finder := newOperatorFinder(100, twoAgentRows())
	operators, next := finder.find()
	assert.Empty(t, operators)
	assert.Equal(t, Infinite, next)
}

func TestOperatorFinderCollapsedRowExpandsToEveryDirection(t *testing.T) {
	rows := []PDBTable{
		{
			{Directions: []core.Direction{core.North, core.East}, DeltaF: 0},
		},
	}
	finder := newOperatorFinder(0, rows)
	operators, _ := finder.find()
	require.Len(t, operators, 1)
	tuples := expandOperators(operators)
	assert.ElementsMatch(t, [][]core.Direction{{core.North}, {core.East}}, tuples)
}
