package algo

import "github.com/elektrokombinacija/mapfm-epea/internal/core"

// jointOperator is one committed choice of PDB row per agent, still
// collapsed (each agent's slot may list several directions sharing a
// Δf) — not yet Cartesian-expanded into concrete per-agent moves.
type jointOperator [][]core.Direction

// operatorFinder enumerates every combination of one PDB row per agent
// whose Δf values sum to exactly target, pruning branches that cannot
// possibly reach target using precomputed per-position min/max tail
// sums. Its speed is critical: it runs once per EPEA* node expansion.
type operatorFinder struct {
	target  int
	rows    []PDBTable
	minTail []int // minTail[i] = sum of first-row Δf for agents after i
	maxTail []int // maxTail[i] = sum of last-row Δf for agents after i

	nextTargetValue int
}

func newOperatorFinder(target int, rows []PDBTable) *operatorFinder {
	n := len(rows)
	minTail := make([]int, n)
	maxTail := make([]int, n)
	sMin, sMax := 0, 0
	for i := n - 1; i >= 0; i-- {
		minTail[i] = sMin
		maxTail[i] = sMax
		sMin += rows[i][0].DeltaF
		sMax += rows[i][len(rows[i])-1].DeltaF
	}
	return &operatorFinder{
		target:          target,
		rows:            rows,
		minTail:         minTail,
		maxTail:         maxTail,
		nextTargetValue: Infinite,
	}
}

// find runs the recursive search and returns the resulting joint
// operators, along with the smallest Δf value strictly greater than
// target encountered along the way (the next partial-expansion
// threshold for the parent node).
func (of *operatorFinder) find() ([]jointOperator, int) {
	var results []jointOperator

	var recurse func(agent int, chosenRows jointOperator, sum int)
	recurse = func(agent int, chosenRows jointOperator, sum int) {
		for _, row := range of.rows[agent] {
			s := sum + row.DeltaF
			if s+of.minTail[agent] > of.target {
				if s+of.minTail[agent] < of.nextTargetValue {
					of.nextTargetValue = s + of.minTail[agent]
				}
				return // rows are sorted ascending: later rows only larger
			}
			if agent == len(of.rows)-1 {
				if s == of.target {
					next := append(append(jointOperator(nil), chosenRows...), row.Directions)
					results = append(results, next)
				}
				continue
			}
			if s+of.maxTail[agent] < of.target {
				continue
			}
			recurse(agent+1, append(chosenRows, row.Directions), s)
		}
	}

	if len(of.rows) > 0 {
		recurse(0, nil, 0)
	}
	return results, of.nextTargetValue
}

// expandOperators Cartesian-expands each collapsed joint operator into
// concrete per-agent direction tuples — deferred until a compatible
// joint-row combination is committed. Re-enumerating directions at
// every recursion level instead would be orders of magnitude slower.
func expandOperators(operators []jointOperator) [][]core.Direction {
	var expanded [][]core.Direction
	for _, operator := range operators {
		expanded = append(expanded, cartesianProduct(operator)...)
	}
	return expanded
}

func cartesianProduct(slots [][]core.Direction) [][]core.Direction {
	if len(slots) == 0 {
		return nil
	}
	result := [][]core.Direction{{}}
	for _, options := range slots {
		next := make([][]core.Direction, 0, len(result)*len(options))
		for _, prefix := range result {
			for _, opt := range options {
				tuple := append(append([]core.Direction(nil), prefix...), opt)
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}
