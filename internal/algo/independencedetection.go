package algo

import "github.com/elektrokombinacija/mapfm-epea/internal/core"

// IDSolver implements Independence Detection: solve every agent on its
// own first, then merge and re-solve jointly only the groups whose
// paths actually conflict. This avoids paying for joint search across
// agents that never interact.
type IDSolver struct {
	problem *MAPFProblem
	width   int
	height  int
	stats   *StatisticTracker // optional; nil disables group-size recording
}

// NewIDSolver builds an ID decomposition solver over problem, whose
// joint state space is width x height.
func NewIDSolver(problem *MAPFProblem, width, height int) *IDSolver {
	return &IDSolver{problem: problem, width: width, height: height}
}

// WithStats attaches a StatisticTracker that records the largest group
// this solve ever solved jointly, initial groups included.
func (s *IDSolver) WithStats(stats *StatisticTracker) *IDSolver {
	s.stats = stats
	return s
}

// Solve decomposes agents starting from singleton groups (a
// matching-level caller may start from color-based groups instead, see
// SolveGrouped) and returns the optimal conflict-free path set under
// maxCost, or ok=false if infeasible.
func (s *IDSolver) Solve(agents []core.Agent, maxCost int) ([]core.Path, int, bool) {
	singles := make([]core.Group, len(agents))
	for i, a := range agents {
		singles[i] = core.NewGroup([]int{a.Identifier})
	}
	return s.solveFromGroups(agents, singles, maxCost)
}

// SolveGrouped decomposes agents starting from initialGroups rather
// than singletons: agents already known to share a color (and so a
// goal region) are solved jointly from the start, since they are the
// pairs most likely to conflict anyway.
func (s *IDSolver) SolveGrouped(agents []core.Agent, initialGroups []core.Group, maxCost int) ([]core.Path, int, bool) {
	return s.solveFromGroups(agents, initialGroups, maxCost)
}

func (s *IDSolver) solveFromGroups(agents []core.Agent, initialGroups []core.Group, maxCost int) ([]core.Path, int, bool) {
	byID := make(map[int]core.Agent, len(agents))
	for _, a := range agents {
		byID[a.Identifier] = a
	}
	groups := core.NewGroups(initialGroups)
	pathSet := core.NewPathSet(agents, s.problem.Heuristic, s.width, s.height)

	for _, g := range initialGroups {
		groupAgents := make([]core.Agent, g.Len())
		for i, id := range g.IDs() {
			groupAgents[i] = byID[id]
		}
		paths, _, ok := s.solveGroup(pathSet, groupAgents, Infinite)
		if !ok {
			return nil, 0, false
		}
		pathSet.Update(paths)
		s.recordGroupSize(g.Len())
	}

	for {
		a, b, conflict := pathSet.FindConflict()
		if !conflict {
			break
		}
		merged := groups.CombineAgents(a, b)
		groupAgents := make([]core.Agent, merged.Len())
		exclude := make(map[int]bool, merged.Len())
		for i, id := range merged.IDs() {
			groupAgents[i] = byID[id]
			exclude[id] = true
		}
		budget := pathSet.GetRemainingCost(exclude, maxCost)
		paths, _, ok := s.solveGroup(pathSet, groupAgents, budget)
		if !ok {
			return nil, 0, false
		}
		pathSet.Update(paths)
		s.recordGroupSize(merged.Len())
	}

	total := 0
	for _, a := range agents {
		total += pathSet.Cost(a.Identifier)
	}
	if total >= maxCost {
		return nil, 0, false
	}
	return pathSet.Paths(), total, true
}

// solveGroup runs EPEA* for groupAgents alone, tiebreaking against
// every other group's already-fixed paths via pathSet's CAT.
func (s *IDSolver) solveGroup(pathSet *core.PathSet, groupAgents []core.Agent, maxCost int) ([]core.Path, int, bool) {
	search := NewEPEAStar(s.problem, groupAgents, maxCost, pathSet.CAT)
	return search.Solve()
}

func (s *IDSolver) recordGroupSize(size int) {
	if s.stats != nil {
		s.stats.RecordGroupSize(size)
	}
}
