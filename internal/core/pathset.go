package core

// HeuristicLookup abstracts the precomputed per-color distance table
// so that PathSet (core) doesn't need to import the solver package
// (algo) that builds it — it only needs to read a value back out.
type HeuristicLookup interface {
	Value(color int, coord Coordinate) int
}

// PathSet tracks, for a fixed set of agents, the current best Path and
// cost for each, plus a CAT kept consistent with the stored paths.
type PathSet struct {
	agents    []Agent
	heuristic HeuristicLookup
	mapping   map[int]int // agent identifier -> index
	paths     []*Path
	costs     []int // -1 means "not yet solved"
	CAT       *CAT
}

// NewPathSet creates a PathSet over agents, backed by a width x height
// CAT sized from dims.
func NewPathSet(agents []Agent, heuristic HeuristicLookup, width, height int) *PathSet {
	mapping := make(map[int]int, len(agents))
	for i, a := range agents {
		mapping[a.Identifier] = i
	}
	costs := make([]int, len(agents))
	for i := range costs {
		costs[i] = -1
	}
	return &PathSet{
		agents:    agents,
		heuristic: heuristic,
		mapping:   mapping,
		paths:     make([]*Path, len(agents)),
		costs:     costs,
		CAT:       NewCAT(width, height),
	}
}

// Update replaces the stored path (and CAT registration) for each
// path's agent.
func (ps *PathSet) Update(paths []Path) {
	for i := range paths {
		p := paths[i]
		idx, ok := ps.mapping[p.Identifier]
		if !ok {
			continue
		}
		ps.CAT.RemovePath(ps.paths[idx])
		ps.paths[idx] = &p
		ps.CAT.AddPath(ps.paths[idx])
		ps.costs[idx] = p.Cost()
	}
}

// Path returns the currently stored path for agentID, or nil if unset.
func (ps *PathSet) Path(agentID int) *Path {
	idx, ok := ps.mapping[agentID]
	if !ok {
		return nil
	}
	return ps.paths[idx]
}

// Cost returns the current cost for agentID: the stored path's cost if
// solved, otherwise the agent's heuristic as a lower bound.
func (ps *PathSet) Cost(agentID int) int {
	idx, ok := ps.mapping[agentID]
	if !ok {
		return 0
	}
	if ps.costs[idx] >= 0 {
		return ps.costs[idx]
	}
	return ps.Heuristic(agentID)
}

// Heuristic returns the precomputed lower bound for agentID's current
// position and color.
func (ps *PathSet) Heuristic(agentID int) int {
	idx, ok := ps.mapping[agentID]
	if !ok {
		return 0
	}
	a := ps.agents[idx]
	return ps.heuristic.Value(a.Color, a.Coord)
}

// GetRemainingCost returns maxCost minus the sum of costs of all agents
// NOT in exclude, i.e. the budget left over for the excluded agents.
// maxCost may be infinity-like (math.MaxInt) to mean "no bound".
func (ps *PathSet) GetRemainingCost(exclude map[int]bool, maxCost int) int {
	total := maxCost
	for _, a := range ps.agents {
		if exclude[a.Identifier] {
			continue
		}
		total -= ps.Cost(a.Identifier)
	}
	return total
}

// FindConflict returns the identifiers of the first pair of stored
// paths that conflict, or ok=false if the path set is conflict-free.
// Agents with no stored path yet are skipped.
func (ps *PathSet) FindConflict() (a, b int, ok bool) {
	for i := 0; i < len(ps.agents); i++ {
		if ps.paths[i] == nil {
			continue
		}
		for j := i + 1; j < len(ps.agents); j++ {
			if ps.paths[j] == nil {
				continue
			}
			if ps.paths[i].Conflicts(*ps.paths[j]) {
				return ps.agents[i].Identifier, ps.agents[j].Identifier, true
			}
		}
	}
	return 0, 0, false
}

// Paths returns every stored path, in the PathSet's agent order, each
// padded to the longest stored path's length by repeating its final
// cell. Any unsolved slot is omitted.
func (ps *PathSet) Paths() []Path {
	horizon := 0
	for _, p := range ps.paths {
		if p != nil && p.Len() > horizon {
			horizon = p.Len()
		}
	}
	out := make([]Path, 0, len(ps.paths))
	for _, p := range ps.paths {
		if p != nil {
			out = append(out, p.PadTo(horizon))
		}
	}
	return out
}
