package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

// EPEAStar is the Enhanced Partial-Expansion A* joint-state search: a
// single-goal-assignment optimal solver bounded by a cost ceiling.
type EPEAStar struct {
	problem *MAPFProblem
	agents  []core.Agent
	maxCost int

	cat     *core.CAT
	exclude map[int]bool // agent identifiers to ignore in CAT lookups (this solve's own agents)

	arena []node
}

// NewEPEAStar constructs a solver for the given agents against problem,
// refusing to return any solution of cost >= maxCost. cat may be nil,
// in which case collisions are always zero (no tiebreak preference).
func NewEPEAStar(problem *MAPFProblem, agents []core.Agent, maxCost int, cat *core.CAT) *EPEAStar {
	if cat == nil {
		cat = core.EmptyCAT()
	}
	exclude := make(map[int]bool, len(agents))
	for _, a := range agents {
		exclude[a.Identifier] = true
	}
	return &EPEAStar{problem: problem, agents: agents, maxCost: maxCost, cat: cat, exclude: exclude}
}

// Solve runs the search to completion and returns the optimal
// conflict-free joint path set for this solver's agents, or ok=false
// if no solution exists under maxCost.
func (e *EPEAStar) Solve() (paths []core.Path, cost int, ok bool) {
	initialState := core.NewState(append([]core.Agent(nil), e.agents...))
	root := node{
		state:  initialState,
		cost:   0,
		heur:   e.problem.GetHeuristic(initialState),
		parent: -1,
	}
	root.value = root.cost + root.heur
	e.arena = append(e.arena, root)

	h := &nodeHeap{arena: &e.arena}
	heap.Init(h)
	heap.Push(h, 0)

	seen := map[string]bool{initialState.Key(): true}
	fullyExpanded := map[string]bool{}

	for h.Len() > 0 {
		idx := heap.Pop(h).(int)
		n := e.arena[idx]

		if n.value >= e.maxCost {
			return nil, 0, false
		}
		if fullyExpanded[n.state.Key()] {
			continue
		}
		if e.problem.IsSolved(n.state) {
			return e.reconstruct(idx)
		}

		children, nextValue := e.problem.Expand(n.state, n.cost, n.deltaF)
		for _, child := range children {
			key := child.state.Key()
			if key == n.state.Key() || seen[key] {
				continue
			}
			seen[key] = true
			childNode := node{
				state:      child.state,
				cost:       child.cost,
				heur:       e.problem.GetHeuristic(child.state),
				time:       n.time + 1,
				parent:     idx,
				collisions: e.collisions(child.state, n.time+1),
			}
			childNode.value = childNode.cost + childNode.heur
			e.arena = append(e.arena, childNode)
			h.arena = &e.arena
			heap.Push(h, len(e.arena)-1)
		}

		if nextValue == Infinite {
			fullyExpanded[n.state.Key()] = true
		} else if nextValue < e.maxCost {
			n.deltaF = nextValue
			n.value = n.cost + n.heur + n.deltaF
			e.arena[idx] = n
			heap.Push(h, idx)
		}
	}
	return nil, 0, false
}

// collisions sums the CAT overlap, across every agent in state, at
// timestep t — a soft tiebreaker that nudges the search away from
// paths that would crowd cells other groups are already using.
func (e *EPEAStar) collisions(state core.State, t int) int {
	total := 0
	for _, a := range state.Agents {
		total += e.cat.GetCAT(e.exclude, a.Coord, t)
	}
	return total
}

// reconstruct walks the parent chain from the solved node back to the
// root and converts it into one Path per agent.
func (e *EPEAStar) reconstruct(leafIdx int) ([]core.Path, int, bool) {
	var chain []int
	for idx := leafIdx; idx != -1; idx = e.arena[idx].parent {
		chain = append(chain, idx)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	n := len(e.arena[chain[0]].state.Agents)
	cells := make([][]core.Coordinate, n)
	for i := range cells {
		cells[i] = make([]core.Coordinate, 0, len(chain))
	}
	for _, idx := range chain {
		st := e.arena[idx].state
		for i, a := range st.Agents {
			cells[i] = append(cells[i], a.Coord)
		}
	}

	paths := make([]core.Path, n)
	for i, a := range e.arena[chain[0]].state.Agents {
		paths[i] = core.NewPath(cells[i], a.Identifier)
	}
	return paths, e.arena[leafIdx].cost, true
}
