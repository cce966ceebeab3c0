package algo

import "github.com/elektrokombinacija/mapfm-epea/internal/core"

// MAPFProblem bundles everything EPEA* needs that is specific to the
// MAPF(M) domain: the goal test, the SIC heuristic, and joint-state
// expansion through the PDB-backed operator finder.
type MAPFProblem struct {
	Goals     []core.MarkedLocation
	PDB       *PDB
	Heuristic *Heuristic
}

// NewMAPFProblem builds a MAPFProblem over a fixed goal set.
func NewMAPFProblem(goals []core.MarkedLocation, pdb *PDB, heuristic *Heuristic) *MAPFProblem {
	return &MAPFProblem{Goals: goals, PDB: pdb, Heuristic: heuristic}
}

// OnGoal reports whether agent currently sits on a goal of its own
// color.
func (p *MAPFProblem) OnGoal(agent core.Agent) bool {
	for _, g := range p.Goals {
		if g.X == agent.Coord.X && g.Y == agent.Coord.Y && g.Color == agent.Color {
			return true
		}
	}
	return false
}

// IsSolved reports whether every agent in state is on a matching goal.
func (p *MAPFProblem) IsSolved(state core.State) bool {
	for _, a := range state.Agents {
		if !p.OnGoal(a) {
			return false
		}
	}
	return true
}

// GetHeuristic is the SIC heuristic for state: the sum, over agents, of
// the precomputed distance from its cell to the nearest goal of its
// color.
func (p *MAPFProblem) GetHeuristic(state core.State) int {
	total := 0
	for _, a := range state.Agents {
		total += p.Heuristic.Value(a.Color, a.Coord)
	}
	return total
}

// childMove is one concrete joint child: the resulting state plus the
// additional cost incurred by the move, relative to the parent's cost.
type childMove struct {
	state core.State
	cost  int
}

// Expand runs the operator finder for target Δf v against the
// parent's per-agent PDB rows, builds every joint child, and filters
// out vertex/edge conflicts. It returns the surviving
// children and the next Δf threshold for the parent (Infinite if the
// parent is now fully expanded).
func (p *MAPFProblem) Expand(parentState core.State, parentCost, v int) ([]childMove, int) {
	rows := make([]PDBTable, len(parentState.Agents))
	for i, a := range parentState.Agents {
		rows[i] = p.PDB.Table(a.Color, a.Coord.X, a.Coord.Y)
		if len(rows[i]) == 0 {
			panic("mapfproblem: empty PDB row at a cell with finite heuristic")
		}
	}

	finder := newOperatorFinder(v, rows)
	operators, nextValue := finder.find()
	directionTuples := expandOperators(operators)

	children := make([]childMove, 0, len(directionTuples))
	for _, tuple := range directionTuples {
		childState, cost := p.getChild(parentState, parentCost, tuple)
		if p.conflictFree(parentState, childState) {
			children = append(children, childMove{state: childState, cost: cost})
		}
	}
	return children, nextValue
}

// getChild applies one joint direction tuple to the parent state,
// computing each agent's new position and the cost/waiting-cost
// transition: moving costs 1, waiting off-goal costs 1, and waiting on
// goal is free until the agent's next real move, at which point its
// accumulated free waiting time is finally charged.
func (p *MAPFProblem) getChild(parent core.State, parentCost int, tuple []core.Direction) (core.State, int) {
	agents := make([]core.Agent, len(parent.Agents))
	cost := parentCost
	for i, agent := range parent.Agents {
		waitingCost := 0
		if p.OnGoal(agent) {
			if tuple[i] != core.Wait {
				cost += agent.WaitingCost + 1
			} else {
				waitingCost = agent.WaitingCost + 1
			}
		} else {
			cost++
		}
		agents[i] = core.Agent{
			Coord:       agent.Coord.Move(tuple[i]),
			Color:       agent.Color,
			Identifier:  agent.Identifier,
			WaitingCost: waitingCost,
		}
	}
	return core.NewState(agents), cost
}

// conflictFree rejects a child with a vertex conflict (two agents share
// a cell) or an edge conflict (two agents swap cells) relative to the
// parent state.
func (p *MAPFProblem) conflictFree(parent, child core.State) bool {
	seen := make(map[core.Coordinate]bool, len(child.Agents))
	for i, a := range child.Agents {
		if seen[a.Coord] {
			return false
		}
		seen[a.Coord] = true

		for j := i + 1; j < len(parent.Agents); j++ {
			if child.Agents[i].Coord == parent.Agents[j].Coord && child.Agents[j].Coord == parent.Agents[i].Coord {
				return false
			}
		}
	}
	return true
}
