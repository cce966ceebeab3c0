package algo

import (
	"container/heap"
	"math/rand"
	"sort"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

// MatchingSolver resolves the overall MAPFM problem: when several goals
// share a color, it enumerates candidate agent-to-goal bijections and
// hands each one, restricted to a single concrete goal per agent, down
// to the joint MAPF solver.
type MatchingSolver struct {
	problem *core.Problem
	grid    *core.Grid

	// heuristic is keyed by domain color (nearest goal of the same
	// color); it only ever ranks or lower-bounds a goal assignment
	// before it's solved, where "which specific goal" doesn't matter
	// yet.
	heuristic *Heuristic

	// goalHeuristic and goalPDB are keyed by goal index rather than
	// domain color, one "color" per physical goal. Every trial solve
	// recolors its agents to the goal index the assignment gave them
	// and looks them up here, so OnGoal/GetHeuristic/PDB.Table resolve
	// to the one goal the assignment actually intends — never to some
	// other goal that merely shares the same domain color.
	goalHeuristic *Heuristic
	goalPDB       *PDB

	config SolverConfig
	stats  *StatisticTracker
	rng    *rand.Rand
}

// NewMatchingSolver precomputes the domain-color heuristic (used to
// rank assignments) and the goal-index heuristic/PDB (used to solve
// them, shared read-only by every goal assignment evaluated), then
// returns a solver configured by config.
func NewMatchingSolver(problem *core.Problem, config SolverConfig) *MatchingSolver {
	grid := problem.Grid()
	heuristic := NewHeuristic(grid, problem.Goals)

	indexedGoals := make([]core.MarkedLocation, len(problem.Goals))
	goalIndices := make([]int, len(problem.Goals))
	for i, g := range problem.Goals {
		indexedGoals[i] = core.MarkedLocation{X: g.X, Y: g.Y, Color: i}
		goalIndices[i] = i
	}
	goalHeuristic := NewHeuristic(grid, indexedGoals)

	return &MatchingSolver{
		problem:       problem,
		grid:          grid,
		heuristic:     heuristic,
		goalHeuristic: goalHeuristic,
		goalPDB:       NewPDB(goalHeuristic, grid, goalIndices),
		config:        config,
		stats:         NewStatisticTracker(),
		rng:           rand.New(rand.NewSource(1)),
	}
}

// Stats returns the accumulated run statistics.
func (m *MatchingSolver) Stats() *StatisticTracker { return m.stats }

// Solve dispatches to the configured algorithm variant and returns the
// best joint path set found, or ok=false if the problem is infeasible.
func (m *MatchingSolver) Solve() ([]core.Path, int, bool) {
	switch m.config.Algorithm {
	case HeuristicMatching:
		return m.heuristicSolve()
	case ExhaustiveMatchingSorted:
		return m.sortedSolve(false)
	case ExhaustiveMatchingSortedWithMatchingID:
		return m.sortedSolve(true)
	default:
		return m.defaultSolve()
	}
}

// defaultSolve evaluates every assignment in enumeration order, without
// pruning.
func (m *MatchingSolver) defaultSolve() ([]core.Path, int, bool) {
	assignments := m.generateAssignments()
	best := Infinite
	var bestPaths []core.Path
	found := false
	for _, a := range assignments {
		m.stats.RecordEvaluated()
		paths, cost, ok := m.solveAssignment(a, best)
		if ok && cost < best {
			best, bestPaths, found = cost, paths, true
		}
	}
	return bestPaths, best, found
}

// sortedSolve evaluates assignments through a bounded priority queue
// ordered by ascending initial heuristic: QueueLimit caps how many
// assignments are held and compared against each other at once, but
// every assignment is still eventually considered — the queue is
// continuously refilled from the remaining assignments as it drains,
// so a small QueueLimit narrows the evaluation order (favoring
// promising assignments sooner, so later ones can be pruned against a
// tighter best cost), not the set of assignments actually evaluated.
// withMatchingID additionally starts each assignment's Independence
// Detection solve from color-based groups instead of singletons.
func (m *MatchingSolver) sortedSolve(withMatchingID bool) ([]core.Path, int, bool) {
	assignments := m.generateAssignments()

	limit := len(assignments)
	if m.config.QueueLimit > 0 && m.config.QueueLimit < limit {
		limit = m.config.QueueLimit
	}
	if m.config.Shuffle && limit < len(assignments) {
		shuffleTiesByHeuristic(assignments, m.rng)
	}

	best := Infinite
	var bestPaths []core.Path
	found := false

	evaluate := func(a core.GoalAssignment) {
		if a.InitialHeuristic >= best {
			m.stats.RecordSkipped()
			return
		}
		m.stats.RecordEvaluated()
		paths, cost, ok := m.solveAssignmentVariant(a, best, withMatchingID)
		if ok && cost < best {
			best, bestPaths, found = cost, paths, true
		}
	}

	pq := &assignmentHeap{}
	next := 0
	fillQueue := func() {
		for pq.Len() < limit && next < len(assignments) {
			heap.Push(pq, assignments[next])
			next++
		}
	}
	fillQueue()

	for next < len(assignments) {
		candidate := assignments[next]
		next++
		if candidate.InitialHeuristic >= best {
			m.stats.RecordSkipped()
			continue
		}
		heap.Push(pq, candidate)
		evaluate(heap.Pop(pq).(core.GoalAssignment))
		fillQueue()
	}

	for pq.Len() > 0 {
		if (*pq)[0].InitialHeuristic >= best {
			for pq.Len() > 0 {
				heap.Pop(pq)
				m.stats.RecordSkipped()
			}
			break
		}
		evaluate(heap.Pop(pq).(core.GoalAssignment))
	}

	return bestPaths, best, found
}

// assignmentHeap is a min-heap of goal assignments ordered by ascending
// initial heuristic, the bounded priority queue sortedSolve streams
// assignments through.
type assignmentHeap []core.GoalAssignment

func (h assignmentHeap) Len() int           { return len(h) }
func (h assignmentHeap) Less(i, j int) bool { return h[i].InitialHeuristic < h[j].InitialHeuristic }
func (h assignmentHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *assignmentHeap) Push(x any)        { *h = append(*h, x.(core.GoalAssignment)) }
func (h *assignmentHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// heuristicSolve evaluates a single greedy nearest-goal assignment per
// color and returns whatever that one solve finds. No optimality
// guarantee — it's the fastest, least thorough variant.
func (m *MatchingSolver) heuristicSolve() ([]core.Path, int, bool) {
	a := m.greedyAssignment()
	m.stats.RecordEvaluated()
	return m.solveAssignment(a, Infinite)
}

// solveAssignment restricts the problem's goal set to exactly the
// goals named by assignment and solves it via Independence Detection
// (or a single joint EPEA* call when ID is disabled).
func (m *MatchingSolver) solveAssignment(assignment core.GoalAssignment, maxCost int) ([]core.Path, int, bool) {
	return m.solveAssignmentVariant(assignment, maxCost, false)
}

// solveAssignmentVariant is solveAssignment with the option to seed
// Independence Detection from color-grouped starting groups instead of
// singletons.
func (m *MatchingSolver) solveAssignmentVariant(assignment core.GoalAssignment, maxCost int, groupByColor bool) ([]core.Path, int, bool) {
	agents := m.recolorAgents(assignment)
	goals := make([]core.MarkedLocation, len(agents))
	for i, goalIdx := range assignment.GoalIDs {
		g := m.problem.Goals[goalIdx]
		goals[i] = core.MarkedLocation{X: g.X, Y: g.Y, Color: goalIdx}
	}
	mapfProblem := NewMAPFProblem(goals, m.goalPDB, m.goalHeuristic)

	if !m.config.IndependenceDetection {
		search := NewEPEAStar(mapfProblem, agents, maxCost, nil)
		return search.Solve()
	}

	id := NewIDSolver(mapfProblem, m.grid.Width, m.grid.Height).WithStats(m.stats)
	if !groupByColor {
		return id.Solve(agents, maxCost)
	}
	return id.SolveGrouped(agents, colorGroups(m.problem.Agents()), maxCost)
}

// recolorAgents returns the problem's agents with Color replaced by the
// index, in the problem's goal list, of the goal each was assigned — the "fresh
// per-assignment color identifier" that lets OnGoal and the
// goal-indexed heuristic/PDB resolve to that one specific goal instead
// of any other goal sharing the agent's domain color.
func (m *MatchingSolver) recolorAgents(assignment core.GoalAssignment) []core.Agent {
	agents := m.problem.Agents()
	recolored := make([]core.Agent, len(agents))
	for i, a := range agents {
		recolored[i] = core.Agent{
			Coord:       a.Coord,
			Color:       assignment.GoalIDs[i],
			Identifier:  a.Identifier,
			WaitingCost: a.WaitingCost,
		}
	}
	return recolored
}

// colorGroups partitions agents into one Group per color — the initial
// partition a matching-level ID solve starts from, since same-colored
// agents share a goal region and so are the most likely to conflict.
func colorGroups(agents []core.Agent) []core.Group {
	byColor := make(map[int][]int)
	colors := make([]int, 0)
	for _, a := range agents {
		if _, ok := byColor[a.Color]; !ok {
			colors = append(colors, a.Color)
		}
		byColor[a.Color] = append(byColor[a.Color], a.Identifier)
	}
	sort.Ints(colors)
	groups := make([]core.Group, len(colors))
	for i, c := range colors {
		groups[i] = core.NewGroup(byColor[c])
	}
	return groups
}

// generateAssignments enumerates every agent-to-goal bijection that
// respects color: per color, every permutation of that color's goals
// over that color's agents, combined across colors by Cartesian
// product. Each assignment's InitialHeuristic sums, over agents, the
// precomputed wall-aware distance from that agent's start to the
// nearest goal of its color — a lower bound on the true path cost of
// any bijection pairing that agent with a same-color goal, including
// this one.
func (m *MatchingSolver) generateAssignments() []core.GoalAssignment {
	agents := m.problem.Agents()
	byColor := make(map[int][]int)      // color -> agent indices
	goalsByColor := make(map[int][]int) // color -> goal indices
	for i, a := range agents {
		byColor[a.Color] = append(byColor[a.Color], i)
	}
	for i, g := range m.problem.Goals {
		goalsByColor[g.Color] = append(goalsByColor[g.Color], i)
	}

	colors := make([]int, 0, len(byColor))
	for c := range byColor {
		colors = append(colors, c)
	}
	sort.Ints(colors)

	perColorAssignments := make([][][]int, len(colors)) // perColorAssignments[c] = list of goal-index tuples, one per agent slot of that color
	for ci, color := range colors {
		perColorAssignments[ci] = permutations(goalsByColor[color])
	}

	goalIDs := make([]int, len(agents))
	var results []core.GoalAssignment
	var recurse func(ci int)
	recurse = func(ci int) {
		if ci == len(colors) {
			assigned := append([]int(nil), goalIDs...)
			results = append(results, core.NewGoalAssignment(assigned, m.initialHeuristic(agents)))
			return
		}
		color := colors[ci]
		agentIdxs := byColor[color]
		for _, perm := range perColorAssignments[ci] {
			for i, agentIdx := range agentIdxs {
				goalIDs[agentIdx] = perm[i]
			}
			recurse(ci + 1)
		}
	}
	recurse(0)
	return results
}

// greedyAssignment picks, per color, goals for agents in agent order by
// repeatedly taking the nearest unclaimed goal of that color.
func (m *MatchingSolver) greedyAssignment() core.GoalAssignment {
	agents := m.problem.Agents()
	goalsByColor := make(map[int][]int)
	for i, g := range m.problem.Goals {
		goalsByColor[g.Color] = append(goalsByColor[g.Color], i)
	}

	goalIDs := make([]int, len(agents))
	for _, a := range agents {
		candidates := goalsByColor[a.Color]
		best, bestDist := -1, Infinite
		for _, gi := range candidates {
			g := m.problem.Goals[gi]
			d := manhattan(a.Coord, core.Coordinate{X: g.X, Y: g.Y})
			if d < bestDist {
				best, bestDist = gi, d
			}
		}
		goalIDs[a.Identifier] = best
		goalsByColor[a.Color] = removeValue(candidates, best)
	}
	return core.NewGoalAssignment(goalIDs, m.initialHeuristic(agents))
}

// initialHeuristic sums, per agent, the precomputed distance from its
// start to the nearest goal of its own color. Path costs count moves
// only (an agent already on its goal costs 0), and every agent in a
// color-respecting bijection is paired with a same-color goal, so this
// is a valid lower bound on that bijection's true cost regardless of
// which specific same-color goal it ends up assigned.
func (m *MatchingSolver) initialHeuristic(agents []core.Agent) int {
	total := 0
	for _, a := range agents {
		total += m.heuristic.Value(a.Color, a.Coord)
	}
	return total
}

func manhattan(a, b core.Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func removeValue(xs []int, v int) []int {
	out := make([]int, 0, len(xs))
	removed := false
	for _, x := range xs {
		if !removed && x == v {
			removed = true
			continue
		}
		out = append(out, x)
	}
	return out
}

// permutations returns every ordering of xs.
func permutations(xs []int) [][]int {
	if len(xs) == 0 {
		return [][]int{{}}
	}
	var results [][]int
	for i := range xs {
		rest := make([]int, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, p := range permutations(rest) {
			results = append(results, append([]int{xs[i]}, p...))
		}
	}
	return results
}

// shuffleTiesByHeuristic randomly reorders assignments before
// sortedSolve streams them through its bounded priority queue, so
// assignments sharing an InitialHeuristic don't always enter the queue
// in the same enumeration order — guards against a QueueLimit window
// consistently favoring the same subset of ties.
func shuffleTiesByHeuristic(assignments []core.GoalAssignment, rng *rand.Rand) {
	rng.Shuffle(len(assignments), func(i, j int) {
		assignments[i], assignments[j] = assignments[j], assignments[i]
	})
}
