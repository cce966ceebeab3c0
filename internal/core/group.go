package core

import "sort"

// Group is a sorted, immutable tuple of agent identifiers that are
// solved jointly.
type Group struct {
	ids []int
}

// NewGroup builds a Group from agent identifiers, sorting a copy.
func NewGroup(ids []int) Group {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	return Group{ids: sorted}
}

// Len returns the number of agents in the group.
func (g Group) Len() int { return len(g.ids) }

// IDs returns the group's sorted agent identifiers. The caller must not
// mutate the returned slice.
func (g Group) IDs() []int { return g.ids }

// Combine merges g with other into a new, sorted Group.
func (g Group) Combine(other Group) Group {
	merged := make([]int, 0, len(g.ids)+len(other.ids))
	i, j := 0, 0
	for i < len(g.ids) && j < len(other.ids) {
		if g.ids[i] < other.ids[j] {
			merged = append(merged, g.ids[i])
			i++
		} else {
			merged = append(merged, other.ids[j])
			j++
		}
	}
	merged = append(merged, g.ids[i:]...)
	merged = append(merged, other.ids[j:]...)
	return Group{ids: merged}
}

// Groups tracks a partition of agent identifiers into disjoint Groups,
// with an identifier -> Group lookup for fast merging.
type Groups struct {
	groups  []Group
	byAgent map[int]int // agent id -> index into groups
}

// NewGroups builds a Groups partition from an initial set of disjoint
// groups.
func NewGroups(initial []Group) *Groups {
	gs := &Groups{
		groups:  append([]Group(nil), initial...),
		byAgent: make(map[int]int),
	}
	for i, g := range gs.groups {
		for _, id := range g.IDs() {
			gs.byAgent[id] = i
		}
	}
	return gs
}

// All returns the current list of groups. The caller must not mutate
// the returned slice.
func (g *Groups) All() []Group {
	return g.groups
}

// GroupOf returns the group currently containing agent id.
func (g *Groups) GroupOf(id int) Group {
	return g.groups[g.byAgent[id]]
}

// CombineAgents merges the groups containing a and b into one and
// returns the merged Group. A no-op (returns the existing group) if a
// and b are already in the same group.
func (g *Groups) CombineAgents(a, b int) Group {
	ia, ib := g.byAgent[a], g.byAgent[b]
	if ia == ib {
		return g.groups[ia]
	}
	ga, gb := g.groups[ia], g.groups[ib]
	merged := ga.Combine(gb)

	// Remove the higher index first so the lower index stays valid.
	hi, lo := ia, ib
	if hi < lo {
		hi, lo = lo, hi
	}
	g.groups = append(g.groups[:hi], g.groups[hi+1:]...)
	g.groups[lo] = merged

	for idx, grp := range g.groups {
		for _, id := range grp.IDs() {
			g.byAgent[id] = idx
		}
	}
	return merged
}
