package core

import "strconv"

// State is an immutable joint position: one Agent per member of the
// enclosing group, in a fixed order. Hash/equality is structural over
// the tuple, using each Agent's (Coord, Color) only.
type State struct {
	Agents []Agent
}

// NewState builds a State from the given agents, in order.
func NewState(agents []Agent) State {
	return State{Agents: agents}
}

// Key returns a comparable string uniquely identifying this state for
// the purposes of search-frontier deduplication: it encodes exactly
// (Coord, Color) per agent slot, in order, and nothing else, matching
// Agent's state-dedup equality rule.
func (s State) Key() string {
	// Each component is written with a separator that cannot appear in
	// an integer, so no two distinct tuples can collide.
	buf := make([]byte, 0, len(s.Agents)*12)
	for _, a := range s.Agents {
		buf = strconv.AppendInt(buf, int64(a.Coord.X), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(a.Coord.Y), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(a.Color), 10)
		buf = append(buf, ';')
	}
	return string(buf)
}
