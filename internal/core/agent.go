package core

// Agent is a single mover: its current cell, the color of goal it must
// reach, a stable per-problem identifier, and any cost deferred while
// waiting on a goal before leaving it again.
//
// Equality for state-deduplication purposes is structural over
// (Coord, Color) only — Identifier and WaitingCost are deliberately
// excluded, because two agents occupying the same cell with the same
// color are interchangeable for the purposes of the search frontier.
// State.Key() (state.go) encodes that rule; plain (==) comparison of two Agent
// values is NOT equivalent to that dedup notion of agent equality and
// must not be used for it.
type Agent struct {
	Coord       Coordinate
	Color       int
	Identifier  int
	WaitingCost int
}

// NewAgent creates an agent with zero waiting cost.
func NewAgent(coord Coordinate, color, identifier int) Agent {
	return Agent{Coord: coord, Color: color, Identifier: identifier}
}

// SameGoalState reports whether a and b are interchangeable for state
// deduplication: same position, same color.
func (a Agent) SameGoalState(b Agent) bool {
	return a.Coord == b.Coord && a.Color == b.Color
}

// MarkedLocation is a colored point: a goal or a start marker.
type MarkedLocation struct {
	X, Y  int
	Color int
}

// Coordinate returns the location as a Coordinate.
func (m MarkedLocation) Coordinate() Coordinate {
	return Coordinate{X: m.X, Y: m.Y}
}
