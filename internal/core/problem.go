package core

// Problem is the external input to the solver: a grid, the agents'
// starting positions, and their goals. |Starts| == |Goals|, and for
// every color the count of starts equals the count of goals of that
// color; the solver does not validate this (that is an
// ingestion-layer responsibility).
type Problem struct {
	Width, Height int
	Wall          [][]bool // wall[y][x], row-major
	Starts        []MarkedLocation
	Goals         []MarkedLocation
}

// NewProblem constructs a Problem from its raw fields.
func NewProblem(width, height int, wall [][]bool, starts, goals []MarkedLocation) *Problem {
	return &Problem{
		Width:  width,
		Height: height,
		Wall:   wall,
		Starts: starts,
		Goals:  goals,
	}
}

// Grid builds the Grid view of this problem's occupancy array.
func (p *Problem) Grid() *Grid {
	return NewGrid(p.Width, p.Height, p.Wall)
}

// Agents converts Starts into Agents with stable identifiers assigned
// by start index, matching the Goals slice's corresponding indices.
func (p *Problem) Agents() []Agent {
	agents := make([]Agent, len(p.Starts))
	for i, s := range p.Starts {
		agents[i] = NewAgent(s.Coordinate(), s.Color, i)
	}
	return agents
}

// ColorCounts tallies the number of goals (or starts) per color.
func ColorCounts(locations []MarkedLocation) map[int]int {
	counts := make(map[int]int)
	for _, l := range locations {
		counts[l.Color]++
	}
	return counts
}
