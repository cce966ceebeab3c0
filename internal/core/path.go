package core

// Path is one agent's ordered sequence of cells, one entry per
// timestep, plus the stable agent Identifier it belongs to.
type Path struct {
	Cells      []Coordinate
	Identifier int
}

// NewPath wraps a cell sequence for the given agent.
func NewPath(cells []Coordinate, identifier int) Path {
	return Path{Cells: cells, Identifier: identifier}
}

// Len returns the number of timesteps recorded in the path.
func (p Path) Len() int {
	return len(p.Cells)
}

// At returns the cell occupied at timestep t. Paths shorter than t are
// padded by repeating their final cell.
func (p Path) At(t int) Coordinate {
	if t < 0 {
		t = 0
	}
	if t >= len(p.Cells) {
		return p.Cells[len(p.Cells)-1]
	}
	return p.Cells[t]
}

// trailingStayLength is the longest suffix of identical cells equal to
// the path's last cell.
func (p Path) trailingStayLength() int {
	if len(p.Cells) == 0 {
		return 0
	}
	last := p.Cells[len(p.Cells)-1]
	n := 1
	for i := len(p.Cells) - 2; i >= 0 && p.Cells[i] == last; i-- {
		n++
	}
	return n
}

// Cost is the individual cost of this path: the number of timesteps
// until the agent arrives at and permanently stays on its final cell.
func (p Path) Cost() int {
	return len(p.Cells) - p.trailingStayLength()
}

// PadTo returns p with its cell sequence extended to length timesteps
// by repeating its final cell, or p unchanged if it is already that
// long or longer.
func (p Path) PadTo(length int) Path {
	if length <= len(p.Cells) || len(p.Cells) == 0 {
		return p
	}
	padded := make([]Coordinate, length)
	copy(padded, p.Cells)
	last := p.Cells[len(p.Cells)-1]
	for i := len(p.Cells); i < length; i++ {
		padded[i] = last
	}
	return Path{Cells: padded, Identifier: p.Identifier}
}

// Conflicts reports whether p and other violate the vertex or edge
// conflict rule at any timestep, with the shorter path padded by
// extending its last cell to infinity.
func (p Path) Conflicts(other Path) bool {
	horizon := max(p.Len(), other.Len())
	for t := 1; t < horizon; t++ {
		if p.At(t) == other.At(t) {
			return true // vertex conflict
		}
		if p.At(t) == other.At(t-1) && p.At(t-1) == other.At(t) {
			return true // edge conflict (swap)
		}
	}
	return false
}
