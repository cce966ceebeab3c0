package core

// cellEntry is a single occupancy record: agent identifier + timestep.
type cellEntry struct {
	agentID int
	t       int
}

// CAT (Collision Avoidance Table) is a soft conflict tiebreaker: a
// height x width table, each cell holding the multiset of
// (agentID, timestep) pairs of paths currently registered with
// AddPath. It never blocks a move, only counts overlap, feeding the
// node's collisions ordering tiebreaker.
type CAT struct {
	width, height int
	cells         [][]map[int][]int // cells[y][x][t] -> list of agent ids at that cell/time
	endedAt       map[int]Coordinate // agent id -> final cell, for agents whose path has ended
	endTime       map[int]int        // agent id -> end timestep (path.Len()-1)
	active        bool
}

// NewCAT creates an active CAT sized to the grid.
func NewCAT(width, height int) *CAT {
	cells := make([][]map[int][]int, height)
	for y := range cells {
		row := make([]map[int][]int, width)
		for x := range row {
			row[x] = make(map[int][]int)
		}
		cells[y] = row
	}
	return &CAT{
		width:   width,
		height:  height,
		cells:   cells,
		endedAt: make(map[int]Coordinate),
		endTime: make(map[int]int),
		active:  true,
	}
}

// EmptyCAT returns an inactive CAT: AddPath/RemovePath are no-ops and
// GetCAT always returns zero. Used when EPEA* is given no CAT (e.g. a
// joint solve with Independence Detection disabled, where there are no
// other groups' paths to avoid).
func EmptyCAT() *CAT {
	return &CAT{active: false}
}

// AddPath registers path's occupancy in the table.
func (c *CAT) AddPath(path *Path) {
	if !c.active || path == nil {
		return
	}
	for t, cell := range path.Cells {
		c.cells[cell.Y][cell.X][t] = append(c.cells[cell.Y][cell.X][t], path.Identifier)
	}
	c.endedAt[path.Identifier] = path.Cells[len(path.Cells)-1]
	c.endTime[path.Identifier] = len(path.Cells) - 1
}

// RemovePath un-registers path's occupancy, inverting AddPath.
func (c *CAT) RemovePath(path *Path) {
	if !c.active || path == nil {
		return
	}
	for t, cell := range path.Cells {
		ids := c.cells[cell.Y][cell.X][t]
		for i, id := range ids {
			if id == path.Identifier {
				c.cells[cell.Y][cell.X][t] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
	delete(c.endedAt, path.Identifier)
	delete(c.endTime, path.Identifier)
}

// GetCAT returns the number of registered (agentID, t) entries at coord
// whose agentID is not in exclude, plus the number of ended paths whose
// final cell is coord and whose end time is strictly before t.
func (c *CAT) GetCAT(exclude map[int]bool, coord Coordinate, t int) int {
	if !c.active {
		return 0
	}
	count := 0
	for _, id := range c.cells[coord.Y][coord.X][t] {
		if !exclude[id] {
			count++
		}
	}
	for id, cell := range c.endedAt {
		if exclude[id] {
			continue
		}
		if cell == coord && c.endTime[id] < t {
			count++
		}
	}
	return count
}
