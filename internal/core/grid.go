package core

// Grid is a static 4-connected rectangular occupancy map. It is built
// once per Problem and never mutated afterward; Traversable and
// Neighbors are its only responsibilities.
type Grid struct {
	Width, Height int
	// cells is stored row-major (cells[y][x]); true means wall.
	cells [][]bool
}

// NewGrid builds a Grid from a height x width occupancy array, where
// wall[y][x] is true for an obstacle cell.
func NewGrid(width, height int, wall [][]bool) *Grid {
	cells := make([][]bool, height)
	for y := 0; y < height; y++ {
		row := make([]bool, width)
		if y < len(wall) {
			copy(row, wall[y])
		}
		cells[y] = row
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds reports whether (x, y) lies within the grid extent.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Traversable reports whether (x, y) is in-bounds and not a wall.
func (g *Grid) Traversable(x, y int) bool {
	return g.InBounds(x, y) && !g.cells[y][x]
}

// TraversableCoord is the Coordinate-typed form of Traversable.
func (g *Grid) TraversableCoord(c Coordinate) bool {
	return g.Traversable(c.X, c.Y)
}

// Neighbors returns the traversable cells reachable from pos in one
// step, in fixed North/East/South/West order.
func (g *Grid) Neighbors(pos Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, 4)
	for _, d := range Directions {
		n := pos.Move(d)
		if g.TraversableCoord(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
