package algo

import (
	"sort"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

// PDBRow is one operator-selection-function choice point: the set of
// directions that share a Δf value at a given cell, plus that Δf.
type PDBRow struct {
	Directions []core.Direction
	DeltaF     int
}

// PDBTable is a cell's full, Δf-sorted, Δf-collapsed row list.
type PDBTable []PDBRow

// PDB (Pattern Database) holds, per color, a height x width table of
// PDBTables — the precomputed basis for EPEA*'s partial expansion.
type PDB struct {
	byColor map[int][][]PDBTable
}

// NewPDB builds the pattern database for every color present in
// heuristic.
func NewPDB(heuristic *Heuristic, grid *core.Grid, colors []int) *PDB {
	pdb := &PDB{byColor: make(map[int][][]PDBTable, len(colors))}
	for _, color := range colors {
		pdb.byColor[color] = buildColorPDB(color, grid, heuristic)
	}
	return pdb
}

func buildColorPDB(color int, grid *core.Grid, heuristic *Heuristic) [][]PDBTable {
	table := make([][]PDBTable, grid.Height)
	for y := 0; y < grid.Height; y++ {
		row := make([]PDBTable, grid.Width)
		for x := 0; x < grid.Width; x++ {
			h := heuristic.Value(color, core.Coordinate{X: x, Y: y})
			if h == Infinite {
				row[x] = PDBTable{}
				continue
			}
			row[x] = buildCellTable(color, x, y, h, grid, heuristic)
		}
		table[y] = row
	}
	return table
}

type expandedRow struct {
	dir    core.Direction
	deltaF int
}

// buildCellTable enumerates the five directions at (x, y), computes
// each one's Δf, sorts ascending, and collapses directions that share
// a Δf into one row. WAIT always appears with Δf = 1.
func buildCellTable(color, x, y, h int, grid *core.Grid, heuristic *Heuristic) PDBTable {
	here := core.Coordinate{X: x, Y: y}
	expanded := make([]expandedRow, 0, 5)
	for _, d := range core.Directions {
		n := here.Move(d)
		if !grid.TraversableCoord(n) {
			continue
		}
		nh := heuristic.Value(color, n)
		if nh == Infinite {
			continue
		}
		deltaF := 1 + nh - h
		expanded = append(expanded, expandedRow{dir: d, deltaF: deltaF})
	}
	expanded = append(expanded, expandedRow{dir: core.Wait, deltaF: 1})

	sort.SliceStable(expanded, func(i, j int) bool { return expanded[i].deltaF < expanded[j].deltaF })
	return collapse(expanded)
}

// collapse merges adjacent same-Δf rows into a single row with a
// unioned direction list; this is essential, since the Operator Finder
// treats a collapsed row as a single choice point.
func collapse(expanded []expandedRow) PDBTable {
	if len(expanded) == 0 {
		return PDBTable{}
	}
	table := make(PDBTable, 0, len(expanded))
	lastDeltaF := expanded[0].deltaF
	dirs := []core.Direction{expanded[0].dir}
	for _, e := range expanded[1:] {
		if e.deltaF == lastDeltaF {
			dirs = append(dirs, e.dir)
			continue
		}
		table = append(table, PDBRow{Directions: dirs, DeltaF: lastDeltaF})
		dirs = []core.Direction{e.dir}
		lastDeltaF = e.deltaF
	}
	table = append(table, PDBRow{Directions: dirs, DeltaF: lastDeltaF})
	return table
}

// Table returns the PDBTable for the given color and cell. The caller
// must only call this for a cell with finite heuristic; calling it for
// an unreachable cell returns an empty table, which is an invariant
// violation for callers expecting to expand a live agent.
func (p *PDB) Table(color, x, y int) PDBTable {
	rows, ok := p.byColor[color]
	if !ok {
		return PDBTable{}
	}
	if y < 0 || y >= len(rows) || x < 0 || x >= len(rows[y]) {
		return PDBTable{}
	}
	return rows[y][x]
}
