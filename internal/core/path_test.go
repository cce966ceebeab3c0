package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathCostDiscountsTrailingStay(t *testing.T) {
	p := NewPath([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 0}}, 1)
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 2, p.Cost())
}

func TestPathAtPadsWithFinalCell(t *testing.T) {
	p := NewPath([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
	assert.Equal(t, Coordinate{X: 1, Y: 0}, p.At(5))
}

func TestPathVertexConflict(t *testing.T) {
	a := NewPath([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
	b := NewPath([]Coordinate{{X: 2, Y: 0}, {X: 1, Y: 0}}, 2)
	assert.True(t, a.Conflicts(b))
}

func TestPathEdgeConflict(t *testing.T) {
	a := NewPath([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
	b := NewPath([]Coordinate{{X: 1, Y: 0}, {X: 0, Y: 0}}, 2)
	assert.True(t, a.Conflicts(b))
}

func TestPathNoConflict(t *testing.T) {
	a := NewPath([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
	b := NewPath([]Coordinate{{X: 0, Y: 5}, {X: 1, Y: 5}}, 2)
	assert.False(t, a.Conflicts(b))
}

func TestPathPadToRepeatsFinalCell(t *testing.T) {
	p := NewPath([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, 3)
	padded := p.PadTo(5)
	assert.Equal(t, 3, padded.Identifier)
	assert.Equal(t, []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}}, padded.Cells)
}

func TestPathPadToLeavesLongerOrEqualPathsUnchanged(t *testing.T) {
	p := NewPath([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, 1)
	assert.Equal(t, p, p.PadTo(3))
	assert.Equal(t, p, p.PadTo(1))
}

func TestPathPadToLeavesEmptyPathUnchanged(t *testing.T) {
	p := NewPath(nil, 1)
	assert.Equal(t, p, p.PadTo(4))
}
