// Package grid defines the Position type and sentinel errors
// for occupancy snapshots.
package grid

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unrecognized character in Parse input.
	ErrBadCell = errors.New("grid: unrecognized cell character")
)

// FreeValue is the cell value FromValues treats as free; anything ≥ 1 is occupied.
const FreeValue = 0

// Position identifies a grid cell by row and column.
// Positions one step outside the grid are legal transient values for
// waypoints routed around the border; they are never resting tile locations.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// At is shorthand for Position{Row: row, Col: col}.
func At(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Equal reports whether p and q address the same cell.
func (p Position) Equal(q Position) bool {
	return p.Row == q.Row && p.Col == q.Col
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

// Grid is an immutable occupancy matrix. A cell is occupied when it holds an
// unmatched tile. Dimensions are fixed at construction.
type Grid struct {
	rows, cols int
	cells      [][]bool
	occupied   int
}
