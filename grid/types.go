package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadGlyph indicates a maze text contained an unknown cell character.
	ErrBadGlyph = errors.New("grid: unknown cell glyph")
)

// Sentinel errors reported by Path.Validate.
var (
	ErrPathEmpty       = errors.New("grid: path is empty")
	ErrPathEndpoints   = errors.New("grid: path does not run from start to end")
	ErrPathNotAdjacent = errors.New("grid: consecutive path cells are not orthogonally adjacent")
	ErrPathBlocked     = errors.New("grid: path crosses a blocked or out-of-bounds cell")
	ErrPathRepeat      = errors.New("grid: path visits a cell twice")
)

// Glyphs of the maze text format.
const (
	OpenGlyph = '0'
	WallGlyph = '1'
)

// Cell is a (Row, Col) coordinate. It is a comparable value type and is used
// directly as a map and set key.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Offsets is the neighbor exploration order: down, right, up, left.
var Offsets = [4]Cell{
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
}

// Grid is an immutable rectangular maze. open[r][c] is true when the cell at
// row r, column c can be walked through.
type Grid struct {
	rows, cols int
	open       [][]bool
}

// Path is an ordered route from a start cell to an end cell, both inclusive.
type Path []Cell
