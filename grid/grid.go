package grid

// New constructs a Grid from a non-empty, rectangular 2D slice where true
// marks an open cell. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	open := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		open[r] = make([]bool, cols)
		copy(open[r], cells[r])
	}

	return &Grid{rows: rows, cols: cols, open: open}, nil
}

// MustNew is like New but panics on malformed input. Intended for literals
// in tests and examples.
func MustNew(cells [][]bool) *Grid {
	g, err := New(cells)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within [0,Rows) × [0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Passable reports whether c is in bounds and open. Every strategy consults
// it before treating a coordinate as explorable; a nil grid has no passable
// cells.
// Complexity: O(1).
func (g *Grid) Passable(c Cell) bool {
	if g == nil || !g.InBounds(c) {
		return false
	}

	return g.open[c.Row][c.Col]
}

// Neighbors returns the passable orthogonal neighbors of c in the fixed
// order down, right, up, left.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Offsets))
	for _, d := range Offsets {
		if n := c.Add(d); g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Cells returns a deep copy of the passability matrix.
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for r := range g.open {
		out[r] = make([]bool, g.cols)
		copy(out[r], g.open[r])
	}

	return out
}

// OpenCount returns how many cells are open.
func (g *Grid) OpenCount() int {
	n := 0
	for _, row := range g.open {
		for _, v := range row {
			if v {
				n++
			}
		}
	}

	return n
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. On a unit-cost orthogonal
// grid it never overestimates the remaining step count.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// index maps c to a row-major index: Row*cols + Col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// coordinate converts a row-major index back to a Cell.
func (g *Grid) coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}
