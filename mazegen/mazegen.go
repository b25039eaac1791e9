package mazegen

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/mazepath/grid"
)

// MinSize is the smallest side length Generate produces.
const MinSize = 3

// Config controls maze generation.
type Config struct {
	// Rows and Cols are rounded down to the nearest odd number, min MinSize.
	Rows, Cols int

	// Braiding in [0,1]: 0 yields a perfect maze (exactly one route between
	// any two cells), higher values remove dead ends and add cycles.
	Braiding float64

	// Seed fixes the random sequence; 0 picks one from the clock.
	Seed int64
}

// Maze is a generated grid with its suggested endpoints: the top-left and
// bottom-right rooms.
type Maze struct {
	Grid  *grid.Grid
	Start grid.Cell
	End   grid.Cell
}

// jumps move from one room to the next; the wall between sits at half the offset.
var jumps = [4]grid.Cell{{Row: 2, Col: 0}, {Row: 0, Col: 2}, {Row: -2, Col: 0}, {Row: 0, Col: -2}}

// Generate builds a maze per cfg. Every open cell is reachable from Start.
func Generate(cfg Config) Maze {
	rows, cols := oddAtLeast(cfg.Rows), oddAtLeast(cfg.Cols)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	c := newCanvas(rows, cols)
	start := grid.Cell{Row: 1, Col: 1}
	end := grid.Cell{Row: rows - 2, Col: cols - 2}

	c.carve(start, rng)
	if cfg.Braiding > 0 {
		c.braid(cfg.Braiding, rng)
	}

	return Maze{Grid: grid.MustNew(c.open), Start: start, End: end}
}

// canvas is the mutable open/wall matrix during generation.
type canvas struct {
	rows, cols int
	open       [][]bool
}

func newCanvas(rows, cols int) *canvas {
	open := make([][]bool, rows)
	for r := range open {
		open[r] = make([]bool, cols)
	}

	return &canvas{rows: rows, cols: cols, open: open}
}

func (c *canvas) isOpen(p grid.Cell) bool {
	return p.Row >= 0 && p.Row < c.rows && p.Col >= 0 && p.Col < c.cols && c.open[p.Row][p.Col]
}

func (c *canvas) set(p grid.Cell) { c.open[p.Row][p.Col] = true }

// interior reports whether p is a room strictly inside the outer wall.
func (c *canvas) interior(p grid.Cell) bool {
	return p.Row > 0 && p.Row < c.rows-1 && p.Col > 0 && p.Col < c.cols-1
}

// carve runs the recursive backtracker from start, producing a uniform
// spanning tree over the rooms.
func (c *canvas) carve(start grid.Cell, rng *rand.Rand) {
	trail := stack.New[grid.Cell]()
	trail.Push(start)
	c.set(start)

	candidates := make([]grid.Cell, 0, len(jumps))
	for trail.Size() > 0 {
		cur := trail.Peek()

		candidates = candidates[:0]
		for _, d := range jumps {
			next := cur.Add(d)
			if c.interior(next) && !c.open[next.Row][next.Col] {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			trail.Pop()
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		c.set(cur.Add(half(d)))
		next := cur.Add(d)
		c.set(next)
		trail.Push(next)
	}
}

// braid visits each dead-end room and, with probability p, knocks out one
// wall towards an open neighbour room.
func (c *canvas) braid(p float64, rng *rand.Rand) {
	walls := make([]grid.Cell, 0, len(jumps))
	for r := 1; r < c.rows-1; r += 2 {
		for col := 1; col < c.cols-1; col += 2 {
			room := grid.Cell{Row: r, Col: col}
			if !c.open[r][col] || c.exits(room) != 1 || rng.Float64() >= p {
				continue
			}

			walls = walls[:0]
			for _, d := range jumps {
				wall := room.Add(half(d))
				if c.isOpen(room.Add(d)) && !c.isOpen(wall) && c.safeToOpen(wall) {
					walls = append(walls, wall)
				}
			}
			if len(walls) > 0 {
				c.set(walls[rng.Intn(len(walls))])
			}
		}
	}
}

func (c *canvas) exits(p grid.Cell) int {
	n := 0
	for _, d := range grid.Offsets {
		if c.isOpen(p.Add(d)) {
			n++
		}
	}

	return n
}

// safeToOpen reports whether opening w keeps the maze free of 2×2 open
// plazas and isolated wall pillars.
func (c *canvas) safeToOpen(w grid.Cell) bool {
	at := func(dr, dc int) bool { return c.isOpen(grid.Cell{Row: w.Row + dr, Col: w.Col + dc}) }

	// the four 2×2 squares containing w
	if (at(-1, -1) && at(-1, 0) && at(0, -1)) ||
		(at(-1, 0) && at(-1, 1) && at(0, 1)) ||
		(at(0, -1) && at(1, -1) && at(1, 0)) ||
		(at(0, 1) && at(1, 0) && at(1, 1)) {
		return false
	}

	for _, d := range grid.Offsets {
		nb := w.Add(d)
		if nb.Row < 0 || nb.Row >= c.rows || nb.Col < 0 || nb.Col >= c.cols || c.open[nb.Row][nb.Col] {
			continue
		}
		walls := 0
		for _, d2 := range grid.Offsets {
			x := nb.Add(d2)
			if x == w || x.Row < 0 || x.Row >= c.rows || x.Col < 0 || x.Col >= c.cols {
				continue
			}
			if !c.open[x.Row][x.Col] {
				walls++
			}
		}
		if walls == 0 {
			return false
		}
	}

	return true
}

func half(d grid.Cell) grid.Cell { return grid.Cell{Row: d.Row / 2, Col: d.Col / 2} }

func oddAtLeast(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n%2 == 0 {
		return n - 1
	}

	return n
}
