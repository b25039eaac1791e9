// Package mazetest provides shared maze fixtures and path assertions for the
// strategy test suites.
package mazetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// Fixture is a named maze with endpoints and the expected shortest path
// length in cells (0 when no path exists).
type Fixture struct {
	Name     string
	Maze     string
	Start    grid.Cell
	End      grid.Cell
	Shortest int
}

// Grid parses f.Maze, failing the test on error.
func (f Fixture) Grid(tb testing.TB) *grid.Grid {
	tb.Helper()
	g, err := grid.ParseString(f.Maze)
	require.NoError(tb, err, "fixture %s", f.Name)

	return g
}

// Sample is the 10×10 maze with start (0,0) and end (9,9).
const Sample = `
0100001000
0101101010
0000100010
1110111010
0000000010
0111111010
0000001010
0111101010
0000100010
0110001000`

// Fixtures is the shared table of reachable and unreachable mazes.
var Fixtures = []Fixture{
	{
		Name:     "SingleCell",
		Maze:     "0",
		Start:    grid.Cell{Row: 0, Col: 0},
		End:      grid.Cell{Row: 0, Col: 0},
		Shortest: 1,
	},
	{
		Name:     "CenterBlocked3x3",
		Maze:     "000\n010\n000",
		Start:    grid.Cell{Row: 0, Col: 0},
		End:      grid.Cell{Row: 2, Col: 2},
		Shortest: 5,
	},
	{
		Name:     "Corridor",
		Maze:     "00000",
		Start:    grid.Cell{Row: 0, Col: 0},
		End:      grid.Cell{Row: 0, Col: 4},
		Shortest: 5,
	},
	{
		Name:     "OpenField",
		Maze:     "0000\n0000\n0000\n0000",
		Start:    grid.Cell{Row: 3, Col: 0},
		End:      grid.Cell{Row: 0, Col: 3},
		Shortest: 7,
	},
	{
		Name:     "Detour",
		Maze:     "00000\n11110\n00000\n01111\n00000",
		Start:    grid.Cell{Row: 0, Col: 0},
		End:      grid.Cell{Row: 4, Col: 4},
		Shortest: 17,
	},
	{
		Name:     "Loop",
		Maze:     "00000\n01110\n00000",
		Start:    grid.Cell{Row: 0, Col: 0},
		End:      grid.Cell{Row: 2, Col: 4},
		Shortest: 7,
	},
	{
		Name:     "Sample",
		Maze:     Sample,
		Start:    grid.Cell{Row: 0, Col: 0},
		End:      grid.Cell{Row: 9, Col: 9},
		Shortest: 19,
	},
	{
		Name:     "WallSplit",
		Maze:     "00100\n00100\n00100",
		Start:    grid.Cell{Row: 0, Col: 0},
		End:      grid.Cell{Row: 2, Col: 4},
		Shortest: 0,
	},
	{
		Name:     "Enclosed",
		Maze:     "00000\n01110\n01010\n01110\n00000",
		Start:    grid.Cell{Row: 0, Col: 0},
		End:      grid.Cell{Row: 2, Col: 2},
		Shortest: 0,
	},
}

// RequireValidPath asserts every path invariant: starts at start, ends at
// end, only passable cells, orthogonal steps, no repeats.
func RequireValidPath(tb testing.TB, g *grid.Grid, res search.Result, start, end grid.Cell) {
	tb.Helper()
	require.Equal(tb, search.StatusFound, res.Status, "expected a path from %v to %v", start, end)
	require.NoError(tb, res.Path.Validate(g, start, end))
}

// RequireNoPath asserts a failed result with the given status and no path.
func RequireNoPath(tb testing.TB, res search.Result, status search.Status) {
	tb.Helper()
	require.Equal(tb, status, res.Status)
	require.False(tb, res.Found())
	require.Nil(tb, res.Path)
}

// InvalidEndpoints lists (start, end) pairs that must be rejected on the
// CenterBlocked3x3 fixture.
var InvalidEndpoints = []struct {
	Name       string
	Start, End grid.Cell
}{
	{"StartBlocked", grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 2, Col: 2}},
	{"EndBlocked", grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1}},
	{"StartOutOfBounds", grid.Cell{Row: -1, Col: 0}, grid.Cell{Row: 2, Col: 2}},
	{"EndOutOfBounds", grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 3}},
	{"BothOutOfBounds", grid.Cell{Row: 9, Col: 9}, grid.Cell{Row: 9, Col: 9}},
}
