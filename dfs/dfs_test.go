package dfs_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/mazetest"
	"github.com/katalvlaran/mazepath/search"
)

func cells(pairs ...int) grid.Path {
	p := make(grid.Path, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		p = append(p, grid.Cell{Row: pairs[i], Col: pairs[i+1]})
	}

	return p
}

// TestSearch_Fixtures checks validity on every shared maze and that DFS is
// never shorter than BFS.
func TestSearch_Fixtures(t *testing.T) {
	for _, f := range mazetest.Fixtures {
		t.Run(f.Name, func(t *testing.T) {
			g := f.Grid(t)
			res := dfs.Search(g, f.Start, f.End)
			if f.Shortest == 0 {
				mazetest.RequireNoPath(t, res, search.StatusNoPath)
				return
			}
			mazetest.RequireValidPath(t, g, res, f.Start, f.End)
			require.GreaterOrEqual(t, res.Path.Len(), f.Shortest)
			require.GreaterOrEqual(t, res.Path.Len(), bfs.Search(g, f.Start, f.End).Path.Len())
		})
	}
}

// TestSearch_InvalidEndpoints ensures blocked or out-of-bounds endpoints fail closed.
func TestSearch_InvalidEndpoints(t *testing.T) {
	g := mazetest.Fixtures[1].Grid(t)
	for _, tc := range mazetest.InvalidEndpoints {
		t.Run(tc.Name, func(t *testing.T) {
			mazetest.RequireNoPath(t, dfs.Search(g, tc.Start, tc.End), search.StatusInvalidEndpoint)
		})
	}
}

// TestSearch_CenterBlocked pins the left-first bias: the last pushed
// neighbor ("left", then "up", then "right") is explored first.
func TestSearch_CenterBlocked(t *testing.T) {
	g, _ := grid.ParseString("000\n010\n000")
	res := dfs.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	if want := cells(0, 0, 0, 1, 0, 2, 1, 2, 2, 2); !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Expanded != 5 {
		t.Errorf("Expanded = %d; want 5", res.Expanded)
	}
}

// TestSearch_MarkOnPop pins the mark-on-pop behavior on an open 3×3 grid.
// Marking on push would return the 5-cell path along the top and right
// edges; marking on pop lets the duplicate (1,1) entry pushed from (1,2)
// win, producing a 9-cell snake.
func TestSearch_MarkOnPop(t *testing.T) {
	g, _ := grid.ParseString("000\n000\n000")
	var pushes int
	res := dfs.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2},
		search.WithOnFrontier(func(grid.Cell) { pushes++ }),
	)
	want := cells(0, 0, 0, 1, 0, 2, 1, 2, 1, 1, 1, 0, 2, 0, 2, 1, 2, 2)
	if !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Expanded != 9 {
		t.Errorf("Expanded = %d; want 9", res.Expanded)
	}
	if pushes != 13 {
		t.Errorf("frontier pushes = %d; want 13", pushes)
	}
}

// TestSearch_SampleLongerThanShortest shows DFS returning a valid but
// non-optimal route on the 10×10 sample maze.
func TestSearch_SampleLongerThanShortest(t *testing.T) {
	f := mazetest.Fixtures[6]
	g := f.Grid(t)
	res := dfs.Search(g, f.Start, f.End)
	mazetest.RequireValidPath(t, g, res, f.Start, f.End)
	require.Equal(t, 27, res.Path.Len())
	require.Equal(t, 27, res.Expanded)
}

// TestSearch_StartIsEnd returns the single-cell path.
func TestSearch_StartIsEnd(t *testing.T) {
	g, _ := grid.ParseString("0")
	res := dfs.Search(g, grid.Cell{}, grid.Cell{})
	require.Equal(t, grid.Path{{}}, res.Path)
	require.Equal(t, search.StatusFound, res.Status)
}

// TestSearch_MaxExpansions stops after the budget is spent.
func TestSearch_MaxExpansions(t *testing.T) {
	g, _ := grid.ParseString("00000")
	res := dfs.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 4}, search.WithMaxExpansions(3))
	mazetest.RequireNoPath(t, res, search.StatusNoPath)
	require.Equal(t, 3, res.Expanded)
}

// TestSearch_IdempotentAndConcurrent runs the same query repeatedly, in
// parallel, over one shared grid.
func TestSearch_IdempotentAndConcurrent(t *testing.T) {
	f := mazetest.Fixtures[6]
	g := f.Grid(t)
	want := dfs.Search(g, f.Start, f.End)

	var wg sync.WaitGroup
	results := make([]search.Result, 6)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = dfs.Search(g, f.Start, f.End)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Equal(t, want, got)
	}
}
