// Package astar_test validates A* optimality against BFS, its FIFO tie-break,
// and the fail-closed handling of invalid endpoints.
package astar_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/mazetest"
	"github.com/katalvlaran/mazepath/search"
)

// AStarSuite exercises the A* implementation under various scenarios.
type AStarSuite struct {
	suite.Suite
}

func (s *AStarSuite) parse(maze string) *grid.Grid {
	g, err := grid.ParseString(maze)
	s.Require().NoError(err)

	return g
}

// TestFixtures verifies A* path length equals BFS path length on every maze.
func (s *AStarSuite) TestFixtures() {
	for _, f := range mazetest.Fixtures {
		s.Run(f.Name, func() {
			g := f.Grid(s.T())
			res := astar.Search(g, f.Start, f.End)
			if f.Shortest == 0 {
				mazetest.RequireNoPath(s.T(), res, search.StatusNoPath)
				return
			}
			mazetest.RequireValidPath(s.T(), g, res, f.Start, f.End)
			s.Equal(f.Shortest, res.Path.Len())
			s.Equal(bfs.Search(g, f.Start, f.End).Path.Len(), res.Path.Len())
		})
	}
}

// TestInvalidEndpoints ensures blocked or out-of-bounds endpoints fail closed.
func (s *AStarSuite) TestInvalidEndpoints() {
	g := mazetest.Fixtures[1].Grid(s.T())
	for _, tc := range mazetest.InvalidEndpoints {
		s.Run(tc.Name, func() {
			mazetest.RequireNoPath(s.T(), astar.Search(g, tc.Start, tc.End), search.StatusInvalidEndpoint)
		})
	}
}

// TestCenterBlocked checks the 3×3 scenario and the FIFO tie-break result.
func (s *AStarSuite) TestCenterBlocked() {
	g := s.parse("000\n010\n000")
	res := astar.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	s.Equal(grid.Path{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, res.Path)
	s.Equal(8, res.Expanded)
}

// TestTieBreakIsFIFO pins the optimal path chosen among many on an open field.
// Every monotone staircase has f = 6; FIFO ordering follows the first-pushed
// direction (right, since down is out of bounds) before turning up.
func (s *AStarSuite) TestTieBreakIsFIFO() {
	g := s.parse("0000\n0000\n0000\n0000")
	res := astar.Search(g, grid.Cell{Row: 3, Col: 0}, grid.Cell{Row: 0, Col: 3})
	s.Equal(grid.Path{
		{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
		{Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 0, Col: 3},
	}, res.Path)
	s.Equal(16, res.Expanded)
}

// TestSampleExpandsOnlyThePath shows the heuristic steering straight to the
// goal on the 10×10 sample: every claimed cell lies on the returned path.
func (s *AStarSuite) TestSampleExpandsOnlyThePath() {
	f := mazetest.Fixtures[6]
	res := astar.Search(f.Grid(s.T()), f.Start, f.End)
	s.Equal(19, res.Path.Len())
	s.Equal(19, res.Expanded)
}

// TestZeroHeuristic degrades to uniform-cost search and stays optimal.
func (s *AStarSuite) TestZeroHeuristic() {
	for _, f := range mazetest.Fixtures {
		g := f.Grid(s.T())
		res := astar.SearchWith(g, f.Start, f.End, nil)
		if f.Shortest == 0 {
			s.False(res.Found(), f.Name)
			continue
		}
		s.Equal(f.Shortest, res.Path.Len(), f.Name)
	}
}

// TestStartIsEnd returns the single-cell path immediately.
func (s *AStarSuite) TestStartIsEnd() {
	g := s.parse("00\n00")
	at := grid.Cell{Row: 1, Col: 0}
	res := astar.Search(g, at, at)
	s.Equal(grid.Path{at}, res.Path)
	s.Equal(1, res.Expanded)
}

// TestMaxExpansionsAndHooks counts hook calls against the budget.
func (s *AStarSuite) TestMaxExpansionsAndHooks() {
	g := s.parse("00000\n00000")
	var expanded []grid.Cell
	res := astar.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 4},
		search.WithMaxExpansions(2),
		search.WithOnExpand(func(c grid.Cell) { expanded = append(expanded, c) }),
	)
	mazetest.RequireNoPath(s.T(), res, search.StatusNoPath)
	s.Len(expanded, 2)
	s.Equal(grid.Cell{Row: 0, Col: 0}, expanded[0])
}

// TestIdempotent runs the same query twice.
func (s *AStarSuite) TestIdempotent() {
	f := mazetest.Fixtures[4]
	g := f.Grid(s.T())
	s.Equal(astar.Search(g, f.Start, f.End), astar.Search(g, f.Start, f.End))
}

// TestAStarSuite runs the A* test suite.
func TestAStarSuite(t *testing.T) {
	suite.Run(t, new(AStarSuite))
}
