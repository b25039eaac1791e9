package server

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/solver"
)

// SolveRequest is the POST /api/solve body. Every field is optional:
// Maze defaults to the server's maze, Start to (0,0), End to the
// bottom-right cell, Algorithm to all strategies.
type SolveRequest struct {
	Maze      []string `json:"maze"`
	Start     *[2]int  `json:"start"`
	End       *[2]int  `json:"end"`
	Algorithm string   `json:"algorithm"`
}

// SolveResponse carries one result per strategy run.
type SolveResponse struct {
	ID      uuid.UUID     `json:"id"`
	Rows    int           `json:"rows"`
	Cols    int           `json:"cols"`
	Start   [2]int        `json:"start"`
	End     [2]int        `json:"end"`
	Results []SolveResult `json:"results"`
}

// SolveResult is the JSON form of a solver.Report.
type SolveResult struct {
	Algorithm       string   `json:"algorithm"`
	Found           bool     `json:"found"`
	Status          string   `json:"status"`
	Path            [][2]int `json:"path"`
	Length          int      `json:"length"`
	Expanded        int      `json:"expanded"`
	ExecutionTimeMs float64  `json:"executionTimeMs"`
}

// AlgorithmsResponse lists the accepted algorithm names.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func pair(c grid.Cell) [2]int { return [2]int{c.Row, c.Col} }

func cellOf(p *[2]int, def grid.Cell) grid.Cell {
	if p == nil {
		return def
	}

	return grid.Cell{Row: p[0], Col: p[1]}
}

func resultOf(r solver.Report) SolveResult {
	path := make([][2]int, 0, len(r.Path))
	for _, c := range r.Path {
		path = append(path, pair(c))
	}

	return SolveResult{
		Algorithm:       r.Strategy.String(),
		Found:           r.Found(),
		Status:          r.Status.String(),
		Path:            path,
		Length:          r.Length,
		Expanded:        r.Expanded,
		ExecutionTimeMs: r.Elapsed.Seconds() * 1000,
	}
}
