package search

import (
	"github.com/katalvlaran/mazepath/grid"
)

// Status classifies how a search ended.
type Status int

const (
	// StatusNoPath means the frontier emptied (or the expansion budget ran
	// out) without reaching the end cell.
	StatusNoPath Status = iota
	// StatusFound means Result.Path holds a route from start to end.
	StatusFound
	// StatusInvalidEndpoint means start or end is out of bounds or blocked.
	StatusInvalidEndpoint
)

// String returns a lower-case name for s.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no_path"
	case StatusInvalidEndpoint:
		return "invalid_endpoint"
	default:
		return "unknown"
	}
}

// Result is the outcome of one search.
//   - Path: start..end inclusive when Status == StatusFound, nil otherwise.
//   - Expanded: how many cells were claimed (popped and marked visited).
type Result struct {
	Path     grid.Path
	Status   Status
	Expanded int
}

// Found reports whether the search produced a path.
func (r Result) Found() bool { return r.Status == StatusFound }

// NoPath builds a failed Result with the given status and expansion count.
func NoPath(status Status, expanded int) Result {
	return Result{Status: status, Expanded: expanded}
}

// CheckEndpoints returns StatusFound when both endpoints are passable in g
// and StatusInvalidEndpoint otherwise. Strategies call it before touching
// their frontier.
func CheckEndpoints(g *grid.Grid, start, end grid.Cell) Status {
	if !g.Passable(start) || !g.Passable(end) {
		return StatusInvalidEndpoint
	}

	return StatusFound
}
