package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// ErrUnknownStrategy is returned for a strategy name or value with no implementation.
var ErrUnknownStrategy = errors.New("solver: unknown strategy")

// Strategy identifies a search algorithm.
type Strategy int

// Supported strategies, in display order.
const (
	BFS Strategy = iota
	DFS
	AStar
)

// searchFunc is the signature shared by bfs.Search, dfs.Search and astar.Search.
type searchFunc func(g *grid.Grid, start, end grid.Cell, opts ...search.Option) search.Result

var registry = map[Strategy]searchFunc{
	BFS:   bfs.Search,
	DFS:   dfs.Search,
	AStar: astar.Search,
}

// String returns the canonical lower-case name.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Title returns the display name used in reports.
func (s Strategy) Title() string {
	switch s {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case AStar:
		return "A*"
	default:
		return s.String()
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// "a*" is accepted as an alias of "astar".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies lists every strategy in display order.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, AStar}
}

// Report is the outcome of one solve plus its metrics.
//   - Length counts cells on the path (0 when none), Steps counts moves.
//   - Elapsed covers only the strategy call.
type Report struct {
	Strategy Strategy
	Status   search.Status
	Path     grid.Path
	Length   int
	Steps    int
	Expanded int
	Elapsed  time.Duration
}

// Found reports whether the solve produced a path.
func (r Report) Found() bool { return r.Status == search.StatusFound }

// Solve runs strategy on g from start to end. The only error is
// ErrUnknownStrategy; a missing path is reported through Report.Status.
func Solve(g *grid.Grid, start, end grid.Cell, strategy Strategy, opts ...search.Option) (Report, error) {
	fn, ok := registry[strategy]
	if !ok {
		return Report{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}

	began := time.Now()
	res := fn(g, start, end, opts...)
	elapsed := time.Since(began)

	return Report{
		Strategy: strategy,
		Status:   res.Status,
		Path:     res.Path,
		Length:   res.Path.Len(),
		Steps:    res.Path.Steps(),
		Expanded: res.Expanded,
		Elapsed:  elapsed,
	}, nil
}

// SolveAll runs every strategy in display order, sequentially.
func SolveAll(g *grid.Grid, start, end grid.Cell, opts ...search.Option) []Report {
	reports := make([]Report, 0, len(registry))
	for _, s := range Strategies() {
		r, _ := Solve(g, start, end, s, opts...)
		reports = append(reports, r)
	}

	return reports
}
