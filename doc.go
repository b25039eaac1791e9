// Package mazepath finds routes through static 2-D grid mazes with three
// interchangeable search strategies and reports how each one performed.
//
// 🚀 What is mazepath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: immutable passability grid, fixed-order neighbours, text parser
//		• Strategies: BFS (shortest), DFS (mark-on-pop), A* (Manhattan heuristic)
//		• Solver: pick a strategy by name, get path length, expansions and timing
//		• Generator: seeded recursive-backtracker mazes with optional braiding
//		• Presentation: glyph text, tcell terminal view, PNG export
//		• Surfaces: the mazesolve CLI and the mazeserver JSON API
//
// ✨ Guarantees
//
//   - Deterministic – same grid and endpoints, same path, every time
//   - Fail closed – blocked or out-of-bounds endpoints yield "no path", never a panic
//   - Shareable grids – a *grid.Grid is read-only; run searches in parallel freely
//   - Hooks – observe every claimed cell via search.WithOnExpand
//
// Layout:
//
//	grid/     — Grid, Cell, Path, Neighbors, Manhattan, Parse, Components
//	search/   — Result, Status and the Option hooks shared by every strategy
//	bfs/      — breadth-first search
//	dfs/      — depth-first search
//	astar/    — A* search
//	solver/   — strategy registry and timed reports
//	mazegen/  — random maze generation
//	render/   — text, tcell and PNG rendering
//	config/   — environment / .env configuration and logger
//	server/   — gin HTTP API
//	cmd/      — mazesolve and mazeserver binaries
//
// Quick example (S start, E end, * path, # wall):
//
//	S**.
//	##*#
//	E**.
//
//	go get github.com/katalvlaran/mazepath
package mazepath
