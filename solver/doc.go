// Package solver is the uniform entry point over the three search
// strategies. It selects a strategy by name, runs it, and measures the
// report metrics (path length, expansions, wall-clock time) on the caller
// side, keeping the strategies themselves free of timing concerns.
//
//	r, err := solver.Solve(g, start, end, solver.AStar)
//	if err != nil { ... }          // only ErrUnknownStrategy
//	if r.Found() { fmt.Println(r.Length, r.Elapsed) }
package solver
