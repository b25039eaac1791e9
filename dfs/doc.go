// Package dfs finds a path between two cells of a grid.Grid using
// depth-first search with an explicit stack.
//
// What:
//
//   - Pops the most recently pushed frontier entry first.
//   - Marks a cell visited when it is popped, not when it is pushed. The same
//     cell may therefore sit on the stack several times, reached along
//     different routes; whichever entry is popped first claims it and the
//     others are skipped.
//   - Returns as soon as the end cell is claimed. The path is the first one
//     reached, not necessarily the shortest.
//   - Neighbors are pushed in grid order (down, right, up, left), so the last
//     pushed, "left", is explored first.
//
// Why:
//
//   - Often claims far fewer cells than BFS on long corridors and mazes with
//     a single solution.
//   - Reference behavior for comparing exploration orders.
//
// Paths:
//
//	Each stack entry carries the cell it was pushed from. When an entry
//	claims its cell, that parent becomes the cell's predecessor, which gives
//	exactly the path a copy-the-path-on-every-push implementation returns.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the stack (duplicate entries), O(V) for visited
//     set and predecessor map.
//
// Errors:
//
//	None. Blocked or out-of-bounds endpoints yield
//	search.StatusInvalidEndpoint; an exhausted stack yields
//	search.StatusNoPath.
package dfs
