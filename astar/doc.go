// Package astar finds a shortest path between two cells of a grid.Grid using
// A* best-first search guided by the Manhattan distance.
//
// A* keeps a min-priority queue keyed by f = g + h, where g is the number of
// steps from the start (g-score) and h is the Manhattan distance to the end.
// On a unit-cost orthogonal grid Manhattan never overestimates, so the first
// time the end cell is popped its path is optimal: the returned path always
// has the same length as the one BFS returns.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Each cell is claimed at most once (popped and marked visited).
//   - Each strictly improving relaxation pushes one heap entry.
//   - Space: O(V + E)
//   - O(V) for g-scores, visited set and predecessor map.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - The start entry is seeded with f = 0 and g-score 0.
//   - We use a "lazy" decrease-key strategy: improved entries are pushed as
//     duplicates and stale ones are skipped when popped (visited check).
//   - A neighbor is pushed only when its new g-score is strictly lower than
//     the best known one (or none is known yet).
//   - Ties on f are broken first-in first-out: every push gets a sequence
//     number and the lower number pops first. Among several optimal paths
//     the one returned is therefore fully determined by the grid's neighbor
//     order (down, right, up, left).
package astar
