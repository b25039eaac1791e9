// Package bfs finds a shortest path between two cells of a grid.Grid using
// breadth-first search.
//
// What
//
//   - Explores cells in non-decreasing step distance from the start.
//   - A cell is marked visited when it is enqueued, so every cell enters the
//     queue at most once.
//   - The single success exit is dequeuing the end cell; the path returned
//     is a shortest one in step count.
//   - When the queue empties first, the Result carries search.StatusNoPath.
//
// Determinism
//
//	Neighbors are enqueued in grid order (down, right, up, left), so among
//	several shortest paths the same one is always returned.
//
// Paths
//
//	The predecessor of each cell is recorded at enqueue time and the path is
//	rebuilt once the end is reached. This yields exactly the path that a
//	copy-the-path-on-every-enqueue implementation would produce, with O(V)
//	memory instead of O(V·L).
//
// Complexity (V = open cells, E = orthogonal links between them)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited set and predecessor map.
//
// Usage
//
//	res := bfs.Search(g, start, end)
//	if !res.Found() {
//	    // res.Status is search.StatusNoPath or search.StatusInvalidEndpoint
//	}
//
//	// With hooks and a budget:
//	res = bfs.Search(g, start, end,
//	    search.WithOnExpand(func(c grid.Cell) { /* ... */ }),
//	    search.WithMaxExpansions(10_000),
//	)
package bfs
