// Package grid models a static 2-D maze as an immutable matrix of passability
// flags and provides the primitives every search strategy is built on.
//
// What:
//
//   - Grid wraps a rectangular [][]bool (true = open, false = wall), deep-copied
//     at construction and never mutated afterwards.
//   - Passable is the single source of truth for "may a path enter this cell":
//     the cell must be in bounds and open.
//   - Neighbors yields the passable orthogonal neighbors of a cell in the fixed
//     order down, right, up, left. DFS and A* tie-breaking depend on this order.
//   - Manhattan is the admissible heuristic used by A*.
//   - Path carries a solved route and can validate itself against a grid.
//   - Parse reads the '0'/'1' text format used for maze definitions.
//   - Components/Connected label the open regions of the maze.
//
// Coordinates:
//
//	Cells are addressed as (Row, Col) with (0,0) in the top-left corner.
//	Rows grow downwards, columns grow to the right.
//
// Complexity:
//
//   - New:          O(R×C) time and memory (deep copy).
//   - Passable:     O(1).
//   - Neighbors:    O(1) (at most four candidates).
//   - Components:   O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrBadGlyph:        text input contains a character other than '0' or '1'.
//   - ErrPath*:           Path.Validate found a broken invariant.
//
// A *Grid is read-only and may be shared by any number of goroutines.
package grid
