package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Steps returns the number of moves, Len()-1, or 0 for an empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Contains reports whether c lies on the path.
func (p Path) Contains(c Cell) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}

	return false
}

// Validate checks that p runs from start to end, that every cell is passable
// in g, that consecutive cells are one orthogonal step apart, and that no
// cell repeats. The first broken invariant is returned, wrapped with the
// offending position.
func (p Path) Validate(g *Grid, start, end Cell) error {
	if len(p) == 0 {
		return ErrPathEmpty
	}
	if p[0] != start || p[len(p)-1] != end {
		return fmt.Errorf("%w: got %v..%v, want %v..%v", ErrPathEndpoints, p[0], p[len(p)-1], start, end)
	}
	seen := mapset.New[Cell]()
	for i, c := range p {
		if !g.Passable(c) {
			return fmt.Errorf("%w: %v at index %d", ErrPathBlocked, c, i)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: %v at index %d", ErrPathRepeat, c, i)
		}
		seen.Put(c)
		if i > 0 && Manhattan(p[i-1], c) != 1 {
			return fmt.Errorf("%w: %v -> %v", ErrPathNotAdjacent, p[i-1], c)
		}
	}

	return nil
}

// Reconstruct walks the predecessor map back from end to start and returns
// the path in start→end order. parent must not contain start. Returns nil if
// the chain breaks before reaching start.
func Reconstruct(parent map[Cell]Cell, start, end Cell) Path {
	path := Path{end}
	for cur := end; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
