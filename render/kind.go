package render

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrCellSize is returned by PNG for a non-positive cell size.
var ErrCellSize = errors.New("render: cell size must be positive")

// Kind classifies a cell for drawing.
type Kind int

// Cell kinds, lowest precedence first.
const (
	KindOpen Kind = iota
	KindWall
	KindPath
	KindStart
	KindEnd
)

// classifier answers Kind queries for one (grid, path, start, end) frame.
type classifier struct {
	g          *grid.Grid
	onPath     mapset.Set[grid.Cell]
	start, end grid.Cell
}

func newClassifier(g *grid.Grid, path grid.Path, start, end grid.Cell) classifier {
	onPath := mapset.New[grid.Cell]()
	for _, c := range path {
		onPath.Put(c)
	}

	return classifier{g: g, onPath: onPath, start: start, end: end}
}

func (k classifier) kind(c grid.Cell) Kind {
	switch {
	case c == k.start:
		return KindStart
	case c == k.end:
		return KindEnd
	case k.onPath.Has(c):
		return KindPath
	case !k.g.Passable(c):
		return KindWall
	default:
		return KindOpen
	}
}
