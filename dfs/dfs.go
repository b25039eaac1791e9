package dfs

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// entry is one stack frame: a cell and the cell it was pushed from.
type entry struct {
	cell   grid.Cell
	parent grid.Cell
	root   bool // true only for the start entry
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	g        *grid.Grid
	opts     search.Options
	stack    *stack.Stack[entry]
	visited  mapset.Set[grid.Cell]
	parent   map[grid.Cell]grid.Cell
	expanded int
}

// Search performs depth-first search on g from start to end.
// Out-of-bounds or blocked endpoints yield search.StatusInvalidEndpoint;
// a disconnected end yields search.StatusNoPath.
func Search(g *grid.Grid, start, end grid.Cell, opts ...search.Option) search.Result {
	if search.CheckEndpoints(g, start, end) != search.StatusFound {
		return search.NoPath(search.StatusInvalidEndpoint, 0)
	}

	w := &dfsWalker{
		g:       g,
		opts:    search.Apply(opts...),
		stack:   stack.New[entry](),
		visited: mapset.New[grid.Cell](),
		parent:  make(map[grid.Cell]grid.Cell),
	}
	w.push(entry{cell: start, root: true})

	return w.traverse(start, end)
}

func (w *dfsWalker) push(e entry) {
	w.opts.OnFrontier(e.cell)
	w.stack.Push(e)
}

// traverse pops entries until the end is claimed or the stack empties.
func (w *dfsWalker) traverse(start, end grid.Cell) search.Result {
	for w.stack.Size() > 0 {
		top := w.stack.Pop()

		// Stale duplicate: an earlier pop already claimed this cell.
		if w.visited.Has(top.cell) {
			continue
		}
		w.visited.Put(top.cell)
		if !top.root {
			w.parent[top.cell] = top.parent
		}
		w.expanded++
		w.opts.OnExpand(top.cell)

		if top.cell == end {
			return search.Result{
				Path:     grid.Reconstruct(w.parent, start, end),
				Status:   search.StatusFound,
				Expanded: w.expanded,
			}
		}
		if w.opts.Exhausted(w.expanded) {
			break
		}

		for _, nbr := range w.g.Neighbors(top.cell) {
			if !w.visited.Has(nbr) {
				w.push(entry{cell: nbr, parent: top.cell})
			}
		}
	}

	return search.NoPath(search.StatusNoPath, w.expanded)
}
