package bfs

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	g        *grid.Grid
	opts     search.Options
	queue    *queue.Queue[grid.Cell]
	visited  mapset.Set[grid.Cell]
	parent   map[grid.Cell]grid.Cell
	expanded int
}

// Search runs breadth-first search on g from start to end.
// Out-of-bounds or blocked endpoints yield search.StatusInvalidEndpoint;
// a disconnected end yields search.StatusNoPath.
func Search(g *grid.Grid, start, end grid.Cell, opts ...search.Option) search.Result {
	if search.CheckEndpoints(g, start, end) != search.StatusFound {
		return search.NoPath(search.StatusInvalidEndpoint, 0)
	}

	w := &walker{
		g:       g,
		opts:    search.Apply(opts...),
		queue:   queue.New[grid.Cell](),
		visited: mapset.New[grid.Cell](),
		parent:  make(map[grid.Cell]grid.Cell),
	}
	w.enqueue(start)

	return w.loop(start, end)
}

// enqueue marks c visited, reports it to OnFrontier and appends it to the queue.
func (w *walker) enqueue(c grid.Cell) {
	w.visited.Put(c)
	w.opts.OnFrontier(c)
	w.queue.Enqueue(c)
}

// loop processes the queue until the end is dequeued, the queue empties,
// or the expansion budget is spent.
func (w *walker) loop(start, end grid.Cell) search.Result {
	for !w.queue.Empty() {
		cur := w.queue.Dequeue()
		w.expanded++
		w.opts.OnExpand(cur)

		if cur == end {
			return search.Result{
				Path:     grid.Reconstruct(w.parent, start, end),
				Status:   search.StatusFound,
				Expanded: w.expanded,
			}
		}
		if w.opts.Exhausted(w.expanded) {
			break
		}

		for _, nbr := range w.g.Neighbors(cur) {
			if w.visited.Has(nbr) {
				continue
			}
			w.parent[nbr] = cur
			w.enqueue(nbr)
		}
	}

	return search.NoPath(search.StatusNoPath, w.expanded)
}
