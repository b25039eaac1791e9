package astar

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// Heuristic estimates the remaining step count from a cell to the goal.
// It must never overestimate for the returned path to be optimal.
type Heuristic func(from, to grid.Cell) int

// nodeItem is one heap entry: a cell with its f-score and the parent it
// was reached from.
type nodeItem struct {
	cell   grid.Cell
	parent grid.Cell
	f      int
	seq    uint64 // insertion order, breaks ties on f
	root   bool
}

// less orders the heap by f, then by insertion order.
func less(a, b nodeItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *grid.Grid
	end      grid.Cell
	h        Heuristic
	opts     search.Options
	pq       *heap.Heap[nodeItem]
	gScore   map[grid.Cell]int
	parent   map[grid.Cell]grid.Cell
	visited  mapset.Set[grid.Cell]
	seq      uint64
	expanded int
}

// Search runs A* on g from start to end with the Manhattan heuristic.
// Out-of-bounds or blocked endpoints yield search.StatusInvalidEndpoint;
// a disconnected end yields search.StatusNoPath.
func Search(g *grid.Grid, start, end grid.Cell, opts ...search.Option) search.Result {
	return SearchWith(g, start, end, grid.Manhattan, opts...)
}

// SearchWith runs A* with a caller-supplied heuristic. A nil heuristic
// degrades to uniform-cost search (h = 0).
func SearchWith(g *grid.Grid, start, end grid.Cell, h Heuristic, opts ...search.Option) search.Result {
	if search.CheckEndpoints(g, start, end) != search.StatusFound {
		return search.NoPath(search.StatusInvalidEndpoint, 0)
	}
	if h == nil {
		h = func(grid.Cell, grid.Cell) int { return 0 }
	}

	r := &runner{
		g:       g,
		end:     end,
		h:       h,
		opts:    search.Apply(opts...),
		pq:      heap.New[nodeItem](less),
		gScore:  map[grid.Cell]int{start: 0},
		parent:  make(map[grid.Cell]grid.Cell),
		visited: mapset.New[grid.Cell](),
	}
	r.push(nodeItem{cell: start, f: 0, root: true})

	return r.process(start)
}

func (r *runner) push(item nodeItem) {
	item.seq = r.seq
	r.seq++
	r.opts.OnFrontier(item.cell)
	r.pq.Push(item)
}

// process is the core loop: pop the minimum-f entry, skip stale ones, claim
// the cell, stop at the goal, otherwise relax its neighbors.
func (r *runner) process(start grid.Cell) search.Result {
	for r.pq.Size() > 0 {
		item, _ := r.pq.Pop()

		if r.visited.Has(item.cell) {
			continue
		}
		r.visited.Put(item.cell)
		if !item.root {
			r.parent[item.cell] = item.parent
		}
		r.expanded++
		r.opts.OnExpand(item.cell)

		if item.cell == r.end {
			return search.Result{
				Path:     grid.Reconstruct(r.parent, start, r.end),
				Status:   search.StatusFound,
				Expanded: r.expanded,
			}
		}
		if r.opts.Exhausted(r.expanded) {
			break
		}

		r.relax(item.cell)
	}

	return search.NoPath(search.StatusNoPath, r.expanded)
}

// relax pushes every neighbor of u whose g-score strictly improves.
func (r *runner) relax(u grid.Cell) {
	newG := r.gScore[u] + 1
	for _, v := range r.g.Neighbors(u) {
		if old, ok := r.gScore[v]; ok && newG >= old {
			continue
		}
		r.gScore[v] = newG
		r.push(nodeItem{
			cell:   v,
			parent: u,
			f:      newG + r.h(v, r.end),
		})
	}
}
