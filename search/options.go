package search

import "github.com/katalvlaran/mazepath/grid"

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by every strategy.
type Options struct {
	// OnExpand is called each time a cell is claimed, in claim order.
	OnExpand func(c grid.Cell)

	// OnFrontier is called each time a cell is added to the frontier
	// (enqueued, pushed). Cells may be reported more than once by
	// strategies that allow duplicate frontier entries.
	OnFrontier func(c grid.Cell)

	// MaxExpansions, if > 0, aborts the search with StatusNoPath once that
	// many cells have been claimed. 0 disables the limit.
	MaxExpansions int
}

// DefaultOptions returns Options with no-op hooks and no expansion limit.
func DefaultOptions() Options {
	return Options{
		OnExpand:      func(grid.Cell) {},
		OnFrontier:    func(grid.Cell) {},
		MaxExpansions: 0,
	}
}

// Apply folds opts over DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithOnExpand registers a callback for every claimed cell.
func WithOnExpand(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnFrontier registers a callback for every frontier insertion.
func WithOnFrontier(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrontier = fn
		}
	}
}

// WithMaxExpansions caps the number of claimed cells.
//
//	n > 0:  stop after n expansions
//	n <= 0: no limit
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxExpansions = n
	}
}

// Exhausted reports whether expanded has reached the configured budget.
func (o Options) Exhausted(expanded int) bool {
	return o.MaxExpansions > 0 && expanded >= o.MaxExpansions
}
