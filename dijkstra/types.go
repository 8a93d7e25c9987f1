// Package dijkstra defines configuration options, results and sentinel
// errors for the shortest-path searches over a gridgraph.Adjacency.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilAdjacency indicates that a nil adjacency function was passed.
	ErrNilAdjacency = errors.New("dijkstra: adjacency is nil")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	// The recorded error wraps it with the offending value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures a search.
//
//   - MaxCost: cells whose tentative distance would exceed this value are
//     never recorded. Must be ≥ 0. Default is +Inf (no cap).
//   - OnSettle: called once for every finalized cell, in extraction order.
//   - Stats: if non-nil, receives the search counters when the call returns.
type Options struct {
	MaxCost  float64
	OnSettle func(c gridgraph.Cell, dist float64)
	Stats    *Stats

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// WithMaxCost sets a maximum distance threshold.
// Negative or NaN values cause ErrOptionViolation.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: max cost %v must be non-negative", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithOnSettle registers a hook called as each cell is finalized.
func WithOnSettle(fn func(c gridgraph.Cell, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithStats makes the search copy its counters into s before returning.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns Options with no distance cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxCost:  math.Inf(1),
		OnSettle: func(gridgraph.Cell, float64) {},
	}
}

// Stats counts the work done by one search call.
type Stats struct {
	Pops         int // cells extracted (finalized) from the frontier
	Relaxations  int // neighbor edges examined
	Improvements int // decrease-key updates on frontier cells
}

// Result is the outcome of a targeted search.
// Path runs from source to destination inclusive. When the destination is
// unreachable Found is false, Path is nil and Cost is +Inf.
type Result struct {
	Path  []gridgraph.Cell
	Cost  float64
	Found bool
	Stats Stats
}
