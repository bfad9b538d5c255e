// Package search defines strategies, options, and results for the
// reachability engine in search.go.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/flowmatch/graph"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed, directly
	// or inside the layer list of FindAlternating.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrNoLayers is returned when FindAlternating receives an empty layer
	// list.
	ErrNoLayers = errors.New("search: no edge layers given")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Strategy selects the frontier discipline of the search walker.
type Strategy int

const (
	// DepthFirst explores the most recently discovered continuation first
	// (stack frontier).
	DepthFirst Strategy = iota

	// BreadthFirst explores the least recently discovered continuation
	// first (queue frontier); the returned witness is a fewest-hops path.
	BreadthFirst
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Result is the tagged outcome of a search: either a witness path was
// found, or the search space was exhausted. Exhaustion is a value, never
// an error — it is the normal termination signal of the solver loops.
type Result struct {
	// Found reports whether a path to a target exists.
	Found bool

	// Path holds the witness, start first, target last; nil when !Found.
	Path []graph.Vertex
}

// Option configures search behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy selects stack vs queue frontier discipline. Either choice
	// returns a valid witness; only which witness differs.
	Strategy Strategy

	// MaxExpansions, if > 0, caps the number of vertex expansions; once
	// exceeded the search reports exhaustion. 0 disables the cap (a
	// visited set already bounds expansions by |V|).
	MaxExpansions int

	// OnExpand is called when a vertex is taken off the frontier, with its
	// hop distance from the start.
	OnExpand func(v graph.Vertex, depth int)

	// FilterEdge can veto an edge by returning false; vetoed edges are not
	// traversed and their heads stay undiscovered. The flow solver uses
	// this to present the positive-residual view of a network.
	FilterEdge func(from, to graph.Vertex) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// DepthFirst strategy, no expansion cap, no-op hook, no edge filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Strategy:   DepthFirst,
		OnExpand:   func(graph.Vertex, int) {},
		FilterEdge: func(graph.Vertex, graph.Vertex) bool { return true },
	}
}

// WithStrategy selects the exploration strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != DepthFirst && s != BreadthFirst {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))

			return
		}
		o.Strategy = s
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps vertex expansions.
//
//	n > 0:  stop (exhausted) after n expansions
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback invoked on every vertex expansion.
func WithOnExpand(fn func(v graph.Vertex, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithFilterEdge skips edges when fn returns false. Called for each edge
// curr→successor before discovery.
func WithFilterEdge(fn func(from, to graph.Vertex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}
