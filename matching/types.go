// Package matching defines options, results, and errors for the
// augmenting-path matching solver in matching.go.
package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/search"
)

// Sentinel errors for the matching solver.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrAugmentationLimit is returned when WithMaxAugmentations trips
	// before every free vertex is exhausted.
	ErrAugmentationLimit = errors.New("matching: augmentation limit exceeded")
)

// Result carries the outcome of a matching computation.
type Result struct {
	// Matching holds the matched edge set as a symmetric graph over the
	// input's full vertex domain: every matched edge appears in both
	// directions, every vertex is a key. M-degree is at most 1 everywhere.
	Matching *graph.Graph

	// Augmentations counts the successful augmenting paths applied; it
	// equals the number of matched edges.
	Augmentations int
}

// Pairs flattens the matching into sorted (a, b) pairs with a < b.
func (r Result) Pairs() [][2]graph.Vertex {
	var out [][2]graph.Vertex
	for _, v := range r.Matching.Vertices() {
		for _, w := range r.Matching.Successors(v) {
			if v < w {
				out = append(out, [2]graph.Vertex{v, w})
			}
		}
	}

	return out
}

// Option configures the matching solver via functional arguments.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy picks the alternating-path discipline; DepthFirst is the
	// classical choice (Kuhn). Either strategy yields a maximum matching
	// on bipartite inputs.
	Strategy search.Strategy

	// MaxAugmentations, if > 0, aborts with ErrAugmentationLimit after
	// that many augmentations (0 = unlimited; ⌊V/2⌋ bounds the loop
	// anyway).
	MaxAugmentations int

	// Logger, when non-nil, receives one entry per augmentation.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, DepthFirst
// strategy, no augmentation cap, and no logging.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: search.DepthFirst,
	}
}

// WithStrategy selects the alternating-path exploration strategy.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) {
		if s != search.DepthFirst && s != search.BreadthFirst {
			o.err = fmt.Errorf("matching: unknown strategy %d", int(s))

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

// WithMaxAugmentations caps the number of augmentations (0 = unlimited).
func WithMaxAugmentations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("matching: MaxAugmentations cannot be negative (%d)", n)

			return
		}
		o.MaxAugmentations = n
	}
}

// WithLogger attaches a logger that records every augmentation.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}
