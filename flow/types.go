// Package flow defines the validated Network model, solver options, and
// error taxonomy; the Ford-Fulkerson loop lives in maxflow.go, the min-cut
// helper in mincut.go.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowmatch/edgemap"
	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/search"
)

// ErrBadNetwork is the common construction failure: every NewNetwork error
// wraps it, so callers can match the whole taxonomy with one errors.Is.
var ErrBadNetwork = errors.New("flow: bad network")

// Sentinel errors for network construction and solving.
var (
	// ErrGraphNil is returned when NewNetwork receives a nil graph.
	ErrGraphNil = fmt.Errorf("%w: graph is nil", ErrBadNetwork)

	// ErrSymmetricPair is returned when the graph violates the asymmetry
	// invariant: some pair v, w carries both (v,w) and (w,v). Residual
	// bookkeeping needs the reverse direction of every arc to itself be
	// free of capacity, so such graphs are rejected outright.
	ErrSymmetricPair = fmt.Errorf("%w: symmetric vertex pair", ErrBadNetwork)

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = fmt.Errorf("%w: source vertex not found", ErrBadNetwork)

	// ErrSinkNotFound is returned when the sink vertex is absent.
	ErrSinkNotFound = fmt.Errorf("%w: sink vertex not found", ErrBadNetwork)

	// ErrSourceIsSink is returned when source and sink coincide: the
	// trivial witness [source] would augment nothing, so the solver loop
	// could never make progress.
	ErrSourceIsSink = fmt.Errorf("%w: source equals sink", ErrBadNetwork)

	// ErrNegativeCapacity is returned when a capacity entry is negative.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrBadNetwork)

	// ErrNetworkNil is returned when a nil *Network is passed to a solver.
	ErrNetworkNil = errors.New("flow: network is nil")

	// ErrIterationLimit is returned when WithMaxIterations trips before
	// the residual network is exhausted.
	ErrIterationLimit = errors.New("flow: augmentation limit exceeded")
)

// Network is a validated (graph, source, sink, capacity) value. Instances
// only exist past the asymmetry and capacity checks in NewNetwork; no
// partially constructed Network ever escapes.
type Network struct {
	g      *graph.Graph
	source graph.Vertex
	sink   graph.Vertex
	caps   edgemap.Map
}

// NewNetwork validates g and wraps it into a flow network.
//
// Checks, in order:
//  1. g must be non-nil.
//  2. g must be asymmetric: no v, w with both (v,w) and (w,v) present
//     (self-loops count as their own reverse).
//  3. source and sink must be distinct vertices of g.
//  4. no capacity entry may be negative.
//
// The stored capacity map is normalized to the positive entries on the edge
// domain of g: entries on absent edges and zero entries are dropped (keeping
// the edgemap invariant that presence means nonzero), and absent entries on
// real edges read as zero through Capacity.
// Complexity: O(V + E log d_max)
func NewNetwork(g *graph.Graph, source, sink graph.Vertex, caps edgemap.Map) (*Network, error) {
	// 1) Graph presence
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Asymmetry invariant
	for _, v := range g.Vertices() {
		for _, w := range g.Successors(v) {
			if g.HasEdge(w, v) {
				return nil, fmt.Errorf("%w: %d and %d", ErrSymmetricPair, v, w)
			}
		}
	}

	// 3) Endpoint presence
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %d", ErrSourceIsSink, source)
	}

	// 4) Normalize capacities onto the edge domain
	norm := edgemap.New()
	for _, v := range g.Vertices() {
		for _, w := range g.Successors(v) {
			e := edgemap.Edge{From: v, To: w}
			c := caps.Get(e)
			if c < 0 {
				return nil, fmt.Errorf("%w: %d on edge %d→%d", ErrNegativeCapacity, c, v, w)
			}
			if c > 0 {
				norm[e] = c
			}
		}
	}

	return &Network{g: g, source: source, sink: sink, caps: norm}, nil
}

// Graph returns the underlying graph value.
func (n *Network) Graph() *graph.Graph { return n.g }

// Source returns the source vertex.
func (n *Network) Source() graph.Vertex { return n.source }

// Sink returns the sink vertex.
func (n *Network) Sink() graph.Vertex { return n.sink }

// Capacity returns the capacity of e, zero for edges outside the network.
func (n *Network) Capacity(e edgemap.Edge) int64 { return n.caps.Get(e) }

// Capacities returns a copy of the capacity map, keyed by the network's
// positive-capacity edges.
func (n *Network) Capacities() edgemap.Map { return n.caps.Clone() }

// Result carries the outcome of a max-flow computation.
type Result struct {
	// Value is the total flow out of the source (= into the sink).
	Value int64

	// Flow assigns each original network edge its flow; edges carrying
	// zero are absent. Reverse residual arcs are never recorded here.
	Flow edgemap.Map

	// Iterations counts the augmenting paths applied.
	Iterations int
}

// Option configures the max-flow solver via functional arguments.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy picks the augmenting-path discipline. BreadthFirst bounds
	// the loop polynomially (Edmonds-Karp); DepthFirst can take an
	// exponential number of augmentations on adversarial capacities. The
	// resulting Value is identical either way.
	Strategy search.Strategy

	// MaxIterations, if > 0, aborts with ErrIterationLimit after that many
	// augmentations. A safety valve for DepthFirst on hostile inputs.
	MaxIterations int

	// Logger, when non-nil, receives one entry per augmentation.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, BreadthFirst
// strategy, no iteration cap, and no logging.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: search.BreadthFirst,
	}
}

// WithStrategy selects the augmenting-path exploration strategy.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) {
		if s != search.DepthFirst && s != search.BreadthFirst {
			o.err = fmt.Errorf("flow: unknown strategy %d", int(s))

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

// WithMaxIterations caps the number of augmentations (0 = unlimited).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("flow: MaxIterations cannot be negative (%d)", n)

			return
		}
		o.MaxIterations = n
	}
}

// WithLogger attaches a logger that records every augmentation.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}
