// Ford-Fulkerson driven by the strategy-parametric search engine. Residual
// state is threaded through the loop as pure edgemap values; each iteration
// is a function of the previous (residual, flow) pair only.

package flow

import (
	"math"

	"github.com/katalvlaran/flowmatch/edgemap"
	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/search"
)

// MaxFlow computes the maximum source→sink flow of net.
//
// Steps, per iteration:
//  1. Search the symmetrised network graph for a source→sink path, with
//     edges filtered to positive residual capacity. Exhaustion terminates
//     the loop — that is the normal exit, not an error.
//  2. Compute the bottleneck: the minimum residual capacity on the path.
//  3. Update residual capacities as whole-map arithmetic: subtract the
//     bottleneck on path edges, add it on their reverses.
//  4. Record flow on those path edges that belong to the original capacity
//     domain; reverse cancellation arcs stay bookkeeping-only.
//
// The final Value is independent of the strategy (max-flow min-cut);
// Iterations is not — BreadthFirst is bounded by O(V·E) augmentations,
// DepthFirst can degrade exponentially on adversarial capacities.
//
// Complexity: O(E · Value) for DepthFirst, O(V · E²) for BreadthFirst.
// Memory:     O(V + E).
func MaxFlow(net *Network, opts ...Option) (Result, error) {
	// 1) Validate input and options
	if net == nil {
		return Result{}, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	// 2) Initialize threaded state: residual = capacities, flow = zero
	residual := net.caps.Clone()
	flowMap := edgemap.New()

	// 3) The search space: every arc plus its reverse; residual values
	//    decide traversability per iteration
	searchGraph := net.g.Symmetrise()
	sinkSet := graph.NewVertexSet(net.sink)

	res := Result{Flow: flowMap}
	for {
		// 3a) Find an augmenting path in the positive-residual view
		witness, err := search.FindPath(
			searchGraph, net.source, sinkSet,
			search.WithStrategy(o.Strategy),
			search.WithContext(o.Ctx),
			search.WithFilterEdge(func(from, to graph.Vertex) bool {
				return residual.Get(edgemap.Edge{From: from, To: to}) > 0
			}),
		)
		if err != nil {
			return res, err
		}

		// 3b) Exhaustion is the defined loop exit
		if !witness.Found {
			break
		}

		// 3c) Safety valve against pathological DepthFirst behavior
		if o.MaxIterations > 0 && res.Iterations >= o.MaxIterations {
			res.Value = flowMap.Net(net.source)

			return res, ErrIterationLimit
		}
		res.Iterations++

		// 3d) Bottleneck = min residual along the witness
		bottleneck := int64(math.MaxInt64)
		entries := make([]edgemap.Entry, 0, len(witness.Path)-1)
		for i := 0; i+1 < len(witness.Path); i++ {
			e := edgemap.Edge{From: witness.Path[i], To: witness.Path[i+1]}
			if r := residual.Get(e); r < bottleneck {
				bottleneck = r
			}
			entries = append(entries, edgemap.Entry{Edge: e, Val: 1})
		}

		// 3e) Whole-map residual update: forward -= δ, reverse += δ
		delta := edgemap.FromEntries(entries).Scale(bottleneck)
		residual = residual.Sub(delta).Add(delta.SwapKeys())

		// 3f) Record flow only inside the original edge domain
		recorded := edgemap.New()
		for e, v := range delta {
			if net.caps.Has(e) {
				recorded[e] = v
			} else {
				// pushing along a reverse arc cancels prior flow
				recorded[e.Reverse()] = -v
			}
		}
		flowMap = flowMap.Add(recorded)

		if o.Logger != nil {
			o.Logger.WithFields(map[string]interface{}{
				"iteration":  res.Iterations,
				"path":       witness.Path,
				"bottleneck": bottleneck,
			}).Info("augmenting path applied")
		}

		res.Flow = flowMap
	}

	// 4) Total flow = net outflow of the source
	res.Flow = flowMap
	res.Value = flowMap.Net(net.source)

	return res, nil
}
