// Minimum-cut extraction from a solved flow, via reachability in the final
// residual view. By max-flow min-cut, the returned cut capacity equals the
// flow value of a maximum flow.

package flow

import (
	"github.com/katalvlaran/flowmatch/edgemap"
	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/search"
)

// MinCut derives the source-side vertex set and the saturated cut edges
// from a flow over net. The residual view is reconstructed from the flow
// alone (residual = capacity − flow + flowᵀ), so any Result.Flow returned
// by MaxFlow can be passed in.
//
// Returns:
//   - reach: vertices reachable from the source through positive residual
//   - cut:   original edges crossing reach → complement, with capacities
//
// For a maximum flow, summing cut gives the flow value.
// Complexity: O(V + E log E)
func MinCut(net *Network, flowMap edgemap.Map) (graph.VertexSet, edgemap.Map, error) {
	if net == nil {
		return nil, nil, ErrNetworkNil
	}

	// 1) Reconstruct the residual map from the flow assignment
	residual := net.caps.Sub(flowMap).Add(flowMap.SwapKeys())

	// 2) Collect every vertex reachable via positive residual: an empty
	//    target set makes the walker sweep the whole reachable region
	reach := graph.NewVertexSet(net.source)
	_, err := search.FindPath(
		net.g.Symmetrise(), net.source, graph.NewVertexSet(),
		search.WithFilterEdge(func(from, to graph.Vertex) bool {
			return residual.Get(edgemap.Edge{From: from, To: to}) > 0
		}),
		search.WithOnExpand(func(v graph.Vertex, _ int) { reach.Add(v) }),
	)
	if err != nil {
		return nil, nil, err
	}

	// 3) Cut = capacity entries leaving the reachable side
	cut := edgemap.New()
	for e, c := range net.caps {
		if reach.Has(e.From) && !reach.Has(e.To) && c > 0 {
			cut[e] = c
		}
	}

	return reach, cut, nil
}
