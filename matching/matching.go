// Augmenting-path maximum matching over the alternating-layer search
// engine. State is the complementary (M, notM) graph pair, threaded as
// pure values; toggling a found path moves each of its edges between the
// two layers and grows the matching by exactly one edge.
//
// Guarantee: this is the classical bipartite algorithm. On non-bipartite
// inputs an augmenting structure hidden inside an odd alternating cycle (a
// blossom) can stay invisible to simple-path search, so the result is a
// maximal-under-augmentation matching but not necessarily a maximum one.
// Blossom shrinking is deliberately not implemented.

package matching

import (
	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/search"
)

// Maximum computes a maximum matching of the undirected view of g (the
// input is symmetrised first, so directed and undirected encodings are both
// accepted).
//
// Loop, per iteration:
//  1. free = vertices with no matched partner; empty free set terminates.
//  2. For each free s in ascending order, search for an alternating path
//     to another free vertex, cycling layers [notM, M, notM, ...].
//  3. The first witness found is toggled: every path edge switches between
//     M and notM (XorBiEdge on both layers); then the loop restarts.
//  4. When every free vertex exhausts its search space, M is final.
//
// Freeness of both endpoints forces every witness to start and end on a
// notM hop, so its edge count is odd and each toggle adds one more edge to
// M than it removes.
//
// Complexity: O(V · (V + E)); at most ⌊V/2⌋ augmentations.
// Memory:     O(V + E) per threaded snapshot.
func Maximum(g *graph.Graph, opts ...Option) (Result, error) {
	// 1) Validate input and options
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	// 2) Initialize the edge-set partition: notM = whole graph, M = empty
	//    graph over the same vertex domain (every vertex a key, so
	//    Terminals(M) is exactly the free-vertex set)
	notM := g.Symmetrise()
	domain := make(map[graph.Vertex][]graph.Vertex, notM.Order())
	for _, v := range notM.Vertices() {
		domain[v] = nil
	}
	m := graph.FromSortedMap(domain)

	res := Result{}
	for {
		// cancellation check (once per augmentation attempt round)
		select {
		case <-o.Ctx.Done():
			res.Matching = m

			return res, o.Ctx.Err()
		default:
		}

		// 2a) Free vertices: no M-successor means no partner
		free := m.Terminals()
		if free.Len() == 0 {
			break
		}

		// 3) Try every free start in ascending order
		augmented := false
		for _, s := range free.Values() {
			targets := free.Clone()
			targets.Remove(s)
			if targets.Len() == 0 {
				break
			}

			witness, err := search.FindAlternating(
				[]*graph.Graph{notM, m}, s, targets,
				search.WithStrategy(o.Strategy),
				search.WithContext(o.Ctx),
			)
			if err != nil {
				res.Matching = m

				return res, err
			}
			if !witness.Found {
				continue
			}

			if o.MaxAugmentations > 0 && res.Augmentations >= o.MaxAugmentations {
				res.Matching = m

				return res, ErrAugmentationLimit
			}

			// 3a) Toggle the witness: edges swap layers in lockstep
			for i := 0; i+1 < len(witness.Path); i++ {
				u, v := witness.Path[i], witness.Path[i+1]
				m = m.XorBiEdge(u, v)
				notM = notM.XorBiEdge(u, v)
			}

			res.Augmentations++
			if o.Logger != nil {
				o.Logger.WithFields(map[string]interface{}{
					"augmentation": res.Augmentations,
					"path":         witness.Path,
				}).Info("alternating path toggled")
			}

			augmented = true

			break
		}

		// 4) All free starts exhausted: M is final
		if !augmented {
			break
		}
	}

	res.Matching = m

	return res, nil
}
