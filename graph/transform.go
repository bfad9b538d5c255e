// Whole-graph combinators: transpose, key-wise union and intersection, and
// symmetrisation.

package graph

// Transpose returns the graph in which edge (w, v) exists iff (v, w) exists
// in g. Every vertex of g — keys and sink-only successors alike — appears
// as a key of the result, so repeated transposition preserves the vertex
// domain.
// Complexity: O(V + E log E)
func (g *Graph) Transpose() *Graph {
	rev := make(map[Vertex][]Vertex, len(g.adj))
	for v, succs := range g.adj {
		if _, ok := rev[v]; !ok {
			rev[v] = nil
		}
		for _, w := range succs {
			rev[w] = append(rev[w], v)
		}
	}
	// reversed lists accumulate in map-iteration order; normalize restores
	// the sorted invariant
	out := &Graph{adj: make(map[Vertex][]Vertex, len(rev))}
	for v, list := range rev {
		out.adj[v] = normalize(list)
	}

	return out
}

// Union returns the key-wise union: a vertex is a key of the result iff it
// is a key of either operand, and its successor list is the sorted union of
// the operands' lists (absent keys default to empty).
// Complexity: O(V + E)
func (g *Graph) Union(o *Graph) *Graph {
	out := &Graph{adj: make(map[Vertex][]Vertex, len(g.adj)+len(o.adj))}
	for v, succs := range g.adj {
		out.adj[v] = mergeUnion(succs, o.adj[v])
	}
	for v, succs := range o.adj {
		if _, ok := g.adj[v]; !ok {
			out.adj[v] = append([]Vertex(nil), succs...)
		}
	}

	return out
}

// Intersect returns the key-wise intersection: a vertex is a key of the
// result iff it is a key of both operands, with the sorted intersection of
// its lists.
// Complexity: O(V + E)
func (g *Graph) Intersect(o *Graph) *Graph {
	out := &Graph{adj: make(map[Vertex][]Vertex)}
	for v, succs := range g.adj {
		if other, ok := o.adj[v]; ok {
			out.adj[v] = mergeIntersect(succs, other)
		}
	}

	return out
}

// Symmetrise returns the union of g with its own transpose: for every edge
// (v, w) the result also carries (w, v). The flow solver searches the
// symmetrised network graph so that residual reverse edges are traversable.
// Complexity: O(V + E log E)
func (g *Graph) Symmetrise() *Graph {
	return g.Union(g.Transpose())
}
