// Persistent edge mutators. Every method returns a new Graph value built on
// the sorted-merge primitives in setops.go; the receiver is never modified.

package graph

// AddVertex returns a graph in which v is a key (with an empty successor
// list if it was absent or sink-only). Idempotent.
func (g *Graph) AddVertex(v Vertex) *Graph {
	if _, ok := g.adj[v]; ok {
		return g
	}
	out := g.clone()
	out.adj[v] = nil

	return out
}

// AddEdge returns a graph with the directed edge (s, t) inserted into s's
// sorted successor list. Adding an existing edge is a no-op that returns
// an equal graph.
// Complexity: O(V + deg(s))
func (g *Graph) AddEdge(s, t Vertex) *Graph {
	out := g.clone()
	out.adj[s] = mergeUnion(g.adj[s], []Vertex{t})

	return out
}

// AddBiEdge returns a graph with both (s, t) and (t, s) inserted.
func (g *Graph) AddBiEdge(s, t Vertex) *Graph {
	return g.AddEdge(s, t).AddEdge(t, s)
}

// RemoveEdge returns a graph with the directed edge (s, t) removed, via
// sorted-list difference. Removing an absent edge is a no-op.
// Complexity: O(V + deg(s))
func (g *Graph) RemoveEdge(s, t Vertex) *Graph {
	if _, ok := g.adj[s]; !ok {
		return g
	}
	out := g.clone()
	out.adj[s] = mergeDiff(g.adj[s], []Vertex{t})

	return out
}

// RemoveBiEdge returns a graph with both (s, t) and (t, s) removed.
func (g *Graph) RemoveBiEdge(s, t Vertex) *Graph {
	return g.RemoveEdge(s, t).RemoveEdge(t, s)
}

// XorEdge returns a graph with the membership of edge (s, t) toggled, via
// sorted symmetric difference: present edges are removed, absent ones added.
// Complexity: O(V + deg(s))
func (g *Graph) XorEdge(s, t Vertex) *Graph {
	out := g.clone()
	out.adj[s] = mergeXor(g.adj[s], []Vertex{t})

	return out
}

// XorBiEdge returns a graph with both (s, t) and (t, s) toggled. This is
// the primitive the matching solver uses to move an edge between the
// matched and unmatched layers.
func (g *Graph) XorBiEdge(s, t Vertex) *Graph {
	return g.XorEdge(s, t).XorEdge(t, s)
}
