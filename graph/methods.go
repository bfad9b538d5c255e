// Query methods over Graph: successor/predecessor lookup, vertex listing,
// membership tests, and semantic equality. Edge mutators live in
// methods_edges.go, whole-graph combinators in transform.go.

package graph

// Successors returns the sorted successor list of v, or an empty list when
// v is unknown. The returned slice is shared with the Graph and must be
// treated as read-only.
// Complexity: O(1)
func (g *Graph) Successors(v Vertex) []Vertex {
	return g.adj[v]
}

// Predecessors returns the sorted list of vertices with an edge into v.
// It is defined via Transpose and therefore costs O(V+E) per call; callers
// issuing repeated predecessor queries should cache g.Transpose() and use
// Successors on it instead.
func (g *Graph) Predecessors(v Vertex) []Vertex {
	return g.Transpose().Successors(v)
}

// Vertices returns every vertex appearing as a key or inside a successor
// list, in ascending order.
// Complexity: O(V + E)
func (g *Graph) Vertices() []Vertex {
	seen := make(VertexSet, len(g.adj))
	for v, succs := range g.adj {
		seen.Add(v)
		seen.AddAll(succs...)
	}

	return seen.Values()
}

// Order returns the number of distinct vertices in the graph, counting
// sink-only vertices.
// Complexity: O(V + E)
func (g *Graph) Order() int {
	return len(g.Vertices())
}

// HasVertex reports whether v appears in the graph as a key or successor.
func (g *Graph) HasVertex(v Vertex) bool {
	if _, ok := g.adj[v]; ok {
		return true
	}
	for _, succs := range g.adj {
		if sortedContains(succs, v) {
			return true
		}
	}

	return false
}

// HasEdge reports whether the directed edge (s, t) is present.
// Complexity: O(log deg(s))
func (g *Graph) HasEdge(s, t Vertex) bool {
	return sortedContains(g.adj[s], t)
}

// HasPath reports whether path is a walk in g: every consecutive pair must
// be an edge. A single-vertex path is trivially present; an empty path is
// not a path.
// Complexity: O(len(path) * log d_max)
func (g *Graph) HasPath(path []Vertex) bool {
	if len(path) == 0 {
		return false
	}
	for i := 0; i+1 < len(path); i++ {
		if !g.HasEdge(path[i], path[i+1]) {
			return false
		}
	}

	return true
}

// Terminals returns the set of vertices with no outgoing edge, including
// sink-only vertices.
// Complexity: O(V + E)
func (g *Graph) Terminals() VertexSet {
	out := make(VertexSet)
	for _, v := range g.Vertices() {
		if len(g.adj[v]) == 0 {
			out.Add(v)
		}
	}

	return out
}

// Equal reports semantic equality: the same vertex domain and the same edge
// set. Keys with empty lists and sink-only vertices compare equal, so
// g.Transpose().Transpose().Equal(g) holds for every g.
func (g *Graph) Equal(o *Graph) bool {
	gv, ov := g.Vertices(), o.Vertices()
	if len(gv) != len(ov) {
		return false
	}
	for i := range gv {
		if gv[i] != ov[i] {
			return false
		}
	}
	for _, v := range gv {
		a, b := g.adj[v], o.adj[v]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}

	return true
}

// clone returns a new Graph sharing all adjacency slices with g. Mutators
// replace individual slices in the clone, never write through shared ones.
func (g *Graph) clone() *Graph {
	out := &Graph{adj: make(map[Vertex][]Vertex, len(g.adj)+1)}
	for v, succs := range g.adj {
		out.adj[v] = succs
	}

	return out
}
