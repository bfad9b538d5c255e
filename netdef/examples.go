// Hard-coded example instances. ClassicNetwork and TriangleGraph are the
// canonical demonstration inputs; the parametric builders back the test
// suites and the CLI demo mode.

package netdef

import (
	"github.com/katalvlaran/flowmatch/edgemap"
	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/graph"
)

// ClassicNetwork returns the 8-vertex demonstration network (source 0,
// sink 7):
//
//	0→1:7  0→2:8  0→3:9
//	1→4:3  1→5:4  2→5:6
//	3→5:2  3→6:5  4→2:8
//	4→7:10 5→4:4  5→6:7
//	6→7:10
//
// Its maximum flow value is 17, via the cut {0,1,2,3,5,6} | {4,7}.
func ClassicNetwork() *flow.Network {
	def := NetworkDef{
		Source: 0,
		Sink:   7,
		Arcs: []ArcDef{
			{From: 0, To: 1, Cap: 7},
			{From: 0, To: 2, Cap: 8},
			{From: 0, To: 3, Cap: 9},
			{From: 1, To: 4, Cap: 3},
			{From: 1, To: 5, Cap: 4},
			{From: 2, To: 5, Cap: 6},
			{From: 3, To: 5, Cap: 2},
			{From: 3, To: 6, Cap: 5},
			{From: 4, To: 2, Cap: 8},
			{From: 4, To: 7, Cap: 10},
			{From: 5, To: 4, Cap: 4},
			{From: 5, To: 6, Cap: 7},
			{From: 6, To: 7, Cap: 10},
		},
	}
	net, err := def.Build()
	if err != nil {
		// the fixture is asymmetric and non-negative by construction
		panic(err)
	}

	return net
}

// TriangleGraph returns the symmetric 3-cycle 0–1–2–0.
func TriangleGraph() *graph.Graph {
	return graph.New().AddBiEdge(0, 1).AddBiEdge(1, 2).AddBiEdge(2, 0)
}

// EvenCycle returns the symmetric cycle 0–1–...–(n-1)–0. For even n ≥ 2
// its maximum matching is perfect, with n/2 edges.
func EvenCycle(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		g = g.AddBiEdge(graph.Vertex(i), graph.Vertex((i+1)%n))
	}

	return g
}

// CompleteBipartite returns K(m,n): left vertices 0..m-1, right vertices
// m..m+n-1, every left-right pair connected in both directions. Its maximum
// matching has min(m,n) edges.
func CompleteBipartite(m, n int) *graph.Graph {
	g := graph.New()
	for l := 0; l < m; l++ {
		for r := 0; r < n; r++ {
			g = g.AddBiEdge(graph.Vertex(l), graph.Vertex(m+r))
		}
	}

	return g
}

// PathNetwork returns a single chain source→...→sink with uniform capacity,
// useful for smoke tests and benchmarks.
func PathNetwork(length int, capacity int64) *flow.Network {
	g := graph.New()
	caps := edgemap.New()
	for i := 0; i < length; i++ {
		from, to := graph.Vertex(i), graph.Vertex(i+1)
		g = g.AddEdge(from, to)
		caps[edgemap.Edge{From: from, To: to}] = capacity
	}
	net, err := flow.NewNetwork(g, 0, graph.Vertex(length), caps)
	if err != nil {
		panic(err)
	}

	return net
}
