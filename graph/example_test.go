package graph_test

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/graph"
)

// ExampleGraph_AddEdge shows that every mutation returns a fresh graph
// and leaves the receiver untouched.
func ExampleGraph_AddEdge() {
	g1 := graph.New().AddEdge(0, 1)
	g2 := g1.AddEdge(1, 2)

	fmt.Println(g1.Successors(1))
	fmt.Println(g2.Successors(1))
	// Output:
	// []
	// [2]
}

// ExampleGraph_Symmetrise turns a one-directional encoding into an
// undirected relation by unioning the graph with its transpose.
func ExampleGraph_Symmetrise() {
	g := graph.New().AddEdge(0, 1).AddEdge(1, 2)
	u := g.Symmetrise()

	fmt.Println(u.Successors(1))
	fmt.Println(u.HasEdge(2, 1))
	// Output:
	// [0 2]
	// true
}

// ExampleGraph_Terminals lists vertices with no outgoing edges, which
// is how free vertices are discovered in a matching.
func ExampleGraph_Terminals() {
	g := graph.New().AddEdge(0, 1).AddEdge(0, 2).AddVertex(7)

	fmt.Println(g.Terminals().Values())
	// Output:
	// [1 2 7]
}

// ExampleGraph_XorEdge toggles edge presence, the primitive behind
// flipping an alternating path in and out of a matching.
func ExampleGraph_XorEdge() {
	g := graph.New().AddEdge(0, 1)

	fmt.Println(g.XorEdge(0, 1).HasEdge(0, 1))
	fmt.Println(g.XorEdge(0, 2).HasEdge(0, 2))
	// Output:
	// false
	// true
}
