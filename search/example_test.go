package search_test

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/search"
)

// ExampleFindPath contrasts the two strategies on a diamond with a long
// and a short branch: breadth-first returns the fewest-hops witness,
// depth-first commits to the smallest successor of the start.
func ExampleFindPath() {
	g := graph.New().
		AddEdge(0, 1).AddEdge(1, 2).AddEdge(2, 5).
		AddEdge(0, 4).AddEdge(4, 5)

	bfs, _ := search.FindPath(g, 0, graph.NewVertexSet(5), search.WithStrategy(search.BreadthFirst))
	dfs, _ := search.FindPath(g, 0, graph.NewVertexSet(5), search.WithStrategy(search.DepthFirst))

	fmt.Println(bfs.Path)
	fmt.Println(dfs.Path)
	// Output:
	// [0 4 5]
	// [0 1 2 5]
}

// ExampleFindAlternating validates the k-th hop against layers[k mod n]:
// here odd hops must use the second layer's single edge.
func ExampleFindAlternating() {
	layer0 := graph.New().AddEdge(0, 1).AddEdge(2, 3)
	layer1 := graph.New().AddEdge(1, 2)

	res, _ := search.FindAlternating([]*graph.Graph{layer0, layer1}, 0, graph.NewVertexSet(3))

	fmt.Println(res.Found, res.Path)
	// Output:
	// true [0 1 2 3]
}

// ExampleWithFilterEdge vetoes an edge without touching the graph, the
// mechanism residual-capacity checks are built on.
func ExampleWithFilterEdge() {
	g := graph.New().AddEdge(0, 1).AddEdge(1, 2)

	res, _ := search.FindPath(g, 0, graph.NewVertexSet(2),
		search.WithFilterEdge(func(from, to graph.Vertex) bool {
			return !(from == 1 && to == 2)
		}))

	fmt.Println(res.Found)
	// Output:
	// false
}
