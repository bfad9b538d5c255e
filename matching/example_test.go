package matching_test

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/graph"
	"github.com/katalvlaran/flowmatch/matching"
)

// ExampleMaximum assigns workers (0-2) to tasks (3-6). A greedy pass
// would strand worker 1 behind worker 0's claim on task 4; the
// alternating-path search reshuffles until every worker is placed.
func ExampleMaximum() {
	g := graph.New()
	for _, q := range [][2]graph.Vertex{
		{0, 3}, {0, 4},
		{1, 4},
		{2, 4}, {2, 5}, {2, 6},
	} {
		g = g.AddBiEdge(q[0], q[1])
	}

	res, err := matching.Maximum(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range res.Pairs() {
		fmt.Printf("worker %d → task %d\n", p[0], p[1])
	}
	// Output:
	// worker 0 → task 3
	// worker 1 → task 4
	// worker 2 → task 6
}
