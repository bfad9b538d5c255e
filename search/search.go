// Package search generalizes nondeterministic reachability ("find a path to
// any target vertex") into a deterministic, terminating backtracking walker
// over one or more edge layers.
//
// Key properties:
//   - Tagged Result{Found, Path}: "no path" is a value, not an error
//   - Strategy-parametric frontier: DepthFirst (stack) or BreadthFirst (queue)
//   - Global visited set: simple paths only, at most |V| expansions
//   - Deterministic tie-break: ties resolve toward the smallest vertex id
//   - Layered search: edge at hop k is validated against layers[k mod n],
//     which implements alternating-path search for the matching solver
//
// Complexity:
//
//	Time:   O(V + E) per call (hooks and filters O(1)).
//	Memory: O(V) for frontier, visited set, and parent links.
package search

import (
	"github.com/katalvlaran/flowmatch/graph"
)

// frontierEntry pairs a discovered vertex with its hop distance from the
// start; the distance selects the edge layer for its continuations.
type frontierEntry struct {
	v     graph.Vertex
	depth int
}

// walker encapsulates mutable search state for one call.
type walker struct {
	layers   []*graph.Graph
	targets  graph.VertexSet
	opts     Options
	frontier []frontierEntry
	visited  graph.VertexSet
	parent   map[graph.Vertex]graph.Vertex
	expanded int
}

// FindPath searches g for a simple path from start to any vertex in
// targets and returns the witness. When start itself is a target the
// result is the single-vertex path [start]. Exhaustion yields
// Result{Found: false} with a nil error.
func FindPath(g *graph.Graph, start graph.Vertex, targets graph.VertexSet, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}

	return FindAlternating([]*graph.Graph{g}, start, targets, opts...)
}

// Reachable reports whether some vertex in targets can be reached from
// start along a simple path in g. It shares the walker with FindPath and
// stops as soon as a target is discovered.
func Reachable(g *graph.Graph, start graph.Vertex, targets graph.VertexSet, opts ...Option) (bool, error) {
	res, err := FindPath(g, start, targets, opts...)

	return res.Found, err
}

// FindAlternating searches for a simple path whose k-th hop is an edge of
// layers[k mod len(layers)]. With a single layer this is plain
// reachability; with [notM, M] it finds alternating paths over interleaved
// edge sets. Layer choice follows the tail vertex's hop distance, which is
// well defined because the visited set admits each vertex once.
func FindAlternating(layers []*graph.Graph, start graph.Vertex, targets graph.VertexSet, opts ...Option) (Result, error) {
	// 1) Validate layers
	if len(layers) == 0 {
		return Result{}, ErrNoLayers
	}
	for _, l := range layers {
		if l == nil {
			return Result{}, ErrGraphNil
		}
	}

	// 2) Build options and catch invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	// 3) Trivial witness: the start already satisfies the goal
	if targets.Has(start) {
		return Result{Found: true, Path: []graph.Vertex{start}}, nil
	}

	// 4) Run the walker
	w := &walker{
		layers:   layers,
		targets:  targets,
		opts:     o,
		frontier: []frontierEntry{{v: start, depth: 0}},
		visited:  graph.NewVertexSet(start),
		parent:   make(map[graph.Vertex]graph.Vertex),
	}

	return w.loop(start)
}

// loop drains the frontier until a target is discovered, the space is
// exhausted, the expansion cap trips, or the context is canceled.
func (w *walker) loop(start graph.Vertex) (Result, error) {
	for len(w.frontier) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return Result{}, w.opts.Ctx.Err()
		default:
		}

		// expansion cap: treat the rest of the space as exhausted
		w.expanded++
		if w.opts.MaxExpansions > 0 && w.expanded > w.opts.MaxExpansions {
			return Result{}, nil
		}

		entry := w.pop()
		w.opts.OnExpand(entry.v, entry.depth)

		if goal, ok := w.expand(entry); ok {
			return Result{Found: true, Path: w.reconstruct(start, goal)}, nil
		}
	}

	return Result{}, nil
}

// pop removes the next entry per strategy: LIFO for DepthFirst, FIFO for
// BreadthFirst.
func (w *walker) pop() frontierEntry {
	if w.opts.Strategy == BreadthFirst {
		e := w.frontier[0]
		w.frontier = w.frontier[1:]

		return e
	}
	e := w.frontier[len(w.frontier)-1]
	w.frontier = w.frontier[:len(w.frontier)-1]

	return e
}

// expand discovers the unvisited successors of entry.v in the layer
// selected by its depth. It returns (goal, true) as soon as a target is
// discovered; otherwise the successors join the frontier.
func (w *walker) expand(entry frontierEntry) (graph.Vertex, bool) {
	layer := w.layers[entry.depth%len(w.layers)]
	succs := layer.Successors(entry.v)

	// For the stack discipline, push in descending order so the smallest
	// successor is popped first; the queue discipline dequeues in the
	// stored ascending order already.
	first, step := 0, 1
	if w.opts.Strategy == DepthFirst {
		first, step = len(succs)-1, -1
	}

	for i := first; i >= 0 && i < len(succs); i += step {
		next := succs[i]
		if w.visited.Has(next) {
			continue
		}
		if !w.opts.FilterEdge(entry.v, next) {
			continue
		}
		w.visited.Add(next)
		w.parent[next] = entry.v
		if w.targets.Has(next) {
			return next, true
		}
		w.frontier = append(w.frontier, frontierEntry{v: next, depth: entry.depth + 1})
	}

	return 0, false
}

// reconstruct walks the parent links from goal back to start and reverses
// the collected vertices into a start-first witness.
func (w *walker) reconstruct(start, goal graph.Vertex) []graph.Vertex {
	path := []graph.Vertex{goal}
	for cur := goal; cur != start; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
