// This file declares Vertex, Graph, and VertexSet, and the Graph
// constructors. Query and mutation methods live in methods.go; the sorted
// slice primitives they are built on live in setops.go.

package graph

import "sort"

// Vertex identifies a node in a Graph. Identifiers are opaque; by
// convention they are small non-negative integers.
type Vertex int64

// Graph is an immutable directed graph stored as sorted adjacency lists.
// The zero value is not usable; build graphs with New, FromLists, FromMap,
// or FromSortedMap.
type Graph struct {
	// adj maps a vertex to its strictly increasing successor list.
	adj map[Vertex][]Vertex
}

// New returns an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{adj: make(map[Vertex][]Vertex)}
}

// FromLists builds a Graph from positional adjacency lists: lists[i] holds
// the successors of Vertex(i). Input lists may be unsorted and contain
// duplicates; the constructor normalizes them.
// Complexity: O(V + E log E)
func FromLists(lists [][]Vertex) *Graph {
	g := &Graph{adj: make(map[Vertex][]Vertex, len(lists))}
	for i, list := range lists {
		g.adj[Vertex(i)] = normalize(list)
	}

	return g
}

// FromMap builds a Graph from explicit (vertex, successors) entries.
// Successor lists may be unsorted and contain duplicates; the constructor
// normalizes them. Vertices that appear only as successors stay sink-only.
// Complexity: O(V + E log E)
func FromMap(m map[Vertex][]Vertex) *Graph {
	g := &Graph{adj: make(map[Vertex][]Vertex, len(m))}
	for v, list := range m {
		g.adj[v] = normalize(list)
	}

	return g
}

// FromSortedMap builds a Graph from entries whose successor lists are
// already strictly increasing. The lists are copied but not re-checked;
// callers that cannot guarantee order must use FromMap instead.
// Complexity: O(V + E)
func FromSortedMap(m map[Vertex][]Vertex) *Graph {
	g := &Graph{adj: make(map[Vertex][]Vertex, len(m))}
	for v, list := range m {
		g.adj[v] = append([]Vertex(nil), list...)
	}

	return g
}

// VertexSet is a finite set of vertices. Unlike Graph it is a plain mutable
// helper; callers that need snapshot semantics should Clone first.
type VertexSet map[Vertex]struct{}

// NewVertexSet returns a set holding the given vertices, duplicates removed.
func NewVertexSet(vs ...Vertex) VertexSet {
	s := make(VertexSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}

	return s
}

// Add inserts v into the set.
func (s VertexSet) Add(v Vertex) { s[v] = struct{}{} }

// AddAll inserts every given vertex into the set.
func (s VertexSet) AddAll(vs ...Vertex) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Remove deletes v from the set; removing an absent vertex is a no-op.
func (s VertexSet) Remove(v Vertex) { delete(s, v) }

// Has reports whether v is a member of the set.
func (s VertexSet) Has(v Vertex) bool {
	_, ok := s[v]

	return ok
}

// Len returns the number of members.
func (s VertexSet) Len() int { return len(s) }

// Values returns the members in ascending order.
func (s VertexSet) Values() []Vertex {
	out := make([]Vertex, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Clone returns an independent copy of the set.
func (s VertexSet) Clone() VertexSet {
	out := make(VertexSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}
