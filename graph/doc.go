// Package graph provides the immutable adjacency-list graph value shared by
// the flowmatch solvers, together with its algebra: construction from raw
// adjacency data, persistent edge mutation, set-like combination, and
// transposition.
//
// Representation:
//
//	A Graph maps each vertex to its sorted, duplicate-free successor list.
//	A vertex may be a key with an empty list (isolated vertex), or appear
//	only inside another vertex's list (sink-only vertex); Successors is
//	total and returns an empty list for unknown vertices.
//
// Persistence:
//
//	Graph values are immutable snapshots. Every mutator (AddEdge, XorBiEdge,
//	Union, Transpose, ...) returns a new Graph and leaves the receiver
//	untouched, so solver iterations can thread graph state as pure values.
//	Unchanged adjacency slices are shared between snapshots and must never
//	be written through.
//
// All list-combination primitives assume and preserve ascending order and
// run in O(m+n); constructors normalize (sort + deduplicate) raw input so
// downstream code never sees malformed lists.
//
// No operation in this package fails.
package graph
