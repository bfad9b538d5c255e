// Package edgemap provides edge-keyed integer maps treated as total
// functions defaulting to zero, plus the pointwise arithmetic the flow
// solver performs as whole-map operations.
//
// Key features:
//   - Get never fails: absent edges read as 0
//   - Add / Sub / Scale are pure pointwise operations returning fresh maps
//   - SwapKeys remaps every (a,b) entry to (b,a) (residual bookkeeping)
//   - Net(v) = sum over edges leaving v minus sum over edges entering v
//   - Zero-valued entries are dropped, so map equality is semantic equality
//
// Complexity: every operation is a single pass, O(len) time and space.
package edgemap

import (
	"sort"

	"github.com/katalvlaran/flowmatch/graph"
)

// Edge is an ordered (tail, head) vertex pair used as a map key.
type Edge struct {
	From, To graph.Vertex
}

// Reverse returns the edge with tail and head swapped.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// Entry pairs an Edge with an integer value, for list→map construction.
type Entry struct {
	Edge Edge
	Val  int64
}

// Map is an edge-keyed integer map with default-zero lookup semantics.
type Map map[Edge]int64

// New returns an empty Map (the all-zero function).
func New() Map {
	return make(Map)
}

// FromEntries builds a Map from an entry list, summing values of repeated
// edges and dropping entries that net to zero.
func FromEntries(entries []Entry) Map {
	m := make(Map, len(entries))
	for _, e := range entries {
		m[e.Edge] += e.Val
		if m[e.Edge] == 0 {
			delete(m, e.Edge)
		}
	}

	return m
}

// Get returns the value at e, or 0 when e is absent.
func (m Map) Get(e Edge) int64 {
	return m[e]
}

// Has reports whether e carries an explicit (non-zero) entry. The flow
// solver uses this to restrict flow recording to the original capacity
// domain.
func (m Map) Has(e Edge) bool {
	_, ok := m[e]

	return ok
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for e, v := range m {
		out[e] = v
	}

	return out
}

// Add returns the pointwise sum m + o; both operands are untouched.
func (m Map) Add(o Map) Map {
	out := m.Clone()
	for e, v := range o {
		out[e] += v
		if out[e] == 0 {
			delete(out, e)
		}
	}

	return out
}

// Sub returns the pointwise difference m - o (negate-then-add).
func (m Map) Sub(o Map) Map {
	return m.Add(o.Scale(-1))
}

// Scale returns m with every value multiplied by k; Scale(0) is the empty
// map.
func (m Map) Scale(k int64) Map {
	if k == 0 {
		return New()
	}
	out := make(Map, len(m))
	for e, v := range m {
		out[e] = v * k
	}

	return out
}

// SwapKeys returns the map with every entry remapped from (a,b) to (b,a).
func (m Map) SwapKeys() Map {
	out := make(Map, len(m))
	for e, v := range m {
		out[e.Reverse()] = v
	}

	return out
}

// Net returns the net value at v: the sum of values on edges leaving v
// minus the sum on edges entering v. For a feasible flow this is zero at
// every vertex except the source (positive) and sink (negative).
func (m Map) Net(v graph.Vertex) int64 {
	var net int64
	for e, val := range m {
		if e.From == v {
			net += val
		}
		if e.To == v {
			net -= val
		}
	}

	return net
}

// Edges returns the explicit keys of m sorted by (From, To), for
// deterministic iteration and presentation.
func (m Map) Edges() []Edge {
	out := make([]Edge, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
