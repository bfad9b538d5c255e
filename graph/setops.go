// Sorted-slice set primitives backing every adjacency-list combination in
// this package. Each binary primitive assumes both inputs are strictly
// increasing, preserves that invariant in its output, and runs a single
// merge pass in O(m+n). None of them mutate their inputs.

package graph

import "sort"

// normalize returns a sorted, duplicate-free copy of list.
func normalize(list []Vertex) []Vertex {
	out := append([]Vertex(nil), list...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	// compact duplicates in place
	w := 0
	for i, v := range out {
		if i == 0 || v != out[w-1] {
			out[w] = v
			w++
		}
	}

	return out[:w]
}

// mergeUnion returns the sorted union of a and b.
func mergeUnion(a, b []Vertex) []Vertex {
	out := make([]Vertex, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// mergeDiff returns the sorted difference a minus b.
func mergeDiff(a, b []Vertex) []Vertex {
	out := make([]Vertex, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return out
}

// mergeIntersect returns the sorted intersection of a and b.
func mergeIntersect(a, b []Vertex) []Vertex {
	out := make([]Vertex, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// mergeXor returns the sorted symmetric difference of a and b.
func mergeXor(a, b []Vertex) []Vertex {
	out := make([]Vertex, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// sortedContains reports whether v is a member of the strictly increasing
// slice list, by binary search.
func sortedContains(list []Vertex, v Vertex) bool {
	lo, hi := 0, len(list)
	for lo < hi {
		mid := (lo + hi) / 2
		if list[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo < len(list) && list[lo] == v
}
