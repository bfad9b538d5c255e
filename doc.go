// Package flowmatch computes two classical combinatorial graph results —
// maximum network flow and maximum matching — on top of a shared immutable
// graph representation and one generic path-search engine.
//
// 🚀 What is flowmatch?
//
//	A small, pure-Go library that brings together:
//		• graph/    — persistent adjacency-list graphs & their algebra
//		              (sorted set ops, transpose, union, symmetrise)
//		• search/   — deterministic backtracking reachability, strategy-
//		              parametric (depth-first / breadth-first), with
//		              alternating-layer support
//		• edgemap/  — edge-keyed integer maps with pointwise arithmetic
//		• flow/     — validated flow networks, Ford–Fulkerson max-flow,
//		              minimum-cut extraction
//		• matching/ — augmenting-path maximum matching (bipartite-safe)
//		• netdef/   — YAML definitions & built-in example instances
//
// ✨ Why choose flowmatch?
//
//   - Value semantics – every solver iteration is a pure function of the
//     previous residual / matching state; replay and checkpoint freely
//   - One search engine – both solvers drive the same walker, so the
//     strategy choice (and its iteration-count consequences) is explicit
//   - Honest guarantees – exhaustion is a value, not an error; the
//     bipartite-only matching guarantee is documented, not papered over
//
// Quick ASCII example:
//
//	    0────1
//	    │    │
//	    3────2
//
//	a 4-cycle: its maximum matching has 2 edges, found in 2 augmentations.
//
//	go get github.com/katalvlaran/flowmatch
package flowmatch
