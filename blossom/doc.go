// Package blossom computes a maximum-cardinality matching in a finite,
// simple, undirected graph using Edmonds' blossom algorithm.
//
// Given n vertices and m edges (edmonds/ggraph.Graph), Compute returns a set
// of edges such that no vertex is incident to more than one of them, and
// the set's cardinality is maximal over all such sets.
//
// Algorithm:
//
//   - A greedy matching seeds the search: vertices are matched in ascending
//     degree order, which reduces the chance of leaving a low-degree vertex
//     unmatched (see greedyInit).
//   - Edmonds' algorithm then grows an alternating forest rooted at every
//     unmatched vertex, classifying vertices as OUTER, INNER, or
//     OUT_OF_FOREST (all three derivable in O(1) from mu and phi), driving
//     three transitions:
//   - GROW extends a tree through an out-of-forest vertex and its partner.
//   - AUGMENT flips an alternating path between two different trees,
//     increasing the matching's cardinality by one and tearing down both
//     trees.
//   - SHRINK contracts an odd cycle ("blossom") found within one tree into
//     a single outer vertex, recorded via a union-find over blossom bases
//     (edmonds/dset).
//   - The process terminates when no outer vertex has an unscanned neighbor
//     left to explore; at that point mu encodes a maximum matching.
//
// Complexity: O(n^3) worst case — O(n) outer-vertex scans, each amortized
// O(n) work across GROW/SHRINK/AUGMENT (path lengths and blossom search are
// O(n); union-find operations are amortized near-O(1)).
//
// Concurrency: a Matcher is strictly single-threaded and mutates its own
// private working arrays; it never touches the input Graph. A Matcher
// instance is reusable across repeated Compute/ComputeSeeded calls — each
// call reallocates the working arrays rather than requiring a fresh
// instance — but a single instance must not be shared across concurrent
// calls. Multiple Matchers may run against the same Graph concurrently,
// since Graph is immutable after construction.
package blossom
