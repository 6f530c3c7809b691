// Package edmonds computes maximum-cardinality matchings via Edmonds'
// blossom algorithm.
//
// 🚀 What is edmonds?
//
//	A pure-Go, zero-runtime-dependency library that brings together:
//		• Graph: immutable, int-keyed adjacency structure
//		• DisjointSets: generic union-find with forced-representative Unite
//		• Matcher: Edmonds' blossom algorithm, O(n³) worst case
//		• DIMACS I/O: read/write the DIMACS edge-format text graphs and matchings
//
// ✨ Why choose edmonds?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – same input, same matching, every run
//
// Under the hood, everything is organized under focused subpackages:
//
//	blossom/ — Matcher: maximum-cardinality matching
//	dimacs/  — DIMACS edge-format reader/writer
//	dset/    — generic disjoint-set (union-find)
//	ggraph/  — immutable int-keyed graph consumed by Matcher
//	cmd/edmonds/     — CLI: DIMACS graph in, DIMACS matching out
//	cmd/matchverify/ — CLI: checks a matching is valid and maximum
//
//	go get github.com/katalvlaran/edmonds
package edmonds
