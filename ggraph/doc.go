// Package ggraph provides the immutable, integer-keyed adjacency structure
// consumed by edmonds/blossom and produced/consumed by edmonds/dimacs.
//
// ggraph.Graph is deliberately minimal: vertices are dense integer IDs in
// [0, n), adjacency lists are ordered slices (not sets — iteration order is
// part of the matching algorithm's determinism contract), and a Graph is
// built with New and AddEdge and only read after that. Nothing in edmonds
// mutates a Graph once it is built, which is what lets
// edmonds/blossom run several Matchers against one shared Graph without any
// locking.
package ggraph
