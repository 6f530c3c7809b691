// Command matchverify checks that a candidate matching is (a) a valid
// matching of a given graph — every edge present in the graph, every vertex
// covered at most once — and (b) maximum, by feeding it to blossom.Matcher
// as a seed and confirming the search finds no augmenting path.
//
// Usage:
//
//	matchverify <input graph.dmx> <matching.dmx>
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/edmonds/blossom"
	"github.com/katalvlaran/edmonds/dimacs"
	"github.com/katalvlaran/edmonds/ggraph"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input graph> <matching>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "matchverify: %v\n", err)
		os.Exit(1)
	}
}

func run(graphPath, matchingPath string, out *os.File) error {
	g, err := readGraph(graphPath)
	if err != nil {
		return fmt.Errorf("could not load graph: %w", err)
	}
	fmt.Fprintf(out, "loaded graph with %d nodes and %d edges\n", g.NumNodes(), len(g.Edges()))

	matchingGraph, err := readGraph(matchingPath)
	if err != nil {
		return fmt.Errorf("could not load matching: %w", err)
	}
	matching := matchingGraph.Edges()
	fmt.Fprintf(out, "loaded matching with %d nodes and %d edges\n", matchingGraph.NumNodes(), len(matching))

	if matchingGraph.NumNodes() != g.NumNodes() {
		return fmt.Errorf("matching has %d nodes, graph has %d", matchingGraph.NumNodes(), g.NumNodes())
	}
	if len(matching) > g.NumNodes()/2 {
		return fmt.Errorf("matching has more edges than a matching can: %d > %d/2", len(matching), g.NumNodes())
	}

	if err := checkIsMatching(g, matching); err != nil {
		return err
	}
	fmt.Fprintln(out, "the matching is valid")

	m := &blossom.Matcher{}
	augmented, err := m.ComputeSeeded(g, matching)
	if err != nil {
		return fmt.Errorf("could not verify maximality: %w", err)
	}
	if len(augmented) != len(matching) {
		return fmt.Errorf("matching is not maximum: found an augmenting path, %d -> %d", len(matching), len(augmented))
	}
	fmt.Fprintln(out, "the matching is maximum")

	return nil
}

func readGraph(path string) (*ggraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dimacs.Read(f)
}

func checkIsMatching(g *ggraph.Graph, matching []ggraph.Edge) error {
	covered := make([]bool, g.NumNodes())
	for _, e := range matching {
		if !hasNeighbor(g, e.U, e.V) {
			return fmt.Errorf("edge %d-%d is not present in the graph", e.U, e.V)
		}
		if covered[e.U] {
			return fmt.Errorf("node %d is covered twice by the matching", e.U)
		}
		covered[e.U] = true
		if covered[e.V] {
			return fmt.Errorf("node %d is covered twice by the matching", e.V)
		}
		covered[e.V] = true
	}
	return nil
}

func hasNeighbor(g *ggraph.Graph, u, v int) bool {
	for _, w := range g.Neighbors(u) {
		if w == v {
			return true
		}
	}
	return false
}
