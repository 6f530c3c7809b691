package dimacs

import (
	"fmt"
	"io"

	"github.com/katalvlaran/edmonds/ggraph"
)

// Write emits n and edges in DIMACS edge format: a "p edge N M" header
// followed by one "e V W" line per edge, with 1-based vertex ids.
func Write(w io.Writer, n int, edges []ggraph.Edge) error {
	if _, err := fmt.Fprintf(w, "p edge %d %d\n", n, len(edges)); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "e %d %d\n", e.U+1, e.V+1); err != nil {
			return err
		}
	}
	return nil
}

// WriteGraph emits g's full edge set via Write. Useful for round-tripping
// a Read'd graph back out, or for dumping a graph built programmatically.
func WriteGraph(w io.Writer, g *ggraph.Graph) error {
	return Write(w, g.NumNodes(), g.Edges())
}
