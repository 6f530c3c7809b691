// Command edmonds reads a graph in DIMACS edge format and writes a maximum
// cardinality matching of it, also in DIMACS edge format, to stdout.
//
// Usage:
//
//	edmonds <input.dmx>
//
// Timing for the greedy warm start and the main augmenting-path search is
// logged to stderr; the matching itself goes to stdout so it can be piped
// or redirected independently of the diagnostics.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/edmonds/blossom"
	"github.com/katalvlaran/edmonds/dimacs"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input DIMACS file>\n", os.Args[0])
	}

	// flag's built-in -h/--help handling exits 0 before flag.NArg() below
	// ever runs; intercept it here so --help is treated the same as a
	// missing argument, exit 1, matching the original CLI.
	if len(os.Args) == 2 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		flag.Usage()
		os.Exit(1)
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "edmonds: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, stdout, diagnostics *os.File) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open input file: %w", err)
	}
	defer f.Close()

	g, err := dimacs.Read(f)
	if err != nil {
		return fmt.Errorf("could not parse %s: %w", path, err)
	}
	fmt.Fprintf(diagnostics, "loaded graph: %d nodes, %d edges\n", g.NumNodes(), len(g.Edges()))

	m := &blossom.Matcher{}

	matching, err := m.Compute(g)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}
	fmt.Fprintf(diagnostics, "greedy matching took %s\n", m.Stats.GreedyMatching)
	fmt.Fprintf(diagnostics, "main loop took %s\n", m.Stats.MainLoop)
	fmt.Fprintf(diagnostics, "computed matching of cardinality %d\n", len(matching))

	return dimacs.Write(stdout, g.NumNodes(), matching)
}
