// Package dimacs parses and emits the line-oriented DIMACS edge format used
// to feed edmonds/blossom and to record its output:
//
//	c <text>           comment, ignored
//	p edge N M         header: N vertices (1-based ids 1..N), M declared edges
//	e V W              one edge between V and W (1-based)
//
// Vertex ids are 1-based on the wire and 0-based in edmonds/ggraph.Graph;
// Read and Write translate between the two. A well-formed file has exactly
// one header line before any edge line; Read rejects a second header, an
// edge line before any header, and any integer field that is missing,
// unparsable, zero, or outside [1, N]. Unrecognized leading characters
// produce a warning (written to the warnings writer passed to
// ReadWithWarnings, or discarded by Read) and are otherwise ignored.
package dimacs
