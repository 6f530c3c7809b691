package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/edmonds/ggraph"
)

// Read parses a DIMACS edge-format stream into a *ggraph.Graph. Unknown
// leading line characters produce a silently-discarded warning; use
// ReadWithWarnings to observe them.
func Read(r io.Reader) (*ggraph.Graph, error) {
	return ReadWithWarnings(r, io.Discard)
}

// ReadWithWarnings parses r like Read, writing one line to warnings for
// every line that is not blank, a 'c' comment, a "p edge" header, or an
// 'e' edge line (so a 'p' line of any other problem type also draws a
// warning).
func ReadWithWarnings(r io.Reader, warnings io.Writer) (*ggraph.Graph, error) {
	scanner := bufio.NewScanner(r)

	var g *ggraph.Graph
	headerSeen := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line[0] == 'c':
			continue
		case strings.HasPrefix(line, "p edge"):
			if headerSeen {
				return nil, fmt.Errorf("%w: line %d", ErrDuplicateHeader, lineNo)
			}
			n, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", err, lineNo)
			}
			g = ggraph.New(n)
			headerSeen = true
		case line[0] == 'e':
			if !headerSeen {
				return nil, fmt.Errorf("%w: line %d", ErrMissingHeader, lineNo)
			}
			u, v, err := parseEdgeLine(line, g.NumNodes())
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", err, lineNo)
			}
			g.AddEdge(u, v)
		default:
			fmt.Fprintf(warnings, "dimacs: warning: unrecognized line %d: %q\n", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, ErrMissingHeader
	}

	return g, nil
}

// parseHeader parses "p edge N M" and returns N. M (the declared edge
// count) is not validated against the actual number of "e" lines — the
// original reference implementation doesn't enforce it either, and a
// mismatch is harmless (the graph ends up with however many edges it was
// actually given).
func parseHeader(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "edge" {
		return 0, ErrBadHeader
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s", ErrBadInteger, fields[2])
	}
	if _, err := strconv.Atoi(fields[3]); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrBadInteger, fields[3])
	}
	return n, nil
}

// parseEdgeLine parses "e V W" and returns the 0-based endpoints.
func parseEdgeLine(line string, n int) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, ErrTruncatedEdgeLine
	}

	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrBadInteger, fields[1])
	}
	w, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrBadInteger, fields[2])
	}

	if v <= 0 || w <= 0 {
		return 0, 0, ErrZeroVertexID
	}
	if v > n || w > n {
		return 0, 0, fmt.Errorf("%w: %d (N=%d)", ErrVertexOutOfRange, max(v, w), n)
	}

	return v - 1, w - 1, nil
}
