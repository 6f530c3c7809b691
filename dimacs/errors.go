package dimacs

import "errors"

// Sentinel errors returned while parsing a DIMACS file. Errors raised on a
// specific line are wrapped with that line's number via
// fmt.Errorf("%w: ...") at the call site (a file that ends without a header
// gets a bare ErrMissingHeader), so callers should branch with errors.Is
// rather than string comparison.
var (
	// ErrMissingHeader indicates an "e" line was encountered before any
	// "p edge N M" header, or the file ended without ever declaring one.
	ErrMissingHeader = errors.New("dimacs: missing 'p edge' header")

	// ErrDuplicateHeader indicates a second "p edge" header line.
	ErrDuplicateHeader = errors.New("dimacs: duplicate 'p edge' header")

	// ErrBadHeader indicates a "p edge" line that does not consist of
	// exactly the four fields "p", "edge", N and M. A non-integer N or M (or
	// a negative N) is reported as ErrBadInteger instead.
	ErrBadHeader = errors.New("dimacs: malformed 'p edge' header")

	// ErrTruncatedEdgeLine indicates an "e" line that does not have exactly
	// two vertex fields; a line with extra fields is rejected with it too.
	ErrTruncatedEdgeLine = errors.New("dimacs: edge line missing a field")

	// ErrBadInteger indicates a field that should be an integer but isn't.
	ErrBadInteger = errors.New("dimacs: invalid integer field")

	// ErrZeroVertexID indicates a vertex id of 0 or less; DIMACS ids are
	// 1-based, so anything below 1 is invalid.
	ErrZeroVertexID = errors.New("dimacs: vertex id must be >= 1")

	// ErrVertexOutOfRange indicates a vertex id greater than the N
	// declared by the header.
	ErrVertexOutOfRange = errors.New("dimacs: vertex id exceeds declared vertex count")
)
