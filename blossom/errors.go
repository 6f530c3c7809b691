package blossom

import "errors"

// Sentinel errors returned by the blossom package.
var (
	// ErrNilGraph indicates that a nil *ggraph.Graph was passed to Compute
	// or ComputeSeeded.
	ErrNilGraph = errors.New("blossom: graph is nil")

	// ErrInvalidSeedMatching indicates that the matching passed to
	// ComputeSeeded covers some vertex twice, so it is not a matching at
	// all and cannot be used to seed mu.
	ErrInvalidSeedMatching = errors.New("blossom: seed matching covers a vertex twice")

	// ErrInvariantViolation indicates an internal precondition failure —
	// pathToRoot called on a non-outer vertex, uniteBasesAlongPath walking
	// onto a non-outer vertex, or similar. These are programming errors:
	// unreachable on well-formed input, never a validation outcome.
	ErrInvariantViolation = errors.New("blossom: internal invariant violated")
)
