package blossom

import (
	"time"

	"github.com/katalvlaran/edmonds/dset"
	"github.com/katalvlaran/edmonds/ggraph"
)

// Stats reports how long the two phases of the most recent Compute or
// ComputeSeeded call took: the greedy initial matching, and everything
// after it (forest reset plus the GROW/AUGMENT/SHRINK search loop).
// ComputeSeeded has no greedy phase, so its GreedyMatching is always zero.
type Stats struct {
	GreedyMatching time.Duration
	MainLoop       time.Duration
}

// vertexType classifies a vertex relative to the Edmonds forest currently
// maintained by a Matcher. Exactly one of these holds for every vertex at
// every point during Compute/ComputeSeeded.
type vertexType int

const (
	outer vertexType = iota
	inner
	outOfForest
)

// Matcher holds the working state of one blossom-algorithm run: the
// matching mapping mu, the ear-decomposition/tree-parent mapping phi, the
// blossom-base union-find rho, the explicit forest index, and the lazy
// outer-vertex candidate queue. All fields are private — nothing about a
// Matcher's internal state escapes a Compute/ComputeSeeded call except the
// returned matching.
//
// The zero value is ready to use: &Matcher{} is a valid, fresh Matcher.
type Matcher struct {
	g *ggraph.Graph
	n int

	mu      []int // mu[v]: matching partner of v, or v itself if unmatched.
	phi     []int // phi[v]: ear-decomposition / tree-parent predecessor.
	tree    []int // tree[v]: root of v's tree in the forest, or v if none.
	forest  [][]int
	scanned []bool

	rho *dset.DisjointSets[int]

	outerQueue []int
	queueHead  int

	// Stats is overwritten by every Compute/ComputeSeeded call; read it only
	// after one returns.
	Stats Stats
}

// isOuter reports whether v is an OUTER vertex: unmatched, or matched to a
// partner that is not itself at the base of its own ear (i.e. phi[mu[v]]
// has moved on from mu[v]).
func (m *Matcher) isOuter(v int) bool {
	return m.mu[v] == v || m.phi[m.mu[v]] != m.mu[v]
}

// isInner reports whether v is an INNER vertex: its partner is its own ear
// base (so v sits one step inside a tree via phi[mu[v]] == mu[v]) and v
// itself has advanced past the identity phi mapping.
func (m *Matcher) isInner(v int) bool {
	return m.phi[m.mu[v]] == m.mu[v] && m.phi[v] != v
}

// isOutOfForest reports whether v is matched but untouched by the current
// forest: both v and its partner still carry the identity phi mapping.
func (m *Matcher) isOutOfForest(v int) bool {
	return m.mu[v] != v && m.phi[v] == v && m.phi[m.mu[v]] == m.mu[v]
}

// vertexTypeOf classifies v and asserts that exactly one of
// outer/inner/out-of-forest holds — the three predicates partition every
// vertex at every point in the computation. It is used only by invariant
// assertions in reset — the algorithm itself always asks
// isOuter/isInner/isOutOfForest directly, since each is O(1) and
// independently sufficient.
func (m *Matcher) vertexTypeOf(v int) vertexType {
	o, i, f := m.isOuter(v), m.isInner(v), m.isOutOfForest(v)

	count := 0
	for _, b := range [...]bool{o, i, f} {
		if b {
			count++
		}
	}
	assertf(count == 1, "vertex %d satisfies %d of outer/inner/out-of-forest, want exactly 1", v, count)

	switch {
	case o:
		return outer
	case i:
		return inner
	default:
		return outOfForest
	}
}

// pushOuter enqueues v as a candidate to scan as an outer vertex. The queue
// is lazy: entries are re-validated (isOuter, !scanned) at pop time, so a
// push never needs to check whether v is already queued.
func (m *Matcher) pushOuter(v int) {
	m.outerQueue = append(m.outerQueue, v)
}
