package blossom

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/edmonds/dset"
	"github.com/katalvlaran/edmonds/ggraph"
)

// assertf panics wrapping ErrInvariantViolation when cond is false. It
// guards preconditions that are unreachable on well-formed input and on a
// correct implementation — violations are programming errors, never
// validation outcomes.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...)))
	}
}

// Compute runs Edmonds' blossom algorithm on g from scratch: a greedy
// initial matching (ascending vertex degree) followed by the full
// GROW/AUGMENT/SHRINK search. It returns the matching as an edge list, one
// entry per matched pair.
//
// A Matcher may be reused across repeated Compute calls; each call
// reallocates the working arrays to size g.NumNodes().
//
// Compute times its two phases separately, mirroring edmonds.cpp's two
// std::chrono measurements: the greedy initial matching, and everything
// after it. Read m.Stats after Compute returns to retrieve them.
//
// Complexity: O(n^3) worst case.
func (m *Matcher) Compute(g *ggraph.Graph) ([]ggraph.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	m.alloc(g)
	for v := 0; v < m.n; v++ {
		m.mu[v] = v
	}

	greedyStart := time.Now()
	m.greedyInit()
	m.Stats.GreedyMatching = time.Since(greedyStart)

	mainLoopStart := time.Now()
	m.reset()
	m.run()
	m.Stats.MainLoop = time.Since(mainLoopStart)

	return m.recoverMatching(), nil
}

// ComputeSeeded runs the same GROW/AUGMENT/SHRINK search as Compute, but
// starting from a caller-supplied matching instead of a fresh greedy one.
// It is intended for an independent verifier: feed in a candidate matching
// and compare len(result) against len(seed) — if they're equal, no
// augmenting path exists and seed was already maximum.
//
// seed must be a valid matching (no vertex appears twice across its
// entries); ErrInvalidSeedMatching is returned otherwise. seed's edges are
// not checked against g's edge set — callers that need that guarantee
// (e.g. edmonds/cmd/matchverify) must check it themselves first.
func (m *Matcher) ComputeSeeded(g *ggraph.Graph, seed []ggraph.Edge) ([]ggraph.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	m.alloc(g)
	for v := 0; v < m.n; v++ {
		m.mu[v] = v
	}
	for _, e := range seed {
		if m.mu[e.U] != e.U || m.mu[e.V] != e.V {
			return nil, fmt.Errorf("%w: vertex %d or %d already matched", ErrInvalidSeedMatching, e.U, e.V)
		}
		m.mu[e.U] = e.V
		m.mu[e.V] = e.U
	}

	m.Stats.GreedyMatching = 0
	mainLoopStart := time.Now()
	m.reset()
	m.run()
	m.Stats.MainLoop = time.Since(mainLoopStart)

	return m.recoverMatching(), nil
}

// alloc (re)sizes every working array to g.NumNodes() and binds g as the
// borrowed, read-only input for the upcoming run.
func (m *Matcher) alloc(g *ggraph.Graph) {
	n := g.NumNodes()
	m.g = g
	m.n = n
	m.mu = make([]int, n)
	m.phi = make([]int, n)
	m.tree = make([]int, n)
	m.scanned = make([]bool, n)
	m.forest = make([][]int, n)
	if m.rho == nil {
		m.rho = dset.New[int]()
	}
	m.outerQueue = m.outerQueue[:0]
	m.queueHead = 0
}

// greedyInit computes a greedy matching to reduce later work: vertices are
// visited in ascending-degree order (a stable sort, so output stays
// deterministic when several vertices share a degree), and each unmatched
// vertex is paired with its first unmatched neighbor.
//
// Complexity: O(n log n + m).
func (m *Matcher) greedyInit() {
	order := make([]int, m.n)
	for v := range order {
		order[v] = v
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(m.g.Neighbors(order[i])) < len(m.g.Neighbors(order[j]))
	})

	for _, v := range order {
		if m.mu[v] != v {
			continue
		}
		for _, w := range m.g.Neighbors(v) {
			if w == v {
				continue // never self-match across a self-loop
			}
			if m.mu[w] == w {
				m.mu[v] = w
				m.mu[w] = v
				break
			}
		}
	}
}

// reset rebuilds the forest from scratch on top of whatever matching mu
// currently holds (greedy or seeded): every vertex reverts to the identity
// phi/tree mapping, rho is reset to n singleton blossoms, and every
// currently-outer (= currently unmatched, since phi is now identity)
// vertex is queued for scanning.
//
// Called exactly once, between the initial matching and the main loop.
func (m *Matcher) reset() {
	identity := make([]int, m.n)
	for v := range identity {
		identity[v] = v
	}
	m.rho.Reset(identity)

	m.outerQueue = m.outerQueue[:0]
	m.queueHead = 0

	for v := 0; v < m.n; v++ {
		m.phi[v] = v
		m.tree[v] = v
		m.forest[v] = m.forest[v][:0]
		m.scanned[v] = false
		m.vertexTypeOf(v) // debug-assert: exactly one vertex type holds
		if m.isOuter(v) {
			m.pushOuter(v)
		}
	}
}

// run drives the main loop: repeatedly find an unscanned outer vertex and
// call step on it, until none remain.
func (m *Matcher) run() {
	for {
		x, ok := m.findUnscannedOuterVertex()
		if !ok {
			return
		}
		m.step(x)
	}
}

// findUnscannedOuterVertex pops candidates off outerQueue until one is
// found that is currently both unscanned and outer (re-verified at pop
// time, since the queue is lazy and may hold stale entries), or the queue
// is exhausted.
func (m *Matcher) findUnscannedOuterVertex() (int, bool) {
	for m.queueHead < len(m.outerQueue) {
		v := m.outerQueue[m.queueHead]
		m.queueHead++
		if !m.scanned[v] && m.isOuter(v) {
			return v, true
		}
	}
	return 0, false
}

// neighborSearch looks for a neighbor y of x that is interesting to
// explore: either out-of-forest (candidate for GROW), or outer and
// provably in a different blossom than x (candidate for AUGMENT/SHRINK).
// Neighbors are scanned in adjacency order and the first qualifying one
// wins — this, together with outerQueue's FIFO discipline, is what makes
// the whole algorithm's output deterministic.
func (m *Matcher) neighborSearch(x int) (y int, isOutOfForest bool, found bool) {
	xRho := m.rho.Find(x)
	for _, w := range m.g.Neighbors(x) {
		if w == x {
			continue // self-loops never qualify
		}
		if m.isOutOfForest(w) {
			return w, true, true
		}
		if m.isOuter(w) && m.rho.Find(w) != xRho {
			return w, false, true
		}
	}
	return 0, false, false
}

// pathToRoot returns the M-alternating sequence v, mu[v], phi[mu[v]],
// mu[phi[mu[v]]], ... up to and including the root of v's tree (the
// unmatched vertex where mu[r] == r). v must be OUTER.
func (m *Matcher) pathToRoot(v int) []int {
	assertf(m.isOuter(v), "pathToRoot: vertex %d is not outer", v)

	path := []int{v}
	for v != m.mu[v] {
		v = m.mu[v]
		path = append(path, v)
		v = m.phi[v]
		path = append(path, v)
	}
	return path
}

// removeVertexFromTree tears v out of whatever tree it belongs to: its phi
// and tree mapping revert to identity, and its blossom is disconnected. If
// v is unmatched it becomes a fresh outer root and is requeued; any
// already-scanned neighbor is requeued too, since v leaving the forest can
// change that neighbor's view of which of its own neighbors are
// interesting.
func (m *Matcher) removeVertexFromTree(v int) {
	m.phi[v] = v
	m.tree[v] = v
	m.rho.Disconnect(v)

	if m.mu[v] == v {
		m.pushOuter(v)
		m.scanned[v] = false
	}

	for _, w := range m.g.Neighbors(v) {
		if m.scanned[w] {
			m.pushOuter(w)
			m.scanned[w] = false
		}
	}
}

// augment flips the M-alternating paths Px and Py (rooted in two different
// trees) and joins them with the new edge {Px[0], Py[0]}, increasing the
// matching's cardinality by exactly one. Both trees are then torn down.
func (m *Matcher) augment(px, py []int) {
	x, y := px[0], py[0]

	for i := 1; i < len(px); i += 2 {
		v := px[i]
		m.mu[m.phi[v]] = v
		m.mu[v] = m.phi[v]
	}
	for i := 1; i < len(py); i += 2 {
		v := py[i]
		m.mu[m.phi[v]] = v
		m.mu[v] = m.phi[v]
	}

	m.mu[x] = y
	m.mu[y] = x

	rx, ry := px[len(px)-1], py[len(py)-1]
	m.tearDownTree(rx)
	m.tearDownTree(ry)
}

// tearDownTree removes root r and every descendant recorded in forest[r]
// from the forest, then clears forest[r].
func (m *Matcher) tearDownTree(r int) {
	m.removeVertexFromTree(r)
	for _, v := range m.forest[r] {
		m.removeVertexFromTree(v)
	}
	m.forest[r] = m.forest[r][:0]
}

// convertPathToEar fixes up phi along the portion of path strictly before
// the blossom base at path[rIdx] (rIdx counted from the root end, as
// produced by shrink's backward scan), so that path's prefix becomes part
// of an M-alternating ear rooted at that base. Every vertex that becomes
// outer as a result is queued for scanning.
func (m *Matcher) convertPathToEar(path []int, rIdx int) {
	i := len(path) - rIdx - 2
	for ; i > 0; i -= 2 {
		if m.rho.IsRepresentative(path[i]) {
			break
		}
	}
	if i < 0 {
		return
	}

	// path[i] is an inner vertex that is its own representative: we've
	// exited the base blossom. It becomes outer in the new blossom.
	m.pushOuter(path[i])
	i -= 2
	for ; i > 0; i -= 2 {
		v := path[i]
		m.phi[m.phi[v]] = v
		m.pushOuter(v)
	}
}

// uniteBasesAlongPath walks path from its first vertex toward base r,
// merging every blossom base (and that base's matching partner) it
// encounters into r's rho class.
func (m *Matcher) uniteBasesAlongPath(path []int, r int) {
	v := path[0]
	for v != r {
		assertf(m.isOuter(v), "uniteBasesAlongPath: vertex %d is not outer", v)
		assertf(v != m.phi[m.mu[v]], "uniteBasesAlongPath: vertex %d already converged to its own ear base", v)

		if m.rho.IsRepresentative(v) {
			m.rho.Unite(r, v)
			m.rho.Unite(r, m.mu[v])
		}
		v = m.phi[m.mu[v]]
	}
}

// shrink contracts the blossom formed by two same-tree alternating paths
// Px and Py (which share a tail ending at the same root) into a single
// outer vertex: it finds the deepest shared vertex that is still a
// blossom base, converts both paths into one ear decomposition rooted
// there, closes phi over the new edge {Px[0], Py[0]}, and merges every
// blossom base the two paths pass through into the new base's rho class.
func (m *Matcher) shrink(px, py []int) {
	x, y := px[0], py[0]

	var r int
	rIdx := -1
	limit := len(px)
	if len(py) < limit {
		limit = len(py)
	}
	for i := 0; i < limit; i++ {
		nx := px[len(px)-1-i]
		ny := py[len(py)-1-i]
		if nx != ny {
			break
		}
		if m.rho.IsRepresentative(nx) {
			r = nx
			rIdx = i
		}
	}
	assertf(rIdx >= 0, "shrink: no shared blossom base found between paths")

	m.convertPathToEar(px, rIdx)
	m.convertPathToEar(py, rIdx)

	if m.rho.Find(x) != r {
		m.phi[x] = y
	}
	if m.rho.Find(y) != r {
		m.phi[y] = x
	}

	m.uniteBasesAlongPath(px, r)
	m.uniteBasesAlongPath(py, r)
}

// step drives outer vertex x through as many GROW/SHRINK transitions as it
// yields, stopping either when x is exhausted (no more interesting
// neighbors — x is marked scanned) or when an AUGMENT destroys the current
// tree.
func (m *Matcher) step(x int) {
	for {
		assertf(m.isOuter(x) && !m.scanned[x], "step: vertex %d is not an unscanned outer vertex", x)

		y, yOutOfForest, found := m.neighborSearch(x)
		if !found {
			m.scanned[x] = true
			return
		}

		if yOutOfForest {
			m.phi[y] = x
			m.tree[y] = m.tree[x]
			m.tree[m.mu[y]] = m.tree[x]
			m.forest[m.tree[x]] = append(m.forest[m.tree[x]], y, m.mu[y])
			m.pushOuter(m.mu[y])
			continue
		}

		px := m.pathToRoot(x)
		py := m.pathToRoot(y)

		if px[len(px)-1] != py[len(py)-1] {
			m.augment(px, py)
			return
		}

		m.shrink(px, py)
	}
}

// recoverMatching reads the final mu mapping into an edge list, emitting
// each matched pair exactly once.
func (m *Matcher) recoverMatching() []ggraph.Edge {
	emitted := make([]bool, m.n)
	var edges []ggraph.Edge
	for v := 0; v < m.n; v++ {
		if m.mu[v] != v && !emitted[v] {
			edges = append(edges, ggraph.Edge{U: v, V: m.mu[v]})
			emitted[v] = true
			emitted[m.mu[v]] = true
		}
	}
	return edges
}
