package dset

// node is one slot in the forest. value is the externally visible label of
// whatever class this node currently roots or belongs to; once a node is no
// longer a root, its value field is stale and ignored — only a root's value
// is meaningful, reached either directly (node has no parent) or via one
// parent hop.
type node[T comparable] struct {
	parent *node[T]
	value  T
	depth  uint
}

// DisjointSets is a union-find structure over an element type T. Elements
// are introduced via Reset; Unite, Find, IsRepresentative, and Disconnect
// operate only on elements that were part of the most recent Reset.
type DisjointSets[T comparable] struct {
	slots map[T]*node[T]
}

// New returns an empty DisjointSets. Call Reset before using it.
func New[T comparable]() *DisjointSets[T] {
	return &DisjointSets[T]{slots: make(map[T]*node[T])}
}

// Reset discards any previous state and creates one singleton class per
// entry of values, labeled by its own value. Calling Reset again (on the
// same instance, with a new or the same values slice) is the supported way
// to reuse a DisjointSets across repeated computations.
//
// Complexity: O(len(values)).
func (ds *DisjointSets[T]) Reset(values []T) {
	ds.slots = make(map[T]*node[T], len(values))
	for _, v := range values {
		ds.slots[v] = &node[T]{value: v}
	}
}

// Find returns the representative value of the class containing v.
//
// Complexity: amortized near-O(1) via path halving — each visited node's
// parent pointer is redirected to its grandparent during the ascent.
func (ds *DisjointSets[T]) Find(v T) T {
	n := ds.slots[v]
	if n.parent == nil {
		return n.value
	}
	for n.parent != nil && n.parent.parent != nil {
		gp := n.parent.parent
		n.parent = gp
		n = gp
	}
	if n.parent != nil {
		return n.parent.value
	}
	return n.value
}

// IsRepresentative reports whether v's slot is currently a root.
//
// Complexity: O(1).
func (ds *DisjointSets[T]) IsRepresentative(v T) bool {
	return ds.slots[v].parent == nil
}

// Unite merges the classes represented by a and b into a single class whose
// representative is exactly a. a and b must both be representatives
// (IsRepresentative(a) && IsRepresentative(b)) and a must not equal b;
// violating this precondition panics with ErrInvariantViolation before
// anything is modified.
//
// The shallower tree is always attached beneath the deeper one to bound
// Find's amortized cost; if that means a ends up as the child, the values
// stored in a's and b's root nodes are swapped (and the slot map updated to
// match) rather than restructuring the tree, so a still resolves to itself.
// On equal depth, b is attached under a and a's depth is incremented — the
// only case that grows a tree's depth.
//
// Complexity: O(1).
func (ds *DisjointSets[T]) Unite(a, b T) {
	na := ds.slots[a]
	nb := ds.slots[b]

	assertf(na.parent == nil, "Unite: %v is not a representative", a)
	assertf(nb.parent == nil, "Unite: %v is not a representative", b)
	assertf(a != b, "Unite: a and b are the same element (%v)", a)

	switch {
	case na.depth > nb.depth:
		nb.parent = na
	case na.depth < nb.depth:
		na.parent = nb
		na.value, nb.value = nb.value, na.value
		ds.slots[a], ds.slots[b] = nb, na
	default:
		nb.parent = na
		na.depth++
	}
}

// Disconnect detaches v from whatever class it currently belongs to,
// turning it back into a singleton. It does not touch any other member of
// v's former class; the caller is responsible for disconnecting every other
// former member before relying on Find for any of them — see
// edmonds/blossom's tearDownTree, which during augment calls
// removeVertexFromTree (and so Disconnect) on a tree's root and on every
// descendant recorded for it.
//
// Complexity: O(1).
func (ds *DisjointSets[T]) Disconnect(v T) {
	n := ds.slots[v]
	n.parent = nil
	n.depth = 0
}
