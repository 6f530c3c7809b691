// Package dset implements a union-find (disjoint-set) structure with an
// unusual, deliberate contract: Unite(a, b) always leaves a as the
// representative of the merged class, never b. Classic union-by-rank picks
// whichever root is structurally convenient; callers that need a stable
// label for a merged class (edmonds/blossom's blossom bases are the
// motivating case) would otherwise have to track which side won.
//
// The structural attach still follows union-by-rank (attach the shallower
// tree under the deeper one) so Find stays amortized near-O(1); when the
// forced representative would end up on the shallower side, the two root
// nodes' values are swapped instead of the nodes themselves, which keeps
// the attach O(1) and the invariant intact.
//
// DisjointSets also exposes Disconnect, an O(1) operation that detaches a
// single element back into its own singleton class without touching any
// other member of its former class. It is sound only if the caller
// disconnects every member of a dissolving class before calling Find on any
// survivor — see edmonds/blossom's augment step for the intended usage.
package dset
