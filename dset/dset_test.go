package dset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edmonds/dset"
)

func TestReset_Singletons(t *testing.T) {
	ds := dset.New[int]()
	ds.Reset([]int{0, 1, 2, 3})

	for v := 0; v < 4; v++ {
		require.True(t, ds.IsRepresentative(v))
		require.Equal(t, v, ds.Find(v))
	}
}

func TestUnite_ForcesFirstArgAsRepresentative(t *testing.T) {
	ds := dset.New[int]()
	ds.Reset([]int{0, 1, 2})

	ds.Unite(0, 1)
	require.Equal(t, 0, ds.Find(0))
	require.Equal(t, 0, ds.Find(1))
	require.True(t, ds.IsRepresentative(0))
	require.False(t, ds.IsRepresentative(1))

	ds.Unite(2, 0)
	require.Equal(t, 2, ds.Find(0))
	require.Equal(t, 2, ds.Find(1))
	require.Equal(t, 2, ds.Find(2))
	require.True(t, ds.IsRepresentative(2))
}

func TestUnite_SwapsValuesNotStructure(t *testing.T) {
	// Force the shallower-attaches-under-deeper path to exercise the value
	// swap: build a depth-1 tree at b, then unite(a, b) where a is still a
	// singleton (depth 0 < depth 1).
	ds := dset.New[int]()
	ds.Reset([]int{10, 20, 30})

	ds.Unite(20, 30) // 20 now has depth 1, root of {20,30}
	ds.Unite(10, 20) // depth(10)=0 < depth(20)=1 -> swap path

	require.Equal(t, 10, ds.Find(10))
	require.Equal(t, 10, ds.Find(20))
	require.Equal(t, 10, ds.Find(30))
	require.True(t, ds.IsRepresentative(10))
}

func TestDisconnect_IsolatesSingleElement(t *testing.T) {
	ds := dset.New[int]()
	ds.Reset([]int{0, 1, 2})

	ds.Unite(0, 1)
	ds.Unite(0, 2)
	require.Equal(t, 0, ds.Find(1))

	ds.Disconnect(1)
	require.True(t, ds.IsRepresentative(1))
	require.Equal(t, 1, ds.Find(1))

	// Other members of the class are unaffected.
	require.Equal(t, 0, ds.Find(2))
}

func TestDisjointSets_StringKeys(t *testing.T) {
	// DisjointSets[T] is generic over its element type; confirm it works
	// over something other than int, not just blossom's vertex IDs.
	ds := dset.New[string]()
	ds.Reset([]string{"A", "B", "C"})

	ds.Unite("A", "B")
	require.Equal(t, "A", ds.Find("B"))

	ds.Unite("C", "A")
	require.Equal(t, "C", ds.Find("B"))
}

func TestFind_PathHalvingKeepsCorrectness(t *testing.T) {
	ds := dset.New[int]()
	n := 50
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	ds.Reset(values)

	// Chain everything onto 0 one at a time; Find must still resolve
	// correctly at every step regardless of internal path compression.
	for i := 1; i < n; i++ {
		ds.Unite(0, i)
	}
	for i := 0; i < n; i++ {
		require.Equal(t, 0, ds.Find(i))
	}
}
