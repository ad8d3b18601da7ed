package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Compact_SlidesOccupiedRegionsDown(t *testing.T) {
	e := newEngine(t, 128)
	a := mustAlloc(t, e, 16, 1)
	b := mustAlloc(t, e, 32, 2)
	c := mustAlloc(t, e, 16, 3)
	_ = c
	require.NoError(t, e.Deallocate(a))
	require.NoError(t, e.Deallocate(b))

	e.Compact()

	regions := e.ListRegions()
	require.Len(t, regions, 2)
	require.Equal(t, 0, regions[0].Start)
	require.Equal(t, 16, regions[0].Size)
	require.Equal(t, 3, regions[0].Owner)
	require.Equal(t, Region{Start: 16, Size: 112}, regions[1])
	require.Equal(t, 1, e.Compactions())
	requireValidPartition(t, e)
}

func Test_Compact_PreservesRelativeOrder(t *testing.T) {
	e := newEngine(t, 160)
	for i := 0; i < 5; i++ {
		mustAlloc(t, e, 16, i+1)
	}
	require.NoError(t, e.Deallocate(16)) // owner 2
	require.NoError(t, e.Deallocate(48)) // owner 4

	e.Compact()

	regions := e.ListRegions()
	require.Len(t, regions, 4)
	require.Equal(t, []int{1, 3, 5}, []int{regions[0].Owner, regions[1].Owner, regions[2].Owner})
	requireValidPartition(t, e)
}

func Test_Compact_IsIdempotent(t *testing.T) {
	e := newEngine(t, 256)
	e.Seed(7)
	require.NoError(t, e.Simulate(10, 8, 32))
	require.NoError(t, e.Deallocate(e.ListRegions()[0].Start))

	e.Compact()
	first := e.ListRegions()
	e.Compact()
	second := e.ListRegions()

	require.Equal(t, first, second)
	require.Equal(t, 2, e.Compactions())
}

func Test_Compact_FullPartitionHasNoTrailingFree(t *testing.T) {
	e := newEngine(t, 64)
	mustAlloc(t, e, 32, 1)
	mustAlloc(t, e, 32, 2)

	e.Compact()

	regions := e.ListRegions()
	require.Len(t, regions, 2)
	for _, r := range regions {
		require.True(t, r.Occupied)
	}
	requireValidPartition(t, e)
}

func Test_Compact_EmptyPartition(t *testing.T) {
	e := newEngine(t, 64)
	e.Compact()

	regions := e.ListRegions()
	require.Len(t, regions, 1)
	require.Equal(t, Region{Start: 0, Size: 64}, regions[0])
}

func Test_Compact_DoesNotDisturbEvictionOrder(t *testing.T) {
	e := newEngine(t, 64)
	a := mustAlloc(t, e, 32, 1)
	mustAlloc(t, e, 32, 2)
	require.NoError(t, e.Deallocate(a))

	// Owner 2 moves to address 0 but keeps its place in the FIFO queue.
	e.Compact()
	mustAlloc(t, e, 32, 3)

	e.SetEviction(EvictFIFO)
	got := mustAlloc(t, e, 32, 4)
	require.Equal(t, 0, got, "owner 2 is the oldest surviving allocation")
	require.Equal(t, 4, e.ListRegions()[0].Owner)
	requireValidPartition(t, e)
}
