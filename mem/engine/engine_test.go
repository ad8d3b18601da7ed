package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_New_RejectsBadCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := New(capacity)
		require.ErrorIs(t, err, ErrBadCapacity)
	}
}

func Test_New_StartsWithSingleFreeRegion(t *testing.T) {
	e := newEngine(t, 1024)
	regions := e.ListRegions()
	require.Len(t, regions, 1)
	require.Equal(t, Region{Start: 0, Size: 1024}, regions[0])
	requireValidPartition(t, e)
}

func Test_Allocate_RejectsBadSize(t *testing.T) {
	e := newEngine(t, 1024)

	_, err := e.Allocate(0, 1)
	require.ErrorIs(t, err, ErrBadSize)
	_, err = e.Allocate(-8, 1)
	require.ErrorIs(t, err, ErrBadSize)

	// The request counter increments before dispatch, even for bad input.
	require.Equal(t, 2, e.TotalRequests())
	require.Equal(t, 0, e.FailedRequests())
}

func Test_Allocate_ExactFitFlipsWithoutSplit(t *testing.T) {
	e := newEngine(t, 64)
	start := mustAlloc(t, e, 64, 7)
	require.Equal(t, 0, start)

	regions := e.ListRegions()
	require.Len(t, regions, 1)
	require.True(t, regions[0].Occupied)
	require.Equal(t, 7, regions[0].Owner)
	requireValidPartition(t, e)
}

func Test_Allocate_NoFitWithoutEviction(t *testing.T) {
	e := newEngine(t, 32)
	mustAlloc(t, e, 32, 1)

	_, err := e.Allocate(1, 2)
	require.ErrorIs(t, err, ErrNoFit)
	require.Equal(t, 2, e.TotalRequests())
	require.Equal(t, 1, e.FailedRequests())
	requireValidPartition(t, e)
}

func Test_Deallocate_UnknownAddress(t *testing.T) {
	e := newEngine(t, 128)
	mustAlloc(t, e, 32, 1)

	// Interior address of an occupied region is not a valid target.
	require.ErrorIs(t, e.Deallocate(16), ErrBadAddress)
	// Start of a free region is not a valid target either.
	require.ErrorIs(t, e.Deallocate(32), ErrBadAddress)
	requireValidPartition(t, e)
}

func Test_Deallocate_CoalescesBothOrders(t *testing.T) {
	// Allocating two adjacent blocks then freeing both, in either order,
	// must end with one merged free region spanning both extents.
	for _, order := range [][2]int{{0, 1}, {1, 0}} {
		e := newEngine(t, 64)
		starts := [2]int{
			mustAlloc(t, e, 32, 1),
			mustAlloc(t, e, 32, 2),
		}
		require.NoError(t, e.Deallocate(starts[order[0]]))
		requireValidPartition(t, e)
		require.NoError(t, e.Deallocate(starts[order[1]]))

		regions := e.ListRegions()
		require.Len(t, regions, 1)
		require.Equal(t, Region{Start: 0, Size: 64}, regions[0])
	}
}

func Test_Deallocate_MergesBothNeighborsInOneCall(t *testing.T) {
	e := newEngine(t, 96)
	a := mustAlloc(t, e, 32, 1)
	b := mustAlloc(t, e, 32, 2)
	c := mustAlloc(t, e, 32, 3)

	require.NoError(t, e.Deallocate(a))
	require.NoError(t, e.Deallocate(c))
	require.Len(t, e.ListRegions(), 3)

	// Freeing the middle region merges in both directions at once.
	require.NoError(t, e.Deallocate(b))
	regions := e.ListRegions()
	require.Len(t, regions, 1)
	require.Equal(t, Region{Start: 0, Size: 96}, regions[0])
}

func Test_Simulate_RejectsBadRange(t *testing.T) {
	e := newEngine(t, 1024)
	require.ErrorIs(t, e.Simulate(-1, 1, 2), ErrBadRange)
	require.ErrorIs(t, e.Simulate(5, 0, 2), ErrBadRange)
	require.ErrorIs(t, e.Simulate(5, 8, 4), ErrBadRange)
}

func Test_Simulate_DrivesAllocate(t *testing.T) {
	e := newEngine(t, 4096)
	e.Seed(42)
	require.NoError(t, e.Simulate(20, 16, 64))
	require.Equal(t, 20, e.TotalRequests())
	requireValidPartition(t, e)
}
