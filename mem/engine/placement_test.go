package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FirstFit_TakesLowestEligibleRegion(t *testing.T) {
	e := newEngine(t, 20)
	start := mustAlloc(t, e, 10, 1)
	require.Equal(t, 0, start)

	regions := e.ListRegions()
	require.Len(t, regions, 2)
	require.Equal(t, 10, regions[0].Size)
	require.True(t, regions[0].Occupied)
	require.Equal(t, Region{Start: 10, Size: 10}, regions[1])
	requireValidPartition(t, e)
}

// holes30_10_50 builds a partition with free holes of sizes 30, 10, and 50
// at distinct offsets, separated by occupied regions.
func holes30_10_50(t *testing.T) *Engine {
	t.Helper()
	return importStates(t, []RegionState{
		{Start: 0, Size: 30},
		{Start: 30, Size: 10, Occupied: true, Owner: 1},
		{Start: 40, Size: 10},
		{Start: 50, Size: 10, Occupied: true, Owner: 2},
		{Start: 60, Size: 50},
	})
}

func Test_BestFit_PicksSmallestEligible(t *testing.T) {
	e := holes30_10_50(t)
	e.SetPlacement(BestFit)

	start := mustAlloc(t, e, 10, 9)
	require.Equal(t, 40, start, "best fit must take the size-10 hole exactly")

	// Exact fit: region count is unchanged, nothing was split.
	require.Len(t, e.ListRegions(), 5)
	requireValidPartition(t, e)
}

func Test_WorstFit_PicksLargestEligibleAndSplits(t *testing.T) {
	e := holes30_10_50(t)
	e.SetPlacement(WorstFit)

	start := mustAlloc(t, e, 10, 9)
	require.Equal(t, 60, start, "worst fit must carve the size-50 hole")

	regions := e.ListRegions()
	require.Len(t, regions, 6)
	require.Equal(t, Region{Start: 70, Size: 40}, regions[5])
	requireValidPartition(t, e)
}

func Test_BestFit_TieBreaksToLowestStart(t *testing.T) {
	e := importStates(t, []RegionState{
		{Start: 0, Size: 16},
		{Start: 16, Size: 8, Occupied: true, Owner: 1},
		{Start: 24, Size: 16},
	})
	e.SetPlacement(BestFit)
	require.Equal(t, 0, mustAlloc(t, e, 16, 2))
}

func Test_WorstFit_TieBreaksToLowestStart(t *testing.T) {
	e := importStates(t, []RegionState{
		{Start: 0, Size: 32},
		{Start: 32, Size: 8, Occupied: true, Owner: 1},
		{Start: 40, Size: 32},
	})
	e.SetPlacement(WorstFit)
	require.Equal(t, 0, mustAlloc(t, e, 8, 2))
}

func Test_NextFit_ResumesFromCursor(t *testing.T) {
	e := newEngine(t, 100)
	e.SetPlacement(NextFit)

	a := mustAlloc(t, e, 20, 1)
	require.Equal(t, 0, a)
	b := mustAlloc(t, e, 20, 2)
	require.Equal(t, 20, b)

	// Free the first block. A first-fit scan would reuse offset 0, but the
	// cursor is still parked at block b's region, so the next allocation
	// continues from there.
	require.NoError(t, e.Deallocate(a))
	c := mustAlloc(t, e, 20, 3)
	require.Equal(t, 40, c)
	requireValidPartition(t, e)
}

func Test_NextFit_WrapsAround(t *testing.T) {
	e := newEngine(t, 100)
	e.SetPlacement(NextFit)

	a := mustAlloc(t, e, 40, 1)
	mustAlloc(t, e, 40, 2)
	require.NoError(t, e.Deallocate(a))

	// Only 20 bytes remain past the cursor; a 40-byte request must wrap to
	// the hole at the front.
	c := mustAlloc(t, e, 40, 3)
	require.Equal(t, 0, c)
	requireValidPartition(t, e)
}

func Test_NextFit_CursorSurvivesCompaction(t *testing.T) {
	e := newEngine(t, 100)
	e.SetPlacement(NextFit)

	a := mustAlloc(t, e, 30, 1)
	mustAlloc(t, e, 30, 2)
	require.NoError(t, e.Deallocate(a))
	e.Compact()

	// After compaction the cursor is reset; allocation scans from the front.
	start := mustAlloc(t, e, 10, 3)
	require.Equal(t, 30, start)
	requireValidPartition(t, e)
}

func Test_ParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		want    Placement
		wantErr bool
	}{
		{in: "first", want: FirstFit},
		{in: "first-fit", want: FirstFit},
		{in: "best", want: BestFit},
		{in: "worst-fit", want: WorstFit},
		{in: "next", want: NextFit},
		{in: "buddy", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePlacement(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func Test_PolicyStrings(t *testing.T) {
	require.Equal(t, "first-fit", FirstFit.String())
	require.Equal(t, "next-fit", NextFit.String())
	require.Equal(t, "none", EvictNone.String())
	require.Equal(t, "lfu", EvictLFU.String())
}
