package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireValidPartition asserts the partition invariants: gapless coverage
// of [0, capacity), positive sizes, and maximally coalesced free space.
func requireValidPartition(t *testing.T, e *Engine) {
	t.Helper()
	regions := e.ListRegions()
	require.NotEmpty(t, regions, "partition must never be empty")

	next := 0
	for i, r := range regions {
		require.Positive(t, r.Size, "region %d has non-positive size", i)
		require.Equal(t, next, r.Start, "region %d start leaves a gap or overlap", i)
		if i > 0 && !regions[i-1].Occupied {
			require.True(t, r.Occupied, "adjacent free regions at index %d", i)
		}
		next += r.Size
	}
	require.Equal(t, e.Capacity(), next, "partition must cover the whole capacity")
}

// mustAlloc allocates or fails the test.
func mustAlloc(t *testing.T, e *Engine, size, owner int) int {
	t.Helper()
	start, err := e.Allocate(size, owner)
	require.NoError(t, err)
	return start
}

// newEngine creates an engine or fails the test.
func newEngine(t *testing.T, capacity int) *Engine {
	t.Helper()
	e, err := New(capacity)
	require.NoError(t, err)
	return e
}

// importStates replaces the partition of a fresh engine with states.
func importStates(t *testing.T, states []RegionState) *Engine {
	t.Helper()
	e := newEngine(t, 1)
	require.NoError(t, e.Import(states))
	return e
}
