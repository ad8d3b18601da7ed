package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Simulate_DeterministicWithSeed verifies that two engines driven with
// the same seed and parameters end in identical partitions.
func Test_Simulate_DeterministicWithSeed(t *testing.T) {
	run := func() []RegionState {
		e := newEngine(t, 2048)
		e.Seed(1234)
		e.SetPlacement(BestFit)
		e.SetEviction(EvictLRU)
		require.NoError(t, e.Simulate(50, 8, 128))
		return e.Export()
	}

	require.Equal(t, run(), run())
}

func Test_Simulate_DifferentSeedsDiverge(t *testing.T) {
	runSeeded := func(seed int64) []RegionState {
		e := newEngine(t, 2048)
		e.Seed(seed)
		require.NoError(t, e.Simulate(50, 8, 128))
		return e.Export()
	}

	require.NotEqual(t, runSeeded(1), runSeeded(2))
}
