package mixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/betamix/mixture"
)

// TestInitialAssignment_Deterministic verifies the pure-function
// contract: identical (n, k, seed) produce the identical assignment,
// different seeds diverge.
func TestInitialAssignment_Deterministic(t *testing.T) {
	a1, err := mixture.InitialAssignment(200, 4, 42)
	require.NoError(t, err)
	a2, err := mixture.InitialAssignment(200, 4, 42)
	require.NoError(t, err)
	assert.Equal(t, a1, a2, "same seed must reproduce the assignment")

	b, err := mixture.InitialAssignment(200, 4, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a1, b, "different seeds must diverge")
}

// TestInitialAssignment_ZeroSeedPolicy: seed 0 maps to the fixed
// default seed, so the zero value is reproducible too.
func TestInitialAssignment_ZeroSeedPolicy(t *testing.T) {
	zero, err := mixture.InitialAssignment(100, 3, 0)
	require.NoError(t, err)
	def, err := mixture.InitialAssignment(100, 3, 1)
	require.NoError(t, err)

	assert.Equal(t, def, zero, "seed 0 follows the documented default-seed policy")
}

// TestInitialAssignment_CoversRange checks every label is in [0, k).
func TestInitialAssignment_CoversRange(t *testing.T) {
	a, err := mixture.InitialAssignment(1000, 5, 7)
	require.NoError(t, err)
	require.Len(t, a, 1000)

	for i, label := range a {
		assert.GreaterOrEqual(t, label, 0, "label at %d", i)
		assert.Less(t, label, 5, "label at %d", i)
	}
}

// TestInitialAssignment_Errors covers the sentinel conditions.
func TestInitialAssignment_Errors(t *testing.T) {
	_, err := mixture.InitialAssignment(10, 0, 1)
	assert.ErrorIs(t, err, mixture.ErrTooFewComponents)

	_, err = mixture.InitialAssignment(0, 2, 1)
	assert.ErrorIs(t, err, mixture.ErrNoObservations)
}
