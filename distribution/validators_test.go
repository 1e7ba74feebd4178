package distribution

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRNG returns a fixed-seed generator for in-package tests.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// TestBroadcastBound covers nil, scalar, full-length and mismatched bounds.
func TestBroadcastBound(t *testing.T) {
	out, err := broadcastBound(nil, 3)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = broadcastBound([]float64{2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, out)

	in := []float64{1, 2, 3}
	out, err = broadcastBound(in, 3)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	out[0] = 99
	assert.Equal(t, 1.0, in[0], "result must not alias the input")

	_, err = broadcastBound([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = broadcastBound([]float64{math.NaN()}, 3)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

// TestValidateSymmetric checks the relative tolerance.
func TestValidateSymmetric(t *testing.T) {
	assert.NoError(t, validateSymmetric([][]float64{{1, 1e6}, {1e6 + 1e-4, 1}}))
	assert.ErrorIs(t, validateSymmetric([][]float64{{1, 0.1}, {0.1001, 1}}), ErrInvalidCovariance)
	assert.NoError(t, validateSymmetric([][]float64{{5}}))
}

// TestTruncStdNormal_Mirror checks that an interval left of zero is served by
// mirroring and stays inside [a, b].
func TestTruncStdNormal_Mirror(t *testing.T) {
	rng := newTestRNG()
	for i := 0; i < 1000; i++ {
		z := truncStdNormal(rng, -7, -6.5)
		require.True(t, z >= -7 && z <= -6.5, "got %g", z)
	}
}
