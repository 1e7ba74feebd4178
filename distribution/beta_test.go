package distribution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lensprior/distribution"
)

// TestSampleBeta_InvalidParameters checks every ErrInvalidParameter branch.
func TestSampleBeta_InvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		opts []distribution.Option
	}{
		{"zero a", 0, 1, nil},
		{"negative b", 1, -2, nil},
		{"nan a", math.NaN(), 1, nil},
		{"inf b", 1, math.Inf(1), nil},
		{"inverted bounds", 2, 2, []distribution.Option{distribution.WithBounds(1, 0)}},
		{"infinite upper", 2, 2, []distribution.Option{distribution.WithUpper(math.Inf(1))}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := distribution.SampleBeta(newRNG(1), tc.a, tc.b, tc.opts...)
			assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
		})
	}

	_, err := distribution.SampleBeta(nil, 2, 2)
	assert.ErrorIs(t, err, distribution.ErrNilRand)
}

// TestSampleBeta_RangeAndMean checks the support and the scaled mean
// lower + (upper-lower)·a/(a+b).
func TestSampleBeta_RangeAndMean(t *testing.T) {
	tests := []struct {
		name         string
		a, b         float64
		lower, upper float64
	}{
		{"unit", 2, 5, 0, 1},
		{"shifted", 2, 2, -3, 5},
		{"u-shaped", 0.5, 0.5, 10, 11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const n = 20000
			rng := newRNG(3)
			xs := make([]float64, n)
			for i := range xs {
				x, err := distribution.SampleBeta(rng, tc.a, tc.b, distribution.WithBounds(tc.lower, tc.upper))
				require.NoError(t, err)
				require.GreaterOrEqual(t, x, tc.lower)
				require.LessOrEqual(t, x, tc.upper)
				xs[i] = x
			}
			want := tc.lower + (tc.upper-tc.lower)*tc.a/(tc.a+tc.b)
			assert.InDelta(t, want, mean(xs), 0.02*(tc.upper-tc.lower))
		})
	}
}

// TestSampleBeta_DefaultBounds confirms the [0,1] default support.
func TestSampleBeta_DefaultBounds(t *testing.T) {
	rng := newRNG(5)
	for i := 0; i < 1000; i++ {
		x, err := distribution.SampleBeta(rng, 2, 2)
		require.NoError(t, err)
		require.True(t, x >= 0 && x <= 1, "got %g", x)
	}
}
