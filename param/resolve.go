// SPDX-License-Identifier: MIT
// Package: lensprior/param
//
// resolve.go — dispatch from a Spec to its sampler.

package param

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lensprior/distribution"
)

// Resolve draws one value for spec using rng.
//
// Errors: the distribution sentinels (ErrInvalidParameter, ErrNilRand) from
// the sampler; ErrUnknownDistribution for a nil or foreign Spec.
func Resolve(rng *rand.Rand, spec Spec) (float64, error) {
	switch s := spec.(type) {
	case Normal:
		return distribution.SampleNormal(rng, s.Mu, s.Sigma, distribution.WithBounds(s.Lower, s.Upper))
	case Beta:
		return distribution.SampleBeta(rng, s.A, s.B, distribution.WithBounds(s.Lower, s.Upper))
	default:
		return 0, fmt.Errorf("Resolve: %T: %w", spec, ErrUnknownDistribution)
	}
}
