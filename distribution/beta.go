// SPDX-License-Identifier: MIT
// Package: lensprior/distribution
//
// beta.go — Beta(a, b) draws mapped onto [lower, upper].

package distribution

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// SampleBeta draws x ~ Beta(a, b) and returns x*(upper-lower)+lower
// (defaults: lower=0, upper=1).
//
// Errors (ErrInvalidParameter): a <= 0, b <= 0, lower >= upper, NaN or
// infinite inputs. ErrNilRand if rng is nil.
// Complexity: O(1) expected (two gamma draws).
func SampleBeta(rng *rand.Rand, a, b float64, opts ...Option) (float64, error) {
	if rng == nil {
		return 0, distErrorf(opBeta, ErrNilRand, "nil generator")
	}
	bc := newBetaBounds(opts...)
	if err := validateBeta(a, b, bc); err != nil {
		return 0, err
	}

	x := distuv.Beta{Alpha: a, Beta: b, Src: rng}.Rand()

	return clamp(x*(bc.upper-bc.lower)+bc.lower, bc.lower, bc.upper), nil
}

// validateBeta checks the domain of a scaled beta draw.
func validateBeta(a, b float64, bc boundsConfig) error {
	if !isFinite(a) || a <= 0 {
		return distErrorf(opBeta, ErrInvalidParameter, "a=%g must be finite and > 0", a)
	}
	if !isFinite(b) || b <= 0 {
		return distErrorf(opBeta, ErrInvalidParameter, "b=%g must be finite and > 0", b)
	}
	if !isFinite(bc.lower) || !isFinite(bc.upper) || bc.lower >= bc.upper {
		return distErrorf(opBeta, ErrInvalidParameter, "bounds [%g, %g] must be finite with lower < upper", bc.lower, bc.upper)
	}

	return nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
