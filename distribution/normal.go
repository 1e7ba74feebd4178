// SPDX-License-Identifier: MIT
// Package: lensprior/distribution
//
// normal.go — (truncated) univariate normal draws.
//
// Method:
//   The bounds are re-expressed in units of sigma, a=(lower-mu)/sigma and
//   b=(upper-mu)/sigma, and z is drawn directly from N(0,1) restricted to [a,b]:
//     • a=-Inf, b=+Inf  → plain standard normal draw.
//     • b <= 0          → mirror onto [-b,-a] so the work happens on the right.
//     • a >= tailStart  → exact tail sampler (Robert 1995): exponential proposal
//                         for wide intervals, uniform proposal for narrow ones.
//                         Expected iterations are bounded by a small constant.
//     • otherwise       → inverse CDF on [Φ(a), Φ(b)], using Φ(-x) on the right
//                         half so the small tail probability keeps its precision.
//   The result mu + sigma*z is finally clamped into [lower, upper] to absorb
//   rounding in the affine map.
//
// Complexity: O(1) expected per draw.

package distribution

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// tailStart is the standardized lower bound from which the inverse CDF is
// replaced by the tail sampler. Φ(-5) ≈ 2.9e-7 is still well inside float64
// range, so the switch is about speed and stability, not correctness.
const tailStart = 5.0

// SampleNormal draws from N(mu, sigma²) truncated to [lower, upper]
// (defaults: -Inf, +Inf; see WithLower, WithUpper, WithBounds).
//
// Errors (ErrInvalidParameter): sigma <= 0, lower >= upper, NaN in any input,
// infinite mu or sigma. ErrNilRand if rng is nil.
func SampleNormal(rng *rand.Rand, mu, sigma float64, opts ...Option) (float64, error) {
	if rng == nil {
		return 0, distErrorf(opNormal, ErrNilRand, "nil generator")
	}
	bc := newNormalBounds(opts...)
	if err := validateNormal(mu, sigma, bc); err != nil {
		return 0, err
	}

	a := (bc.lower - mu) / sigma
	b := (bc.upper - mu) / sigma
	z := truncStdNormal(rng, a, b)

	return clamp(mu+sigma*z, bc.lower, bc.upper), nil
}

// validateNormal checks the domain of a normal draw.
func validateNormal(mu, sigma float64, bc boundsConfig) error {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return distErrorf(opNormal, ErrInvalidParameter, "mu=%g must be finite", mu)
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return distErrorf(opNormal, ErrInvalidParameter, "sigma=%g must be finite and > 0", sigma)
	}
	if math.IsNaN(bc.lower) || math.IsNaN(bc.upper) || bc.lower >= bc.upper {
		return distErrorf(opNormal, ErrInvalidParameter, "bounds [%g, %g] must satisfy lower < upper", bc.lower, bc.upper)
	}

	return nil
}

// truncStdNormal draws z ~ N(0,1) conditioned on a <= z <= b, a < b.
func truncStdNormal(rng *rand.Rand, a, b float64) float64 {
	switch {
	case math.IsInf(a, -1) && math.IsInf(b, 1):
		return rng.NormFloat64()
	case b <= 0:
		return -truncStdNormal(rng, -b, -a)
	case a >= tailStart:
		return tailStdNormal(rng, a, b)
	case a > 0:
		// Right half: Φ(-b) <= Φ(-a) are both small and precise.
		lo, hi := distuv.UnitNormal.CDF(-b), distuv.UnitNormal.CDF(-a)
		for {
			z := -distuv.UnitNormal.Quantile(lo + openUnit(rng)*(hi-lo))
			if !math.IsInf(z, 0) {
				return clamp(z, a, b)
			}
		}
	default:
		lo, hi := distuv.UnitNormal.CDF(a), distuv.UnitNormal.CDF(b)
		for {
			z := distuv.UnitNormal.Quantile(lo + openUnit(rng)*(hi-lo))
			if !math.IsInf(z, 0) {
				return clamp(z, a, b)
			}
		}
	}
}

// tailStdNormal is Robert's exact sampler for N(0,1) on [a, b], a > 0.
func tailStdNormal(rng *rand.Rand, a, b float64) float64 {
	// Narrow interval: the density varies little across it, so a uniform
	// proposal accepts with probability >= exp(-2-2/a²).
	if b-a < 2/a {
		for {
			z := a + (b-a)*rng.Float64()
			if rng.Float64() <= math.Exp((a*a-z*z)/2) {
				return z
			}
		}
	}

	// Wide interval: translated exponential with the optimal rate.
	alpha := (a + math.Sqrt(a*a+4)) / 2
	for {
		z := a + rng.ExpFloat64()/alpha
		if z > b {
			continue
		}
		d := z - alpha
		if rng.Float64() <= math.Exp(-d*d/2) {
			return z
		}
	}
}

// openUnit returns a uniform value in the open interval (0, 1).
func openUnit(rng *rand.Rand) float64 {
	for {
		if u := rng.Float64(); u > 0 {
			return u
		}
	}
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
