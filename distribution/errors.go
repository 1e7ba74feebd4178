// SPDX-License-Identifier: MIT
// Package: lensprior/distribution
//
// errors.go — sentinel errors for the distribution package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Sentinels are wrapped with operation context via %w, never re-declared
//     with formatted text.
//   • Samplers never panic on user-supplied parameters.

package distribution

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates an out-of-domain distribution parameter:
// non-positive scale or shape, inverted or empty bounds, NaN or infinite
// location/scale.
var ErrInvalidParameter = errors.New("distribution: invalid parameter")

// ErrInvalidCovariance indicates that a covariance matrix is not symmetric
// positive-semi-definite within the numeric tolerance.
var ErrInvalidCovariance = errors.New("distribution: covariance is not symmetric positive-semi-definite")

// ErrDimensionMismatch indicates incompatible vector or matrix lengths
// (mean vs covariance, mean vs bounds).
var ErrDimensionMismatch = errors.New("distribution: dimension mismatch")

// ErrNilRand indicates that a sampler was called without a generator.
var ErrNilRand = errors.New("distribution: rng is required")

// Operation tags used as error prefixes.
const (
	opNormal       = "SampleNormal"
	opBeta         = "SampleBeta"
	opMultivarNew  = "NewMultivarNormal"
	opMultivarDraw = "SampleMultivarNormal"
)

// distErrorf prefixes a sentinel with the operation tag and a formatted detail.
func distErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
