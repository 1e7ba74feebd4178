// SPDX-License-Identifier: MIT
// Package: lensprior/distribution
//
// validators.go — shape, finiteness and symmetry guards for the multivariate
// sampler.
//
// Note:
//   - Each validator returns a plain sentinel; the caller wraps it with the
//     operation tag.
//   - Symmetry is scanned on the strict upper triangle only, in fixed i→j order.

package distribution

import (
	"math"
)

// symTol is the relative tolerance for |A[i,j]-A[j,i]|.
const symTol = 1e-8

// validateSquare ensures m is n×n.
func validateSquare(m [][]float64, n int) error {
	if len(m) != n {
		return ErrDimensionMismatch
	}
	for _, row := range m {
		if len(row) != n {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// validateFiniteVec rejects NaN and ±Inf entries.
func validateFiniteVec(x []float64) error {
	for _, v := range x {
		if !isFinite(v) {
			return ErrInvalidParameter
		}
	}

	return nil
}

// validateFiniteMat rejects NaN and ±Inf entries.
func validateFiniteMat(m [][]float64) error {
	for _, row := range m {
		if err := validateFiniteVec(row); err != nil {
			return err
		}
	}

	return nil
}

// validateSymmetric checks |A[i,j]-A[j,i]| <= symTol*max(1,|A[i,j]|,|A[j,i]|)
// for all i<j. Assumes m is square.
// Complexity: O(n²) time, O(1) space.
func validateSymmetric(m [][]float64) error {
	n := len(m)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, aji := m[i][j], m[j][i]
			scale := math.Max(1, math.Max(math.Abs(aij), math.Abs(aji)))
			if math.Abs(aij-aji) > symTol*scale {
				return ErrInvalidCovariance
			}
		}
	}

	return nil
}

// broadcastBound expands a bound to length n.
//
//   - nil         → nil (that side is unbounded)
//   - length 1    → the scalar repeated n times
//   - length n    → a copy
//   - otherwise   → ErrDimensionMismatch
//
// NaN entries yield ErrInvalidParameter.
func broadcastBound(v []float64, n int) ([]float64, error) {
	if v == nil {
		return nil, nil
	}
	for _, x := range v {
		if math.IsNaN(x) {
			return nil, ErrInvalidParameter
		}
	}
	out := make([]float64, n)
	switch len(v) {
	case n:
		copy(out, v)
	case 1:
		for i := range out {
			out[i] = v[0]
		}
	default:
		return nil, ErrDimensionMismatch
	}

	return out, nil
}
