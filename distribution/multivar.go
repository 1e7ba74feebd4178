// SPDX-License-Identifier: MIT
// Package: lensprior/distribution
//
// multivar.go — N-dimensional normal with optional box truncation.
//
// Method:
//   The covariance Σ is validated (square, finite, symmetric) and decomposed
//   once, Σ = V·diag(λ)·Vᵀ (gonum mat.EigenSym). Σ is accepted when
//   min λ >= -psdTol·max(1, max|λ|); slightly negative eigenvalues are then
//   clipped to zero. The factor A = V·diag(√λ) supports singular (PSD but not
//   PD) covariances, e.g. perfectly correlated parameters. A draw is
//   x = mu + A·z with z ~ N(0, I).
//
// Truncation:
//   With any bound set, draws are repeated until lower < x < upper holds for
//   every component (strict, elementwise). There is NO iteration cap; the call
//   may block arbitrarily long for pathological bounds. RandCounted exposes the
//   number of draws for diagnostics without changing the result.
//
// Determinism:
//   Components of z are consumed from rng in index order, one vector per attempt.

package distribution

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// psdTol is the relative eigenvalue tolerance for the PSD check.
const psdTol = 1e-8

// MultivarNormal is a validated, factorized N-dimensional normal with optional
// truncation bounds. It is immutable after construction and safe for
// concurrent use with distinct generators.
type MultivarNormal struct {
	mu     []float64
	factor *mat.Dense // A with A·Aᵀ = Σ
	lower  []float64  // nil → -Inf in every dimension
	upper  []float64  // nil → +Inf in every dimension
}

// NewMultivarNormal validates mu, cov and the bounds and precomputes the
// sampling factor.
//
// Bounds: nil leaves that side open; a single value is broadcast to every
// dimension; otherwise the length must equal len(mu).
//
// Errors, in check order:
//   - ErrDimensionMismatch: empty mu, cov not len(mu)×len(mu), bad bound length.
//   - ErrInvalidParameter:  NaN/Inf in mu or cov, NaN in bounds.
//   - ErrInvalidCovariance: cov asymmetric or not PSD.
//
// Complexity: O(n³) for the eigendecomposition.
func NewMultivarNormal(mu []float64, cov [][]float64, lower, upper []float64) (*MultivarNormal, error) {
	n := len(mu)
	if n == 0 {
		return nil, distErrorf(opMultivarNew, ErrDimensionMismatch, "empty mean vector")
	}
	if err := validateSquare(cov, n); err != nil {
		return nil, distErrorf(opMultivarNew, err, "cov must be %d×%d", n, n)
	}
	lo, err := broadcastBound(lower, n)
	if err != nil {
		return nil, distErrorf(opMultivarNew, err, "lower bound of length %d for %d dimensions", len(lower), n)
	}
	hi, err := broadcastBound(upper, n)
	if err != nil {
		return nil, distErrorf(opMultivarNew, err, "upper bound of length %d for %d dimensions", len(upper), n)
	}
	if err = validateFiniteVec(mu); err != nil {
		return nil, distErrorf(opMultivarNew, err, "mu must be finite")
	}
	if err = validateFiniteMat(cov); err != nil {
		return nil, distErrorf(opMultivarNew, err, "cov must be finite")
	}
	if err = validateSymmetric(cov); err != nil {
		return nil, distErrorf(opMultivarNew, err, "cov is not symmetric")
	}

	factor, err := psdFactor(cov)
	if err != nil {
		return nil, distErrorf(opMultivarNew, err, "cov eigenvalue check")
	}

	m := &MultivarNormal{
		mu:     append([]float64(nil), mu...),
		factor: factor,
		lower:  lo,
		upper:  hi,
	}

	return m, nil
}

// psdFactor returns A = V·diag(√max(λ,0)) or ErrInvalidCovariance.
func psdFactor(cov [][]float64) (*mat.Dense, error) {
	n := len(cov)
	data := make([]float64, 0, n*n)
	for _, row := range cov {
		data = append(data, row...)
	}
	sym := mat.NewSymDense(n, data)

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, ErrInvalidCovariance
	}
	values := eig.Values(nil)

	maxAbs := 0.0
	for _, v := range values {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	floor := -psdTol * math.Max(1, maxAbs)
	scale := make([]float64, n)
	for j, v := range values {
		if v < floor {
			return nil, ErrInvalidCovariance
		}
		scale[j] = math.Sqrt(math.Max(v, 0))
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	var factor mat.Dense
	factor.Apply(func(_, j int, v float64) float64 { return v * scale[j] }, &vecs)

	return &factor, nil
}

// Dim returns the number of dimensions.
func (m *MultivarNormal) Dim() int { return len(m.mu) }

// Bounded reports whether any truncation bound is set.
func (m *MultivarNormal) Bounded() bool { return m.lower != nil || m.upper != nil }

// Rand returns one draw, resampling until it lies inside the bounds.
// May block indefinitely for unsatisfiable bounds (see package doc).
func (m *MultivarNormal) Rand(rng *rand.Rand) []float64 {
	x, _ := m.RandCounted(rng)
	return x
}

// RandCounted is Rand that also reports how many vectors were drawn (>= 1).
func (m *MultivarNormal) RandCounted(rng *rand.Rand) ([]float64, int) {
	n := len(m.mu)
	mu := mat.NewVecDense(n, m.mu) // read-only view
	z := mat.NewVecDense(n, nil)
	x := mat.NewVecDense(n, nil)
	attempts := 0
	for {
		attempts++
		for i := 0; i < n; i++ {
			z.SetVec(i, rng.NormFloat64())
		}
		x.MulVec(m.factor, z)
		x.AddVec(x, mu)
		if m.inside(x) {
			return append([]float64(nil), x.RawVector().Data...), attempts
		}
	}
}

// inside reports lower < x < upper elementwise; nil sides always pass.
func (m *MultivarNormal) inside(x *mat.VecDense) bool {
	for i := 0; i < x.Len(); i++ {
		v := x.AtVec(i)
		if m.lower != nil && !(v > m.lower[i]) {
			return false
		}
		if m.upper != nil && !(v < m.upper[i]) {
			return false
		}
	}

	return true
}

// SampleMultivarNormal is the one-shot form: it validates, factorizes and
// draws once. Prefer NewMultivarNormal when sampling repeatedly.
// Same errors as NewMultivarNormal, plus ErrNilRand.
func SampleMultivarNormal(rng *rand.Rand, mu []float64, cov [][]float64, lower, upper []float64) ([]float64, error) {
	if rng == nil {
		return nil, distErrorf(opMultivarDraw, ErrNilRand, "nil generator")
	}
	m, err := NewMultivarNormal(mu, cov, lower, upper)
	if err != nil {
		return nil, err
	}

	return m.Rand(rng), nil
}
