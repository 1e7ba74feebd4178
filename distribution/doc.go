// Package distribution draws single values and vectors from the distribution
// families used by lens-parameter priors.
//
// What it covers:
//
//	• SampleNormal         — normal, optionally truncated to [lower, upper]
//	                         (direct draw from the truncated law, no rejection).
//	• SampleBeta           — Beta(a, b) scaled and shifted onto [lower, upper].
//	• MultivarNormal       — N-dimensional normal with a symmetric PSD covariance,
//	                         optionally truncated by rejection (lower < x < upper).
//
// Randomness:
//
//	Every call takes an explicit *rand.Rand (math/rand/v2). The package keeps no
//	global generator state, so two callers with equally seeded generators see
//	identical draws, and concurrent callers never interleave.
//
// Errors:
//
//	ErrInvalidParameter, ErrInvalidCovariance, ErrDimensionMismatch and ErrNilRand
//	are returned (possibly wrapped with %w); match them with errors.Is.
//
// Blocking:
//
//	MultivarNormal.Rand with bounds resamples until the draw lies inside the box.
//	There is no iteration cap: a box with lower >= upper in some dimension, or one
//	far outside the bulk of the distribution, makes the call block indefinitely.
//	Choosing satisfiable bounds is the caller's responsibility.
//
//	import "github.com/katalvlaran/lensprior/distribution"
package distribution
