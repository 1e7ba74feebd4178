// SPDX-License-Identifier: MIT
// Package: lensprior/distribution
//
// options.go — optional bounds for the scalar samplers.
//
// Contract:
//   • Options only record values; validation happens inside the sampler and
//     surfaces as ErrInvalidParameter, because bounds usually come from
//     configuration files rather than from code.
//   • Later options override earlier ones.

package distribution

import "math"

// Defaults for the scalar samplers.
const (
	defaultBetaLower = 0.0 // Beta support starts at 0
	defaultBetaUpper = 1.0 // and ends at 1
)

// boundsConfig holds the resolved [lower, upper] interval of a scalar draw.
type boundsConfig struct {
	lower float64
	upper float64
}

// Option customizes the support interval of SampleNormal or SampleBeta.
type Option func(*boundsConfig)

// WithLower sets the lower truncation bound.
func WithLower(x float64) Option {
	return func(c *boundsConfig) { c.lower = x }
}

// WithUpper sets the upper truncation bound.
func WithUpper(x float64) Option {
	return func(c *boundsConfig) { c.upper = x }
}

// WithBounds sets both bounds at once.
func WithBounds(lower, upper float64) Option {
	return func(c *boundsConfig) {
		c.lower, c.upper = lower, upper
	}
}

// newNormalBounds returns (-Inf, +Inf) with opts applied in order.
func newNormalBounds(opts ...Option) boundsConfig {
	c := boundsConfig{lower: math.Inf(-1), upper: math.Inf(1)}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// newBetaBounds returns [0, 1] with opts applied in order.
func newBetaBounds(opts ...Option) boundsConfig {
	c := boundsConfig{lower: defaultBetaLower, upper: defaultBetaUpper}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
