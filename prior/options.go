// SPDX-License-Identifier: MIT
// Package: lensprior/prior
//
// options.go — functional options shared by NewIndependent and NewCovariant.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil
//     generator, non-positive thresholds). Constructors and Sample never panic.
//   • Determinism is explicit: WithSeed or WithRand. Without either, each prior
//     gets its own randomly seeded PCG stream; nothing is shared between
//     instances.
//   • Later options override earlier ones.

package prior

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// defaultRejectionWarnAfter is the number of joint draws above which a single
// truncated draw is reported at warn level.
const defaultRejectionWarnAfter = 1000

// priorConfig aggregates all knobs. Built once per constructor call.
type priorConfig struct {
	rng       *rand.Rand     // per-instance generator used by Sample
	logger    zerolog.Logger // diagnostics only
	strict    bool           // enforce the profile registry
	rules     []DerivedRule  // Covariant only
	warnAfter int            // rejection diagnostic threshold
}

// Option customizes a prior at construction.
type Option func(*priorConfig)

// WithSeed gives the prior a PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *priorConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand makes the prior use r for Sample. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("prior: WithRand(nil)")
	}
	return func(c *priorConfig) {
		c.rng = r
	}
}

// WithLogger attaches a logger for construction and rejection diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *priorConfig) {
		c.logger = l
	}
}

// WithStrictProfiles enforces the profile registry: unknown profiles and
// missing required parameters become ErrConfig at construction.
func WithStrictProfiles() Option {
	return func(c *priorConfig) {
		c.strict = true
	}
}

// WithDerivedRules replaces DefaultRules for a Covariant prior. An empty
// slice disables derived values. Ignored by Independent.
func WithDerivedRules(rules []DerivedRule) Option {
	cp := append([]DerivedRule{}, rules...)
	return func(c *priorConfig) {
		c.rules = cp
	}
}

// WithRejectionWarnAfter sets how many joint draws one truncated sample may
// take before a warning is logged. Panics if n < 1. Does not cap the loop.
func WithRejectionWarnAfter(n int) Option {
	if n < 1 {
		panic("prior: WithRejectionWarnAfter(n<1)")
	}
	return func(c *priorConfig) {
		c.warnAfter = n
	}
}

// newPriorConfig applies opts over the defaults.
func newPriorConfig(opts ...Option) priorConfig {
	cfg := priorConfig{
		logger:    zerolog.Nop(),
		rules:     DefaultRules(),
		warnAfter: defaultRejectionWarnAfter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg
}
