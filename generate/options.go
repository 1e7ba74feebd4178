// SPDX-License-Identifier: MIT
// Package: lensprior/generate
//
// options.go — functional options for Generate.
//
// Contract:
//   • WithWorkers panics on n < 1 (programmer error).
//   • Without WithSeed a random seed is chosen and logged at info level so a
//     run can be replayed.

package generate

import (
	"math/rand/v2"
	"runtime"

	"github.com/rs/zerolog"
)

type genConfig struct {
	seed    uint64
	hasSeed bool
	workers int
	logger  zerolog.Logger
}

// Option customizes Generate.
type Option func(*genConfig)

// WithSeed fixes the batch seed.
func WithSeed(seed uint64) Option {
	return func(c *genConfig) {
		c.seed, c.hasSeed = seed, true
	}
}

// WithWorkers bounds the number of concurrent draws. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("generate: WithWorkers(n<1)")
	}
	return func(c *genConfig) {
		c.workers = n
	}
}

// WithLogger attaches a logger for batch progress.
func WithLogger(l zerolog.Logger) Option {
	return func(c *genConfig) {
		c.logger = l
	}
}

func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSeed {
		cfg.seed = rand.Uint64()
		cfg.logger.Info().Uint64("seed", cfg.seed).Msg("no batch seed given, picked one")
	}

	return cfg
}
