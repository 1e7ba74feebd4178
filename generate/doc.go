// Package generate draws a batch of N samples from a prior, concurrently and
// reproducibly.
//
// Sample i is always drawn with its own PCG stream seeded by (seed, i), so the
// batch is a pure function of (prior, n, seed): the worker count only changes
// wall time, never the output.
//
//	p, _ := cfg.NewPrior()
//	samples, err := generate.Generate(ctx, p, cfg.NData,
//	    generate.WithSeed(cfg.Seed), generate.WithWorkers(8))
//
// Cancellation is checked between samples. A truncated joint draw that is
// already resampling is not interrupted.
package generate
