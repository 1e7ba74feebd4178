// Package lensprior is a prior sampler for strong-lensing simulations: from a
// declarative configuration it draws, per call, one consistent set of
// physical parameters (lens mass, source light, lens light, shear …) ready
// to be rendered into a training image for a Bayesian neural network.
//
// 🚀 What is in the box?
//
//	• Truncated normal, scaled beta and truncated multivariate normal draws
//	• A closed set of per-parameter specs and a single resolver
//	• Independent and covariant priors with derived-value rules
//	• Order-preserving YAML configuration and prior-class selection
//	• Seeded, concurrent, worker-count-independent batch generation
//	• A small CLI: validate a config, stream samples as JSON lines or YAML
//
// ✨ Design choices:
//
//   - Explicit randomness – every draw takes or owns a *rand.Rand; there is no
//     package-level generator, so equal seeds give equal samples.
//   - Validate once – constructors reject bad configurations (ErrConfig,
//     ErrInvalidCovariance …); sampling only fails on per-parameter domain errors.
//   - Closed dispatch – distribution tags are decoded once at the config
//     boundary into typed specs.
//
// Packages:
//
//	distribution/ — truncated normal, scaled beta, truncated multivariate normal (gonum)
//	param/        — Normal/Beta specs, Resolve, FromMap
//	prior/        — Independent, Covariant, derived rules, profile registry
//	config/       — YAML loader (bnn_omega, cov_info), NewPrior
//	generate/     — concurrent reproducible batches (errgroup)
//	cmd/lensprior — CLI (cobra/viper, zerolog)
//
// Quick example:
//
//	cfg, _ := config.Load("prior.yaml")
//	p, _ := cfg.NewPrior()
//	batch, _ := generate.Generate(ctx, p, cfg.NData, generate.WithSeed(cfg.Seed))
//
//	go install github.com/katalvlaran/lensprior/cmd/lensprior@latest
package lensprior
