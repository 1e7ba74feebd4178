// Package prior draws one consistent set of lens-simulation parameters per
// call, ready to hand to a lens-rendering library.
//
// 🚀 What is a prior here?
//
//	A configuration (Omega) says, per physical component (lens_mass,
//	src_light, lens_light, lens_shear …), which profile it uses and how
//	each of its parameters is distributed. A Prior turns that into a Sample:
//
//	  Sample{"lens_mass": {"theta_E": 1.07, "gamma": 2.01, …},
//	         "src_light": {"amp": 0.4, …}}
//
// ✨ Two flavours:
//   - Independent: every parameter drawn on its own via param.Resolve.
//   - Covariant: a declared subset of (component, parameter) pairs drawn
//     jointly from one (optionally truncated) multivariate normal, the rest
//     independently, then derived-value rules applied in fixed order:
//     src_light centre offset by lens_mass centre, lens_light centre copied
//     from lens_mass centre.
//
// ⚙️ Usage:
//
//	p, err := prior.NewCovariant(omega, []string{"lens_mass", "src_light"},
//	    prior.WithSeed(42))
//	if err != nil { … }          // ErrConfig / distribution.ErrInvalidCovariance …
//	s, err := p.Sample()
//
// Guarantees:
//   - All configuration checks run in the constructors; Sample only fails on
//     parameter-domain errors of individual specs.
//   - Each Prior owns its generator (WithSeed/WithRand). Sample is not safe for
//     concurrent use; Draw with one generator per goroutine is.
//   - A truncated joint draw resamples until it is inside its box and may block
//     for pathological bounds (see distribution.MultivarNormal).
package prior
