// Package param resolves one physical parameter's hyperparameter spec into a
// sampled scalar.
//
// A Spec is a closed union over the supported scalar distribution families:
//
//	Normal{Mu, Sigma, Lower, Upper, Log}   → distribution.SampleNormal
//	Beta{A, B, Lower, Upper}               → distribution.SampleBeta
//
// Resolve dispatches on the concrete type; FromMap is the only place where the
// string tag `dist` of a configuration mapping is interpreted. Joint
// (multivar_normal) draws are not a per-parameter spec: they are configured in
// a prior's covariance block and rejected here with ErrUnknownDistribution.
//
// The package holds no state.
package param
