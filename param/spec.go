// SPDX-License-Identifier: MIT
// Package: lensprior/param
//
// spec.go — the closed set of per-parameter distribution specs.
//
// Contract:
//   • Spec is sealed by an unexported method; only Normal and Beta implement it.
//   • Use NewNormal/NewBeta (or FromMap) to get the default bounds; the zero
//     value of a bound is 0, not ±Inf.
//   • Specs are plain values and never mutated by Resolve.

package param

import (
	"fmt"
	"math"
)

// Kind enumerates the scalar distribution families.
type Kind int

const (
	// KindNormal is a (truncated) normal, config tag "normal".
	KindNormal Kind = iota + 1
	// KindBeta is a scaled beta, config tag "beta".
	KindBeta
)

// Config tags of the supported families.
const (
	TagNormal         = "normal"
	TagBeta           = "beta"
	TagMultivarNormal = "multivar_normal" // joint draws only; not a per-parameter spec
)

// String returns the config tag of k.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return TagNormal
	case KindBeta:
		return TagBeta
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Spec is one parameter's sampling rule.
type Spec interface {
	// Kind reports the distribution family.
	Kind() Kind
	isSpec()
}

// Normal is N(Mu, Sigma²) truncated to [Lower, Upper].
// Log marks Mu and Sigma as log-space values; no transform is applied when
// sampling, the flag is carried for consumers of the draw.
type Normal struct {
	Mu    float64
	Sigma float64
	Lower float64
	Upper float64
	Log   bool
}

// NewNormal returns an untruncated normal spec.
func NewNormal(mu, sigma float64) Normal {
	return Normal{Mu: mu, Sigma: sigma, Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Kind implements Spec.
func (Normal) Kind() Kind { return KindNormal }
func (Normal) isSpec() {}

// String renders the spec for logs.
func (n Normal) String() string {
	return fmt.Sprintf("normal(mu=%g, sigma=%g, [%g, %g], log=%t)", n.Mu, n.Sigma, n.Lower, n.Upper, n.Log)
}

// Beta is Beta(A, B) mapped onto [Lower, Upper].
type Beta struct {
	A     float64
	B     float64
	Lower float64
	Upper float64
}

// NewBeta returns a beta spec on [0, 1].
func NewBeta(a, b float64) Beta {
	return Beta{A: a, B: b, Lower: 0, Upper: 1}
}

// Kind implements Spec.
func (Beta) Kind() Kind { return KindBeta }
func (Beta) isSpec() {}

// String renders the spec for logs.
func (b Beta) String() string {
	return fmt.Sprintf("beta(a=%g, b=%g, [%g, %g])", b.A, b.B, b.Lower, b.Upper)
}
