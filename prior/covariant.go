// SPDX-License-Identifier: MIT
// Package: lensprior/prior
//
// covariant.go — prior with a jointly drawn parameter subset.
//
// Draw order (fixed):
//  1. every parameter not in CovInfo.Params, exactly as Independent does;
//  2. one joint vector from the (truncated) multivariate normal;
//  3. entry i of the vector → CovInfo.Params[i];
//  4. derived rules, in slice order (DefaultRules unless overridden).
//
// Validation happens once, in NewCovariant, including the covariance PSD
// check (the joint sampler is factorized at construction).

package prior

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lensprior/distribution"
)

// Covariant draws CovInfo.Params jointly and everything else independently.
type Covariant struct {
	base
	covParams []ParamRef
	isCov     map[ParamRef]bool
	isLog     []bool
	mvn       *distribution.MultivarNormal
	rules     []DerivedRule
	warnAfter int
}

var _ Prior = (*Covariant)(nil)

// NewCovariant builds a covariant prior over components.
//
// Errors:
//   - ErrConfig: everything NewIndependent rejects; omega.CovInfo missing;
//     empty pair list; len(Mu), len(IsLog) (if set) or the CovMat shape not
//     matching the number of pairs; duplicated pair; pair on a component that is
//     not sampled; pair also declared as an independent parameter; a derived
//     rule whose inputs are not sampled; strict profile violations.
//   - distribution.ErrInvalidCovariance: CovMat not symmetric PSD.
//   - distribution.ErrDimensionMismatch: Lower/Upper length not 1 or N.
//   - distribution.ErrInvalidParameter: non-finite Mu/CovMat, NaN bounds.
func NewCovariant(omega Omega, components []string, opts ...Option) (*Covariant, error) {
	cfg := newPriorConfig(opts...)
	b, err := newBase(opNewCovariant, omega, components, cfg)
	if err != nil {
		return nil, err
	}
	ci := omega.CovInfo
	if ci == nil {
		return nil, configErrorf(opNewCovariant, "cov_info is required")
	}
	if err = validateCovShape(ci); err != nil {
		return nil, err
	}

	sampled := make(map[string]bool, len(b.components))
	for _, comp := range b.components {
		sampled[comp] = true
	}
	declared := b.produced(nil)
	isCov := make(map[ParamRef]bool, len(ci.Params))
	for _, ref := range ci.Params {
		switch {
		case isCov[ref]:
			return nil, configErrorf(opNewCovariant, "covariant parameter %s listed twice", ref)
		case !sampled[ref.Component]:
			return nil, configErrorf(opNewCovariant, "covariant parameter %s: component is not sampled", ref)
		case declared[ref]:
			return nil, configErrorf(opNewCovariant, "covariant parameter %s also has an independent spec", ref)
		}
		isCov[ref] = true
	}

	mvn, err := distribution.NewMultivarNormal(ci.Omega.Mu, ci.Omega.CovMat, ci.Omega.Lower, ci.Omega.Upper)
	if err != nil {
		return nil, fmt.Errorf("%s: cov_omega: %w", opNewCovariant, err)
	}

	produced := declared
	for ref := range isCov {
		produced[ref] = true
	}
	rules, err := resolveRules(opNewCovariant, cfg.rules, sampled, produced)
	if err != nil {
		return nil, err
	}
	if cfg.strict {
		if err = checkProfiles(opNewCovariant, b.components, b.specs, produced); err != nil {
			return nil, err
		}
	}

	p := &Covariant{
		base:      b,
		covParams: append([]ParamRef(nil), ci.Params...),
		isCov:     isCov,
		isLog:     append([]bool(nil), ci.Omega.IsLog...),
		mvn:       mvn,
		rules:     rules,
		warnAfter: cfg.warnAfter,
	}
	p.logger.Debug().
		Strs("components", p.components).
		Int("joint_dims", mvn.Dim()).
		Bool("truncated", mvn.Bounded()).
		Int("rules", len(rules)).
		Msg("covariant prior ready")

	return p, nil
}

// validateCovShape checks the lengths inside cov_info.
func validateCovShape(ci *CovInfo) error {
	n := len(ci.Params)
	if n == 0 {
		return configErrorf(opNewCovariant, "cov_params_list is empty")
	}
	if len(ci.Omega.Mu) != n {
		return configErrorf(opNewCovariant, "mu has length %d, want %d (one per covariant parameter)", len(ci.Omega.Mu), n)
	}
	if ci.Omega.IsLog != nil && len(ci.Omega.IsLog) != n {
		return configErrorf(opNewCovariant, "is_log has length %d, want %d", len(ci.Omega.IsLog), n)
	}
	if len(ci.Omega.CovMat) != n {
		return configErrorf(opNewCovariant, "cov_mat has %d rows, want %d", len(ci.Omega.CovMat), n)
	}
	for i, row := range ci.Omega.CovMat {
		if len(row) != n {
			return configErrorf(opNewCovariant, "cov_mat row %d has %d columns, want %d", i, len(row), n)
		}
	}

	return nil
}

// Sample draws with the prior's own generator.
func (p *Covariant) Sample() (Sample, error) { return p.Draw(p.rng) }

// Draw produces one sample with rng. With truncation bounds the joint step
// may block for pathological bounds.
func (p *Covariant) Draw(rng *rand.Rand) (Sample, error) {
	out, err := p.drawIndependent(rng, func(ref ParamRef) bool { return p.isCov[ref] })
	if err != nil {
		return nil, err
	}

	x, attempts := p.mvn.RandCounted(rng)
	if attempts > p.warnAfter {
		p.logger.Warn().
			Int("attempts", attempts).
			Int("warn_after", p.warnAfter).
			Msg("truncated joint draw needed many resamples; check cov_omega bounds")
	}
	for i, ref := range p.covParams {
		out[ref.Component][ref.Param] = x[i]
	}

	for _, r := range p.rules {
		r.apply(out)
	}

	return out, nil
}

// CovParams returns the jointly drawn parameters in vector order.
func (p *Covariant) CovParams() []ParamRef {
	return append([]ParamRef(nil), p.covParams...)
}

// LogScaled lists independent normal parameters flagged Log followed by
// covariant parameters flagged in IsLog.
func (p *Covariant) LogScaled() []ParamRef {
	out := p.logScaled()
	for i, on := range p.isLog {
		if on {
			out = append(out, p.covParams[i])
		}
	}

	return out
}
