// SPDX-License-Identifier: MIT
// Package: lensprior/prior
//
// independent.go — prior with independently drawn parameters.
//
// Draw order (fixed, reproducible for a given generator state):
//   for each component in the configured list order,
//     for each parameter in declaration order: param.Resolve.

package prior

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lensprior/distribution"
	"github.com/katalvlaran/lensprior/param"
)

// base holds what both priors share: the ordered component list, immutable
// copies of their specs and the per-instance generator.
type base struct {
	components []string
	specs      map[string]ComponentSpec
	rng        *rand.Rand
	logger     zerolog.Logger
}

// newBase validates the components and captures the config.
func newBase(op string, omega Omega, components []string, cfg priorConfig) (base, error) {
	specs, err := validateComponents(op, omega, components)
	if err != nil {
		return base{}, err
	}

	return base{
		components: append([]string(nil), components...),
		specs:      specs,
		rng:        cfg.rng,
		logger:     cfg.logger,
	}, nil
}

// Components returns a copy of the sampled component names in order.
func (b *base) Components() []string {
	return append([]string(nil), b.components...)
}

// produced returns the set of independently specified parameters,
// excluding those for which skip reports true.
func (b *base) produced(skip func(ParamRef) bool) map[ParamRef]bool {
	out := make(map[ParamRef]bool)
	for _, comp := range b.components {
		for _, ns := range b.specs[comp].Params {
			ref := ParamRef{comp, ns.Name}
			if skip == nil || !skip(ref) {
				out[ref] = true
			}
		}
	}

	return out
}

// drawIndependent resolves every parameter not skipped, in order, into a
// fresh Sample holding an entry for every component.
func (b *base) drawIndependent(rng *rand.Rand, skip func(ParamRef) bool) (Sample, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", opDraw, distribution.ErrNilRand)
	}
	out := make(Sample, len(b.components))
	for _, comp := range b.components {
		cs := b.specs[comp]
		kw := make(Kwargs, len(cs.Params))
		for _, ns := range cs.Params {
			ref := ParamRef{comp, ns.Name}
			if skip != nil && skip(ref) {
				continue
			}
			v, err := param.Resolve(rng, ns.Spec)
			if err != nil {
				return nil, wrapDrawErr(ref, err)
			}
			kw[ns.Name] = v
		}
		out[comp] = kw
	}

	return out, nil
}

// logScaled lists independently drawn normal parameters flagged Log.
func (b *base) logScaled() []ParamRef {
	var out []ParamRef
	for _, comp := range b.components {
		for _, ns := range b.specs[comp].Params {
			if n, ok := ns.Spec.(param.Normal); ok && n.Log {
				out = append(out, ParamRef{comp, ns.Name})
			}
		}
	}

	return out
}

// Independent draws every configured parameter on its own.
type Independent struct {
	base
}

var _ Prior = (*Independent)(nil)

// NewIndependent builds an independent prior over components, taken in order
// from omega. omega.CovInfo is ignored.
//
// Errors (ErrConfig): empty or duplicated component list, component without a
// spec, unnamed/duplicated/nil parameter spec; with WithStrictProfiles, an
// unknown profile or a missing required parameter.
func NewIndependent(omega Omega, components []string, opts ...Option) (*Independent, error) {
	cfg := newPriorConfig(opts...)
	b, err := newBase(opNewIndependent, omega, components, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.strict {
		if err = checkProfiles(opNewIndependent, b.components, b.specs, b.produced(nil)); err != nil {
			return nil, err
		}
	}
	b.logger.Debug().
		Strs("components", b.components).
		Int("params", len(b.produced(nil))).
		Msg("independent prior ready")

	return &Independent{base: b}, nil
}

// Sample draws with the prior's own generator.
func (p *Independent) Sample() (Sample, error) { return p.Draw(p.rng) }

// Draw resolves every parameter with rng.
func (p *Independent) Draw(rng *rand.Rand) (Sample, error) {
	return p.drawIndependent(rng, nil)
}

// LogScaled lists parameters whose normal spec is flagged Log.
func (p *Independent) LogScaled() []ParamRef { return p.logScaled() }
