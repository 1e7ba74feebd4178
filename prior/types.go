// SPDX-License-Identifier: MIT
// Package: lensprior/prior
//
// types.go — configuration and output types shared by both priors.

package prior

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lensprior/param"
)

// Canonical component and parameter names used by the derived-value rules.
const (
	ComponentLensMass  = "lens_mass"
	ComponentSrcLight  = "src_light"
	ComponentLensLight = "lens_light"
	ComponentLensShear = "lens_shear"

	ParamCenterX = "center_x"
	ParamCenterY = "center_y"
)

// ParamRef names one parameter of one component.
type ParamRef struct {
	Component string
	Param     string
}

// String renders "component.param".
func (r ParamRef) String() string { return r.Component + "." + r.Param }

// NamedSpec pairs a parameter name with its sampling rule.
type NamedSpec struct {
	Name string
	Spec param.Spec
}

// ComponentSpec is one component's profile tag and its parameters in
// declaration order. Profile is metadata; it is not used for sampling unless
// strict profile checking is enabled.
type ComponentSpec struct {
	Profile string
	Params  []NamedSpec
}

// CovOmega is the joint distribution of the covariant parameters.
// Lower/Upper: nil = open, length 1 = broadcast, length N = per dimension.
// IsLog is informational, like param.Normal.Log.
type CovOmega struct {
	Mu     []float64
	CovMat [][]float64
	IsLog  []bool
	Lower  []float64
	Upper  []float64
}

// CovInfo lists the jointly drawn parameters; index i of a joint draw is
// written to Params[i].
type CovInfo struct {
	Params []ParamRef
	Omega  CovOmega
}

// Omega is the prior configuration: component specs by name plus the
// optional covariance block.
type Omega struct {
	Components map[string]ComponentSpec
	CovInfo    *CovInfo
}

// Kwargs maps parameter names to drawn values for one component.
type Kwargs map[string]float64

// Sample maps component names to their Kwargs. A fresh Sample is built on
// every draw.
type Sample map[string]Kwargs

// Get returns the value at ref.
func (s Sample) Get(ref ParamRef) (float64, bool) {
	kw, ok := s[ref.Component]
	if !ok {
		return 0, false
	}
	v, ok := kw[ref.Param]

	return v, ok
}

// Prior draws parameter samples.
type Prior interface {
	// Sample draws with the prior's own generator. Not safe for concurrent use.
	Sample() (Sample, error)
	// Draw draws with rng. Safe for concurrent use with distinct generators.
	Draw(rng *rand.Rand) (Sample, error)
	// Components returns the sampled component names in order.
	Components() []string
	// LogScaled lists parameters whose values are log-parameterized.
	LogScaled() []ParamRef
}

// cloneComponent deep-copies the parameter list; specs are immutable values.
func cloneComponent(c ComponentSpec) ComponentSpec {
	return ComponentSpec{
		Profile: c.Profile,
		Params:  append([]NamedSpec(nil), c.Params...),
	}
}

// validateComponents checks the component list against omega and returns
// deep copies of the selected specs.
func validateComponents(op string, omega Omega, components []string) (map[string]ComponentSpec, error) {
	if len(components) == 0 {
		return nil, configErrorf(op, "no components to sample")
	}
	specs := make(map[string]ComponentSpec, len(components))
	for _, comp := range components {
		if _, dup := specs[comp]; dup {
			return nil, configErrorf(op, "component %q listed twice", comp)
		}
		cs, ok := omega.Components[comp]
		if !ok {
			return nil, configErrorf(op, "component %q has no spec", comp)
		}
		seen := make(map[string]bool, len(cs.Params))
		for _, ns := range cs.Params {
			if ns.Name == "" {
				return nil, configErrorf(op, "component %q has an unnamed parameter", comp)
			}
			if seen[ns.Name] {
				return nil, configErrorf(op, "parameter %s declared twice", ParamRef{comp, ns.Name})
			}
			if ns.Spec == nil {
				return nil, configErrorf(op, "parameter %s has no spec", ParamRef{comp, ns.Name})
			}
			seen[ns.Name] = true
		}
		specs[comp] = cloneComponent(cs)
	}

	return specs, nil
}

// wrapDrawErr adds component/parameter context to a sampler error.
func wrapDrawErr(ref ParamRef, err error) error {
	return fmt.Errorf("%s: %s: %w", opDraw, ref, err)
}
