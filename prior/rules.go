// SPDX-License-Identifier: MIT
// Package: lensprior/prior
//
// rules.go — derived-value rules applied after all draws of a Covariant prior.
//
// Semantics:
//   • OpOffset: Target += Source. Target must be produced by a draw.
//   • OpShare:  Target  = Source. Target is created (or overwritten).
//   • Rules run in slice order on the fully populated sample.
//   • A rule whose target component is not sampled is skipped when Optional,
//     and is a configuration error otherwise.

package prior

// RuleOp is the relation a derived rule enforces.
type RuleOp int

const (
	// OpOffset adds the source value to the target value.
	OpOffset RuleOp = iota + 1
	// OpShare overwrites the target value with the source value.
	OpShare
)

// String returns "offset" or "share".
func (op RuleOp) String() string {
	switch op {
	case OpOffset:
		return "offset"
	case OpShare:
		return "share"
	default:
		return "unknown"
	}
}

// DerivedRule sets Target from Source after sampling.
type DerivedRule struct {
	Name     string
	Op       RuleOp
	Target   ParamRef
	Source   ParamRef
	Optional bool
}

// DefaultRules returns the lensing rules, in execution order:
//  1. the source position is relative to the lens mass centre
//     (src_light.center_{x,y} += lens_mass.center_{x,y});
//  2. the lens light shares the lens mass centre exactly
//     (lens_light.center_{x,y} = lens_mass.center_{x,y}), when lens_light
//     is sampled.
func DefaultRules() []DerivedRule {
	mass := func(p string) ParamRef { return ParamRef{ComponentLensMass, p} }
	src := func(p string) ParamRef { return ParamRef{ComponentSrcLight, p} }
	light := func(p string) ParamRef { return ParamRef{ComponentLensLight, p} }

	return []DerivedRule{
		{Name: "src_offset_x", Op: OpOffset, Target: src(ParamCenterX), Source: mass(ParamCenterX)},
		{Name: "src_offset_y", Op: OpOffset, Target: src(ParamCenterY), Source: mass(ParamCenterY)},
		{Name: "lens_light_share_x", Op: OpShare, Target: light(ParamCenterX), Source: mass(ParamCenterX), Optional: true},
		{Name: "lens_light_share_y", Op: OpShare, Target: light(ParamCenterY), Source: mass(ParamCenterY), Optional: true},
	}
}

// apply executes the rule on s. Inputs were verified by resolveRules.
func (r DerivedRule) apply(s Sample) {
	src := s[r.Source.Component][r.Source.Param]
	switch r.Op {
	case OpOffset:
		s[r.Target.Component][r.Target.Param] += src
	case OpShare:
		s[r.Target.Component][r.Target.Param] = src
	}
}

// resolveRules checks every rule against the set of produced parameters and
// the sampled components, and returns the rules that will run. produced is
// updated with the targets of share rules.
func resolveRules(op string, rules []DerivedRule, sampled map[string]bool, produced map[ParamRef]bool) ([]DerivedRule, error) {
	active := make([]DerivedRule, 0, len(rules))
	for _, r := range rules {
		if r.Op != OpOffset && r.Op != OpShare {
			return nil, configErrorf(op, "rule %q: unknown op %d", r.Name, int(r.Op))
		}
		if !sampled[r.Target.Component] {
			if r.Optional {
				continue
			}
			return nil, configErrorf(op, "rule %q: component %q is not sampled", r.Name, r.Target.Component)
		}
		if !produced[r.Source] {
			return nil, configErrorf(op, "rule %q: source %s is not sampled", r.Name, r.Source)
		}
		if r.Op == OpOffset && !produced[r.Target] {
			return nil, configErrorf(op, "rule %q: offset target %s is not sampled", r.Name, r.Target)
		}
		produced[r.Target] = true
		active = append(active, r)
	}

	return active, nil
}
