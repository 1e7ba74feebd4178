// SPDX-License-Identifier: MIT
// Package: lensprior/param
//
// decode.go — mapping → Spec.
//
// Contract:
//   • The input mapping is read only; `dist` is not removed from it.
//   • Numeric fields accept any scalar spf13/cast can turn into float64
//     (ints, floats, numeric strings including "inf"/"-inf").
//   • Unknown fields are rejected rather than ignored.

package param

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// Field names of the spec mappings.
const (
	fieldDist  = "dist"
	fieldMu    = "mu"
	fieldSigma = "sigma"
	fieldLower = "lower"
	fieldUpper = "upper"
	fieldLog   = "log"
	fieldA     = "a"
	fieldB     = "b"
)

// FromMap decodes a hyperparameter mapping such as
// {dist: normal, mu: 1.0, sigma: 0.1, lower: 0}.
//
// Errors: ErrUnknownDistribution for a dist tag other than normal/beta;
// ErrBadSpec for missing dist, missing required fields, unknown fields or
// values that are not scalars of the right type.
func FromMap(m map[string]any) (Spec, error) {
	raw, ok := m[fieldDist]
	if !ok {
		return nil, fmt.Errorf("FromMap: missing %q: %w", fieldDist, ErrBadSpec)
	}
	tag, err := cast.ToStringE(raw)
	if err != nil {
		return nil, fmt.Errorf("FromMap: %q=%v: %w", fieldDist, raw, ErrBadSpec)
	}

	switch tag {
	case TagNormal:
		return decodeNormal(m)
	case TagBeta:
		return decodeBeta(m)
	case TagMultivarNormal:
		return nil, fmt.Errorf("FromMap: %q is only valid for joint sampling: %w", tag, ErrUnknownDistribution)
	default:
		return nil, fmt.Errorf("FromMap: dist=%q: %w", tag, ErrUnknownDistribution)
	}
}

func decodeNormal(m map[string]any) (Spec, error) {
	if err := checkFields(m, fieldMu, fieldSigma, fieldLower, fieldUpper, fieldLog); err != nil {
		return nil, err
	}
	mu, err := requiredFloat(m, fieldMu)
	if err != nil {
		return nil, err
	}
	sigma, err := requiredFloat(m, fieldSigma)
	if err != nil {
		return nil, err
	}
	n := NewNormal(mu, sigma)
	if n.Lower, err = optionalFloat(m, fieldLower, n.Lower); err != nil {
		return nil, err
	}
	if n.Upper, err = optionalFloat(m, fieldUpper, n.Upper); err != nil {
		return nil, err
	}
	if v, ok := m[fieldLog]; ok {
		if n.Log, err = cast.ToBoolE(v); err != nil {
			return nil, fmt.Errorf("FromMap: %q=%v: %w", fieldLog, v, ErrBadSpec)
		}
	}

	return n, nil
}

func decodeBeta(m map[string]any) (Spec, error) {
	if err := checkFields(m, fieldA, fieldB, fieldLower, fieldUpper); err != nil {
		return nil, err
	}
	a, err := requiredFloat(m, fieldA)
	if err != nil {
		return nil, err
	}
	b, err := requiredFloat(m, fieldB)
	if err != nil {
		return nil, err
	}
	bs := NewBeta(a, b)
	if bs.Lower, err = optionalFloat(m, fieldLower, bs.Lower); err != nil {
		return nil, err
	}
	if bs.Upper, err = optionalFloat(m, fieldUpper, bs.Upper); err != nil {
		return nil, err
	}

	return bs, nil
}

// checkFields rejects keys outside {dist} ∪ allowed, reported in sorted order.
func checkFields(m map[string]any, allowed ...string) error {
	ok := map[string]bool{fieldDist: true}
	for _, f := range allowed {
		ok[f] = true
	}
	var unknown []string
	for k := range m {
		if !ok[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("FromMap: unknown fields %v: %w", unknown, ErrBadSpec)
	}

	return nil
}

func requiredFloat(m map[string]any, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("FromMap: missing %q: %w", key, ErrBadSpec)
	}

	return toFloat(key, v)
}

func optionalFloat(m map[string]any, key string, def float64) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}

	return toFloat(key, v)
}

func toFloat(key string, v any) (float64, error) {
	switch v.(type) {
	case bool, []any, map[string]any:
		// cast would turn true into 1; a bool where a number belongs is a typo.
		return 0, fmt.Errorf("FromMap: %q=%v is not a number: %w", key, v, ErrBadSpec)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("FromMap: %q=%v: %w", key, v, ErrBadSpec)
	}

	return f, nil
}
