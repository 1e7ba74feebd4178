// SPDX-License-Identifier: MIT
// Package: lensprior/config
//
// omega.go — bnn_omega node → prior.Omega.
//
// The block is walked as a yaml.Node mapping rather than decoded into Go maps
// so that parameter declaration order is kept. Anchors/aliases are followed.

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lensprior/param"
	"github.com/katalvlaran/lensprior/prior"
)

// bnn_omega keys.
const (
	keyProfile       = "profile"
	keyCovInfo       = "cov_info"
	keyCovParamsList = "cov_params_list"
	keyCovOmega      = "cov_omega"
	keyMu            = "mu"
	keyCovMat        = "cov_mat"
	keyIsLog         = "is_log"
	keyLower         = "lower"
	keyUpper         = "upper"
	keyDist          = "dist"
)

// pair is one key/value entry of a mapping node.
type pair struct {
	key string
	val *yaml.Node
}

// deref follows alias nodes.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	return n
}

// isNull reports an absent or explicit-null node.
func isNull(n *yaml.Node) bool {
	n = deref(n)
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// mappingPairs returns the entries of a mapping node in document order,
// rejecting non-mappings and duplicate keys.
func mappingPairs(path string, n *yaml.Node) ([]pair, error) {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, badValuef(path, "expected a mapping (line %d)", line(n))
	}
	out := make([]pair, 0, len(n.Content)/2)
	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i].Value
		if seen[k] {
			return nil, badValuef(path, "key %q repeated (line %d)", k, n.Content[i].Line)
		}
		seen[k] = true
		out = append(out, pair{key: k, val: n.Content[i+1]})
	}

	return out, nil
}

func line(n *yaml.Node) int {
	if n == nil {
		return 0
	}

	return n.Line
}

// parseOmega converts the bnn_omega mapping.
func parseOmega(n *yaml.Node) (prior.Omega, error) {
	if isNull(n) {
		return prior.Omega{}, missingKey(keyOmega)
	}
	pairs, err := mappingPairs(keyOmega, n)
	if err != nil {
		return prior.Omega{}, err
	}

	omega := prior.Omega{Components: make(map[string]prior.ComponentSpec, len(pairs))}
	for _, p := range pairs {
		path := keyOmega + "." + p.key
		if p.key == keyCovInfo {
			ci, err := parseCovInfo(path, p.val)
			if err != nil {
				return prior.Omega{}, err
			}
			omega.CovInfo = ci
			continue
		}
		cs, err := parseComponent(path, p.val)
		if err != nil {
			return prior.Omega{}, err
		}
		omega.Components[p.key] = cs
	}

	return omega, nil
}

// parseComponent reads `profile` and every other key as a parameter spec,
// in file order.
func parseComponent(path string, n *yaml.Node) (prior.ComponentSpec, error) {
	pairs, err := mappingPairs(path, n)
	if err != nil {
		return prior.ComponentSpec{}, err
	}

	var cs prior.ComponentSpec
	hasProfile := false
	for _, p := range pairs {
		if p.key == keyProfile {
			if err = deref(p.val).Decode(&cs.Profile); err != nil {
				return prior.ComponentSpec{}, badValue(path+"."+keyProfile, err)
			}
			hasProfile = true
			continue
		}
		spec, err := parseSpec(path+"."+p.key, p.val)
		if err != nil {
			return prior.ComponentSpec{}, err
		}
		cs.Params = append(cs.Params, prior.NamedSpec{Name: p.key, Spec: spec})
	}
	if !hasProfile {
		return prior.ComponentSpec{}, missingKey(path + "." + keyProfile)
	}

	return cs, nil
}

// parseSpec decodes one hyperparameter mapping through param.FromMap.
func parseSpec(path string, n *yaml.Node) (param.Spec, error) {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, badValuef(path, "expected a {dist: …} mapping (line %d)", line(n))
	}
	var m map[string]any
	if err := n.Decode(&m); err != nil {
		return nil, badValue(path, err)
	}
	spec, err := param.FromMap(m)
	if err != nil {
		return nil, badValue(fmt.Sprintf("%s (line %d)", path, n.Line), err)
	}

	return spec, nil
}

// parseCovInfo reads cov_params_list and cov_omega.
func parseCovInfo(path string, n *yaml.Node) (*prior.CovInfo, error) {
	pairs, err := mappingPairs(path, n)
	if err != nil {
		return nil, err
	}

	ci := &prior.CovInfo{}
	var hasList, hasOmega bool
	for _, p := range pairs {
		sub := path + "." + p.key
		switch p.key {
		case keyCovParamsList:
			if ci.Params, err = parseParamRefs(sub, p.val); err != nil {
				return nil, err
			}
			hasList = true
		case keyCovOmega:
			if ci.Omega, err = parseCovOmega(sub, p.val); err != nil {
				return nil, err
			}
			hasOmega = true
		default:
			return nil, badValuef(path, "unknown key %q", p.key)
		}
	}
	switch {
	case !hasList:
		return nil, missingKey(path + "." + keyCovParamsList)
	case !hasOmega:
		return nil, missingKey(path + "." + keyCovOmega)
	}

	return ci, nil
}

// parseParamRefs reads a list of [component, param] pairs.
func parseParamRefs(path string, n *yaml.Node) ([]prior.ParamRef, error) {
	var raw [][]string
	if err := deref(n).Decode(&raw); err != nil {
		return nil, badValue(path, err)
	}
	refs := make([]prior.ParamRef, len(raw))
	for i, r := range raw {
		if len(r) != 2 {
			return nil, badValuef(path, "entry %d: want [component, param], got %v", i, r)
		}
		refs[i] = prior.ParamRef{Component: r[0], Param: r[1]}
	}

	return refs, nil
}

// parseCovOmega reads the joint-distribution block. A `dist` key, if
// present, must name the multivariate normal.
func parseCovOmega(path string, n *yaml.Node) (prior.CovOmega, error) {
	pairs, err := mappingPairs(path, n)
	if err != nil {
		return prior.CovOmega{}, err
	}

	var co prior.CovOmega
	var hasMu, hasCov bool
	for _, p := range pairs {
		sub := path + "." + p.key
		v := deref(p.val)
		switch p.key {
		case keyMu:
			hasMu = true
			err = v.Decode(&co.Mu)
		case keyCovMat:
			hasCov = true
			err = v.Decode(&co.CovMat)
		case keyIsLog:
			if !isNull(v) {
				err = v.Decode(&co.IsLog)
			}
		case keyLower:
			co.Lower, err = parseBound(v)
		case keyUpper:
			co.Upper, err = parseBound(v)
		case keyDist:
			var tag string
			if err = v.Decode(&tag); err == nil && tag != param.TagMultivarNormal {
				return prior.CovOmega{}, badValuef(sub, "want %q, got %q", param.TagMultivarNormal, tag)
			}
		default:
			return prior.CovOmega{}, badValuef(path, "unknown key %q", p.key)
		}
		if err != nil {
			return prior.CovOmega{}, badValue(sub, err)
		}
	}
	switch {
	case !hasMu:
		return prior.CovOmega{}, missingKey(path + "." + keyMu)
	case !hasCov:
		return prior.CovOmega{}, missingKey(path + "." + keyCovMat)
	}

	return co, nil
}

// parseBound accepts null (open), a scalar (broadcast) or a list.
func parseBound(n *yaml.Node) ([]float64, error) {
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.ScalarNode:
		var x float64
		if err := n.Decode(&x); err != nil {
			return nil, err
		}
		return []float64{x}, nil
	default:
		var xs []float64
		if err := n.Decode(&xs); err != nil {
			return nil, err
		}
		return xs, nil
	}
}
