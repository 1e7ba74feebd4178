// SPDX-License-Identifier: MIT
// Package: lensprior/config
//
// config.go — Config, Load/Parse and prior construction.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lensprior/prior"
)

// Class selects the prior implementation.
type Class string

const (
	// ClassDiagonal draws every parameter independently (prior.Independent).
	ClassDiagonal Class = "DiagonalBNNPrior"
	// ClassCov draws cov_info pairs jointly (prior.Covariant).
	ClassCov Class = "CovBNNPrior"
)

// Top-level keys.
const (
	keyNData      = "n_data"
	keyClass      = "bnn_prior_class"
	keyComponents = "components"
	keyOmega      = "bnn_omega"
)

// Config is a parsed configuration file.
type Config struct {
	Name       string
	Seed       uint64
	HasSeed    bool
	NData      int
	Class      Class
	Components []string
	Omega      prior.Omega

	// Path is the file the config was loaded from, empty for Parse.
	Path string
}

// rawConfig is the first decoding pass; bnn_omega stays a node so its key
// order survives.
type rawConfig struct {
	Name       string    `yaml:"name"`
	Seed       *uint64   `yaml:"seed"`
	NData      int       `yaml:"n_data"`
	Class      string    `yaml:"bnn_prior_class"`
	Components []string  `yaml:"components"`
	Omega      yaml.Node `yaml:"bnn_omega"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path

	return cfg, nil
}

// Parse decodes a YAML document. Prior-level consistency (cov pairs, rules,
// covariance PSD) is checked later by NewPrior.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, badValue("document", err)
	}

	cfg := &Config{
		Name:  raw.Name,
		NData: raw.NData,
		Class: ClassDiagonal,
	}
	if raw.Seed != nil {
		cfg.Seed, cfg.HasSeed = *raw.Seed, true
	}
	if raw.NData < 0 {
		return nil, badValuef(keyNData, "must be non-negative, got %d", raw.NData)
	}
	switch Class(raw.Class) {
	case "", ClassDiagonal:
	case ClassCov:
		cfg.Class = ClassCov
	default:
		return nil, badValuef(keyClass, "unknown prior class %q", raw.Class)
	}
	if len(raw.Components) == 0 {
		return nil, missingKey(keyComponents)
	}
	cfg.Components = raw.Components

	omega, err := parseOmega(&raw.Omega)
	if err != nil {
		return nil, err
	}
	cfg.Omega = omega

	return cfg, nil
}

// NewPrior builds the configured prior class. The file seed, when present,
// is applied first so opts may override it.
func (c *Config) NewPrior(opts ...prior.Option) (prior.Prior, error) {
	if c.HasSeed {
		opts = append([]prior.Option{prior.WithSeed(c.Seed)}, opts...)
	}
	switch c.Class {
	case ClassCov:
		return prior.NewCovariant(c.Omega, c.Components, opts...)
	case ClassDiagonal, "":
		return prior.NewIndependent(c.Omega, c.Components, opts...)
	default:
		return nil, badValuef(keyClass, "unknown prior class %q", c.Class)
	}
}
