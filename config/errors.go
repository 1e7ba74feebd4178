// SPDX-License-Identifier: MIT
// Package: lensprior/config
//
// errors.go — sentinel errors for configuration loading.
//
// Every error returned by this package wraps one of the sentinels below AND
// prior.ErrConfig, so callers that only care about "bad configuration" can
// test a single sentinel whichever layer rejected the input.

package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lensprior/prior"
)

var (
	// ErrMissingKey indicates that a required key is absent.
	ErrMissingKey = errors.New("config: missing required key")

	// ErrBadValue indicates a key whose value has the wrong shape or type.
	ErrBadValue = errors.New("config: bad value")
)

// missingKey reports a required key absent under path.
func missingKey(path string) error {
	return fmt.Errorf("%s: %w: %w", path, ErrMissingKey, prior.ErrConfig)
}

// badValuef reports a malformed value at path.
func badValuef(path, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w: %w", path, fmt.Sprintf(format, args...), ErrBadValue, prior.ErrConfig)
}

// badValue wraps a lower-level error (yaml, param) found at path.
func badValue(path string, err error) error {
	return fmt.Errorf("%s: %w: %w: %w", path, err, ErrBadValue, prior.ErrConfig)
}
