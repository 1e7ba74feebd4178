// SPDX-License-Identifier: MIT
// Package: lensprior/prior
//
// errors.go — sentinel errors for prior construction.
//
// Error policy:
//   • ErrConfig covers every malformed or inconsistent configuration and is
//     returned by constructors only, never by Sample/Draw.
//   • Sampler failures keep their own sentinels (distribution.ErrInvalidParameter,
//     distribution.ErrInvalidCovariance, param.ErrUnknownDistribution …) and
//     are wrapped with component/parameter context.

package prior

import (
	"errors"
	"fmt"
)

// ErrConfig indicates a malformed or inconsistent prior configuration.
var ErrConfig = errors.New("prior: invalid configuration")

// Operation tags used as error prefixes.
const (
	opNewIndependent = "NewIndependent"
	opNewCovariant   = "NewCovariant"
	opDraw           = "Draw"
)

// configErrorf wraps ErrConfig with the operation tag and a detail message.
func configErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrConfig)
}
