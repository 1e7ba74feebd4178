// SPDX-License-Identifier: MIT
// Package: lensprior/param
//
// errors.go — sentinel errors for spec decoding and resolution.

package param

import "errors"

// ErrUnknownDistribution indicates an unrecognized `dist` tag, or a Spec
// value that is not one of the supported variants.
var ErrUnknownDistribution = errors.New("param: unknown distribution")

// ErrBadSpec indicates a structurally malformed spec mapping: missing `dist`,
// missing required field, unknown field, or a value of the wrong type.
var ErrBadSpec = errors.New("param: malformed hyperparameter spec")
