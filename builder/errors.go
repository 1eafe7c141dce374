// SPDX-License-Identifier: MIT
// Package: lvframe/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; match with errors.Is.
//   - Builders attach context with builderErrorf; they never panic at runtime.
//   - Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative row or column count.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic build (0 < p < 1) without an RNG;
// set WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf returns "<method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
