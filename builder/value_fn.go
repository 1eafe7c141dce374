// SPDX-License-Identifier: MIT

// Package builder - value generators for sampled non-zeros.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultValue is produced by DefaultValueFn and by stochastic generators
// called without an RNG.
const DefaultValue float64 = 1

// ValueFn produces the value of one sampled non-zero cell.
// rng may be nil for deterministic builds (p ∈ {0,1} without a seed).
// Generators must never return 0: a zero would be dropped from the matrix.
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn always returns DefaultValue.
func DefaultValueFn(_ *rand.Rand) float64 { return DefaultValue }

// ConstantValueFn always returns v. Panics if v == 0.
func ConstantValueFn(v float64) ValueFn {
	if v == 0 {
		panic("ConstantValueFn: value must be non-zero")
	}

	return func(_ *rand.Rand) float64 { return v }
}

// UniformValueFn samples uniformly in [lo, hi). Panics unless 0 < lo <= hi.
// Without an RNG it yields lo.
func UniformValueFn(lo, hi float64) ValueFn {
	if lo <= 0 || hi < lo {
		panic(fmt.Sprintf("UniformValueFn: require 0 < lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// DigitValueFn samples integers 1..9 uniformly; handy for readable fixtures.
func DigitValueFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultValue
	}

	return float64(rng.Intn(9) + 1)
}
