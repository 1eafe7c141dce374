// SPDX-License-Identifier: MIT
// Package: lvframe/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rowID = PrefixIDFn("r", 0), colID = PrefixIDFn("c", 0)
//   - offsets = 0
//   - rng = nil (pure unless seeded)
//   - valueFn = DefaultValueFn

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvframe/frame"
)

const (
	defaultRowPrefix = "r"
	defaultColPrefix = "c"
)

// builderConfig aggregates all knobs; passed by value to builders.
type builderConfig struct {
	rowID     IDFn
	colID     IDFn
	rowOffset int
	colOffset int
	rng       *rand.Rand
	valueFn   ValueFn
	frameOpts []frame.Option
}

// newBuilderConfig applies opts over the defaults, last writer wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rowID:   PrefixIDFn(defaultRowPrefix, 0),
		colID:   PrefixIDFn(defaultColPrefix, 0),
		valueFn: DefaultValueFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// labels renders n labels starting at index off.
func labels(fn IDFn, off, n int) []string {
	out := make([]string, n)
	for k := range out {
		out[k] = fn(off + k)
	}

	return out
}
