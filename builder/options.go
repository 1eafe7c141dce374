// SPDX-License-Identifier: MIT
// Package: lvframe/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   - Determinism is explicit: randomness only through WithSeed or WithRand.
//   - Later options override earlier ones.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvframe/frame"
)

// BuilderOption customizes a build by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed installs a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithRowIDs sets the row label scheme. Panics on nil.
func WithRowIDs(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRowIDs(nil)")
	}

	return func(c *builderConfig) { c.rowID = fn }
}

// WithColIDs sets the column label scheme. Panics on nil.
func WithColIDs(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithColIDs(nil)")
	}

	return func(c *builderConfig) { c.colID = fn }
}

// WithRowOffset starts row labels at index off instead of 0, so two frames
// built with overlapping offsets share part of their row labels.
// Panics if off < 0.
func WithRowOffset(off int) BuilderOption {
	if off < 0 {
		panic("builder: WithRowOffset(off<0)")
	}

	return func(c *builderConfig) { c.rowOffset = off }
}

// WithColOffset is WithRowOffset for column labels.
func WithColOffset(off int) BuilderOption {
	if off < 0 {
		panic("builder: WithColOffset(off<0)")
	}

	return func(c *builderConfig) { c.colOffset = off }
}

// WithValueFn sets the generator for sampled non-zero values. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}

	return func(c *builderConfig) { c.valueFn = fn }
}

// WithFrameOptions forwards options to frame.New (e.g. frame.WithReducer).
func WithFrameOptions(opts ...frame.Option) BuilderOption {
	return func(c *builderConfig) { c.frameOpts = append(c.frameOpts, opts...) }
}
