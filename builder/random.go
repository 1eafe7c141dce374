// SPDX-License-Identifier: MIT
// Package: lvframe/builder
//
// random.go - Bernoulli-sampled sparse matrices and frames.
//
// Model: every cell (i,j) is non-zero independently with probability p; its
// value comes from cfg.valueFn.
//
// Contract:
//   - rows, cols ≥ 0 (else ErrBadSize); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required only when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Fixed trial order: i asc, then j asc. One Float64 draw per cell, then
//     valueFn draws for accepted cells.
//
// Complexity: O(rows·cols) trials, O(nnz) memory.

package builder

import (
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
)

const (
	methodRandomCSR   = "RandomCSR"
	methodRandomFrame = "RandomFrame"
	probMin           = 0.0
	probMax           = 1.0
)

// RandomCSR samples a rows×cols matrix with cell density p.
func RandomCSR(rows, cols int, p float64, opts ...BuilderOption) (*matrix.CSR, error) {
	return randomCSR(methodRandomCSR, rows, cols, p, newBuilderConfig(opts...))
}

// RandomFrame samples a rows×cols frame with cell density p and labels from
// the configured ID schemes and offsets.
func RandomFrame(rows, cols int, p float64, opts ...BuilderOption) (*frame.Frame[string], error) {
	cfg := newBuilderConfig(opts...)
	m, err := randomCSR(methodRandomFrame, rows, cols, p, cfg)
	if err != nil {
		return nil, err
	}

	return frame.New(m,
		labels(cfg.rowID, cfg.rowOffset, rows),
		labels(cfg.colID, cfg.colOffset, cols),
		cfg.frameOpts...,
	)
}

func randomCSR(method string, rows, cols int, p float64, cfg builderConfig) (*matrix.CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, builderErrorf(method, ErrBadSize, "rows=%d cols=%d", rows, cols)
	}
	if p < probMin || p > probMax {
		return nil, builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, builderErrorf(method, ErrNeedRandSource, "p=%.6f", p)
	}

	var ts []matrix.Triplet
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !accept(cfg, p) {
				continue
			}
			ts = append(ts, matrix.Triplet{Row: i, Col: j, Value: cfg.valueFn(cfg.rng)})
		}
	}

	return matrix.FromTriplets(rows, cols, ts)
}

// accept runs one Bernoulli trial; p ∈ {0,1} needs no RNG.
func accept(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
