// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package plus the single wrapping helper. All kernels MUST return these
// sentinels and tests MUST check them via errors.Is. No kernel should panic on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap a sentinel exactly once with their
// operation tag (matrixErrorf); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> numeric policy -> structural corruption.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero-sized matrices (0×N, N×0) are legal: alignment code produces them.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Row/Select*) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add of different shapes, HStack of different heights, ragged input.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrCorrupt signals that raw CSR arrays violate the storage invariants
	// (indptr monotonicity, sorted unique column indices, matching lengths).
	ErrCorrupt = errors.New("matrix: corrupt CSR structure")
)

// matrixErrorf wraps an underlying error with the given operation tag.
// Used by every public kernel to keep messages uniform: "<Op>: matrix: ...".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
