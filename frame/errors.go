// SPDX-License-Identifier: MIT
// Package frame: sentinel error set.
// Every public operation wraps exactly one sentinel with its operation tag
// (frameErrorf); callers match with errors.Is. Errors surfaced by the matrix
// engine (matrix.ErrOutOfRange, matrix.ErrNilMatrix, ...) are wrapped, not
// replaced, so they stay matchable too.

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrLabelShape indicates a label sequence whose length differs from the
	// matrix extent on its axis.
	ErrLabelShape = errors.New("frame: label count does not match matrix shape")

	// ErrSelectorLength indicates a boolean mask whose length differs from the
	// axis it selects on.
	ErrSelectorLength = errors.New("frame: selector length does not match axis length")

	// ErrUnknownPolicy indicates a merge policy outside the supported set.
	ErrUnknownPolicy = errors.New("frame: unknown merge policy")

	// ErrLabelNotFound indicates a lookup for a label absent from the axis.
	ErrLabelNotFound = errors.New("frame: label not found")

	// ErrNoReducer indicates a default summary was requested on a frame
	// without a default reducer (or a nil reducer was passed).
	ErrNoReducer = errors.New("frame: no reducer")

	// ErrUnknownReducer indicates a reducer name with no registered reducer.
	ErrUnknownReducer = errors.New("frame: unknown reducer")

	// ErrLabelMismatch indicates two summaries combined over different labels.
	ErrLabelMismatch = errors.New("frame: summary labels differ")

	// ErrNotBoolean indicates a mask operation on a numeric summary.
	ErrNotBoolean = errors.New("frame: summary is not boolean")

	// ErrDuplicateLabel indicates a repeated label where uniqueness is required.
	ErrDuplicateLabel = errors.New("frame: duplicate label")

	// ErrNoSource indicates SubFrame on a summary detached from any frame.
	ErrNoSource = errors.New("frame: summary has no source frame")

	// ErrReductionShape indicates a reducer result that is not a vector, or
	// whose length matches neither (or not the requested) axis.
	ErrReductionShape = errors.New("frame: reduction result does not fit the frame")

	// ErrAmbiguousAxis indicates a reduction whose axis cannot be derived
	// from shapes alone (1×1 result over a 1×1 frame).
	ErrAmbiguousAxis = errors.New("frame: ambiguous reduction axis")

	// ErrInvalidLabel indicates a label that is not equal to itself (NaN),
	// which no lookup, alignment or uniqueness check could ever match.
	ErrInvalidLabel = errors.New("frame: invalid label")

	// ErrNilFrame indicates a nil *Frame operand.
	ErrNilFrame = errors.New("frame: nil frame")
)

// frameErrorf wraps err with the operation tag: "<Op>: frame: ...".
func frameErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
