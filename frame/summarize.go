// SPDX-License-Identifier: MIT

// Package frame - Summarize: run a reducer and align the result with an axis.
//
// Axis resolution for AxisAuto:
//   - the result length matches exactly one axis: that axis;
//   - it matches both (square frame): the result orientation decides,
//     1×N is a column summary and N×1 a row summary;
//   - a 1×1 result over a 1×1 frame has no orientation: ErrAmbiguousAxis.

package frame

import (
	"fmt"

	"github.com/katalvlaran/lvframe/matrix"
)

const (
	ctxSummarize = "Summarize"
	ctxSummary   = "Summary"
)

// Summarize reduces the frame with r and returns the labeled result.
// Errors: ErrNoReducer (nil r), ErrReductionShape, ErrAmbiguousAxis, or the
// reducer's own error (wrapped).
func (f *Frame[L]) Summarize(r Reducer, axis Axis) (*Summary[L], error) {
	if r == nil {
		return nil, frameErrorf(ctxSummarize, ErrNoReducer)
	}
	res, err := r.Reduce(f.m)
	if err != nil {
		return nil, frameErrorf(ctxSummarize, err)
	}
	if err = matrix.ValidateNotNil(res); err != nil {
		return nil, frameErrorf(ctxSummarize, err)
	}
	values, err := flatten(res)
	if err != nil {
		return nil, frameErrorf(ctxSummarize, err)
	}

	n := len(values)
	onRows, onCols := f.IsMatchedRowShape(n), f.IsMatchedColShape(n)
	switch axis {
	case AxisRow:
		if !onRows {
			return nil, frameErrorf(fmt.Sprintf("%s: %d values for %d rows", ctxSummarize, n, f.Rows()), ErrReductionShape)
		}
	case AxisColumn:
		if !onCols {
			return nil, frameErrorf(fmt.Sprintf("%s: %d values for %d columns", ctxSummarize, n, f.Cols()), ErrReductionShape)
		}
	case AxisAuto:
		switch {
		case onRows && onCols:
			horizontal, vertical := res.Rows() == 1, res.Cols() == 1
			switch {
			case horizontal && vertical:
				return nil, frameErrorf(ctxSummarize, ErrAmbiguousAxis)
			case horizontal:
				axis = AxisColumn
			default:
				axis = AxisRow
			}
		case onRows:
			axis = AxisRow
		case onCols:
			axis = AxisColumn
		default:
			return nil, frameErrorf(fmt.Sprintf("%s: %d values for %d×%d", ctxSummarize, n, f.Rows(), f.Cols()), ErrReductionShape)
		}
	default:
		return nil, frameErrorf(fmt.Sprintf("%s: %v", ctxSummarize, axis), ErrReductionShape)
	}

	labels := f.rows
	if axis == AxisColumn {
		labels = f.cols
	}

	return &Summary[L]{values: values, labels: labels, axis: axis, src: f}, nil
}

// Summary reduces the frame with its default reducer on the auto axis.
// Errors: ErrNoReducer plus everything Summarize returns.
func (f *Frame[L]) Summary() (*Summary[L], error) {
	if f.reducer == nil {
		return nil, frameErrorf(ctxSummary, ErrNoReducer)
	}

	return f.Summarize(f.reducer, AxisAuto)
}

// flatten turns a 1×N or N×1 result into a slice; other shapes fail with
// ErrReductionShape.
func flatten(res matrix.Matrix) ([]float64, error) {
	r, c := res.Rows(), res.Cols()
	var n int
	switch {
	case r == 1:
		n = c
	case c == 1:
		n = r
	default:
		return nil, fmt.Errorf("reducer returned %d×%d: %w", r, c, ErrReductionShape)
	}
	out := make([]float64, n)
	for k := range out {
		i, j := 0, k
		if r != 1 {
			i, j = k, 0
		}
		v, err := res.At(i, j)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}

	return out, nil
}
