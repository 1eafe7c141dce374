// SPDX-License-Identifier: MIT

// Package frame - the indexed sparse container.
//
// A Frame couples a CSR matrix with one label per row and one label per
// column. Frames are immutable: label slices are copied on the way in and on
// the way out, and every transform returns a new Frame sharing nothing
// mutable with its receiver.

package frame

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvframe/index"
	"github.com/katalvlaran/lvframe/matrix"
)

const (
	ctxNew           = "New"
	ctxNewPositional = "NewPositional"
)

// Frame is a labeled sparse matrix.
// Invariant: len(rows) == m.Rows() and len(cols) == m.Cols().
type Frame[L cmp.Ordered] struct {
	m       *matrix.CSR
	rows    []L
	cols    []L
	reducer Reducer // optional default reducer
}

// New returns a frame over m with the given row and column labels.
// Options: WithReducer, WithStrictLabels.
// Errors: matrix.ErrNilMatrix, ErrLabelShape, ErrInvalidLabel (NaN label),
// ErrDuplicateLabel (strict only).
func New[L cmp.Ordered](m *matrix.CSR, rows, cols []L, opts ...Option) (*Frame[L], error) {
	if m == nil {
		return nil, frameErrorf(ctxNew, matrix.ErrNilMatrix)
	}
	if len(rows) != m.Rows() {
		return nil, frameErrorf(fmt.Sprintf("%s: %d row labels for %d rows", ctxNew, len(rows), m.Rows()), ErrLabelShape)
	}
	if len(cols) != m.Cols() {
		return nil, frameErrorf(fmt.Sprintf("%s: %d column labels for %d columns", ctxNew, len(cols), m.Cols()), ErrLabelShape)
	}
	if err := checkComparable(ctxNew+": rows", rows); err != nil {
		return nil, err
	}
	if err := checkComparable(ctxNew+": columns", cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if o.strictLabels {
		if err := checkUnique(ctxNew+": rows", rows); err != nil {
			return nil, err
		}
		if err := checkUnique(ctxNew+": columns", cols); err != nil {
			return nil, err
		}
	}

	return &Frame[L]{
		m:       m,
		rows:    slices.Clone(rows),
		cols:    slices.Clone(cols),
		reducer: o.reducer,
	}, nil
}

// NewPositional returns a frame labeled by position: rows 0..r-1, columns 0..c-1.
func NewPositional(m *matrix.CSR, opts ...Option) (*Frame[int], error) {
	if m == nil {
		return nil, frameErrorf(ctxNewPositional, matrix.ErrNilMatrix)
	}

	return New(m, positions(m.Rows()), positions(m.Cols()), opts...)
}

// Matrix returns the underlying CSR (itself immutable).
func (f *Frame[L]) Matrix() *matrix.CSR { return f.m }

// RowLabels returns a copy of the row labels.
func (f *Frame[L]) RowLabels() []L { return slices.Clone(f.rows) }

// ColLabels returns a copy of the column labels.
func (f *Frame[L]) ColLabels() []L { return slices.Clone(f.cols) }

// Rows returns the number of rows.
func (f *Frame[L]) Rows() int { return f.m.Rows() }

// Cols returns the number of columns.
func (f *Frame[L]) Cols() int { return f.m.Cols() }

// Shape returns (Rows(), Cols()).
func (f *Frame[L]) Shape() (rows, cols int) { return f.m.Shape() }

// NNZ returns the number of stored non-zero values.
func (f *Frame[L]) NNZ() int { return f.m.NNZ() }

// Reducer returns the default reducer, or nil.
func (f *Frame[L]) Reducer() Reducer { return f.reducer }

// HasReducer reports whether a default reducer is set.
func (f *Frame[L]) HasReducer() bool { return f.reducer != nil }

// WithDefaultReducer returns a copy of f whose default reducer is r.
// A nil r clears it.
func (f *Frame[L]) WithDefaultReducer(r Reducer) *Frame[L] {
	return f.derive(f.m, f.rows, f.cols, r)
}

// Equal reports whether f and o carry the same labels and the same values.
// Default reducers are not compared.
func (f *Frame[L]) Equal(o *Frame[L]) bool {
	if f == nil || o == nil {
		return f == o
	}

	return slices.Equal(f.rows, o.rows) &&
		slices.Equal(f.cols, o.cols) &&
		f.m.Equal(o.m)
}

// String renders a one-line description; intended for logs.
func (f *Frame[L]) String() string {
	return fmt.Sprintf("Frame[%d×%d nnz=%d]", f.m.Rows(), f.m.Cols(), f.m.NNZ())
}

// IsMatchedRowShape reports whether a vector of length n aligns with the rows.
func (f *Frame[L]) IsMatchedRowShape(n int) bool { return n == f.m.Rows() }

// IsMatchedColShape reports whether a vector of length n aligns with the columns.
func (f *Frame[L]) IsMatchedColShape(n int) bool { return n == f.m.Cols() }

// IsColVec reports whether a length-n vector is a column vector for f,
// i.e. holds one value per row.
func (f *Frame[L]) IsColVec(n int) bool { return f.IsMatchedRowShape(n) }

// IsRowVec reports whether a length-n vector is a row vector for f,
// i.e. holds one value per column.
func (f *Frame[L]) IsRowVec(n int) bool { return f.IsMatchedColShape(n) }

// ExtendZeroColumns returns f widened with one all-zero column per label of
// other that f lacks. Missing labels are appended in ascending label order.
// When nothing is missing (or other is nil) f itself is returned.
// Complexity: O((c + c') log(c + c') + r + nnz).
func (f *Frame[L]) ExtendZeroColumns(other *Frame[L]) *Frame[L] {
	if other == nil {
		return f
	}
	missing := index.Difference(other.cols, f.cols)
	if len(missing) == 0 {
		return f
	}
	cols := make([]L, 0, len(f.cols)+len(missing))
	cols = append(cols, f.cols...)
	cols = append(cols, missing...)

	return f.derive(f.m.PadCols(len(missing)), f.rows, cols, f.reducer)
}

// derive builds a sibling frame; callers guarantee the shape invariant and
// never hand over slices they mutate afterwards.
func (f *Frame[L]) derive(m *matrix.CSR, rows, cols []L, r Reducer) *Frame[L] {
	return &Frame[L]{m: m, rows: rows, cols: cols, reducer: r}
}

// checkComparable rejects labels that never equal themselves (float NaN).
func checkComparable[L cmp.Ordered](tag string, labels []L) error {
	for k, l := range labels {
		if l != l {
			return frameErrorf(fmt.Sprintf("%s: position %d", tag, k), ErrInvalidLabel)
		}
	}

	return nil
}

// checkUnique fails with ErrDuplicateLabel naming the repeated labels.
func checkUnique[L cmp.Ordered](tag string, labels []L) error {
	if dup := index.Duplicates(labels); len(dup) > 0 {
		return frameErrorf(fmt.Sprintf("%s %v", tag, dup), ErrDuplicateLabel)
	}

	return nil
}

// positions returns 0..n-1.
func positions(n int) []int {
	out := make([]int, n)
	for k := range out {
		out[k] = k
	}

	return out
}

// pick returns src[p] for every p in pos; positions are pre-validated.
func pick[T any](src []T, pos []int) []T {
	out := make([]T, len(pos))
	for k, p := range pos {
		out[k] = src[p]
	}

	return out
}
