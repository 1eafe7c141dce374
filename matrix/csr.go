// SPDX-License-Identifier: MIT

// Package matrix - CSR sparse storage & structural kernels.
//
// Purpose:
//   - Compressed sparse row storage: indptr (len r+1), indices and data (len nnz).
//   - Canonical form is an invariant of every constructor and kernel:
//     column indices strictly increasing inside each row, no explicit zeros.
//     Canonical form makes Equal a plain slice comparison.
//   - Every kernel returns a fresh CSR; receivers are never mutated.
//
// Determinism:
//   - Fixed row-major loop orders; no map iteration leaks into output order.
//
// Complexity quicksheet:
//   - At: O(log nnz(row)); Transpose: O(r + c + nnz); SelectRows: O(r' + nnz');
//     SelectCols: O(c + nnz·k·log) where k is the fan-out of duplicated picks.

package matrix

import (
	"fmt"
	"slices"
	"sort"
)

const (
	ctxNewCSR     = "NewCSR"
	ctxCSRAt      = "CSR.At"
	ctxCSRRow     = "CSR.Row"
	ctxSelectRows = "CSR.SelectRows"
	ctxSelectCols = "CSR.SelectCols"
)

// CSR is an immutable compressed-sparse-row matrix of float64 values.
type CSR struct {
	r, c    int       // row and column counts (>=0)
	indptr  []int     // row pointers, len r+1, indptr[0]==0, non-decreasing
	indices []int     // column index per stored value, sorted within a row
	data    []float64 // stored non-zero values
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*CSR)(nil)
	_ fmt.Stringer = (*CSR)(nil)
)

// NewCSR returns an all-zero rows×cols sparse matrix.
// Errors: ErrInvalidDimensions on negative shape.
// Complexity: O(rows) for the row pointer array.
func NewCSR(rows, cols int) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNewCSR, ErrInvalidDimensions)
	}

	return &CSR{r: rows, c: cols, indptr: make([]int, rows+1)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *CSR) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored (non-zero) values. Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.data) }

// At returns the value at (row, col); absent entries read as 0.
// Errors: ErrOutOfRange. Complexity: O(log nnz(row)).
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxCSRAt, row, col), ErrOutOfRange)
	}
	lo, hi := m.indptr[row], m.indptr[row+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], col)
	if k < hi && m.indices[k] == col {
		return m.data[k], nil
	}

	return 0, nil
}

// Row returns copies of the column indices and values stored in row i.
// Errors: ErrOutOfRange.
func (m *CSR) Row(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.r {
		return nil, nil, matrixErrorf(fmt.Sprintf("%s(%d)", ctxCSRRow, i), ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return slices.Clone(m.indices[lo:hi]), slices.Clone(m.data[lo:hi]), nil
}

// Raw returns copies of the three CSR arrays (indptr, indices, data).
// Intended for serialization; FromRaw is the inverse.
func (m *CSR) Raw() (indptr, indices []int, data []float64) {
	return slices.Clone(m.indptr), slices.Clone(m.indices), slices.Clone(m.data)
}

// Clone returns a deep copy.
func (m *CSR) Clone() *CSR {
	return &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  slices.Clone(m.indptr),
		indices: slices.Clone(m.indices),
		data:    slices.Clone(m.data),
	}
}

// Equal reports whether a and b have the same shape and the same values.
// Both operands are canonical, so structural comparison is value comparison.
// Nil operands are equal only to each other.
func (m *CSR) Equal(o *CSR) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return slices.Equal(m.indptr, o.indptr) &&
		slices.Equal(m.indices, o.indices) &&
		slices.Equal(m.data, o.data)
}

// ToDense materializes the matrix into a row-major Dense.
// Complexity: O(r*c + nnz).
func (m *CSR) ToDense() *Dense {
	d := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			d.data[base+m.indices[k]] = m.data[k]
		}
	}

	return d
}

// String renders the densified matrix; intended for debugging small inputs.
func (m *CSR) String() string {
	return m.ToDense().String()
}

// Transpose returns mᵀ as a new CSR.
// Implementation: counting sort by column; scanning rows in ascending order
// yields sorted column indices in the output without a second sort.
// Complexity: O(r + c + nnz).
func (m *CSR) Transpose() *CSR {
	nnz := len(m.data)
	out := &CSR{
		r:       m.c,
		c:       m.r,
		indptr:  make([]int, m.c+1),
		indices: make([]int, nnz),
		data:    make([]float64, nnz),
	}
	// Stage 1: histogram of column occupancy.
	for _, j := range m.indices {
		out.indptr[j+1]++
	}
	// Stage 2: prefix sums into row pointers of the transpose.
	for j := 0; j < m.c; j++ {
		out.indptr[j+1] += out.indptr[j]
	}
	// Stage 3: scatter, row-major.
	next := slices.Clone(out.indptr[:m.c])
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.indices[k]
			dst := next[j]
			out.indices[dst] = i
			out.data[dst] = m.data[k]
			next[j]++
		}
	}

	return out
}

// SelectRows returns the rows at the given positions, in the given order.
// Repeated positions repeat the row. Errors: ErrOutOfRange.
// Complexity: O(len(pos) + nnz of the picked rows).
func (m *CSR) SelectRows(pos []int) (*CSR, error) {
	if err := ValidatePositions(pos, m.r); err != nil {
		return nil, matrixErrorf(ctxSelectRows, err)
	}
	nnz := 0
	for _, p := range pos {
		nnz += m.indptr[p+1] - m.indptr[p]
	}
	out := &CSR{
		r:       len(pos),
		c:       m.c,
		indptr:  make([]int, len(pos)+1),
		indices: make([]int, 0, nnz),
		data:    make([]float64, 0, nnz),
	}
	for i, p := range pos {
		lo, hi := m.indptr[p], m.indptr[p+1]
		out.indices = append(out.indices, m.indices[lo:hi]...)
		out.data = append(out.data, m.data[lo:hi]...)
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// SelectCols returns the columns at the given positions, in the given order.
// Repeated positions repeat the column. Errors: ErrOutOfRange.
// Implementation:
//   - Stage 1: invert the pick list into old→[]new fan-out lists.
//   - Stage 2: per row, emit every (new, value) pair then restore canonical
//     order by sorting the row segment on the new column index.
func (m *CSR) SelectCols(pos []int) (*CSR, error) {
	if err := ValidatePositions(pos, m.c); err != nil {
		return nil, matrixErrorf(ctxSelectCols, err)
	}
	fanout := make([][]int, m.c)
	for newJ, oldJ := range pos {
		fanout[oldJ] = append(fanout[oldJ], newJ)
	}
	out := &CSR{
		r:      m.r,
		c:      len(pos),
		indptr: make([]int, m.r+1),
	}
	for i := 0; i < m.r; i++ {
		start := len(out.indices)
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			for _, newJ := range fanout[m.indices[k]] {
				out.indices = append(out.indices, newJ)
				out.data = append(out.data, m.data[k])
			}
		}
		sortRowSegment(out.indices[start:], out.data[start:])
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Scale returns alpha*m. Scaling by zero yields an all-zero matrix.
func (m *CSR) Scale(alpha float64) *CSR {
	return m.mapValues(func(v float64) float64 { return alpha * v })
}

// Abs returns |m| elementwise.
func (m *CSR) Abs() *CSR {
	return m.mapValues(func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	})
}

// Sign returns sign(m) elementwise (-1, 0 or +1).
func (m *CSR) Sign() *CSR {
	return m.mapValues(func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	})
}

// mapValues applies fn to every stored value and drops resulting zeros,
// keeping the canonical form. Complexity: O(r + nnz).
func (m *CSR) mapValues(fn func(float64) float64) *CSR {
	out := &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  make([]int, m.r+1),
		indices: make([]int, 0, len(m.indices)),
		data:    make([]float64, 0, len(m.data)),
	}
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if v := fn(m.data[k]); v != 0 {
				out.indices = append(out.indices, m.indices[k])
				out.data = append(out.data, v)
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out
}

// rowSegment sorts a row's (index, value) pairs by index in place.
type rowSegment struct {
	idx []int
	val []float64
}

func (s rowSegment) Len() int           { return len(s.idx) }
func (s rowSegment) Less(a, b int) bool { return s.idx[a] < s.idx[b] }
func (s rowSegment) Swap(a, b int) {
	s.idx[a], s.idx[b] = s.idx[b], s.idx[a]
	s.val[a], s.val[b] = s.val[b], s.val[a]
}

// sortRowSegment restores ascending column order inside one row.
// Already-sorted segments (the common case) are detected in O(n).
func sortRowSegment(idx []int, val []float64) {
	if sort.IntsAreSorted(idx) {
		return
	}
	sort.Sort(rowSegment{idx: idx, val: val})
}
