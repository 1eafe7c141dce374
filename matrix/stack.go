// SPDX-License-Identifier: MIT

// Package matrix - horizontal and vertical concatenation.
//
// Both kernels return canonical CSR output; column offsets added by HStack
// keep per-row indices ascending because blocks are emitted left to right.

package matrix

import "fmt"

const (
	ctxHStack = "HStack"
	ctxVStack = "VStack"
)

// HStack concatenates matrices left to right ("stack along columns").
// All operands must share the same row count; zero operands yield 0×0.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows·len(ms) + total nnz).
func HStack(ms ...*CSR) (*CSR, error) {
	if len(ms) == 0 {
		return NewCSR(0, 0)
	}
	rows, cols, nnz := -1, 0, 0
	for k, m := range ms {
		if m == nil {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]", ctxHStack, k), ErrNilMatrix)
		}
		if rows >= 0 && m.r != rows {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]: rows %d != %d", ctxHStack, k, m.r, rows), ErrDimensionMismatch)
		}
		rows = m.r
		cols += m.c
		nnz += len(m.data)
	}
	out := &CSR{
		r:       rows,
		c:       cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, nnz),
		data:    make([]float64, 0, nnz),
	}
	for i := 0; i < rows; i++ {
		offset := 0
		for _, m := range ms {
			for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
				out.indices = append(out.indices, m.indices[k]+offset)
				out.data = append(out.data, m.data[k])
			}
			offset += m.c
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// VStack concatenates matrices top to bottom ("stack along rows").
// All operands must share the same column count; zero operands yield 0×0.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(total rows + total nnz).
func VStack(ms ...*CSR) (*CSR, error) {
	if len(ms) == 0 {
		return NewCSR(0, 0)
	}
	cols, rows, nnz := -1, 0, 0
	for k, m := range ms {
		if m == nil {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]", ctxVStack, k), ErrNilMatrix)
		}
		if cols >= 0 && m.c != cols {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]: cols %d != %d", ctxVStack, k, m.c, cols), ErrDimensionMismatch)
		}
		cols = m.c
		rows += m.r
		nnz += len(m.data)
	}
	out := &CSR{
		r:       rows,
		c:       cols,
		indptr:  make([]int, 1, rows+1),
		indices: make([]int, 0, nnz),
		data:    make([]float64, 0, nnz),
	}
	for _, m := range ms {
		base := len(out.indices)
		out.indices = append(out.indices, m.indices...)
		out.data = append(out.data, m.data...)
		for i := 1; i <= m.r; i++ {
			out.indptr = append(out.indptr, base+m.indptr[i])
		}
	}

	return out, nil
}

// PadCols returns m with n all-zero columns appended on the right; it equals
// HStack(m, zeros(m.Rows(), n)) without the intermediate matrix.
// Non-positive n returns a copy of m. Complexity: O(r + nnz).
func (m *CSR) PadCols(n int) *CSR {
	out := m.Clone()
	if n > 0 {
		out.c += n
	}

	return out
}
