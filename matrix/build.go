// SPDX-License-Identifier: MIT

// Package matrix - CSR constructors.
//
// Purpose:
//   - FromTriplets: COO ingestion (duplicates summed, zeros dropped).
//   - FromDense: convenience ingestion of [][]float64 literals (tests, examples).
//   - FromRaw: validated re-assembly of raw CSR arrays (deserialization).
//
// Determinism:
//   - Output is canonical regardless of triplet order.

package matrix

import (
	"fmt"
	"slices"
)

const (
	ctxFromTriplets = "FromTriplets"
	ctxFromDense    = "FromDense"
	ctxFromRaw      = "FromRaw"
)

// FromTriplets builds a rows×cols CSR from coordinate entries.
// Implementation:
//   - Stage 1: validate shape, coordinates and the numeric policy.
//   - Stage 2: counting sort of entries by row.
//   - Stage 3: per row, sort by column, sum duplicates, drop zeros.
//
// Errors: ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf (unless
// WithNoValidateNaNInf).
// Complexity: O(rows + nnz·log(nnz per row)).
func FromTriplets(rows, cols int, ts []Triplet, opts ...Option) (*CSR, error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxFromTriplets, ErrInvalidDimensions)
	}
	for k, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]=(%d,%d)", ctxFromTriplets, k, t.Row, t.Col), ErrOutOfRange)
		}
		if o.validateNaNInf && isNonFinite(t.Value) {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]", ctxFromTriplets, k), ErrNaNInf)
		}
	}

	// Counting sort by row.
	counts := make([]int, rows+1)
	for _, t := range ts {
		counts[t.Row+1]++
	}
	for i := 0; i < rows; i++ {
		counts[i+1] += counts[i]
	}
	idx := make([]int, len(ts))
	val := make([]float64, len(ts))
	next := slices.Clone(counts[:rows])
	for _, t := range ts {
		p := next[t.Row]
		idx[p] = t.Col
		val[p] = t.Value
		next[t.Row]++
	}

	out := &CSR{
		r:       rows,
		c:       cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(ts)),
		data:    make([]float64, 0, len(ts)),
	}
	for i := 0; i < rows; i++ {
		lo, hi := counts[i], counts[i+1]
		sortRowSegment(idx[lo:hi], val[lo:hi])
		for k := lo; k < hi; {
			col, sum := idx[k], val[k]
			k++
			for k < hi && idx[k] == col {
				sum += val[k]
				k++
			}
			if sum != 0 {
				out.indices = append(out.indices, col)
				out.data = append(out.data, sum)
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// FromDense builds a CSR from a row-major literal. All rows must have the same
// length; an empty literal yields a 0×0 matrix.
// Errors: ErrDimensionMismatch on ragged rows, ErrNaNInf per numeric policy.
func FromDense(values [][]float64, opts ...Option) (*CSR, error) {
	o := gatherOptions(opts...)
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	out := &CSR{r: rows, c: cols, indptr: make([]int, rows+1)}
	for i, row := range values {
		if len(row) != cols {
			return nil, matrixErrorf(fmt.Sprintf("%s: row %d has %d values, want %d", ctxFromDense, i, len(row), cols), ErrDimensionMismatch)
		}
		for j, v := range row {
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxFromDense, i, j), ErrNaNInf)
			}
			if v != 0 {
				out.indices = append(out.indices, j)
				out.data = append(out.data, v)
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// FromRaw re-assembles a CSR from its raw arrays (inputs are copied).
// Every storage invariant is checked; explicit zeros are dropped.
// Errors: ErrInvalidDimensions, ErrCorrupt.
// Complexity: O(rows + nnz).
func FromRaw(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxFromRaw, ErrInvalidDimensions)
	}
	if len(indptr) != rows+1 || indptr[0] != 0 {
		return nil, matrixErrorf(ctxFromRaw+": indptr", ErrCorrupt)
	}
	if len(indices) != len(data) || indptr[rows] != len(indices) {
		return nil, matrixErrorf(ctxFromRaw+": lengths", ErrCorrupt)
	}
	out := &CSR{
		r:       rows,
		c:       cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(indices)),
		data:    make([]float64, 0, len(data)),
	}
	for i := 0; i < rows; i++ {
		lo, hi := indptr[i], indptr[i+1]
		if lo > hi || hi > len(indices) {
			return nil, matrixErrorf(fmt.Sprintf("%s: indptr[%d]=%d", ctxFromRaw, i+1, hi), ErrCorrupt)
		}
		prev := -1
		for k := lo; k < hi; k++ {
			j := indices[k]
			if j < 0 || j >= cols || j <= prev {
				return nil, matrixErrorf(fmt.Sprintf("%s: row %d column %d", ctxFromRaw, i, j), ErrCorrupt)
			}
			prev = j
			if data[k] != 0 {
				out.indices = append(out.indices, j)
				out.data = append(out.data, data[k])
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}
