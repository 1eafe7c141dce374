// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse and dense layouts.
// This file intentionally contains ONLY the read-only Matrix surface and the
// COO triplet used for ingestion. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix is the read-only two-dimensional surface shared by *CSR and *Dense.
// Reducers return a Matrix so that 1×N and N×1 results keep their orientation.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for Dense and
// O(log nnz(row)) for CSR.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Triplet is one (row, col, value) coordinate entry used by FromTriplets.
// Duplicated coordinates are summed; zero values are dropped.
type Triplet struct {
	Row   int     // zero-based row index
	Col   int     // zero-based column index
	Value float64 // stored value (finite under the default numeric policy)
}
