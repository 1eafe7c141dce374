// Package matrix is the sparse linear-algebra engine underneath lvframe.
//
// The matrix package provides:
//
//   - CSR, an immutable compressed-sparse-row matrix kept in canonical form
//     (sorted column indices per row, no explicit zeros).
//   - Constructors: NewCSR (all-zero), FromTriplets, FromDense, FromRaw.
//   - Structural kernels: Transpose, SelectRows, SelectCols, HStack, VStack.
//   - Element-wise kernels: Add, Scale, Abs, Sign.
//   - Axis reductions: ColSums/RowSums, ColAbsSums/RowAbsSums (L1),
//     ColNonZeros/RowNonZeros (L0).
//   - Dense, the row-major materialization used for export and as the
//     1×N / N×1 carrier of reduction results.
//
// Every kernel returns a new matrix; receivers are never mutated, so a CSR
// can be shared freely between goroutines.
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch, ...)
// wrapped with an operation tag; match them with errors.Is.
package matrix
