// SPDX-License-Identifier: MIT

// Package matrix - axis reductions over CSR.
//
// Naming follows the output alignment: Col* returns one value per column
// (length Cols), Row* returns one value per row (length Rows).
// All reductions return fresh slices; nil input fails with ErrNilMatrix.

package matrix

// ColSums returns s[j] = Σ_i m[i,j]. Complexity: O(c + nnz).
func ColSums(m *CSR) ([]float64, error) {
	return colReduce("ColSums", m, func(v float64) float64 { return v })
}

// ColAbsSums returns s[j] = Σ_i |m[i,j]| (column L1 norms).
func ColAbsSums(m *CSR) ([]float64, error) {
	return colReduce("ColAbsSums", m, abs)
}

// ColNonZeros returns s[j] = #{i : m[i,j] != 0} (column L0 norms).
func ColNonZeros(m *CSR) ([]float64, error) {
	return colReduce("ColNonZeros", m, func(float64) float64 { return 1 })
}

// RowSums returns s[i] = Σ_j m[i,j]. Complexity: O(r + nnz).
func RowSums(m *CSR) ([]float64, error) {
	return rowReduce("RowSums", m, func(v float64) float64 { return v })
}

// RowAbsSums returns s[i] = Σ_j |m[i,j]| (row L1 norms).
func RowAbsSums(m *CSR) ([]float64, error) {
	return rowReduce("RowAbsSums", m, abs)
}

// RowNonZeros returns s[i] = #{j : m[i,j] != 0} (row L0 norms).
func RowNonZeros(m *CSR) ([]float64, error) {
	return rowReduce("RowNonZeros", m, func(float64) float64 { return 1 })
}

func colReduce(tag string, m *CSR, fn func(float64) float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	out := make([]float64, m.c)
	for k, j := range m.indices {
		out[j] += fn(m.data[k])
	}

	return out, nil
}

func rowReduce(tag string, m *CSR, fn func(float64) float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			out[i] += fn(m.data[k])
		}
	}

	return out, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
