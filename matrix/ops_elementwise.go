// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise binary kernels over canonical CSR operands.
//   - Keep loops deterministic: rows ascending, two-pointer merge inside a row.
//
// Determinism & Performance:
//   - O(r + nnz(a) + nnz(b)); a single output allocation sized by the upper bound.
//   - Cancellations (a+b == 0) are dropped to keep the canonical form.

package matrix

const ctxAdd = "Add"

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *CSR) (*CSR, error) {
	return mergeBinary(ctxAdd, a, b)
}

// mergeBinary computes a + b with a per-row two-pointer merge.
func mergeBinary(tag string, a, b *CSR) (*CSR, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &CSR{
		r:       a.r,
		c:       a.c,
		indptr:  make([]int, a.r+1),
		indices: make([]int, 0, len(a.data)+len(b.data)),
		data:    make([]float64, 0, len(a.data)+len(b.data)),
	}
	emit := func(j int, v float64) {
		if v != 0 {
			out.indices = append(out.indices, j)
			out.data = append(out.data, v)
		}
	}
	for i := 0; i < a.r; i++ {
		p, pEnd := a.indptr[i], a.indptr[i+1]
		q, qEnd := b.indptr[i], b.indptr[i+1]
		for p < pEnd || q < qEnd {
			switch {
			case q >= qEnd || (p < pEnd && a.indices[p] < b.indices[q]):
				emit(a.indices[p], a.data[p])
				p++
			case p >= pEnd || b.indices[q] < a.indices[p]:
				emit(b.indices[q], b.data[q])
				q++
			default: // same column
				emit(a.indices[p], a.data[p]+b.data[q])
				p++
				q++
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}
