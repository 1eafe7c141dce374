// SPDX-License-Identifier: MIT

// Package frame - reducers: matrix → 1×N or N×1 vector.
//
// Built-ins:
//   - L1NormColumns / L1NormRows: sum of absolute values per column / row.
//   - L0NormColumns / L0NormRows: count of non-zeros per column / row.
//   - SumColumns / SumRows: plain sums.
//
// Only named reducers survive persistence; ReducerByName resolves them.

package frame

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvframe/matrix"
)

// Reducer summarizes a matrix into a vector. The result must be 1×N or N×1;
// any other shape fails Summarize with ErrReductionShape.
type Reducer interface {
	Reduce(m *matrix.CSR) (matrix.Matrix, error)
}

// ReducerFunc adapts a plain function to Reducer.
type ReducerFunc func(m *matrix.CSR) (matrix.Matrix, error)

// Reduce calls fn(m).
func (fn ReducerFunc) Reduce(m *matrix.CSR) (matrix.Matrix, error) { return fn(m) }

// NamedReducer is a Reducer with a stable name used for persistence.
type NamedReducer interface {
	Reducer
	Name() string
}

type namedReducer struct {
	name string
	r    Reducer
}

func (n namedReducer) Reduce(m *matrix.CSR) (matrix.Matrix, error) { return n.r.Reduce(m) }
func (n namedReducer) Name() string                                { return n.name }

// Named attaches name to r. Panics on an empty name or a nil reducer.
func Named(name string, r Reducer) NamedReducer {
	if name == "" || r == nil {
		panic("frame: Named requires a name and a reducer")
	}

	return namedReducer{name: name, r: r}
}

// columnReducer lifts a per-column kernel into a 1×N reducer.
func columnReducer(kernel func(*matrix.CSR) ([]float64, error)) ReducerFunc {
	return func(m *matrix.CSR) (matrix.Matrix, error) {
		v, err := kernel(m)
		if err != nil {
			return nil, err
		}

		return matrix.NewRowVector(v), nil
	}
}

// rowReducer lifts a per-row kernel into an N×1 reducer.
func rowReducer(kernel func(*matrix.CSR) ([]float64, error)) ReducerFunc {
	return func(m *matrix.CSR) (matrix.Matrix, error) {
		v, err := kernel(m)
		if err != nil {
			return nil, err
		}

		return matrix.NewColVector(v), nil
	}
}

var (
	// L1NormColumns sums |value| down every column (1×N).
	L1NormColumns = Named("l1-columns", columnReducer(matrix.ColAbsSums))
	// L0NormColumns counts non-zeros down every column (1×N).
	L0NormColumns = Named("l0-columns", columnReducer(matrix.ColNonZeros))
	// SumColumns sums every column (1×N).
	SumColumns = Named("sum-columns", columnReducer(matrix.ColSums))
	// L1NormRows sums |value| along every row (N×1).
	L1NormRows = Named("l1-rows", rowReducer(matrix.RowAbsSums))
	// L0NormRows counts non-zeros along every row (N×1).
	L0NormRows = Named("l0-rows", rowReducer(matrix.RowNonZeros))
	// SumRows sums every row (N×1).
	SumRows = Named("sum-rows", rowReducer(matrix.RowSums))
)

var builtinReducers = map[string]NamedReducer{
	L1NormColumns.Name(): L1NormColumns,
	L0NormColumns.Name(): L0NormColumns,
	SumColumns.Name():    SumColumns,
	L1NormRows.Name():    L1NormRows,
	L0NormRows.Name():    L0NormRows,
	SumRows.Name():       SumRows,
}

// ReducerByName returns the built-in reducer registered under name.
// Errors: ErrUnknownReducer.
func ReducerByName(name string) (NamedReducer, error) {
	r, ok := builtinReducers[name]
	if !ok {
		return nil, frameErrorf(fmt.Sprintf("ReducerByName(%q)", name), ErrUnknownReducer)
	}

	return r, nil
}

// ReducerNames lists the built-in reducer names in ascending order.
func ReducerNames() []string {
	out := make([]string, 0, len(builtinReducers))
	for name := range builtinReducers {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

// ReducerName returns r's name when r is a NamedReducer.
func ReducerName(r Reducer) (string, bool) {
	n, ok := r.(NamedReducer)
	if !ok {
		return "", false
	}

	return n.Name(), true
}
