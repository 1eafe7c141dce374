// Package frame implements lvframe's labeled sparse container and the two
// engines built on it.
//
// Frame[L] couples an immutable *matrix.CSR with a label per row and a label
// per column. Labels are any cmp.Ordered type; NewPositional labels by
// position. Transforms (SelectRows, SelectColumns, Sub, T, ExtendZeroColumns)
// return new frames.
//
// Summary engine: a Reducer turns the matrix into a 1×N or N×1 vector;
// Summarize aligns it with the matching axis and labels it. Numeric summaries
// compare against scalars into boolean masks; masks combine with And, Or and
// Not, list the surviving labels and positions, and select a sub-frame from
// the frame they were computed on. TopKPositions / TopKLabels rank values.
//
// Merge engine: Merge aligns two frames on their column labels (zero-filling
// missing columns), splits rows into self-only, overlapping and other-only,
// and resolves the overlap with one of five policies: ForceAppend, Keep,
// Replace, Sum, Mean. Output columns are in ascending label order.
//
// Errors are package sentinels wrapped with the operation name; match them
// with errors.Is. Errors from the matrix engine are wrapped, not replaced.
//
// Quick start:
//
//	m, _ := matrix.FromDense([][]float64{{1, 0}, {0, 2}})
//	a, _ := frame.New(m, []string{"r1", "r2"}, []string{"c1", "c2"},
//		frame.WithReducer(frame.L1NormColumns))
//	s, _ := a.Summary()
//	kept, _ := s.GreaterThan(1).SubFrame()
package frame
