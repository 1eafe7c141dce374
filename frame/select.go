// SPDX-License-Identifier: MIT

// Package frame - positional selection and transposition.

package frame

const (
	ctxSelectRows    = "SelectRows"
	ctxSelectColumns = "SelectColumns"
)

// SelectRows returns the rows picked by sel; column labels and the default
// reducer carry over. A nil or All selector returns an unchanged copy.
// Errors: ErrSelectorLength, ErrNotBoolean, matrix.ErrOutOfRange.
func (f *Frame[L]) SelectRows(sel Selector) (*Frame[L], error) {
	if isAll(sel) {
		return f.derive(f.m, f.rows, f.cols, f.reducer), nil
	}
	pos, err := sel.resolve(f.m.Rows())
	if err != nil {
		return nil, frameErrorf(ctxSelectRows, err)
	}
	m, err := f.m.SelectRows(pos)
	if err != nil {
		return nil, frameErrorf(ctxSelectRows, err)
	}

	return f.derive(m, pick(f.rows, pos), f.cols, f.reducer), nil
}

// SelectColumns returns the columns picked by sel; row labels and the
// default reducer carry over. A nil or All selector returns an unchanged copy.
// Errors: ErrSelectorLength, ErrNotBoolean, matrix.ErrOutOfRange.
func (f *Frame[L]) SelectColumns(sel Selector) (*Frame[L], error) {
	if isAll(sel) {
		return f.derive(f.m, f.rows, f.cols, f.reducer), nil
	}
	pos, err := sel.resolve(f.m.Cols())
	if err != nil {
		return nil, frameErrorf(ctxSelectColumns, err)
	}
	m, err := f.m.SelectCols(pos)
	if err != nil {
		return nil, frameErrorf(ctxSelectColumns, err)
	}

	return f.derive(m, f.rows, pick(f.cols, pos), f.reducer), nil
}

// Sub selects columns with colSel, then rows with rowSel.
func (f *Frame[L]) Sub(colSel, rowSel Selector) (*Frame[L], error) {
	g, err := f.SelectColumns(colSel)
	if err != nil {
		return nil, err
	}

	return g.SelectRows(rowSel)
}

// T returns the transpose: rows become columns and labels swap accordingly.
// The default reducer is carried unchanged.
func (f *Frame[L]) T() *Frame[L] {
	return f.derive(f.m.Transpose(), f.cols, f.rows, f.reducer)
}
