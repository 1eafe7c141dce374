// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_AutoAxis(t *testing.T) {
	t.Parallel()

	f := mustFrame(t, [][]float64{{1, -2, 0}, {0, 3, 0}}, []string{"r0", "r1"}, []string{"a", "b", "c"})

	cols, err := f.Summarize(frame.L1NormColumns, frame.AxisAuto)
	require.NoError(t, err)
	assert.Equal(t, frame.AxisColumn, cols.Axis())
	assert.Equal(t, []string{"a", "b", "c"}, cols.Labels())
	assert.Equal(t, []float64{1, 5, 0}, cols.Values())
	assert.Same(t, f, cols.Source())
	assert.False(t, cols.IsBool())

	rows, err := f.Summarize(frame.L0NormRows, frame.AxisAuto)
	require.NoError(t, err)
	assert.Equal(t, frame.AxisRow, rows.Axis())
	assert.Equal(t, []string{"r0", "r1"}, rows.Labels())
	assert.Equal(t, []float64{2, 1}, rows.Values())
}

func TestSummarize_ExplicitAxis(t *testing.T) {
	t.Parallel()

	f := mustFrame(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, []string{"r0", "r1"}, []string{"a", "b", "c"})
	_, err := f.Summarize(frame.SumColumns, frame.AxisRow)
	require.ErrorIs(t, err, frame.ErrReductionShape)

	s, err := f.Summarize(frame.SumColumns, frame.AxisColumn)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, s.Values())
}

func TestSummarize_SquareTieBreak(t *testing.T) {
	t.Parallel()

	f := mustFrame(t, [][]float64{{1, 2}, {3, 4}}, []string{"r0", "r1"}, []string{"c0", "c1"})

	cols, err := f.Summarize(frame.SumColumns, frame.AxisAuto)
	require.NoError(t, err)
	assert.Equal(t, frame.AxisColumn, cols.Axis())
	assert.Equal(t, []string{"c0", "c1"}, cols.Labels())
	assert.Equal(t, []float64{4, 6}, cols.Values())

	rows, err := f.Summarize(frame.SumRows, frame.AxisAuto)
	require.NoError(t, err)
	assert.Equal(t, frame.AxisRow, rows.Axis())
	assert.Equal(t, []float64{3, 7}, rows.Values())

	one := mustFrame(t, [][]float64{{9}}, []string{"r"}, []string{"c"})
	_, err = one.Summarize(frame.SumColumns, frame.AxisAuto)
	require.ErrorIs(t, err, frame.ErrAmbiguousAxis)
	s, err := one.Summarize(frame.SumColumns, frame.AxisRow)
	require.NoError(t, err)
	assert.Equal(t, []string{"r"}, s.Labels())
}

func TestSummarize_BadReducers(t *testing.T) {
	t.Parallel()

	f := mustFrame(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, []string{"r0", "r1"}, []string{"a", "b", "c"})

	dense := frame.ReducerFunc(func(m *matrix.CSR) (matrix.Matrix, error) {
		return m.ToDense(), nil
	})
	_, err := f.Summarize(dense, frame.AxisAuto)
	require.ErrorIs(t, err, frame.ErrReductionShape)

	wrongLen := frame.ReducerFunc(func(*matrix.CSR) (matrix.Matrix, error) {
		return matrix.NewRowVector([]float64{1, 2, 3, 4}), nil
	})
	_, err = f.Summarize(wrongLen, frame.AxisAuto)
	require.ErrorIs(t, err, frame.ErrReductionShape)

	failing := frame.ReducerFunc(func(*matrix.CSR) (matrix.Matrix, error) {
		return nil, matrix.ErrNaNInf
	})
	_, err = f.Summarize(failing, frame.AxisAuto)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = f.Summarize(nil, frame.AxisAuto)
	require.ErrorIs(t, err, frame.ErrNoReducer)
}

func TestSummary_DefaultReducer(t *testing.T) {
	t.Parallel()

	f := fixtureA(t)
	_, err := f.Summary()
	require.ErrorIs(t, err, frame.ErrNoReducer)

	s, err := f.WithDefaultReducer(frame.L1NormColumns).Summary()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Values())
}

func TestSummary_Comparisons(t *testing.T) {
	t.Parallel()

	s, err := frame.NewSummary([]float64{1, 2, 3}, []string{"a", "b", "c"})
	require.NoError(t, err)

	tests := []struct {
		name string
		got  *frame.Summary[string]
		want []bool
	}{
		{"lt", s.LessThan(2), []bool{true, false, false}},
		{"le", s.LessOrEqual(2), []bool{true, true, false}},
		{"gt", s.GreaterThan(2), []bool{false, false, true}},
		{"ge", s.GreaterOrEqual(2), []bool{false, true, true}},
	}
	for _, tc := range tests {
		mask, err := tc.got.Mask()
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, mask, tc.name)
		assert.Equal(t, s.Labels(), tc.got.Labels(), tc.name)
	}

	_, err = s.Mask()
	require.ErrorIs(t, err, frame.ErrNotBoolean)
}

func TestSummary_Logic(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b", "c", "d"}
	x, err := frame.NewMaskSummary([]bool{true, true, false, false}, labels)
	require.NoError(t, err)
	y, err := frame.NewMaskSummary([]bool{true, false, true, false}, labels)
	require.NoError(t, err)

	and, err := x.And(y)
	require.NoError(t, err)
	got, err := and.Mask()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, got)

	or, err := x.Or(y)
	require.NoError(t, err)
	got, err = or.Mask()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, got)

	not, err := x.Not()
	require.NoError(t, err)
	got, err = not.Mask()
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, true}, got)

	other, err := frame.NewMaskSummary([]bool{true, true, true, true}, []string{"a", "b", "c", "z"})
	require.NoError(t, err)
	_, err = x.And(other)
	require.ErrorIs(t, err, frame.ErrLabelMismatch)

	numeric, err := frame.NewSummary([]float64{1, 0, 1, 0}, labels)
	require.NoError(t, err)
	_, err = x.And(numeric)
	require.ErrorIs(t, err, frame.ErrNotBoolean)
	_, err = numeric.Not()
	require.ErrorIs(t, err, frame.ErrNotBoolean)
}

func TestSummary_Filtered(t *testing.T) {
	t.Parallel()

	s, err := frame.NewMaskSummary([]bool{true, false, true}, []string{"c1", "c2", "c3"})
	require.NoError(t, err)

	labels, err := s.FilteredLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3"}, labels)

	pos, err := s.FilteredPositions()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, pos)

	numeric, err := frame.NewSummary([]float64{1}, []string{"x"})
	require.NoError(t, err)
	_, err = numeric.FilteredLabels()
	require.ErrorIs(t, err, frame.ErrNotBoolean)
}

func TestSummary_SubFrame(t *testing.T) {
	t.Parallel()

	f := grid(t)
	s, err := f.Summary()
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 7}, s.Values())

	kept, err := s.GreaterOrEqual(5).SubFrame()
	require.NoError(t, err)
	assert.Equal(t, []string{"c0", "c2"}, kept.ColLabels())
	assert.Equal(t, f.RowLabels(), kept.RowLabels())

	rows, err := f.Summarize(frame.L0NormRows, frame.AxisAuto)
	require.NoError(t, err)
	dense, err := rows.GreaterThan(1).SubFrame()
	require.NoError(t, err)
	assert.Equal(t, []string{"r0", "r2"}, dense.RowLabels())

	_, err = s.SubFrame()
	require.ErrorIs(t, err, frame.ErrNotBoolean)

	detached, err := frame.NewMaskSummary([]bool{true}, []string{"x"})
	require.NoError(t, err)
	_, err = detached.SubFrame()
	require.ErrorIs(t, err, frame.ErrNoSource)
}

func TestSummary_TopK(t *testing.T) {
	t.Parallel()

	s, err := frame.NewSummary([]float64{3, 1, 4, 1, 5}, []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4}, s.TopKPositions(2, false))
	assert.Equal(t, []string{"c", "e"}, s.TopKLabels(2, false))
	// Ties keep position order: b (1) before d (1).
	assert.Equal(t, []int{1, 3}, s.TopKPositions(2, true))
	assert.Equal(t, []string{"b", "d", "a"}, s.TopKLabels(3, true))

	assert.Empty(t, s.TopKPositions(0, false))
	assert.Empty(t, s.TopKPositions(-1, true))
	assert.Equal(t, []int{1, 3, 0, 2, 4}, s.TopKPositions(10, false))
}

func TestNewSummary_Shape(t *testing.T) {
	t.Parallel()

	_, err := frame.NewSummary([]float64{1, 2}, []string{"a"})
	require.ErrorIs(t, err, frame.ErrLabelShape)
	_, err = frame.NewMaskSummary([]bool{true}, []string{"a", "b"})
	require.ErrorIs(t, err, frame.ErrLabelShape)
}

func TestAxis_StringParse(t *testing.T) {
	t.Parallel()

	for _, a := range []frame.Axis{frame.AxisAuto, frame.AxisRow, frame.AxisColumn} {
		got, err := frame.ParseAxis(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := frame.ParseAxis("diagonal")
	require.Error(t, err)
}
