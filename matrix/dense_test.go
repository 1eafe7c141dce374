// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvframe/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_At(t *testing.T) {
	t.Parallel()

	d := matrix.NewColVector([]float64{1, 4})
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = d.At(0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Vectors(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	row := matrix.NewRowVector(src)
	col := matrix.NewColVector(src)
	src[0] = 42

	r, c := row.Shape()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	r, c = col.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)

	got, err := row.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
	assert.Equal(t, [][]float64{{1}, {2}, {3}}, col.Values())
}
