// SPDX-License-Identifier: MIT

package frame_test

import (
	"cmp"
	"testing"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
	"github.com/stretchr/testify/require"
)

// mustFrame builds a string-labeled frame from a dense literal or fails the test.
func mustFrame(t testing.TB, values [][]float64, rows, cols []string, opts ...frame.Option) *frame.Frame[string] {
	t.Helper()
	m, err := matrix.FromDense(values)
	require.NoError(t, err)
	if len(values) == 0 {
		m, err = matrix.NewCSR(0, len(cols))
		require.NoError(t, err)
	}
	f, err := frame.New(m, rows, cols, opts...)
	require.NoError(t, err)

	return f
}

// denseOf materializes a frame's values for compact assertions.
func denseOf[L cmp.Ordered](f *frame.Frame[L]) [][]float64 {
	return f.Matrix().ToDense().Values()
}

// fixtureA / fixtureB are the two frames of the worked merge scenario.
func fixtureA(t testing.TB) *frame.Frame[string] {
	return mustFrame(t, [][]float64{{1, 0}, {0, 2}}, []string{"r1", "r2"}, []string{"c1", "c2"})
}

func fixtureB(t testing.TB) *frame.Frame[string] {
	return mustFrame(t, [][]float64{{5, 6}, {0, 7}}, []string{"r2", "r3"}, []string{"c2", "c3"})
}
