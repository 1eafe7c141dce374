// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvframe/matrix"
	"github.com/stretchr/testify/require"
)

// MustCSR builds a CSR from a dense literal or fails the test.
func MustCSR(t testing.TB, values [][]float64) *matrix.CSR {
	t.Helper()
	m, err := matrix.FromDense(values)
	require.NoError(t, err)

	return m
}

// DenseOf materializes m as [][]float64 for compact assertions.
func DenseOf(m *matrix.CSR) [][]float64 {
	return m.ToDense().Values()
}

// RandomCSR fills an r×c matrix with roughly density*r*c non-zeros drawn
// from a fixed seed; used by property-style tests and benchmarks.
func RandomCSR(t testing.TB, r, c int, density float64, seed int64) *matrix.CSR {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var ts []matrix.Triplet
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				ts = append(ts, matrix.Triplet{Row: i, Col: j, Value: float64(rng.Intn(9) + 1)})
			}
		}
	}
	m, err := matrix.FromTriplets(r, c, ts)
	require.NoError(t, err)

	return m
}
