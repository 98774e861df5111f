// SPDX-License-Identifier: MIT
// Package echelon_test contains test helpers shared by the reducer tests.
//
// Purpose:
//   - Build deterministic fixtures (literals and seeded random matrices).
//   - Provide a wrapper that hides *matrix.Dense to exercise the copy path.

package echelon_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for results computed along different paths.
const tol = 1e-9

// golden is the fixed test-mode matrix whose RREF is I₃.
var golden = [][]float64{
	{-1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
}

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the reducers through their copy-and-write-back path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from a literal or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireRows asserts m equals want element-wise within tol.
func requireRows(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], v, tol, "at (%d,%d)", i, j)
		}
	}
}

// randomRows returns an r×c literal of small integers in [-5, 5]. When
// deficient is set, the last row is replaced by the sum of the first two rows
// (r ≥ 3), making the matrix rank-deficient.
func randomRows(rng *rand.Rand, r, c int, deficient bool) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = float64(rng.Intn(11) - 5)
		}
	}
	if deficient && r >= 3 {
		for j := 0; j < c; j++ {
			out[r-1][j] = out[0][j] + out[1][j]
		}
	}

	return out
}

// randomCases yields a deterministic set of shapes, square and rectangular,
// full-rank-ish and deliberately rank-deficient.
func randomCases(seed int64, n int) [][][]float64 {
	rng := rand.New(rand.NewSource(seed))
	cases := make([][][]float64, 0, n)
	for k := 0; k < n; k++ {
		r := 2 + rng.Intn(5) // 2..6
		c := 1 + rng.Intn(6) // 1..6
		cases = append(cases, randomRows(rng, r, c, k%3 == 0))
	}

	return cases
}
