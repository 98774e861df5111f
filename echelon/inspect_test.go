// SPDX-License-Identifier: MIT

package echelon_test

import (
	"testing"

	"github.com/katalvlaran/rref/echelon"
	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/require"
)

func TestIsREF(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, true},
		{"upper", [][]float64{{2, 3, 4}, {0, 0, 5}}, true},
		{"zero row last", [][]float64{{1, 2}, {0, 0}}, true},
		{"zero row first", [][]float64{{0, 0}, {1, 2}}, false},
		{"same leading column", [][]float64{{1, 2}, {3, 4}}, false},
		{"leading moves left", [][]float64{{0, 1}, {1, 0}}, false},
		{"noise below eps", [][]float64{{1, 2}, {1e-12, 3}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := echelon.IsREF(mustDense(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

func TestIsRREF(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, true},
		{"free column", [][]float64{{1, 2, 0}, {0, 0, 1}}, true},
		{"pivot not one", [][]float64{{2, 0}, {0, 1}}, false},
		{"entry above pivot", [][]float64{{1, 3}, {0, 1}}, false},
		{"not echelon", [][]float64{{0, 1}, {1, 0}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := echelon.IsRREF(mustDense(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

func TestPivotColumns(t *testing.T) {
	leads, err := echelon.PivotColumns(mustDense(t, [][]float64{{0, 2, 1}, {0, 0, 3}, {0, 0, 0}}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, -1}, leads)
}

func TestRank(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want int
	}{
		{"golden", golden, 3},
		{"dependent row", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, 2},
		{"zeros", [][]float64{{0, 0}, {0, 0}}, 0},
		{"wide", [][]float64{{1, 0, 2, 3}, {0, 1, 4, 5}}, 2},
		{"tall", [][]float64{{1}, {2}, {3}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustDense(t, tc.rows)
			r, err := echelon.Rank(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
			requireRows(t, tc.rows, m) // input untouched
		})
	}
}

func TestInspectNil(t *testing.T) {
	_, err := echelon.IsREF(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = echelon.IsRREF(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = echelon.Rank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
