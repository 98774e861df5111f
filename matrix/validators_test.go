// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil rejects untyped and typed nils.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustRows(t, [][]float64{{1}})))
}

// TestValidateShapes covers the shape validators with table cases.
func TestValidateShapes(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewZeros(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		check   func() error
		wantErr error
	}{
		{"same shape", func() error { return matrix.ValidateSameShape(zeros(2, 3), zeros(2, 3)) }, nil},
		{"row mismatch", func() error { return matrix.ValidateSameShape(zeros(2, 3), zeros(3, 3)) }, matrix.ErrDimensionMismatch},
		{"col mismatch", func() error { return matrix.ValidateSameShape(zeros(2, 3), zeros(2, 4)) }, matrix.ErrDimensionMismatch},
		{"binary nil", func() error { return matrix.ValidateBinarySameShape(nil, zeros(1, 1)) }, matrix.ErrNilMatrix},
		{"square", func() error { return matrix.ValidateSquare(zeros(3, 3)) }, nil},
		{"non-square", func() error { return matrix.ValidateSquare(zeros(2, 3)) }, matrix.ErrNonSquare},
		{"same rows", func() error { return matrix.ValidateSameRows(zeros(2, 3), zeros(2, 1)) }, nil},
		{"rows differ", func() error { return matrix.ValidateSameRows(zeros(2, 3), zeros(1, 3)) }, matrix.ErrDimensionMismatch},
		{"mul ok", func() error { return matrix.ValidateMulCompatible(zeros(2, 3), zeros(3, 5)) }, nil},
		{"mul bad", func() error { return matrix.ValidateMulCompatible(zeros(2, 3), zeros(2, 3)) }, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateFinite finds non-finite values behind a relaxed policy.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(mustRows(t, [][]float64{{1, 2}})))
}
