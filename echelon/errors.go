// SPDX-License-Identifier: MIT

package echelon

import (
	"errors"
	"fmt"
)

// Sentinel errors. Shape, nil and index failures surface the matrix package
// sentinels (matrix.ErrNilMatrix, matrix.ErrOutOfRange, matrix.ErrNonSquare).
var (
	// ErrZeroScale is returned by RowMultiplication when k is zero (within eps).
	// Scaling by zero is not invertible and would destroy the row.
	ErrZeroScale = errors.New("echelon: row multiplication by zero")

	// ErrSingular is returned by Inverse when the matrix has no inverse.
	ErrSingular = errors.New("echelon: singular matrix")

	// ErrNonFiniteScalar is returned when a primitive receives NaN or ±Inf as factor.
	ErrNonFiniteScalar = errors.New("echelon: scalar is NaN or Inf")
)

// Operation tags for error wrapping.
const (
	opExchange    = "RowExchange"
	opMultiply    = "RowMultiplication"
	opTransvect   = "RowTransvection"
	opGauss       = "GaussReduce"
	opBack        = "BackReduce"
	opGaussJordan = "GaussJordanReduce"
	opIsREF       = "IsREF"
	opIsRREF      = "IsRREF"
	opPivots      = "PivotColumns"
	opRank        = "Rank"
	opInverse     = "Inverse"
)

// echelonErrorf wraps err with an operation tag, preserving it for errors.Is.
func echelonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
