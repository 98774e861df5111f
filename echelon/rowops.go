// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rref/matrix"
)

// checkRow reports matrix.ErrOutOfRange for a row index outside [0, n).
func checkRow(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("row %d of %d: %w", i, n, matrix.ErrOutOfRange)
	}

	return nil
}

// RowExchange swaps rows i and j of m in place (Ri ↔ Rj) and increments c.
// i == j is legal: the matrix is unchanged and the operation is still counted.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange.
func RowExchange(m matrix.Matrix, i, j int, c *Counter, opts ...Option) error {
	e, err := newEngine(m, c, opts)
	if err != nil {
		return echelonErrorf(opExchange, err)
	}
	if err = checkRow(i, e.nRows); err != nil {
		return echelonErrorf(opExchange, err)
	}
	if err = checkRow(j, e.nRows); err != nil {
		return echelonErrorf(opExchange, err)
	}
	e.exchange(i, j)

	if err = e.commit(); err != nil {
		return echelonErrorf(opExchange, err)
	}

	return nil
}

// RowMultiplication scales row i of m by k in place (Ri → k·Ri) and increments c.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange, ErrZeroScale when
// |k| ≤ eps, ErrNonFiniteScalar for NaN/Inf.
func RowMultiplication(m matrix.Matrix, i int, k float64, c *Counter, opts ...Option) error {
	e, err := newEngine(m, c, opts)
	if err != nil {
		return echelonErrorf(opMultiply, err)
	}
	if err = checkRow(i, e.nRows); err != nil {
		return echelonErrorf(opMultiply, err)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return echelonErrorf(opMultiply, ErrNonFiniteScalar)
	}
	if e.isZero(k) {
		return echelonErrorf(opMultiply, ErrZeroScale)
	}
	e.multiply(i, k)

	if err = e.commit(); err != nil {
		return echelonErrorf(opMultiply, err)
	}

	return nil
}

// RowTransvection replaces row i of m with row_i − k·row_j (Ri → Ri − k·Rj)
// and increments c. Cells that cancel to within eps of zero are stored as 0.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange, ErrNonFiniteScalar.
func RowTransvection(m matrix.Matrix, i, j int, k float64, c *Counter, opts ...Option) error {
	e, err := newEngine(m, c, opts)
	if err != nil {
		return echelonErrorf(opTransvect, err)
	}
	if err = checkRow(i, e.nRows); err != nil {
		return echelonErrorf(opTransvect, err)
	}
	if err = checkRow(j, e.nRows); err != nil {
		return echelonErrorf(opTransvect, err)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return echelonErrorf(opTransvect, ErrNonFiniteScalar)
	}
	e.transvect(i, j, k)

	if err = e.commit(); err != nil {
		return echelonErrorf(opTransvect, err)
	}

	return nil
}
