// SPDX-License-Identifier: MIT

package echelon

import "github.com/katalvlaran/rref/matrix"

// GaussReduce transforms m in place into row-echelon form by forward
// elimination.
//
// Columns are scanned left to right. In each column the pivot is chosen among
// the rows not yet holding a pivot (see Pivoting); when it is not already in
// place it is exchanged up, then every non-zero entry below it is eliminated
// with a transvection of factor entry/pivot. Columns without a candidate are
// skipped, so rank-deficient input simply yields fewer pivots and its zero
// rows end up at the bottom.
//
// c is reset on entry and holds the number of operations on return; it may be
// nil. A single-row matrix is already in echelon form and is left untouched.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, or a write-back error for
// non-Dense matrices.
//
// Complexity: O(min(r,c)·r·c) time, O(r) extra space.
func GaussReduce(m matrix.Matrix, c *Counter, opts ...Option) error {
	e, err := newEngine(m, c, opts)
	if err != nil {
		return echelonErrorf(opGauss, err)
	}
	e.c.Reset()
	if e.nRows == 1 {
		return nil
	}
	e.forward(false)

	if err = e.commit(); err != nil {
		return echelonErrorf(opGauss, err)
	}

	return nil
}

// BackReduce transforms a matrix already in row-echelon form into reduced
// row-echelon form.
//
// Rows are processed bottom to top. Zero rows are skipped; otherwise the
// leading entry is located, the row is scaled by its reciprocal unless the
// entry is already 1, and every row above with a non-zero entry in that column
// receives a transvection whose factor is that entry. Row 0 goes through the
// same steps at its real leading column.
//
// The result is unspecified when m is not in REF. Applied to a matrix already
// in RREF it changes nothing and counts zero operations.
//
// c is reset on entry and may be nil. A single-row matrix is left untouched.
//
// Complexity: O(r²·c) time.
func BackReduce(m matrix.Matrix, c *Counter, opts ...Option) error {
	e, err := newEngine(m, c, opts)
	if err != nil {
		return echelonErrorf(opBack, err)
	}
	e.c.Reset()
	if e.nRows == 1 {
		return nil
	}
	e.backward()

	if err = e.commit(); err != nil {
		return echelonErrorf(opBack, err)
	}

	return nil
}

// GaussJordanReduce transforms m in place into reduced row-echelon form in a
// single pass.
//
// It follows the same pivot walk as GaussReduce, but each pivot row is
// normalized to 1 as soon as it is in place and the pivot column is cleared in
// every other row, above and below. The result matches
// BackReduce(GaussReduce(m)) within tolerance; the operation count generally
// differs.
//
// c is reset on entry and may be nil. A single-row matrix is left untouched,
// matching the two-phase method.
//
// Complexity: O(min(r,c)·r·c) time.
func GaussJordanReduce(m matrix.Matrix, c *Counter, opts ...Option) error {
	e, err := newEngine(m, c, opts)
	if err != nil {
		return echelonErrorf(opGaussJordan, err)
	}
	e.c.Reset()
	if e.nRows == 1 {
		return nil
	}
	e.forward(true)

	if err = e.commit(); err != nil {
		return echelonErrorf(opGaussJordan, err)
	}

	return nil
}
