// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opMul = "Mul"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b as a new Dense.
//
// Both operands are brought to row-major form with AsDense (no copy for
// *Dense), then every output row is accumulated as a sum of scaled rows of b:
//
//	out[i] = Σ_k a[i][k] · b[k]
//
// Zero coefficients are skipped, so a sparse a costs proportionally less.
// The result starts from NewZeros and keeps its default NaN/Inf policy, but
// is filled directly; non-finite products are not rejected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity: O(r·n·c) time, O(r·c) space.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewZeros(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	for i := 0; i < da.r; i++ {
		dst := out.data[i*out.c : (i+1)*out.c]
		for k, coef := range da.data[i*da.c : (i+1)*da.c] {
			if coef == 0 {
				continue
			}
			axpy(dst, coef, db.data[k*db.c:(k+1)*db.c])
		}
	}

	return out, nil
}

// axpy adds alpha·x to dst in place; len(x) must equal len(dst).
func axpy(dst []float64, alpha float64, x []float64) {
	for j, v := range x {
		dst[j] += alpha * v
	}
}
