// SPDX-License-Identifier: MIT

package echelon

import (
	"math"

	"github.com/katalvlaran/rref/matrix"
)

// Inverse returns A⁻¹ by Gauss-Jordan reduction of the augmented [A | I].
//
// The left block reduces to I exactly when A is invertible; any other outcome
// (a zero pivot row inside the left block) reports ErrSingular. A is not
// modified. Options apply to the reduction (eps, pivoting, recorder).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
// ErrSingular.
//
// Complexity: O(n³) time, O(n²) space.
func Inverse(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, echelonErrorf(opInverse, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, echelonErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, echelonErrorf(opInverse, err)
	}
	aug, err := matrix.Augment(a, id)
	if err != nil {
		return nil, echelonErrorf(opInverse, err)
	}

	// A 1×1 system bypasses the single-row passthrough of the reducers.
	if n == 1 {
		return inverseScalar(aug, o.eps)
	}

	if err = GaussJordanReduce(aug, nil, opts...); err != nil {
		return nil, echelonErrorf(opInverse, err)
	}

	idx := make([]int, n)
	right := make([]int, n)
	for i := range idx {
		idx[i] = i
		right[i] = n + i
	}
	left, err := aug.Induced(idx, idx)
	if err != nil {
		return nil, echelonErrorf(opInverse, err)
	}
	if !matrix.Equal(left, id, matrix.WithEpsilon(o.eps)) {
		return nil, echelonErrorf(opInverse, ErrSingular)
	}
	inv, err := aug.Induced(idx, right)
	if err != nil {
		return nil, echelonErrorf(opInverse, err)
	}

	return inv, nil
}

// inverseScalar inverts the 1×1 system held in column 0 of aug. A value whose
// reciprocal overflows (a subnormal with eps 0) is reported as singular.
func inverseScalar(aug *matrix.Dense, eps float64) (*matrix.Dense, error) {
	v, err := aug.At(0, 0)
	if err != nil {
		return nil, echelonErrorf(opInverse, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, echelonErrorf(opInverse, matrix.ErrNaNInf)
	}
	r := 1 / v
	if math.Abs(v) <= eps || math.IsInf(r, 0) {
		return nil, echelonErrorf(opInverse, ErrSingular)
	}
	out, err := matrix.NewDense(1, 1)
	if err != nil {
		return nil, echelonErrorf(opInverse, err)
	}
	if err = out.Set(0, 0, r); err != nil {
		return nil, echelonErrorf(opInverse, err)
	}

	return out, nil
}
