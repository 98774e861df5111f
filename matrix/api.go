// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use Augment + Induced to build and split [A | B] blocks.

package matrix

import "fmt"

const (
	opAugment  = "Augment"
	opAllClose = "AllClose"
	opAsDense  = "AsDense"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AsDense returns m itself when it is a *Dense, otherwise a *Dense copy.
// MAIN DESCRIPTION:
//   - Normalize any Matrix to the concrete row-major type used by hot kernels.
//
// Behavior highlights:
//   - The *Dense case shares storage: mutations are visible through m.
//   - The copy case never aliases m; callers write results back with Set.
//   - The copy disables NaN/Inf validation so that it mirrors m exactly.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, or any At error from m.
//
// Complexity:
//   - O(1) for *Dense, O(r*c) otherwise.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := newDenseWithPolicy(m.Rows(), m.Cols(), false)
	if err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAsDense, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// CopyInto writes every element of src into dst (same shape required).
// Used to publish results computed on a scratch Dense back to a foreign Matrix.
// Complexity: O(r*c).
func CopyInto(dst Matrix, src *Dense) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return err
	}
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			if err := dst.Set(i, j, src.data[i*src.c+j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Augment returns the horizontal concatenation [a | b] as a fresh Dense.
// Implementation:
//   - Stage 1: validate non-nil operands and equal row counts.
//   - Stage 2: copy a then b, row by row.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	r, ca, cb := da.r, da.c, db.c
	out, err := NewDense(r, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	out.validateNaNInf = da.validateNaNInf
	for i := 0; i < r; i++ {
		copy(out.data[i*(ca+cb):i*(ca+cb)+ca], da.data[i*ca:(i+1)*ca])
		copy(out.data[i*(ca+cb)+ca:(i+1)*(ca+cb)], db.data[i*cb:(i+1)*cb])
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b agree element-wise within the resolved
// epsilon (absolute tolerance only). Shape mismatches report false.
func Equal(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := AllClose(a, b, 0, o.eps)

	return err == nil && ok
}

// closeTo evaluates |x-y| ≤ atol + rtol*|y|; NaN on either side fails.
func closeTo(x, y, rtol, atol float64) bool {
	diff := x - y
	if diff < 0 {
		diff = -diff
	}
	absy := y
	if absy < 0 {
		absy = -absy
	}

	return diff <= atol+rtol*absy
}

// newDenseWithPolicy allocates a Dense with an explicit NaN/Inf policy.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("newDenseWithPolicy: %w", err)
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}
