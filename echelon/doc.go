// SPDX-License-Identifier: MIT

// Package echelon reduces real matrices to row-echelon form (REF) and reduced
// row-echelon form (RREF) with elementary row operations.
//
// 🚀 What is inside?
//
//   - Elementary operations: RowExchange, RowMultiplication, RowTransvection.
//   - GaussReduce: forward elimination, A → REF.
//   - BackReduce: backward elimination, REF → RREF.
//   - GaussJordanReduce: single pass, A → RREF.
//   - Inspection: IsREF, IsRREF, PivotColumns, Rank.
//   - Inverse: Gauss-Jordan on [A | I].
//
// Every reduction mutates its matrix in place and counts each elementary
// operation in an explicit *Counter that the call resets on entry. There is no
// package-level state, so independent reductions may run on different
// goroutines as long as each owns its matrix and counter.
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{-1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	var ops echelon.Counter
//	_ = echelon.GaussReduce(m, &ops) // m is now in REF
//	gaussOps := ops.Count()
//	_ = echelon.BackReduce(m, &ops)  // m is now I₃
//	total := gaussOps + ops.Count()
//
// Numeric policy:
//
//	Values with |x| ≤ eps are zero and values with |x-1| ≤ eps are one, where eps
//	is DefaultEpsilon (1e-9) unless WithEpsilon says otherwise. Eliminated cells
//	are stored as exact 0, normalized pivots as exact 1, and cells of a
//	transformed row that land within eps of zero are flushed to 0.
//
// A matrix holding NaN or ±Inf (possible only with matrix.WithNoValidateNaNInf)
// is rejected with matrix.ErrNaNInf before any operation runs.
//
// Single-row matrices are returned unchanged by all three reductions with zero
// operations counted.
package echelon
