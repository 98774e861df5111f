// SPDX-License-Identifier: MIT

// Package rref reduces real matrices to row-echelon form (REF) and reduced
// row-echelon form (RREF) using elementary row operations, and counts every
// operation it performs.
//
// 🚀 What is inside?
//
//   - matrix: Dense row-major storage, validators, numeric policy.
//   - echelon: row operations, Gauss, Back and Gauss-Jordan reduction,
//     REF/RREF predicates, rank and inverse.
//   - internal/input: interactive prompts, YAML loading, the test matrix.
//   - internal/render: pipe-framed fixed-width matrix printing.
//   - internal/driver: method selection, timing, reports, inverse check,
//     parallel batches.
//   - cmd/rref: the command-line front end.
//
// Two paths lead to RREF: GaussReduce followed by BackReduce, or a single
// GaussJordanReduce pass. Both agree on the result within tolerance; their
// operation counts may differ.
//
// Quick start:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{-1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	var ops echelon.Counter
//	_ = echelon.GaussJordanReduce(m, &ops)
//	fmt.Print(m, ops.Count()) // I₃ after 9 operations
package rref
