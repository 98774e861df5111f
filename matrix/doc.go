// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage layer used by the row-reduction
// kernels in package echelon.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over a two-dimensional mutable grid of float64.
//   - Dense, a row-major implementation with bounds-checked At/Set and
//     no-copy row views for hot loops (RowView).
//   - Constructors from literals (NewDenseFromRows), identity/zeros helpers,
//     horizontal concatenation (Augment) and copy-based extraction (Induced).
//   - A numeric policy (epsilon, NaN/Inf rejection) configured through
//     functional options, plus AllClose for tolerance-based comparison.
//
// All public entry points return sentinel errors (see errors.go) that callers
// match with errors.Is; nothing panics on user-triggered conditions.
package matrix
