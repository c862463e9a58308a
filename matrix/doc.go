// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels behind the
// input-output model: a row-major Dense container, element-wise and product
// kernels, and an LU-based inverse used to form the Leontief inverse.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Sub, Mul, MatVec and VecMul for the IO identities (I − A, s·L).
//   - ScaleCols for diag(1/x) normalisation of flows and transactions.
//   - LU with partial pivoting and Inverse built on top of it.
//
// All kernels validate their inputs through validators.go and report
// package sentinels (ErrNilMatrix, ErrDimensionMismatch, ErrSingular, ...)
// wrapped with an operation tag, so callers match them with errors.Is.
//
// Loop orders are fixed, so identical inputs always produce bit-identical
// outputs.
package matrix
