// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction, matrix and vector products, column scaling,
// LU factorization and inversion. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback with identical loop order.
//   - Kernels use the central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opVecMul    = "VecMul"
	opScaleCols = "ScaleCols"
	opLU        = "LU"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes a − b element-wise into a fresh Dense; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast-path: single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := range res.data {
				res.data[i] = da.data[i] - db.data[i]
			}

			return res, nil
		}
	}

	// Fallback: fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			res.data[i*cols+j] = av - bv
		}
	}

	return res, nil
}

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C (r × c).
//   - Stage 2: *Dense fast path in i→k→j order (row-major friendly, skips
//     zero A[i,k]); generic fallback in i→j→k order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMul computes the row-vector product y = x·m (1×r times r×c → 1×c).
// This is the multiplier kernel of the IO model: intensities times L.
//
// Contract: m non-nil; len(x) == m.Rows().
// Determinism: rows are accumulated in ascending i; each y[j] sums
// x[0]*m[0,j] + x[1]*m[1,j] + ... in that order.
// Complexity: Time O(r*c), Space O(c) for y.
func VecMul(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	// Fast-path: axpy over contiguous rows.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var xv float64
		for i = 0; i < rows; i++ {
			xv = x[i]
			if xv == 0 {
				continue
			}
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += xv * d.data[base+j]
			}
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		if x[i] == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opVecMul, err)
			}
			y[j] += x[i] * mv
		}
	}

	return y, nil
}

// ScaleCols returns m·diag(s): out[i,j] = m[i,j]*s[j].
// Used to normalise flows by total output (A = Z·diag(1/x), S = F·diag(1/x)).
//
// Contract: m non-nil; len(s) == m.Cols().
// Complexity: Time O(r*c), Space O(r*c).
func ScaleCols(m Matrix, s []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(s, m.Cols()); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	var i, j, base int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[base+j] = d.data[base+j] * s[j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleCols, err)
			}
			res.data[i*cols+j] = v * s[j]
		}
	}

	return res, nil
}

// luFactor computes the packed factorization P·A = L·U with partial pivoting.
// The returned slice stores U on and above the diagonal and the multipliers
// of the unit lower-triangular L below it. perm[i] is the row of A that
// ended up at row i.
//
// Implementation:
//   - For k = 0..n-1: pick the row with the largest |a[i,k]| (i ≥ k, first
//     one wins on ties), swap it into place, then eliminate below the pivot.
//
// Errors:
//   - ErrSingular when a column has no non-zero candidate pivot.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the packed copy.
func luFactor(a *Dense) ([]float64, []int, error) {
	n := a.r
	lu := make([]float64, n*n)
	copy(lu, a.data)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var maxAbs, v, pivot, f float64
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p = k
		maxAbs = math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu[i*n+k]); v > maxAbs {
				maxAbs = v
				p = i
			}
		}
		if maxAbs == ZeroPivot {
			return nil, nil, ErrSingular
		}
		if p != k {
			rowK := lu[k*n : (k+1)*n]
			rowP := lu[p*n : (p+1)*n]
			for j = 0; j < n; j++ {
				rowK[j], rowP[j] = rowP[j], rowK[j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		pivot = lu[k*n+k]
		tailK := lu[k*n+k+1 : (k+1)*n]
		for i = k + 1; i < n; i++ {
			if lu[i*n+k] == 0 {
				continue
			}
			f = lu[i*n+k] / pivot
			lu[i*n+k] = f
			tailI := lu[i*n+k+1 : (i+1)*n]
			for j = range tailK {
				tailI[j] -= f * tailK[j]
			}
		}
	}

	return lu, perm, nil
}

// LU computes P·A = L·U with partial (row) pivoting.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//   - []int : perm, where row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, []int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	lu, perm, err := luFactor(d)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := d.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = lu[i*n+j]
			case j == i:
				L.data[i*n+j] = 1.0
				U.data[i*n+j] = lu[i*n+j]
			default:
				U.data[i*n+j] = lu[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse computes A^{-1} from a pivoted LU factorization.
// The input is never mutated; the result is a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); factorize P·A = L·U (packed).
//   - Stage 2: For each basis column e_col, the permuted right-hand side has
//     its single 1 at row q = perm⁻¹[col], so the forward solve L·y = P·e_col
//     starts at q. Then backward solve U·x = y and write x into column col.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Determinism:
//   - Fixed traversal (col↑, forward i↑, backward i↓) and deterministic
//     pivot choice → identical results for identical inputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2). The kernel is unblocked: about 1.6 s at
//     n = 1200, so roughly 15 min single-core at n = 9800. Use InverseBlocked
//     (or LeontiefInverse, which picks it for large n) at that scale.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	lu, perm, err := luFactor(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	where := make([]int, n) // where[r] = position of original row r after pivoting
	for i, r := range perm {
		where[r] = i
	}

	var (
		col, i, k, q, base int
		sum                float64
		y                  = make([]float64, n) // forward substitution workspace
		x                  = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col (unit diagonal).
		q = where[col]
		for i = 0; i < q; i++ {
			y[i] = 0
		}
		y[q] = 1.0
		for i = q + 1; i < n; i++ {
			sum = ZeroSum
			base = i * n
			for k = q; k < i; k++ {
				sum += lu[base+k] * y[k]
			}
			y[i] = -sum
		}
		// Backward substitution: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += lu[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / lu[base+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
