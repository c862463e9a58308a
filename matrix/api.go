// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions (identity, Leontief inverse).
//   - Avoid any logic duplication: each facade delegates to a canonical kernel.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: VecMul(ones(rows), m).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	ones := make([]float64, m.Rows())
	for i := range ones {
		ones[i] = 1.0
	}

	return VecMul(ones, m)
}

// LeontiefInverse returns L = (I − A)⁻¹ for a square technical-coefficient
// matrix A. Composition only: IdentityLike → Sub → Inverse, or InverseBlocked
// from BlockedInverseMinN on.
// Complexity: O(n^3). A full EXIOBASE 3 pxp table (n = 9800) takes minutes
// on a single core even on the blocked path; the unblocked Inverse would take
// about a quarter of an hour.
func LeontiefInverse(A Matrix) (Matrix, error) {
	I, err := IdentityLike(A)
	if err != nil {
		return nil, matrixErrorf("LeontiefInverse", err)
	}
	IA, err := Sub(I, A)
	if err != nil {
		return nil, matrixErrorf("LeontiefInverse", err)
	}
	inverse := Inverse
	if IA.Rows() >= BlockedInverseMinN {
		inverse = InverseBlocked
	}
	L, err := inverse(IA)
	if err != nil {
		return nil, matrixErrorf("LeontiefInverse", err)
	}

	return L, nil
}
