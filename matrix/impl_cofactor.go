// SPDX-License-Identifier: MIT
// Package matrix: minor/determinant/cofactor family and inversion by the
// adjugate method.
//
// Purpose:
//   - SubMatrix removes one row and one column (classic minor extraction).
//   - Determinant uses Laplace (cofactor) expansion along the first row.
//   - Cofactor → Adjugate (= Cofactorᵀ) → Inverse (= Adjugate / det).
//
// Determinism & Policy:
//   - Fixed expansion order (column 0..n-1 of row 0); zero entries of row 0
//     are skipped, which changes nothing but the amount of work.
//   - No pivoting, no LU: the expansion is O(n!) and meant for small orders.
//     Callers with n beyond ~10 need a factorization-based library instead.
//   - Singularity is |det| ≤ eps with eps from WithSingularEpsilon (exact by default).

package matrix

import (
	"fmt"
	"math"
)

const (
	opSubMatrix   = "SubMatrix"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// fillMinor writes src (rows×cols, row-major) without row skipRow and column
// skipCol into dst, which must hold (rows-1)*(cols-1) cells.
// Relative order of the remaining rows and columns is preserved.
func fillMinor(dst, src []float64, rows, cols, skipRow, skipCol int) {
	var i, j int
	d := 0
	for i = 0; i < rows; i++ {
		if i == skipRow {
			continue
		}
		for j = 0; j < cols; j++ {
			if j == skipCol {
				continue
			}
			dst[d] = src[i*cols+j]
			d++
		}
	}
}

// determinant evaluates det of the n×n row-major block by Laplace expansion
// along row 0. One minor buffer is allocated per recursion level and reused
// across the columns of that level.
func determinant(data []float64, n int) float64 {
	switch n {
	case 1:
		return data[0]
	case 2:
		return data[0]*data[3] - data[1]*data[2]
	}

	det := ZeroSum
	sign := 1.0
	minor := make([]float64, (n-1)*(n-1))
	for c := 0; c < n; c++ {
		if a := data[c]; a != 0 {
			fillMinor(minor, data, n, n, 0, c)
			det += sign * a * determinant(minor, n-1)
		}
		sign = -sign
	}

	return det
}

// SubMatrix returns a new matrix with row rowOffset and column colOffset removed.
//
// Errors:
//   - ErrOutOfRange when an offset is outside [0,Rows()) / [0,Cols()).
//   - ErrInvalidDimensions when m has a single row or column (the minor would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) SubMatrix(rowOffset, colOffset int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if err := validateIndex(rowOffset, m.r); err != nil {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("row %d: %w", rowOffset, err))
	}
	if err := validateIndex(colOffset, m.c); err != nil {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("col %d: %w", colOffset, err))
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opSubMatrix, ErrInvalidDimensions)
	}
	res := newDense(m.r-1, m.c-1, m.policy)
	fillMinor(res.data, m.data, m.r, m.c, rowOffset, colOffset)

	return res, nil
}

// Determinant computes det(m) by cofactor expansion.
//
// Implementation:
//   - order 1: a[0][0].
//   - order 2: a00*a11 − a01*a10.
//   - order n>2: Σ_c (−1)^c · a[0][c] · det(minor(0,c)), zero a[0][c] skipped.
//
// Errors:
//   - ErrNonSquare.
//   - ErrNaNInf when the expansion overflows under the finite-only policy.
//
// Complexity:
//   - Time O(n!) in the worst case (dense first rows at every level), Space O(n²).
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	det := determinant(m.data, m.r)
	if m.policy.validateNaNInf && isNonFinite(det) {
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("det=%g: %w", det, ErrNaNInf))
	}

	return det, nil
}

// Cofactor returns the cofactor matrix: cof[c][r] = (−1)^(c+r) · M(c,r), where
// M(c,r) is the single surviving cell of SubMatrix(c, r) for a 2-column source
// and det(SubMatrix(c, r)) otherwise.
//
// The (c, r) pairing, with the outer loop over columns, is kept for
// compatibility with published cofactor/adjugate tables. For square input it
// is the textbook C[i][j] = (−1)^(i+j)·det(minor(i,j)).
//
// A 1×1 matrix has the cofactor [[1]], so that Inverse([[a]]) = [[1/a]].
//
// Errors:
//   - ErrNonSquare.
func (m *Dense) Cofactor() (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	n := m.r
	res := newDense(n, n, m.policy)
	if n == 1 {
		res.data[0] = 1
		return res, nil
	}

	minor := make([]float64, (n-1)*(n-1))
	var c, r int
	var sign, v float64
	for c = 0; c < m.c; c++ {
		for r = 0; r < m.r; r++ {
			fillMinor(minor, m.data, n, n, c, r)
			if m.c == 2 {
				v = minor[0]
			} else {
				v = determinant(minor, n-1)
			}
			sign = 1
			if (c+r)%2 == 1 {
				sign = -1
			}
			res.data[c*n+r] = sign * v
		}
	}

	return publish(res, opCofactor)
}

// Adjugate returns Cofactor()ᵀ.
// Errors: ErrNonSquare.
func (m *Dense) Adjugate() (*Dense, error) {
	cof, err := m.Cofactor()
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := cof.Transpose()
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = Adjugate() · (1/det).
//
// Implementation:
//   - Stage 1: det via Determinant (square check).
//   - Stage 2: |det| ≤ eps → ErrSingular (eps = 0 by default: exact zero test).
//   - Stage 3: Adjugate scaled by 1/det.
//
// Behavior highlights:
//   - Integer-valued matrices with det = ±1 invert exactly.
//   - A determinant so small that 1/det overflows is reported as singular.
//   - A non-finite determinant (overflow, or NaN/Inf cells under the relaxed
//     policy) is ErrNaNInf under either policy: scaling by 1/det would be meaningless.
//
// Errors:
//   - ErrNonSquare, ErrSingular, ErrNaNInf.
//
// Complexity:
//   - Time O(n² · n!) for the cofactor table, Space O(n²).
func (m *Dense) Inverse() (*Dense, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if isNonFinite(det) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrNaNInf))
	}
	if math.Abs(det) <= m.policy.eps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	inv := 1 / det
	if isNonFinite(inv) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("1/det overflows (det=%g): %w", det, ErrSingular))
	}
	adj, err := m.Adjugate()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	res, err := adj.Scale(inv)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}
