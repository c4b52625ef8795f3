// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin free-function entry points mirroring the *Dense methods,
//     for callers that prefer a functional style or hold a Matrix interface value.
//   - Avoid logic duplication: each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of the receiver.
//   - Facades taking a Matrix copy it into a *Dense first (policy: defaults).

package matrix

// NewZeros returns a new zero-initialized rows×cols *Dense.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// ZerosLike returns a zero matrix with the same shape and policy as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDense(m.r, m.c, m.policy), nil
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	res := newDense(m.r, m.r, m.policy)
	for i := 0; i < m.r; i++ {
		res.data[i*m.r+i] = 1
	}

	return res, nil
}

// asDense returns m itself when it already is a *Dense, otherwise a copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok && d != nil {
		return d, nil
	}

	return Copy(m)
}

// Sum is an alias for a.Add(b).
func Sum(a, b Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return da.Add(b)
}

// Diff is an alias for a.Sub(b).
func Diff(a, b Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return da.Sub(b)
}

// Product is an alias for a.Mul(b).
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return da.Mul(b)
}

// ScaleBy is an alias for m.Scale(alpha).
func ScaleBy(m Matrix, alpha float64) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return dm.Scale(alpha)
}

// T is an alias for m.Transpose().
func T(m Matrix) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return dm.Transpose()
}

// Minor is an alias for m.SubMatrix(row, col).
func Minor(m Matrix, row, col int) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}

	return dm.SubMatrix(row, col)
}

// Det is an alias for m.Determinant().
// Complexity: O(n!).
func Det(m Matrix) (float64, error) {
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return dm.Determinant()
}

// InverseOf is an alias for m.Inverse().
func InverseOf(m Matrix) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return dm.Inverse()
}

// Equal reports whether a and b have the same shape and identical cells.
// Nil operands are never equal.
func Equal(a, b Matrix) bool {
	da, err := asDense(a)
	if err != nil {
		return false
	}

	return da.Equal(b)
}

// Must returns m or panics with err. Intended for literals known to be valid,
// in the manner of regexp.MustCompile.
func Must(m *Dense, err error) *Dense {
	if err != nil {
		panic(err)
	}

	return m
}
