// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels on *Dense receivers: element-wise
// addition and subtraction (matrix or scalar operand), matrix product,
// scalar scaling and transpose. All kernels perform strict fail-fast
// validation before allocating and return a fresh *Dense; neither the
// receiver nor the operand is ever mutated.
//
// Notes:
//   - Operands are any Matrix; a *Dense operand unlocks a single flat loop.
//   - Results inherit the receiver's numeric policy. Under the finite-only
//     policy the computed cells are checked too, so an overflow to ±Inf (or a
//     NaN from a foreign operand) is reported as ErrNaNInf, never published.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// publish hands res out after enforcing the finite-only policy on its cells.
func publish(res *Dense, opTag string) (*Dense, error) {
	if err := res.checkFinite(opTag); err != nil {
		return nil, err
	}

	return res, nil
}

// addSub computes out = m + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, b). Allocate result.
//   - Stage 2: flat loop when b is *Dense; otherwise i→j via At.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (wrapped with opTag).
//   - ErrNaNInf when a result cell is non-finite under the finite-only policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) addSub(b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDense(m.r, m.c, m.policy)

	if db, ok := b.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = m.data[idx] + sign*db.data[idx]
		}
		return publish(res, opTag)
	}

	var i, j int
	var bv float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*m.c+j] = m.data[i*m.c+j] + sign*bv
		}
	}

	return publish(res, opTag)
}

// Add returns m + b (same shape required).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Add(b Matrix) (*Dense, error) { return m.addSub(b, +1, opAdd) }

// Sub returns m − b (same shape required).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return m.addSub(b, -1, opSub) }

// shiftScalar returns a copy of m with s added to every cell.
func (m *Dense) shiftScalar(s float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := validateScalar(s, m.policy); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDense(m.r, m.c, m.policy)
	for idx, v := range m.data {
		res.data[idx] = v + s
	}

	return publish(res, opTag)
}

// AddScalar returns a copy of m with s added to every cell.
func (m *Dense) AddScalar(s float64) (*Dense, error) { return m.shiftScalar(s, opAddScalar) }

// SubScalar returns a copy of m with s subtracted from every cell.
func (m *Dense) SubScalar(s float64) (*Dense, error) { return m.shiftScalar(-s, opSubScalar) }

// Mul performs the standard matrix product C = m × b.
//
// Implementation:
//   - Stage 1: validate m.Cols == b.Rows.
//   - Stage 2: *Dense operand → i→k→j over row-major strides; otherwise i→j→k
//     through At.
//   - Zero a[i,k] terms are skipped only when both operands are *Dense under the
//     finite-only policy; otherwise 0·Inf = NaN must reach the sum.
//
// Behavior highlights:
//   - Plain cubic triple loop; no tiling, no Strassen.
//
// Returns:
//   - *Dense of shape m.Rows × b.Cols.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
//   - ErrNaNInf when a result cell is non-finite under the finite-only policy.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := m.r, m.c, b.Cols()
	res := newDense(aRows, bCols, m.policy)

	var i, j, k int
	var av, bv, current float64
	if db, ok := b.(*Dense); ok {
		skipZero := m.policy.validateNaNInf && db.policy.validateNaNInf
		var rowA, rowB, rowR int
		for i = 0; i < aRows; i++ {
			rowA = i * aCols
			rowR = i * bCols
			for k = 0; k < aCols; k++ {
				av = m.data[rowA+k]
				if skipZero && av == 0 {
					continue
				}
				rowB = k * bCols
				for j = 0; j < bCols; j++ {
					res.data[rowR+j] += av * db.data[rowB+j]
				}
			}
		}
		return publish(res, opMul)
	}

	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av = m.data[i*aCols+k]
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return publish(res, opMul)
}

// Scale returns alpha*m (scalar multiplication).
// Errors: ErrNaNInf when alpha or a product is non-finite under the finite-only policy.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := validateScalar(alpha, m.policy); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDense(m.r, m.c, m.policy)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return publish(res, opScale)
}

// Transpose returns mᵀ, a cols×rows matrix with t[i][j] = m[j][i].
// Complexity: O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newDense(m.c, m.r, m.policy)

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}
