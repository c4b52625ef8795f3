// SPDX-License-Identifier: MIT
// Package bridge converts between *matrix.Dense and gonum's mat types.
//
// Purpose:
//   - Let callers hand lvmat matrices to gonum (and back) without manual loops.
//   - Provide LU-based determinant and inverse as an independent numeric
//     reference for the cofactor algebra in package matrix.
//
// Contract:
//   - Conversions always copy; neither side ever aliases the other's storage.
//   - Errors reuse the matrix sentinels (ErrNilMatrix, ErrNonSquare,
//     ErrSingular, ErrOutOfRange) so callers match a single error vocabulary.
//
// AI-Hints:
//   - Use View to pass a gonum matrix straight into Dense.Add/Sub/Mul.
//   - LU results are approximations; compare with AllClose, not Equal.
package bridge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
	opDetLU     = "DetLU"
	opInverseLU = "InverseLU"
	opViewAt    = "View.At"
)

// bridgeErrorf wraps err with the bridge operation tag.
func bridgeErrorf(tag string, err error) error {
	return fmt.Errorf("bridge.%s: %w", tag, err)
}

// ToGonum returns a gonum copy of m.
func ToGonum(m *matrix.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, bridgeErrorf(opToGonum, matrix.ErrNilMatrix)
	}
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	m.Do(func(_, _ int, v float64) bool {
		data = append(data, v)
		return true
	})

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any gonum matrix into a new *matrix.Dense built with opts.
// An empty gonum matrix (zero rows or columns) is rejected with
// matrix.ErrInvalidDimensions.
func FromGonum(g mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if isNilGonum(g) {
		return nil, bridgeErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	d, err := matrix.NewFromFunc(r, c, g.At, opts...)
	if err != nil {
		return nil, bridgeErrorf(opFromGonum, err)
	}

	return d, nil
}

// isNilGonum catches both an untyped nil and a typed nil *mat.Dense, whose
// Dims would dereference nil.
func isNilGonum(g mat.Matrix) bool {
	if g == nil {
		return true
	}
	d, ok := g.(*mat.Dense)

	return ok && d == nil
}

// DetLU computes det(m) through gonum's LU factorization.
// Complexity: O(n^3).
func DetLU(m *matrix.Dense) (float64, error) {
	if m == nil {
		return 0, bridgeErrorf(opDetLU, matrix.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return 0, bridgeErrorf(opDetLU, matrix.ErrNonSquare)
	}
	g, err := ToGonum(m)
	if err != nil {
		return 0, bridgeErrorf(opDetLU, err)
	}

	return mat.Det(g), nil
}

// InverseLU computes m⁻¹ through gonum's LU factorization.
// A gonum Condition error (exactly or numerically singular input) is
// reported as matrix.ErrSingular.
func InverseLU(m *matrix.Dense, opts ...matrix.Option) (*matrix.Dense, error) {
	if m == nil {
		return nil, bridgeErrorf(opInverseLU, matrix.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, bridgeErrorf(opInverseLU, matrix.ErrNonSquare)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, bridgeErrorf(opInverseLU, err)
	}

	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("bridge.%s: cond=%g: %w", opInverseLU, float64(cond), matrix.ErrSingular)
		}

		return nil, bridgeErrorf(opInverseLU, err)
	}

	return FromGonum(&inv, opts...)
}

// View adapts a gonum matrix to the read-only matrix.Matrix interface
// without copying. Dense operations take the generic (At-based) path for it.
type View struct {
	g mat.Matrix
}

// NewView wraps g; a nil g yields matrix.ErrNilMatrix.
func NewView(g mat.Matrix) (*View, error) {
	if isNilGonum(g) {
		return nil, bridgeErrorf("NewView", matrix.ErrNilMatrix)
	}

	return &View{g: g}, nil
}

// Rows returns the number of rows of the wrapped matrix.
func (v *View) Rows() int {
	r, _ := v.g.Dims()

	return r
}

// Cols returns the number of columns of the wrapped matrix.
func (v *View) Cols() int {
	_, c := v.g.Dims()

	return c
}

// At returns g(i,j), or matrix.ErrOutOfRange instead of gonum's panic.
func (v *View) At(i, j int) (float64, error) {
	r, c := v.g.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("bridge.%s(%d,%d): %w", opViewAt, i, j, matrix.ErrOutOfRange)
	}

	return v.g.At(i, j), nil
}

// compile-time check
var _ matrix.Matrix = (*View)(nil)
