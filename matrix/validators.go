// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil/finite checks.
//  - Keep kernels minimal by delegating guard logic here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with the operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden inside the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// validatePositiveShape rejects an operand reporting zero or negative dimensions.
// *Dense never does; a foreign Matrix implementation might.
func validatePositiveShape(tag string, m Matrix) error {
	if m.Rows() < 1 || m.Cols() < 1 {
		return validatorErrorf(tag, fmt.Errorf("shape %dx%d: %w", m.Rows(), m.Cols(), ErrInvalidDimensions))
	}

	return nil
}

// ValidateSameShape ensures a and b have equal, positive dimensions.
// Assumes a and b are not nil.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := validatePositiveShape("ValidateSameShape", a); err != nil {
		return err
	}
	if err := validatePositiveShape("ValidateSameShape", b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures both operands are present, have positive
// dimensions and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := validatePositiveShape("ValidateMulCompatible", a); err != nil {
		return err
	}
	if err := validatePositiveShape("ValidateMulCompatible", b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateShape rejects non-positive dimensions.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("validateShape", ErrInvalidDimensions)
	}

	return nil
}

// validateRows checks that literal data is a non-empty rectangle and returns its shape.
// Stage 1: reject nil/empty outer slice and empty first row.
// Stage 2: every row must match len(rows[0]).
func validateRows(rows [][]float64) (r, c int, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, validatorErrorf("validateRows", ErrEmptyData)
	}
	r, c = len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return 0, 0, validatorErrorf("validateRows", fmt.Errorf("row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
	}

	return r, c, nil
}

// validateScalar enforces the finite-only policy for scalar operands.
func validateScalar(v float64, policy Options) error {
	if policy.validateNaNInf && isNonFinite(v) {
		return validatorErrorf("validateScalar", ErrNaNInf)
	}

	return nil
}

// validateIndex checks 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}
