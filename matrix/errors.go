// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// Construction failures form a small family: each refined sentinel wraps
// ErrConstruction, so errors.Is(err, ErrConstruction) holds for all of them
// while errors.Is(err, ErrRaggedRows) still pinpoints the exact cause.
// ErrNilMatrix stands alone: a nil receiver or operand is not a constructor
// failure, so only Copy(nil) reports it together with ErrConstruction.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> dimension mismatch -> square -> singular.

var (
	// ErrConstruction is the umbrella for every invalid-constructor-argument failure.
	ErrConstruction = errors.New("matrix: cannot create matrix")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive,
	// or that an operation would produce an empty (0×N / N×0) result.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrConstruction)

	// ErrEmptyData is returned when literal rows are nil/empty or the first row is empty.
	ErrEmptyData = fmt.Errorf("%w: empty data", ErrConstruction)

	// ErrRaggedRows is returned when literal rows do not all share the first row's length.
	ErrRaggedRows = fmt.Errorf("%w: rows have different lengths", ErrConstruction)

	// ErrNilMatrix indicates that a nil Matrix (receiver, source or operand) was used.
	// It is an operand failure; Copy additionally tags it with ErrConstruction.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrConstruction)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is zero
	// (within the configured singular epsilon, exact by default).
	ErrSingular = errors.New("matrix: singular matrix")
)
