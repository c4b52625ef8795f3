// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix interface shared by all operations.
package matrix

// Matrix is a read-only view of a two-dimensional array of float64 values.
// Every operation in this package accepts a Matrix operand and unlocks a flat
// fast path when the operand is a *Dense.
//
// There is intentionally no Set: values are fixed once a matrix is built.
type Matrix interface {
	// Rows returns the number of rows (always ≥ 1 for *Dense).
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns (always ≥ 1 for *Dense).
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)
}
