// Package lvmat is a small dense-matrix library built around one immutable
// value type and the classical cofactor algebra.
//
// 🚀 What is lvmat?
//
//	A deterministic, thread-safe (immutable values) library that brings together:
//		• Construction: from rows, flat buffers, generators, zero / identity
//		• Arithmetic: add, subtract, multiply (matrix or scalar), transpose
//		• Cofactor algebra: submatrix, determinant (Laplace), cofactor, adjugate
//		• Inverse: adjugate / determinant, with a configurable singularity threshold
//		• Rendering: tab-separated, newline-terminated rows
//
// ✨ Why choose lvmat?
//
//   - Exact on integer data – no pivoting, no rounding surprises on small orders
//   - Sentinel errors – every failure is errors.Is-comparable
//   - Pure Go core – the gonum bridge is opt-in
//
// Layout:
//
//	matrix/          — Dense type, operations, options, validators, sentinels
//	matrix/bridge/   — conversions to and from gonum mat.Dense, cross-checks
//	internal/config/ — environment-driven settings for the demo command
//	internal/logging — slog handler construction (tint)
//	internal/demo/   — seeded determinant / inverse workload
//	cmd/lvmat-demo/  — command-line entry point
//
// Quick example:
//
//	m := matrix.Must(matrix.NewFromRows([][]float64{{1, 0, 5}, {2, 1, 6}, {3, 4, 0}}))
//	inv, _ := m.Inverse()
//	fmt.Print(inv)
//	// -24	20	-5
//	// 18	-15	4
//	// 5	-4	1
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
