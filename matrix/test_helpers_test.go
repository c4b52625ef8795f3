// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities shared by the tests.
//   - Keep all data finite and integer-valued so exact comparisons are sound.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (At-based) path in code under test.
type hide struct{ matrix.Matrix }

// tb is the subset of testing.TB the helpers need, so they serve tests and benchmarks.
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t tb, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustDense allocates a zero r×c *Dense or fails the test.
func MustDense(t tb, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t tb, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t tb, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomIntDense builds an r×c matrix with integer cells in [-maxAbs, maxAbs]
// from a fixed seed.
func RandomIntDense(t tb, r, c, maxAbs int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewFromFunc(r, c, func(_, _ int) float64 {
		return float64(rng.Intn(2*maxAbs+1) - maxAbs)
	})
	if err != nil {
		t.Fatalf("NewFromFunc(%d,%d): %v", r, c, err)
	}

	return m
}

// requireRows asserts that m has exactly the given cells.
func requireRows(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	require.Equal(t, want, m.ToRows())
}

// roundTo rounds v to 1/scale precision.
func roundTo(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}

// fixture 3×4 used by the construction, submatrix and transpose tests.
var rows3x4 = [][]float64{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
}

// fixture from the cofactor/adjugate tables.
var cofactorSrc = [][]float64{
	{3, 0, 2},
	{2, 0, -2},
	{0, 1, 1},
}
