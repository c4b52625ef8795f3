// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction, accessors,
// comparison and rendering.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewFromRows_Cells verifies shape and every cell of a literal 3×4 matrix.
func TestNewFromRows_Cells(t *testing.T) {
	m := MustRows(t, rows3x4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	want := 1.0
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, want, MustAt(t, m, r, c))
			want++
		}
	}
}

// TestNewFromRows_CopiesInput ensures later edits of the literal do not leak in.
func TestNewFromRows_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustRows(t, src)
	src[0][0] = 42

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewFromRows_Invalid(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"nil", nil, matrix.ErrEmptyData},
		{"no rows", [][]float64{}, matrix.ErrEmptyData},
		{"empty first row", [][]float64{{}}, matrix.ErrEmptyData},
		{"ragged short", [][]float64{{1, 2, 3}, {4, 5}}, matrix.ErrRaggedRows},
		{"ragged long", [][]float64{{1}, {2, 3}}, matrix.ErrRaggedRows},
		{"NaN", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"Inf", [][]float64{{math.Inf(-1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewFromRows(tc.rows)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, matrix.ErrConstruction)
		})
	}
}

// TestNewDense_ZeroFilled checks the dimensions constructor fills zeros.
func TestNewDense_ZeroFilled(t *testing.T) {
	m := MustDense(t, 1, 2)

	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
	require.Equal(t, 0.0, MustAt(t, m, 0, 1))
	requireRows(t, [][]float64{{0, 0}}, m)
}

// TestNewDenseInvalidDimensions ensures non-positive dimensions are rejected.
func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 42}, {42, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
		require.ErrorIs(t, err, matrix.ErrConstruction, "dims %v", dims)
	}
}

func TestNewFromFlat(t *testing.T) {
	m, err := matrix.NewFromFlat(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.NewFromFlat(2, 3, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrConstruction)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromFlat(0, 3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromFlat(1, 1, []float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewFromFunc(t *testing.T) {
	m, err := matrix.NewFromFunc(2, 2, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 1}, {10, 11}}, m)

	_, err = matrix.NewFromFunc(2, 2, nil)
	require.ErrorIs(t, err, matrix.ErrConstruction)

	_, err = matrix.NewFromFunc(1, 1, func(int, int) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewIdentity(t *testing.T) {
	requireRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, MustIdentity(t, 3))

	_, err := matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCopy_FromMatrix checks that Copy reproduces every cell, for the fast path
// and for a non-*Dense source.
func TestCopy_FromMatrix(t *testing.T) {
	src := MustRows(t, rows3x4)

	for name, in := range map[string]matrix.Matrix{"dense": src, "generic": hide{src}} {
		t.Run(name, func(t *testing.T) {
			cp, err := matrix.Copy(in)
			require.NoError(t, err)
			require.True(t, cp.Equal(src))
			requireRows(t, rows3x4, cp)
		})
	}
}

func TestCopy_Nil(t *testing.T) {
	_, err := matrix.Copy(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, err, matrix.ErrConstruction)

	var d *matrix.Dense
	_, err = matrix.Copy(d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCloneIndependence ensures derived results never share storage with the source.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	clone := m.Clone()

	rows := clone.ToRows()
	rows[0][0] = 99

	require.Equal(t, 1.0, MustAt(t, clone, 0, 0))
	require.True(t, clone.Equal(m))
}

func TestAtOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)

	for _, ij := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -1}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
	}
}

func TestRowCol(t *testing.T) {
	m := MustRows(t, rows3x4)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6, 7, 8}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7, 11}, col)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row[0] = 100
	require.Equal(t, 5.0, MustAt(t, m, 1, 0), "Row must return a copy")
}

func TestShapeAndIsSquare(t *testing.T) {
	m := MustRows(t, rows3x4)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.False(t, m.IsSquare())
	require.True(t, MustIdentity(t, 4).IsSquare())
}

func TestDo_EarlyStop(t *testing.T) {
	m := MustRows(t, rows3x4)
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 6
	})
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, seen)
}

// TestEqual covers reflexivity, single-cell sensitivity and shape mismatch.
func TestEqual(t *testing.T) {
	m1 := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	m2 := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 42}})

	require.True(t, m1.Equal(m1))
	require.False(t, m1.Equal(m2))
	require.False(t, m1.Equal(MustDense(t, 3, 2)), "shape mismatch is just false")
	require.False(t, m1.Equal(nil))
	require.True(t, m1.Equal(hide{m1.Clone()}))
	require.False(t, m1.Equal(hide{m2}))

	// every single-cell perturbation is detected
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			rows := m1.ToRows()
			rows[i][j]++
			require.False(t, m1.Equal(MustRows(t, rows)), "cell (%d,%d)", i, j)
		}
	}

	var nilDense *matrix.Dense
	require.False(t, nilDense.Equal(m1))
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})

	ok, err := a.AllClose(b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = a.AllClose(b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = a.AllClose(hide{b}, -1e-9, -1e-9)
	require.NoError(t, err)
	require.True(t, ok, "negative tolerances are normalized")

	_, err = a.AllClose(MustDense(t, 2, 3), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.AllClose(b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestString(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, "1\t2\t3\n4\t5\t6\n", m.String())

	frac := MustRows(t, [][]float64{{0.5, -2}, {math.Copysign(0, -1), 1e21}})
	require.Equal(t, "0.5\t-2\n0\t1e+21\n", frac.String())

	require.Equal(t, "7\n", MustRows(t, [][]float64{{7}}).String())

	// integral cells stay in plain decimal well past 1e6
	big := MustRows(t, [][]float64{{1000000, 1234567}, {-2500000, 7}})
	require.Equal(t, "1000000\t1234567\n-2500000\t7\n", big.String())

	k := MustRows(t, [][]float64{{1000, 0}, {0, 1000}})
	sq, err := k.Mul(k)
	require.NoError(t, err)
	require.Equal(t, "1000000\t0\n0\t1000000\n", sq.String())

	// 2^53 and beyond fall back to the exponent form
	require.Equal(t, "9007199254740991\t9.007199254740992e+15\n",
		MustRows(t, [][]float64{{1<<53 - 1, 1 << 53}}).String())
	require.Equal(t, "1.5000005e+06\n", MustRows(t, [][]float64{{1500000.5}}).String())
}
