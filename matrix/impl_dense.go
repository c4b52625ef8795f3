// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), constructors & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep the value immutable: cells are written only inside constructors, before
//     the *Dense is returned, so a published matrix can be shared freely.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At: O(1); Clone: O(r*c); Equal: O(r*c); String: O(r*c).

package matrix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxRow         = "Row"
	ctxCol         = "Col"
	ctxNewFromRows = "NewFromRows"
	ctxNewFromFlat = "NewFromFlat"
	ctxNewFromFunc = "NewFromFunc"
	ctxCopy        = "Copy"
	ctxIdentity    = "NewIdentity"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep = "\t"
	_fmtRowSep  = "\n"

	// _fmtMaxPlainInt bounds integral cells printed without an exponent (2^53).
	_fmtMaxPlainInt = 1 << 53
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - policy is the numeric policy captured at construction and inherited by results.
type Dense struct {
	r, c   int
	data   []float64
	policy Options
}

// NewDense creates a rows×cols matrix filled with zeros.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: allocate a flat buffer; make() zero-fills it.
//   - Stage 3: capture the numeric policy from opts.
//
// Errors:
//   - ErrInvalidDimensions (also matches ErrConstruction).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return newDense(rows, cols, gatherOptions(opts...)), nil
}

// newDense allocates without validation; callers guarantee rows,cols ≥ 1.
func newDense(rows, cols int, policy Options) *Dense {
	return &Dense{
		r:      rows,
		c:      cols,
		data:   make([]float64, rows*cols),
		policy: policy,
	}
}

// NewFromRows builds a matrix from literal row data; the input is copied.
//
// Implementation:
//   - Stage 1: validate rows is a non-empty rectangle (every row as long as the first).
//   - Stage 2: copy rows into the flat buffer, enforcing the NaN/Inf policy per cell.
//
// Errors:
//   - ErrEmptyData, ErrRaggedRows, ErrNaNInf (all match ErrConstruction).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r, c, err := validateRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFromRows, err)
	}
	m := newDense(r, c, gatherOptions(opts...))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.policy.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxNewFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// NewFromFlat builds a rows×cols matrix from row-major data; the input is copied.
// len(data) must equal rows*cols.
func NewFromFlat(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFromFlat, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len %d, want %d: %w", ctxNewFromFlat, len(data), rows*cols,
			errors.Join(ErrConstruction, ErrDimensionMismatch))
	}
	m := newDense(rows, cols, gatherOptions(opts...))
	for idx, v := range data {
		if m.policy.validateNaNInf && isNonFinite(v) {
			return nil, denseErrorf(ctxNewFromFlat, idx/cols, idx%cols, ErrNaNInf)
		}
		m.data[idx] = v
	}

	return m, nil
}

// NewFromFunc builds a rows×cols matrix with cell (i,j) = f(i,j), visited in
// row-major order.
func NewFromFunc(rows, cols int, f func(i, j int) float64, opts ...Option) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFromFunc, err)
	}
	if f == nil {
		return nil, fmt.Errorf("%s: nil func: %w", ctxNewFromFunc, ErrConstruction)
	}
	m := newDense(rows, cols, gatherOptions(opts...))
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = f(i, j)
			if m.policy.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxNewFromFunc, i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Copy deep-copies any Matrix into a new, independent *Dense.
// A *Dense source hands its numeric policy down before opts are applied.
//
// Errors:
//   - ErrNilMatrix (joined with ErrConstruction), ErrInvalidDimensions,
//     ErrOutOfRange from a misbehaving source, ErrNaNInf.
func Copy(src Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ctxCopy, ErrConstruction, err)
	}
	policy := defaultOptions()
	if d, ok := src.(*Dense); ok {
		policy = d.policy
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&policy)
		}
	}
	rows, cols := src.Rows(), src.Cols()
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCopy, err)
	}
	m := newDense(rows, cols, policy)

	// Fast path: flat copy.
	if d, ok := src.(*Dense); ok {
		copy(m.data, d.data)
		if err := m.checkFinite(ctxCopy); err != nil {
			return nil, err
		}
		return m, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, denseErrorf(ctxCopy, i, j, err)
			}
			m.data[i*cols+j] = v
		}
	}
	if err = m.checkFinite(ctxCopy); err != nil {
		return nil, err
	}

	return m, nil
}

// checkFinite reports the first non-finite cell when the policy requires finite values.
func (m *Dense) checkFinite(method string) error {
	if !m.policy.validateNaNInf {
		return nil
	}
	for idx, v := range m.data {
		if isNonFinite(v) {
			return denseErrorf(method, idx/m.c, idx%m.c, ErrNaNInf)
		}
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, policy: m.policy}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
func (m *Dense) At(row, col int) (float64, error) {
	if err := validateIndex(row, m.r); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	if err := validateIndex(col, m.c); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if err := validateIndex(i, m.r); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if err := validateIndex(j, m.c); err != nil {
		return nil, denseErrorf(ctxCol, 0, j, err)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns the cells as freshly allocated rows; mutating them does not
// affect m.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Equal reports whether b has the same shape and exactly equal cells.
// A shape mismatch is not an error, just false. A nil b is never equal.
//
// Complexity: O(r*c), early exit on the first differing cell.
func (m *Dense) Equal(b Matrix) bool {
	if m == nil || ValidateNotNil(b) != nil {
		return false
	}
	if ValidateSameShape(m, b) != nil {
		return false
	}
	if db, ok := b.(*Dense); ok {
		for idx, v := range m.data {
			if v != db.data[idx] {
				return false
			}
		}
		return true
	}

	var i, j int
	var bv float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if bv, err = b.At(i, j); err != nil || m.data[i*m.c+j] != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |m-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (false, nil) on the first violation; shape mismatch is an error here,
// unlike Equal.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// AI-Hints:
//   - Use it for float round trips such as A·A⁻¹ ≈ I.
func (m *Dense) AllClose(b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(m, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var i, j int
	var av, bv, diff, absb float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			av = m.data[i*m.c+j]
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			diff = av - bv
			if diff < 0 {
				diff = -diff
			}
			absb = bv
			if absb < 0 {
				absb = -absb
			}
			if !(diff <= atol+rtol*absb) { // NaN never passes
				return false, nil
			}
		}
	}

	return true, nil
}

// String renders the matrix as a pseudo table: cells separated by a tab,
// every row (the last one included) terminated by a newline.
//
//	[[1,2,3],[4,5,6]] → "1\t2\t3\n4\t5\t6\n"
//
// Integral cells below 2^53 in magnitude print in plain decimal (1000000, not
// 1e+06); other cells use the shortest 'g' representation. Negative zero
// prints as 0.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	var v float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtCellSep)
			}
			v = m.data[base+j]
			if v == 0 {
				v = 0 // drop the sign of -0
			}
			b.WriteString(formatCell(v))
		}
		b.WriteString(_fmtRowSep)
	}

	return b.String()
}

// formatCell renders one cell for String.
func formatCell(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < _fmtMaxPlainInt {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
