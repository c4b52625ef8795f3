// Package matrix implements Dense, an immutable row-major float64 matrix
// value type with exact-friendly linear algebra for small matrices.
//
// The matrix package provides:
//
//   - Construction from literal rows (NewFromRows), from dimensions
//     (NewDense, zero-filled), from another matrix (Copy / Clone), plus
//     NewIdentity, NewFromFlat and NewFromFunc.
//   - Element-wise Add/Sub with a matrix (AddScalar/SubScalar with a scalar),
//     the matrix product Mul and scalar Scale.
//   - SubMatrix (minor extraction), Determinant by Laplace expansion,
//     Cofactor, Adjugate, Transpose and Inverse by the adjugate method.
//   - Equal (exact), AllClose (tolerance) and a tab-separated String.
//
// Every operation returns a new *Dense; receivers and operands are never
// mutated, so a built matrix may be read from many goroutines at once.
//
// Numeric contract: cells are float64. Integer-valued inputs whose
// intermediate products stay below 2^53 are computed exactly, which is why
// Equal and the singularity test in Inverse use exact comparison by default.
// Use WithSingularEpsilon for measured data.
//
// Determinant and Inverse cost O(n!) and are meant for small orders.
//
// Errors are package sentinels matched with errors.Is: ErrConstruction
// (and its refinements), ErrDimensionMismatch, ErrNonSquare, ErrSingular,
// ErrOutOfRange.
package matrix
