// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private helpers and the options snapshot.
// Lives in a _test.go file of package matrix, so it widens nothing in
// production builds while matrix_test can reach the internals it needs.

var (
	// ExportedFillMinor exposes fillMinor.
	ExportedFillMinor = fillMinor
	// ExportedDeterminant exposes the flat-slice Laplace kernel.
	ExportedDeterminant = determinant
)

// PanicSingularEpsilonInvalid_TestOnly avoids magic strings in panic tests.
const PanicSingularEpsilonInvalid_TestOnly = panicSingularEpsilonInvalid

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// PolicyOf_TestOnly returns the policy captured by m.
func PolicyOf_TestOnly(m *Dense) OptionsSnapshot {
	return OptionsSnapshot{Eps: m.policy.eps, ValidateNaNInf: m.policy.validateNaNInf}
}
