// SPDX-License-Identifier: MIT

package simplex

// Test-Bridge (White-Box) for the private tableau kernels.
//
// Purpose:
//   - Expose the unexported tableau stages to simplex_test ONLY, enabling
//     white-box verification of selection rules, the pivot kernel and the
//     basis scan without widening the production API.
//
// Build policy: this is a _test.go file in package simplex, so the bridge
// is compiled only into the test binary and is invisible to importers.

// TableauTestOnly aliases the private tableau type for external tests.
type TableauTestOnly = tableau

// NewTableauTestOnly forwards to newTableau.
func NewTableauTestOnly(c []float64, a [][]float64, b []float64) (*TableauTestOnly, error) {
	return newTableau(c, a, b)
}

// IsOptimalTestOnly forwards to tableau.isOptimal.
func IsOptimalTestOnly(t *TableauTestOnly, eps float64) bool {
	return t.isOptimal(eps)
}

// PivotColumnTestOnly forwards to tableau.pivotColumn.
func PivotColumnTestOnly(t *TableauTestOnly, eps float64) (int, bool) {
	return t.pivotColumn(eps)
}

// PivotRowTestOnly forwards to tableau.pivotRow.
func PivotRowTestOnly(t *TableauTestOnly, col int, eps float64) (int, bool) {
	return t.pivotRow(col, eps)
}

// PivotTestOnly forwards to tableau.pivot.
func PivotTestOnly(t *TableauTestOnly, row, col int) {
	t.pivot(row, col)
}

// ExtractTestOnly forwards to tableau.extract.
func ExtractTestOnly(t *TableauTestOnly, eps float64) Result {
	return t.extract(eps)
}

// ObjectiveRowTestOnly returns the live objective row (coefficients plus the
// trailing objective value). It aliases tableau storage; read-only use.
func ObjectiveRowTestOnly(t *TableauTestOnly) []float64 {
	return t.rows[t.m]
}

// ConstraintRowTestOnly returns the live constraint row i. Read-only use.
func ConstraintRowTestOnly(t *TableauTestOnly, i int) []float64 {
	return t.rows[i]
}
