// SPDX-License-Identifier: MIT

// Package simplex: pivot-column selection (entering variable), pivot-row
// selection (leaving variable, minimum-ratio test) and the Gauss-Jordan
// pivot itself.

package simplex

import "math"

// pivotColumn selects the entering column by Dantzig's rule: among
// objective-row coefficients < −eps, the most negative one wins; ties go to
// the leftmost column in scan order. The boolean is false when no negative
// coefficient exists — the tableau is already optimal and no further
// progress is possible.
//
// Complexity: O(n).
func (t *tableau) pivotColumn(eps float64) (int, bool) {
	obj := t.rows[t.m]
	col, best := -1, -eps
	for j := 0; j < t.n; j++ {
		if obj[j] < best {
			col, best = j, obj[j]
		}
	}

	return col, col >= 0
}

// pivotRow selects the leaving row for entering column col by the
// minimum-ratio test: over constraint rows whose entry in col is > eps,
// minimize rhs/entry; ties go to the topmost row. The boolean is false when
// no row qualifies — the objective is unbounded along that column and the
// caller must stop instead of pivoting.
//
// No anti-cycling rule is applied; on degenerate ties this is plain
// first-minimum, not Bland's rule.
//
// Complexity: O(m).
func (t *tableau) pivotRow(col int, eps float64) (int, bool) {
	row, best := -1, math.Inf(1)
	var v, ratio float64
	for i := 0; i < t.m; i++ {
		v = t.rows[i][col]
		if v <= eps {
			continue
		}
		ratio = t.rows[i][t.n] / v
		if ratio < best {
			row, best = i, ratio
		}
	}

	return row, row >= 0
}

// pivot performs one Gauss-Jordan elimination step on (row r, column k):
// row r is divided by the pivot entry, normalizing it to exactly 1, and the
// scaled row is subtracted from every other row (objective row included) so
// that column k becomes a unit vector. This single operation updates the
// basis, the feasible point and the objective row at once.
//
// The pivot row is fully normalized before any subtraction, so every other
// row sees a consistent snapshot of it; the row factor is read before its
// own row is touched.
//
// The selection rules guarantee a strictly positive pivot entry, so a zero
// pivot is an internal invariant violation — a bug in row/column selection,
// not a property of the input — and panics rather than recovers.
//
// Complexity: O(m·n).
func (t *tableau) pivot(r, k int) {
	pr := t.rows[r]
	p := pr[k]
	if p == 0 {
		panic("simplex: pivot on zero tableau entry")
	}

	// Normalize the pivot row; pr[k] becomes exactly 1.
	for j := range pr {
		pr[j] /= p
	}

	var (
		row    []float64
		factor float64
	)
	for i := range t.rows {
		if i == r {
			continue
		}
		row = t.rows[i]
		factor = row[k]
		if factor == 0 {
			continue
		}
		for j := range row {
			row[j] -= factor * pr[j]
		}
	}
}
