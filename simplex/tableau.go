// SPDX-License-Identifier: MIT

// Package simplex: tableau construction, optimality test and solution
// extraction. The pivot kernels live in pivot.go.

package simplex

import "github.com/katalvlaran/lvlp/matrix"

// tableau is the dense simplex state: rows 0..m-1 hold constraint
// coefficients with the right-hand side in the last column, row m holds the
// negated objective coefficients with the running objective value in the
// last column. It is mutated in place by successive pivots; no history is
// kept.
type tableau struct {
	m, n  int           // constraint rows, variables (structural + slack)
	cells *matrix.Dense // (m+1)×(n+1) storage
	rows  [][]float64   // row views into cells, length m+1
}

// newTableau allocates the (m+1)×(n+1) tableau for maximize cᵀx s.t.
// Ax ≤ b (A already augmented with slack columns) and copies A, b and −c
// into place.
//
// Contracts (caller-assumed, unchecked beyond non-empty dimensions):
//   - len(b) rows in a, len(c) columns per row;
//   - b entry-wise ≥ 0, so the origin is feasible;
//   - the slack columns of a form an identity sub-block.
//
// Complexity: O(m·n) time and memory.
func newTableau(c []float64, a [][]float64, b []float64) (*tableau, error) {
	m, n := len(b), len(c)
	cells, err := matrix.NewDense(m+1, n+1)
	if err != nil {
		return nil, err
	}

	t := &tableau{m: m, n: n, cells: cells, rows: make([][]float64, m+1)}
	var (
		i, j int
		row  []float64
	)
	// Capture one aliasing view per row; every later stage works on these.
	for i = 0; i <= m; i++ {
		if row, err = cells.Row(i); err != nil {
			return nil, err
		}
		t.rows[i] = row
	}

	// Constraint block and right-hand side.
	for i = 0; i < m; i++ {
		copy(t.rows[i][:n], a[i])
		t.rows[i][n] = b[i]
	}
	// Objective row holds −c so that driving it non-negative maximizes cᵀx.
	for j = 0; j < n; j++ {
		t.rows[m][j] = -c[j]
	}

	return t, nil
}

// isOptimal reports whether every objective-row coefficient (excluding the
// objective-value entry) is ≥ −eps. This is the loop's sole success
// condition.
//
// Complexity: O(n).
func (t *tableau) isOptimal(eps float64) bool {
	obj := t.rows[t.m]
	for j := 0; j < t.n; j++ {
		if obj[j] < -eps {
			return false
		}
	}

	return true
}

// unitRow reports whether column j is a unit vector among the constraint
// rows and, if so, which row holds the 1: exactly one entry non-zero
// (within eps) and that entry equal to 1 (within eps).
//
// Complexity: O(m).
func (t *tableau) unitRow(j int, eps float64) (int, bool) {
	unit, nonzero := -1, 0
	var v float64
	for i := 0; i < t.m; i++ {
		v = t.rows[i][j]
		if v > eps || v < -eps {
			nonzero++
			unit = i
		}
	}
	if nonzero != 1 {
		return 0, false
	}
	v = t.rows[unit][j]
	if v < 1-eps || v > 1+eps {
		return 0, false
	}

	return unit, true
}

// extract reads the solution and objective value off the terminal tableau.
//
// Column j is recognized as basic iff it is a unit vector among the
// constraint rows, its reduced cost (objective-row entry) vanishes within
// eps, and no earlier column already claimed the same row. Basic variables
// take the right-hand side of their unit row; every other variable is 0.
//
// The two extra conditions beyond the unit-vector scan close a real gap: a
// structural column may incidentally equal a slack column's unit vector, and
// labeling both basic would assign the same row's value twice, breaking
// feasibility. A truly basic column always has zero reduced cost, and when
// two zero-reduced-cost columns share a unit row (degenerate alternative
// optima) either one is a legitimate basis member, so the leftmost wins.
//
// Extraction performs no mutation, so calling it again on the same tableau
// returns the same values.
//
// Complexity: O(m·n).
func (t *tableau) extract(eps float64) Result {
	x := make([]float64, t.n)
	claimed := make([]bool, t.m)
	obj := t.rows[t.m]
	for j := 0; j < t.n; j++ {
		r, ok := t.unitRow(j, eps)
		if !ok || claimed[r] {
			continue
		}
		if obj[j] > eps || obj[j] < -eps {
			continue // non-zero reduced cost: not a basis member
		}
		claimed[r] = true
		x[j] = t.rows[r][t.n]
	}

	return Result{X: x, Objective: t.rows[t.m][t.n]}
}
