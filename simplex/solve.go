// SPDX-License-Identifier: MIT

// Package simplex - public entry point and termination loop.

package simplex

// Solve maximizes objective·x subject to constraints·x ≤ rhs and x ≥ 0,
// where constraints already carries the identity slack sub-block.
//
// opts may be nil, which means DefaultOptions(). A zero-valued Options is
// also legal and selects exact (eps = 0) comparisons with no iteration cap.
//
// Contracts (caller-assumed, NOT validated here):
//   - constraints has len(rhs) rows and len(objective) columns per row;
//   - rhs is entry-wise ≥ 0, i.e. the origin is feasible. Violating this is
//     not detected and yields a meaningless result;
//   - the slack columns of constraints form an identity sub-block, so the
//     initial basis is valid.
//
// Returns:
//   - (Result, nil) at a finite optimum: the full variable-value vector in
//     column order plus the objective value;
//   - ErrUnbounded when some improving direction has no limiting row;
//   - ErrIterationLimit when opts.MaxIterations > 0 pivots did not reach
//     optimality (degenerate problems can cycle; see package doc).
//
// An empty problem (no variables, no constraints) is trivially optimal and
// returns an empty solution vector with objective 0.
//
// The tableau is owned exclusively by the invocation; concurrent Solve
// calls on independent inputs are safe.
//
// Complexity: O(m·n) per pivot, unbounded pivot count by default.
func Solve(objective []float64, constraints [][]float64, rhs []float64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	t, err := newTableau(objective, constraints, rhs)
	if err != nil {
		return Result{}, err
	}

	pivots := 0
	for !t.isOptimal(o.Eps) {
		col, ok := t.pivotColumn(o.Eps)
		if !ok {
			// No entering candidate means no further progress is possible;
			// the optimality test above makes this unreachable, but the
			// loop composes defensively rather than assuming it.
			break
		}
		row, ok := t.pivotRow(col, o.Eps)
		if !ok {
			return Result{}, ErrUnbounded
		}
		if o.MaxIterations > 0 && pivots >= o.MaxIterations {
			return Result{}, ErrIterationLimit
		}
		t.pivot(row, col)
		pivots++
	}

	return t.extract(o.Eps), nil
}
