// Package simplex solves standard-form linear programs with the tableau
// variant of the primal simplex method.
//
// 🚀 What does it solve?
//
//	maximize   cᵀx
//	subject to Ax ≤ b, x ≥ 0
//
//	where A already contains the slack columns (an identity sub-block), so
//	the origin is an immediately available basic feasible solution. There is
//	no phase-1 / Big-M handling for problems without one.
//
// Algorithm outline:
//  1. Build the (m+1)×(n+1) tableau: A in the top-left block, b in the last
//     column, −c in the objective (last) row.
//  2. Optimality test: stop when every objective-row coefficient is ≥ 0.
//  3. Entering column: the most negative objective-row coefficient
//     (Dantzig's rule); ties go to the leftmost column.
//  4. Leaving row: the minimum ratio b[i]/A[i][k] over rows with a strictly
//     positive entry in the entering column; ties go to the topmost row.
//     No eligible row means the objective is unbounded above.
//  5. Pivot: Gauss-Jordan elimination normalizing the entering column to a
//     unit vector, updating basis, feasible point and objective row at once.
//  6. Extract: a column that is a unit vector among the constraint rows,
//     with zero reduced cost, is basic and takes its row's right-hand side
//     (one basic column per row, leftmost wins); all other variables are 0.
//
// Errors:
//   - ErrUnbounded      — the objective can grow without limit.
//   - ErrIterationLimit — the optional Options.MaxIterations cap was hit.
//
// Known limitation: there is no anti-cycling rule (no Bland's rule). On
// degenerate problems the default unlimited loop can in principle cycle;
// callers needing bounded execution should set Options.MaxIterations.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlp/simplex"
//
//	// maximize 3x + 5y  s.t.  x ≤ 4, 2y ≤ 12, 3x + 2y ≤ 18
//	c := []float64{3, 5, 0, 0, 0}
//	a := [][]float64{
//	  {1, 0, 1, 0, 0},
//	  {0, 2, 0, 1, 0},
//	  {3, 2, 0, 0, 1},
//	}
//	b := []float64{4, 12, 18}
//
//	res, err := simplex.Solve(c, a, b, nil)
//
// Complexity: O(m·n) per pivot; the number of pivots is finite for
// non-degenerate problems but exponential in the worst case.
package simplex
