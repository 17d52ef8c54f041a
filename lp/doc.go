// Package lp builds standard-form linear programming models and hands them
// to the simplex engine.
//
// The engine in lvlp/simplex expects an already-augmented system: the
// constraint matrix must carry an identity slack sub-block so that the
// origin is a ready basic feasible solution. Package lp is the layer that
// produces such systems from a human-shaped description:
//
//   - declare structural variables and a maximization objective,
//   - add ≤ constraints with non-negative right-hand sides,
//   - Augment() appends one slack column per constraint (the identity
//     block) and zero objective coefficients for them,
//   - Solve() runs the engine and splits the result back into structural
//     and slack values.
//
// Validation happens here, not in the engine: the engine's contract
// (matching dimensions, feasible origin) is enforced when the model is
// assembled, via sentinel errors checked with errors.Is.
//
// ⚙️ Usage:
//
//	m, _ := lp.NewModel(2)
//	_ = m.SetObjective([]float64{3, 5})
//	_ = m.AddConstraint([]float64{1, 0}, 4)
//	_ = m.AddConstraint([]float64{0, 2}, 12)
//	_ = m.AddConstraint([]float64{3, 2}, 18)
//
//	sol, err := m.Solve(nil)
//	// sol.Structural == [2 6], sol.Objective == 36
//
// Unboundedness surfaces unchanged from the engine:
// errors.Is(err, simplex.ErrUnbounded).
package lp
