// SPDX-License-Identifier: MIT
// Package simplex: options, result type and sentinel errors.

package simplex

import "errors"

// DefaultEps is the default tolerance for sign tests on tableau entries.
// An objective coefficient counts as negative below −DefaultEps; a column
// entry counts as strictly positive above +DefaultEps.
const DefaultEps = 1e-9

var (
	// ErrUnbounded is returned when some entering column has no strictly
	// positive constraint-row entry: the objective grows without limit and
	// no finite optimum exists.
	ErrUnbounded = errors.New("simplex: objective is unbounded above")

	// ErrIterationLimit is returned when Options.MaxIterations pivots were
	// performed without reaching optimality.
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")
)

// Options configures a Solve call.
//
// Fields:
//   - Eps           — numeric tolerance for sign and basis tests. Must be
//     ≥ 0; 0 means exact comparisons. DefaultOptions uses DefaultEps.
//   - MaxIterations — upper bound on pivot count. 0 (the default) disables
//     the cap, preserving the engine's native behavior; set it when solving
//     degenerate problems that might cycle.
type Options struct {
	Eps           float64
	MaxIterations int
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps}
}

// Result holds the outcome of a successful Solve.
type Result struct {
	// X is the value of every variable (structural and slack, in column
	// order) at the optimum.
	X []float64

	// Objective is the optimal objective value cᵀx.
	Objective float64
}
