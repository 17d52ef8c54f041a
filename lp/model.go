package lp

import (
	"errors"

	"github.com/katalvlaran/lvlp/simplex"
)

var (
	// ErrNoVariables indicates a model was requested with no variables.
	ErrNoVariables = errors.New("lp: model needs at least one variable")

	// ErrDimensionMismatch indicates a coefficient vector whose length does
	// not match the model's variable count.
	ErrDimensionMismatch = errors.New("lp: coefficient count does not match variable count")

	// ErrNegativeRHS indicates a constraint right-hand side below zero. The
	// engine assumes the origin is feasible; a negative bound breaks that
	// assumption, so it is rejected at model-build time.
	ErrNegativeRHS = errors.New("lp: right-hand side must be non-negative")

	// ErrNoObjective indicates Solve/Augment was called before SetObjective.
	ErrNoObjective = errors.New("lp: objective not set")

	// ErrNoConstraints indicates Solve/Augment was called on a model with
	// no constraints; without any bound the problem is trivially unbounded
	// or empty, and the augmented form would have no slack block.
	ErrNoConstraints = errors.New("lp: model has no constraints")
)

// Model is a maximization LP over structural variables x ≥ 0 with ≤
// constraints. It accumulates rows and produces the augmented (c, A, b)
// system the simplex engine requires.
//
// A Model is not safe for concurrent mutation; build it in one goroutine.
type Model struct {
	numVars   int
	objective []float64   // nil until SetObjective
	coeffs    [][]float64 // one row per constraint, each of length numVars
	rhs       []float64   // right-hand sides, entry-wise ≥ 0
}

// NewModel creates a model with numVars structural variables.
// Returns ErrNoVariables when numVars ≤ 0.
func NewModel(numVars int) (*Model, error) {
	if numVars <= 0 {
		return nil, ErrNoVariables
	}

	return &Model{numVars: numVars}, nil
}

// NumVariables returns the number of structural variables.
func (m *Model) NumVariables() int { return m.numVars }

// NumConstraints returns the number of constraints added so far.
func (m *Model) NumConstraints() int { return len(m.rhs) }

// SetObjective sets the maximization objective coefficients. The slice is
// copied. Returns ErrDimensionMismatch when len(coeffs) != NumVariables().
func (m *Model) SetObjective(coeffs []float64) error {
	if len(coeffs) != m.numVars {
		return ErrDimensionMismatch
	}
	m.objective = make([]float64, m.numVars)
	copy(m.objective, coeffs)

	return nil
}

// AddConstraint appends the constraint coeffs·x ≤ rhs. The slice is copied.
//
// Errors:
//   - ErrDimensionMismatch when len(coeffs) != NumVariables();
//   - ErrNegativeRHS when rhs < 0 (the origin would be infeasible).
func (m *Model) AddConstraint(coeffs []float64, rhs float64) error {
	if len(coeffs) != m.numVars {
		return ErrDimensionMismatch
	}
	if rhs < 0 {
		return ErrNegativeRHS
	}

	row := make([]float64, m.numVars)
	copy(row, coeffs)
	m.coeffs = append(m.coeffs, row)
	m.rhs = append(m.rhs, rhs)

	return nil
}

// Augment produces the engine-ready system: objective coefficients padded
// with zeros for the slack variables, the constraint matrix with the
// identity slack block appended, and a copy of the right-hand sides. The
// returned slices share no storage with the model.
//
// Errors: ErrNoObjective, ErrNoConstraints.
//
// Complexity: O(k·(n+k)) for k constraints and n variables.
func (m *Model) Augment() ([]float64, [][]float64, []float64, error) {
	if m.objective == nil {
		return nil, nil, nil, ErrNoObjective
	}
	k := len(m.rhs)
	if k == 0 {
		return nil, nil, nil, ErrNoConstraints
	}

	total := m.numVars + k
	c := make([]float64, total)
	copy(c, m.objective)

	a := make([][]float64, k)
	var i int
	for i = 0; i < k; i++ {
		row := make([]float64, total)
		copy(row, m.coeffs[i])
		row[m.numVars+i] = 1 // slack for constraint i
		a[i] = row
	}

	b := make([]float64, k)
	copy(b, m.rhs)

	return c, a, b, nil
}

// Solve augments the model and runs the simplex engine. opts is passed
// through; nil selects simplex.DefaultOptions().
//
// Errors: ErrNoObjective and ErrNoConstraints from Augment, plus the
// engine's simplex.ErrUnbounded / simplex.ErrIterationLimit unchanged.
func (m *Model) Solve(opts *simplex.Options) (Solution, error) {
	c, a, b, err := m.Augment()
	if err != nil {
		return Solution{}, err
	}

	res, err := simplex.Solve(c, a, b, opts)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		Structural: res.X[:m.numVars:m.numVars],
		Slack:      res.X[m.numVars:],
		Objective:  res.Objective,
	}, nil
}
