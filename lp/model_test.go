package lp_test

import (
	"testing"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// buildTextbook assembles the two-product planning model used throughout:
// maximize 3x+5y s.t. x ≤ 4, 2y ≤ 12, 3x+2y ≤ 18.
func buildTextbook(t *testing.T) *lp.Model {
	t.Helper()
	m, err := lp.NewModel(2)
	require.NoError(t, err)
	require.NoError(t, m.SetObjective([]float64{3, 5}))
	require.NoError(t, m.AddConstraint([]float64{1, 0}, 4))
	require.NoError(t, m.AddConstraint([]float64{0, 2}, 12))
	require.NoError(t, m.AddConstraint([]float64{3, 2}, 18))

	return m
}

// TestNewModelValidation rejects non-positive variable counts.
func TestNewModelValidation(t *testing.T) {
	_, err := lp.NewModel(0)
	require.ErrorIs(t, err, lp.ErrNoVariables)

	_, err = lp.NewModel(-3)
	require.ErrorIs(t, err, lp.ErrNoVariables)
}

// TestSetObjectiveDimension rejects coefficient vectors of the wrong length.
func TestSetObjectiveDimension(t *testing.T) {
	m, err := lp.NewModel(2)
	require.NoError(t, err)

	require.ErrorIs(t, m.SetObjective([]float64{1}), lp.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetObjective([]float64{1, 2, 3}), lp.ErrDimensionMismatch)
	require.NoError(t, m.SetObjective([]float64{1, 2}))
}

// TestAddConstraintValidation rejects wrong arity and negative bounds.
func TestAddConstraintValidation(t *testing.T) {
	m, err := lp.NewModel(2)
	require.NoError(t, err)

	require.ErrorIs(t, m.AddConstraint([]float64{1}, 4), lp.ErrDimensionMismatch)
	require.ErrorIs(t, m.AddConstraint([]float64{1, 2}, -0.5), lp.ErrNegativeRHS)
	require.NoError(t, m.AddConstraint([]float64{1, 2}, 0))
	require.Equal(t, 1, m.NumConstraints())
}

// TestAugmentRequiresObjectiveAndConstraints pins the assembly sentinels.
func TestAugmentRequiresObjectiveAndConstraints(t *testing.T) {
	m, err := lp.NewModel(1)
	require.NoError(t, err)

	_, _, _, err = m.Augment()
	require.ErrorIs(t, err, lp.ErrNoObjective)

	require.NoError(t, m.SetObjective([]float64{1}))
	_, _, _, err = m.Augment()
	require.ErrorIs(t, err, lp.ErrNoConstraints)
}

// TestAugmentLayout verifies the augmented system: zero-padded objective,
// identity slack block, copied right-hand sides.
func TestAugmentLayout(t *testing.T) {
	m := buildTextbook(t)

	c, a, b, err := m.Augment()
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 5, 0, 0, 0}, c)
	require.Len(t, a, 3)
	assert.Equal(t, []float64{1, 0, 1, 0, 0}, a[0])
	assert.Equal(t, []float64{0, 2, 0, 1, 0}, a[1])
	assert.Equal(t, []float64{3, 2, 0, 0, 1}, a[2])
	assert.Equal(t, []float64{4, 12, 18}, b)
}

// TestAugmentCopiesInputs ensures the augmented system shares no storage
// with the model: mutating it must not corrupt a later Solve.
func TestAugmentCopiesInputs(t *testing.T) {
	m := buildTextbook(t)

	c, a, b, err := m.Augment()
	require.NoError(t, err)
	c[0], a[0][0], b[0] = 99, 99, 99 // vandalize the augmented copy

	sol, err := m.Solve(nil)
	require.NoError(t, err)
	assert.InDelta(t, 36, sol.Objective, delta)
}

// TestSolveTextbook solves the planning model end to end and checks the
// structural/slack split.
func TestSolveTextbook(t *testing.T) {
	m := buildTextbook(t)

	sol, err := m.Solve(nil)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{2, 6}, sol.Structural, delta)
	assert.InDeltaSlice(t, []float64{2, 0, 0}, sol.Slack, delta)
	assert.InDelta(t, 36, sol.Objective, delta)
	assert.InDelta(t, 2, sol.Value(0), delta)
}

// TestSolveUnboundedPassthrough verifies the engine sentinel survives the
// model layer unchanged.
func TestSolveUnboundedPassthrough(t *testing.T) {
	m, err := lp.NewModel(1)
	require.NoError(t, err)
	require.NoError(t, m.SetObjective([]float64{1}))
	require.NoError(t, m.AddConstraint([]float64{-1}, 5))

	_, err = m.Solve(nil)
	require.ErrorIs(t, err, simplex.ErrUnbounded)
}

// TestSolveIterationLimitPassthrough verifies options reach the engine.
func TestSolveIterationLimitPassthrough(t *testing.T) {
	m := buildTextbook(t)

	opts := simplex.DefaultOptions()
	opts.MaxIterations = 1
	_, err := m.Solve(&opts)
	require.ErrorIs(t, err, simplex.ErrIterationLimit)
}

// TestSolutionString pins the conventional x/s rendering.
func TestSolutionString(t *testing.T) {
	m := buildTextbook(t)

	sol, err := m.Solve(nil)
	require.NoError(t, err)

	assert.Equal(t, "x1: 2, x2: 6\ns1: 2, s2: 0, s3: 0\nobjective: 36", sol.String())
}
