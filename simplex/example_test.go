package simplex_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlp/simplex"
)

// ExampleSolve maximizes 2x₁ − 3x₂ − 5x₄ over three augmented constraints.
// Columns 4..6 are the slack identity block, so the origin is a valid
// starting basis and the solve needs a single pivot.
func ExampleSolve() {
	c := []float64{2, -3, 0, -5, 0, 0, 0}
	a := [][]float64{
		{-1, 1, -1, -1, 1, 0, 0},
		{2, 4, 0, 0, 0, 1, 0},
		{0, 0, 1, 1, 0, 0, 1},
	}
	b := []float64{8, 10, 3}

	res, err := simplex.Solve(c, a, b, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x = %v\n", res.X)
	fmt.Printf("objective = %g\n", res.Objective)
	// Output:
	// x = [5 0 0 0 13 0 3]
	// objective = 10
}

// ExampleSolve_unbounded shows the explicit negative result: the only
// improving column has no positive constraint entry, so the objective can
// grow without limit.
func ExampleSolve_unbounded() {
	c := []float64{1, 0}
	a := [][]float64{{-1, 1}}
	b := []float64{5}

	_, err := simplex.Solve(c, a, b, nil)
	fmt.Println(errors.Is(err, simplex.ErrUnbounded))
	// Output:
	// true
}
