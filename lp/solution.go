package lp

import (
	"fmt"
	"strings"
)

// Solution holds the optimum of a solved model, split back into the
// caller's structural variables and the slack values Augment introduced.
// It is produced once at termination and never mutated.
type Solution struct {
	// Structural holds the value of each declared variable, in declaration
	// order.
	Structural []float64

	// Slack holds one value per constraint: the unused capacity of that
	// constraint at the optimum (0 means the constraint is tight).
	Slack []float64

	// Objective is the optimal objective value.
	Objective float64
}

// Value returns the value of structural variable i (0-based).
// It panics on an out-of-range index, mirroring slice semantics.
func (s Solution) Value(i int) float64 { return s.Structural[i] }

// String renders the solution in the conventional x/s notation:
//
//	x1: 2, x2: 6
//	s1: 2, s2: 0, s3: 0
//	objective: 36
func (s Solution) String() string {
	var sb strings.Builder
	writeVars(&sb, "x", s.Structural)
	sb.WriteByte('\n')
	writeVars(&sb, "s", s.Slack)
	fmt.Fprintf(&sb, "\nobjective: %g", s.Objective)

	return sb.String()
}

// writeVars renders "p1: v, p2: v, …" for one variable family.
func writeVars(sb *strings.Builder, prefix string, vals []float64) {
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s%d: %g", prefix, i+1, v)
	}
}
