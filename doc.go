// Package lvlp is an in-memory linear programming toolkit built around a
// tableau implementation of the primal simplex method.
//
// 🚀 What is lvlp?
//
//	A small, focused library for solving standard-form linear programs:
//	maximize cᵀx subject to Ax ≤ b, x ≥ 0. The constraint matrix handed to
//	the engine already carries its slack columns, so the origin is a ready
//	basic feasible solution and iterations can start immediately.
//
// ✨ Why choose lvlp?
//
//   - Minimal API — one Solve call, one options struct, strict sentinel errors
//   - Deterministic — Dantzig pivoting with fixed first-minimum tie-breaks
//   - Pure Go — no cgo in the solver, no hidden deps
//   - Honest limits — unboundedness is reported, degeneracy is documented
//
// Everything is organized under three subpackages:
//
//	matrix/  — dense row-major float64 matrices backing the tableau
//	simplex/ — the engine: pivot selection, Gauss-Jordan pivoting, extraction
//	lp/      — model building: structural variables, ≤ constraints, slack
//	           augmentation and formatted solutions
//
// Dive into the package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/lvlp
package lvlp
