// Package matrix provides the dense linear-algebra substrate for lvlp.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked element access.
//   - Row views that alias the backing storage, so in-place row operations
//     (the heart of simplex pivoting) need no copying.
//   - Clone for snapshots that must not observe further mutation.
//
// Dense is deliberately small: the simplex tableau needs exactly one owned,
// exclusively mutable matrix, not a general linear-algebra suite.
//
// See the simplex package for the primary consumer.
package matrix
