// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public entry points return these sentinels and tests check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
