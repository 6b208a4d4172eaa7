// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported methods return these sentinels (possibly wrapped with the
// method context) and tests match them via errors.Is. No method panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is negative, or when
	// Grow is asked to shrink the matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (Has/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *BitMatrix receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
