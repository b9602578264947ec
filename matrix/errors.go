// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned bare by validators; call
// sites attach context with fmt.Errorf("Op: %w", ErrX), so callers still
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sub on different shapes, Mul where a.Cols != b.Rows, or a vector
	// whose length does not match the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotDiagonal signals that a diagonal matrix was required (all off-diagonal
	// entries exactly zero) but a non-zero off-diagonal entry was observed.
	ErrNotDiagonal = errors.New("matrix: matrix is not diagonal")

	// ErrInvalidDigits indicates an unsupported decimal-digit count passed to
	// Round (negative, or beyond float64 precision).
	ErrInvalidDigits = errors.New("matrix: invalid digit count")

	// ErrBadTolerance indicates a NaN or ±Inf tolerance passed to AllClose.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite")
)
