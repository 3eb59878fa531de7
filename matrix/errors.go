// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors return these sentinels (optionally
// wrapped with call-site context) and tests check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// attached at the detection site with fmt.Errorf("ctx: %w", ErrX); callers
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested extents are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrJagged signals that nested rows have different lengths.
	ErrJagged = errors.New("matrix: rows have different lengths")

	// ErrRankMismatch signals that the number of indices (or the rank of an
	// Array) does not match what the operation expects.
	ErrRankMismatch = errors.New("matrix: rank mismatch")

	// ErrDimensionMismatch indicates incompatible sizes, e.g. a flat buffer
	// whose length differs from the product of the requested extents.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
