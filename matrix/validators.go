// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
//
// A typed nil pointer stored in the interface (e.g. (*Dense)(nil)) is treated
// as nil as well.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateFinite scans every element and rejects NaN/±Inf. Assumes m is non-nil.
// Returns ErrNaNInf, or the indexer's error if At fails.
// Complexity: O(r*c); the *Dense fast path reads the flat buffer directly.
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

// ValidateRectangular checks that a nested literal is non-empty and that all
// rows have the same, positive length.
// Returns ErrInvalidDimensions or ErrJagged. Complexity: O(r).
func ValidateRectangular(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrInvalidDimensions
	}
	cols := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != cols {
			return ErrJagged
		}
	}

	return nil
}
