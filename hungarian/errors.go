// SPDX-License-Identifier: MIT

package hungarian

import "errors"

// Sentinel errors for solver construction and execution.
// Callers match them with errors.Is; context is attached with %w.
var (
	// ErrNilMatrix is returned when a nil cost matrix is passed.
	ErrNilMatrix = errors.New("hungarian: cost matrix is nil")

	// ErrEmptyMatrix is returned when the cost matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("hungarian: cost matrix is empty")

	// ErrJaggedMatrix is returned when nested cost rows differ in length.
	ErrJaggedMatrix = errors.New("hungarian: cost matrix rows have different lengths")

	// ErrNonFiniteCost is returned when a cost entry is NaN or ±Inf.
	ErrNonFiniteCost = errors.New("hungarian: cost must be finite")

	// ErrCostRange is returned when the largest |cost| exceeds
	// MaxCostMagnitude(n); label and slack arithmetic could overflow.
	ErrCostRange = errors.New("hungarian: cost magnitude out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hungarian: invalid option supplied")

	// ErrAlreadyExecuted is returned when a single-shot solver is run again.
	ErrAlreadyExecuted = errors.New("hungarian: solver already executed")

	// ErrInvalidTransition is returned when the stage machine is asked to
	// move along an edge it does not have.
	ErrInvalidTransition = errors.New("hungarian: invalid stage transition")

	// ErrInvariantViolated is returned by invariant checks (WithInvariantChecks)
	// when dual feasibility or matching consistency breaks.
	ErrInvariantViolated = errors.New("hungarian: invariant violated")
)
