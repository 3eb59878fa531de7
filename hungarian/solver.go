// SPDX-License-Identifier: MIT

package hungarian

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvassign/matrix"
)

// Solver solves one assignment problem. It is single-shot and not safe for
// concurrent use: construct, Execute (or Step until StageDone), discard.
type Solver struct {
	st   *state
	opts Options
	log  logr.Logger

	delivered bool  // Execute already returned a result
	err       error // sticky failure from a transition or invariant check
}

// New builds a solver for the rows×cols cost matrix m.
//
// Contract:
//   - m must be non-nil with rows ≥ 1 and cols ≥ 1.
//   - every entry must be finite; any sign is allowed.
//   - every |entry| must be at most MaxCostMagnitude(max(rows, cols)).
//   - m is copied; later changes to m do not affect the solver.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrNonFiniteCost, ErrCostRange,
// ErrOptionViolation, or a wrapped indexer error from m.At.
//
// Complexity: O(n²) with n = max(rows, cols).
func New(m matrix.Matrix, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, ErrNilMatrix
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return nil, ErrEmptyMatrix
	}
	if err := matrix.ValidateFinite(m); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("%w: %v", ErrNonFiniteCost, err)
		}
		return nil, fmt.Errorf("hungarian: read cost: %w", err)
	}

	st, err := newState(m, o.Maximize)
	if err != nil {
		return nil, err
	}

	log := o.Logger.WithName("hungarian")
	log.V(1).Info("solver prepared",
		"rows", st.rows, "cols", st.cols, "dim", st.dim, "maximize", o.Maximize)

	return &Solver{st: st, opts: o, log: log}, nil
}

// MaxCostMagnitude is the largest |cost| accepted for an n×n working matrix.
//
// With C the largest |cost|, reduced costs stay within 2C, labels within 4C,
// slacks within 10C and Result.Cost within n·C, so C·32·n ≤ MaxFloat64
// keeps every intermediate finite.
func MaxCostMagnitude(n int) float64 {
	return math.MaxFloat64 / (32 * float64(max(n, 1)))
}

// NewFromSlices builds a solver from a nested literal.
// Errors: ErrEmptyMatrix, ErrJaggedMatrix, ErrNonFiniteCost, ErrCostRange,
// ErrOptionViolation.
func NewFromSlices(costs [][]float64, opts ...Option) (*Solver, error) {
	d, err := matrix.NewDenseFrom(costs)
	if err != nil {
		switch {
		case errors.Is(err, matrix.ErrJagged):
			return nil, fmt.Errorf("%w: %v", ErrJaggedMatrix, err)
		case errors.Is(err, matrix.ErrInvalidDimensions):
			return nil, ErrEmptyMatrix
		case errors.Is(err, matrix.ErrNaNInf):
			return nil, fmt.Errorf("%w: %v", ErrNonFiniteCost, err)
		default:
			return nil, err
		}
	}

	return New(d, opts...)
}

// Stage reports the current lifecycle stage.
func (s *Solver) Stage() Stage { return s.st.stage }

// Step runs exactly one stage transition and returns the new stage.
// A StagePhaseRunning step is one complete phase.
//
// Errors: ErrAlreadyExecuted at StageDone, ErrInvalidTransition,
// ErrInvariantViolated (with WithInvariantChecks). Failures are sticky.
func (s *Solver) Step() (Stage, error) {
	if s.err != nil {
		return s.st.stage, s.err
	}
	from := s.st.stage
	fn, ok := transitions[from]
	if !ok {
		return from, ErrAlreadyExecuted
	}

	next, err := fn(s.st, &s.opts)
	if err == nil && !isAllowedTransition(from, next.stage) {
		err = fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, next.stage)
	}
	if err == nil && s.opts.CheckInvariants {
		err = next.checkInvariants(s.opts.FeasibilityTolerance)
	}
	if err != nil {
		s.err = fmt.Errorf("stage %s: %w", from, err)
		s.log.Error(err, "stage transition failed", "stage", from.String())
		return s.st.stage, s.err
	}
	s.st = next

	if from == StagePhaseRunning {
		s.log.V(2).Info("phase complete",
			"phase", s.st.phases, "root", s.st.root, "job", s.st.lastJob,
			"matched", s.st.matched, "labelUpdates", s.st.labelUpdates)
	}

	return s.st.stage, nil
}

// Execute runs the remaining stages and returns the minimum-cost assignment
// (maximum-value with WithMaximize).
//
// Guarantees:
//   - len(Result.Jobs) == rows; every job index appears at most once.
//   - Unassigned appears only when rows > cols, exactly rows−cols times.
//
// Errors: ErrAlreadyExecuted on a second call; errors from Step otherwise.
//
// Complexity: O(n³).
func (s *Solver) Execute() (Result, error) {
	if s.delivered {
		return Result{}, ErrAlreadyExecuted
	}
	for s.st.stage != StageDone {
		if _, err := s.Step(); err != nil {
			return Result{}, err
		}
	}
	s.delivered = true

	res := s.result()
	s.log.V(1).Info("assignment solved",
		"cost", res.Cost, "phases", res.Phases, "unassigned", len(res.UnassignedWorkers()))

	return res, nil
}

// result projects the padded matching onto the caller's rows.
func (s *Solver) result() Result {
	st := s.st
	res := Result{Jobs: make([]int, st.rows), Phases: st.phases}
	var (
		w, j int
		row  []float64
	)
	for w = 0; w < st.rows; w++ {
		j = st.matchJobByWorker[w]
		if j == none || j >= st.cols {
			res.Jobs[w] = Unassigned
			continue
		}
		res.Jobs[w] = j
		row, _ = st.origin.RawRow(w)
		res.Cost += row[j]
	}

	return res
}

// Solve is New followed by Execute.
func Solve(m matrix.Matrix, opts ...Option) (Result, error) {
	s, err := New(m, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Execute()
}

// SolveSlices is NewFromSlices followed by Execute.
func SolveSlices(costs [][]float64, opts ...Option) (Result, error) {
	s, err := NewFromSlices(costs, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Execute()
}
