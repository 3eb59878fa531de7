// SPDX-License-Identifier: MIT

// Package hungarian provides tunable options, results and stage definitions
// for the assignment solver.
package hungarian

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

// Unassigned marks a worker that receives no job in Result.Jobs.
// It is never a valid job index.
const Unassigned = -1

// DefaultFeasibilityTolerance is the absolute slack tolerance (scaled by
// max(1, max|cost|)) used by invariant checks.
const DefaultFeasibilityTolerance = 1e-9

// Option configures the solver via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks that customize a solve.
type Options struct {
	// Logger receives structured diagnostics. V(1): solve summary, V(2): phases.
	Logger logr.Logger

	// Maximize turns the problem into maximum total value.
	Maximize bool

	// Reduce enables the row/column reduction heuristic.
	Reduce bool

	// GreedySeed enables the zero-slack greedy seed matching.
	GreedySeed bool

	// CheckInvariants verifies dual feasibility and matching consistency
	// after every stage transition.
	CheckInvariants bool

	// FeasibilityTolerance bounds how negative a slack may be in checks.
	FeasibilityTolerance float64

	// OnPhase is called after each completed phase.
	OnPhase func(PhaseEvent)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - logr.Discard() logger
//   - minimisation, reduction and greedy seed enabled
//   - invariant checks off, DefaultFeasibilityTolerance
//   - no-op phase hook
func DefaultOptions() Options {
	return Options{
		Logger:               logr.Discard(),
		Maximize:             false,
		Reduce:               true,
		GreedySeed:           true,
		CheckInvariants:      false,
		FeasibilityTolerance: DefaultFeasibilityTolerance,
		OnPhase:              func(PhaseEvent) {},
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaximize solves for maximum total value instead of minimum cost.
// Result.Cost is still reported in the caller's units.
func WithMaximize() Option {
	return func(o *Options) {
		o.Maximize = true
	}
}

// WithoutReduction disables the row/column reduction heuristic.
func WithoutReduction() Option {
	return func(o *Options) {
		o.Reduce = false
	}
}

// WithoutGreedySeed disables the zero-slack greedy seed matching.
func WithoutGreedySeed() Option {
	return func(o *Options) {
		o.GreedySeed = false
	}
}

// WithInvariantChecks enables per-transition invariant verification.
// Each check costs O(n²).
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.CheckInvariants = true
	}
}

// WithFeasibilityTolerance sets the tolerance used by invariant checks.
//
//	eps ≥ 0 and finite: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithFeasibilityTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: feasibility tolerance must be finite and >= 0 (%g)", ErrOptionViolation, eps)
			return
		}
		o.FeasibilityTolerance = eps
	}
}

// WithPhaseHook registers a callback run after each completed phase.
func WithPhaseHook(fn func(PhaseEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// PhaseEvent describes one completed phase.
type PhaseEvent struct {
	Phase        int // 1-based phase counter
	Root         int // unmatched worker the phase was rooted at
	Job          int // unmatched job that closed the augmenting path
	Matched      int // matching size after the phase
	LabelUpdates int // number of dual updates performed in the phase
}

// Stage identifies where the solver is in its lifecycle.
type Stage int

// enumeration of Stage
const (
	StageReducing Stage = iota
	StageInitializingLabels
	StageGreedySeeding
	StagePhaseRunning
	StageDone
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageReducing:
		return "Reducing"
	case StageInitializingLabels:
		return "InitializingLabels"
	case StageGreedySeeding:
		return "GreedySeeding"
	case StagePhaseRunning:
		return "PhaseRunning"
	case StageDone:
		return "Done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Result holds the outcome of a solve.
type Result struct {
	// Jobs[w] is the job assigned to worker w, or Unassigned.
	// len(Jobs) equals the number of rows of the input.
	Jobs []int

	// Cost is the total of the input entries over assigned pairs.
	Cost float64

	// Phases counts augmenting phases run after the greedy seed.
	Phases int
}

// Job returns the job assigned to worker w and whether there is one.
// Out-of-range workers report (Unassigned, false).
func (r Result) Job(w int) (int, bool) {
	if w < 0 || w >= len(r.Jobs) || r.Jobs[w] == Unassigned {
		return Unassigned, false
	}

	return r.Jobs[w], true
}

// Pairs returns assigned (worker, job) pairs in worker order.
func (r Result) Pairs() [][2]int {
	out := make([][2]int, 0, len(r.Jobs))
	for w, j := range r.Jobs {
		if j != Unassigned {
			out = append(out, [2]int{w, j})
		}
	}

	return out
}

// UnassignedWorkers lists workers without a job, ascending.
func (r Result) UnassignedWorkers() []int {
	var out []int
	for w, j := range r.Jobs {
		if j == Unassigned {
			out = append(out, w)
		}
	}

	return out
}

// UnusedJobs lists jobs in [0, cols) that no worker received, ascending.
func (r Result) UnusedJobs(cols int) []int {
	if cols <= 0 {
		return nil
	}
	used := make([]bool, cols)
	for _, j := range r.Jobs {
		if j >= 0 && j < cols {
			used[j] = true
		}
	}
	var out []int
	for j, u := range used {
		if !u {
			out = append(out, j)
		}
	}

	return out
}
