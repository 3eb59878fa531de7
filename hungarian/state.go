// SPDX-License-Identifier: MIT

// Package hungarian - solver state and the stage machine.
//
// The state owns every array the algorithm touches:
//   - cost: the padded n×n working matrix (matrix.Dense) plus row views into it;
//   - labels, matching vectors and the phase-local search bookkeeping.
//
// Stages move along a fixed set of edges:
//
//	Reducing → InitializingLabels → GreedySeeding → PhaseRunning* → Done
//	GreedySeeding → Done
//
// Each edge is taken by exactly one transition function that receives the
// full state and returns it with its stage advanced.
package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvassign/matrix"
)

// none marks "no match" / "not committed" inside the state vectors.
// Indices are always in [0, dim), so none never collides with a valid one.
const none = -1

// state is the complete mutable solver state.
type state struct {
	rows, cols, dim int

	origin   *matrix.Dense // rows×cols copy of the input, caller units
	cost     *matrix.Dense // dim×dim working matrix (padded, possibly negated/reduced)
	costRows [][]float64   // row views into cost for hot loops

	labelByWorker []float64
	labelByJob    []float64

	matchJobByWorker []int
	matchWorkerByJob []int
	matched          int

	// phase-local
	committedWorkers           []bool
	parentWorkerByCommittedJob []int
	minSlackByJob              []float64
	minSlackWorkerByJob        []int
	root                       int
	lastJob                    int
	labelUpdates               int

	stage  Stage
	phases int

	onLabelUpdate func() // optional observer, set by tests
}

// newState copies src into a padded square working matrix.
//
// Implementation:
//   - Stage 1: copy src into origin (rows×cols) and bound its magnitude.
//   - Stage 2: allocate dim×dim cost, copy origin into the top-left block
//     (the rest stays zero) and negate it when maximize.
//   - Stage 3: allocate labels, matching and phase vectors; matching starts empty.
//
// src must already be finite (see New).
// Complexity: O(dim²) time and space.
func newState(src matrix.Matrix, maximize bool) (*state, error) {
	rows, cols := src.Rows(), src.Cols()
	dim := max(rows, cols)

	origin, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyMatrix, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, fmt.Errorf("hungarian: read cost (%d,%d): %w", i, j, err)
			}
			if err = origin.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%w: entry (%d,%d) = %v", ErrNonFiniteCost, i, j, v)
			}
		}
	}

	var peak float64
	origin.Do(func(_, _ int, c float64) bool {
		peak = math.Max(peak, math.Abs(c))
		return true
	})
	if limit := MaxCostMagnitude(dim); peak > limit {
		return nil, fmt.Errorf("%w: |cost| reaches %g, limit for n=%d is %g", ErrCostRange, peak, dim, limit)
	}

	cost, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	st := &state{
		rows:     rows,
		cols:     cols,
		dim:      dim,
		origin:   origin,
		cost:     cost,
		costRows: make([][]float64, dim),
		stage:    StageReducing,
		root:     none,
		lastJob:  none,
	}
	for i = 0; i < dim; i++ {
		// RawRow cannot fail for i in [0, dim).
		st.costRows[i], _ = cost.RawRow(i)
	}
	var src2 []float64
	for i = 0; i < rows; i++ {
		src2, _ = origin.RawRow(i)
		copy(st.costRows[i], src2)
	}
	if maximize {
		if err = cost.Apply(func(_, _ int, c float64) float64 { return -c }); err != nil {
			return nil, err
		}
	}

	st.labelByWorker = make([]float64, dim)
	st.labelByJob = make([]float64, dim)
	st.minSlackByJob = make([]float64, dim)
	st.minSlackWorkerByJob = make([]int, dim)
	st.matchJobByWorker = make([]int, dim)
	st.matchWorkerByJob = make([]int, dim)
	st.parentWorkerByCommittedJob = make([]int, dim)
	st.committedWorkers = make([]bool, dim)
	for i = 0; i < dim; i++ {
		st.matchJobByWorker[i] = none
		st.matchWorkerByJob[i] = none
		st.parentWorkerByCommittedJob[i] = none
		st.minSlackWorkerByJob[i] = none
	}

	return st, nil
}

// slack is the reduced cost of edge (w, j) under the current labels.
func (st *state) slack(w, j int) float64 {
	return st.costRows[w][j] - st.labelByWorker[w] - st.labelByJob[j]
}

// match records the pair (w, j) in both directions.
func (st *state) match(w, j int) {
	st.matchJobByWorker[w] = j
	st.matchWorkerByJob[j] = w
}

// fetchUnmatchedWorker returns the first unmatched worker or dim if none.
func (st *state) fetchUnmatchedWorker() int {
	var w int
	for w = 0; w < st.dim; w++ {
		if st.matchJobByWorker[w] == none {
			break
		}
	}

	return w
}

// transition advances st along one stage edge and returns it.
type transition func(st *state, o *Options) (*state, error)

// transitions maps each non-terminal stage to the function that leaves it.
var transitions = map[Stage]transition{
	StageReducing:           reduceStage,
	StageInitializingLabels: initLabelsStage,
	StageGreedySeeding:      greedyStage,
	StagePhaseRunning:       phaseStage,
}

// isAllowedTransition reports whether from → to is an edge of the stage machine.
func isAllowedTransition(from, to Stage) bool {
	switch from {
	case StageReducing:
		return to == StageInitializingLabels
	case StageInitializingLabels:
		return to == StageGreedySeeding
	case StageGreedySeeding:
		return to == StagePhaseRunning || to == StageDone
	case StagePhaseRunning:
		return to == StagePhaseRunning || to == StageDone
	default:
		return false
	}
}

// afterMatching picks PhaseRunning while an unmatched worker remains, else Done.
func (st *state) afterMatching() Stage {
	if st.fetchUnmatchedWorker() < st.dim {
		return StagePhaseRunning
	}

	return StageDone
}

// reduceStage: Reducing → InitializingLabels.
func reduceStage(st *state, o *Options) (*state, error) {
	if o.Reduce {
		st.reduce()
	}
	st.stage = StageInitializingLabels

	return st, nil
}

// initLabelsStage: InitializingLabels → GreedySeeding.
func initLabelsStage(st *state, _ *Options) (*state, error) {
	st.computeInitialFeasibleSolution()
	st.stage = StageGreedySeeding

	return st, nil
}

// greedyStage: GreedySeeding → PhaseRunning | Done.
func greedyStage(st *state, o *Options) (*state, error) {
	if o.GreedySeed {
		st.greedyMatch()
	}
	st.stage = st.afterMatching()

	return st, nil
}

// phaseStage runs one full phase rooted at the first unmatched worker:
// PhaseRunning → PhaseRunning | Done.
func phaseStage(st *state, o *Options) (*state, error) {
	w := st.fetchUnmatchedWorker()
	if w >= st.dim {
		return st, fmt.Errorf("%w: phase started with a perfect matching", ErrInvariantViolated)
	}
	before := st.matched

	st.initializePhase(w)
	if err := st.executePhase(o); err != nil {
		return st, err
	}
	st.phases++

	if st.matched != before+1 {
		return st, fmt.Errorf("%w: matching grew from %d to %d in one phase", ErrInvariantViolated, before, st.matched)
	}
	o.OnPhase(PhaseEvent{
		Phase:        st.phases,
		Root:         st.root,
		Job:          st.lastJob,
		Matched:      st.matched,
		LabelUpdates: st.labelUpdates,
	})
	st.stage = st.afterMatching()

	return st, nil
}

// costScale returns max(1, max|cost|) over the working matrix.
func (st *state) costScale() float64 {
	scale := 1.0
	st.cost.Do(func(_, _ int, c float64) bool {
		scale = math.Max(scale, math.Abs(c))
		return true
	})

	return scale
}

// checkInvariants verifies matching consistency and, once labels exist,
// dual feasibility within tol·costScale().
//
// Complexity: O(dim²).
func (st *state) checkInvariants(tol float64) error {
	var w, j, count int
	for w = 0; w < st.dim; w++ {
		j = st.matchJobByWorker[w]
		if j == none {
			continue
		}
		if j < 0 || j >= st.dim || st.matchWorkerByJob[j] != w {
			return fmt.Errorf("%w: worker %d → job %d is not mirrored", ErrInvariantViolated, w, j)
		}
		count++
	}
	for j = 0; j < st.dim; j++ {
		w = st.matchWorkerByJob[j]
		if w != none && (w < 0 || w >= st.dim || st.matchJobByWorker[w] != j) {
			return fmt.Errorf("%w: job %d → worker %d is not mirrored", ErrInvariantViolated, j, w)
		}
	}
	if count != st.matched {
		return fmt.Errorf("%w: matching size %d, counter says %d", ErrInvariantViolated, count, st.matched)
	}

	// Labels are meaningful only once they have been initialized.
	if st.stage == StageReducing || st.stage == StageInitializingLabels {
		return nil
	}

	return st.checkDualFeasibility(tol)
}

// checkDualFeasibility reports the first edge whose slack is below
// -tol·costScale().
//
// Complexity: O(dim²).
func (st *state) checkDualFeasibility(tol float64) error {
	var w, j int
	limit := -tol * st.costScale()
	for w = 0; w < st.dim; w++ {
		for j = 0; j < st.dim; j++ {
			if s := st.slack(w, j); s < limit {
				return fmt.Errorf("%w: slack(%d,%d) = %g < 0", ErrInvariantViolated, w, j, s)
			}
		}
	}

	return nil
}
