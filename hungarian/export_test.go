// SPDX-License-Identifier: MIT

package hungarian

// Test-Bridge (White-Box) for solver internals.
//
// Compiled only under `go test`; exposes read-only snapshots of the state so
// hungarian_test can audit labels, matching and stage edges without widening
// the production API.

// IsAllowedTransitionForTest exposes the stage-machine edge predicate.
var IsAllowedTransitionForTest = isAllowedTransition

// Snapshot is a detached copy of the solver state.
type Snapshot struct {
	Dim              int
	Cost             [][]float64
	LabelByWorker    []float64
	LabelByJob       []float64
	MatchJobByWorker []int
	MatchWorkerByJob []int
	Matched          int
}

// SnapshotForTest copies the current state of s.
func (s *Solver) SnapshotForTest() Snapshot {
	st := s.st
	cost := make([][]float64, st.dim)
	for i, row := range st.costRows {
		cost[i] = append([]float64(nil), row...)
	}

	return Snapshot{
		Dim:              st.dim,
		Cost:             cost,
		LabelByWorker:    append([]float64(nil), st.labelByWorker...),
		LabelByJob:       append([]float64(nil), st.labelByJob...),
		MatchJobByWorker: append([]int(nil), st.matchJobByWorker...),
		MatchWorkerByJob: append([]int(nil), st.matchWorkerByJob...),
		Matched:          st.matched,
	}
}

// CheckInvariantsForTest runs the internal invariant check with tol.
func (s *Solver) CheckInvariantsForTest(tol float64) error {
	return s.st.checkInvariants(tol)
}

// CorruptLabelForTest shifts a job label by delta; delta > 0 breaks dual feasibility.
func (s *Solver) CorruptLabelForTest(j int, delta float64) {
	s.st.labelByJob[j] += delta
}

// OnLabelUpdateForTest installs f to run after every label update inside a phase,
// before the optional feasibility audit.
func (s *Solver) OnLabelUpdateForTest(f func()) {
	s.st.onLabelUpdate = f
}

// NoneForTest is the internal "no match" marker.
const NoneForTest = none
