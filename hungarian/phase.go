// SPDX-License-Identifier: MIT

// Package hungarian - one phase of the primal-dual search.
//
// A phase builds a set of committed workers and committed jobs from a root
// unmatched worker by following alternating unmatched/matched zero-slack
// edges. When the zero-slack frontier is exhausted the labels of committed
// workers rise (and those of committed jobs fall) by the minimum slack between
// committed workers and uncommitted jobs, which keeps every slack ≥ 0 and
// creates at least one new zero-slack edge. Reaching an unmatched job yields
// an augmenting path; flipping it grows the matching by one.
//
// Complexity per phase: O(dim²). Min-slack records make each label update O(dim).
package hungarian

import (
	"fmt"
	"math"
)

// initializePhase clears the committed sets and seeds the min-slack records
// from the root worker w.
func (st *state) initializePhase(w int) {
	var k, j int
	for k = 0; k < st.dim; k++ {
		st.committedWorkers[k] = false
		st.parentWorkerByCommittedJob[k] = none
	}
	st.committedWorkers[w] = true
	for j = 0; j < st.dim; j++ {
		st.minSlackByJob[j] = st.slack(w, j)
		st.minSlackWorkerByJob[j] = w
	}
	st.root = w
	st.lastJob = none
	st.labelUpdates = 0
}

// executePhase grows the search tree until an augmenting path is found and
// flipped. It fails only if no uncommitted job is left, which cannot happen
// while the root is unmatched, or, under o.CheckInvariants, when a label
// update leaves a negative slack.
func (st *state) executePhase(o *Options) error {
	var (
		j, worker, minJob, minWorker int
		minValue, s                  float64
	)
	for {
		minWorker, minJob = none, none
		minValue = math.Inf(1)
		for j = 0; j < st.dim; j++ {
			if st.parentWorkerByCommittedJob[j] == none && st.minSlackByJob[j] < minValue {
				minValue = st.minSlackByJob[j]
				minWorker = st.minSlackWorkerByJob[j]
				minJob = j
			}
		}
		if minJob == none {
			return fmt.Errorf("%w: no uncommitted job left in phase rooted at %d", ErrInvariantViolated, st.root)
		}
		if minValue > 0 {
			st.updateLabeling(minValue)
			if st.onLabelUpdate != nil {
				st.onLabelUpdate()
			}
			if o.CheckInvariants {
				if err := st.checkDualFeasibility(o.FeasibilityTolerance); err != nil {
					return fmt.Errorf("after label update %d: %w", st.labelUpdates, err)
				}
			}
		}
		st.parentWorkerByCommittedJob[minJob] = minWorker

		if st.matchWorkerByJob[minJob] == none {
			st.augment(minJob)
			return nil
		}

		// Commit the worker behind minJob and fold its slacks in.
		worker = st.matchWorkerByJob[minJob]
		st.committedWorkers[worker] = true
		for j = 0; j < st.dim; j++ {
			if st.parentWorkerByCommittedJob[j] == none {
				s = st.slack(worker, j)
				if st.minSlackByJob[j] > s {
					st.minSlackByJob[j] = s
					st.minSlackWorkerByJob[j] = worker
				}
			}
		}
	}
}

// augment flips the alternating path that ends at the unmatched job j,
// walking parent pointers back to the phase root.
func (st *state) augment(j int) {
	st.lastJob = j
	committedJob := j
	parentWorker := st.parentWorkerByCommittedJob[committedJob]
	var next int
	for {
		next = st.matchJobByWorker[parentWorker]
		st.match(parentWorker, committedJob)
		committedJob = next
		if committedJob == none {
			break
		}
		parentWorker = st.parentWorkerByCommittedJob[committedJob]
	}
	st.matched++
}

// updateLabeling raises committed worker labels and lowers committed job
// labels by slack, and lowers the min-slack record of every uncommitted job
// by the same amount.
func (st *state) updateLabeling(slack float64) {
	var w, j int
	for w = 0; w < st.dim; w++ {
		if st.committedWorkers[w] {
			st.labelByWorker[w] += slack
		}
	}
	for j = 0; j < st.dim; j++ {
		if st.parentWorkerByCommittedJob[j] != none {
			st.labelByJob[j] -= slack
		} else {
			st.minSlackByJob[j] -= slack
		}
	}
	st.labelUpdates++
}
