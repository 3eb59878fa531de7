// SPDX-License-Identifier: MIT

package hungarian

import "math"

// reduce subtracts the smallest element of each row from that row, then the
// smallest element of each column from that column. An optimal assignment of
// the reduced matrix is optimal for the original one.
//
// Complexity: O(dim²).
func (st *state) reduce() {
	var (
		w, j   int
		rowMin float64
		row    []float64
	)
	for w = 0; w < st.dim; w++ {
		row = st.costRows[w]
		rowMin = math.Inf(1)
		for j = 0; j < st.dim; j++ {
			if row[j] < rowMin {
				rowMin = row[j]
			}
		}
		for j = 0; j < st.dim; j++ {
			row[j] -= rowMin
		}
	}

	colMin := make([]float64, st.dim)
	for j = 0; j < st.dim; j++ {
		colMin[j] = math.Inf(1)
	}
	for w = 0; w < st.dim; w++ {
		row = st.costRows[w]
		for j = 0; j < st.dim; j++ {
			if row[j] < colMin[j] {
				colMin[j] = row[j]
			}
		}
	}
	for w = 0; w < st.dim; w++ {
		row = st.costRows[w]
		for j = 0; j < st.dim; j++ {
			row[j] -= colMin[j]
		}
	}
}

// computeInitialFeasibleSolution assigns zero labels to workers and, to each
// job, the minimum cost among its incident edges. Every slack is then ≥ 0.
//
// Complexity: O(dim²).
func (st *state) computeInitialFeasibleSolution() {
	var w, j int
	for j = 0; j < st.dim; j++ {
		st.labelByJob[j] = math.Inf(1)
	}
	for w = 0; w < st.dim; w++ {
		st.labelByWorker[w] = 0
		for j = 0; j < st.dim; j++ {
			if st.costRows[w][j] < st.labelByJob[j] {
				st.labelByJob[j] = st.costRows[w][j]
			}
		}
	}
}

// greedyMatch seeds the matching with zero-slack edges, scanning (w, j) in
// row-major order and taking every edge whose endpoints are both free.
//
// Complexity: O(dim²).
func (st *state) greedyMatch() {
	var w, j int
	for w = 0; w < st.dim; w++ {
		for j = 0; j < st.dim; j++ {
			if st.matchJobByWorker[w] == none &&
				st.matchWorkerByJob[j] == none &&
				st.slack(w, j) == 0 {
				st.match(w, j)
				st.matched++
			}
		}
	}
}
