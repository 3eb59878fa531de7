// SPDX-License-Identifier: MIT

package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/hungarian"
)

// costTol absorbs FP drift when comparing totals.
const costTol = 1e-9

// totalCost sums costs[w][jobs[w]] over assigned workers.
func totalCost(costs [][]float64, jobs []int) float64 {
	var sum float64
	for w, j := range jobs {
		if j != hungarian.Unassigned {
			sum += costs[w][j]
		}
	}

	return sum
}

// bruteForce returns the optimal total over all assignments of
// min(rows, cols) pairs. Exponential; keep n ≤ 6.
func bruteForce(costs [][]float64, maximize bool) float64 {
	rows, cols := len(costs), len(costs[0])
	skips := 0 // how many workers may stay without a job
	if rows > cols {
		skips = rows - cols
	}
	used := make([]bool, cols)
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}

	var rec func(w, skipsLeft int, acc float64)
	rec = func(w, skipsLeft int, acc float64) {
		if w == rows {
			if (maximize && acc > best) || (!maximize && acc < best) {
				best = acc
			}
			return
		}
		var j int
		for j = 0; j < cols; j++ {
			if !used[j] {
				used[j] = true
				rec(w+1, skipsLeft, acc+costs[w][j])
				used[j] = false
			}
		}
		if skipsLeft > 0 {
			rec(w+1, skipsLeft-1, acc)
		}
	}
	rec(0, skips, 0)

	return best
}

// randomCosts builds a rows×cols matrix. integral=true draws from {−5..20}
// so that ties are frequent; otherwise uniform reals in [−10, 10).
func randomCosts(rng *rand.Rand, rows, cols int, integral bool) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			if integral {
				out[i][j] = float64(rng.Intn(26) - 5)
			} else {
				out[i][j] = rng.Float64()*20 - 10
			}
		}
	}

	return out
}

// requireValidAssignment checks the structural guarantees of a result:
// length, range, no duplicate jobs and the exact count of Unassigned.
func requireValidAssignment(t *testing.T, rows, cols int, res hungarian.Result) {
	t.Helper()
	require.Len(t, res.Jobs, rows, "one entry per worker")

	seen := make(map[int]bool, cols)
	unassigned := 0
	for w, j := range res.Jobs {
		if j == hungarian.Unassigned {
			unassigned++
			continue
		}
		require.GreaterOrEqual(t, j, 0, "worker %d job index", w)
		require.Less(t, j, cols, "worker %d job index", w)
		require.False(t, seen[j], "job %d assigned twice", j)
		seen[j] = true
	}

	wantUnassigned := 0
	if rows > cols {
		wantUnassigned = rows - cols
	}
	require.Equal(t, wantUnassigned, unassigned, "unassigned workers")
}
