// Package hungarian solves the rectangular assignment problem exactly:
// given a cost for every (worker, job) pair, find the matching of minimum
// total cost in which no worker takes two jobs and no job goes to two workers.
//
// 🚀 What is the assignment problem?
//
//	A rows×cols cost matrix C gives the price of letting worker i do job j.
//	The solver picks at most one job per worker and at most one worker per
//	job so that as many pairs as possible are formed (min(rows, cols)) and
//	their total cost is minimal. Typical uses:
//	  • tracking: clusters ↔ tracks, detections ↔ objects
//	  • scheduling: tasks ↔ machines, shifts ↔ staff
//	  • logistics: vehicles ↔ orders, drones ↔ charge points
//
// ✨ Key features:
//   - exact primal-dual (Kuhn–Munkres / Jonker–Volgenant style) in O(n³)
//     time and O(n²) memory, n = max(rows, cols);
//   - rectangular input via zero-cost padding; workers left without a job
//     are reported as Unassigned (only when rows > cols);
//   - minimisation by default, maximisation with WithMaximize;
//   - explicit stage machine (Step/Stage) and optional invariant checks
//     for auditing every transition;
//   - structured diagnostics through an injected logr.Logger.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvassign/hungarian"
//
//	res, err := hungarian.SolveSlices([][]float64{
//	  {4, 1.5, 4},
//	  {4, 4.5, 6},
//	  {3, 2.25, 3},
//	})
//	// res.Jobs == []int{1, 0, 2}, res.Cost == 8.5
//
// Algorithm outline:
//  1. Pad the matrix to n×n with zeros.
//  2. Reduce rows, then columns, by their minima.
//  3. Labels: worker labels 0, job labels = column minima (dual feasible).
//  4. Greedy seed: take zero-slack edges whose endpoints are free.
//  5. While a worker is unmatched, run a phase: grow an alternating tree
//     from it, adjusting labels by the minimum slack until an unmatched job
//     is reached, then flip the augmenting path.
//  6. Project back: padding jobs become Unassigned.
//
// Each phase costs O(n²) and adds exactly one pair; at most n phases run.
//
// A Solver is single-shot: a second Execute returns ErrAlreadyExecuted.
//
// See example_test.go for runnable examples.
package hungarian
