// Package lvassign is an exact solver for the rectangular assignment
// problem: match workers to jobs so that the total cost is minimal.
//
// 🚀 What is lvassign?
//
//	A small, dependency-light library and command built around one
//	algorithm done carefully:
//		• hungarian/ the primal-dual (Kuhn–Munkres) solver, O(n³)
//		• matrix/    Dense cost tables and a fixed-rank Array[T]
//		• cmd/lvassign a CLI that reads YAML/JSON problems and prints reports
//
// ✨ Why lvassign?
//
//   - Exact – optimal for any finite costs, negative values included
//   - Rectangular – fewer jobs than workers leaves workers Unassigned
//   - Auditable – an explicit stage machine with opt-in invariant checks
//   - Quiet by default – diagnostics go through an injected logr.Logger
//
// Quick start:
//
//	res, err := hungarian.SolveSlices([][]float64{
//		{4, 1.5, 4},
//		{4, 4.5, 6},
//		{3, 2.25, 3},
//	})
//	// res.Jobs == []int{1, 0, 2}, res.Cost == 8.5
//
// From the shell:
//
//	echo '[[1,5],[2,3]]' | lvassign --maximize -o json
//
// See the package docs of hungarian and matrix for details.
package lvassign
