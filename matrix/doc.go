// Package matrix provides the dense numeric containers used by lvassign.
//
// The matrix package provides:
//
//   - Matrix, a small interface over any rectangular float64 grid with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation over a flat buffer (offset i*c + j)
//     with a finite-only numeric policy and nested-literal construction.
//   - Array[T], a fixed-rank container of any element type described by an
//     explicit extent list and a stride vector over one flat buffer.
//   - Validators shared by consumers (nil, square, finite, rectangular).
//
// Dense matrices cost O(r·c) memory and are meant for fully populated data
// such as assignment cost tables.
//
// See example_test.go for usage patterns.
package matrix
