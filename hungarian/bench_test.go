// SPDX-License-Identifier: MIT

package hungarian_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvassign/hungarian"
)

// BenchmarkSolve measures the full pipeline on random square and
// rectangular instances. Inputs are built outside the timer.
func BenchmarkSolve(b *testing.B) {
	shapes := [][2]int{{10, 10}, {50, 50}, {100, 100}, {200, 150}, {150, 200}}
	for _, sh := range shapes {
		rng := rand.New(rand.NewSource(seedDet))
		costs := randomCosts(rng, sh[0], sh[1], false)

		b.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				if _, err := hungarian.SolveSlices(costs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolve_NoGreedy isolates the cost of running every phase.
func BenchmarkSolve_NoGreedy(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	costs := randomCosts(rng, 100, 100, true)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err := hungarian.SolveSlices(costs, hungarian.WithoutGreedySeed()); err != nil {
			b.Fatal(err)
		}
	}
}
