package linkpath_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lianlian/grid"
	"github.com/katalvlaran/lianlian/linkpath"
)

// BenchmarkFindPath queries every occupied pair of a half-full 20×20 board.
// Complexity per query: O(R + C).
func BenchmarkFindPath(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(rng, 20, 20, 0.5)
	cells := occupiedCells(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := cells[i%len(cells)]
		c := cells[(i*7+1)%len(cells)]
		if a == c {
			continue
		}
		_, _ = linkpath.FindPath(g, a, c)
	}
}

// BenchmarkFindPath_WorstCase forces every class to be tried and fail on a
// full board.
func BenchmarkFindPath_WorstCase(b *testing.B) {
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = "####################"
	}
	g := grid.MustParse(rows...)
	a, c := grid.At(5, 5), grid.At(14, 14)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linkpath.FindPath(g, a, c)
	}
}
