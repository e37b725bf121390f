// Package board - deterministic shuffling for tile placement.
//
// math/rand.Rand is not goroutine-safe; each New/Reset builds its own stream.
package board

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffle performs an in-place Fisher–Yates shuffle of n elements via swap.
// Complexity: O(n) time, O(1) extra space.
func shuffle(n int, r *rand.Rand, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}
