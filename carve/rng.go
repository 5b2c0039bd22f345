// Package carve - deterministic randomness for position selection.
//
// This file centralizes the only random stream the carver consults.
//
// Goals:
//   - Determinism: same seed ⇒ identical carve across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Safety: no panics or logging in the helpers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each carve builds its own
//     stream and never shares it.
package carve

import "math/rand"

// defaultCarveSeed is the fixed "zero" seed used when Options.Seed == 0.
// It matches the seed the original cached-puzzle generator pinned, so
// unseeded runs reproduce the historical artifact stream.
const defaultCarveSeed int64 = 42

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultCarveSeed; otherwise the seed is used
// verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultCarveSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIndicesInPlace performs an in-place Fisher–Yates shuffle of a
// using rng. A nil rng falls back to the default stream (seed==0 policy).
// Complexity: O(n) time, O(1) extra space.
func shuffleIndicesInPlace(a []int, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// shuffledIndices returns a permutation of 0..n-1 drawn from rng.
// Complexity: O(n) time and space.
func shuffledIndices(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIndicesInPlace(p, rng)

	return p
}
