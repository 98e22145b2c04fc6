package sememeval

import (
	"math/rand/v2"
	"slices"
)

// Sample returns the first n words of a seeded permutation of words.
// n <= 0 or n >= len(words) returns the whole permutation. words is not
// modified.
func Sample(words []string, n int, seed uint64) []string {
	out := slices.Clone(words)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
