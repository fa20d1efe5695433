// Package rng provides the seeded pseudo-random generator and shuffle
// shared with the game frontend. The frontend recomputes the same
// permutation independently, so every operation here must stay bit-exact
// across implementations: all arithmetic is fixed-width uint32 with
// natural wraparound.
package rng

import "math"

// stateIncrement is the additive constant applied to the state before
// each draw (mulberry32).
const stateIncrement = 0x6D2B79F5

// Source is a deterministic 32-bit generator producing floats in [0, 1].
// The zero value is a valid source seeded with 0.
type Source struct {
	state uint32
}

// New returns a Source seeded with seed. Identical seeds always yield
// identical sequences.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Float64 advances the state and returns the next value, normalized by
// 2^32-1.
func (s *Source) Float64() float64 {
	s.state += stateIncrement
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / float64(math.MaxUint32)
}

// Shuffle returns a seeded Fisher-Yates permutation of items. The input
// slice is never modified; the permutation depends only on the input
// order and the seed.
func Shuffle[T any](items []T, seed uint32) []T {
	out := make([]T, len(items))
	copy(out, items)

	src := New(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
