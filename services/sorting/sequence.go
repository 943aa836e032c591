// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import "math/rand/v2"

// GenSequence returns the values 1..n in ascending order. Shuffled, it is
// the standard visualizer input: every bar height distinct, the sorted
// target known by construction.
func GenSequence(n int) []uint32 {
	seq := make([]uint32, n)
	for i := range seq {
		seq[i] = uint32(i + 1)
	}
	return seq
}

// NewRand returns a deterministic generator for the given seed. The same
// seed always yields the same shuffle, which keeps runs reproducible.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// KnuthShuffle returns a Fisher-Yates shuffle of seq drawn from rng. The
// input slice is not modified.
func KnuthShuffle[T any](seq []T, rng *rand.Rand) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
