// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenSequence(t *testing.T) {
	assert.Empty(t, GenSequence(0))
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, GenSequence(5))
}

func TestKnuthShuffle_Permutation(t *testing.T) {
	seq := GenSequence(100)
	shuffled := KnuthShuffle(seq, NewRand(1))

	assert.Equal(t, GenSequence(100), seq, "shuffle must not modify its input")

	sorted := slices.Clone(shuffled)
	slices.Sort(sorted)
	assert.Equal(t, seq, sorted, "shuffle must be a permutation")
}

func TestKnuthShuffle_DeterministicPerSeed(t *testing.T) {
	seq := GenSequence(50)

	first := KnuthShuffle(seq, NewRand(42))
	second := KnuthShuffle(seq, NewRand(42))
	assert.Equal(t, first, second, "same seed, same shuffle")

	other := KnuthShuffle(seq, NewRand(43))
	assert.NotEqual(t, first, other, "different seeds should diverge for n=50")
}

func TestKnuthShuffle_SmallInputs(t *testing.T) {
	rng := NewRand(0)
	require.Empty(t, KnuthShuffle([]uint32{}, rng))
	assert.Equal(t, []uint32{9}, KnuthShuffle([]uint32{9}, rng))
}
