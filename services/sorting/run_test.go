// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock hands out scripted instants, one per Now call.
type fakeClock struct {
	instants []time.Time
	calls    int
}

func (c *fakeClock) Now() time.Time {
	t := c.instants[c.calls]
	c.calls++
	return t
}

func TestRunner_MeasuresSortOnly(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{instants: []time.Time{base, base.Add(250 * time.Millisecond)}}

	alg, ok := AlgorithmByName(Algorithms[uint32](), NameBubbleSort)
	require.True(t, ok)

	result := Runner[uint32]{Clock: clock}.Run(context.Background(), alg, []uint32{5, 3, 8, 1})

	require.NotNil(t, result.Duration)
	assert.Equal(t, 250*time.Millisecond, *result.Duration)
	assert.Equal(t, 2, clock.calls, "exactly one measurement around the sort call")
	assert.Equal(t, []uint32{1, 3, 5, 8}, result.Output)
	assert.NotEmpty(t, result.Steps)
}

func TestRunner_NilClockSkipsTiming(t *testing.T) {
	alg, ok := AlgorithmByName(Algorithms[uint32](), NameInsertionSort)
	require.True(t, ok)

	result := Runner[uint32]{}.Run(context.Background(), alg, []uint32{3, 1, 2})

	assert.Nil(t, result.Duration)
	assert.Equal(t, []uint32{1, 2, 3}, result.Output)
}

func TestRunner_ResultOwnsItsInput(t *testing.T) {
	alg, ok := AlgorithmByName(Algorithms[uint32](), NameMergeSort)
	require.True(t, ok)

	input := []uint32{4, 2, 4, 1}
	result := Run(context.Background(), alg, input)

	input[0] = 99
	assert.Equal(t, []uint32{4, 2, 4, 1}, result.Input, "result keeps its own copy of the input")
}

func TestRunner_ReplayAgainstResult(t *testing.T) {
	for _, alg := range Algorithms[uint32]() {
		input := KnuthShuffle(GenSequence(20), NewRand(9))
		result := Run(context.Background(), alg, input)

		state, err := Replay(result.Input, result.Steps, len(result.Steps))
		require.NoError(t, err)
		assert.Equal(t, result.Output, state, "%s", alg.Name)
	}
}

func TestRunner_EmptyInput(t *testing.T) {
	alg, ok := AlgorithmByName(Algorithms[uint32](), NameBubbleSort)
	require.True(t, ok)

	result := Run(context.Background(), alg, []uint32{})
	assert.Empty(t, result.Output)
	assert.Empty(t, result.Steps)
	assert.NotNil(t, result.Duration)
}
