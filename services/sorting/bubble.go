// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import (
	"cmp"
	"slices"
)

// BubbleSort sorts by repeated adjacent-pair scans. Each full pass over
// the unsettled prefix is one step: a Compare per pair examined, and a
// Swap immediately after any comparison that found an inversion.
//
// The scan stops early once a pass performs no swap. The log produced up
// to that point is still complete; the final swap-free pass is logged too,
// since its comparisons are the evidence that sorting is established.
func BubbleSort[T cmp.Ordered](input []T) SortOutput[T] {
	out := slices.Clone(input)
	rec := newStepRecorder[T]()

	for end := len(out); end > 1; end-- {
		swapped := false
		for i := 0; i+1 < end; i++ {
			rec.compare(i, i+1)
			if out[i+1] < out[i] {
				rec.swap(out, i, i+1)
				swapped = true
			}
		}
		rec.endStep()
		if !swapped {
			break
		}
	}

	return SortOutput[T]{Output: out, Steps: rec.finish()}
}
