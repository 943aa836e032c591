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

// InsertionSort admits one element at a time into the sorted prefix. Each
// admission is one step: the element walks leftward with a Compare per
// neighbor and a Swap per inversion, stopping at the first neighbor it is
// not smaller than. Equal elements never swap, so ties keep their
// original relative order.
func InsertionSort[T cmp.Ordered](input []T) SortOutput[T] {
	out := slices.Clone(input)
	rec := newStepRecorder[T]()

	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			rec.compare(j-1, j)
			if out[j] >= out[j-1] {
				break
			}
			rec.swap(out, j-1, j)
		}
		rec.endStep()
	}

	return SortOutput[T]{Output: out, Steps: rec.finish()}
}
