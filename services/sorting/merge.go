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

// MergeSort splits the sequence recursively, sorts the halves, and merges
// them through auxiliary buffers. Recursion is post-order: the left half's
// steps land in the log before the right half's, which land before the
// merge that combines them. Replay depends on that ordering.
//
// Each merge of two runs is one step. Its commands are a Compare between
// the runs' current heads (addressed at their pre-merge positions) and a
// Write per element placed into its final merged position. Merging never
// swaps: sources live in the auxiliary copies, destinations in the
// sequence itself.
func MergeSort[T cmp.Ordered](input []T) SortOutput[T] {
	out := slices.Clone(input)
	rec := newStepRecorder[T]()
	mergeSortRange(out, 0, len(out), rec)
	return SortOutput[T]{Output: out, Steps: rec.finish()}
}

func mergeSortRange[T cmp.Ordered](a []T, lo, hi int, rec *stepRecorder[T]) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSortRange(a, lo, mid, rec)
	mergeSortRange(a, mid, hi, rec)
	mergeRuns(a, lo, mid, hi, rec)
}

// mergeRuns merges the sorted runs a[lo:mid] and a[mid:hi] in place.
// Ties take the left head, keeping equal elements in their original
// relative order.
func mergeRuns[T cmp.Ordered](a []T, lo, mid, hi int, rec *stepRecorder[T]) {
	left := slices.Clone(a[lo:mid])
	right := slices.Clone(a[mid:hi])

	li, ri := 0, 0
	for k := lo; k < hi; k++ {
		switch {
		case li == len(left):
			rec.write(a, k, right[ri])
			ri++
		case ri == len(right):
			rec.write(a, k, left[li])
			li++
		default:
			rec.compare(lo+li, mid+ri)
			if right[ri] < left[li] {
				rec.write(a, k, right[ri])
				ri++
			} else {
				rec.write(a, k, left[li])
				li++
			}
		}
	}
	rec.endStep()
}
