// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import "cmp"

// Algorithm names as surfaced in the CLI, the TUI picker, and metrics
// labels. Stable; treat as part of the public surface.
const (
	NameBubbleSort    = "Bubble sort"
	NameInsertionSort = "Insertion sort"
	NameMergeSort     = "Merge sort"
)

// SortOutput bundles an algorithm's result: the sorted sequence and the
// step log that produced it. Replaying the full log against the input
// yields Output element-for-element.
type SortOutput[T cmp.Ordered] struct {
	Output []T
	Steps  []Step[T]
}

// SortFunc is the contract every instrumented algorithm satisfies.
//
// Implementations must not mutate the input slice, must be total over all
// finite inputs (including empty), and must be deterministic: the same
// input always yields the same output and an identical step log.
type SortFunc[T cmp.Ordered] func(input []T) SortOutput[T]

// Algorithm pairs a stable display name with its sort function.
type Algorithm[T cmp.Ordered] struct {
	Name string
	Sort SortFunc[T]
}

// Algorithms returns the ordered list of instrumented algorithms. The set
// is fixed and small, so callers hold the returned slice as their own
// configuration value; there is no process-wide registry to mutate.
func Algorithms[T cmp.Ordered]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: NameBubbleSort, Sort: BubbleSort[T]},
		{Name: NameInsertionSort, Sort: InsertionSort[T]},
		{Name: NameMergeSort, Sort: MergeSort[T]},
	}
}

// AlgorithmByName looks up an algorithm in a caller-held list.
func AlgorithmByName[T cmp.Ordered](algs []Algorithm[T], name string) (Algorithm[T], bool) {
	for _, alg := range algs {
		if alg.Name == name {
			return alg, true
		}
	}
	return Algorithm[T]{}, false
}
