// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import "cmp"

// stepRecorder collects commands for the step under construction and
// applies the mutating ones to the working slice, so the algorithm body
// never mutates state without leaving a record of it.
//
// Not safe for concurrent use; each sort invocation owns its recorder.
type stepRecorder[T cmp.Ordered] struct {
	steps []Step[T]
	cur   Step[T]
}

func newStepRecorder[T cmp.Ordered]() *stepRecorder[T] {
	return &stepRecorder[T]{}
}

// compare records a comparison between positions i and j.
func (r *stepRecorder[T]) compare(i, j int) {
	r.cur = append(r.cur, Compare[T](i, j))
}

// swap exchanges a[i] and a[j] and records the exchange.
func (r *stepRecorder[T]) swap(a []T, i, j int) {
	a[i], a[j] = a[j], a[i]
	r.cur = append(r.cur, Swap[T](i, j))
}

// write sets a[i] = v and records the overwrite.
func (r *stepRecorder[T]) write(a []T, i int, v T) {
	a[i] = v
	r.cur = append(r.cur, Write(i, v))
}

// endStep closes the step under construction. A step with no commands is
// discarded rather than logged: steps are non-empty by definition.
func (r *stepRecorder[T]) endStep() {
	if len(r.cur) == 0 {
		return
	}
	r.steps = append(r.steps, r.cur)
	r.cur = nil
}

// finish returns the completed step log. Any open step is closed first.
func (r *stepRecorder[T]) finish() []Step[T] {
	r.endStep()
	return r.steps
}
