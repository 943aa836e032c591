// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import (
	"cmp"
	"fmt"
	"slices"
)

// Replay reconstructs the state of input after the first prefixLen steps
// of a step log, by applying every command in order: Swap and Write
// mutate, Compare is inert.
//
// # Description
//
// Replay starts from a fresh copy of input and never mutates the caller's
// slice. Replay(input, steps, 0) returns input unchanged;
// Replay(input, steps, len(steps)) equals the recorded output of the
// algorithm that produced the log. It is a pure function: arbitrarily
// many replays over the same (input, steps) pair may run concurrently,
// each returning an independently allocated slice.
//
// # Errors
//
// A prefixLen outside [0, len(steps)] fails with ErrStepOutOfRange. A
// command addressing a position outside the sequence fails with
// ErrIndexOutOfRange. Both indicate caller error or a corrupted log;
// Replay fails loudly rather than guess at a plausible state. Callers
// driving a UI cursor should clamp before calling.
func Replay[T cmp.Ordered](input []T, steps []Step[T], prefixLen int) ([]T, error) {
	if prefixLen < 0 || prefixLen > len(steps) {
		return nil, fmt.Errorf("replay prefix %d of %d steps: %w", prefixLen, len(steps), ErrStepOutOfRange)
	}

	out := slices.Clone(input)
	for si, step := range steps[:prefixLen] {
		for ci, c := range step {
			if c.I < 0 || c.I >= len(out) {
				return nil, fmt.Errorf("step %d command %d (%s i=%d): %w", si, ci, c.Kind, c.I, ErrIndexOutOfRange)
			}
			switch c.Kind {
			case CommandCompare:
				// Observation only; j is validated for log integrity.
				if c.J < 0 || c.J >= len(out) {
					return nil, fmt.Errorf("step %d command %d (%s j=%d): %w", si, ci, c.Kind, c.J, ErrIndexOutOfRange)
				}
			case CommandSwap:
				if c.J < 0 || c.J >= len(out) {
					return nil, fmt.Errorf("step %d command %d (%s j=%d): %w", si, ci, c.Kind, c.J, ErrIndexOutOfRange)
				}
				out[c.I], out[c.J] = out[c.J], out[c.I]
			case CommandWrite:
				out[c.I] = c.Value
			default:
				return nil, fmt.Errorf("step %d command %d kind %d: %w", si, ci, int(c.Kind), ErrUnknownCommand)
			}
		}
	}
	return out, nil
}
