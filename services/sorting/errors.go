// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import "errors"

// Sentinel errors for the sorting service. These are caller-contract
// violations (a bad prefix length or a malformed step log), never
// recoverable runtime conditions: retrying the same call with the same
// arguments cannot succeed.
var (
	// ErrStepOutOfRange indicates a replay prefix length outside the
	// valid range [0, len(steps)].
	ErrStepOutOfRange = errors.New("step prefix out of range")

	// ErrIndexOutOfRange indicates a command referenced a sequence
	// position outside [0, len(input)). Only an externally-constructed or
	// corrupted step log can trigger this; logs recorded by this package
	// always address within bounds.
	ErrIndexOutOfRange = errors.New("command index out of range")

	// ErrUnknownCommand indicates a command kind outside the closed set.
	ErrUnknownCommand = errors.New("unknown command kind")
)
