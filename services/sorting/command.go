// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package sorting instruments comparison-based sorting algorithms so that
// every elementary operation they perform is captured as a discrete,
// replayable command instead of being applied silently.
//
// # Description
//
// Each algorithm in this package is a pure function from an input slice to
// its sorted output plus a step log: an ordered record of every Compare,
// Swap, and Write the algorithm performed. Replaying any prefix of the log
// against the original input reconstructs the exact intermediate state of
// the sequence at that point, without re-running the algorithm. This is
// what the TUI scrubber and any other inspection layer are built on.
//
// # Thread Safety
//
// All exported functions are pure. Sort functions, Run, and Replay share
// no mutable state and are safe to call concurrently with independent or
// identical arguments.
package sorting

import "cmp"

// CommandKind discriminates the elementary operations an instrumented
// algorithm can record. The set is closed: Replay matches it exhaustively,
// so a new kind requires updating the interpreter in lockstep.
type CommandKind int

const (
	// CommandCompare records that two positions were compared.
	// It never changes state; replay treats it as a no-op.
	CommandCompare CommandKind = iota

	// CommandSwap exchanges the values at two positions.
	CommandSwap

	// CommandWrite overwrites one position with a captured value.
	// Merge-based strategies need this because they place elements from an
	// auxiliary buffer rather than exchanging in place.
	CommandWrite
)

// String returns the human-readable name of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandCompare:
		return "compare"
	case CommandSwap:
		return "swap"
	case CommandWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Command is one elementary, replayable operation on an indexed sequence.
//
// I and J are zero-based indices into the original input. No algorithm in
// this package changes the sequence length, so indices never need
// remapping. J is meaningful for Compare and Swap; Value is meaningful
// only for Write.
type Command[T cmp.Ordered] struct {
	Kind  CommandKind
	I, J  int
	Value T
}

// Compare builds a comparison record between positions i and j.
func Compare[T cmp.Ordered](i, j int) Command[T] {
	return Command[T]{Kind: CommandCompare, I: i, J: j}
}

// Swap builds an exchange of the values at positions i and j.
func Swap[T cmp.Ordered](i, j int) Command[T] {
	return Command[T]{Kind: CommandSwap, I: i, J: j}
}

// Write builds an overwrite of position i with value v.
func Write[T cmp.Ordered](i int, v T) Command[T] {
	return Command[T]{Kind: CommandWrite, I: i, Value: v}
}

// Step is a non-empty, ordered group of commands treated as one unit of
// algorithm progress: one bubble pass, one insertion walk, one merge.
// Grouping is a pacing choice for visualization; concatenating all steps
// in order and replaying them always reproduces the final output.
type Step[T cmp.Ordered] []Command[T]
