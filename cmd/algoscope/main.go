// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command algoscope records and visualizes sorting algorithms step by step.
//
// Usage:
//
//	algoscope algorithms
//	algoscope run --algorithm "Merge sort" --input-len 64 --seed 7
//	algoscope viz
//
// Every run is deterministic for a given seed: the same shuffled input,
// the same output, and an identical step log.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
