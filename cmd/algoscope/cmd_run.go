// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/algoscope/algoscope/services/sorting"
)

// stepSummary tallies a step's commands by kind for the --steps breakdown.
type stepSummary struct {
	compares int
	swaps    int
	writes   int
}

func summarizeStep(step sorting.Step[uint32]) stepSummary {
	var s stepSummary
	for _, c := range step {
		switch c.Kind {
		case sorting.CommandCompare:
			s.compares++
		case sorting.CommandSwap:
			s.swaps++
		case sorting.CommandWrite:
			s.writes++
		}
	}
	return s
}

func runSortCommand(cmd *cobra.Command, args []string) error {
	algs := sorting.Algorithms[uint32]()
	alg, ok := sorting.AlgorithmByName(algs, cfg.Algorithm)
	if !ok {
		return fmt.Errorf("unknown algorithm %q (try 'algoscope algorithms')", cfg.Algorithm)
	}

	input := sorting.KnuthShuffle(sorting.GenSequence(cfg.InputLen), sorting.NewRand(cfg.Seed))
	result := sorting.Run(cmd.Context(), alg, input)

	var commands int
	for _, step := range result.Steps {
		commands += len(step)
	}

	var duration time.Duration
	if result.Duration != nil {
		duration = *result.Duration
	}

	logger.Info("run finished",
		"algorithm", alg.Name,
		"input_len", cfg.InputLen,
		"seed", cfg.Seed,
		"steps", len(result.Steps),
		"commands", commands,
		"duration", duration,
	)

	if showSteps {
		for i, step := range result.Steps {
			s := summarizeStep(step)
			fmt.Fprintf(cmd.OutOrStdout(), "step %3d: %3d compares  %3d swaps  %3d writes\n",
				i+1, s.compares, s.swaps, s.writes)
		}
	}

	return nil
}
