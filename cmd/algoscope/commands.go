// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algoscope/algoscope/pkg/logging"
	"github.com/algoscope/algoscope/services/sorting/config"
)

// --- Global Command Variables ---
var (
	configPath    string
	algorithmName string
	inputLen      int
	seed          uint64
	showSteps     bool
	jsonLogs      bool

	cfg    config.Config
	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "algoscope",
		Short: "Record and scrub through sorting algorithms step by step",
		Long: `Algoscope runs instrumented sorting algorithms that log every
comparison, swap, and write they perform. The log replays to any
intermediate state, which the viz command turns into an interactive
bar-graph scrubber.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags set on the command line win over the config file.
			if cmd.Flags().Changed("algorithm") {
				cfg.Algorithm = algorithmName
			}
			if cmd.Flags().Changed("input-len") {
				cfg.InputLen = inputLen
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger = logging.New(logging.Config{
				Level:   logging.ParseLevel(cfg.LogLevel),
				Service: "cli",
				JSON:    jsonLogs,
			})
			return nil
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run one instrumented sort and log its summary",
		RunE:  runSortCommand, // Defined in cmd_run.go
	}

	algorithmsCmd = &cobra.Command{
		Use:     "algorithms",
		Short:   "List the available sorting algorithms",
		Aliases: []string{"algs"},
		RunE:    listAlgorithmsCommand, // Defined in cmd_algorithms.go
	}

	vizCmd = &cobra.Command{
		Use:   "viz",
		Short: "Open the interactive step-by-step visualizer",
		RunE:  vizCommand, // Defined in cmd_viz.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "algoscope.yaml",
		"Path to the YAML config file (missing file uses built-in defaults)")
	rootCmd.PersistentFlags().StringVarP(&algorithmName, "algorithm", "a", "",
		"Algorithm to run (see 'algoscope algorithms')")
	rootCmd.PersistentFlags().IntVarP(&inputLen, "input-len", "n", 0,
		"Length of the generated input sequence")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"Shuffle seed; the same seed reproduces the same run")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false,
		"Emit logs as JSON instead of text")

	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&showSteps, "steps", false,
		"Print a per-step command breakdown after the summary")

	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(vizCmd)
}
