// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/algoscope/algoscope/services/sorting/tui"
)

func vizCommand(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("viz needs an interactive terminal; use 'algoscope run' in pipelines")
	}

	logger.Debug("starting visualizer",
		"algorithm", cfg.Algorithm,
		"input_len", cfg.InputLen,
		"seed", cfg.Seed,
	)

	return tui.Run(tui.Config{
		Algorithm: cfg.Algorithm,
		InputLen:  cfg.InputLen,
		Seed:      cfg.Seed,
	})
}
