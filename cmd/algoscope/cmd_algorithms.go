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

	"github.com/algoscope/algoscope/services/sorting"
)

func listAlgorithmsCommand(cmd *cobra.Command, args []string) error {
	for _, alg := range sorting.Algorithms[uint32]() {
		fmt.Fprintln(cmd.OutOrStdout(), alg.Name)
	}
	return nil
}
