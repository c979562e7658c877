// Package cli implements the three-style command-line entry point: a
// thin cobra wrapper that marshals flags into commutator searches and
// formats the results. It contains no search or algebra logic itself.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "three-style",
	Short:   "Search for three-cycle commutators on a 3x3x3 cube",
	Long:    `three-style searches a bounded-depth space of setup moves for commutators that perform a given corner or edge three-cycle.`,
	Version: "0.1.0",
}

// Execute runs the CLI; it is the sole entry point cmd/three-style calls.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
