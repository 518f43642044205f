package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "votenet-sim",
	Short: "Network-fault simulation toolkit for relayed voting",
	Long:  "votenet-sim simulates a multi-hop relay chain carrying votes under loss, jitter, DoS pressure, burst outages, and Byzantine tampering, and sweeps parameter grids with statistical aggregation.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sweepCmd)
}
