// Command distsim runs a distributed-algorithm simulation over a saved
// graph file and prints the trace.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "distsim",
	Short: "Simulate classic distributed algorithms over a saved graph.",
	Long: `distsim loads a graph saved by the interactive editor (a JSON node list) ` +
		`and runs one of the classic distributed algorithms over it: a ` +
		`Chandy-Lamport snapshot, a Lai-Yang snapshot, or a Chang-Roberts ` +
		`leader election. The full step-by-step trace is printed to stdout.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
