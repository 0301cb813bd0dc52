package cli

import "github.com/spf13/cobra"

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "fetchbench",
	Short:   "Benchmark execution strategies for simulated retrievals",
	Version: version,
	Long: `Fetchbench quantifies the performance difference between three execution
strategies for a batch of independent, I/O-bound simulated retrievals:
fully sequential execution, single-threaded cooperative scheduling, and a
multi-goroutine worker pool. All strategies honor the same per-unit
retrieval delay and the same shared rate limit, so their timings are
directly comparable.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(compareCmd)
	RootCmd.AddCommand(inspectCmd)
}
