package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/fetchbench/internal/bench/strategy"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all three strategies back to back and compare their timings",
	Long: `Run the sequential, cooperative, and parallel strategies with identical
parameters and print a comparison table with the speedup of each strategy
over the sequential baseline.

  fetchbench compare --count 50 --retrieve-delay 50ms --rate-limit-delay 0`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := collectCompareOptions(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := executeRuns(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addBenchFlags(compareCmd)
}

// collectCompareOptions builds one config per strategy from the shared
// flags, sequential first so it serves as the comparison baseline.
func collectCompareOptions(cmd *cobra.Command) (*runOptions, error) {
	opts, err := collectCommonOptions(cmd)
	if err != nil {
		return nil, err
	}
	opts.compare = true

	base := benchConfigFromFlags(cmd)
	for _, t := range strategy.Types() {
		cfg := base
		cfg.Strategy = t
		opts.configs = append(opts.configs, namedConfig{Name: string(t), Config: cfg})
	}
	return opts, nil
}
