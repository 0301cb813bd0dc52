package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/fetchbench/pkg/jsonpath"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE PATH",
	Short: "Extract a value from a saved result file",
	Long: `Extract a single value from a result file written with --output,
using a dotted path expression:

  fetchbench inspect results.json results.0.elapsed
  fetchbench inspect results.json results.0.stats.latency.p95`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		value, err := inspectFile(args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(value)
	},
}

// inspectFile reads a JSON result file and resolves a path within it.
func inspectFile(path, expr string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read result file: %w", err)
	}
	return jsonpath.Extract(string(data), expr)
}
