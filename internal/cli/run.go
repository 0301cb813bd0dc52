package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/fetchbench/internal/bench/config"
	"github.com/wesleyorama2/fetchbench/internal/bench/engine"
	"github.com/wesleyorama2/fetchbench/internal/bench/strategy"
	"github.com/wesleyorama2/fetchbench/internal/output"
	"github.com/wesleyorama2/fetchbench/internal/progress"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a benchmark with a single strategy",
	Long: `Run a benchmark with a single strategy.

Flag mode:
  fetchbench run --count 50 --retrieve-delay 50ms --rate-limit-delay 50ms \
    --strategy cooperative

Scenario file mode (runs every scenario in the file):
  fetchbench run --config scenarios.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := collectRunOptions(cmd)
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
	addBenchFlags(runCmd)
	runCmd.Flags().StringP("strategy", "s", string(strategy.TypeSequential),
		"execution strategy: sequential, cooperative, or parallel")
	runCmd.Flags().StringP("config", "f", "", "scenario file (.yaml, .yml, or .json)")
}

// addBenchFlags registers the flags shared by run and compare.
func addBenchFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("count", "c", 50, "number of retrieval units to process")
	cmd.Flags().Duration("retrieve-delay", 50*time.Millisecond, "simulated per-unit retrieval latency")
	cmd.Flags().Duration("rate-limit-delay", 50*time.Millisecond, "minimum spacing between admissions (0 disables)")
	cmd.Flags().IntP("workers", "w", 0, "worker pool size for the parallel strategy (0 = all CPUs)")
	cmd.Flags().Bool("json", false, "emit results as JSON on stdout")
	cmd.Flags().StringP("output", "o", "", "write results as JSON to a file")
	cmd.Flags().BoolP("quiet", "q", false, "suppress the logo and progress bar")
	cmd.Flags().Bool("no-color", false, "disable colored output")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
}

// namedConfig pairs a scenario name with its engine configuration.
type namedConfig struct {
	Name   string
	Config engine.Config
}

// runOptions is everything a run or compare invocation needs.
type runOptions struct {
	configs    []namedConfig
	compare    bool
	json       bool
	outputPath string
	quiet      bool
	noColor    bool
	noProgress bool
}

// collectRunOptions resolves the run command's flags into runOptions,
// loading the scenario file when one is given.
func collectRunOptions(cmd *cobra.Command) (*runOptions, error) {
	opts, err := collectCommonOptions(cmd)
	if err != nil {
		return nil, err
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		file, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		opts.configs, err = scenarioConfigs(file)
		if err != nil {
			return nil, err
		}
		return opts, nil
	}

	strategyName, _ := cmd.Flags().GetString("strategy")
	strategyType, err := strategy.ParseType(strategyName)
	if err != nil {
		return nil, err
	}

	cfg := benchConfigFromFlags(cmd)
	cfg.Strategy = strategyType
	opts.configs = []namedConfig{{Config: cfg}}
	return opts, nil
}

// collectCommonOptions reads the flags shared by run and compare.
func collectCommonOptions(cmd *cobra.Command) (*runOptions, error) {
	jsonOut, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")
	quiet, _ := cmd.Flags().GetBool("quiet")
	noColor, _ := cmd.Flags().GetBool("no-color")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	return &runOptions{
		json:       jsonOut,
		outputPath: outputPath,
		quiet:      quiet,
		noColor:    noColor,
		noProgress: noProgress,
	}, nil
}

// benchConfigFromFlags builds an engine config from the shared flags,
// leaving the strategy unset.
func benchConfigFromFlags(cmd *cobra.Command) engine.Config {
	count, _ := cmd.Flags().GetInt("count")
	retrieveDelay, _ := cmd.Flags().GetDuration("retrieve-delay")
	rateLimitDelay, _ := cmd.Flags().GetDuration("rate-limit-delay")
	workers, _ := cmd.Flags().GetInt("workers")

	return engine.Config{
		Count:          count,
		RetrieveDelay:  retrieveDelay,
		RateLimitDelay: rateLimitDelay,
		Workers:        workers,
	}
}

// scenarioConfigs converts a scenario file into named engine configs,
// ordered by scenario name for deterministic execution.
func scenarioConfigs(file *config.File) ([]namedConfig, error) {
	names := make([]string, 0, len(file.Scenarios))
	for name := range file.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	configs := make([]namedConfig, 0, len(names))
	for _, name := range names {
		cfg, err := file.Scenarios[name].EngineConfig()
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", name, err)
		}
		configs = append(configs, namedConfig{Name: name, Config: cfg})
	}
	return configs, nil
}

// namedResult is one run's result in the JSON document.
type namedResult struct {
	Name string `json:"name,omitempty"`
	*engine.Result
}

// runDocument is the JSON shape written by --json and --output.
type runDocument struct {
	Results []*namedResult `json:"results"`
}

// executeRuns performs every configured run, printing reports as it goes.
// SIGINT cancels the run context; the engine reports the cancellation as
// an error and no partial result is printed.
func executeRuns(opts *runOptions) error {
	scheme := output.SchemeFor(os.Stdout, opts.noColor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !opts.quiet && !opts.json {
		output.PrintLogo(os.Stderr, scheme)
	}

	doc := &runDocument{}
	var results []*engine.Result
	for _, nc := range opts.configs {
		res, err := runOne(ctx, nc, opts)
		if err != nil {
			return err
		}
		results = append(results, res)
		doc.Results = append(doc.Results, &namedResult{Name: nc.Name, Result: res})

		if !opts.json && !opts.compare {
			if nc.Name != "" {
				fmt.Printf("%s\n", scheme.Title.Sprint(nc.Name))
			}
			fmt.Print(output.FormatResult(res, scheme))
		}
	}

	if opts.compare && !opts.json {
		fmt.Print(output.FormatComparison(results, scheme))
	}

	if opts.json {
		if err := output.WriteJSON(os.Stdout, doc); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	}

	if opts.outputPath != "" {
		if err := writeResultFile(opts.outputPath, doc); err != nil {
			return err
		}
	}

	return nil
}

// runOne executes a single configuration with an optional progress bar.
func runOne(ctx context.Context, nc namedConfig, opts *runOptions) (*engine.Result, error) {
	var runnerOpts []engine.Option
	var bar *progress.Bar

	showProgress := !opts.quiet && !opts.json && !opts.noProgress && output.IsTerminal(os.Stderr)
	if showProgress {
		bar = progress.New(int64(nc.Config.Count), os.Stderr)
		runnerOpts = append(runnerOpts, engine.WithUnitObserver(func(completed int64, total int) {
			bar.SetCurrent(completed)
		}))
	}

	res, err := engine.NewRunner(runnerOpts...).Execute(ctx, nc.Config)
	if bar != nil {
		if err != nil {
			// Stop the bar where the run stopped; an interrupted run must
			// not render as 100% complete.
			bar.Finish()
		} else {
			bar.Done()
		}
	}
	if err != nil {
		if nc.Name != "" {
			return nil, fmt.Errorf("scenario %s: %w", nc.Name, err)
		}
		return nil, err
	}
	return res, nil
}

// writeResultFile saves the run document as JSON.
func writeResultFile(path string, doc *runDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := output.WriteJSON(f, doc); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
