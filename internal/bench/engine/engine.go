// Package engine orchestrates a single benchmark run.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench/metrics"
	"github.com/wesleyorama2/fetchbench/internal/bench/rate"
	"github.com/wesleyorama2/fetchbench/internal/bench/strategy"
)

// Config describes one benchmark run. It is consumed by Execute and never
// mutated afterwards.
type Config struct {
	// Count is the number of retrieval units to process. Must be > 0.
	Count int `json:"count" yaml:"count"`

	// RetrieveDelay is the simulated per-unit retrieval latency.
	RetrieveDelay time.Duration `json:"retrieveDelay" yaml:"retrieveDelay"`

	// RateLimitDelay is the minimum spacing between admissions. Zero
	// disables rate limiting.
	RateLimitDelay time.Duration `json:"rateLimitDelay" yaml:"rateLimitDelay"`

	// Strategy selects the concurrency model for the run.
	Strategy strategy.Type `json:"strategy" yaml:"strategy"`

	// Workers is the pool size for the parallel strategy. Zero means
	// runtime.NumCPU(). Ignored by other strategies.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// withDefaults returns a copy of c with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.Strategy == "" {
		c.Strategy = strategy.TypeSequential
	}
	if c.Strategy == strategy.TypeParallel && c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

// Validate checks the configuration before any work starts.
func (c *Config) Validate() error {
	if c.Count <= 0 {
		return &ValidationError{Field: "count", Message: "count must be > 0"}
	}
	if c.RetrieveDelay < 0 {
		return &ValidationError{Field: "retrieveDelay", Message: "retrieveDelay must not be negative"}
	}
	if c.RateLimitDelay < 0 {
		return &ValidationError{Field: "rateLimitDelay", Message: "rateLimitDelay must not be negative"}
	}
	if !strategy.IsValidType(string(c.Strategy)) {
		return &ValidationError{Field: "strategy", Message: "unknown strategy type: " + string(c.Strategy)}
	}
	if c.Strategy == strategy.TypeParallel && c.Workers <= 0 {
		return &ValidationError{Field: "workers", Message: "workers must be > 0 for the parallel strategy"}
	}
	return nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Result is the sole output of a run.
type Result struct {
	// Count is the number of units processed.
	Count int `json:"count"`

	// Strategy identifies the concurrency model that produced the timing.
	Strategy strategy.Type `json:"strategy"`

	// Workers is the pool size that was used (parallel strategy only).
	Workers int `json:"workers,omitempty"`

	// Elapsed is the wall-clock duration from run start to the last
	// unit's completion.
	Elapsed time.Duration `json:"elapsed"`

	// Stats aggregates per-unit outcomes and latency.
	Stats metrics.Snapshot `json:"stats"`
}

// Throughput returns completed units per second for the run.
func (r *Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Count) / r.Elapsed.Seconds()
}

// Runner executes benchmark runs. Each Execute call is independent: the
// gate and collector are created per run and leave no residue behind, so
// a single Runner may be reused across runs.
type Runner struct {
	onUnitDone func(completed int64, total int)
}

// Option configures a Runner.
type Option func(*Runner)

// WithUnitObserver registers a callback invoked after every completed
// unit, with the running completion count and the configured total. The
// callback must be safe for concurrent use; it is how the CLI drives its
// progress bar without the engine knowing about terminals.
func WithUnitObserver(fn func(completed int64, total int)) Option {
	return func(r *Runner) { r.onUnitDone = fn }
}

// NewRunner creates a runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute performs one benchmark run.
//
// The configuration is validated before the timer starts: an invalid
// configuration produces an error and no partial result. On success the
// elapsed time covers exactly the strategy's drain of all units.
//
// Cancelling ctx aborts the run and surfaces the context's error; the
// engine itself imposes no timeout.
func (r *Runner) Execute(ctx context.Context, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strat, err := strategy.New(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	gate := rate.NewGate(cfg.RateLimitDelay)
	collector := metrics.NewCollector()
	if r.onUnitDone != nil {
		total := cfg.Count
		collector.SetOnComplete(func(completed int64) {
			r.onUnitDone(completed, total)
		})
	}

	in := strategy.Input{
		Count:         cfg.Count,
		RetrieveDelay: cfg.RetrieveDelay,
		Workers:       cfg.Workers,
		Gate:          gate,
		Collector:     collector,
	}

	start := time.Now()
	if err := strat.Run(ctx, in); err != nil {
		return nil, fmt.Errorf("run aborted: %w", err)
	}
	elapsed := time.Since(start)

	return &Result{
		Count:    cfg.Count,
		Strategy: cfg.Strategy,
		Workers:  cfg.Workers,
		Elapsed:  elapsed,
		Stats:    collector.Snapshot(),
	}, nil
}

// Execute performs one benchmark run with a default Runner.
func Execute(ctx context.Context, cfg Config) (*Result, error) {
	return NewRunner().Execute(ctx, cfg)
}
