// Package config provides parsing and validation for benchmark scenario files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench/engine"
	"github.com/wesleyorama2/fetchbench/internal/bench/strategy"
)

// File is the root of a scenario file.
//
// Example YAML:
//
//	name: "Retrieval strategies"
//	scenarios:
//	  baseline:
//	    count: 50
//	    retrieveDelay: 50ms
//	    rateLimitDelay: 50ms
//	    strategy: sequential
//	  pooled:
//	    count: 50
//	    retrieveDelay: 50ms
//	    rateLimitDelay: 50ms
//	    strategy: parallel
//	    workers: 8
type File struct {
	// Name of the benchmark (for reporting)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description of the benchmark (optional)
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Scenarios defines the runs to execute, keyed by name
	Scenarios map[string]*Scenario `json:"scenarios" yaml:"scenarios"`
}

// Scenario describes one benchmark run. Delays are duration strings such
// as "50ms" or "1s"; omitted delays default to zero.
type Scenario struct {
	// Count is the number of retrieval units to process
	Count int `json:"count" yaml:"count"`

	// RetrieveDelay is the simulated per-unit latency (e.g., "50ms")
	RetrieveDelay string `json:"retrieveDelay,omitempty" yaml:"retrieveDelay,omitempty"`

	// RateLimitDelay is the minimum admission spacing (e.g., "50ms")
	RateLimitDelay string `json:"rateLimitDelay,omitempty" yaml:"rateLimitDelay,omitempty"`

	// Strategy selects the concurrency model
	// Options: "sequential", "cooperative", "parallel"
	Strategy string `json:"strategy" yaml:"strategy"`

	// Workers is the pool size for the parallel strategy (0 = NumCPU)
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// ValidationError represents a scenario file validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the entire scenario file.
//
// Returns nil if valid, or a ValidationErrors containing all problems.
func (f *File) Validate() error {
	errs := &ValidationErrors{}

	if len(f.Scenarios) == 0 {
		errs.Add("scenarios", "at least one scenario is required")
	}

	for name, sc := range f.Scenarios {
		validateScenario(name, sc, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateScenario(name string, sc *Scenario, errs *ValidationErrors) {
	field := func(f string) string { return "scenarios." + name + "." + f }

	if sc == nil {
		errs.Add("scenarios."+name, "scenario is empty")
		return
	}
	if sc.Count <= 0 {
		errs.Add(field("count"), "count must be > 0")
	}
	if sc.Strategy == "" {
		errs.Add(field("strategy"), "strategy is required")
	} else if !strategy.IsValidType(sc.Strategy) {
		errs.Add(field("strategy"), "unknown strategy type: "+sc.Strategy)
	}
	if sc.Workers < 0 {
		errs.Add(field("workers"), "workers must not be negative")
	}
	if _, err := parseDelay(sc.RetrieveDelay); err != nil {
		errs.Add(field("retrieveDelay"), err.Error())
	}
	if _, err := parseDelay(sc.RateLimitDelay); err != nil {
		errs.Add(field("rateLimitDelay"), err.Error())
	}
}

// parseDelay parses an optional duration string. Empty means zero.
func parseDelay(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %q must not be negative", s)
	}
	return d, nil
}

// EngineConfig converts a scenario to the engine's configuration.
func (sc *Scenario) EngineConfig() (engine.Config, error) {
	retrieve, err := parseDelay(sc.RetrieveDelay)
	if err != nil {
		return engine.Config{}, fmt.Errorf("invalid retrieveDelay: %w", err)
	}
	rateLimit, err := parseDelay(sc.RateLimitDelay)
	if err != nil {
		return engine.Config{}, fmt.Errorf("invalid rateLimitDelay: %w", err)
	}

	return engine.Config{
		Count:          sc.Count,
		RetrieveDelay:  retrieve,
		RateLimitDelay: rateLimit,
		Strategy:       strategy.Type(sc.Strategy),
		Workers:        sc.Workers,
	}, nil
}
