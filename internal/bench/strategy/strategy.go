// Package strategy provides the execution strategies the benchmark compares.
package strategy

import (
	"context"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench/metrics"
	"github.com/wesleyorama2/fetchbench/internal/bench/rate"
)

// Type identifies an execution strategy.
type Type string

const (
	// TypeSequential processes units one after another on a single goroutine.
	TypeSequential Type = "sequential"

	// TypeCooperative multiplexes all units over a single goroutine with a
	// timer-driven scheduler.
	TypeCooperative Type = "cooperative"

	// TypeParallel distributes units across a pool of worker goroutines.
	TypeParallel Type = "parallel"
)

// Input carries the shared inputs every strategy consumes. All strategies
// drain exactly Count units, each acquiring the same Gate before paying
// RetrieveDelay, and record every completion on the same Collector.
type Input struct {
	// Count is the number of units to process.
	Count int

	// RetrieveDelay is the simulated per-unit retrieval latency.
	RetrieveDelay time.Duration

	// Workers is the pool size for the parallel strategy. Other strategies
	// ignore it.
	Workers int

	// Gate is the shared admission gate. Never nil.
	Gate *rate.Gate

	// Collector receives one record per completed unit. Never nil.
	Collector *metrics.Collector
}

// Strategy is a concurrency model for draining a batch of units.
//
// Implementations differ only in HOW units are scheduled; every variant
// performs the same per-unit work (gate, then delay) and completes each
// unit exactly once. Run blocks until all units are done, or until the
// context is cancelled, in which case it returns the context's error.
type Strategy interface {
	// Type returns the strategy's identifier.
	Type() Type

	// Run drains all units described by in.
	Run(ctx context.Context, in Input) error
}
