package strategy_test

import (
	"context"
	"testing"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench/metrics"
	"github.com/wesleyorama2/fetchbench/internal/bench/rate"
	"github.com/wesleyorama2/fetchbench/internal/bench/strategy"
)

// newInput builds a strategy input with a fresh gate and collector.
func newInput(count int, retrieveDelay, rateLimitDelay time.Duration, workers int) strategy.Input {
	return strategy.Input{
		Count:         count,
		RetrieveDelay: retrieveDelay,
		Workers:       workers,
		Gate:          rate.NewGate(rateLimitDelay),
		Collector:     metrics.NewCollector(),
	}
}

func TestSequential_Type(t *testing.T) {
	if got := strategy.NewSequential().Type(); got != strategy.TypeSequential {
		t.Errorf("Type() = %v, want %v", got, strategy.TypeSequential)
	}
}

func TestSequential_CompletesAllUnits(t *testing.T) {
	in := newInput(25, 0, 0, 0)

	if err := strategy.NewSequential().Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := in.Collector.Completed(); got != 25 {
		t.Errorf("Completed() = %d, want 25", got)
	}
}

func TestSequential_ElapsedIsSumOfDelays(t *testing.T) {
	in := newInput(5, 20*time.Millisecond, 0, 0)

	start := time.Now()
	if err := strategy.NewSequential().Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	elapsed := time.Since(start)

	// Five units at 20ms each, strictly one after another.
	if elapsed < 100*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 100ms", elapsed)
	}
}

func TestSequential_GateSpacesUnits(t *testing.T) {
	in := newInput(4, 0, 20*time.Millisecond, 0)

	start := time.Now()
	if err := strategy.NewSequential().Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	elapsed := time.Since(start)

	// First admission is free; the remaining three wait a full interval.
	if elapsed < 60*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 60ms", elapsed)
	}
}

func TestSequential_Cancelled(t *testing.T) {
	in := newInput(100, 50*time.Millisecond, 0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := strategy.NewSequential().Run(ctx, in); err == nil {
		t.Error("Run() expected error after cancellation, got nil")
	}

	if done := in.Collector.Completed(); done >= 100 {
		t.Errorf("Completed() = %d after early cancellation, want < 100", done)
	}
}
