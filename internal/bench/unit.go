// Package bench defines the simulated retrieval work that the benchmark
// strategies execute.
package bench

import (
	"context"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench/metrics"
)

// Unit is one simulated retrieval. It has no identity beyond its index and
// exists only while it is being processed.
type Unit struct {
	// Index identifies the unit within its run (0..count-1).
	Index int

	// RetrieveDelay is the simulated per-unit retrieval latency.
	RetrieveDelay time.Duration
}

// NewUnit creates a unit for the given index and retrieval latency.
func NewUnit(index int, retrieveDelay time.Duration) Unit {
	return Unit{Index: index, RetrieveDelay: retrieveDelay}
}

// Process pays the unit's simulated retrieval latency. It has no side
// effects beyond consuming time, and returns early only if the context is
// cancelled.
func (u Unit) Process(ctx context.Context) error {
	if u.RetrieveDelay <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(u.RetrieveDelay):
		return nil
	}
}

// Outcome classifies the simulated lookup result for this unit. Every 3rd
// record comes back with information missing, and of those every 11th
// cannot be found at all.
func (u Unit) Outcome() metrics.Outcome {
	switch {
	case u.Index%3 == 0 && u.Index%11 == 0:
		return metrics.OutcomeFailed
	case u.Index%3 == 0:
		return metrics.OutcomePartial
	default:
		return metrics.OutcomeSuccess
	}
}

// State tracks a unit's position in its lifecycle. Transitions always move
// forward: Pending -> AwaitingGate -> Processing -> Done.
type State int

const (
	// StatePending means the unit has not yet been dispatched.
	StatePending State = iota

	// StateAwaitingGate means the unit is waiting for its admission slot.
	StateAwaitingGate

	// StateProcessing means the unit is paying its retrieval delay.
	StateProcessing

	// StateDone is terminal; the unit's resources are released.
	StateDone
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAwaitingGate:
		return "awaiting-gate"
	case StateProcessing:
		return "processing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
