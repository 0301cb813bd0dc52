package strategy

import (
	"context"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench"
)

// Sequential processes units strictly one after another on the calling
// goroutine. Each unit blocks through the gate and then through its
// retrieval delay before the next one starts; nothing overlaps.
//
// This is the baseline the other strategies are measured against: total
// time is roughly count x (gate spacing + retrieve delay).
type Sequential struct{}

// NewSequential creates a new sequential strategy.
func NewSequential() *Sequential {
	return &Sequential{}
}

// Type returns the strategy type.
func (s *Sequential) Type() Type {
	return TypeSequential
}

// Run drains all units in index order.
func (s *Sequential) Run(ctx context.Context, in Input) error {
	for i := 0; i < in.Count; i++ {
		start := time.Now()

		if err := in.Gate.Wait(ctx); err != nil {
			return err
		}
		gateWait := time.Since(start)

		unit := bench.NewUnit(i, in.RetrieveDelay)
		if err := unit.Process(ctx); err != nil {
			return err
		}

		in.Collector.RecordUnit(unit.Outcome(), time.Since(start), gateWait)
	}
	return nil
}

// Ensure Sequential implements Strategy
var _ Strategy = (*Sequential)(nil)
