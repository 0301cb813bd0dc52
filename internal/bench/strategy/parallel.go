package strategy

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench"
)

// Parallel distributes units across a fixed pool of worker goroutines.
//
// Workers pull the next unit index from a shared atomic counter, so every
// unit is processed exactly once even though completion order across
// workers is nondeterministic. All workers funnel through the same gate,
// which is where the gate's cross-goroutine serialization is actually
// exercised under true parallelism.
type Parallel struct{}

// NewParallel creates a new parallel strategy.
func NewParallel() *Parallel {
	return &Parallel{}
}

// Type returns the strategy type.
func (p *Parallel) Type() Type {
	return TypeParallel
}

// Run drains all units across in.Workers goroutines and blocks until the
// last one completes. A Workers value <= 0 falls back to runtime.NumCPU().
func (p *Parallel) Run(ctx context.Context, in Input) error {
	workers := in.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > in.Count {
		workers = in.Count
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= in.Count {
					return
				}

				start := time.Now()
				if err := in.Gate.Wait(ctx); err != nil {
					errs <- err
					return
				}
				gateWait := time.Since(start)

				unit := bench.NewUnit(i, in.RetrieveDelay)
				if err := unit.Process(ctx); err != nil {
					errs <- err
					return
				}

				in.Collector.RecordUnit(unit.Outcome(), time.Since(start), gateWait)
			}
		}()
	}

	wg.Wait()

	select {
	case err := <-errs:
		return err
	default:
		return nil
	}
}

// Ensure Parallel implements Strategy
var _ Strategy = (*Parallel)(nil)
