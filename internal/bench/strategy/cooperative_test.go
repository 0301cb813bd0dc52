package strategy_test

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench/strategy"
)

func TestCooperative_Type(t *testing.T) {
	if got := strategy.NewCooperative().Type(); got != strategy.TypeCooperative {
		t.Errorf("Type() = %v, want %v", got, strategy.TypeCooperative)
	}
}

func TestCooperative_CompletesAllUnits(t *testing.T) {
	in := newInput(50, 0, 0, 0)

	if err := strategy.NewCooperative().Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := in.Collector.Completed(); got != 50 {
		t.Errorf("Completed() = %d, want 50", got)
	}
}

func TestCooperative_UnitsOverlap(t *testing.T) {
	// Ten units of 30ms each would take 300ms sequentially. Cooperatively
	// they all pay their delays concurrently on one goroutine, so the run
	// should finish close to a single delay.
	in := newInput(10, 30*time.Millisecond, 0, 0)

	start := time.Now()
	if err := strategy.NewCooperative().Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	elapsed := time.Since(start)

	if elapsed < 30*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 30ms (a full delay must be paid)", elapsed)
	}
	if elapsed > 200*time.Millisecond {
		t.Errorf("elapsed = %v, want well under the 300ms sequential time", elapsed)
	}
}

func TestCooperative_NoExtraGoroutines(t *testing.T) {
	// The whole point of this strategy is that units overlap without any
	// new goroutines: the goroutine count sampled at every completion must
	// match what it was before the run started.
	in := newInput(10, 30*time.Millisecond, 0, 0)

	var mu sync.Mutex
	var samples []int
	in.Collector.SetOnComplete(func(int64) {
		mu.Lock()
		samples = append(samples, runtime.NumGoroutine())
		mu.Unlock()
	})

	before := runtime.NumGoroutine()
	start := time.Now()
	if err := strategy.NewCooperative().Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	elapsed := time.Since(start)

	if len(samples) != 10 {
		t.Fatalf("got %d samples, want 10", len(samples))
	}
	// Tolerate a couple of unrelated runtime goroutines coming or going,
	// but ten blocked workers would stand out clearly.
	for i, n := range samples {
		if n > before+2 {
			t.Errorf("sample %d saw %d goroutines, want about %d (scheduler spawns none)", i, n, before)
		}
	}

	// The units must still have overlapped while staying on one goroutine.
	if elapsed < 30*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 30ms (a full delay must be paid)", elapsed)
	}
	if elapsed > 200*time.Millisecond {
		t.Errorf("elapsed = %v, want well under the 300ms sequential time", elapsed)
	}
}

func TestCooperative_GateBoundsTheRun(t *testing.T) {
	// With the gate dominant, elapsed approaches count x interval no
	// matter how concurrent the units are.
	in := newInput(4, 5*time.Millisecond, 25*time.Millisecond, 0)

	start := time.Now()
	if err := strategy.NewCooperative().Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	elapsed := time.Since(start)

	// Three spaced admissions after the free first slot, then one delay.
	if elapsed < 80*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 80ms", elapsed)
	}
}

func TestCooperative_EarliestReadyFirst(t *testing.T) {
	// With admissions spaced by the gate, completions must come out in
	// slot order, spaced roughly one interval apart.
	interval := 25 * time.Millisecond
	in := newInput(3, 5*time.Millisecond, interval, 0)

	var mu sync.Mutex
	var completions []time.Time
	in.Collector.SetOnComplete(func(int64) {
		mu.Lock()
		completions = append(completions, time.Now())
		mu.Unlock()
	})

	if err := strategy.NewCooperative().Run(context.Background(), in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(completions) != 3 {
		t.Fatalf("got %d completions, want 3", len(completions))
	}
	for i := 1; i < len(completions); i++ {
		gap := completions[i].Sub(completions[i-1])
		if gap < interval-10*time.Millisecond {
			t.Errorf("completions %d and %d only %v apart, want ~%v", i-1, i, gap, interval)
		}
	}
}

func TestCooperative_Cancelled(t *testing.T) {
	in := newInput(10, time.Second, 0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := strategy.NewCooperative().Run(ctx, in); err == nil {
		t.Error("Run() expected error after cancellation, got nil")
	}
}
