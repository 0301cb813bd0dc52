package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeSuccess, "success"},
		{OutcomePartial, "partial"},
		{OutcomeFailed, "failed"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestCollector_RecordUnit(t *testing.T) {
	c := NewCollector()

	c.RecordUnit(OutcomeSuccess, 10*time.Millisecond, 0)
	c.RecordUnit(OutcomeSuccess, 20*time.Millisecond, 5*time.Millisecond)
	c.RecordUnit(OutcomePartial, 30*time.Millisecond, 0)
	c.RecordUnit(OutcomeFailed, 40*time.Millisecond, 10*time.Millisecond)

	snap := c.Snapshot()

	if snap.Completed != 4 {
		t.Errorf("Completed = %d, want 4", snap.Completed)
	}
	if snap.Success != 2 {
		t.Errorf("Success = %d, want 2", snap.Success)
	}
	if snap.Partial != 1 {
		t.Errorf("Partial = %d, want 1", snap.Partial)
	}
	if snap.Failed != 1 {
		t.Errorf("Failed = %d, want 1", snap.Failed)
	}
	if snap.GateWait != 15*time.Millisecond {
		t.Errorf("GateWait = %v, want 15ms", snap.GateWait)
	}
}

func TestCollector_Snapshot_Latency(t *testing.T) {
	c := NewCollector()

	for i := 1; i <= 100; i++ {
		c.RecordUnit(OutcomeSuccess, time.Duration(i)*time.Millisecond, 0)
	}

	snap := c.Snapshot()

	// HDR histograms are approximate to 3 significant figures.
	if snap.Latency.Min < 900*time.Microsecond || snap.Latency.Min > 1100*time.Microsecond {
		t.Errorf("Latency.Min = %v, want ~1ms", snap.Latency.Min)
	}
	if snap.Latency.Max < 99*time.Millisecond || snap.Latency.Max > 101*time.Millisecond {
		t.Errorf("Latency.Max = %v, want ~100ms", snap.Latency.Max)
	}
	if snap.Latency.P50 < 45*time.Millisecond || snap.Latency.P50 > 55*time.Millisecond {
		t.Errorf("Latency.P50 = %v, want ~50ms", snap.Latency.P50)
	}
	if snap.Latency.P95 < 90*time.Millisecond || snap.Latency.P95 > 100*time.Millisecond {
		t.Errorf("Latency.P95 = %v, want ~95ms", snap.Latency.P95)
	}
}

func TestCollector_ConcurrentRecording(t *testing.T) {
	c := NewCollector()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				c.RecordUnit(OutcomeSuccess, time.Millisecond, 0)
			}
		}()
	}
	wg.Wait()

	if got := c.Completed(); got != workers*perWorker {
		t.Errorf("Completed() = %d, want %d", got, workers*perWorker)
	}
}

func TestCollector_OnComplete(t *testing.T) {
	c := NewCollector()

	var mu sync.Mutex
	var seen []int64
	c.SetOnComplete(func(completed int64) {
		mu.Lock()
		seen = append(seen, completed)
		mu.Unlock()
	})

	for i := 0; i < 3; i++ {
		c.RecordUnit(OutcomeSuccess, time.Millisecond, 0)
	}

	if len(seen) != 3 {
		t.Fatalf("observer called %d times, want 3", len(seen))
	}
	for i, n := range seen {
		if n != int64(i+1) {
			t.Errorf("observer call %d reported count %d, want %d", i, n, i+1)
		}
	}
}
