// Package metrics collects per-unit timing and outcome statistics for a benchmark run.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Outcome classifies how a simulated retrieval finished.
type Outcome int

const (
	// OutcomeSuccess means the retrieval completed with full information.
	OutcomeSuccess Outcome = iota

	// OutcomePartial means the retrieval completed with some information missing.
	OutcomePartial

	// OutcomeFailed means the retrieval could not find the record.
	OutcomeFailed
)

// String returns the human-readable name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomePartial:
		return "partial"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Collector aggregates the results of completed units during a run.
//
// Latency is recorded into an HDR histogram (1 microsecond to 1 hour,
// 3 significant figures) so percentiles stay accurate regardless of how
// many units a run processes. Outcome counts use atomic counters so the
// parallel strategy's workers never contend beyond the histogram mutex.
//
// One Collector is created per run and discarded with it; Collectors are
// never reused across runs.
type Collector struct {
	hist   *hdrhistogram.Histogram
	histMu sync.Mutex

	completed atomic.Int64
	success   atomic.Int64
	partial   atomic.Int64
	failed    atomic.Int64
	gateWait  atomic.Int64 // nanoseconds

	// onComplete, if set, is invoked after each unit is recorded with the
	// running completion count. Set before the run starts; must be safe
	// for concurrent use.
	onComplete func(completed int64)
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		// 1us to 1 hour in microseconds, 3 significant figures.
		hist: hdrhistogram.New(1, 3600000000, 3),
	}
}

// SetOnComplete registers an observer called after every completed unit.
// It must be called before any unit is recorded.
func (c *Collector) SetOnComplete(fn func(completed int64)) {
	c.onComplete = fn
}

// RecordUnit records one completed unit: its outcome, the wall time from
// dispatch to completion, and the portion of that spent waiting on the
// admission gate.
func (c *Collector) RecordUnit(outcome Outcome, total, gateWait time.Duration) {
	c.histMu.Lock()
	_ = c.hist.RecordValue(total.Microseconds())
	c.histMu.Unlock()

	switch outcome {
	case OutcomeSuccess:
		c.success.Add(1)
	case OutcomePartial:
		c.partial.Add(1)
	case OutcomeFailed:
		c.failed.Add(1)
	}

	if gateWait > 0 {
		c.gateWait.Add(int64(gateWait))
	}

	n := c.completed.Add(1)
	if c.onComplete != nil {
		c.onComplete(n)
	}
}

// Completed returns the number of units recorded so far.
func (c *Collector) Completed() int64 {
	return c.completed.Load()
}

// Snapshot returns an immutable view of everything recorded so far.
func (c *Collector) Snapshot() Snapshot {
	c.histMu.Lock()
	latency := LatencyStats{
		Min:  time.Duration(c.hist.Min()) * time.Microsecond,
		Mean: time.Duration(c.hist.Mean()) * time.Microsecond,
		P50:  time.Duration(c.hist.ValueAtQuantile(50)) * time.Microsecond,
		P95:  time.Duration(c.hist.ValueAtQuantile(95)) * time.Microsecond,
		Max:  time.Duration(c.hist.Max()) * time.Microsecond,
	}
	c.histMu.Unlock()

	return Snapshot{
		Completed: c.completed.Load(),
		Success:   c.success.Load(),
		Partial:   c.partial.Load(),
		Failed:    c.failed.Load(),
		GateWait:  time.Duration(c.gateWait.Load()),
		Latency:   latency,
	}
}

// LatencyStats summarizes per-unit wall time.
type LatencyStats struct {
	Min  time.Duration `json:"min"`
	Mean time.Duration `json:"mean"`
	P50  time.Duration `json:"p50"`
	P95  time.Duration `json:"p95"`
	Max  time.Duration `json:"max"`
}

// Snapshot is a point-in-time copy of a collector's aggregates.
type Snapshot struct {
	Completed int64         `json:"completed"`
	Success   int64         `json:"success"`
	Partial   int64         `json:"partial"`
	Failed    int64         `json:"failed"`
	GateWait  time.Duration `json:"gateWait"`
	Latency   LatencyStats  `json:"latency"`
}
