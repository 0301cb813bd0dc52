// Package rate provides the shared admission gate that bounds retrieval throughput.
package rate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Gate enforces a minimum spacing between successive admissions.
//
// Unlike a token bucket, the gate never allows bursting: it maintains a
// single "next eligible time" watermark, and every admission advances the
// watermark by the configured interval. Consecutive admissions are therefore
// always at least one interval apart, no matter how many goroutines are
// calling in.
//
// Slots are assigned in strict arrival order: the first caller to reach the
// watermark update gets the earlier slot. The update itself is a single
// mutex-protected comparison and advance, so the critical section stays far
// smaller than the intervals being enforced.
//
// A Gate with a zero interval is disabled: admission is immediate and the
// watermark is never advanced.
//
// # Thread Safety
//
// Gate is safe for concurrent use from multiple goroutines.
type Gate struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time // watermark: earliest time the next admission may occur

	// Metrics
	admissions atomic.Int64 // Total slots handed out
	totalWait  atomic.Int64 // Total scheduled wait in nanoseconds
}

// NewGate creates a gate that spaces admissions at least interval apart.
// An interval <= 0 disables the gate entirely.
func NewGate(interval time.Duration) *Gate {
	g := &Gate{interval: interval}
	if interval > 0 {
		g.next = time.Now()
	}
	return g
}

// Enabled reports whether the gate actually limits admissions.
func (g *Gate) Enabled() bool {
	return g.interval > 0
}

// Interval returns the configured minimum spacing between admissions.
func (g *Gate) Interval() time.Duration {
	return g.interval
}

// Reserve claims the next admission slot and returns the time at which the
// caller may proceed. The returned time is never before a previously
// returned one, and successive reservations are spaced at least one
// interval apart.
//
// Reserve never blocks. Callers that want to block should use Wait;
// schedulers that multiplex many units over one goroutine use Reserve
// directly and sleep on their own terms.
func (g *Gate) Reserve() time.Time {
	now := time.Now()
	if g.interval <= 0 {
		return now
	}

	g.mu.Lock()
	admission := g.next
	if admission.Before(now) {
		// Gate is idle; admit immediately and restart spacing from now.
		admission = now
	}
	g.next = admission.Add(g.interval)
	g.mu.Unlock()

	g.admissions.Add(1)
	if wait := admission.Sub(now); wait > 0 {
		g.totalWait.Add(int64(wait))
	}
	return admission
}

// Wait blocks until the caller's admission slot arrives.
//
// Returns nil once admitted, or ctx.Err() if the context is cancelled
// first. A disabled gate admits immediately.
func (g *Gate) Wait(ctx context.Context) error {
	admission := g.Reserve()

	wait := time.Until(admission)
	if wait <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// Stats returns counters describing the gate's activity so far.
func (g *Gate) Stats() GateStats {
	return GateStats{
		Interval:   g.interval,
		Admissions: g.admissions.Load(),
		TotalWait:  time.Duration(g.totalWait.Load()),
	}
}

// GateStats contains statistics about the gate's operation.
type GateStats struct {
	Interval   time.Duration `json:"interval"`   // Configured spacing
	Admissions int64         `json:"admissions"` // Slots handed out
	TotalWait  time.Duration `json:"totalWait"`  // Sum of scheduled waits
}
