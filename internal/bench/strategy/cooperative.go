package strategy

import (
	"container/heap"
	"context"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench"
)

// Cooperative multiplexes all units over the calling goroutine.
//
// Every unit is logically concurrent from the start, but no extra
// goroutines are spawned: a min-heap of wake times drives each unit
// through its lifecycle, and the single loop sleeps only until the
// earliest pending wake. While any unit is ready the loop never idles,
// so wall-clock time approaches the longest single critical path rather
// than the sum of all of them.
//
// Suspension points are the gate admission and the retrieval delay. Gate
// slots are reserved with Gate.Reserve at dispatch, in index order, so
// arrival-order slot assignment is preserved; units then resume
// earliest-ready-first as their waits elapse.
type Cooperative struct{}

// NewCooperative creates a new cooperative single-threaded strategy.
func NewCooperative() *Cooperative {
	return &Cooperative{}
}

// Type returns the strategy type.
func (c *Cooperative) Type() Type {
	return TypeCooperative
}

// task is one unit's position in the cooperative scheduler.
type task struct {
	unit       bench.Unit
	state      bench.State
	wake       time.Time // when this task is next runnable
	seq        int       // arrival order, breaks wake-time ties
	dispatched time.Time
	gateWait   time.Duration
}

// taskHeap orders tasks by wake time, ties by arrival order.
type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].wake.Equal(h[j].wake) {
		return h[i].seq < h[j].seq
	}
	return h[i].wake.Before(h[j].wake)
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Run drains all units on the calling goroutine. It returns ctx.Err() if
// the context is cancelled while waiting for a wake time.
func (c *Cooperative) Run(ctx context.Context, in Input) error {
	now := time.Now()
	tasks := make(taskHeap, 0, in.Count)
	for i := 0; i < in.Count; i++ {
		tasks = append(tasks, &task{
			unit:       bench.NewUnit(i, in.RetrieveDelay),
			state:      bench.StatePending,
			wake:       now,
			seq:        i,
			dispatched: now,
		})
	}
	heap.Init(&tasks)

	for tasks.Len() > 0 {
		t := tasks[0]

		if wait := time.Until(t.wake); wait > 0 {
			// Nothing is ready; sleep until the earliest wake.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}

		heap.Pop(&tasks)
		switch t.state {
		case bench.StatePending:
			admission := in.Gate.Reserve()
			t.state = bench.StateAwaitingGate
			t.gateWait = admission.Sub(t.dispatched)
			if t.gateWait < 0 {
				t.gateWait = 0
			}
			t.wake = admission
			heap.Push(&tasks, t)

		case bench.StateAwaitingGate:
			t.state = bench.StateProcessing
			t.wake = time.Now().Add(t.unit.RetrieveDelay)
			heap.Push(&tasks, t)

		case bench.StateProcessing:
			t.state = bench.StateDone
			in.Collector.RecordUnit(t.unit.Outcome(), time.Since(t.dispatched), t.gateWait)
		}
	}

	return nil
}

// Ensure Cooperative implements Strategy
var _ Strategy = (*Cooperative)(nil)
