// Package toasttest provides a controllable clock and a state recorder for
// tests that exercise the toast store.
package toasttest

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/dojo/internal/core/toast"
)

// FakeClock is a manually advanced toast.Clock.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	created int
	timers  []*fakeTimer
}

type fakeTimer struct {
	clock    *FakeClock
	deadline time.Duration
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

// NewFakeClock returns a clock at time zero.
func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

// AfterFunc records a timer that fires once the clock has advanced by d.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) toast.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.created++
	t := &fakeTimer{clock: c, deadline: c.now + d, seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d and runs every timer that came due,
// in deadline order. Callbacks run on the calling goroutine without the
// clock's lock held.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	live := c.timers[:0]
	for _, t := range c.timers {
		switch {
		case t.stopped || t.fired:
		case t.deadline <= c.now:
			t.fired = true
			due = append(due, t)
		default:
			live = append(live, t)
		}
	}
	c.timers = live
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline == due[j].deadline {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline < due[j].deadline
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Created returns the number of timers ever started on the clock.
func (c *FakeClock) Created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created
}

// Recorder captures every state a store publishes.
type Recorder struct {
	mu     sync.Mutex
	states []toast.State
}

// Record subscribes a recorder to store. The subscription is removed when
// the test completes.
func Record(t *testing.T, store *toast.Store) *Recorder {
	t.Helper()

	r := &Recorder{}
	unsubscribe := store.Subscribe(func(s toast.State) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.states = append(r.states, s)
	})
	t.Cleanup(unsubscribe)
	return r
}

// States returns all recorded states in order.
func (r *Recorder) States() []toast.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]toast.State, len(r.states))
	copy(out, r.states)
	return out
}

// Last returns the most recent recorded state.
func (r *Recorder) Last() (toast.State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.states) == 0 {
		return toast.State{}, false
	}
	return r.states[len(r.states)-1], true
}

// Len returns the number of recorded states.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
