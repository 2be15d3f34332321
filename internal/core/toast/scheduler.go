package toast

import (
	"sync"
	"time"
)

// Timer is a cancellable pending callback.
type Timer interface {
	Stop() bool
}

// Clock creates timers. Tests substitute toasttest.FakeClock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock schedules callbacks with time.AfterFunc.
type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type pendingRemoval struct {
	timer Timer
}

// Scheduler defers the removal of dismissed toasts. Each id has at most one
// outstanding timer; when it fires the id is forgotten and onRemove is called.
type Scheduler struct {
	clock    Clock
	delay    time.Duration
	onRemove func(id string)

	mu      sync.Mutex
	pending map[string]*pendingRemoval
}

// NewScheduler creates a scheduler that calls onRemove delay after Schedule.
func NewScheduler(clock Clock, delay time.Duration, onRemove func(id string)) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{
		clock:    clock,
		delay:    delay,
		onRemove: onRemove,
		pending:  make(map[string]*pendingRemoval),
	}
}

// Schedule starts a removal timer for id. It returns false without doing
// anything when a timer for id is already pending.
func (s *Scheduler) Schedule(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[id]; ok {
		return false
	}

	p := &pendingRemoval{}
	p.timer = s.clock.AfterFunc(s.delay, func() { s.fire(id, p) })
	s.pending[id] = p
	return true
}

func (s *Scheduler) fire(id string, p *pendingRemoval) {
	s.mu.Lock()
	// A cancelled timer can still fire if Stop lost the race; only the
	// current generation may remove the id.
	if s.pending[id] != p {
		s.mu.Unlock()
		return
	}
	delete(s.pending, id)
	s.mu.Unlock()

	if s.onRemove != nil {
		s.onRemove(id)
	}
}

// Cancel stops and forgets the timer for id, if any.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(id)
}

func (s *Scheduler) cancelLocked(id string) {
	p, ok := s.pending[id]
	if !ok {
		return
	}
	p.timer.Stop()
	delete(s.pending, id)
}

// Retain cancels every pending timer whose id is not in keep.
func (s *Scheduler) Retain(keep map[string]struct{}) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled := 0
	for id := range s.pending {
		if _, ok := keep[id]; !ok {
			s.cancelLocked(id)
			cancelled++
		}
	}
	return cancelled
}

// Stop cancels all pending timers.
func (s *Scheduler) Stop() {
	s.Retain(nil)
}

// Pending returns the number of outstanding timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Scheduled reports whether a timer for id is outstanding.
func (s *Scheduler) Scheduled(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}
