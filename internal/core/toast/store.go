package toast

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultLimit is the maximum number of toasts held at once.
	DefaultLimit = 1
	// DefaultRemoveDelay is how long a dismissed toast lingers before it is
	// deleted, leaving the rendering surface time for its exit.
	DefaultRemoveDelay = 1_000_000 * time.Millisecond
)

// Listener is called with the new state after every dispatched action.
type Listener func(State)

// Options configures a Store.
type Options struct {
	Limit       int
	RemoveDelay time.Duration
	Clock       Clock
	Logger      zerolog.Logger
}

type subscription struct {
	fn     Listener
	closed atomic.Bool
}

// Store holds the toast state and is the only writer of it. It is safe for
// concurrent use: removal timers dispatch from their own goroutines.
//
// Dispatch is not reentrant. An action dispatched while listeners are being
// notified (from a listener or from another goroutine) is queued and applied
// after the current fan-out completes, so every listener observes states in
// dispatch order.
type Store struct {
	limit     int
	log       zerolog.Logger
	scheduler *Scheduler

	mu          sync.Mutex
	state       State
	subs        []*subscription
	queue       []Action
	dispatching bool
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.RemoveDelay <= 0 {
		opts.RemoveDelay = DefaultRemoveDelay
	}

	s := &Store{
		limit: opts.Limit,
		log:   opts.Logger,
		state: State{Toasts: []Toast{}},
	}
	s.scheduler = NewScheduler(opts.Clock, opts.RemoveDelay, func(id string) {
		s.Dispatch(Remove(id))
	})
	return s
}

// Limit returns the configured maximum number of toasts.
func (s *Store) Limit() int { return s.limit }

// Scheduler exposes the removal scheduler for inspection.
func (s *Store) Scheduler() *Scheduler { return s.scheduler }

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn for every subsequent state change and returns a
// function that deregisters it. Callers that need the current state should
// read State() right after subscribing.
func (s *Store) Subscribe(fn Listener) func() {
	sub := &subscription{fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.closed.Store(true)

			s.mu.Lock()
			defer s.mu.Unlock()
			for i, v := range s.subs {
				if v == sub {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Dispatch applies action and notifies listeners synchronously, unless a
// dispatch is already in progress, in which case action is queued behind it.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.queue = append(s.queue, action)
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true

	// A panicking listener unwinds with s.mu released; reset so the store
	// keeps accepting actions afterwards.
	locked := true
	defer func() {
		if !locked {
			s.mu.Lock()
		}
		s.queue = nil
		s.dispatching = false
		s.mu.Unlock()
	}()

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]

		state := s.apply(next)
		subs := make([]*subscription, len(s.subs))
		copy(subs, s.subs)

		s.mu.Unlock()
		locked = false
		for _, sub := range subs {
			if sub.closed.Load() {
				continue
			}
			sub.fn(state.clone())
		}
		s.mu.Lock()
		locked = true
	}
}

// apply reduces action into the store and keeps removal timers in step with
// the new list. Callers hold s.mu.
func (s *Store) apply(action Action) State {
	prev := s.state
	next := Reduce(prev, action, s.limit)
	s.state = next

	if action.Type == ActionDismiss {
		for _, t := range prev.Toasts {
			if action.ID != "" && t.ID != action.ID {
				continue
			}
			if s.scheduler.Schedule(t.ID) {
				s.log.Debug().Str("toast_id", t.ID).Msg("removal scheduled")
			}
		}
	}

	if cancelled := s.scheduler.Retain(next.ids()); cancelled > 0 {
		s.log.Debug().Int("cancelled", cancelled).Msg("removal timers cancelled")
	}

	s.log.Debug().
		Stringer("action", action.Type).
		Str("id", actionID(action)).
		Int("toasts", len(next.Toasts)).
		Msg("toast dispatch")

	return next
}

// Close cancels all pending removal timers.
func (s *Store) Close() {
	s.scheduler.Stop()
}

func actionID(a Action) string {
	switch a.Type {
	case ActionAdd:
		return a.Toast.ID
	case ActionUpdate:
		return a.Patch.ID
	default:
		return a.ID
	}
}
