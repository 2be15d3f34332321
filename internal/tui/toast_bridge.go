package tui

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/dojo/internal/core/toast"
)

// toastsChangedMsg tells the model to drain the bridge.
type toastsChangedMsg struct{}

// ToastBridge carries toast store updates into the Bubble Tea loop. The
// store may notify from any goroutine (removal timers fire on their own), so
// the bridge keeps only the latest state and emits coalesced signals.
type ToastBridge struct {
	mu          sync.Mutex
	state       toast.State
	pending     bool
	signal      chan struct{}
	unsubscribe func()
}

// NewToastBridge subscribes a bridge to t.
func NewToastBridge(t *toast.Toaster) *ToastBridge {
	b := &ToastBridge{signal: make(chan struct{}, 1)}
	b.unsubscribe = t.Subscribe(b.Push)
	return b
}

// Push records s and emits a non-blocking drain signal.
func (b *ToastBridge) Push(s toast.State) {
	b.mu.Lock()
	b.state = s
	b.pending = true
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns the latest state if it changed since the last drain.
func (b *ToastBridge) Drain() (toast.State, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.pending {
		return toast.State{}, false
	}
	b.pending = false
	return b.state, true
}

// WaitForSignal blocks until there is a state ready to drain.
func (b *ToastBridge) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return toastsChangedMsg{}
	}
}

// Close unsubscribes from the store.
func (b *ToastBridge) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
	}
}
