package toast

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// MaxSafeInteger is the wrap-around point of the id counter.
const MaxSafeInteger = 1<<53 - 1

// Handle controls a toast returned by Toaster.Create.
type Handle struct {
	ID string

	toaster *Toaster
}

// Dismiss closes the toast and schedules its removal.
func (h Handle) Dismiss() {
	h.toaster.Dismiss(h.ID)
}

// Update merges the non-empty fields of p into the toast. It cannot clear
// a field or change Open; use Apply to blank a field and Dismiss to close.
func (h Handle) Update(p Props) {
	h.toaster.store.Dispatch(Update(PatchFromProps(h.ID, p)))
}

// Apply dispatches an explicit patch for the toast; the patch id is ignored.
func (h Handle) Apply(p Patch) {
	p.ID = h.ID
	h.toaster.store.Dispatch(Update(p))
}

// Toaster is the consumer-facing API of the toast store. Views create and
// dismiss toasts through it and never dispatch actions themselves.
type Toaster struct {
	store *Store
	now   func() time.Time

	mu    sync.Mutex
	count uint64
}

// NewToaster wraps store.
func NewToaster(store *Store) *Toaster {
	return &Toaster{
		store: store,
		now:   time.Now,
	}
}

// New creates a Toaster backed by a fresh store.
func New(opts Options) *Toaster {
	return NewToaster(NewStore(opts))
}

// Store returns the underlying store.
func (t *Toaster) Store() *Store { return t.store }

func (t *Toaster) nextID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count = (t.count + 1) % MaxSafeInteger
	return strconv.FormatUint(t.count, 10)
}

// Create adds a new open toast and returns a handle to it.
func (t *Toaster) Create(p Props) Handle {
	id := t.nextID()
	if p.Level == "" {
		p.Level = LevelInfo
	}

	t.store.Dispatch(Add(Toast{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		Level:       p.Level,
		Action:      p.Action,
		Open:        true,
		CreatedAt:   t.now(),
		OnOpenChange: func(open bool) {
			if !open {
				t.Dismiss(id)
			}
		},
	}))

	return Handle{ID: id, toaster: t}
}

// Dismiss closes the toast with id. An empty id dismisses every toast.
func (t *Toaster) Dismiss(id string) {
	t.store.Dispatch(Dismiss(id))
}

// DismissAll closes every toast.
func (t *Toaster) DismissAll() {
	t.store.Dispatch(Dismiss(""))
}

// Subscribe registers fn for state changes. See Store.Subscribe.
func (t *Toaster) Subscribe(fn Listener) func() {
	return t.store.Subscribe(fn)
}

// State returns the current toast list.
func (t *Toaster) State() State {
	return t.store.State()
}

// Infof raises an info-level toast.
func (t *Toaster) Infof(format string, args ...any) Handle {
	return t.Create(Props{Level: LevelInfo, Title: fmt.Sprintf(format, args...)})
}

// Successf raises a success-level toast.
func (t *Toaster) Successf(format string, args ...any) Handle {
	return t.Create(Props{Level: LevelSuccess, Title: fmt.Sprintf(format, args...)})
}

// Warnf raises a warning-level toast.
func (t *Toaster) Warnf(format string, args ...any) Handle {
	return t.Create(Props{Level: LevelWarning, Title: fmt.Sprintf(format, args...)})
}

// Errorf raises an error-level toast.
func (t *Toaster) Errorf(format string, args ...any) Handle {
	return t.Create(Props{Level: LevelError, Title: fmt.Sprintf(format, args...)})
}
