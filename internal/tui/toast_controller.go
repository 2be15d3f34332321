package tui

import (
	"time"

	"github.com/colonyops/dojo/internal/core/toast"
)

const (
	defaultToastTTL   = 5 * time.Second
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 44
)

// ToastController mirrors the open toasts of the store and closes each one
// once it has been on screen for the display TTL. Closing goes through
// Toast.SetOpen(false), so the store stays the single source of truth.
type ToastController struct {
	ttl     time.Duration
	now     func() time.Time
	toasts  []toast.Toast
	shownAt map[string]time.Time
	ticking bool
}

// NewToastController creates a controller. A zero ttl uses defaultToastTTL
// and a nil now uses time.Now.
func NewToastController(ttl time.Duration, now func() time.Time) *ToastController {
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	if now == nil {
		now = time.Now
	}
	return &ToastController{
		ttl:     ttl,
		now:     now,
		shownAt: make(map[string]time.Time),
	}
}

// Sync replaces the mirrored toasts with the open toasts of s. Toasts seen
// for the first time start their TTL now; an updated toast keeps its clock.
func (c *ToastController) Sync(s toast.State) {
	c.toasts = s.Open()

	seen := make(map[string]struct{}, len(c.toasts))
	for _, t := range c.toasts {
		seen[t.ID] = struct{}{}
		if _, ok := c.shownAt[t.ID]; !ok {
			c.shownAt[t.ID] = c.now()
		}
	}
	for id := range c.shownAt {
		if _, ok := seen[id]; !ok {
			delete(c.shownAt, id)
		}
	}
}

// Tick closes every toast whose TTL has elapsed.
func (c *ToastController) Tick() {
	now := c.now()
	alive := c.toasts[:0]
	var expired []toast.Toast
	for _, t := range c.toasts {
		if now.Sub(c.shownAt[t.ID]) >= c.ttl {
			expired = append(expired, t)
			continue
		}
		alive = append(alive, t)
	}
	c.toasts = alive

	// SetOpen dispatches synchronously; the local list is already settled.
	for _, t := range expired {
		delete(c.shownAt, t.ID)
		t.SetOpen(false)
	}
}

// Dismiss closes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) == 0 {
		return
	}
	t := c.toasts[0]
	c.toasts = c.toasts[1:]
	delete(c.shownAt, t.ID)
	t.SetOpen(false)
}

// Newest returns the most recently created open toast.
func (c *ToastController) Newest() (toast.Toast, bool) {
	if len(c.toasts) == 0 {
		return toast.Toast{}, false
	}
	return c.toasts[0], true
}

// HasToasts returns true if there are any open toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the open toasts, newest first.
func (c *ToastController) Toasts() []toast.Toast {
	return c.toasts
}

// Remaining returns how long the toast with id stays on screen.
func (c *ToastController) Remaining(id string) time.Duration {
	shown, ok := c.shownAt[id]
	if !ok {
		return 0
	}
	return max(c.ttl-c.now().Sub(shown), 0)
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
