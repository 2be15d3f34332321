// Package toast implements the in-process notification store that backs every
// user-facing feedback message in dojo: a pure reducer, a dispatching store
// with ordered listener fan-out, a removal scheduler and the Toaster facade
// that views use to raise and dismiss toasts.
package toast

import "time"

// Level represents the display variant of a toast. The store never inspects it.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is a single notification held by the store.
type Toast struct {
	ID          string
	Title       string
	Description string
	Level       Level
	// Action is an opaque attachment (for example an undo binding) carried
	// through the store unchanged.
	Action    any
	Open      bool
	CreatedAt time.Time

	// OnOpenChange is called by the rendering surface when visibility changes.
	// The Toaster wires it so that OnOpenChange(false) dismisses the toast.
	OnOpenChange func(open bool)
}

// SetOpen reports a visibility change from the rendering surface.
func (t Toast) SetOpen(open bool) {
	if t.OnOpenChange != nil {
		t.OnOpenChange(open)
	}
}

// Props are the caller-supplied fields of a new toast.
type Props struct {
	Title       string
	Description string
	Level       Level
	Action      any
}

// Patch is a shallow update for an existing toast. Nil fields are left
// untouched.
type Patch struct {
	ID          string
	Title       *string
	Description *string
	Level       *Level
	Action      *any
}

// PatchFromProps builds a patch that overwrites every display field of the
// toast with the given id. Empty strings and a nil action are treated as unset.
func PatchFromProps(id string, p Props) Patch {
	patch := Patch{ID: id}
	if p.Title != "" {
		patch.Title = &p.Title
	}
	if p.Description != "" {
		patch.Description = &p.Description
	}
	if p.Level != "" {
		patch.Level = &p.Level
	}
	if p.Action != nil {
		patch.Action = &p.Action
	}
	return patch
}

func (p Patch) apply(t Toast) Toast {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Level != nil {
		t.Level = *p.Level
	}
	if p.Action != nil {
		t.Action = *p.Action
	}
	return t
}

// State is the store's snapshot: active toasts, newest first.
type State struct {
	Toasts []Toast
}

// Find returns the toast with the given id.
func (s State) Find(id string) (Toast, bool) {
	for _, t := range s.Toasts {
		if t.ID == id {
			return t, true
		}
	}
	return Toast{}, false
}

// Open returns only the toasts that are still visible, newest first.
func (s State) Open() []Toast {
	out := make([]Toast, 0, len(s.Toasts))
	for _, t := range s.Toasts {
		if t.Open {
			out = append(out, t)
		}
	}
	return out
}

func (s State) ids() map[string]struct{} {
	out := make(map[string]struct{}, len(s.Toasts))
	for _, t := range s.Toasts {
		out[t.ID] = struct{}{}
	}
	return out
}

func (s State) clone() State {
	if s.Toasts == nil {
		return State{}
	}
	out := make([]Toast, len(s.Toasts))
	copy(out, s.Toasts)
	return State{Toasts: out}
}
