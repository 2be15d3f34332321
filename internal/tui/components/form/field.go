// Package form provides the modal entry forms used by the dojo TUI.
package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	Label() string
	// Validate checks the current value. A nil error means the value is
	// acceptable.
	Validate() error
}
