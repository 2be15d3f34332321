package form

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
)

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	variables    []string // parallel slice: variable name for each field
	focusedField int
	submitted    bool
	cancelled    bool
	err          error
	Title        string
}

// NewDialog creates a form dialog with the given fields and variable names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, variables []string) *Dialog {
	d := &Dialog{
		fields:    fields,
		variables: variables,
		Title:     title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog. Moving past the last field
// submits the form once every field validates; otherwise the first invalid
// field is focused and Err reports why.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab", "down", "enter":
		return d.advanceFocus()
	case "shift+tab", "up":
		return d.retreatFocus()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	var parts []string
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	if d.err != nil {
		parts = append(parts, "", styles.FormErrorStyle.Render(d.err.Error()))
	}

	help := styles.TextMutedStyle.Render("tab: next  shift+tab: prev  enter: next/submit  esc: cancel")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of variable names to field values.
func (d *Dialog) FormValues() map[string]string {
	result := make(map[string]string, len(d.fields))
	for i, field := range d.fields {
		result[d.variables[i]] = field.Value()
	}
	return result
}

// Field returns the field bound to variable.
func (d *Dialog) Field(variable string) (Field, bool) {
	for i, v := range d.variables {
		if v == variable {
			return d.fields[i], true
		}
	}
	return nil, false
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Err returns the validation error from the last submit attempt.
func (d *Dialog) Err() error { return d.err }

// Reopen clears the submitted flag and shows err, so a caller that rejected
// the values can keep the dialog on screen.
func (d *Dialog) Reopen(err error) {
	d.submitted = false
	d.err = err
}

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		d.submitted = true
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		return d.submit()
	}

	return d.focus(next)
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}
	return d.focus(d.focusedField - 1)
}

func (d *Dialog) submit() (*Dialog, tea.Cmd) {
	for i, f := range d.fields {
		if err := f.Validate(); err != nil {
			d.err = fmt.Errorf("%s %w", f.Label(), err)
			return d.focus(i)
		}
	}
	d.err = nil
	d.submitted = true
	return d, nil
}

func (d *Dialog) focus(i int) (*Dialog, tea.Cmd) {
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d, d.fields[i].Focus()
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}
