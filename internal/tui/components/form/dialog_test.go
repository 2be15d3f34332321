package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dojo/internal/core/validate"
)

func tab() tea.Msg      { return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}) }
func shiftTab() tea.Msg { return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}) }
func enter() tea.Msg    { return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}) }

func TestDialog(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		f1 := NewTextField("Food", "", "", nil)
		f2 := NewTextField("Calories", "", "", nil)
		d := NewDialog("Add Food", []Field{f1, f2}, []string{"food", "calories"})

		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
	})

	t.Run("tab and enter advance focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "", nil)
		f2 := NewTextField("B", "", "", nil)
		f3 := NewTextField("C", "", "", nil)
		d := NewDialog("Test", []Field{f1, f2, f3}, []string{"a", "b", "c"})

		d.Update(tab())
		assert.True(t, f2.Focused())

		d.Update(enter())
		assert.True(t, f3.Focused())
		assert.False(t, f2.Focused())
	})

	t.Run("shift+tab retreats focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "", nil)
		f2 := NewTextField("B", "", "", nil)
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})

		d.Update(tab())
		d.Update(shiftTab())
		assert.True(t, f1.Focused())

		d.Update(shiftTab())
		assert.True(t, f1.Focused(), "stays on first field")
	})

	t.Run("advancing past last field submits", func(t *testing.T) {
		f1 := NewTextField("A", "", "x", nil)
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(enter())
		assert.True(t, d.Submitted())
		assert.Equal(t, map[string]string{"a": "x"}, d.FormValues())
	})

	t.Run("invalid field blocks submit and takes focus", func(t *testing.T) {
		f1 := NewTextField("Calories", "", "", validate.PositiveInt)
		f2 := NewTextField("Notes", "", "", nil)
		d := NewDialog("Test", []Field{f1, f2}, []string{"calories", "notes"})

		d.Update(tab())
		d.Update(enter())

		assert.False(t, d.Submitted())
		require.Error(t, d.Err())
		assert.Contains(t, d.Err().Error(), "Calories")
		assert.True(t, f1.Focused())
		assert.Contains(t, d.View(), "Calories must be a whole number")
	})

	t.Run("esc cancels", func(t *testing.T) {
		d := NewDialog("Test", []Field{NewTextField("A", "", "", nil)}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.True(t, d.Cancelled())
	})

	t.Run("reopen clears submitted", func(t *testing.T) {
		d := NewDialog("Test", []Field{NewTextField("A", "", "x", nil)}, []string{"a"})
		d.Update(enter())
		require.True(t, d.Submitted())

		d.Reopen(assert.AnError)
		assert.False(t, d.Submitted())
		assert.Equal(t, assert.AnError, d.Err())
	})

	t.Run("field lookup", func(t *testing.T) {
		f := NewTextField("A", "", "", nil)
		d := NewDialog("Test", []Field{f}, []string{"a"})

		got, ok := d.Field("a")
		require.True(t, ok)
		assert.Same(t, f, got)

		_, ok = d.Field("missing")
		assert.False(t, ok)
	})
}
