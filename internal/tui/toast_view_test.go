package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/pkg/tuitest"
)

func TestToastView_ViewEmpty(t *testing.T) {
	v := NewToastView(NewToastController(0, nil))
	assert.Empty(t, v.View())
}

func TestToastView_ViewRendersEachLevel(t *testing.T) {
	tests := []struct {
		level toast.Level
		icon  string
	}{
		{toast.LevelError, styles.IconNotifyError},
		{toast.LevelWarning, styles.IconNotifyWarning},
		{toast.LevelSuccess, styles.IconNotifySuccess},
		{toast.LevelInfo, styles.IconNotifyInfo},
	}

	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			tt := newTestToaster(t, 1)
			c := NewToastController(time.Second, nil)
			v := NewToastView(c)

			tt.Create(toast.Props{Title: "test msg", Description: "details", Level: tc.level})
			c.Sync(tt.State())

			out := v.View()
			require.NotEmpty(t, out)
			assert.Contains(t, out, tc.icon)
			assert.Contains(t, out, "test msg")
			assert.Contains(t, out, "details")
		})
	}
}

func TestToastView_ViewStacksOldestOnTop(t *testing.T) {
	tt := newTestToaster(t, 3)
	c := NewToastController(time.Second, nil)
	v := NewToastView(c)

	tt.Create(toast.Props{Title: "first"})
	tt.Create(toast.Props{Title: "second", Level: toast.LevelError})
	c.Sync(tt.State())

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestToastView_ViewShowsUndoHint(t *testing.T) {
	tt := newTestToaster(t, 1)
	c := NewToastController(time.Second, nil)
	v := NewToastView(c)

	tt.Create(toast.Props{Title: "Entry saved", Action: undoAction{Label: "Undo", EntryID: "c1"}})
	c.Sync(tt.State())

	assert.Contains(t, tuitest.StripANSI(v.View()), "[u] Undo")
}

func TestToastView_OverlayPassthroughWithoutToasts(t *testing.T) {
	v := NewToastView(NewToastController(0, nil))
	assert.Equal(t, "background", v.Overlay("background", 80, 24))
}
