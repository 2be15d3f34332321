package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/core/toast"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack as a single string with toasts stacked
// vertically (oldest at top, newest at bottom).
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for i := len(toasts) - 1; i >= 0; i-- {
		rendered = append(rendered, renderToast(toasts[i]))
	}

	return strings.Join(rendered, "\n")
}

func toastStyle(level toast.Level) (string, lipgloss.Style) {
	switch level {
	case toast.LevelError:
		return styles.IconNotifyError, styles.ToastErrorStyle
	case toast.LevelWarning:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	case toast.LevelSuccess:
		return styles.IconNotifySuccess, styles.ToastSuccessStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

func renderToast(t toast.Toast) string {
	icon, style := toastStyle(t.Level)

	lines := []string{icon + " " + styles.ToastTitleStyle.Render(t.Title)}
	if t.Description != "" {
		lines = append(lines, styles.TextMutedStyle.Render(t.Description))
	}
	if a, ok := t.Action.(undoAction); ok {
		lines = append(lines, styles.ToastActionStyle.Render("[u] "+a.Label))
	}

	return style.Width(toastWidth).Render(strings.Join(lines, "\n"))
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH-1, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
