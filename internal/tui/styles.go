// Package tui implements the Bubble Tea TUI for dojo.
package tui

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
)

const iconDot = "•"

// Button styles are derived on use so they follow theme changes made after
// package init.
func modalButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.ColorMuted).
		Padding(0, 2)
}

func modalButtonSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.ColorBackground).
		Background(styles.ColorPrimary).
		Bold(true).
		Padding(0, 2)
}

// overlayCenter composites fg centered over bg.
func overlayCenter(bg, fg string, width, height int) string {
	bgLayer := lipgloss.NewLayer(bg)
	fgLayer := lipgloss.NewLayer(fg)
	x := max((width-lipgloss.Width(fg))/2, 0)
	y := max((height-lipgloss.Height(fg))/2, 0)
	fgLayer.X(x).Y(y).Z(1)
	return lipgloss.NewCompositor(bgLayer, fgLayer).Render()
}
