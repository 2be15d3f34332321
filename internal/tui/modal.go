package tui

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
)

// Modal represents a confirmation dialog.
type Modal struct {
	title           string
	message         string
	visible         bool
	confirmSelected bool // true = confirm button selected, false = cancel button selected
}

// NewModal creates a new modal with the given title and message.
func NewModal(title, message string) Modal {
	return Modal{
		title:           title,
		message:         message,
		visible:         true,
		confirmSelected: true,
	}
}

// ToggleSelection switches the selected button.
func (m *Modal) ToggleSelection() {
	m.confirmSelected = !m.confirmSelected
}

// ConfirmSelected returns true if the confirm button is selected.
func (m Modal) ConfirmSelected() bool {
	return m.confirmSelected
}

// Visible returns whether the modal should be displayed.
func (m Modal) Visible() bool {
	return m.visible
}

// Overlay renders the modal centered over background.
func (m Modal) Overlay(background string, width, height int) string {
	if !m.visible {
		return background
	}

	confirmBtn := modalButtonStyle().Render("Confirm")
	cancelBtn := modalButtonStyle().Render("Cancel")
	if m.confirmSelected {
		confirmBtn = modalButtonSelectedStyle().Render("Confirm")
	} else {
		cancelBtn = modalButtonSelectedStyle().Render("Cancel")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		m.message,
		lipgloss.NewStyle().MarginTop(1).Render(buttons),
		styles.ModalHelpStyle.Render("←/→ select  enter confirm  esc cancel"),
	)

	return overlayCenter(background, styles.ModalStyle.Render(content), width, height)
}
