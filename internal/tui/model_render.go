package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
)

func (m Model) renderMain(w, h int) string {
	header := m.renderTabBar()

	var body string
	switch m.activeTab {
	case TabDashboard:
		body = m.renderDashboard()
	case TabCalories:
		body = m.renderCalories()
	case TabWeight:
		body = m.renderWeight()
	case TabWorkouts:
		body = m.renderWorkouts()
	case TabAchievements:
		body = m.renderAchievements()
	case TabTrainer:
		body = m.renderTrainer()
	case TabProgress:
		body = m.renderProgress()
	}

	footer := styles.HelpStyle.Render(m.help.View(m.keys.forTab(m.activeTab)))

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body)

	// Pin the help bar to the last rows of the screen.
	gap := h - lipgloss.Height(content) - lipgloss.Height(footer)
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	content = lipgloss.JoinVertical(lipgloss.Left, content, footer)

	return lipgloss.NewStyle().MaxWidth(w).Render(content)
}

func (m Model) renderTabBar() string {
	banner := styles.BannerStyle.Render(styles.Banner) + "  " + styles.TextMutedStyle.Render(m.build.label())

	tabs := make([]string, 0, tabCount)
	for i := range tabCount {
		if i == m.activeTab {
			tabs = append(tabs, styles.TabActiveStyle.Render(i.String()))
			continue
		}
		tabs = append(tabs, styles.TabInactiveStyle.Render(i.String()))
	}
	return banner + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderForm() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(m.formDialog.Title),
		"",
		m.formDialog.View(),
	)
	return styles.ModalStyle.Render(content)
}

// card renders a titled box.
func card(title, body string, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left, styles.CardTitleStyle.Render(title), body)
	return styles.CardStyle.Width(width).Render(content)
}

func (m Model) contentWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return m.width
}
