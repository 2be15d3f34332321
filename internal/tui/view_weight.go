package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/fitness"
)

func (m Model) renderWeight() string {
	entries := m.journal.Weights()
	profile := m.journal.Profile()
	stats := fitness.WeightSummary(entries, profile)

	summary := lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("%s %.1f kg  %s", styles.IconScale, stats.Latest, changeText(stats.Change, profile)),
		styles.ProgressBar(stats.Progress, chartBarWidth+10),
		styles.TextMutedStyle.Render(fmt.Sprintf("%.0f%% of the way to %.1f kg, %.1f kg to go",
			stats.Progress, profile.TargetWeight, stats.ToTarget)),
	)

	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		delta := ""
		if i+1 < len(entries) {
			delta = changeText(e.Weight-entries[i+1].Weight, profile)
		}
		rows = append(rows, fmt.Sprintf("  %s  %6.1f kg  %-10s %s",
			e.Date, e.Weight, delta, styles.TextMutedStyle.Render(e.Notes)))
	}
	if len(rows) == 0 {
		rows = append(rows, styles.TextMutedStyle.Render("  No weigh-ins yet. Press a to add one."))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		summary,
		"",
		styles.CardTitleStyle.Render("Weigh-ins"),
		strings.Join(rows, "\n"),
	)
}
