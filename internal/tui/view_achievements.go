package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/fitness"
)

// filterAchievements returns the achievements shown under filter, keeping
// their order.
func filterAchievements(list []fitness.Achievement, filter int) []fitness.Achievement {
	if filter == filterAll {
		return list
	}
	out := make([]fitness.Achievement, 0, len(list))
	for _, a := range list {
		if a.Unlocked == (filter == filterUnlocked) {
			out = append(out, a)
		}
	}
	return out
}

func (m Model) renderAchievements() string {
	list := m.journal.Achievements()
	counts := fitness.AchievementStats(list)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("%s %d of %d unlocked", styles.IconTrophy, counts.Unlocked, counts.Total()),
		m.renderFilterTabs(),
		"",
		renderAchievementList(filterAchievements(list, m.achievementFilter), m.achievementFilter),
	)
}

func (m Model) renderFilterTabs() string {
	tabs := make([]string, 0, filterCount)
	for i, name := range filterNames {
		if i == m.achievementFilter {
			tabs = append(tabs, styles.TabActiveStyle.Render(name))
			continue
		}
		tabs = append(tabs, styles.TabInactiveStyle.Render(name))
	}
	return strings.Join(tabs, " ")
}

func renderAchievementList(list []fitness.Achievement, filter int) string {
	if len(list) == 0 {
		switch filter {
		case filterUnlocked:
			return emptyState(styles.IconStar, "No achievements unlocked yet",
				"Complete your fitness goals to earn achievements!")
		case filterInProgress:
			return emptyState(styles.IconTrophy, "All achievements unlocked!",
				"Congratulations! You've unlocked all available achievements.")
		}
		return styles.TextMutedStyle.Render("No achievements yet.")
	}

	rows := make([]string, 0, len(list))
	for _, a := range list {
		status := styles.TextMutedStyle.Render(styles.IconLock + " locked")
		if a.Unlocked {
			status = styles.TextSuccessStyle.Render(styles.IconCheck + " unlocked")
		}
		rows = append(rows, lipgloss.JoinVertical(
			lipgloss.Left,
			fmt.Sprintf("%s %s  %s", a.Icon, styles.ValueStyle.Render(a.Name), status),
			"   "+styles.TextMutedStyle.Render(a.Description),
			fmt.Sprintf("   %s %d/%d  %s", styles.ProgressBar(percentOf(a.Progress, a.MaxProgress), chartBarWidth),
				a.Progress, a.MaxProgress, styles.TextMutedStyle.Render("reward: "+a.Reward)),
		))
	}
	return strings.Join(rows, "\n\n")
}

func emptyState(icon, title, detail string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		icon+" "+styles.ValueStyle.Render(title),
		styles.TextMutedStyle.Render(detail),
	)
}
