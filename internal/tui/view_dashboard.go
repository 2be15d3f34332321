package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/fitness"
)

func (m Model) renderDashboard() string {
	d := m.journal.Snapshot()
	stats := fitness.Dashboard(d, m.now())

	cardW := max((m.contentWidth()-2)/2-1, 28)
	barW := cardW - 4

	calories := card(styles.IconFire+" Calories today", strings.Join([]string{
		fmt.Sprintf("%d / %d kcal", stats.Calories.Consumed, stats.Calories.Goal),
		styles.ProgressBar(stats.Calories.Percent, barW),
		styles.TextMutedStyle.Render(remainingText(stats.Calories.Remaining)),
	}, "\n"), cardW)

	weight := card(styles.IconScale+" Weight", strings.Join([]string{
		fmt.Sprintf("%.1f kg  %s", stats.Weight.Latest, changeText(stats.Weight.Change, d.Profile)),
		styles.ProgressBar(stats.Weight.Progress, barW),
		styles.TextMutedStyle.Render(fmt.Sprintf("%.1f kg to target (%.1f kg)", stats.Weight.ToTarget, d.Profile.TargetWeight)),
	}, "\n"), cardW)

	workouts := card(styles.IconDumbbell+" Workouts", strings.Join([]string{
		fmt.Sprintf("%d completed", stats.TotalWorkouts),
		fmt.Sprintf("%d active minutes", stats.ActiveMinutes),
		styles.TextMutedStyle.Render(fmt.Sprintf("%d day streak", stats.Streak)),
	}, "\n"), cardW)

	achievements := card(styles.IconTrophy+" Achievements", strings.Join([]string{
		fmt.Sprintf("%d / %d unlocked", stats.Achievements.Unlocked, stats.Achievements.Total()),
		styles.ProgressBar(percentOf(stats.Achievements.Unlocked, stats.Achievements.Total()), barW),
		styles.TextMutedStyle.Render(fmt.Sprintf("%d still locked", stats.Achievements.Locked)),
	}, "\n"), cardW)

	var recent []string
	for i, l := range d.WorkoutLogs {
		if i == 3 {
			break
		}
		recent = append(recent, fmt.Sprintf("%s  %-22s %3d min  %s",
			styles.TextMutedStyle.Render(l.Date), l.WorkoutName, l.Duration, stars(l.Rating)))
	}
	if len(recent) == 0 {
		recent = append(recent, styles.TextMutedStyle.Render("No workouts logged yet."))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ValueStyle.Render(fmt.Sprintf("Welcome back, %s!", d.Profile.Name)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, calories, " ", weight),
		lipgloss.JoinHorizontal(lipgloss.Top, workouts, " ", achievements),
		"",
		styles.CardTitleStyle.Render("Recent workouts"),
		strings.Join(recent, "\n"),
	)
}

func remainingText(remaining int) string {
	if remaining < 0 {
		return fmt.Sprintf("%d kcal over goal", -remaining)
	}
	return fmt.Sprintf("%d kcal remaining", remaining)
}

// changeText colors a weight change by whether it moves toward the target.
func changeText(change float64, p fitness.Profile) string {
	if change == 0 {
		return styles.TextMutedStyle.Render("±0.0 kg")
	}
	s := fmt.Sprintf("%+.1f kg", change)
	towardTarget := (p.TargetWeight < p.CurrentWeight) == (change < 0)
	if towardTarget {
		return styles.TextSuccessStyle.Render(s)
	}
	return styles.TextWarningStyle.Render(s)
}

func percentOf(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func stars(rating int) string {
	if rating <= 0 {
		return ""
	}
	return styles.TextWarningStyle.Render(strings.Repeat(styles.IconStar, rating)) +
		styles.TextMutedStyle.Render(strings.Repeat(styles.IconStar, max(5-rating, 0)))
}
