package tui

import (
	"fmt"
	"slices"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/fitness"
)

func (m Model) renderProgress() string {
	tabs := make([]string, 0, chartCount)
	for i, name := range chartNames {
		if i == m.chart {
			tabs = append(tabs, styles.TabActiveStyle.Render(name))
			continue
		}
		tabs = append(tabs, styles.TabInactiveStyle.Render(name))
	}

	var rows []string
	switch m.chart {
	case chartWeight:
		rows = weightChart(m.series.Weight)
	case chartCalories:
		rows = calorieChart(m.series.Calories, m.journal.Profile().DailyCalorieGoal)
	case chartWorkouts:
		rows = workoutChart(m.series.Workouts)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.IconChart+" "+lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		styles.TextMutedStyle.Render(fmt.Sprintf("Last %d days", progressDays)),
		"",
		strings.Join(rows, "\n"),
	)
}

// weightChart scales bars between the lowest and highest weight so small
// changes stay visible.
func weightChart(points []fitness.Point) []string {
	if len(points) == 0 {
		return nil
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	lo, hi := slices.Min(values), slices.Max(values)

	rows := make([]string, 0, len(points))
	for _, p := range points {
		pct := 100.0
		if hi > lo {
			pct = 20 + (p.Value-lo)/(hi-lo)*80
		}
		rows = append(rows, fmt.Sprintf("%-7s %s %5.1f kg", p.Label, styles.ProgressBar(pct, chartBarWidth), p.Value))
	}
	return rows
}

func calorieChart(points []fitness.Point, goal int) []string {
	top := float64(goal)
	for _, p := range points {
		top = max(top, p.Value)
	}

	rows := make([]string, 0, len(points))
	for _, p := range points {
		pct := 0.0
		if top > 0 {
			pct = p.Value / top * 100
		}
		line := fmt.Sprintf("%-7s %s %5.0f kcal", p.Label, styles.ProgressBar(pct, chartBarWidth), p.Value)
		if goal > 0 && p.Value > float64(goal) {
			line += " " + styles.TextWarningStyle.Render("over")
		}
		rows = append(rows, line)
	}
	return rows
}

func workoutChart(points []fitness.WorkoutPoint) []string {
	top := 0
	for _, p := range points {
		top = max(top, p.Minutes)
	}

	rows := make([]string, 0, len(points))
	for _, p := range points {
		if p.Minutes == 0 {
			rows = append(rows, fmt.Sprintf("%-7s %s", p.Label, styles.TextMutedStyle.Render("rest day")))
			continue
		}
		pct := float64(p.Minutes) / float64(top) * 100
		rows = append(rows, fmt.Sprintf("%-7s %s %3d min  %s", p.Label, styles.ProgressBar(pct, chartBarWidth),
			p.Minutes, styles.TextMutedStyle.Render(p.Workout)))
	}
	return rows
}
