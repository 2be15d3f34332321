package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/fitness"
)

func mealIcon(t fitness.MealType) string {
	switch t {
	case fitness.Breakfast:
		return styles.IconBreakfast
	case fitness.Lunch:
		return styles.IconLunch
	case fitness.Dinner:
		return styles.IconDinner
	default:
		return styles.IconSnack
	}
}

func (m Model) renderCalories() string {
	entries := m.journal.Calories()
	today := m.journal.Today()
	stats := fitness.CalorieSummary(entries, m.journal.Profile().DailyCalorieGoal, today)
	breakdown := fitness.MealBreakdown(entries, today)

	meals := make([]string, 0, len(fitness.MealTypes))
	for _, t := range fitness.MealTypes {
		meals = append(meals, fmt.Sprintf("%s %s %d", mealIcon(t), t, breakdown[t]))
	}

	summary := lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("%s %d / %d kcal today", styles.IconFire, stats.Consumed, stats.Goal),
		styles.ProgressBar(stats.Percent, chartBarWidth+10),
		styles.TextMutedStyle.Render(fmt.Sprintf("%s %s %d entries today",
			remainingText(stats.Remaining), iconDot, len(fitness.TodayCalories(entries, today)))),
		"",
		strings.Join(meals, "  "+iconDot+"  "),
	)

	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		line := fmt.Sprintf("%s  %s %-24s %5d kcal  %s",
			e.Date, mealIcon(e.MealType), e.FoodName, e.Calories,
			styles.TextMutedStyle.Render(fmt.Sprintf("P%d C%d F%d", e.Protein, e.Carbs, e.Fat)))
		if i == m.calorieCursor {
			rows = append(rows, styles.SelectedStyle.Render("› ")+line)
			continue
		}
		rows = append(rows, "  "+line)
	}
	if len(rows) == 0 {
		rows = append(rows, styles.TextMutedStyle.Render("  No entries yet. Press a to log a meal."))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		summary,
		"",
		styles.CardTitleStyle.Render("Food log"),
		strings.Join(rows, "\n"),
	)
}
