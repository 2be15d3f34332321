package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/fitness"
)

func exercisePrescription(sets, reps, duration int) string {
	if reps > 0 {
		return fmt.Sprintf("%d × %d", sets, reps)
	}
	return fmt.Sprintf("%d × %ds", sets, duration)
}

func (m Model) renderWorkouts() string {
	workouts := m.journal.Workouts()
	if len(workouts) == 0 {
		return styles.TextMutedStyle.Render("No workouts yet. Press n to create one.")
	}

	rows := make([]string, 0, len(workouts))
	for i, w := range workouts {
		line := fmt.Sprintf("%-24s %s", w.Name,
			styles.TextMutedStyle.Render(fmt.Sprintf("%s %s %s %s %d min", w.Category, iconDot, w.Difficulty, iconDot, w.Duration)))
		if w.Custom {
			line += " " + styles.TextSuccessStyle.Render("custom")
		}
		if i == m.workoutCursor {
			rows = append(rows, styles.SelectedStyle.Render("› ")+line)
			continue
		}
		rows = append(rows, "  "+line)
	}

	selected := workouts[min(m.workoutCursor, len(workouts)-1)]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(rows, "\n"),
		"",
		m.renderWorkoutDetail(selected),
	)
}

func (m Model) renderWorkoutDetail(w fitness.Workout) string {
	lines := []string{m.renderMarkdown(w.Description), ""}
	for _, ex := range w.Exercises {
		lines = append(lines, fmt.Sprintf("%s %-20s %s", styles.IconDumbbell, ex.Name,
			styles.TextMutedStyle.Render(exercisePrescription(ex.Sets, ex.Reps, ex.Duration))))
	}
	return card(w.Name, strings.Join(lines, "\n"), max(m.contentWidth()-4, 40))
}

// renderMarkdown renders text with glamour, falling back to plain text.
func (m Model) renderMarkdown(text string) string {
	if m.markdown == nil {
		return text
	}
	out, err := m.markdown.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

func (m Model) renderTracker() string {
	t := m.tracker
	w := t.Workout()

	status := styles.TextWarningStyle.Render("paused")
	if t.Running() {
		status = styles.TextSuccessStyle.Render("running")
	}

	exercises := t.Exercises()
	rows := make([]string, 0, len(exercises))
	for i, ex := range exercises {
		mark := styles.TextMutedStyle.Render(styles.IconCircle)
		if ex.Completed {
			mark = styles.TextSuccessStyle.Render(styles.IconCheck)
		}
		line := fmt.Sprintf("%s %-20s %s", mark, ex.Name,
			styles.TextMutedStyle.Render(exercisePrescription(ex.Sets, ex.Reps, ex.Duration)))
		if i == t.Active() {
			line += " " + styles.TextWarningStyle.Render("◀ now")
		}
		if i == m.trackerCursor {
			rows = append(rows, styles.SelectedStyle.Render("› ")+line)
			continue
		}
		rows = append(rows, "  "+line)
	}

	rating := stars(m.trackerRating)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(w.Name),
		fmt.Sprintf("%s %s  %s", styles.IconTimer, fitness.FormatElapsed(t.Elapsed()), status),
		styles.ProgressBar(float64(t.Progress()), chartBarWidth)+fmt.Sprintf(" %d%%", t.Progress()),
		"",
		strings.Join(rows, "\n"),
		"",
		"Rating: "+rating,
		m.trackerNotes.View(),
		styles.ModalHelpStyle.Render(trackerHelp(m.trackerNotes.Focused())),
	)
	return styles.ModalStyle.Render(content)
}

func trackerHelp(editingNotes bool) string {
	if editingNotes {
		return "enter/esc done"
	}
	return "s start/pause  space toggle  1-5 rate  tab notes  enter finish  esc abandon"
}
