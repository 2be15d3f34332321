package tui

import (
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/core/validate"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/tui/components/form"
)

func stringsOf[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func (m Model) openForm(kind formKind, d *form.Dialog) (tea.Model, tea.Cmd) {
	m.formDialog = d
	m.formKind = kind
	m.state = stateForm
	return m, nil
}

func (m Model) openCalorieForm() (tea.Model, tea.Cmd) {
	return m.openForm(formCalorie, form.NewDialog("Log Food", []form.Field{
		form.NewTextField("Food", "e.g. Oatmeal with berries", "", validate.Required),
		form.NewTextField("Calories", "kcal", "", validate.PositiveInt),
		form.NewChoiceField("Meal", stringsOf(fitness.MealTypes), string(fitness.Breakfast)),
		form.NewTextField("Protein", "grams", "", validate.OptionalInt),
		form.NewTextField("Carbs", "grams", "", validate.OptionalInt),
		form.NewTextField("Fat", "grams", "", validate.OptionalInt),
		form.NewTextField("Date", "YYYY-MM-DD", m.journal.Today(), validate.Date),
	}, []string{"food", "calories", "meal", "protein", "carbs", "fat", "date"}))
}

func (m Model) openWeightForm() (tea.Model, tea.Cmd) {
	return m.openForm(formWeight, form.NewDialog("Log Weight", []form.Field{
		form.NewTextField("Weight", "kg", "", validate.PositiveFloat),
		form.NewTextField("Date", "YYYY-MM-DD", m.journal.Today(), validate.Date),
		form.NewTextField("Notes", "optional", "", nil),
	}, []string{"weight", "date", "notes"}))
}

func (m Model) openWorkoutForm() (tea.Model, tea.Cmd) {
	m.editingID = ""
	return m.openForm(formWorkout, workoutDialog("New Workout", fitness.Workout{
		Category:   fitness.Strength,
		Difficulty: fitness.Beginner,
		Duration:   30,
	}))
}

// openEditWorkoutForm opens the workout form prefilled with w. Submitting
// replaces w in place.
func (m Model) openEditWorkoutForm(w fitness.Workout) (tea.Model, tea.Cmd) {
	m.editingID = w.ID
	return m.openForm(formWorkout, workoutDialog("Edit Workout", w))
}

func workoutDialog(title string, w fitness.Workout) *form.Dialog {
	names := make([]string, len(w.Exercises))
	for i, ex := range w.Exercises {
		names[i] = ex.Name
	}
	return form.NewDialog(title, []form.Field{
		form.NewTextField("Name", "e.g. Morning Mobility", w.Name, validate.Required),
		form.NewChoiceField("Category", stringsOf(fitness.Categories), string(w.Category)),
		form.NewChoiceField("Difficulty", stringsOf(fitness.Difficulties), string(w.Difficulty)),
		form.NewTextField("Duration", "minutes", strconv.Itoa(w.Duration), validate.OptionalInt),
		form.NewTextField("Exercises", "comma separated, e.g. Push-ups, Squats", strings.Join(names, ", "), validate.Required),
		form.NewTextField("Description", "optional", w.Description, nil),
	}, []string{"name", "category", "difficulty", "duration", "exercises", "description"})
}

func (m Model) closeForm() Model {
	m.formDialog = nil
	m.formKind = formNone
	m.editingID = ""
	m.state = stateNormal
	return m
}

func (m Model) handleFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	prevErr := m.formDialog.Err()

	var cmd tea.Cmd
	m.formDialog, cmd = m.formDialog.Update(msg)

	switch {
	case m.formDialog.Cancelled():
		return m.closeForm(), nil
	case m.formDialog.Submitted():
		return m.submitForm()
	}

	// A failed submit sets a fresh error; surface it once as a toast.
	if err := m.formDialog.Err(); err != nil && err != prevErr {
		m.toaster.Create(toast.Props{
			Title:       "Check the form",
			Description: err.Error(),
			Level:       toast.LevelError,
		})
		return m, tea.Batch(cmd, m.syncToasts())
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	values := m.formDialog.FormValues()

	var props toast.Props
	var err error
	switch m.formKind {
	case formCalorie:
		props, err = m.saveCalories(values)
	case formWeight:
		props, err = m.saveWeight(values)
	case formWorkout:
		props, err = m.saveWorkout(values)
	}

	if err != nil {
		m.log.Warn().Err(err).Int("form", int(m.formKind)).Msg("save rejected")
		m.formDialog.Reopen(err)
		m.toaster.Create(toast.Props{
			Title:       "Could not save",
			Description: err.Error(),
			Level:       toast.LevelError,
		})
		return m, m.syncToasts()
	}

	m = m.closeForm()
	m.refreshSeries()
	m.toaster.Create(props)
	return m, m.syncToasts()
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func (m Model) saveCalories(values map[string]string) (toast.Props, error) {
	entry, err := m.journal.AddCalorieEntry(fitness.CalorieInput{
		Date:     values["date"],
		FoodName: values["food"],
		Calories: atoiOrZero(values["calories"]),
		MealType: fitness.MealType(values["meal"]),
		Protein:  atoiOrZero(values["protein"]),
		Carbs:    atoiOrZero(values["carbs"]),
		Fat:      atoiOrZero(values["fat"]),
	})
	if err != nil {
		return toast.Props{}, err
	}

	return toast.Props{
		Title:       "Entry saved",
		Description: entry.FoodName + " · " + strconv.Itoa(entry.Calories) + " kcal",
		Level:       toast.LevelSuccess,
		Action:      undoAction{Label: "Undo", EntryID: entry.ID},
	}, nil
}

func (m Model) saveWeight(values map[string]string) (toast.Props, error) {
	weight, _ := strconv.ParseFloat(values["weight"], 64)
	entry, err := m.journal.AddWeightEntry(fitness.WeightInput{
		Date:   values["date"],
		Weight: weight,
		Notes:  values["notes"],
	})
	if err != nil {
		return toast.Props{}, err
	}

	return toast.Props{
		Title:       "Weight logged",
		Description: strconv.FormatFloat(entry.Weight, 'f', 1, 64) + " kg on " + entry.Date,
		Level:       toast.LevelSuccess,
	}, nil
}

func (m *Model) saveWorkout(values map[string]string) (toast.Props, error) {
	var current []fitness.Exercise
	if m.editingID != "" {
		w, err := m.journal.Workout(m.editingID)
		if err != nil {
			return toast.Props{}, err
		}
		current = w.Exercises
	}

	w, err := m.journal.SaveWorkout(fitness.WorkoutInput{
		ID:          m.editingID,
		Name:        values["name"],
		Description: values["description"],
		Category:    fitness.Category(values["category"]),
		Difficulty:  fitness.Difficulty(values["difficulty"]),
		Duration:    atoiOrZero(values["duration"]),
		Exercises:   m.parseExercises(values["exercises"], current),
	})
	if err != nil {
		return toast.Props{}, err
	}

	if m.editingID != "" {
		return toast.Props{
			Title:       "Workout updated",
			Description: w.Name + " has been saved.",
			Level:       toast.LevelSuccess,
		}, nil
	}

	m.workoutCursor = len(m.journal.Workouts()) - 1
	return toast.Props{
		Title:       "Workout created",
		Description: w.Name + " is ready to start.",
		Level:       toast.LevelSuccess,
	}, nil
}

// parseExercises resolves a comma separated list against the workout's
// current exercises and then the exercise library, creating a default
// exercise for any unknown name. Repeated exercises are kept once.
func (m Model) parseExercises(list string, current []fitness.Exercise) []fitness.Exercise {
	known := append(slices.Clone(current), m.journal.Snapshot().Exercises...)

	var out []fitness.Exercise
	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var ex fitness.Exercise
		if i := slices.IndexFunc(known, func(k fitness.Exercise) bool { return strings.EqualFold(k.Name, name) }); i >= 0 {
			ex = known[i]
		} else {
			ex = fitness.NewExercise(name)
		}

		dup := slices.ContainsFunc(out, func(o fitness.Exercise) bool {
			return o.ID == ex.ID || strings.EqualFold(o.Name, ex.Name)
		})
		if !dup {
			out = append(out, ex)
		}
	}
	return out
}
