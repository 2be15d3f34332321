package fitness

import (
	"errors"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2025, 4, 13, 10, 0, 0, 0, time.UTC)

var testProfile = Profile{
	Name:             "Fitness Hero",
	CurrentWeight:    75.5,
	TargetWeight:     70,
	DailyCalorieGoal: 2200,
}

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	return NewJournal(SampleData(testToday, testProfile), func() time.Time { return testToday })
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var fe criterio.FieldErrors
	require.ErrorAs(t, err, &fe)
	names := make([]string, 0, len(fe))
	for _, e := range fe {
		names = append(names, e.Field)
	}
	return names
}

func TestSampleData_DatesFollowToday(t *testing.T) {
	d := SampleData(testToday, testProfile)

	assert.Equal(t, "2025-04-13", d.Calories[0].Date)
	assert.Equal(t, "2025-04-12", d.Calories[2].Date)
	assert.Equal(t, "2025-04-07", d.Weights[2].Date)
	assert.Equal(t, "2025-04-11", d.WorkoutLogs[1].Date)
	assert.Len(t, d.Workouts, 3)
	assert.Equal(t, testProfile, d.Profile)
}

func TestData_CloneIsDeep(t *testing.T) {
	d := SampleData(testToday, testProfile)
	c := d.Clone()

	c.Workouts[0].Exercises[0].Name = "changed"
	c.WorkoutLogs[0].Exercises[0].Completed = false
	c.Calories[0].FoodName = "changed"

	assert.Equal(t, "Push-ups", d.Workouts[0].Exercises[0].Name)
	assert.True(t, d.WorkoutLogs[0].Exercises[0].Completed)
	assert.Equal(t, "Miso Ramen", d.Calories[0].FoodName)
}

func TestJournal_AddCalorieEntry(t *testing.T) {
	j := newTestJournal(t)

	e, err := j.AddCalorieEntry(CalorieInput{FoodName: "  Onigiri ", Calories: 200, MealType: Snack})
	require.NoError(t, err)

	assert.Equal(t, "c4", e.ID)
	assert.Equal(t, "Onigiri", e.FoodName)
	assert.Equal(t, "2025-04-13", e.Date, "date defaults to today")
	assert.Equal(t, e, j.Calories()[0], "new entries are prepended")
	assert.Len(t, j.Calories(), 4)
}

func TestJournal_AddCalorieEntryDefaultsMealType(t *testing.T) {
	j := newTestJournal(t)

	e, err := j.AddCalorieEntry(CalorieInput{FoodName: "Toast", Calories: 90})
	require.NoError(t, err)
	assert.Equal(t, Breakfast, e.MealType)
}

func TestJournal_AddCalorieEntryValidation(t *testing.T) {
	tests := []struct {
		name   string
		in     CalorieInput
		fields []string
	}{
		{
			name:   "missing food and calories",
			in:     CalorieInput{},
			fields: []string{"food_name", "calories"},
		},
		{
			name:   "unknown meal",
			in:     CalorieInput{FoodName: "Tea", Calories: 5, MealType: "brunch"},
			fields: []string{"meal_type"},
		},
		{
			name:   "bad date",
			in:     CalorieInput{FoodName: "Tea", Calories: 5, Date: "13/04/2025"},
			fields: []string{"date"},
		},
		{
			name:   "negative macro",
			in:     CalorieInput{FoodName: "Tea", Calories: 5, Fat: -1},
			fields: []string{"fat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := newTestJournal(t)

			_, err := j.AddCalorieEntry(tt.in)
			require.Error(t, err)
			assert.ElementsMatch(t, tt.fields, fieldNames(t, err))
			assert.Len(t, j.Calories(), 3, "nothing stored")
		})
	}
}

func TestJournal_CalorieIDsSkipTaken(t *testing.T) {
	j := newTestJournal(t)

	first, err := j.AddCalorieEntry(CalorieInput{FoodName: "a", Calories: 1})
	require.NoError(t, err)
	_, err = j.RemoveCalorieEntry("c1")
	require.NoError(t, err)

	second, err := j.AddCalorieEntry(CalorieInput{FoodName: "b", Calories: 1})
	require.NoError(t, err)

	assert.Equal(t, "c4", first.ID)
	assert.Equal(t, "c5", second.ID, "c4 is still present after c1 was removed")
}

func TestJournal_RemoveCalorieEntry(t *testing.T) {
	j := newTestJournal(t)

	e, err := j.RemoveCalorieEntry("c2")
	require.NoError(t, err)
	assert.Equal(t, "Grilled Chicken", e.FoodName)
	assert.Len(t, j.Calories(), 2)

	_, err = j.RemoveCalorieEntry("c2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournal_AddWeightEntrySortedNewestFirst(t *testing.T) {
	j := newTestJournal(t)

	e, err := j.AddWeightEntry(WeightInput{Date: "2025-04-09", Weight: 76.0, Notes: " evening "})
	require.NoError(t, err)
	assert.Equal(t, "w4", e.ID)
	assert.Equal(t, "evening", e.Notes)

	dates := []string{}
	for _, w := range j.Weights() {
		dates = append(dates, w.Date)
	}
	assert.Equal(t, []string{"2025-04-13", "2025-04-10", "2025-04-09", "2025-04-07"}, dates)
}

func TestJournal_AddWeightEntrySameDayGoesFirst(t *testing.T) {
	j := newTestJournal(t)

	e, err := j.AddWeightEntry(WeightInput{Weight: 75.1})
	require.NoError(t, err)

	assert.Equal(t, e.ID, j.Weights()[0].ID)
	assert.Equal(t, "2025-04-13", e.Date)
}

func TestJournal_AddWeightEntryValidation(t *testing.T) {
	j := newTestJournal(t)

	_, err := j.AddWeightEntry(WeightInput{Weight: 0, Date: "soon"})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"weight", "date"}, fieldNames(t, err))
}

func TestJournal_SaveWorkoutCreatesCustom(t *testing.T) {
	j := newTestJournal(t)

	w, err := j.SaveWorkout(WorkoutInput{
		Name:      "Ronin Circuit",
		Exercises: []Exercise{NewExercise("Burpees")},
	})
	require.NoError(t, err)

	assert.True(t, w.Custom)
	assert.Contains(t, w.ID, "custom-workout-")
	assert.Equal(t, Strength, w.Category)
	assert.Equal(t, Beginner, w.Difficulty)
	assert.Equal(t, "Custom workout", w.Description)

	got, err := j.Workout(w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Burpees", got.Exercises[0].Name)
	assert.Len(t, j.Workouts(), 4)
}

func TestJournal_SaveWorkoutReplacesById(t *testing.T) {
	j := newTestJournal(t)

	created, err := j.SaveWorkout(WorkoutInput{Name: "Ronin Circuit", Exercises: []Exercise{NewExercise("Rolls")}})
	require.NoError(t, err)

	w, err := j.SaveWorkout(WorkoutInput{ID: created.ID, Name: "Ronin Circuit II", Exercises: []Exercise{NewExercise("Rolls")}})
	require.NoError(t, err)

	assert.Equal(t, created.ID, w.ID)
	got, err := j.Workout(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ronin Circuit II", got.Name)
	assert.True(t, got.Custom)
	assert.Len(t, j.Workouts(), 4)
}

func TestJournal_SaveWorkoutRejectsPresets(t *testing.T) {
	j := newTestJournal(t)

	_, err := j.SaveWorkout(WorkoutInput{ID: "w1", Name: "Ninja Training II", Exercises: []Exercise{NewExercise("Rolls")}})
	require.ErrorIs(t, err, ErrNotCustom)

	got, err := j.Workout("w1")
	require.NoError(t, err)
	assert.Equal(t, "Ninja Training", got.Name)
	assert.False(t, got.Custom)
}

func TestJournal_SaveWorkoutErrors(t *testing.T) {
	j := newTestJournal(t)

	_, err := j.SaveWorkout(WorkoutInput{Name: "Empty"})
	require.ErrorIs(t, err, ErrNoExercises)

	_, err = j.SaveWorkout(WorkoutInput{Name: " ", Category: "yoga", Exercises: []Exercise{NewExercise("x")}})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"name", "category"}, fieldNames(t, err))

	_, err = j.SaveWorkout(WorkoutInput{ID: "missing", Name: "x", Exercises: []Exercise{NewExercise("x")}})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestJournal_LogWorkout(t *testing.T) {
	j := newTestJournal(t)

	l, err := j.LogWorkout(WorkoutLog{
		WorkoutID: "w2",
		Duration:  12,
		Exercises: []CompletedExercise{{Name: "Lunges", Completed: true}},
		Rating:    4,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "2025-04-13", l.Date)
	assert.Equal(t, l.ID, j.WorkoutLogs()[0].ID)

	_, err = j.LogWorkout(WorkoutLog{Exercises: []CompletedExercise{{Name: "Lunges"}}, Rating: 3})
	assert.True(t, errors.Is(err, ErrNothingCompleted))

	for _, rating := range []int{0, 6} {
		_, err = j.LogWorkout(WorkoutLog{Exercises: []CompletedExercise{{Name: "Lunges", Completed: true}}, Rating: rating})
		require.Error(t, err)
		assert.Equal(t, []string{"rating"}, fieldNames(t, err))
	}
}

func TestJournal_AccessorsReturnCopies(t *testing.T) {
	j := newTestJournal(t)

	j.Calories()[0].FoodName = "mutated"
	j.Workouts()[0].Exercises[0].Name = "mutated"

	assert.Equal(t, "Miso Ramen", j.Calories()[0].FoodName)
	assert.Equal(t, "Push-ups", j.Workouts()[0].Exercises[0].Name)
}
