package fitness

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/core/validate"
)

var (
	// ErrNotFound is returned when an id does not match any record.
	ErrNotFound = errors.New("not found")
	// ErrNoExercises is returned when saving a workout without exercises.
	ErrNoExercises = errors.New("workout needs at least one exercise")
	// ErrNothingCompleted is returned when finishing a workout with no
	// completed exercises.
	ErrNothingCompleted = errors.New("no exercises completed")
	// ErrNotCustom is returned when editing one of the preset workouts.
	ErrNotCustom = errors.New("only custom workouts can be edited")
)

// CalorieInput is the user-supplied part of a CalorieEntry.
type CalorieInput struct {
	Date     string
	FoodName string
	Calories int
	MealType MealType
	Protein  int
	Carbs    int
	Fat      int
}

// WeightInput is the user-supplied part of a WeightEntry.
type WeightInput struct {
	Date   string
	Weight float64
	Notes  string
}

// WorkoutInput describes a custom workout to create or, when ID names an
// existing workout, replace.
type WorkoutInput struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Difficulty  Difficulty
	Duration    int
	Exercises   []Exercise
}

// Journal is the in-memory record store behind every dojo view. It is safe
// for concurrent use; accessors return copies.
type Journal struct {
	mu   sync.RWMutex
	data Data
	now  func() time.Time
	log  zerolog.Logger
}

// NewJournal wraps data. now defaults to time.Now.
func NewJournal(data Data, now func() time.Time) *Journal {
	if now == nil {
		now = time.Now
	}
	return &Journal{
		data: data.Clone(),
		now:  now,
		log:  logging.Component("journal"),
	}
}

// Today returns the current journal date.
func (j *Journal) Today() string {
	return FormatDate(j.now())
}

// Snapshot returns a deep copy of every record.
func (j *Journal) Snapshot() Data {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.data.Clone()
}

// Profile returns the user profile.
func (j *Journal) Profile() Profile {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.data.Profile
}

// Calories returns the food journal, newest first.
func (j *Journal) Calories() []CalorieEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.data.Calories)
}

// Weights returns weigh-ins sorted by date, newest first.
func (j *Journal) Weights() []WeightEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.data.Weights)
}

// Workouts returns every workout, presets first.
func (j *Journal) Workouts() []Workout {
	return j.Snapshot().Workouts
}

// WorkoutLogs returns finished sessions, newest first.
func (j *Journal) WorkoutLogs() []WorkoutLog {
	return j.Snapshot().WorkoutLogs
}

// Achievements returns every achievement.
func (j *Journal) Achievements() []Achievement {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.data.Achievements)
}

// Workout returns the workout with id.
func (j *Journal) Workout(id string) (Workout, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	for _, w := range j.data.Workouts {
		if w.ID == id {
			w.Exercises = slices.Clone(w.Exercises)
			return w, nil
		}
	}
	return Workout{}, fmt.Errorf("workout %q: %w", id, ErrNotFound)
}

// AddCalorieEntry validates in and prepends it to the food journal. The
// date defaults to today and the meal type to breakfast.
func (j *Journal) AddCalorieEntry(in CalorieInput) (CalorieEntry, error) {
	in.FoodName = strings.TrimSpace(in.FoodName)
	if in.MealType == "" {
		in.MealType = Breakfast
	}

	if err := validateCalorieInput(in); err != nil {
		return CalorieEntry{}, err
	}

	if in.Date == "" {
		in.Date = j.Today()
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	entry := CalorieEntry{
		ID:       nextID("c", len(j.data.Calories), func(id string) bool { return j.hasCalorie(id) }),
		Date:     in.Date,
		FoodName: in.FoodName,
		Calories: in.Calories,
		MealType: in.MealType,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}
	j.data.Calories = slices.Insert(j.data.Calories, 0, entry)

	j.log.Debug().Str("id", entry.ID).Int("calories", entry.Calories).Msg("calorie entry added")
	return entry, nil
}

// RemoveCalorieEntry deletes the entry with id and returns it.
func (j *Journal) RemoveCalorieEntry(id string) (CalorieEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	idx := slices.IndexFunc(j.data.Calories, func(e CalorieEntry) bool { return e.ID == id })
	if idx < 0 {
		return CalorieEntry{}, fmt.Errorf("calorie entry %q: %w", id, ErrNotFound)
	}

	entry := j.data.Calories[idx]
	j.data.Calories = slices.Delete(j.data.Calories, idx, idx+1)

	j.log.Debug().Str("id", id).Msg("calorie entry removed")
	return entry, nil
}

// AddWeightEntry validates in and inserts it, keeping weigh-ins sorted by
// date with the newest first. The date defaults to today.
func (j *Journal) AddWeightEntry(in WeightInput) (WeightEntry, error) {
	var errs criterio.FieldErrorsBuilder
	if in.Weight <= 0 {
		errs = errs.Append("weight", fmt.Errorf("must be greater than zero"))
	}
	if err := criterio.ValidateStruct(errs.ToError(), validate.DateField("date", in.Date)); err != nil {
		return WeightEntry{}, err
	}

	if in.Date == "" {
		in.Date = j.Today()
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	entry := WeightEntry{
		ID:     nextID("w", len(j.data.Weights), func(id string) bool { return j.hasWeight(id) }),
		Date:   in.Date,
		Weight: in.Weight,
		Notes:  strings.TrimSpace(in.Notes),
	}

	weights := slices.Insert(j.data.Weights, 0, entry)
	slices.SortStableFunc(weights, func(a, b WeightEntry) int {
		return strings.Compare(b.Date, a.Date)
	})
	j.data.Weights = weights

	j.log.Debug().Str("id", entry.ID).Float64("weight", entry.Weight).Msg("weight entry added")
	return entry, nil
}

// NewExercise returns a custom exercise with the default prescription.
func NewExercise(name string) Exercise {
	return Exercise{
		ID:          "custom-ex-" + uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Sets:        3,
		Reps:        10,
		Duration:    30,
		RestTime:    60,
		Description: "No description provided.",
	}
}

// SaveWorkout creates a custom workout, or replaces the custom workout whose
// id matches in.ID. Presets cannot be replaced.
func (j *Journal) SaveWorkout(in WorkoutInput) (Workout, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Category == "" {
		in.Category = Strength
	}
	if in.Difficulty == "" {
		in.Difficulty = Beginner
	}
	if in.Duration == 0 {
		in.Duration = 30
	}
	if strings.TrimSpace(in.Description) == "" {
		in.Description = "Custom workout"
	}

	var errs criterio.FieldErrorsBuilder
	if in.Duration < 0 {
		errs = errs.Append("duration", fmt.Errorf("cannot be negative"))
	}
	err := criterio.ValidateStruct(
		validate.RequiredField("name", in.Name),
		criterio.Run("category", string(in.Category), validate.OneOf(Categories...)),
		criterio.Run("difficulty", string(in.Difficulty), validate.OneOf(Difficulties...)),
		errs.ToError(),
	)
	if err != nil {
		return Workout{}, err
	}
	if len(in.Exercises) == 0 {
		return Workout{}, ErrNoExercises
	}

	w := Workout{
		ID:          in.ID,
		Name:        in.Name,
		Exercises:   slices.Clone(in.Exercises),
		Difficulty:  in.Difficulty,
		Duration:    in.Duration,
		Category:    in.Category,
		Description: in.Description,
		Custom:      true,
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if w.ID != "" {
		idx := slices.IndexFunc(j.data.Workouts, func(x Workout) bool { return x.ID == w.ID })
		if idx < 0 {
			return Workout{}, fmt.Errorf("workout %q: %w", w.ID, ErrNotFound)
		}
		if !j.data.Workouts[idx].Custom {
			return Workout{}, fmt.Errorf("workout %q: %w", w.ID, ErrNotCustom)
		}
		j.data.Workouts[idx] = w
		j.log.Debug().Str("id", w.ID).Msg("workout updated")
		return w, nil
	}

	w.ID = "custom-workout-" + uuid.NewString()
	j.data.Workouts = append(j.data.Workouts, w)

	j.log.Debug().Str("id", w.ID).Int("exercises", len(w.Exercises)).Msg("workout created")
	return w, nil
}

// LogWorkout records a finished session, newest first. Missing ids and
// dates are filled in.
func (j *Journal) LogWorkout(l WorkoutLog) (WorkoutLog, error) {
	if !slices.ContainsFunc(l.Exercises, func(e CompletedExercise) bool { return e.Completed }) {
		return WorkoutLog{}, ErrNothingCompleted
	}
	if l.Rating < 1 || l.Rating > 5 {
		return WorkoutLog{}, criterio.NewFieldErrors("rating", fmt.Errorf("must be between 1 and 5"))
	}

	if l.ID == "" {
		l.ID = "log-" + uuid.NewString()
	}
	if l.Date == "" {
		l.Date = j.Today()
	}
	l.Exercises = slices.Clone(l.Exercises)

	j.mu.Lock()
	defer j.mu.Unlock()

	j.data.WorkoutLogs = slices.Insert(j.data.WorkoutLogs, 0, l)

	j.log.Debug().Str("id", l.ID).Str("workout", l.WorkoutID).Int("minutes", l.Duration).Msg("workout logged")
	return l, nil
}

func validateCalorieInput(in CalorieInput) error {
	var errs criterio.FieldErrorsBuilder
	if in.Calories <= 0 {
		errs = errs.Append("calories", fmt.Errorf("must be greater than zero"))
	}
	if in.Protein < 0 {
		errs = errs.Append("protein", fmt.Errorf("cannot be negative"))
	}
	if in.Carbs < 0 {
		errs = errs.Append("carbs", fmt.Errorf("cannot be negative"))
	}
	if in.Fat < 0 {
		errs = errs.Append("fat", fmt.Errorf("cannot be negative"))
	}

	return criterio.ValidateStruct(
		validate.RequiredField("food_name", in.FoodName),
		errs.ToError(),
		criterio.Run("meal_type", string(in.MealType), validate.OneOf(MealTypes...)),
		validate.DateField("date", in.Date),
	)
}

func (j *Journal) hasCalorie(id string) bool {
	return slices.ContainsFunc(j.data.Calories, func(e CalorieEntry) bool { return e.ID == id })
}

func (j *Journal) hasWeight(id string) bool {
	return slices.ContainsFunc(j.data.Weights, func(e WeightEntry) bool { return e.ID == id })
}

// nextID returns prefix+n for the first n above count that is not taken.
func nextID(prefix string, count int, taken func(string) bool) string {
	for n := count + 1; ; n++ {
		id := prefix + strconv.Itoa(n)
		if !taken(id) {
			return id
		}
	}
}
