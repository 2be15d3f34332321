// Package fitness holds the dojo domain: workouts, food and weight journals,
// achievements and the metrics derived from them.
package fitness

import "time"

// Difficulty of a workout.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists every Difficulty in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// Category of a workout.
type Category string

const (
	Strength    Category = "strength"
	Cardio      Category = "cardio"
	Flexibility Category = "flexibility"
	Balance     Category = "balance"
)

// Categories lists every workout Category.
var Categories = []Category{Strength, Cardio, Flexibility, Balance}

// MealType classifies a calorie entry.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists every MealType in the order meals are eaten.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Exercise is a single movement within a workout. Duration and RestTime are
// in seconds; a zero Reps means the exercise is timed.
type Exercise struct {
	ID          string
	Name        string
	Sets        int
	Reps        int
	Duration    int
	RestTime    int
	Description string
}

// Workout is a named list of exercises. Duration is the planned length in
// minutes.
type Workout struct {
	ID          string
	Name        string
	Exercises   []Exercise
	Difficulty  Difficulty
	Duration    int
	Category    Category
	Description string
	Custom      bool
}

// CompletedExercise records one exercise of a tracked workout.
type CompletedExercise struct {
	ID         string
	ExerciseID string
	Name       string
	Sets       int
	Reps       int
	Duration   int
	Completed  bool
}

// WorkoutLog is a finished workout session. Duration is in whole minutes.
type WorkoutLog struct {
	ID          string
	WorkoutID   string
	WorkoutName string
	Date        string
	Duration    int
	Exercises   []CompletedExercise
	Notes       string
	Rating      int
}

// CalorieEntry is a food journal line. Macros are in grams.
type CalorieEntry struct {
	ID       string
	Date     string
	FoodName string
	Calories int
	MealType MealType
	Protein  int
	Carbs    int
	Fat      int
}

// WeightEntry is a weigh-in in kilograms.
type WeightEntry struct {
	ID     string
	Date   string
	Weight float64
	Notes  string
}

// Achievement is a goal with progress toward unlocking it.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    bool
	Progress    int
	MaxProgress int
	Reward      string
}

// ChatMessage is one line of the trainer conversation.
type ChatMessage struct {
	ID        string
	Sender    Sender
	Text      string
	Timestamp time.Time
}

// Profile describes the user. Height is in centimeters and weights in kilograms.
type Profile struct {
	Name             string
	Age              int
	Height           float64
	CurrentWeight    float64
	TargetWeight     float64
	FitnessGoal      string
	ActivityLevel    string
	DailyCalorieGoal int
}

// Data is the full set of journal records.
type Data struct {
	Profile      Profile
	Exercises    []Exercise
	Workouts     []Workout
	WorkoutLogs  []WorkoutLog
	Achievements []Achievement
	Calories     []CalorieEntry
	Weights      []WeightEntry
	Chat         []ChatMessage
}

// FormatDate renders t as a journal date (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
