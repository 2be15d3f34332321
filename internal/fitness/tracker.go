package fitness

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Tracker follows a workout in progress: which exercises are done, which
// one is active and how long the session has been running.
type Tracker struct {
	workout   Workout
	exercises []CompletedExercise
	active    int
	elapsed   time.Duration
	running   bool
}

// NewTracker starts tracking w with every exercise pending and the timer
// stopped.
func NewTracker(w Workout) *Tracker {
	exercises := make([]CompletedExercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		exercises[i] = CompletedExercise{
			ID:         "completed-" + ex.ID,
			ExerciseID: ex.ID,
			Name:       ex.Name,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Duration:   ex.Duration,
		}
	}
	return &Tracker{workout: w, exercises: exercises}
}

// Workout returns the workout being tracked.
func (t *Tracker) Workout() Workout { return t.workout }

// Start runs the timer.
func (t *Tracker) Start() { t.running = true }

// Pause stops the timer.
func (t *Tracker) Pause() { t.running = false }

// Running reports whether the timer is running.
func (t *Tracker) Running() bool { return t.running }

// Tick advances the timer by d if it is running.
func (t *Tracker) Tick(d time.Duration) {
	if t.running {
		t.elapsed += d
	}
}

// Elapsed returns the time spent with the timer running.
func (t *Tracker) Elapsed() time.Duration { return t.elapsed }

// Active returns the index of the exercise being worked on.
func (t *Tracker) Active() int { return t.active }

// Exercises returns the completion state of every exercise.
func (t *Tracker) Exercises() []CompletedExercise {
	return slices.Clone(t.exercises)
}

// Toggle flips exercise i. Completing the active exercise moves on to the
// next one.
func (t *Tracker) Toggle(i int) error {
	if i < 0 || i >= len(t.exercises) {
		return fmt.Errorf("exercise %d: %w", i, ErrNotFound)
	}

	t.exercises[i].Completed = !t.exercises[i].Completed
	if t.exercises[i].Completed && i == t.active && i < len(t.exercises)-1 {
		t.active = i + 1
	}
	return nil
}

// Completed returns how many exercises are done.
func (t *Tracker) Completed() int {
	n := 0
	for _, e := range t.exercises {
		if e.Completed {
			n++
		}
	}
	return n
}

// Progress returns the share of completed exercises as a whole percentage.
func (t *Tracker) Progress() int {
	if len(t.exercises) == 0 {
		return 0
	}
	return int(math.Round(float64(t.Completed()) / float64(len(t.exercises)) * 100))
}

// Complete ends the session and builds its log entry. Duration is rounded
// up to whole minutes. The log has no id or date; Journal.LogWorkout fills
// them in.
func (t *Tracker) Complete(notes string, rating int) (WorkoutLog, error) {
	if t.Completed() == 0 {
		return WorkoutLog{}, ErrNothingCompleted
	}
	t.running = false

	secs := int(t.elapsed / time.Second)
	return WorkoutLog{
		WorkoutID:   t.workout.ID,
		WorkoutName: t.workout.Name,
		Duration:    (secs + 59) / 60,
		Exercises:   t.Exercises(),
		Notes:       notes,
		Rating:      rating,
	}, nil
}

// FormatElapsed renders d as MM:SS.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
