package fitness

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalorieSummary(t *testing.T) {
	entries := []CalorieEntry{
		{Date: "2025-04-13", Calories: 450},
		{Date: "2025-04-13", Calories: 250},
		{Date: "2025-04-12", Calories: 180},
	}

	tests := []struct {
		name string
		goal int
		want CalorieStats
	}{
		{"under goal", 2200, CalorieStats{Goal: 2200, Consumed: 700, Remaining: 1500, Percent: 700.0 / 2200 * 100}},
		{"over goal is capped", 500, CalorieStats{Goal: 500, Consumed: 700, Remaining: -200, Percent: 100}},
		{"no goal", 0, CalorieStats{Consumed: 700, Remaining: -700}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalorieSummary(entries, tt.goal, "2025-04-13")
			assert.Equal(t, tt.want.Consumed, got.Consumed)
			assert.Equal(t, tt.want.Remaining, got.Remaining)
			assert.InDelta(t, tt.want.Percent, got.Percent, 0.001)
		})
	}
}

func TestTodayCalories(t *testing.T) {
	entries := []CalorieEntry{
		{ID: "c1", Date: "2025-04-13"},
		{ID: "c3", Date: "2025-04-12"},
		{ID: "c2", Date: "2025-04-13"},
	}

	got := TodayCalories(entries, "2025-04-13")

	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
	assert.Empty(t, TodayCalories(entries, "2025-01-01"))
}

func TestMealBreakdown(t *testing.T) {
	d := SampleData(testToday, testProfile)

	got := MealBreakdown(d.Calories, "2025-04-13")
	assert.Equal(t, 450, got[Lunch])
	assert.Equal(t, 250, got[Dinner])
	assert.Zero(t, got[Breakfast])
}

func TestWeightSummary(t *testing.T) {
	p := Profile{CurrentWeight: 76, TargetWeight: 70}

	tests := []struct {
		name     string
		entries  []WeightEntry
		latest   float64
		change   float64
		progress float64
	}{
		{"no entries uses profile", nil, 76, 0, 0},
		{"single entry", []WeightEntry{{Weight: 73}}, 73, 0, 50},
		{"loss", []WeightEntry{{Weight: 74.5}, {Weight: 75}}, 74.5, -0.5, 25},
		{"past target clamps", []WeightEntry{{Weight: 68}}, 68, 0, 100},
		{"gain clamps", []WeightEntry{{Weight: 80}}, 80, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightSummary(tt.entries, p)
			assert.InDelta(t, tt.latest, got.Latest, 0.001)
			assert.InDelta(t, tt.change, got.Change, 0.001)
			assert.InDelta(t, tt.progress, got.Progress, 0.001)
			assert.InDelta(t, tt.latest-70, got.ToTarget, 0.001)
		})
	}
}

func TestWeightSummary_TargetEqualsCurrent(t *testing.T) {
	p := Profile{CurrentWeight: 70, TargetWeight: 70}

	assert.InDelta(t, 100, WeightSummary(nil, p).Progress, 0.001)
	assert.InDelta(t, 0, WeightSummary([]WeightEntry{{Weight: 71}}, p).Progress, 0.001)
}

func TestAchievementStats(t *testing.T) {
	d := SampleData(testToday, testProfile)

	got := AchievementStats(d.Achievements)
	assert.Equal(t, 1, got.Unlocked)
	assert.Equal(t, 4, got.Locked)
	assert.Equal(t, 5, got.Total())
}

func TestDashboard(t *testing.T) {
	d := SampleData(testToday, testProfile)

	got := Dashboard(d, testToday)
	assert.Equal(t, "2025-04-13", got.Today)
	assert.Equal(t, 700, got.Calories.Consumed)
	assert.Equal(t, 1500, got.Calories.Remaining)
	assert.True(t, got.HasWeight)
	assert.InDelta(t, 75.5, got.Weight.Latest, 0.001)
	assert.Equal(t, 2, got.TotalWorkouts)
	assert.Equal(t, 72, got.ActiveMinutes)
	assert.Equal(t, 1, got.Streak)
}

func TestStreak(t *testing.T) {
	logs := []WorkoutLog{{Date: "2025-04-12"}, {Date: "2025-04-11"}, {Date: "2025-04-09"}}

	assert.Equal(t, 2, Streak(logs, testToday), "yesterday's streak still counts")
	assert.Zero(t, Streak(nil, testToday))

	logs = append(logs, WorkoutLog{Date: "2025-04-13"})
	assert.Equal(t, 3, Streak(logs, testToday))
}

func TestProgressSeries(t *testing.T) {
	d := SampleData(testToday, testProfile)
	rng := rand.New(rand.NewPCG(1, 2))

	s := ProgressSeries(d, testToday, 7, rng)

	require.Len(t, s.Weight, 7)
	assert.Equal(t, "2025-04-07", s.Weight[0].Date, "recorded weights come first, oldest first")
	assert.InDelta(t, 75.5, s.Weight[2].Value, 0.001)
	for _, p := range s.Weight[3:] {
		assert.InDelta(t, 75.5, p.Value, 0.31)
	}

	require.Len(t, s.Calories, 7)
	assert.Equal(t, "2025-04-13", s.Calories[6].Date)
	assert.Equal(t, "Apr 13", s.Calories[6].Label)
	assert.InDelta(t, 700, s.Calories[6].Value, 0.001)
	assert.InDelta(t, 180, s.Calories[5].Value, 0.001)
	for _, p := range s.Calories[:5] {
		assert.GreaterOrEqual(t, p.Value, 1400.0)
		assert.Less(t, p.Value, 2200.0)
	}

	require.Len(t, s.Workouts, 7)
	assert.Equal(t, 32, s.Workouts[6].Minutes)
	assert.Equal(t, "Ninja Training", s.Workouts[6].Workout)
	assert.Equal(t, 40, s.Workouts[4].Minutes)
}

func TestProgressSeries_IsDeterministicPerSeed(t *testing.T) {
	d := SampleData(testToday, testProfile)

	a := ProgressSeries(d, testToday, 7, rand.New(rand.NewPCG(7, 7)))
	b := ProgressSeries(d, testToday, 7, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)

	assert.Empty(t, ProgressSeries(d, testToday, 0, nil).Weight)
}
