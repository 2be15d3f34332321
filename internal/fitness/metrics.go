package fitness

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// CalorieStats summarizes one day of the food journal.
type CalorieStats struct {
	Goal      int
	Consumed  int
	Remaining int
	// Percent of the goal consumed, capped at 100.
	Percent float64
}

// TodayCalories returns the entries dated day, keeping their order.
func TodayCalories(entries []CalorieEntry, day string) []CalorieEntry {
	var out []CalorieEntry
	for _, e := range entries {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out
}

// CalorieSummary totals the entries dated day against goal.
func CalorieSummary(entries []CalorieEntry, goal int, day string) CalorieStats {
	stats := CalorieStats{Goal: goal}
	for _, e := range TodayCalories(entries, day) {
		stats.Consumed += e.Calories
	}
	stats.Remaining = goal - stats.Consumed
	if goal > 0 {
		stats.Percent = min(float64(stats.Consumed)/float64(goal)*100, 100)
	}
	return stats
}

// MealBreakdown sums calories per meal type for day.
func MealBreakdown(entries []CalorieEntry, day string) map[MealType]int {
	out := make(map[MealType]int, len(MealTypes))
	for _, e := range entries {
		if e.Date == day {
			out[e.MealType] += e.Calories
		}
	}
	return out
}

// WeightStats compares recent weigh-ins against the target weight.
type WeightStats struct {
	Latest   float64
	Previous float64
	// Change is Latest - Previous; negative means weight was lost.
	Change   float64
	ToTarget float64
	// Progress toward the target as a percentage in [0, 100].
	Progress float64
}

// WeightSummary computes weight progress. entries must be newest first. With
// no entries the profile's current weight stands in for the latest weigh-in.
func WeightSummary(entries []WeightEntry, p Profile) WeightStats {
	var s WeightStats

	s.Latest = p.CurrentWeight
	if len(entries) > 0 {
		s.Latest = entries[0].Weight
	}
	s.Previous = s.Latest
	if len(entries) > 1 {
		s.Previous = entries[1].Weight
	}
	s.Change = s.Latest - s.Previous
	s.ToTarget = s.Latest - p.TargetWeight

	span := p.CurrentWeight - p.TargetWeight
	switch {
	case span == 0 && s.ToTarget == 0:
		s.Progress = 100
	case span == 0:
		s.Progress = 0
	default:
		s.Progress = clamp(100-(s.ToTarget/span*100), 0, 100)
	}
	return s
}

// AchievementCounts splits achievements into unlocked and locked.
type AchievementCounts struct {
	Unlocked int
	Locked   int
}

// Total returns the number of achievements.
func (c AchievementCounts) Total() int { return c.Unlocked + c.Locked }

// AchievementStats counts unlocked and locked achievements.
func AchievementStats(list []Achievement) AchievementCounts {
	var c AchievementCounts
	for _, a := range list {
		if a.Unlocked {
			c.Unlocked++
		} else {
			c.Locked++
		}
	}
	return c
}

// DashboardStats is the aggregate shown on the dashboard tab and by
// `dojo summary`.
type DashboardStats struct {
	Today         string
	Calories      CalorieStats
	Weight        WeightStats
	HasWeight     bool
	Achievements  AchievementCounts
	TotalWorkouts int
	ActiveMinutes int
	Streak        int
}

// Dashboard aggregates d as of today.
func Dashboard(d Data, today time.Time) DashboardStats {
	day := FormatDate(today)
	stats := DashboardStats{
		Today:         day,
		Calories:      CalorieSummary(d.Calories, d.Profile.DailyCalorieGoal, day),
		Weight:        WeightSummary(d.Weights, d.Profile),
		HasWeight:     len(d.Weights) > 0,
		Achievements:  AchievementStats(d.Achievements),
		TotalWorkouts: len(d.WorkoutLogs),
		Streak:        Streak(d.WorkoutLogs, today),
	}
	for _, l := range d.WorkoutLogs {
		stats.ActiveMinutes += l.Duration
	}
	return stats
}

// Streak counts consecutive days with at least one logged workout, ending
// today. A streak that ended yesterday still counts until today is over.
func Streak(logs []WorkoutLog, today time.Time) int {
	days := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		days[l.Date] = struct{}{}
	}

	cursor := today
	if _, ok := days[FormatDate(cursor)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[FormatDate(cursor)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// Point is one sample of a daily chart.
type Point struct {
	Date  string
	Label string
	Value float64
}

// WorkoutPoint is one day of the workout chart.
type WorkoutPoint struct {
	Date    string
	Label   string
	Minutes int
	Workout string
}

// Series holds the chart data for the progress tab.
type Series struct {
	Weight   []Point
	Calories []Point
	Workouts []WorkoutPoint
}

// ProgressSeries builds daily charts covering the last days days. Recorded
// data always wins; gaps are filled with plausible values drawn from rng so
// a fresh journal still has a chart to look at.
func ProgressSeries(d Data, today time.Time, days int, rng *rand.Rand) Series {
	if days <= 0 {
		return Series{}
	}
	return Series{
		Weight:   weightSeries(d.Weights, today, days, rng),
		Calories: calorieSeries(d.Calories, today, days, rng),
		Workouts: workoutSeries(d, today, days, rng),
	}
}

func weightSeries(entries []WeightEntry, today time.Time, days int, rng *rand.Rand) []Point {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b WeightEntry) int {
		return strings.Compare(a.Date, b.Date)
	})

	points := make([]Point, 0, max(days, len(sorted)))
	for _, e := range sorted {
		points = append(points, Point{Date: e.Date, Label: chartLabel(e.Date), Value: e.Weight})
	}

	last := 75.0
	if len(sorted) > 0 {
		last = sorted[len(sorted)-1].Weight
	}
	for i := len(points); i < days; i++ {
		date := FormatDate(today.AddDate(0, 0, -(days - i)))
		w := math.Round((last+rng.Float64()*0.6-0.3)*10) / 10
		points = append(points, Point{Date: date, Label: chartLabel(date), Value: w})
	}
	return points
}

func calorieSeries(entries []CalorieEntry, today time.Time, days int, rng *rand.Rand) []Point {
	points := make([]Point, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := FormatDate(today.AddDate(0, 0, -i))
		total, found := 0, false
		for _, e := range entries {
			if e.Date == date {
				total += e.Calories
				found = true
			}
		}
		if !found {
			total = rng.IntN(800) + 1400
		}
		points = append(points, Point{Date: date, Label: chartLabel(date), Value: float64(total)})
	}
	return points
}

func workoutSeries(d Data, today time.Time, days int, rng *rand.Rand) []WorkoutPoint {
	points := make([]WorkoutPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := FormatDate(today.AddDate(0, 0, -i))
		p := WorkoutPoint{Date: date, Label: chartLabel(date)}

		for _, l := range d.WorkoutLogs {
			if l.Date == date {
				p.Minutes += l.Duration
				if p.Workout == "" {
					p.Workout = l.WorkoutName
				}
			}
		}

		if p.Minutes == 0 && rng.Float64() < 0.7 {
			p.Minutes = rng.IntN(45) + 15
			if len(d.Workouts) > 0 {
				p.Workout = d.Workouts[rng.IntN(len(d.Workouts))].Name
			}
		}
		points = append(points, p)
	}
	return points
}

func chartLabel(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
