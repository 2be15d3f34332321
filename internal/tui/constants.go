package tui

import "time"

// Tab identifies one of the top-level views.
type Tab int

const (
	TabDashboard Tab = iota
	TabCalories
	TabWeight
	TabWorkouts
	TabAchievements
	TabTrainer
	TabProgress
	tabCount
)

var tabNames = [tabCount]string{
	"Dashboard",
	"Calories",
	"Weight",
	"Workouts",
	"Achievements",
	"Trainer",
	"Progress",
}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "unknown"
	}
	return tabNames[t]
}

const (
	trackerTickInterval = time.Second
	progressDays        = 14
	chartBarWidth       = 30
	defaultWidth        = 80
	defaultHeight       = 24
	defaultRating       = 5
)

// Progress tab charts.
const (
	chartWeight = iota
	chartCalories
	chartWorkouts
	chartCount
)

var chartNames = [chartCount]string{"Weight", "Calories", "Workouts"}

// Achievements tab filters.
const (
	filterAll = iota
	filterUnlocked
	filterInProgress
	filterCount
)

var filterNames = [filterCount]string{"All", "Unlocked", "In Progress"}
