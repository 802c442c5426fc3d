package streak

import (
	"math"
	"time"

	"github.com/2beens/trainlytics/internal/analytics/events"
)

type Consistency struct {
	PeriodDays      int     `json:"periodDays"`
	TotalWorkouts   int     `json:"totalWorkouts"`
	UniqueDays      int     `json:"uniqueDays"`
	WorkoutsPerWeek float64 `json:"workoutsPerWeek"`
	// Percent is the share of days in the period with at least one workout
	Percent int `json:"percent"`
}

// CalculateConsistency relates the number of workouts and distinct workout
// days to the length of the period they were fetched for.
func CalculateConsistency(totalWorkouts int, days []time.Time, periodDays int) Consistency {
	c := Consistency{
		PeriodDays:    periodDays,
		TotalWorkouts: totalWorkouts,
	}

	unique := make(map[time.Time]bool, len(days))
	for _, d := range days {
		if d.IsZero() {
			continue
		}
		unique[events.DayOf(d)] = true
	}
	c.UniqueDays = len(unique)

	if periodDays <= 0 {
		return c
	}

	weeks := float64(periodDays) / 7
	c.WorkoutsPerWeek = math.Round(float64(totalWorkouts)/weeks*10) / 10
	c.Percent = int(math.Round(float64(c.UniqueDays) / float64(periodDays) * 100))

	return c
}
