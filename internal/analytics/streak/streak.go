package streak

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/trainlytics/internal/analytics/events"
)

// Result of a streak computation over a set of activity days.
type Result struct {
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	TotalDays     int        `json:"totalDays"`
	MostRecent    *time.Time `json:"mostRecentDate,omitempty"`
}

// Calculate computes the current and longest run of consecutive activity
// days. Days are reduced to UTC calendar days and deduplicated first.
// The current streak is alive only if the most recent day is today or
// yesterday, both taken as UTC days of the given "today".
func Calculate(days []time.Time, today time.Time) Result {
	sorted := distinctDescending(days)
	if len(sorted) == 0 {
		return Result{}
	}

	mostRecent := sorted[0]
	res := Result{
		TotalDays:  len(sorted),
		MostRecent: &mostRecent,
	}

	yesterday := events.DayOf(today).AddDate(0, 0, -1)
	if !mostRecent.Before(yesterday) {
		res.CurrentStreak = 1
		for i := 1; i < len(sorted); i++ {
			if daysBetween(sorted[i-1], sorted[i]) > 1 {
				break
			}
			res.CurrentStreak++
		}
	}

	longest, running := 1, 1
	for i := 1; i < len(sorted); i++ {
		if daysBetween(sorted[i-1], sorted[i]) <= 1 {
			running++
			longest = max(longest, running)
		} else {
			running = 1
		}
	}
	res.LongestStreak = longest

	return res
}

func distinctDescending(days []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(days))
	distinct := make([]time.Time, 0, len(days))
	for _, d := range days {
		if d.IsZero() {
			continue
		}
		day := events.DayOf(d)
		if seen[day] {
			continue
		}
		seen[day] = true
		distinct = append(distinct, day)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].After(distinct[j])
	})
	return distinct
}

// daysBetween returns the whole number of days from b to a; both are UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(math.Round(a.Sub(b).Hours() / 24))
}
