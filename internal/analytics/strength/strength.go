package strength

import (
	"math"
	"sort"
	"strings"

	"github.com/2beens/trainlytics/internal/analytics/events"
)

// MaxRepsForEstimate is the highest rep count trusted for a 1RM estimate.
const MaxRepsForEstimate = 12

// EstimateOneRepMax returns round(weight * (1 + reps/30)).
func EstimateOneRepMax(weight float64, reps int) int {
	return int(math.Round(weight * (1 + float64(reps)/30)))
}

// Qualifies reports whether a set can be used for max estimation.
func Qualifies(set events.ExerciseSet) bool {
	return set.Weight > 0 && set.Reps > 0 && set.Reps <= MaxRepsForEstimate
}

type Max struct {
	Exercise     string  `json:"exercise"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Estimated1RM int     `json:"estimated1RM"`
}

type PR struct {
	Date         string  `json:"date"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Estimated1RM int     `json:"e1rm"`
}

type Progression struct {
	CurrentPR PR   `json:"currentPR"`
	PRCount   int  `json:"prCount"`
	History   []PR `json:"history"`
}

// CurrentMaxes keeps the best qualifying set per exercise, sorted by
// estimated 1RM descending. On equal estimates the first set seen wins.
func CurrentMaxes(workouts []events.Event) []Max {
	best := make(map[string]int)
	var maxes []Max

	for _, e := range workouts {
		if e.Workout == nil {
			continue
		}
		for _, ex := range e.Workout.Exercises {
			for _, set := range ex.Sets {
				if !Qualifies(set) {
					continue
				}
				e1rm := EstimateOneRepMax(set.Weight, set.Reps)
				idx, seen := best[ex.Name]
				if seen && e1rm <= maxes[idx].Estimated1RM {
					continue
				}
				m := Max{Exercise: ex.Name, Weight: set.Weight, Reps: set.Reps, Estimated1RM: e1rm}
				if seen {
					maxes[idx] = m
				} else {
					best[ex.Name] = len(maxes)
					maxes = append(maxes, m)
				}
			}
		}
	}

	sort.SliceStable(maxes, func(i, j int) bool {
		return maxes[i].Estimated1RM > maxes[j].Estimated1RM
	})
	return maxes
}

// PRHistory walks the workouts in chronological order and records, per
// exercise, every set whose estimate beats all earlier ones. Undated
// workouts cannot be ordered and are skipped. A non-empty filter keeps
// only the exercise with that name, compared case-insensitively.
func PRHistory(workouts []events.Event, exerciseFilter string) map[string]Progression {
	ordered := make([]events.Event, 0, len(workouts))
	for _, e := range workouts {
		if e.Workout != nil && e.Dated() {
			ordered = append(ordered, e)
		}
	}
	events.SortChronologically(ordered)

	history := make(map[string][]PR)
	for _, e := range ordered {
		date := events.FormatDay(e.OccurredAt)
		for _, ex := range e.Workout.Exercises {
			if exerciseFilter != "" && !strings.EqualFold(ex.Name, exerciseFilter) {
				continue
			}
			for _, set := range ex.Sets {
				if !Qualifies(set) {
					continue
				}
				e1rm := EstimateOneRepMax(set.Weight, set.Reps)
				prs := history[ex.Name]
				if len(prs) > 0 && e1rm <= prs[len(prs)-1].Estimated1RM {
					continue
				}
				history[ex.Name] = append(prs, PR{
					Date:         date,
					Weight:       set.Weight,
					Reps:         set.Reps,
					Estimated1RM: e1rm,
				})
			}
		}
	}

	result := make(map[string]Progression, len(history))
	for name, prs := range history {
		result[name] = Progression{
			CurrentPR: prs[len(prs)-1],
			PRCount:   len(prs),
			History:   prs,
		}
	}
	return result
}
