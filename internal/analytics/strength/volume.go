package strength

import (
	"math"
	"sort"

	"github.com/2beens/trainlytics/internal/analytics/events"
)

type VolumeStats struct {
	Workouts      int     `json:"workouts"`
	TotalVolume   float64 `json:"totalVolume"`
	TotalSets     int     `json:"totalSets"`
	TotalReps     int     `json:"totalReps"`
	AvgPerWorkout float64 `json:"avgPerWorkout"`
}

// Volume sums weight*reps over every set with positive weight and reps.
// The average is per workout in the batch, including empty ones.
func Volume(workouts []events.Event) VolumeStats {
	var stats VolumeStats
	for _, e := range workouts {
		if e.Workout == nil {
			continue
		}
		stats.Workouts++
		for _, ex := range e.Workout.Exercises {
			for _, set := range ex.Sets {
				if !set.HasVolume() {
					continue
				}
				stats.TotalVolume += set.Volume()
				stats.TotalSets++
				stats.TotalReps += set.Reps
			}
		}
	}

	if stats.Workouts > 0 {
		stats.AvgPerWorkout = math.Round(stats.TotalVolume / float64(stats.Workouts))
	}
	return stats
}

type ExerciseUsage struct {
	Name        string  `json:"name"`
	Sessions    int     `json:"sessions"`
	TotalVolume float64 `json:"totalVolume"`
}

type TopExercises struct {
	TotalExercises int             `json:"totalExercises"`
	ByFrequency    []ExerciseUsage `json:"topByFrequency"`
}

// TopExercisesByFrequency counts the sessions each exercise appears in and
// returns the limit most frequent ones. A limit <= 0 returns all of them.
func TopExercisesByFrequency(workouts []events.Event, limit int) TopExercises {
	index := make(map[string]int)
	var usage []ExerciseUsage

	for _, e := range workouts {
		if e.Workout == nil {
			continue
		}
		for _, ex := range e.Workout.Exercises {
			idx, ok := index[ex.Name]
			if !ok {
				idx = len(usage)
				index[ex.Name] = idx
				usage = append(usage, ExerciseUsage{Name: ex.Name})
			}
			usage[idx].Sessions++
			for _, set := range ex.Sets {
				usage[idx].TotalVolume += set.Volume()
			}
		}
	}

	sort.SliceStable(usage, func(i, j int) bool {
		return usage[i].Sessions > usage[j].Sessions
	})

	top := TopExercises{TotalExercises: len(usage), ByFrequency: usage}
	if limit > 0 && len(usage) > limit {
		top.ByFrequency = usage[:limit]
	}
	if top.ByFrequency == nil {
		top.ByFrequency = []ExerciseUsage{}
	}
	return top
}
