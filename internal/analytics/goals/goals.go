package goals

import (
	"math"
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

const DefaultMetricType = "weight"

type Goal struct {
	ID         string
	Lift       string
	MetricType string
	Start      float64
	Current    float64
	Target     float64
	Status     Status
	TargetDate *time.Time
}

// Progress is the share of the start..target range covered by current,
// as a percentage in [0, 100]. A target not above start has no progress.
func Progress(g Goal) int {
	if g.Target <= g.Start {
		return 0
	}
	p := math.Round((g.Current - g.Start) / (g.Target - g.Start) * 100)
	return int(math.Min(100, math.Max(0, p)))
}

type Evaluated struct {
	Goal
	Progress int
}

type Summary struct {
	ActiveGoals int
	Goals       []Evaluated
}

func Summarize(goals []Goal) Summary {
	s := Summary{Goals: make([]Evaluated, 0, len(goals))}
	for _, g := range goals {
		if g.Status == StatusActive {
			s.ActiveGoals++
		}
		s.Goals = append(s.Goals, Evaluated{Goal: g, Progress: Progress(g)})
	}
	return s
}
