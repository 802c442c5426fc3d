package events

import (
	"sort"
	"time"
)

const DayLayout = "2006-01-02"

type Kind string

const (
	KindWorkout Kind = "workout"
	KindCostLog Kind = "cost-log"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindWorkout, KindCostLog:
		return true
	default:
		return false
	}
}

// Event is one completed activity instance of a subject.
// A zero OccurredAt means the stored date could not be resolved.
type Event struct {
	ID         string
	OwnerID    string
	Kind       Kind
	OccurredAt time.Time

	// payload, set according to Kind
	Workout *Workout
	Cost    *CostEntry
}

func (e Event) Dated() bool {
	return !e.OccurredAt.IsZero()
}

// Day returns the UTC calendar day of the event.
func (e Event) Day() (time.Time, bool) {
	if !e.Dated() {
		return time.Time{}, false
	}
	return DayOf(e.OccurredAt), true
}

// DayOf truncates t to UTC midnight.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// SortChronologically orders events by OccurredAt ascending. The sort is
// stable and undated events go last.
func SortChronologically(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Dated() != b.Dated() {
			return a.Dated()
		}
		return a.OccurredAt.Before(b.OccurredAt)
	})
}

// DistinctDays returns the set of calendar days the events occurred on,
// in first-seen order. Undated events are skipped.
func DistinctDays(events []Event) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, e := range events {
		day, ok := e.Day()
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}
