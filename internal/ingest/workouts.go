package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/2beens/trainlytics/internal/analytics/coach"
	"github.com/2beens/trainlytics/internal/analytics/events"
	"github.com/2beens/trainlytics/internal/store"

	log "github.com/sirupsen/logrus"
)

type workoutDocument struct {
	Name      string             `json:"name"`
	Date      *Timestamp         `json:"date"`
	Exercises []exerciseDocument `json:"exercises"`
}

type exerciseDocument struct {
	Name string        `json:"name"`
	Sets []setDocument `json:"sets"`
}

type setDocument struct {
	ActualWeight     Value `json:"actualWeight"`
	PrescribedWeight Value `json:"prescribedWeight"`
	ActualReps       Value `json:"actualReps"`
	PrescribedReps   Value `json:"prescribedReps"`
}

// The performed values win over the prescribed ones, missing or zero
// values fall through to the next field.
func (s setDocument) canonical() events.ExerciseSet {
	return events.ExerciseSet{
		Weight: FirstFloat(s.ActualWeight, s.PrescribedWeight),
		Reps:   FirstInt(s.ActualReps, s.PrescribedReps),
	}
}

func decodeWorkout(data []byte) (workoutDocument, error) {
	var doc workoutDocument
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return workoutDocument{}, fmt.Errorf("unmarshal workout document: %w", err)
	}
	return doc, nil
}

// Workout converts a stored workout into a workout event. An unreadable
// document yields an event without exercises, so the workout still counts.
// The date column wins over a date inside the document.
func Workout(rec store.WorkoutRecord) events.Event {
	doc, err := decodeWorkout(rec.Data)
	if err != nil {
		log.Warnf("ingest workout %s: %s", rec.ID, err)
	}

	e := events.Event{
		ID:      rec.ID,
		OwnerID: rec.OwnerID,
		Kind:    events.KindWorkout,
		Workout: &events.Workout{
			Name:      doc.Name,
			Status:    events.WorkoutStatus(rec.Status),
			GroupID:   rec.GroupID,
			Exercises: make([]events.Exercise, 0, len(doc.Exercises)),
		},
	}

	switch {
	case rec.Date != nil:
		e.OccurredAt = rec.Date.UTC()
	case doc.Date != nil:
		e.OccurredAt = doc.Date.Time
	}

	for _, ex := range doc.Exercises {
		sets := make([]events.ExerciseSet, 0, len(ex.Sets))
		for _, s := range ex.Sets {
			sets = append(sets, s.canonical())
		}
		e.Workout.Exercises = append(e.Workout.Exercises, events.Exercise{Name: ex.Name, Sets: sets})
	}

	return e
}

func Workouts(recs ...[]store.WorkoutRecord) []events.Event {
	var n int
	for _, batch := range recs {
		n += len(batch)
	}
	all := make([]events.Event, 0, n)
	for _, batch := range recs {
		for _, rec := range batch {
			all = append(all, Workout(rec))
		}
	}
	return all
}

func Assignments(recs []store.WorkoutRecord) []coach.Assignment {
	assignments := make([]coach.Assignment, 0, len(recs))
	for _, rec := range recs {
		assignments = append(assignments, coach.Assignment{
			GroupID:   rec.GroupID,
			AthleteID: rec.OwnerID,
			Completed: rec.Status == store.StatusCompleted,
		})
	}
	return assignments
}

func Group(rec store.GroupRecord) coach.Group {
	return coach.Group{
		ID:      rec.ID,
		Name:    rec.Name,
		Members: rec.Members,
		Admins:  rec.Admins,
	}
}

func Groups(recs []store.GroupRecord) []coach.Group {
	groups := make([]coach.Group, 0, len(recs))
	for _, rec := range recs {
		groups = append(groups, Group(rec))
	}
	return groups
}
