package store

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate id")
)

const (
	StatusCompleted = "completed"
	StatusActive    = "active"
)

// UserRecord is a row of the users table. Data keeps the raw user
// document (body stats and other profile fields).
type UserRecord struct {
	ID          string
	Username    string
	DisplayName string
	CreatedAt   *time.Time
	Data        []byte
}

// WorkoutRecord is a personal or a group workout. For group workouts the
// owner is the athlete the workout is assigned to.
type WorkoutRecord struct {
	ID      string
	OwnerID string
	GroupID string
	Status  string
	Date    *time.Time
	Data    []byte
}

type GroupRecord struct {
	ID      string
	Name    string
	Members []string
	Admins  []string
}

type GoalRecord struct {
	ID     string
	UserID string
	Status string
	Data   []byte
}

type ActivityRecord struct {
	ID          string
	Type        string
	Title       string
	Description string
	Source      string
	Model       *string
	Tokens      []byte
	Cost        *float64
	Timestamp   *time.Time
}

// WorkoutFilter selects workouts of one owner. Empty fields do not filter.
// A zero Limit returns all matching rows.
type WorkoutFilter struct {
	OwnerID     string
	GroupID     string
	Status      string
	Since       *time.Time
	Limit       int
	NewestFirst bool
}

func (f WorkoutFilter) matches(w WorkoutRecord) bool {
	if w.OwnerID != f.OwnerID {
		return false
	}
	if f.GroupID != "" && w.GroupID != f.GroupID {
		return false
	}
	if f.Status != "" && w.Status != f.Status {
		return false
	}
	if f.Since != nil && (w.Date == nil || w.Date.Before(*f.Since)) {
		return false
	}
	return true
}

func (f WorkoutFilter) order() string {
	if f.NewestFirst {
		return "DESC"
	}
	return "ASC"
}
