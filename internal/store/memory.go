package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Memory is an in-process store with the same read and write methods as
// the postgres repos. It backs tests and local runs without a database.
type Memory struct {
	mu            sync.RWMutex
	users         []UserRecord
	workouts      []WorkoutRecord
	groupWorkouts []WorkoutRecord
	groups        []GroupRecord
	goals         []GoalRecord
	activity      []ActivityRecord
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) AddUser(u UserRecord) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
	return m
}

func (m *Memory) AddWorkout(w WorkoutRecord) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workouts = append(m.workouts, w)
	return m
}

func (m *Memory) AddGroupWorkout(w WorkoutRecord) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groupWorkouts = append(m.groupWorkouts, w)
	return m
}

func (m *Memory) AddGroup(g GroupRecord) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups = append(m.groups, g)
	return m
}

func (m *Memory) AddGoal(g GoalRecord) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals = append(m.goals, g)
	return m
}

func (m *Memory) ByUsername(_ context.Context, username string) (*UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	username = strings.ToLower(username)
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ByID(_ context.Context, id string) (*UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Personal(_ context.Context, filter WorkoutFilter) ([]WorkoutRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filter.GroupID = ""
	return filterWorkouts(m.workouts, filter), nil
}

func (m *Memory) Group(_ context.Context, filter WorkoutFilter) ([]WorkoutRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return filterWorkouts(m.groupWorkouts, filter), nil
}

func (m *Memory) CountCompleted(ctx context.Context, userID string) (int, int, error) {
	filter := WorkoutFilter{OwnerID: userID, Status: StatusCompleted}
	personal, _ := m.Personal(ctx, filter)
	group, _ := m.Group(ctx, filter)
	return len(personal), len(group), nil
}

func (m *Memory) WithMember(_ context.Context, userID string) ([]GroupRecord, error) {
	return m.groupsWhere(func(g GroupRecord) bool { return contains(g.Members, userID) }), nil
}

func (m *Memory) WithAdmin(_ context.Context, userID string) ([]GroupRecord, error) {
	return m.groupsWhere(func(g GroupRecord) bool { return contains(g.Admins, userID) }), nil
}

func (m *Memory) ForUser(_ context.Context, userID string, includeCompleted bool) ([]GoalRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	goals := make([]GoalRecord, 0)
	for _, g := range m.goals {
		if g.UserID != userID {
			continue
		}
		if !includeCompleted && g.Status != StatusActive {
			continue
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (m *Memory) Add(_ context.Context, rec ActivityRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.activity {
		if existing.ID == rec.ID {
			return ErrDuplicate
		}
	}
	m.activity = append(m.activity, rec)
	return nil
}

func (m *Memory) Recent(_ context.Context, limit int, source string) ([]ActivityRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]ActivityRecord, 0)
	for _, a := range newestFirst(m.activity) {
		if source != "" && a.Source != source {
			continue
		}
		if len(records) == limit {
			break
		}
		records = append(records, a)
	}
	return records, nil
}

func (m *Memory) Since(_ context.Context, cutoff time.Time) ([]ActivityRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]ActivityRecord, 0)
	for _, a := range newestFirst(m.activity) {
		if a.Timestamp == nil || a.Timestamp.Before(cutoff) {
			continue
		}
		records = append(records, a)
	}
	return records, nil
}

func (m *Memory) groupsWhere(pred func(GroupRecord) bool) []GroupRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	groups := make([]GroupRecord, 0)
	for _, g := range m.groups {
		if pred(g) {
			groups = append(groups, g)
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups
}

func filterWorkouts(all []WorkoutRecord, filter WorkoutFilter) []WorkoutRecord {
	workouts := make([]WorkoutRecord, 0)
	for _, w := range all {
		if filter.matches(w) {
			workouts = append(workouts, w)
		}
	}

	// undated rows go last in both directions, like NULLS LAST
	sort.SliceStable(workouts, func(i, j int) bool {
		a, b := workouts[i].Date, workouts[j].Date
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		if filter.NewestFirst {
			return a.After(*b)
		}
		return a.Before(*b)
	})

	if filter.Limit > 0 && len(workouts) > filter.Limit {
		workouts = workouts[:filter.Limit]
	}
	return workouts
}

func newestFirst(records []ActivityRecord) []ActivityRecord {
	sorted := make([]ActivityRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Timestamp, sorted[j].Timestamp
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})
	return sorted
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
