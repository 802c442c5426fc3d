package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/trainlytics/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day string) *time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestMemory_Users(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory().AddUser(store.UserRecord{ID: "u1", Username: "serj", DisplayName: "Serj"})

	u, err := m.ByUsername(ctx, "SERJ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	u, err = m.ByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Serj", u.DisplayName)

	_, err = m.ByUsername(ctx, "nobody")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	_, err = m.ByID(ctx, "u2")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestMemory_Workouts(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory().
		AddWorkout(store.WorkoutRecord{ID: "w1", OwnerID: "u1", Status: store.StatusCompleted, Date: at("2024-01-03")}).
		AddWorkout(store.WorkoutRecord{ID: "w2", OwnerID: "u1", Status: store.StatusCompleted}).
		AddWorkout(store.WorkoutRecord{ID: "w3", OwnerID: "u1", Status: store.StatusCompleted, Date: at("2024-01-01")}).
		AddWorkout(store.WorkoutRecord{ID: "w4", OwnerID: "u1", Status: "scheduled", Date: at("2024-01-05")}).
		AddWorkout(store.WorkoutRecord{ID: "w5", OwnerID: "u2", Status: store.StatusCompleted, Date: at("2024-01-02")}).
		AddGroupWorkout(store.WorkoutRecord{ID: "g1", OwnerID: "u1", GroupID: "grp", Status: store.StatusCompleted, Date: at("2024-01-02")}).
		AddGroupWorkout(store.WorkoutRecord{ID: "g2", OwnerID: "u1", GroupID: "other", Status: "scheduled", Date: at("2024-01-04")})

	ids := func(recs []store.WorkoutRecord) []string {
		var out []string
		for _, r := range recs {
			out = append(out, r.ID)
		}
		return out
	}

	completed, err := m.Personal(ctx, store.WorkoutFilter{OwnerID: "u1", Status: store.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, []string{"w3", "w1", "w2"}, ids(completed))

	newest, err := m.Personal(ctx, store.WorkoutFilter{OwnerID: "u1", NewestFirst: true, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"w4", "w1"}, ids(newest))

	since, err := m.Personal(ctx, store.WorkoutFilter{OwnerID: "u1", Status: store.StatusCompleted, Since: at("2024-01-02")})
	require.NoError(t, err)
	assert.Equal(t, []string{"w1"}, ids(since))

	inGroup, err := m.Group(ctx, store.WorkoutFilter{OwnerID: "u1", GroupID: "other"})
	require.NoError(t, err)
	assert.Equal(t, []string{"g2"}, ids(inGroup))

	personal, group, err := m.CountCompleted(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, personal)
	assert.Equal(t, 1, group)

	none, err := m.Group(ctx, store.WorkoutFilter{OwnerID: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemory_GroupsAndGoals(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory().
		AddGroup(store.GroupRecord{ID: "b", Name: "Evening", Members: []string{"c", "a1"}, Admins: []string{"c"}}).
		AddGroup(store.GroupRecord{ID: "a", Name: "Morning", Members: []string{"a1"}, Admins: []string{"c"}}).
		AddGoal(store.GoalRecord{ID: "g1", UserID: "a1", Status: store.StatusActive}).
		AddGoal(store.GoalRecord{ID: "g2", UserID: "a1", Status: store.StatusCompleted})

	coached, err := m.WithAdmin(ctx, "c")
	require.NoError(t, err)
	require.Len(t, coached, 2)
	assert.Equal(t, "a", coached[0].ID)

	member, err := m.WithMember(ctx, "c")
	require.NoError(t, err)
	require.Len(t, member, 1)
	assert.Equal(t, "Evening", member[0].Name)

	active, err := m.ForUser(ctx, "a1", false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "g1", active[0].ID)

	all, err := m.ForUser(ctx, "a1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemory_Activity(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, source := range []string{"azoni", "moltbook", "azoni", "azoni"} {
		ts := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, m.Add(ctx, store.ActivityRecord{ID: string(rune('a' + i)), Source: source, Timestamp: &ts}))
	}
	require.NoError(t, m.Add(ctx, store.ActivityRecord{ID: "undated", Source: "azoni"}))
	assert.ErrorIs(t, m.Add(ctx, store.ActivityRecord{ID: "undated"}), store.ErrDuplicate)

	recent, err := m.Recent(ctx, 2, "azoni")
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "d", recent[0].ID)
	assert.Equal(t, "c", recent[1].ID)

	all, err := m.Recent(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "undated", all[4].ID)

	since, err := m.Since(ctx, base.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "d", since[0].ID)
}
