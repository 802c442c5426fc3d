package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/trainlytics/internal/benchpress"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) seedBenchpress() {
	t := s.T()

	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1)
	lastWeek := today.AddDate(0, 0, -7)

	exec := func(query string, args ...any) {
		_, err := s.DB.Exec(query, args...)
		require.NoError(t, err)
	}

	exec(`INSERT INTO users (id, username, display_name, created_at, data) VALUES ($1, $2, $3, $4, $5)`,
		"u-athlete", "lifter", "Lifter", lastWeek, `{"weight": "180", "height": 70}`)
	exec(`INSERT INTO users (id, username, display_name, created_at, data) VALUES ($1, $2, $3, $4, $5)`,
		"u-coach", "coachy", "Coachy", lastWeek, `{}`)

	exec(`INSERT INTO workouts (id, user_id, status, date, data) VALUES ($1, $2, $3, $4, $5)`,
		"w-1", "u-athlete", "completed", today,
		`{"name": "Push", "exercises": [{"name": "Bench Press", "sets": [{"actualWeight": 200, "actualReps": 3}, {"actualWeight": 185, "actualReps": 5}]}]}`)
	exec(`INSERT INTO workouts (id, user_id, status, date, data) VALUES ($1, $2, $3, $4, $5)`,
		"w-2", "u-athlete", "completed", yesterday,
		`{"name": "Legs", "exercises": [{"name": "Squat", "sets": [{"prescribedWeight": "225", "actualReps": "5"}]}]}`)
	exec(`INSERT INTO workouts (id, user_id, status, date, data) VALUES ($1, $2, $3, $4, $5)`,
		"w-3", "u-athlete", "planned", nil, `{"name": "Later"}`)

	exec(`INSERT INTO groups (id, name, members, admins) VALUES ($1, $2, $3, $4)`,
		"g-1", "Morning Crew", pq.Array([]string{"u-athlete", "u-coach"}), pq.Array([]string{"u-coach"}))
	exec(`INSERT INTO group_workouts (id, assigned_to, group_id, status, date, data) VALUES ($1, $2, $3, $4, $5, $6)`,
		"gw-1", "u-athlete", "g-1", "completed", lastWeek, `{"name": "Group Pull"}`)
	exec(`INSERT INTO group_workouts (id, assigned_to, group_id, status, date, data) VALUES ($1, $2, $3, $4, $5, $6)`,
		"gw-2", "u-athlete", "g-1", "assigned", nil, `{"name": "Group Push"}`)

	exec(`INSERT INTO goals (id, user_id, status, data) VALUES ($1, $2, $3, $4)`,
		"goal-1", "u-athlete", "active", `{"lift": "Bench Press", "startValue": 200, "currentValue": 220, "targetValue": 300}`)
	exec(`INSERT INTO goals (id, user_id, status, data) VALUES ($1, $2, $3, $4)`,
		"goal-2", "u-athlete", "completed", `{"lift": "Squat", "startValue": 100, "currentValue": 200, "targetValue": 200}`)
}

func (s *IntegrationTestSuite) TestBenchpress() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	s.seedBenchpress()

	var profile benchpress.Profile
	s.getJSON(ctx, "/benchpressonly/profile/Lifter", testReadKey, &profile)
	assert.Equal(t, "Lifter", profile.DisplayName)
	assert.Equal(t, 3, profile.TotalWorkouts)
	assert.Equal(t, 1, profile.GroupsMember)
	assert.Equal(t, 0, profile.GroupsCoaching)
	assert.False(t, profile.IsCoach)

	var streak benchpress.Streak
	s.getJSON(ctx, "/benchpressonly/streak/lifter", testReadKey, &streak)
	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)
	assert.Equal(t, 3, streak.TotalDays)

	var maxes benchpress.MaxLifts
	s.getJSON(ctx, "/benchpressonly/maxes/lifter", testReadKey, &maxes)
	require.Len(t, maxes.Lifts, 2)
	byExercise := map[string]int{}
	for _, m := range maxes.Lifts {
		byExercise[m.Exercise] = m.Estimated1RM
	}
	assert.Equal(t, 220, byExercise["Bench Press"])
	assert.Equal(t, 263, byExercise["Squat"])

	var goals benchpress.Goals
	s.getJSON(ctx, "/benchpressonly/goals/lifter", testReadKey, &goals)
	assert.Equal(t, 1, goals.ActiveGoals)
	require.Len(t, goals.Goals, 1)
	assert.Equal(t, "20%", goals.Goals[0].Progress)

	s.getJSON(ctx, "/benchpressonly/goals/lifter?completed=true", testReadKey, &goals)
	assert.Len(t, goals.Goals, 2)

	var progress benchpress.AthleteProgress
	s.getJSON(ctx, "/benchpressonly/coach/coachy/athletes", testReadKey, &progress)
	assert.Equal(t, "Coachy", progress.Coach)
	require.Len(t, progress.Athletes, 1)
	assert.Equal(t, benchpress.AthleteProgressRow{
		Name:              "Lifter",
		Group:             "Morning Crew",
		WorkoutsAssigned:  2,
		WorkoutsCompleted: 1,
		CompletionRate:    "50%",
	}, progress.Athletes[0])

	status, body := s.doRequest(ctx, http.MethodGet, "/benchpressonly/profile/nobody", testReadKey, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error": "User not found"}`, string(body))

	status, _ = s.doRequest(ctx, http.MethodGet, "/benchpressonly/profile/lifter", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
