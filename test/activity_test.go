package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/trainlytics/internal/activity"
	"github.com/2beens/trainlytics/internal/analytics/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestActivity() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	model := "claude-opus"
	cost := 0.25
	status, body := s.doRequest(ctx, http.MethodPost, "/activity/log", testAdminKey, activity.LogRequest{
		Type:   "code",
		Title:  "Refactor parser",
		Source: "ci",
		Model:  &model,
		Tokens: &events.Tokens{Input: 800, Output: 200, Total: 1000},
		Cost:   &cost,
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var logged activity.Entry
	require.NoError(t, json.Unmarshal(body, &logged))
	assert.NotEmpty(t, logged.ID)
	require.NotNil(t, logged.Timestamp)

	status, body = s.doRequest(ctx, http.MethodPost, "/activity/log", testAdminKey, activity.LogRequest{
		Type:   "deploy",
		Title:  "Ship it",
		Source: "ci",
	})
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = s.doRequest(ctx, http.MethodPost, "/activity/log", testAdminKey, activity.LogRequest{Type: "code"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": "Missing required fields: type, title, source"}`, string(body))

	status, _ = s.doRequest(ctx, http.MethodPost, "/activity/log", testReadKey, activity.LogRequest{Type: "code", Title: "x", Source: "ci"})
	assert.Equal(t, http.StatusForbidden, status)

	var recent activity.Recent
	s.getJSON(ctx, "/activity/recent?source=ci", testReadKey, &recent)
	require.Equal(t, 2, recent.Count)
	assert.Equal(t, "Ship it", recent.Activities[0].Title)
	assert.Equal(t, logged, recent.Activities[1])

	var costs map[string]any
	s.getJSON(ctx, "/activity/costs?days=1", testReadKey, &costs)
	assert.Equal(t, "$0.25", costs["totalCost"])
	assert.Equal(t, float64(1000), costs["totalTokens"])
	assert.Equal(t, float64(2), costs["totalEvents"])

	var stats activity.Stats
	s.getJSON(ctx, "/activity/stats?days=7", testReadKey, &stats)
	assert.Equal(t, 2, stats.TotalEvents)
	require.NotNil(t, stats.MostActiveSource)
	assert.Equal(t, activity.SourceCount{Source: "ci", Events: 2}, *stats.MostActiveSource)
}
