package tools

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 16)

	seen := make(map[string]bool)
	for _, tool := range all {
		assert.False(t, seen[tool.Name], "duplicate tool %s", tool.Name)
		seen[tool.Name] = true
		assert.NotEmpty(t, tool.Domain)
		assert.NotEmpty(t, tool.Endpoint)
		assert.Contains(t, []string{"GET", "POST"}, tool.Method)
	}

	assert.Equal(t, "benchpressonly", all[0].Domain)
	assert.Equal(t, "activity", all[len(all)-1].Domain)
}

func TestLookup(t *testing.T) {
	tool, ok := Lookup("log_activity")
	require.True(t, ok)
	assert.Equal(t, "POST", tool.Method)
	assert.Equal(t, "activity", tool.Domain)
	assert.Equal(t, []string{"type", "title", "source", "description", "model", "tokens", "cost"}, tool.Body)

	_, ok = Lookup("get_leaderboard")
	assert.False(t, ok)
}

func TestNewDiscovery(t *testing.T) {
	d := NewDiscovery()
	assert.Equal(t, "trainlytics", d.Name)
	assert.Equal(t, "2.0.0", d.Version)
	assert.Equal(t, []string{"benchpressonly", "activity"}, d.Domains)
	assert.Equal(t, 16, d.TotalTools)

	raw, err := json.Marshal(d.Tools[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"domain": "benchpressonly",
		"name": "get_user_profile",
		"method": "GET",
		"endpoint": "/benchpressonly/profile/{username}",
		"description": "User profile and basic stats",
		"params": ["username"]
	}`, string(raw))
}

func TestNewHealth(t *testing.T) {
	started := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	h := NewHealth(started.Add(90*time.Second+500*time.Millisecond), started)

	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "2024-03-15T12:01:30.500Z", h.Timestamp)
	assert.Equal(t, 90.5, h.Uptime)
	assert.Equal(t, []string{"benchpressonly", "activity"}, h.Domains)
}
