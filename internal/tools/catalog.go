package tools

import (
	"time"
)

const (
	Name    = "trainlytics"
	Version = "2.0.0"
)

type Tool struct {
	Domain      string   `json:"domain"`
	Name        string   `json:"name"`
	Method      string   `json:"method"`
	Endpoint    string   `json:"endpoint"`
	Description string   `json:"description"`
	Params      []string `json:"params,omitempty"`
	Query       []string `json:"query,omitempty"`
	Body        []string `json:"body,omitempty"`
}

type Domain struct {
	Key         string
	Name        string
	Description string
	Tools       []Tool
}

// Domains lists every tool the gateway serves, grouped by domain. The
// endpoints are route templates of the REST gateway.
var Domains = []Domain{
	{
		Key:         "benchpressonly",
		Name:        "BenchPressOnly",
		Description: "Fitness tracking and coaching analytics",
		Tools: []Tool{
			{Name: "get_user_profile", Method: "GET", Endpoint: "/benchpressonly/profile/{username}", Description: "User profile and basic stats", Params: []string{"username"}},
			{Name: "get_body_stats", Method: "GET", Endpoint: "/benchpressonly/body/{username}", Description: "Body stats (weight, height, BMI)", Params: []string{"username"}},
			{Name: "get_streak", Method: "GET", Endpoint: "/benchpressonly/streak/{username}", Description: "Current and longest workout streak", Params: []string{"username"}},
			{Name: "get_consistency", Method: "GET", Endpoint: "/benchpressonly/consistency/{username}", Description: "Training consistency stats", Params: []string{"username"}, Query: []string{"days"}},
			{Name: "get_training_volume", Method: "GET", Endpoint: "/benchpressonly/volume/{username}", Description: "Training volume stats", Params: []string{"username"}, Query: []string{"days"}},
			{Name: "get_top_exercises", Method: "GET", Endpoint: "/benchpressonly/exercises/{username}", Description: "Most trained exercises", Params: []string{"username"}, Query: []string{"limit"}},
			{Name: "get_pr_history", Method: "GET", Endpoint: "/benchpressonly/prs/{username}", Description: "PR history for all exercises", Params: []string{"username"}, Query: []string{"exercise"}},
			{Name: "get_recent_workouts", Method: "GET", Endpoint: "/benchpressonly/workouts/{username}", Description: "Recent completed workouts", Params: []string{"username"}, Query: []string{"limit"}},
			{Name: "get_coach_summary", Method: "GET", Endpoint: "/benchpressonly/coach/{username}", Description: "Coaching overview", Params: []string{"username"}},
			{Name: "get_athlete_progress", Method: "GET", Endpoint: "/benchpressonly/coach/{username}/athletes", Description: "Athlete progress and completion rates", Params: []string{"username"}},
			{Name: "get_max_lifts", Method: "GET", Endpoint: "/benchpressonly/maxes/{username}", Description: "Estimated 1RMs for all exercises", Params: []string{"username"}},
			{Name: "get_goals", Method: "GET", Endpoint: "/benchpressonly/goals/{username}", Description: "Fitness goals and progress", Params: []string{"username"}, Query: []string{"completed"}},
		},
	},
	{
		Key:         "activity",
		Name:        "AI Activity",
		Description: "Cross-app AI activity feed and cost tracking",
		Tools: []Tool{
			{Name: "get_recent_activity", Method: "GET", Endpoint: "/activity/recent", Description: "Recent AI activity across all apps", Query: []string{"limit", "source"}},
			{Name: "get_cost_summary", Method: "GET", Endpoint: "/activity/costs", Description: "AI cost breakdown by source, model, and type", Query: []string{"days"}},
			{Name: "get_activity_stats", Method: "GET", Endpoint: "/activity/stats", Description: "Activity frequency and trends", Query: []string{"days"}},
			{Name: "log_activity", Method: "POST", Endpoint: "/activity/log", Description: "Log an event to the activity feed (admin only)", Body: []string{"type", "title", "source", "description", "model", "tokens", "cost"}},
		},
	},
}

func DomainKeys() []string {
	keys := make([]string, 0, len(Domains))
	for _, d := range Domains {
		keys = append(keys, d.Key)
	}
	return keys
}

// All returns the tools of every domain, each tagged with its domain key.
func All() []Tool {
	var all []Tool
	for _, d := range Domains {
		for _, t := range d.Tools {
			t.Domain = d.Key
			all = append(all, t)
		}
	}
	return all
}

// Lookup finds a tool by name.
func Lookup(name string) (Tool, bool) {
	for _, t := range All() {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

type Discovery struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Domains    []string `json:"domains"`
	TotalTools int      `json:"totalTools"`
	Tools      []Tool   `json:"tools"`
}

func NewDiscovery() Discovery {
	all := All()
	return Discovery{
		Name:       Name,
		Version:    Version,
		Domains:    DomainKeys(),
		TotalTools: len(all),
		Tools:      all,
	}
}

type Health struct {
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Uptime    float64  `json:"uptime"`
	Domains   []string `json:"domains"`
}

// NewHealth reports the uptime in seconds since started.
func NewHealth(now, started time.Time) Health {
	return Health{
		Status:    "ok",
		Timestamp: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Uptime:    now.Sub(started).Seconds(),
		Domains:   DomainKeys(),
	}
}
