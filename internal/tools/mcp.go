package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/2beens/trainlytics/internal/activity"
	"github.com/2beens/trainlytics/internal/analytics/events"
	"github.com/2beens/trainlytics/internal/benchpress"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

type benchpressService interface {
	Profile(ctx context.Context, username string) (*benchpress.Profile, error)
	BodyStats(ctx context.Context, username string) (*benchpress.BodyStats, error)
	Streak(ctx context.Context, username string) (*benchpress.Streak, error)
	Consistency(ctx context.Context, username string, days int) (*benchpress.Consistency, error)
	TrainingVolume(ctx context.Context, username string, days int) (*benchpress.Volume, error)
	TopExercises(ctx context.Context, username string, limit int) (*benchpress.TopExercises, error)
	PRHistory(ctx context.Context, username, exercise string) (*benchpress.PRHistory, error)
	RecentWorkouts(ctx context.Context, username string, limit int) (*benchpress.RecentWorkouts, error)
	CoachSummary(ctx context.Context, coachUsername string) (*benchpress.CoachSummary, error)
	AthleteProgress(ctx context.Context, coachUsername string) (*benchpress.AthleteProgress, error)
	MaxLifts(ctx context.Context, username string) (*benchpress.MaxLifts, error)
	Goals(ctx context.Context, username string, includeCompleted bool) (*benchpress.Goals, error)
}

type activityService interface {
	Recent(ctx context.Context, limit int, source string) (*activity.Recent, error)
	CostSummary(ctx context.Context, days int) (*activity.CostSummary, error)
	Stats(ctx context.Context, days int) (*activity.Stats, error)
	Log(ctx context.Context, req activity.LogRequest) (*activity.Entry, error)
}

type UsernameInput struct {
	Username string `json:"username" jsonschema:"Username of the athlete or coach"`
}

type DaysInput struct {
	Username string `json:"username" jsonschema:"Username of the athlete"`
	Days     int    `json:"days,omitempty" jsonschema:"Look-back period in days"`
}

type LimitInput struct {
	Username string `json:"username" jsonschema:"Username of the athlete"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of entries"`
}

type PRHistoryInput struct {
	Username string `json:"username" jsonschema:"Username of the athlete"`
	Exercise string `json:"exercise,omitempty" jsonschema:"Only this exercise (case-insensitive exact name)"`
}

type GoalsInput struct {
	Username  string `json:"username" jsonschema:"Username of the athlete"`
	Completed bool   `json:"completed,omitempty" jsonschema:"Include completed goals"`
}

type RecentActivityInput struct {
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of entries, at most 100"`
	Source string `json:"source,omitempty" jsonschema:"Only entries of this source app"`
}

type PeriodInput struct {
	Days int `json:"days,omitempty" jsonschema:"Look-back period in days"`
}

type LogActivityInput struct {
	Type        string         `json:"type" jsonschema:"Event type (e.g. code, deploy, chat)"`
	Title       string         `json:"title" jsonschema:"Short title of the event"`
	Source      string         `json:"source" jsonschema:"App that produced the event"`
	Description string         `json:"description,omitempty" jsonschema:"Longer description"`
	Model       string         `json:"model,omitempty" jsonschema:"AI model used"`
	Tokens      *events.Tokens `json:"tokens,omitempty" jsonschema:"Token usage"`
	Cost        *float64       `json:"cost,omitempty" jsonschema:"Cost in USD"`
}

// MCPHandler maps tool calls onto the domain services.
type MCPHandler struct {
	benchpress benchpressService
	activity   activityService
}

func NewMCPHandler(bp benchpressService, act activityService) *MCPHandler {
	return &MCPHandler{
		benchpress: bp,
		activity:   act,
	}
}

// NewServer builds an MCP server exposing every catalog tool.
// It is mounted at /mcp on the gateway and served over stdio by trainlytics_mcp.
func NewServer(bp benchpressService, act activityService) *mcp.Server {
	h := NewMCPHandler(bp, act)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: Version,
	}, nil)

	mcp.AddTool(s, catalogTool("get_user_profile"), h.ProfileTool())
	mcp.AddTool(s, catalogTool("get_body_stats"), h.BodyStatsTool())
	mcp.AddTool(s, catalogTool("get_streak"), h.StreakTool())
	mcp.AddTool(s, catalogTool("get_consistency"), h.ConsistencyTool())
	mcp.AddTool(s, catalogTool("get_training_volume"), h.TrainingVolumeTool())
	mcp.AddTool(s, catalogTool("get_top_exercises"), h.TopExercisesTool())
	mcp.AddTool(s, catalogTool("get_pr_history"), h.PRHistoryTool())
	mcp.AddTool(s, catalogTool("get_recent_workouts"), h.RecentWorkoutsTool())
	mcp.AddTool(s, catalogTool("get_coach_summary"), h.CoachSummaryTool())
	mcp.AddTool(s, catalogTool("get_athlete_progress"), h.AthleteProgressTool())
	mcp.AddTool(s, catalogTool("get_max_lifts"), h.MaxLiftsTool())
	mcp.AddTool(s, catalogTool("get_goals"), h.GoalsTool())

	mcp.AddTool(s, catalogTool("get_recent_activity"), h.RecentActivityTool())
	mcp.AddTool(s, catalogTool("get_cost_summary"), h.CostSummaryTool())
	mcp.AddTool(s, catalogTool("get_activity_stats"), h.ActivityStatsTool())
	mcp.AddTool(s, catalogTool("log_activity"), h.LogActivityTool())

	return s
}

func catalogTool(name string) *mcp.Tool {
	t, ok := Lookup(name)
	if !ok {
		log.Panicf("tool %s missing from catalog", name)
	}
	return &mcp.Tool{
		Name:        t.Name,
		Description: t.Description,
	}
}

func (h *MCPHandler) ProfileTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.Profile(ctx, in.Username)
		return result("profile", resp, err)
	}
}

func (h *MCPHandler) BodyStatsTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.BodyStats(ctx, in.Username)
		return result("body stats", resp, err)
	}
}

func (h *MCPHandler) StreakTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.Streak(ctx, in.Username)
		return result("streak", resp, err)
	}
}

func (h *MCPHandler) ConsistencyTool() func(context.Context, *mcp.CallToolRequest, DaysInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DaysInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.Consistency(ctx, in.Username, in.Days)
		return result("consistency", resp, err)
	}
}

func (h *MCPHandler) TrainingVolumeTool() func(context.Context, *mcp.CallToolRequest, DaysInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DaysInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.TrainingVolume(ctx, in.Username, in.Days)
		return result("training volume", resp, err)
	}
}

func (h *MCPHandler) TopExercisesTool() func(context.Context, *mcp.CallToolRequest, LimitInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LimitInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.TopExercises(ctx, in.Username, in.Limit)
		return result("top exercises", resp, err)
	}
}

func (h *MCPHandler) PRHistoryTool() func(context.Context, *mcp.CallToolRequest, PRHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PRHistoryInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.PRHistory(ctx, in.Username, in.Exercise)
		return result("pr history", resp, err)
	}
}

func (h *MCPHandler) RecentWorkoutsTool() func(context.Context, *mcp.CallToolRequest, LimitInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LimitInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.RecentWorkouts(ctx, in.Username, in.Limit)
		return result("recent workouts", resp, err)
	}
}

func (h *MCPHandler) CoachSummaryTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.CoachSummary(ctx, in.Username)
		return result("coach summary", resp, err)
	}
}

func (h *MCPHandler) AthleteProgressTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.AthleteProgress(ctx, in.Username)
		return result("athlete progress", resp, err)
	}
}

func (h *MCPHandler) MaxLiftsTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.MaxLifts(ctx, in.Username)
		return result("max lifts", resp, err)
	}
}

func (h *MCPHandler) GoalsTool() func(context.Context, *mcp.CallToolRequest, GoalsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GoalsInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.benchpress.Goals(ctx, in.Username, in.Completed)
		return result("goals", resp, err)
	}
}

func (h *MCPHandler) RecentActivityTool() func(context.Context, *mcp.CallToolRequest, RecentActivityInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RecentActivityInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.activity.Recent(ctx, in.Limit, in.Source)
		return result("recent activity", resp, err)
	}
}

func (h *MCPHandler) CostSummaryTool() func(context.Context, *mcp.CallToolRequest, PeriodInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PeriodInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.activity.CostSummary(ctx, in.Days)
		return result("cost summary", resp, err)
	}
}

func (h *MCPHandler) ActivityStatsTool() func(context.Context, *mcp.CallToolRequest, PeriodInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PeriodInput) (*mcp.CallToolResult, any, error) {
		resp, err := h.activity.Stats(ctx, in.Days)
		return result("activity stats", resp, err)
	}
}

func (h *MCPHandler) LogActivityTool() func(context.Context, *mcp.CallToolRequest, LogActivityInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LogActivityInput) (*mcp.CallToolResult, any, error) {
		req := activity.LogRequest{
			Type:        in.Type,
			Title:       in.Title,
			Description: in.Description,
			Source:      in.Source,
			Tokens:      in.Tokens,
			Cost:        in.Cost,
		}
		if in.Model != "" {
			req.Model = &in.Model
		}
		resp, err := h.activity.Log(ctx, req)
		if errors.Is(err, activity.ErrMissingFields) {
			return errorResult(activity.ErrMissingFields.Error()), nil, nil
		}
		return result("log activity", resp, err)
	}
}

func result(what string, resp any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		if msg, ok := benchpress.NotFoundMessage(err); ok {
			return errorResult(msg), nil, nil
		}
		return errorResult("Error fetching " + what + ": " + err.Error()), nil, nil
	}

	raw, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
