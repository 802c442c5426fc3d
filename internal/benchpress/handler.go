package benchpress

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/trainlytics/internal/telemetry/tracing"
	"github.com/2beens/trainlytics/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=benchpress_test

type service interface {
	Profile(ctx context.Context, username string) (*Profile, error)
	BodyStats(ctx context.Context, username string) (*BodyStats, error)
	Streak(ctx context.Context, username string) (*Streak, error)
	Consistency(ctx context.Context, username string, days int) (*Consistency, error)
	TrainingVolume(ctx context.Context, username string, days int) (*Volume, error)
	TopExercises(ctx context.Context, username string, limit int) (*TopExercises, error)
	PRHistory(ctx context.Context, username, exercise string) (*PRHistory, error)
	RecentWorkouts(ctx context.Context, username string, limit int) (*RecentWorkouts, error)
	CoachSummary(ctx context.Context, coachUsername string) (*CoachSummary, error)
	AthleteProgress(ctx context.Context, coachUsername string) (*AthleteProgress, error)
	MaxLifts(ctx context.Context, username string) (*MaxLifts, error)
	Goals(ctx context.Context, username string, includeCompleted bool) (*Goals, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	r := mainRouter.PathPrefix("/benchpressonly").Subrouter()
	r.HandleFunc("/profile/{username}", h.HandleProfile).Methods("GET", "OPTIONS").Name("benchpress-profile")
	r.HandleFunc("/body/{username}", h.HandleBody).Methods("GET", "OPTIONS").Name("benchpress-body")
	r.HandleFunc("/streak/{username}", h.HandleStreak).Methods("GET", "OPTIONS").Name("benchpress-streak")
	r.HandleFunc("/consistency/{username}", h.HandleConsistency).Methods("GET", "OPTIONS").Name("benchpress-consistency")
	r.HandleFunc("/volume/{username}", h.HandleVolume).Methods("GET", "OPTIONS").Name("benchpress-volume")
	r.HandleFunc("/exercises/{username}", h.HandleExercises).Methods("GET", "OPTIONS").Name("benchpress-exercises")
	r.HandleFunc("/prs/{username}", h.HandlePRs).Methods("GET", "OPTIONS").Name("benchpress-prs")
	r.HandleFunc("/workouts/{username}", h.HandleWorkouts).Methods("GET", "OPTIONS").Name("benchpress-workouts")
	r.HandleFunc("/coach/{username}", h.HandleCoach).Methods("GET", "OPTIONS").Name("benchpress-coach")
	r.HandleFunc("/coach/{username}/athletes", h.HandleAthletes).Methods("GET", "OPTIONS").Name("benchpress-athletes")
	r.HandleFunc("/maxes/{username}", h.HandleMaxes).Methods("GET", "OPTIONS").Name("benchpress-maxes")
	r.HandleFunc("/goals/{username}", h.HandleGoals).Methods("GET", "OPTIONS").Name("benchpress-goals")
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.profile")
	defer span.End()

	resp, err := h.service.Profile(ctx, mux.Vars(r)["username"])
	writeResult(w, "profile", resp, err)
}

func (h *Handler) HandleBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.body")
	defer span.End()

	resp, err := h.service.BodyStats(ctx, mux.Vars(r)["username"])
	writeResult(w, "body stats", resp, err)
}

func (h *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.streak")
	defer span.End()

	resp, err := h.service.Streak(ctx, mux.Vars(r)["username"])
	writeResult(w, "streak", resp, err)
}

func (h *Handler) HandleConsistency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.consistency")
	defer span.End()

	days := pkg.QueryInt(r, "days", DefaultConsistencyDays, 0)
	resp, err := h.service.Consistency(ctx, mux.Vars(r)["username"], days)
	writeResult(w, "consistency", resp, err)
}

func (h *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.volume")
	defer span.End()

	days := pkg.QueryInt(r, "days", DefaultVolumeDays, 0)
	resp, err := h.service.TrainingVolume(ctx, mux.Vars(r)["username"], days)
	writeResult(w, "training volume", resp, err)
}

func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.exercises")
	defer span.End()

	limit := pkg.QueryInt(r, "limit", DefaultTopExercises, 0)
	resp, err := h.service.TopExercises(ctx, mux.Vars(r)["username"], limit)
	writeResult(w, "top exercises", resp, err)
}

func (h *Handler) HandlePRs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.prs")
	defer span.End()

	resp, err := h.service.PRHistory(ctx, mux.Vars(r)["username"], r.URL.Query().Get("exercise"))
	writeResult(w, "pr history", resp, err)
}

func (h *Handler) HandleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.workouts")
	defer span.End()

	limit := pkg.QueryInt(r, "limit", DefaultRecentWorkouts, 0)
	resp, err := h.service.RecentWorkouts(ctx, mux.Vars(r)["username"], limit)
	writeResult(w, "recent workouts", resp, err)
}

func (h *Handler) HandleCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.coach")
	defer span.End()

	resp, err := h.service.CoachSummary(ctx, mux.Vars(r)["username"])
	writeResult(w, "coach summary", resp, err)
}

func (h *Handler) HandleAthletes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.athletes")
	defer span.End()

	resp, err := h.service.AthleteProgress(ctx, mux.Vars(r)["username"])
	writeResult(w, "athlete progress", resp, err)
}

func (h *Handler) HandleMaxes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.maxes")
	defer span.End()

	resp, err := h.service.MaxLifts(ctx, mux.Vars(r)["username"])
	writeResult(w, "max lifts", resp, err)
}

func (h *Handler) HandleGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.benchpress.goals")
	defer span.End()

	includeCompleted := r.URL.Query().Get("completed") == "true"
	resp, err := h.service.Goals(ctx, mux.Vars(r)["username"], includeCompleted)
	writeResult(w, "goals", resp, err)
}

// NotFoundMessage returns the user-facing text for a missing subject.
func NotFoundMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "User not found", true
	case errors.Is(err, ErrCoachNotFound):
		return "Coach not found", true
	default:
		return "", false
	}
}

func writeResult(w http.ResponseWriter, what string, resp any, err error) {
	if err != nil {
		if msg, ok := NotFoundMessage(err); ok {
			pkg.WriteJSONError(w, http.StatusNotFound, msg)
			return
		}
		log.Errorf("get %s: %s", what, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	pkg.WriteJSON(w, http.StatusOK, resp)
}
