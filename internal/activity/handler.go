package activity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/trainlytics/internal/telemetry/tracing"
	"github.com/2beens/trainlytics/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activity_test

const maxLogBodyBytes = 64 << 10

type service interface {
	Recent(ctx context.Context, limit int, source string) (*Recent, error)
	CostSummary(ctx context.Context, days int) (*CostSummary, error)
	Stats(ctx context.Context, days int) (*Stats, error)
	Log(ctx context.Context, req LogRequest) (*Entry, error)
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
	r := mainRouter.PathPrefix("/activity").Subrouter()
	r.HandleFunc("/recent", h.HandleRecent).Methods("GET", "OPTIONS").Name("activity-recent")
	r.HandleFunc("/costs", h.HandleCosts).Methods("GET", "OPTIONS").Name("activity-costs")
	r.HandleFunc("/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("activity-stats")
	r.HandleFunc("/log", h.HandleLog).Methods("POST", "OPTIONS").Name("activity-log")
}

func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.recent")
	defer span.End()

	limit := pkg.QueryInt(r, "limit", DefaultRecentLimit, MaxRecentLimit)
	resp, err := h.service.Recent(ctx, limit, r.URL.Query().Get("source"))
	writeResult(w, "recent activity", resp, err)
}

func (h *Handler) HandleCosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.costs")
	defer span.End()

	days := pkg.QueryInt(r, "days", DefaultCostDays, MaxCostDays)
	resp, err := h.service.CostSummary(ctx, days)
	writeResult(w, "cost summary", resp, err)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.stats")
	defer span.End()

	days := pkg.QueryInt(r, "days", DefaultStatsDays, MaxStatsDays)
	resp, err := h.service.Stats(ctx, days)
	writeResult(w, "activity stats", resp, err)
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.log")
	defer span.End()

	var req LogRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLogBodyBytes)).Decode(&req); err != nil {
		log.Debugf("log activity: decode body: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	entry, err := h.service.Log(ctx, req)
	if errors.Is(err, ErrMissingFields) {
		pkg.WriteJSONError(w, http.StatusBadRequest, ErrMissingFields.Error())
		return
	}
	writeResult(w, "log activity", entry, err)
}

func writeResult(w http.ResponseWriter, what string, resp any, err error) {
	if err != nil {
		log.Errorf("%s: %s", what, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	pkg.WriteJSON(w, http.StatusOK, resp)
}
