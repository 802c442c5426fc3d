package tools

import (
	"net/http"
	"time"

	"github.com/2beens/trainlytics/internal/telemetry/tracing"
	"github.com/2beens/trainlytics/pkg"

	"github.com/gorilla/mux"
)

// Handler serves the public gateway documents: banner, health, tool
// discovery and version.
type Handler struct {
	versionInfo string
	started     time.Time
	now         func() time.Time
}

func NewHandler(versionInfo string, started time.Time, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		versionInfo: versionInfo,
		started:     started,
		now:         now,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
	mainRouter.HandleFunc("/tools", handler.handleTools).Methods("GET", "OPTIONS").Name("tools")
	mainRouter.HandleFunc("/version", handler.handleVersion).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, Name+" gateway "+Version+": see /tools for the tool catalog")
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "toolsHandler.health")
	defer span.End()

	pkg.WriteJSON(w, http.StatusOK, NewHealth(handler.now(), handler.started))
}

func (handler *Handler) handleTools(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "toolsHandler.tools")
	defer span.End()

	pkg.WriteJSON(w, http.StatusOK, NewDiscovery())
}

func (handler *Handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
