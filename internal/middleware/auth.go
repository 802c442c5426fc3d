package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/trainlytics/internal/telemetry/metrics"
	"github.com/2beens/trainlytics/internal/telemetry/tracing"
	"github.com/2beens/trainlytics/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	verifiedKeyExpire = 10 * 60 // seconds
	bearerPrefix      = "Bearer "
)

type Access string

const (
	AccessAdmin Access = "admin"
	AccessRead  Access = "read"
)

// APIKeys holds the bcrypt hashes of the accepted bearer keys. An empty
// hash disables that key.
type APIKeys struct {
	AdminKeyHash string
	ReadKeyHash  string
}

type AuthMiddlewareHandler struct {
	keys           APIKeys
	verified       *freecache.Cache
	publicPaths    map[string]bool
	metricsManager *metrics.Manager
}

func NewAuthMiddlewareHandler(keys APIKeys, metricsManager *metrics.Manager) *AuthMiddlewareHandler {
	megabyte := 1024 * 1024
	return &AuthMiddlewareHandler{
		keys:     keys,
		verified: freecache.NewCache(megabyte),
		publicPaths: map[string]bool{
			"/":        true,
			"/health":  true,
			"/tools":   true,
			"/version": true,
		},
		metricsManager: metricsManager,
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.publicPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			key, found := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !found || key == "" {
				log.Tracef("[missing key] [auth middleware] unauthorized => %s", r.URL.Path)
				h.reject(w, http.StatusUnauthorized, "missing-key", "Missing or invalid Authorization header")
				span.SetStatus(codes.Error, "missing-key")
				return
			}

			access, ok := h.resolve(key)
			if !ok {
				log.Tracef("[invalid key] [auth middleware] unauthorized => %s", r.URL.Path)
				h.reject(w, http.StatusUnauthorized, "invalid-key", "Invalid API key")
				span.SetStatus(codes.Error, "invalid-key")
				return
			}
			span.SetAttributes(attribute.String("auth.access", string(access)))

			if access == AccessRead && r.Method != http.MethodGet {
				h.reject(w, http.StatusForbidden, "read-only", "Read-only key cannot perform write operations")
				span.SetStatus(codes.Error, "read-only")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

// resolve checks the key against the configured hashes. Verified keys
// are remembered by fingerprint so bcrypt runs once per key and expiry.
func (h *AuthMiddlewareHandler) resolve(key string) (Access, bool) {
	fingerprint := []byte(pkg.Fingerprint(key))
	if cached, err := h.verified.Get(fingerprint); err == nil {
		return Access(cached), true
	}

	var access Access
	switch {
	case h.keys.AdminKeyHash != "" && pkg.CheckSecretHash(key, h.keys.AdminKeyHash):
		access = AccessAdmin
	case h.keys.ReadKeyHash != "" && pkg.CheckSecretHash(key, h.keys.ReadKeyHash):
		access = AccessRead
	default:
		return "", false
	}

	if err := h.verified.Set(fingerprint, []byte(access), verifiedKeyExpire); err != nil {
		log.Errorf("cache verified key: %s", err)
	}
	return access, true
}

func (h *AuthMiddlewareHandler) reject(w http.ResponseWriter, status int, reason, message string) {
	if h.metricsManager != nil {
		h.metricsManager.CounterUnauthorized.WithLabelValues(reason).Inc()
	}
	pkg.WriteJSONError(w, status, message)
}
