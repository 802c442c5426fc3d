package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/trainlytics/internal/telemetry/metrics"
	"github.com/2beens/trainlytics/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

const MCPPath = "/mcp"

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimitRule is one per-client budget. Skip exempts requests from it.
type RateLimitRule struct {
	Name          string
	AllowedPerMin int
	Message       string
	Skip          func(r *http.Request) bool
}

var (
	GlobalRateLimit = RateLimitRule{
		Name:          "global",
		AllowedPerMin: 100,
		Message:       "Too many requests, please try again later",
	}
	WriteRateLimit = RateLimitRule{
		Name:          "write",
		AllowedPerMin: 10,
		Message:       "Too many write requests, please try again later",
		// MCP tool calls are all POSTs, reads included, so they only count
		// against the global budget
		Skip: func(r *http.Request) bool {
			return r.Method == http.MethodGet || r.Method == http.MethodOptions || r.URL.Path == MCPPath
		},
	}
)

func RateLimit(rateLimiter RequestRateLimiter, rule RateLimitRule, metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rule.Skip != nil && rule.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			res, err := rateLimiter.Allow(
				r.Context(),
				rule.Name+":"+pkg.ClientIP(r),
				redis_rate.PerMinute(rule.AllowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limit [%s]: %s", rule.Name, err)
				pkg.WriteJSONError(w, http.StatusInternalServerError, "rate limit internal error")
				return
			}

			w.Header().Set("RateLimit-Limit", strconv.Itoa(rule.AllowedPerMin))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("RateLimit-Reset", seconds(res.ResetAfter.Seconds()))

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			w.Header().Set("Retry-After", seconds(res.RetryAfter.Seconds()))
			pkg.WriteJSONError(w, http.StatusTooManyRequests, rule.Message)
		})
	}
}

func seconds(s float64) string {
	return strconv.Itoa(int(math.Ceil(math.Max(s, 0))))
}
