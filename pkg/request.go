package pkg

import (
	"net/http"
	"strconv"
)

// QueryInt reads a positive integer query param. Missing, malformed and
// non-positive values read as def. A max > 0 caps the result.
func QueryInt(r *http.Request, key string, def, max int) int {
	v := def
	if raw := r.URL.Query().Get(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			v = parsed
		}
	}
	if max > 0 && v > max {
		v = max
	}
	return v
}
