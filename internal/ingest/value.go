package ingest

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// Value is a loosely typed document field. Legacy documents store numbers
// both as JSON numbers and as strings, sometimes with a unit suffix.
type Value struct {
	raw any
}

func (v *Value) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &v.raw)
}

// Float reads the value as a number. Strings are read by their leading
// numeric prefix, so "135.5 lbs" is 135.5. ok is false when nothing
// numeric can be read.
func (v Value) Float() (float64, bool) {
	switch t := v.raw.(type) {
	case float64:
		return t, true
	case string:
		m := floatPrefix.FindString(strings.TrimLeft(t, " \t\n\r"))
		if m == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int reads the value as an integer, truncating any fraction.
func (v Value) Int() (int, bool) {
	switch t := v.raw.(type) {
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return 0, false
		}
		return int(t), true
	case string:
		m := intPrefix.FindString(strings.TrimLeft(t, " \t\n\r"))
		if m == "" {
			return 0, false
		}
		i, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	s, _ := v.raw.(string)
	return s
}

// FirstFloat returns the first value that reads as a non-zero number,
// or 0 when there is none.
func FirstFloat(values ...Value) float64 {
	for _, v := range values {
		if f, ok := v.Float(); ok && f != 0 {
			return f
		}
	}
	return 0
}

// FirstInt is FirstFloat for integer fields.
func FirstInt(values ...Value) int {
	for _, v := range values {
		if i, ok := v.Int(); ok && i != 0 {
			return i
		}
	}
	return 0
}

// Timestamp is a document date. It accepts RFC 3339 strings, plain
// YYYY-MM-DD dates and exported store timestamps like
// {"_seconds": 1704067200, "_nanoseconds": 0}.
type Timestamp struct {
	time.Time
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				ts.Time = parsed.UTC()
				return nil
			}
		}
	case map[string]any:
		secs, ok := number(t, "_seconds", "seconds")
		if !ok {
			return nil
		}
		nanos, _ := number(t, "_nanoseconds", "nanoseconds")
		ts.Time = time.Unix(int64(secs), int64(nanos)).UTC()
	}

	// unreadable dates stay zero
	return nil
}

// Ptr returns nil for an unresolved timestamp.
func (ts *Timestamp) Ptr() *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}

func number(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if f, ok := m[k].(float64); ok {
			return f, true
		}
	}
	return 0, false
}
