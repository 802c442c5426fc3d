package activity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/2beens/trainlytics/internal/analytics/events"
)

type Entry struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Source      string         `json:"source"`
	Model       *string        `json:"model"`
	Tokens      *events.Tokens `json:"tokens"`
	Cost        *float64       `json:"cost"`
	Timestamp   *string        `json:"timestamp"`
}

type Recent struct {
	Count      int     `json:"count"`
	Activities []Entry `json:"activities"`
}

type Bucket struct {
	Events int    `json:"events"`
	Cost   string `json:"cost"`
	Tokens *int   `json:"tokens,omitempty"`
}

type NamedBucket struct {
	Key string
	Bucket
}

// Buckets marshals to a JSON object that keeps the order of its keys.
type Buckets []NamedBucket

func (b Buckets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, nb := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(nb.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(nb.Bucket)
		if err != nil {
			return nil, fmt.Errorf("marshal bucket %s: %w", nb.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the bucket stored under key.
func (b Buckets) Get(key string) (Bucket, bool) {
	for _, nb := range b {
		if nb.Key == key {
			return nb.Bucket, true
		}
	}
	return Bucket{}, false
}

type CostSummary struct {
	Period      string  `json:"period"`
	TotalCost   string  `json:"totalCost"`
	TotalTokens int     `json:"totalTokens"`
	TotalEvents int     `json:"totalEvents"`
	BySource    Buckets `json:"bySource"`
	ByModel     Buckets `json:"byModel"`
	ByType      Buckets `json:"byType"`
}

type SourceCount struct {
	Source string `json:"source"`
	Events int    `json:"events"`
}

type Stats struct {
	Period           string         `json:"period"`
	TotalEvents      int            `json:"totalEvents"`
	AvgPerDay        float64        `json:"avgPerDay"`
	MostActiveSource *SourceCount   `json:"mostActiveSource"`
	DailyBreakdown   map[string]int `json:"dailyBreakdown"`
}

// LogRequest is the body of a new activity entry.
type LogRequest struct {
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Source      string         `json:"source"`
	Model       *string        `json:"model"`
	Tokens      *events.Tokens `json:"tokens"`
	Cost        *float64       `json:"cost"`
}
