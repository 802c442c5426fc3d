package ingest

import (
	"encoding/json"
	"math"

	"github.com/2beens/trainlytics/internal/analytics/events"
	"github.com/2beens/trainlytics/internal/store"

	log "github.com/sirupsen/logrus"
)

const UnknownSource = "unknown"

// CostEntry converts a stored activity entry into a cost-log event.
// A missing source reads as "unknown", an empty model as no model.
// Unreadable tokens and non-finite costs count as none.
func CostEntry(rec store.ActivityRecord) events.Event {
	entry := events.CostEntry{
		Type:        rec.Type,
		Title:       rec.Title,
		Description: rec.Description,
		Source:      rec.Source,
		Model:       rec.Model,
		Cost:        rec.Cost,
	}
	if entry.Source == "" {
		entry.Source = UnknownSource
	}
	if c := rec.Cost; c != nil && (math.IsNaN(*c) || math.IsInf(*c, 0)) {
		log.Warnf("ingest activity %s: non-finite cost %v", rec.ID, *c)
		entry.Cost = nil
	}

	if len(rec.Tokens) > 0 && string(rec.Tokens) != "null" {
		var tokens events.Tokens
		if err := json.Unmarshal(rec.Tokens, &tokens); err != nil {
			log.Warnf("ingest activity %s: unmarshal tokens: %s", rec.ID, err)
		} else {
			entry.Tokens = &tokens
		}
	}

	entry = entry.Normalized()
	e := events.Event{
		ID:      rec.ID,
		OwnerID: entry.Source,
		Kind:    events.KindCostLog,
		Cost:    &entry,
	}
	if rec.Timestamp != nil {
		e.OccurredAt = rec.Timestamp.UTC()
	}
	return e
}

func CostEntries(recs []store.ActivityRecord) []events.Event {
	all := make([]events.Event, 0, len(recs))
	for _, rec := range recs {
		all = append(all, CostEntry(rec))
	}
	return all
}
