package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/2beens/trainlytics/internal/analytics/events"
	"github.com/2beens/trainlytics/internal/analytics/rollup"
	"github.com/2beens/trainlytics/internal/ingest"
	"github.com/2beens/trainlytics/internal/store"
	"github.com/2beens/trainlytics/internal/telemetry/metrics"
	"github.com/2beens/trainlytics/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// MissingFieldsMessage is returned to clients as is, on REST and MCP alike.
const MissingFieldsMessage = "Missing required fields: type, title, source"

var ErrMissingFields = errors.New(MissingFieldsMessage)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
	DefaultCostDays    = 30
	MaxCostDays        = 365
	DefaultStatsDays   = 7
	MaxStatsDays       = 90

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type activityRepo interface {
	Add(ctx context.Context, rec store.ActivityRecord) error
	Recent(ctx context.Context, limit int, source string) ([]store.ActivityRecord, error)
	Since(ctx context.Context, cutoff time.Time) ([]store.ActivityRecord, error)
}

type publisher interface {
	Publish(ctx context.Context, entry Entry) error
}

type Service struct {
	repo      activityRepo
	publisher publisher
	metrics   *metrics.Manager
	now       func() time.Time
}

// NewService builds the activity service. A nil publisher disables
// publishing, a nil clock means time.Now.
func NewService(repo activityRepo, publisher publisher, metricsManager *metrics.Manager, now func() time.Time) *Service {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		metrics:   metricsManager,
		now:       now,
	}
}

func (s *Service) Recent(ctx context.Context, limit int, source string) (_ *Recent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.recent")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	limit = clamp(limit, DefaultRecentLimit, MaxRecentLimit)
	span.SetAttributes(attribute.Int("limit", limit))

	recs, err := s.repo.Recent(ctx, limit, source)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}

	resp := &Recent{Activities: make([]Entry, 0, len(recs))}
	for _, e := range ingest.CostEntries(recs) {
		resp.Activities = append(resp.Activities, entryOf(e))
	}
	resp.Count = len(resp.Activities)
	return resp, nil
}

func (s *Service) CostSummary(ctx context.Context, days int) (_ *CostSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.costs")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("cost_summary")()

	days = clamp(days, DefaultCostDays, MaxCostDays)
	span.SetAttributes(attribute.Int("days", days))

	recs, err := s.repo.Since(ctx, s.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("activity since: %w", err)
	}
	batch := ingest.CostEntries(recs)

	bySource := rollup.Aggregate(batch, rollup.Dimension[events.Event]{
		Name: "source",
		Key:  func(e events.Event) string { return e.Cost.Source },
	}, costAndTokens)
	byModel := rollup.Aggregate(batch, rollup.Dimension[events.Event]{
		Name: "model",
		Key:  func(e events.Event) string { return e.Cost.ModelName() },
	}, costAndTokens)
	byType := rollup.Aggregate(batch, rollup.Dimension[events.Event]{
		Name: "type",
		Key:  func(e events.Event) string { return e.Cost.Type },
	}, costAndTokens).SortByEvents()

	totals := bySource.Totals()
	return &CostSummary{
		Period:      fmt.Sprintf("%d days", days),
		TotalCost:   formatCost(totals.Cost),
		TotalTokens: totals.Tokens,
		TotalEvents: totals.Events,
		BySource:    buckets(bySource, true),
		ByModel:     buckets(byModel, true),
		ByType:      buckets(byType, false),
	}, nil
}

func (s *Service) Stats(ctx context.Context, days int) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.stats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("activity_stats")()

	days = clamp(days, DefaultStatsDays, MaxStatsDays)
	span.SetAttributes(attribute.Int("days", days))

	recs, err := s.repo.Since(ctx, s.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("activity since: %w", err)
	}
	batch := ingest.CostEntries(recs)

	dated := make([]events.Event, 0, len(batch))
	for _, e := range batch {
		if e.Dated() {
			dated = append(dated, e)
		}
	}

	byDay := rollup.Aggregate(dated, rollup.Dimension[events.Event]{
		Name: "day",
		Key:  func(e events.Event) string { return events.FormatDay(e.OccurredAt) },
	}, nil)
	bySource := rollup.Aggregate(dated, rollup.Dimension[events.Event]{
		Name: "source",
		Key:  func(e events.Event) string { return e.Cost.Source },
	}, nil).SortByEvents()

	stats := &Stats{
		Period:         fmt.Sprintf("%d days", days),
		TotalEvents:    len(batch),
		AvgPerDay:      math.Round(float64(len(batch))/float64(days)*10) / 10,
		DailyBreakdown: make(map[string]int, byDay.Len()),
	}
	for _, g := range byDay.Groups() {
		stats.DailyBreakdown[g.Key] = g.Events
	}
	if top, ok := bySource.Top(); ok {
		stats.MostActiveSource = &SourceCount{Source: top.Key, Events: top.Events}
	}

	return stats, nil
}

// Log validates and stores a new entry, then publishes it. A failed
// publish is only logged.
func (s *Service) Log(ctx context.Context, req LogRequest) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if req.Type == "" || req.Title == "" || req.Source == "" {
		return nil, ErrMissingFields
	}
	span.SetAttributes(attribute.String("source", req.Source))

	model := req.Model
	if model != nil && *model == "" {
		model = nil
	}

	ts := s.now().UTC()
	rec := store.ActivityRecord{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Source:      req.Source,
		Model:       model,
		Cost:        req.Cost,
		Timestamp:   &ts,
	}
	if req.Tokens != nil {
		rec.Tokens, err = json.Marshal(req.Tokens)
		if err != nil {
			return nil, fmt.Errorf("marshal tokens: %w", err)
		}
	}

	if err := s.repo.Add(ctx, rec); err != nil {
		return nil, fmt.Errorf("add activity: %w", err)
	}
	if s.metrics != nil {
		s.metrics.CounterActivityLogged.Inc()
	}

	entry := entryOf(ingest.CostEntry(rec))
	if err := s.publisher.Publish(ctx, entry); err != nil {
		log.Errorf("publish activity %s: %s", entry.ID, err)
	}

	return &entry, nil
}

func (s *Service) observe(operation string) func() {
	if s.metrics == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		s.metrics.HistogramComputeDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

func costAndTokens(e events.Event) rollup.Sample {
	return rollup.Sample{Cost: e.Cost.CostAmount(), Tokens: e.Cost.TokenCount()}
}

func buckets(r *rollup.Rollup, withTokens bool) Buckets {
	groups := r.Groups()
	out := make(Buckets, 0, len(groups))
	for _, g := range groups {
		b := Bucket{Events: g.Events, Cost: formatCost(g.Cost)}
		if withTokens {
			tokens := g.Tokens
			b.Tokens = &tokens
		}
		out = append(out, NamedBucket{Key: g.Key, Bucket: b})
	}
	return out
}

func entryOf(e events.Event) Entry {
	c := e.Cost
	entry := Entry{
		ID:          e.ID,
		Type:        c.Type,
		Title:       c.Title,
		Description: c.Description,
		Source:      c.Source,
		Model:       c.Model,
		Tokens:      c.Tokens,
		Cost:        c.Cost,
	}
	if e.Dated() {
		ts := e.OccurredAt.UTC().Format(timestampLayout)
		entry.Timestamp = &ts
	}
	return entry
}

func formatCost(c float64) string {
	return "$" + strconv.FormatFloat(c, 'f', -1, 64)
}

// clamp maps non-positive values to def and caps at max.
func clamp(v, def, max int) int {
	if v <= 0 {
		v = def
	}
	if v > max {
		v = max
	}
	return v
}
