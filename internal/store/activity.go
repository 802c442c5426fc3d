package store

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainlytics/internal/telemetry/tracing"
	"github.com/2beens/trainlytics/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ActivityRepo struct {
	db *pgxpool.Pool
}

func NewActivityRepo(db *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{
		db: db,
	}
}

func (r *ActivityRepo) Add(ctx context.Context, rec ActivityRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.add")
	span.SetAttributes(attribute.String("source", rec.Source))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO agent_activity (id, type, title, description, source, model, tokens, cost, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		rec.ID,
		rec.Type,
		rec.Title,
		rec.Description,
		rec.Source,
		rec.Model,
		rec.Tokens,
		rec.Cost,
		rec.Timestamp,
	)
	if pkg.IsUniqueViolationError(err) {
		return fmt.Errorf("activity %s: %w", rec.ID, ErrDuplicate)
	}
	return err
}

// Recent lists the newest entries, optionally only those of one source.
func (r *ActivityRepo) Recent(ctx context.Context, limit int, source string) (_ []ActivityRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.recent")
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.String("source", source))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.list(ctx, `
		SELECT id, COALESCE(type, ''), COALESCE(title, ''), COALESCE(description, ''), COALESCE(source, ''), model, tokens, cost, timestamp
		FROM agent_activity
		WHERE ($1::text = '' OR source = $1)
		ORDER BY timestamp DESC NULLS LAST
		LIMIT $2
	`, source, limit)
}

// Since lists all entries logged at or after the cutoff, newest first.
func (r *ActivityRepo) Since(ctx context.Context, cutoff time.Time) (_ []ActivityRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.since")
	span.SetAttributes(attribute.String("cutoff", cutoff.String()))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.list(ctx, `
		SELECT id, COALESCE(type, ''), COALESCE(title, ''), COALESCE(description, ''), COALESCE(source, ''), model, tokens, cost, timestamp
		FROM agent_activity
		WHERE timestamp >= $1
		ORDER BY timestamp DESC
	`, cutoff)
}

func (r *ActivityRepo) list(ctx context.Context, query string, args ...any) ([]ActivityRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ActivityRecord, error) {
		var a ActivityRecord
		err := row.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.Source, &a.Model, &a.Tokens, &a.Cost, &a.Timestamp)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect activity: %w", err)
	}

	if records == nil {
		records = make([]ActivityRecord, 0)
	}
	return records, nil
}
