package store

import (
	"context"
	"fmt"

	"github.com/2beens/trainlytics/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type WorkoutsRepo struct {
	db *pgxpool.Pool
}

func NewWorkoutsRepo(db *pgxpool.Pool) *WorkoutsRepo {
	return &WorkoutsRepo{
		db: db,
	}
}

// Personal lists the workouts a user logged on their own.
func (r *WorkoutsRepo) Personal(ctx context.Context, filter WorkoutFilter) (_ []WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.personal")
	setFilterAttributes(span, filter)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	// group filter does not apply to personal workouts
	query := fmt.Sprintf(`
		SELECT id, user_id, '', status, date, data
		FROM workouts
		WHERE user_id = $1
			AND ($2::text = '' OR status = $2)
			AND ($3::timestamptz IS NULL OR date >= $3)
		ORDER BY date %s NULLS LAST, id
		LIMIT NULLIF($4::int, 0)
	`, filter.order())

	return r.list(ctx, query, filter.OwnerID, filter.Status, filter.Since, filter.Limit)
}

// Group lists the group workouts assigned to an athlete.
func (r *WorkoutsRepo) Group(ctx context.Context, filter WorkoutFilter) (_ []WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.group")
	setFilterAttributes(span, filter)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	query := fmt.Sprintf(`
		SELECT id, assigned_to, group_id, status, date, data
		FROM group_workouts
		WHERE assigned_to = $1
			AND ($2::text = '' OR status = $2)
			AND ($3::timestamptz IS NULL OR date >= $3)
			AND ($5::text = '' OR group_id = $5)
		ORDER BY date %s NULLS LAST, id
		LIMIT NULLIF($4::int, 0)
	`, filter.order())

	return r.list(ctx, query, filter.OwnerID, filter.Status, filter.Since, filter.Limit, filter.GroupID)
}

// CountCompleted returns the number of completed personal and group
// workouts of a user.
func (r *WorkoutsRepo) CountCompleted(ctx context.Context, userID string) (personal, group int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.countcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM workouts WHERE user_id = $1 AND status = $2),
			(SELECT COUNT(*) FROM group_workouts WHERE assigned_to = $1 AND status = $2)
	`, userID, StatusCompleted).Scan(&personal, &group)
	if err != nil {
		return -1, -1, err
	}
	return personal, group, nil
}

func (r *WorkoutsRepo) list(ctx context.Context, query string, args ...any) ([]WorkoutRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (WorkoutRecord, error) {
		var w WorkoutRecord
		err := row.Scan(&w.ID, &w.OwnerID, &w.GroupID, &w.Status, &w.Date, &w.Data)
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect workouts: %w", err)
	}

	if workouts == nil {
		workouts = make([]WorkoutRecord, 0)
	}
	return workouts, nil
}

func setFilterAttributes(span trace.Span, filter WorkoutFilter) {
	span.SetAttributes(attribute.String("owner", filter.OwnerID))
	span.SetAttributes(attribute.Int("limit", filter.Limit))
	if filter.Status != "" {
		span.SetAttributes(attribute.String("status", filter.Status))
	}
	if filter.GroupID != "" {
		span.SetAttributes(attribute.String("group", filter.GroupID))
	}
	if filter.Since != nil {
		span.SetAttributes(attribute.String("since", filter.Since.String()))
	}
}
