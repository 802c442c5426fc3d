package store

import (
	"context"
	"fmt"

	"github.com/2beens/trainlytics/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type GoalsRepo struct {
	db *pgxpool.Pool
}

func NewGoalsRepo(db *pgxpool.Pool) *GoalsRepo {
	return &GoalsRepo{
		db: db,
	}
}

// ForUser lists the active goals of a user, or all of them when
// includeCompleted is set.
func (r *GoalsRepo) ForUser(ctx context.Context, userID string, includeCompleted bool) (_ []GoalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.foruser")
	span.SetAttributes(attribute.Bool("include-completed", includeCompleted))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, status, data
		FROM goals
		WHERE user_id = $1
			AND ($2::boolean OR status = $3)
		ORDER BY id
	`, userID, includeCompleted, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (GoalRecord, error) {
		var g GoalRecord
		err := row.Scan(&g.ID, &g.UserID, &g.Status, &g.Data)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect goals: %w", err)
	}

	if goals == nil {
		goals = make([]GoalRecord, 0)
	}
	return goals, nil
}
