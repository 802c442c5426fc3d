package store

import (
	"context"
	"fmt"

	"github.com/2beens/trainlytics/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GroupsRepo struct {
	db *pgxpool.Pool
}

func NewGroupsRepo(db *pgxpool.Pool) *GroupsRepo {
	return &GroupsRepo{
		db: db,
	}
}

// WithMember lists the groups the user is a member of.
func (r *GroupsRepo) WithMember(ctx context.Context, userID string) (_ []GroupRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.withmember")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.list(ctx, `
		SELECT id, name, members, admins
		FROM groups
		WHERE $1 = ANY(members)
		ORDER BY id
	`, userID)
}

// WithAdmin lists the groups the user coaches.
func (r *GroupsRepo) WithAdmin(ctx context.Context, userID string) (_ []GroupRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.withadmin")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.list(ctx, `
		SELECT id, name, members, admins
		FROM groups
		WHERE $1 = ANY(admins)
		ORDER BY id
	`, userID)
}

func (r *GroupsRepo) list(ctx context.Context, query, userID string) ([]GroupRecord, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (GroupRecord, error) {
		var g GroupRecord
		err := row.Scan(&g.ID, &g.Name, &g.Members, &g.Admins)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect groups: %w", err)
	}

	if groups == nil {
		groups = make([]GroupRecord, 0)
	}
	return groups, nil
}
