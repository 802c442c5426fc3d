package store

import (
	"context"
	"errors"
	"strings"

	"github.com/2beens/trainlytics/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

// ByUsername finds a user by the lowercased username.
func (r *UsersRepo) ByUsername(ctx context.Context, username string) (_ *UserRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.byusername")
	span.SetAttributes(attribute.String("username", username))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.get(ctx, `
		SELECT id, username, COALESCE(display_name, ''), created_at, data
		FROM users
		WHERE username = $1
		LIMIT 1
	`, strings.ToLower(username))
}

func (r *UsersRepo) ByID(ctx context.Context, id string) (_ *UserRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.byid")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.get(ctx, `
		SELECT id, username, COALESCE(display_name, ''), created_at, data
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UsersRepo) get(ctx context.Context, query string, arg string) (*UserRecord, error) {
	user := &UserRecord{}
	err := r.db.
		QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.DisplayName, &user.CreatedAt, &user.Data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
