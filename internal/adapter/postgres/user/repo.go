// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/amteixeira/uvtrack-backend/internal/adapter/postgres"
	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, email, password_hash, about_me, created_at, updated_at`

const createSQL = `
INSERT INTO users (username, email, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const getByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

const countAllSQL = `
SELECT count(*) FROM users`

// Create inserts a new user. Returns domain.ErrAlreadyExists when the
// username or email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, u.Username, u.Email, u.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// GetByEmail returns a user by email. Used by login.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// GetByUsername returns a user by username. Used for public profile pages.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// Update applies the non-nil fields of params to the user and returns the
// updated row. Calling it with no fields set only bumps updated_at.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Update("users").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + userColumns)

	if params.Username != nil {
		query = query.Set("username", *params.Username)
	}
	if params.AboutMe != nil {
		query = query.Set("about_me", *params.AboutMe)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("update user: build: %w", err)
	}

	u, err := scanUser(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// CountAll returns the total number of registered users.
func (r *Repo) CountAll(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countAllSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.AboutMe, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
