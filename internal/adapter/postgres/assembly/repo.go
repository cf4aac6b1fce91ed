// Package assembly implements the Assembly repository using PostgreSQL.
// It owns both the assemblies table and the assembly_lines join table;
// every mutating lookup is filtered by user_id so a non-owner's request is
// indistinguishable from a missing row.
package assembly

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/amteixeira/uvtrack-backend/internal/adapter/postgres"
	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Repo provides assembly persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assembly repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO assemblies (user_id, register_day)
VALUES ($1, $2)
RETURNING id, user_id, register_day, created_at, updated_at`

const getByIDSQL = `
SELECT id, user_id, register_day, created_at, updated_at
FROM assemblies
WHERE id = $1 AND user_id = $2`

// Row lock serializes concurrent edits/deletes on the same assembly.
const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const listByUserSQL = `
SELECT id, user_id, register_day, created_at, updated_at
FROM assemblies
WHERE user_id = $1
ORDER BY register_day DESC, id`

const getLinesSQL = `
SELECT assembly_id, component_id, quantity
FROM assembly_lines
WHERE assembly_id = $1`

const getLineDetailsSQL = `
SELECT
    al.assembly_id, al.component_id, al.quantity,
    c.id, c.name, c.category_id, c.price::text, c.specification,
    cat.id, cat.name
FROM assembly_lines al
JOIN components c ON al.component_id = c.id
JOIN categories cat ON c.category_id = cat.id
WHERE al.assembly_id = $1
ORDER BY cat.name, c.name`

const upsertLineSQL = `
INSERT INTO assembly_lines (assembly_id, component_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (assembly_id, component_id) DO UPDATE SET quantity = EXCLUDED.quantity`

const deleteLineSQL = `
DELETE FROM assembly_lines
WHERE assembly_id = $1 AND component_id = $2`

const deleteLinesSQL = `
DELETE FROM assembly_lines
WHERE assembly_id = $1`

const countAllSQL = `
SELECT count(*) FROM assemblies`

// ---------------------------------------------------------------------------
// Assembly rows
// ---------------------------------------------------------------------------

// Create inserts a new assembly owned by asm.UserID.
func (r *Repo) Create(ctx context.Context, asm *domain.Assembly) (*domain.Assembly, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, asm.UserID, asm.RegisterDay)
	created, err := scanAssembly(row)
	if err != nil {
		return nil, postgres.MapError(err, "assembly", asm.UserID)
	}

	return created, nil
}

// GetByID returns an assembly by primary key with user_id filter.
// Returns domain.ErrNotFound if the assembly does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, assemblyID, userID)
	asm, err := scanAssembly(row)
	if err != nil {
		return nil, postgres.MapError(err, "assembly", assemblyID)
	}

	return asm, nil
}

// GetByIDForUpdate is GetByID with a row lock. Must be called inside a
// transaction; the lock is held until that transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDForUpdateSQL, assemblyID, userID)
	asm, err := scanAssembly(row)
	if err != nil {
		return nil, postgres.MapError(err, "assembly", assemblyID)
	}

	return asm, nil
}

// ListByUser returns the user's assemblies, most recent register_day first.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assembly, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list assemblies: %w", err)
	}
	defer rows.Close()

	assemblies := []domain.Assembly{}
	for rows.Next() {
		asm, err := scanAssembly(rows)
		if err != nil {
			return nil, fmt.Errorf("list assemblies: scan: %w", err)
		}
		assemblies = append(assemblies, *asm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assemblies: %w", err)
	}

	return assemblies, nil
}

// UpdateRegisterDay sets a new register_day on an owned assembly.
// Returns domain.ErrNotFound when no owned row matched.
func (r *Repo) UpdateRegisterDay(ctx context.Context, userID, assemblyID uuid.UUID, day time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Update("assemblies").
		Set("register_day", day).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": assemblyID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("update register_day: build: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "assembly", assemblyID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "assembly", assemblyID)
	}

	return nil
}

// Delete removes an owned assembly row. Its lines must already be gone;
// callers use DeleteLines first within the same transaction.
// Returns domain.ErrNotFound when no owned row matched.
func (r *Repo) Delete(ctx context.Context, userID, assemblyID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Delete("assemblies").
		Where(sq.Eq{"id": assemblyID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("delete assembly: build: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "assembly", assemblyID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "assembly", assemblyID)
	}

	return nil
}

// CountAll returns the total number of assemblies across all users.
func (r *Repo) CountAll(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countAllSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count assemblies: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Line rows (assembly_lines join table)
// ---------------------------------------------------------------------------

// GetLines returns the raw line set of an assembly as a component_id → quantity map.
func (r *Repo) GetLines(ctx context.Context, assemblyID uuid.UUID) (map[uuid.UUID]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getLinesSQL, assemblyID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	defer rows.Close()

	lines := map[uuid.UUID]int{}
	for rows.Next() {
		var line domain.AssemblyLine
		if err := rows.Scan(&line.AssemblyID, &line.ComponentID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("get lines: scan: %w", err)
		}
		lines[line.ComponentID] = line.Quantity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// GetLineDetails returns the assembly's lines joined with their catalog
// component and category, ordered by category name then component name.
// Returns an empty slice (not nil) when the assembly has no lines.
func (r *Repo) GetLineDetails(ctx context.Context, assemblyID uuid.UUID) ([]domain.AssemblyLineDetail, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getLineDetailsSQL, assemblyID)
	if err != nil {
		return nil, fmt.Errorf("get line details: %w", err)
	}
	defer rows.Close()

	details := []domain.AssemblyLineDetail{}
	for rows.Next() {
		var d domain.AssemblyLineDetail
		var price string
		err := rows.Scan(
			&d.Line.AssemblyID, &d.Line.ComponentID, &d.Line.Quantity,
			&d.Component.ID, &d.Component.Name, &d.Component.CategoryID, &price, &d.Component.Specification,
			&d.Category.ID, &d.Category.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("get line details: scan: %w", err)
		}

		p, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("get line details: parse price %q: %w", price, err)
		}
		d.Component.Price = p

		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get line details: %w", err)
	}

	return details, nil
}

// UpsertLine inserts a line or updates its quantity when it already exists.
// Idempotent for equal quantities.
func (r *Repo) UpsertLine(ctx context.Context, line domain.AssemblyLine) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, upsertLineSQL, line.AssemblyID, line.ComponentID, line.Quantity); err != nil {
		return postgres.MapError(err, "assembly_line", line.ComponentID)
	}

	return nil
}

// DeleteLine removes one line. Deleting an absent line is not an error.
func (r *Repo) DeleteLine(ctx context.Context, assemblyID, componentID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteLineSQL, assemblyID, componentID); err != nil {
		return postgres.MapError(err, "assembly_line", componentID)
	}

	return nil
}

// DeleteLines removes every line of an assembly. Used by DeleteAssembly
// before the parent row goes, so no orphaned lines survive.
func (r *Repo) DeleteLines(ctx context.Context, assemblyID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteLinesSQL, assemblyID); err != nil {
		return postgres.MapError(err, "assembly_line", assemblyID)
	}

	return nil
}

func scanAssembly(row pgx.Row) (*domain.Assembly, error) {
	var asm domain.Assembly
	err := row.Scan(&asm.ID, &asm.UserID, &asm.RegisterDay, &asm.CreatedAt, &asm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &asm, nil
}
