// Package catalog implements read access to the component catalog
// (categories and priced components). The catalog is immutable reference
// data from the assembly service's perspective; it is written only by the
// offline seeder.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/amteixeira/uvtrack-backend/internal/adapter/postgres"
	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Repo provides catalog reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listCategoriesSQL = `
SELECT id, name
FROM categories
ORDER BY name`

const listComponentsSQL = `
SELECT c.id, c.name, c.category_id, c.price::text, c.specification
FROM components c
JOIN categories cat ON c.category_id = cat.id
ORDER BY cat.name, c.name`

const getComponentSQL = `
SELECT id, name, category_id, price::text, specification
FROM components
WHERE id = $1`

const componentsByIDsSQL = `
SELECT id, name, category_id, price::text, specification
FROM components
WHERE id = ANY($1::uuid[])`

// ListCategories returns all categories ordered by name.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("list categories: scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// ListComponents returns the full catalog ordered by category name, then
// component name. Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) ListComponents(ctx context.Context) ([]domain.Component, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listComponentsSQL)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	components, err := scanComponents(rows)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}

	return components, nil
}

// GetComponentByID returns a component by primary key.
// Returns domain.ErrNotFound if no such component exists.
func (r *Repo) GetComponentByID(ctx context.Context, componentID uuid.UUID) (*domain.Component, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getComponentSQL, componentID)
	c, err := scanComponent(row)
	if err != nil {
		return nil, postgres.MapError(err, "component", componentID)
	}

	return c, nil
}

// GetComponentsByIDs returns the components matching ids, keyed by id.
// Missing ids are simply absent from the result map.
func (r *Repo) GetComponentsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Component, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]domain.Component{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, componentsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get components by ids: %w", err)
	}
	defer rows.Close()

	components, err := scanComponents(rows)
	if err != nil {
		return nil, fmt.Errorf("get components by ids: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Component, len(components))
	for _, c := range components {
		byID[c.ID] = c
	}

	return byID, nil
}

func scanComponent(row pgx.Row) (*domain.Component, error) {
	var c domain.Component
	var price string
	if err := row.Scan(&c.ID, &c.Name, &c.CategoryID, &price, &c.Specification); err != nil {
		return nil, err
	}

	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	c.Price = p

	return &c, nil
}

func scanComponents(rows pgx.Rows) ([]domain.Component, error) {
	components := []domain.Component{}
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, *c)
	}
	return components, rows.Err()
}
