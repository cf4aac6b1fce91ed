// Package reading implements persistence for UV readings, their locations,
// and the read-only aggregates behind the statistics dashboard.
package reading

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/amteixeira/uvtrack-backend/internal/adapter/postgres"
	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Repo provides reading and location persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reading repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// The DO UPDATE arm is a no-op write that lets RETURNING see the existing
// row; plain DO NOTHING returns nothing on conflict.
const getOrCreateLocationSQL = `
INSERT INTO locations (country, state, city, latitude, longitude)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (country, state, city, latitude, longitude)
DO UPDATE SET country = EXCLUDED.country
RETURNING id, country, state, city, latitude, longitude`

const createReadingSQL = `
INSERT INTO readings (assembly_id, location_id, register_date, frequency)
VALUES ($1, $2, $3, $4)
RETURNING id, assembly_id, location_id, register_date, frequency`

const listTimesSinceSQL = `
SELECT register_date
FROM readings
WHERE register_date >= $1
ORDER BY register_date`

const countAndAvgSQL = `
SELECT count(*), COALESCE(avg(frequency), 0)
FROM readings`

const topLocationsSQL = `
SELECT l.id, l.country, l.state, l.city, l.latitude, l.longitude,
       count(r.id), avg(r.frequency)
FROM locations l
JOIN readings r ON r.location_id = l.id
GROUP BY l.id
ORDER BY count(r.id) DESC, l.id
LIMIT $1`

// Inner query picks the most recent days; outer query flips them back into
// chronological order.
const dailyAveragesSQL = `
SELECT day, avg_frequency
FROM (
    SELECT register_date::date AS day, avg(frequency) AS avg_frequency
    FROM readings
    GROUP BY register_date::date
    ORDER BY day DESC
    LIMIT $1
) recent
ORDER BY day`

// GetOrCreateLocation returns the existing location matching every field of
// loc, creating it first if needed. Concurrent callers converge on one row.
func (r *Repo) GetOrCreateLocation(ctx context.Context, loc domain.Location) (*domain.Location, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getOrCreateLocationSQL,
		loc.Country, loc.State, loc.City, loc.Latitude, loc.Longitude)

	var out domain.Location
	err := row.Scan(&out.ID, &out.Country, &out.State, &out.City, &out.Latitude, &out.Longitude)
	if err != nil {
		return nil, postgres.MapError(err, "location", uuid.Nil)
	}

	return &out, nil
}

// CreateReading appends one reading. The assembly and location must exist.
func (r *Repo) CreateReading(ctx context.Context, in domain.Reading) (*domain.Reading, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createReadingSQL,
		in.AssemblyID, in.LocationID, in.RegisterDate, in.Frequency)

	var out domain.Reading
	err := row.Scan(&out.ID, &out.AssemblyID, &out.LocationID, &out.RegisterDate, &out.Frequency)
	if err != nil {
		return nil, postgres.MapError(err, "reading", in.AssemblyID)
	}

	return &out, nil
}

// ListTimesSince returns the register_date of every reading at or after the
// boundary, ascending. Calendar bucketing happens in the service so the
// caller's timezone rules apply, not the session's.
func (r *Repo) ListTimesSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTimesSinceSQL, since)
	if err != nil {
		return nil, fmt.Errorf("list reading times: %w", err)
	}
	defer rows.Close()

	times := []time.Time{}
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("list reading times: scan: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reading times: %w", err)
	}

	return times, nil
}

// CountAndAvg returns the total reading count and the mean frequency.
// The mean is 0 when there are no readings.
func (r *Repo) CountAndAvg(ctx context.Context) (int, float64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	var avg float64
	if err := querier.QueryRow(ctx, countAndAvgSQL).Scan(&count, &avg); err != nil {
		return 0, 0, fmt.Errorf("count readings: %w", err)
	}

	return count, avg, nil
}

// TopLocations returns up to limit locations ordered by reading count
// descending, ties broken by location id for a stable ranking.
func (r *Repo) TopLocations(ctx context.Context, limit int) ([]domain.LocationStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, topLocationsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top locations: %w", err)
	}
	defer rows.Close()

	stats := []domain.LocationStats{}
	for rows.Next() {
		var s domain.LocationStats
		err := rows.Scan(
			&s.Location.ID, &s.Location.Country, &s.Location.State, &s.Location.City,
			&s.Location.Latitude, &s.Location.Longitude,
			&s.ReadingCount, &s.AvgFrequency,
		)
		if err != nil {
			return nil, fmt.Errorf("top locations: scan: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top locations: %w", err)
	}

	return stats, nil
}

// DailyAverages returns the mean frequency for the most recent limit
// distinct calendar days, in chronological order.
func (r *Repo) DailyAverages(ctx context.Context, limit int) ([]domain.DailyAverage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, dailyAveragesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("daily averages: %w", err)
	}
	defer rows.Close()

	averages := []domain.DailyAverage{}
	for rows.Next() {
		var a domain.DailyAverage
		if err := rows.Scan(&a.Day, &a.AvgFrequency); err != nil {
			return nil, fmt.Errorf("daily averages: scan: %w", err)
		}
		averages = append(averages, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily averages: %w", err)
	}

	return averages, nil
}
