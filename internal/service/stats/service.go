// Package stats implements the read-only statistics aggregator behind the
// dashboard: weekly reading counts, site totals, location rankings, and
// daily frequency averages. Everything is recomputed on demand, no caching.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/amteixeira/uvtrack-backend/internal/config"
	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type readingRepo interface {
	ListTimesSince(ctx context.Context, since time.Time) ([]time.Time, error)
	CountAndAvg(ctx context.Context) (int, float64, error)
	TopLocations(ctx context.Context, limit int) ([]domain.LocationStats, error)
	DailyAverages(ctx context.Context, limit int) ([]domain.DailyAverage, error)
}

type assemblyCounter interface {
	CountAll(ctx context.Context) (int, error)
}

type userCounter interface {
	CountAll(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the statistics aggregator.
type Service struct {
	readings   readingRepo
	assemblies assemblyCounter
	users      userCounter
	cfg        config.StatsConfig
	log        *slog.Logger
}

// NewService creates a new Stats service.
func NewService(log *slog.Logger, readings readingRepo, assemblies assemblyCounter, users userCounter, cfg config.StatsConfig) *Service {
	return &Service{
		readings:   readings,
		assemblies: assemblies,
		users:      users,
		cfg:        cfg,
		log:        log.With("service", "stats"),
	}
}
