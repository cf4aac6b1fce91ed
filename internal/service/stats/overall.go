package stats

import (
	"context"
	"fmt"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Overall returns the site-wide totals: reading count, mean frequency
// across all readings (0 when there are none), assembly count, and
// registered user count.
func (s *Service) Overall(ctx context.Context) (*domain.OverallStats, error) {
	readings, avg, err := s.readings.CountAndAvg(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.Overall: readings: %w", err)
	}

	assemblies, err := s.assemblies.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.Overall: assemblies: %w", err)
	}

	users, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.Overall: users: %w", err)
	}

	return &domain.OverallStats{
		TotalReadings:   readings,
		AvgFrequency:    avg,
		TotalAssemblies: assemblies,
		TotalUsers:      users,
	}, nil
}

// TopLocations ranks locations by reading count, most active first.
// The limit comes from configuration.
func (s *Service) TopLocations(ctx context.Context) ([]domain.LocationStats, error) {
	stats, err := s.readings.TopLocations(ctx, s.cfg.TopLocationsLimit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopLocations: %w", err)
	}
	return stats, nil
}

// DailyAverageFrequency returns the mean frequency per calendar day for the
// most recent configured number of days, in chronological order.
func (s *Service) DailyAverageFrequency(ctx context.Context) ([]domain.DailyAverage, error) {
	averages, err := s.readings.DailyAverages(ctx, s.cfg.DailyAverageDays)
	if err != nil {
		return nil, fmt.Errorf("stats.DailyAverageFrequency: %w", err)
	}
	return averages, nil
}
