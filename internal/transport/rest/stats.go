package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	WeeklyReadingCounts(ctx context.Context, now time.Time) ([]domain.DayCount, error)
	Overall(ctx context.Context) (*domain.OverallStats, error)
	TopLocations(ctx context.Context) ([]domain.LocationStats, error)
	DailyAverageFrequency(ctx context.Context) ([]domain.DailyAverage, error)
}

// StatsHandler serves the statistics dashboard endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
	now func() time.Time
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		svc: svc,
		log: logger.With("handler", "stats"),
		now: time.Now,
	}
}

type dayCountResponse struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type overallResponse struct {
	TotalReadings   int     `json:"totalReadings"`
	AvgFrequency    float64 `json:"avgFrequency"`
	TotalAssemblies int     `json:"totalAssemblies"`
	TotalUsers      int     `json:"totalUsers"`
}

type locationStatsResponse struct {
	Country      string  `json:"country"`
	State        string  `json:"state"`
	City         string  `json:"city"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ReadingCount int     `json:"readingCount"`
	AvgFrequency float64 `json:"avgFrequency"`
}

type dailyAverageResponse struct {
	Day          string  `json:"day"`
	AvgFrequency float64 `json:"avgFrequency"`
}

// Weekly handles GET /api/stats/weekly.
func (h *StatsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.WeeklyReadingCounts(r.Context(), h.now())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]dayCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dayCountResponse{Day: c.Day, Count: c.Count})
	}

	writeJSON(w, http.StatusOK, out)
}

// Overall handles GET /api/stats/overall.
func (h *StatsHandler) Overall(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Overall(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, overallResponse{
		TotalReadings:   stats.TotalReadings,
		AvgFrequency:    stats.AvgFrequency,
		TotalAssemblies: stats.TotalAssemblies,
		TotalUsers:      stats.TotalUsers,
	})
}

// TopLocations handles GET /api/stats/locations.
func (h *StatsHandler) TopLocations(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.TopLocations(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]locationStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, locationStatsResponse{
			Country:      s.Location.Country,
			State:        s.Location.State,
			City:         s.Location.City,
			Latitude:     s.Location.Latitude,
			Longitude:    s.Location.Longitude,
			ReadingCount: s.ReadingCount,
			AvgFrequency: s.AvgFrequency,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// DailyAverages handles GET /api/stats/daily.
func (h *StatsHandler) DailyAverages(w http.ResponseWriter, r *http.Request) {
	averages, err := h.svc.DailyAverageFrequency(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]dailyAverageResponse, 0, len(averages))
	for _, a := range averages {
		out = append(out, dailyAverageResponse{
			Day:          a.Day.Format("2006-01-02"),
			AvgFrequency: a.AvgFrequency,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
