package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/internal/service/reading"
)

// readingService defines the minimal interface needed by ReadingHandler.
type readingService interface {
	Record(ctx context.Context, input reading.RecordInput) (*domain.Reading, error)
}

// ReadingHandler serves reading ingestion endpoints.
type ReadingHandler struct {
	svc readingService
	log *slog.Logger
}

// NewReadingHandler creates a ReadingHandler.
func NewReadingHandler(svc readingService, logger *slog.Logger) *ReadingHandler {
	return &ReadingHandler{svc: svc, log: logger.With("handler", "reading")}
}

type locationRequest struct {
	Country   string  `json:"country"`
	State     string  `json:"state"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type recordReadingRequest struct {
	AssemblyID   string          `json:"assemblyId"`
	Location     locationRequest `json:"location"`
	RegisterDate time.Time       `json:"registerDate"`
	Frequency    float64         `json:"frequency"`
}

type readingResponse struct {
	ID           string    `json:"id"`
	AssemblyID   string    `json:"assemblyId"`
	LocationID   string    `json:"locationId"`
	RegisterDate time.Time `json:"registerDate"`
	Frequency    float64   `json:"frequency"`
}

// Record handles POST /api/readings.
func (h *ReadingHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordReadingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	assemblyID, err := uuid.Parse(req.AssemblyID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid assemblyId")
		return
	}

	created, err := h.svc.Record(r.Context(), reading.RecordInput{
		AssemblyID: assemblyID,
		Location: domain.Location{
			Country:   req.Location.Country,
			State:     req.Location.State,
			City:      req.Location.City,
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		},
		RegisterDate: req.RegisterDate,
		Frequency:    req.Frequency,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, readingResponse{
		ID:           created.ID.String(),
		AssemblyID:   created.AssemblyID.String(),
		LocationID:   created.LocationID.String(),
		RegisterDate: created.RegisterDate,
		Frequency:    created.Frequency,
	})
}
