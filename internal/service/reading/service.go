// Package reading implements reading ingestion: ownership-checked append of
// UV measurements with get-or-create location resolution.
package reading

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

type readingRepo interface {
	GetOrCreateLocation(ctx context.Context, loc domain.Location) (*domain.Location, error)
	CreateReading(ctx context.Context, in domain.Reading) (*domain.Reading, error)
}

type assemblyRepo interface {
	GetByID(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the reading ingestion logic.
type Service struct {
	readings   readingRepo
	assemblies assemblyRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Reading service.
func NewService(log *slog.Logger, readings readingRepo, assemblies assemblyRepo, tx txManager) *Service {
	return &Service{
		readings:   readings,
		assemblies: assemblies,
		tx:         tx,
		log:        log.With("service", "reading"),
	}
}

// RecordInput holds the parameters for recording one measurement.
type RecordInput struct {
	AssemblyID   uuid.UUID
	Location     domain.Location
	RegisterDate time.Time
	Frequency    float64
}

// Validate checks all fields and collects all errors.
func (i *RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.AssemblyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assembly_id", Message: "required"})
	}
	if i.RegisterDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "register_date", Message: "required"})
	}
	if i.Frequency < 0 {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be non-negative"})
	}
	if i.Location.Country == "" {
		errs = append(errs, domain.FieldError{Field: "location.country", Message: "required"})
	}
	if i.Location.City == "" {
		errs = append(errs, domain.FieldError{Field: "location.city", Message: "required"})
	}
	if i.Location.Latitude < -90 || i.Location.Latitude > 90 {
		errs = append(errs, domain.FieldError{Field: "location.latitude", Message: "must be between -90 and 90"})
	}
	if i.Location.Longitude < -180 || i.Location.Longitude > 180 {
		errs = append(errs, domain.FieldError{Field: "location.longitude", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
