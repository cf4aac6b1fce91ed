// Package assembly implements the assembly business logic: transactional
// create/edit/delete of assemblies and their component lines, with
// ownership enforced on every lookup.
package assembly

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type assemblyRepo interface {
	Create(ctx context.Context, asm *domain.Assembly) (*domain.Assembly, error)
	GetByID(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error)
	GetByIDForUpdate(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assembly, error)
	UpdateRegisterDay(ctx context.Context, userID, assemblyID uuid.UUID, day time.Time) error
	Delete(ctx context.Context, userID, assemblyID uuid.UUID) error
	GetLines(ctx context.Context, assemblyID uuid.UUID) (map[uuid.UUID]int, error)
	GetLineDetails(ctx context.Context, assemblyID uuid.UUID) ([]domain.AssemblyLineDetail, error)
	UpsertLine(ctx context.Context, line domain.AssemblyLine) error
	DeleteLine(ctx context.Context, assemblyID, componentID uuid.UUID) error
	DeleteLines(ctx context.Context, assemblyID uuid.UUID) error
}

type catalogRepo interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListComponents(ctx context.Context) ([]domain.Component, error)
	GetComponentByID(ctx context.Context, componentID uuid.UUID) (*domain.Component, error)
	GetComponentsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Component, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the assembly business logic.
type Service struct {
	assemblies assemblyRepo
	catalog    catalogRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Assembly service.
func NewService(log *slog.Logger, assemblies assemblyRepo, catalog catalogRepo, tx txManager) *Service {
	return &Service{
		assemblies: assemblies,
		catalog:    catalog,
		tx:         tx,
		log:        log.With("service", "assembly"),
	}
}
