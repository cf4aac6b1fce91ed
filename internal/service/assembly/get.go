package assembly

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/pkg/ctxutil"
)

// GetDetail returns one owned assembly with its lines and total cost.
// A non-owner's request gets the same ErrNotFound as a missing id.
func (s *Service) GetDetail(ctx context.Context, assemblyID uuid.UUID) (*Detail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	asm, err := s.assemblies.GetByID(ctx, userID, assemblyID)
	if err != nil {
		return nil, fmt.Errorf("assembly.GetDetail: %w", err)
	}

	lines, err := s.assemblies.GetLineDetails(ctx, assemblyID)
	if err != nil {
		return nil, fmt.Errorf("assembly.GetDetail: lines: %w", err)
	}

	return &Detail{
		Assembly:  *asm,
		Lines:     lines,
		TotalCost: domain.TotalCost(lines),
	}, nil
}

// List returns the caller's assemblies, most recent register day first.
func (s *Service) List(ctx context.Context) ([]domain.Assembly, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	assemblies, err := s.assemblies.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("assembly.List: %w", err)
	}

	return assemblies, nil
}
