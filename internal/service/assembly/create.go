package assembly

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/pkg/ctxutil"
)

// Create persists a new assembly with one line per requested component.
// Line items with quantity <= 0 are skipped. Every referenced component
// must exist in the catalog. The assembly and all its lines commit
// together or not at all.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Assembly, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Zero and negative quantities mean "not selected", not an error.
	lines := map[uuid.UUID]int{}
	ids := []uuid.UUID{}
	for id, qty := range input.LineItems {
		if qty > 0 {
			lines[id] = qty
			ids = append(ids, id)
		}
	}

	if len(ids) > 0 {
		known, err := s.catalog.GetComponentsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("assembly.Create: resolve components: %w", err)
		}
		for _, id := range ids {
			if _, ok := known[id]; !ok {
				return nil, domain.NewValidationErrors([]domain.FieldError{
					{Field: "line_items", Message: fmt.Sprintf("unknown component %s", id)},
				})
			}
		}
	}

	var created *domain.Assembly
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		asm, err := s.assemblies.Create(txCtx, &domain.Assembly{
			UserID:      userID,
			RegisterDay: input.RegisterDay,
		})
		if err != nil {
			return fmt.Errorf("create assembly: %w", err)
		}

		for id, qty := range lines {
			line := domain.AssemblyLine{AssemblyID: asm.ID, ComponentID: id, Quantity: qty}
			if err := s.assemblies.UpsertLine(txCtx, line); err != nil {
				return fmt.Errorf("insert line %s: %w", id, err)
			}
		}

		created = asm
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assembly.Create: %w", err)
	}

	s.log.InfoContext(ctx, "assembly created",
		"assembly_id", created.ID, "user_id", userID, "lines", len(lines))

	return created, nil
}
