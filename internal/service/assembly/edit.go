package assembly

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/pkg/ctxutil"
)

// Edit reconciles an assembly's lines against the requested quantities and
// optionally moves its register day, all in one transaction. The ownership
// lookup takes a row lock so concurrent edits of the same assembly are
// applied one at a time.
func (s *Service) Edit(ctx context.Context, input EditInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	// The full catalog drives reconciliation: components added to the
	// catalog after the assembly was created are editable like any other.
	components, err := s.catalog.ListComponents(ctx)
	if err != nil {
		return fmt.Errorf("assembly.Edit: list components: %w", err)
	}
	catalogIDs := make([]uuid.UUID, 0, len(components))
	for _, c := range components {
		catalogIDs = append(catalogIDs, c.ID)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.assemblies.GetByIDForUpdate(txCtx, userID, input.AssemblyID); err != nil {
			return fmt.Errorf("get assembly: %w", err)
		}

		existing, err := s.assemblies.GetLines(txCtx, input.AssemblyID)
		if err != nil {
			return fmt.Errorf("get lines: %w", err)
		}

		for _, change := range reconcileLines(catalogIDs, existing, input.LineItems) {
			if change.Delete {
				if err := s.assemblies.DeleteLine(txCtx, input.AssemblyID, change.ComponentID); err != nil {
					return fmt.Errorf("delete line %s: %w", change.ComponentID, err)
				}
				continue
			}

			line := domain.AssemblyLine{
				AssemblyID:  input.AssemblyID,
				ComponentID: change.ComponentID,
				Quantity:    change.Quantity,
			}
			if err := s.assemblies.UpsertLine(txCtx, line); err != nil {
				return fmt.Errorf("upsert line %s: %w", change.ComponentID, err)
			}
		}

		if input.RegisterDay != nil {
			if err := s.assemblies.UpdateRegisterDay(txCtx, userID, input.AssemblyID, *input.RegisterDay); err != nil {
				return fmt.Errorf("update register_day: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("assembly.Edit: %w", err)
	}

	s.log.InfoContext(ctx, "assembly edited", "assembly_id", input.AssemblyID, "user_id", userID)

	return nil
}
