package assembly

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/pkg/ctxutil"
)

// Delete removes an owned assembly and all its lines in one transaction.
// Lines go first so the parent row never has dangling children, even
// mid-transaction.
func (s *Service) Delete(ctx context.Context, assemblyID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.assemblies.GetByIDForUpdate(txCtx, userID, assemblyID); err != nil {
			return fmt.Errorf("get assembly: %w", err)
		}

		if err := s.assemblies.DeleteLines(txCtx, assemblyID); err != nil {
			return fmt.Errorf("delete lines: %w", err)
		}

		if err := s.assemblies.Delete(txCtx, userID, assemblyID); err != nil {
			return fmt.Errorf("delete assembly: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("assembly.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "assembly deleted", "assembly_id", assemblyID, "user_id", userID)

	return nil
}
