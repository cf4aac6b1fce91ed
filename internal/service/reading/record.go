package reading

import (
	"context"
	"fmt"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/pkg/ctxutil"
)

// Record appends one measurement to an owned assembly. The location is
// resolved get-or-create so repeated uploads from the same place share a
// row. Location and reading commit together.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.Reading, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check: recording against someone else's assembly reads as
	// "does not exist".
	if _, err := s.assemblies.GetByID(ctx, userID, input.AssemblyID); err != nil {
		return nil, fmt.Errorf("reading.Record: %w", err)
	}

	var created *domain.Reading
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		loc, err := s.readings.GetOrCreateLocation(txCtx, input.Location)
		if err != nil {
			return fmt.Errorf("resolve location: %w", err)
		}

		created, err = s.readings.CreateReading(txCtx, domain.Reading{
			AssemblyID:   input.AssemblyID,
			LocationID:   loc.ID,
			RegisterDate: input.RegisterDate,
			Frequency:    input.Frequency,
		})
		if err != nil {
			return fmt.Errorf("create reading: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading.Record: %w", err)
	}

	s.log.InfoContext(ctx, "reading recorded",
		"reading_id", created.ID, "assembly_id", input.AssemblyID, "user_id", userID)

	return created, nil
}
