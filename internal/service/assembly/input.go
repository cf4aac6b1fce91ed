package assembly

import (
	"time"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// CreateInput holds the parameters for creating an assembly.
// LineItems maps component id to requested quantity; entries with
// quantity <= 0 are skipped, not rejected.
type CreateInput struct {
	RegisterDay time.Time
	LineItems   map[uuid.UUID]int
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.RegisterDay.IsZero() {
		errs = append(errs, domain.FieldError{Field: "register_day", Message: "required"})
	}
	for id := range i.LineItems {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "line_items", Message: "component id must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditInput holds the parameters for editing an assembly.
// LineItems carries the requested quantity per component; every catalog
// component missing from the map is treated as quantity 0.
type EditInput struct {
	AssemblyID  uuid.UUID
	RegisterDay *time.Time
	LineItems   map[uuid.UUID]int
}

// Validate checks all fields and collects all errors.
func (i *EditInput) Validate() error {
	var errs []domain.FieldError

	if i.AssemblyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assembly_id", Message: "required"})
	}
	if i.RegisterDay != nil && i.RegisterDay.IsZero() {
		errs = append(errs, domain.FieldError{Field: "register_day", Message: "must not be zero when supplied"})
	}
	for id := range i.LineItems {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "line_items", Message: "component id must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
