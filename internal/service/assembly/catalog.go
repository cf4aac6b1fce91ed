package assembly

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Catalog is the component catalog grouped for selection forms.
type Catalog struct {
	Categories []domain.Category
	Components []domain.Component
}

// GetCatalog returns every category and component. The catalog is shared
// data, not user-scoped.
func (s *Service) GetCatalog(ctx context.Context) (*Catalog, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("assembly.GetCatalog: categories: %w", err)
	}

	components, err := s.catalog.ListComponents(ctx)
	if err != nil {
		return nil, fmt.Errorf("assembly.GetCatalog: components: %w", err)
	}

	return &Catalog{Categories: categories, Components: components}, nil
}

// GetComponent returns a single catalog component.
func (s *Service) GetComponent(ctx context.Context, componentID uuid.UUID) (*domain.Component, error) {
	if componentID == uuid.Nil {
		return nil, domain.NewValidationErrors([]domain.FieldError{
			{Field: "component_id", Message: "required"},
		})
	}

	component, err := s.catalog.GetComponentByID(ctx, componentID)
	if err != nil {
		return nil, fmt.Errorf("assembly.GetComponent: %w", err)
	}

	return component, nil
}
