package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// ListResources returns catalog entries matching the filter,
// oldest first.
func (s *Service) ListResources(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	resources, err := s.resources.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

// GetResource returns one catalog entry by id.
func (s *Service) GetResource(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return res, nil
}
