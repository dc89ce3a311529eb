package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// UpdateResource changes resource metadata. Only non-nil fields are applied;
// an empty input returns the current record unchanged.
func (s *Service) UpdateResource(ctx context.Context, id uuid.UUID, input domain.UpdateResourceInput) (*domain.Resource, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.resources.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update resource: %w", err)
	}

	s.log.InfoContext(ctx, "resource updated",
		slog.String("resource_id", res.ID.String()),
	)

	return res, nil
}
