package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// DisableResource retires a resource without deleting it. Settings keep
// referencing the id, but the resolver stops including it in action plans.
// Disabling an already disabled resource is a no-op.
func (s *Service) DisableResource(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	return s.setDisabled(ctx, id, true)
}

// EnableResource returns a disabled resource to active duty.
func (s *Service) EnableResource(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	return s.setDisabled(ctx, id, false)
}

func (s *Service) setDisabled(ctx context.Context, id uuid.UUID, disabled bool) (*domain.Resource, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	res, err := s.resources.SetDisabled(ctx, id, disabled)
	if err != nil {
		return nil, fmt.Errorf("set resource disabled=%t: %w", disabled, err)
	}

	s.log.InfoContext(ctx, "resource availability changed",
		slog.String("resource_id", res.ID.String()),
		slog.Bool("disabled", res.Disabled),
	)

	return res, nil
}
