package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// DeleteResource removes a resource permanently. Emotion settings that still
// reference the id are left untouched; the resolver skips unknown ids.
func (s *Service) DeleteResource(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.resources.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}

	s.log.InfoContext(ctx, "resource deleted",
		slog.String("resource_id", id.String()),
	)

	return nil
}
