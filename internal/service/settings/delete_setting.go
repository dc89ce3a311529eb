package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// DeleteSetting removes a setting by row id. The emotion becomes
// unconfigured and resolves to an empty plan afterwards.
func (s *Service) DeleteSetting(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.settings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}

	s.log.InfoContext(ctx, "emotion setting deleted",
		slog.String("setting_id", id.String()),
	)

	return nil
}
