package settings

import (
	"context"
	"fmt"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// GetSetting returns the setting bound to one emotion;
// domain.ErrNotFound when the emotion is unconfigured.
func (s *Service) GetSetting(ctx context.Context, emotion domain.Emotion) (*domain.EmotionSetting, error) {
	if !emotion.IsValid() {
		return nil, domain.NewValidationError("emotion", fmt.Sprintf("unknown emotion %q", emotion))
	}

	setting, err := s.settings.GetByEmotion(ctx, emotion)
	if err != nil {
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return setting, nil
}

// ListSettings returns all configured settings in emotion declaration order.
func (s *Service) ListSettings(ctx context.Context) ([]domain.EmotionSetting, error) {
	settings, err := s.settings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return settings, nil
}
