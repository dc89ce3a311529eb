// Package settings manages per-emotion action settings: which resources to
// play and which desktop commands to run when an emotion is detected. Each
// emotion has at most one setting.
package settings

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

type settingRepo interface {
	Upsert(ctx context.Context, in domain.UpsertSettingInput) (*domain.EmotionSetting, error)
	GetByEmotion(ctx context.Context, emotion domain.Emotion) (*domain.EmotionSetting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.EmotionSetting, error)
}

// Service provides emotion setting operations.
type Service struct {
	settings settingRepo
	log      *slog.Logger
}

// NewService creates a new Settings service.
func NewService(
	log *slog.Logger,
	settings settingRepo,
) *Service {
	return &Service{
		settings: settings,
		log:      log.With("service", "settings"),
	}
}
