// Package resolver turns a detected emotion into a concrete action plan:
// the enabled resources to play plus the desktop commands to run. Resolution
// is read-only and deliberately forgiving; a missing setting or a dangling
// resource id reduces the plan instead of failing it.
package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

type settingRepo interface {
	GetByEmotion(ctx context.Context, emotion domain.Emotion) (*domain.EmotionSetting, error)
}

type resourceRepo interface {
	ListEnabledByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Resource, error)
}

// Service resolves emotions into action plans.
type Service struct {
	settings  settingRepo
	resources resourceRepo
	log       *slog.Logger
}

// NewService creates a new Resolver service.
func NewService(
	log *slog.Logger,
	settings settingRepo,
	resources resourceRepo,
) *Service {
	return &Service{
		settings:  settings,
		resources: resources,
		log:       log.With("service", "resolver"),
	}
}
