package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// Resolve computes the action plan for one detected emotion.
//
// An unconfigured emotion yields an empty plan, not an error. Resource ids
// that were deleted or disabled since the setting was saved are silently
// skipped; the surviving resources keep the order in which the setting
// listed them. Confidence is echoed into the plan and never gates it.
func (s *Service) Resolve(ctx context.Context, emotion domain.Emotion, confidence *float64) (*domain.ActionPlan, error) {
	if !emotion.IsValid() {
		return nil, domain.NewValidationError("emotion", fmt.Sprintf("unknown emotion %q", emotion))
	}

	now := time.Now().UTC()

	setting, err := s.settings.GetByEmotion(ctx, emotion)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "emotion has no setting, returning empty plan",
				slog.String("emotion", emotion.String()),
			)
			return domain.EmptyPlan(emotion, confidence, now), nil
		}
		return nil, fmt.Errorf("load setting: %w", err)
	}

	union := make([]uuid.UUID, 0, len(setting.MusicResourceIDs)+len(setting.VideoResourceIDs)+len(setting.ColorResourceIDs))
	union = append(union, setting.MusicResourceIDs...)
	union = append(union, setting.VideoResourceIDs...)
	union = append(union, setting.ColorResourceIDs...)

	enabled, err := s.resources.ListEnabledByIDs(ctx, union)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Resource, len(enabled))
	for _, res := range enabled {
		byID[res.ID] = res
	}

	plan := &domain.ActionPlan{
		Emotion:          emotion,
		MusicResources:   pick(setting.MusicResourceIDs, byID),
		VideoResources:   pick(setting.VideoResourceIDs, byID),
		ColorResources:   pick(setting.ColorResourceIDs, byID),
		WallpaperCommand: setting.WallpaperCommand,
		MusicCommand:     setting.MusicCommand,
		Confidence:       confidence,
		ResolvedAt:       now,
	}

	s.log.InfoContext(ctx, "emotion resolved",
		slog.String("emotion", emotion.String()),
		slog.Int("music", len(plan.MusicResources)),
		slog.Int("video", len(plan.VideoResources)),
		slog.Int("color", len(plan.ColorResources)),
		slog.Int("skipped", len(union)-len(plan.MusicResources)-len(plan.VideoResources)-len(plan.ColorResources)),
	)

	return plan, nil
}

// pick projects ids onto their enabled resources, keeping the ids' order
// and dropping those with no enabled match.
func pick(ids []uuid.UUID, byID map[uuid.UUID]domain.Resource) []domain.Resource {
	out := make([]domain.Resource, 0, len(ids))
	for _, id := range ids {
		if res, ok := byID[id]; ok {
			out = append(out, res)
		}
	}
	return out
}
