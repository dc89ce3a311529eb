package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// UpsertSetting creates or replaces the setting for one emotion. Dangling
// resource ids are accepted as-is; the resolver skips them at read time.
// When input carries ExpectedUpdatedAt and the stored record has moved past
// it, the write is rejected with domain.ErrConflict.
func (s *Service) UpsertSetting(ctx context.Context, input domain.UpsertSettingInput) (*domain.EmotionSetting, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.Normalize()

	setting, err := s.settings.Upsert(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}

	s.log.InfoContext(ctx, "emotion setting saved",
		slog.String("setting_id", setting.ID.String()),
		slog.String("emotion", setting.Emotion.String()),
		slog.Int("music_ids", len(setting.MusicResourceIDs)),
		slog.Int("video_ids", len(setting.VideoResourceIDs)),
		slog.Int("color_ids", len(setting.ColorResourceIDs)),
	)

	return setting, nil
}
