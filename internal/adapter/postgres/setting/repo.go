// Package setting implements the emotion settings repository using
// PostgreSQL. One row per emotion, enforced by a UNIQUE constraint; writes
// go through an INSERT ... ON CONFLICT upsert so replace-in-place keeps the
// original row id and created_at.
package setting

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feelhome/feelhome-backend/internal/adapter/postgres"
	"github.com/feelhome/feelhome-backend/internal/domain"
)

const table = "emotion_settings"

var columns = []string{
	"id", "emotion", "music_resource_ids", "video_resource_ids",
	"color_resource_ids", "wallpaper_command", "music_command", "comments",
	"created_at", "updated_at",
}

const upsertSQL = `
INSERT INTO emotion_settings (
    id, emotion, music_resource_ids, video_resource_ids, color_resource_ids,
    wallpaper_command, music_command, comments
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (emotion) DO UPDATE SET
    music_resource_ids = EXCLUDED.music_resource_ids,
    video_resource_ids = EXCLUDED.video_resource_ids,
    color_resource_ids = EXCLUDED.color_resource_ids,
    wallpaper_command  = EXCLUDED.wallpaper_command,
    music_command      = EXCLUDED.music_command,
    comments           = EXCLUDED.comments,
    updated_at         = now()
RETURNING id, emotion, music_resource_ids, video_resource_ids,
    color_resource_ids, wallpaper_command, music_command, comments,
    created_at, updated_at`

// upsertGuardedSQL only applies the conflicting update when the stored
// updated_at still matches what the caller last observed. A stale observation
// produces zero rows, which Upsert reports as domain.ErrConflict.
const upsertGuardedSQL = `
INSERT INTO emotion_settings (
    id, emotion, music_resource_ids, video_resource_ids, color_resource_ids,
    wallpaper_command, music_command, comments
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (emotion) DO UPDATE SET
    music_resource_ids = EXCLUDED.music_resource_ids,
    video_resource_ids = EXCLUDED.video_resource_ids,
    color_resource_ids = EXCLUDED.color_resource_ids,
    wallpaper_command  = EXCLUDED.wallpaper_command,
    music_command      = EXCLUDED.music_command,
    comments           = EXCLUDED.comments,
    updated_at         = now()
WHERE emotion_settings.updated_at = $9
RETURNING id, emotion, music_resource_ids, video_resource_ids,
    color_resource_ids, wallpaper_command, music_command, comments,
    created_at, updated_at`

// Repo provides emotion setting persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new emotion setting repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Upsert creates or replaces the setting for in.Emotion. The replacement is
// whole-record; id and created_at of an existing row are preserved. When
// in.ExpectedUpdatedAt is set and the stored row has moved past it, no write
// happens and domain.ErrConflict is returned.
func (r *Repo) Upsert(ctx context.Context, in domain.UpsertSettingInput) (*domain.EmotionSetting, error) {
	args := []any{
		uuid.New(), in.Emotion,
		in.MusicResourceIDs, in.VideoResourceIDs, in.ColorResourceIDs,
		in.WallpaperCommand, in.MusicCommand, in.Comments,
	}

	sql := upsertSQL
	if in.ExpectedUpdatedAt != nil {
		sql = upsertGuardedSQL
		args = append(args, *in.ExpectedUpdatedAt)
	}

	var s domain.EmotionSetting
	if err := pgxscan.Get(ctx, r.q(ctx), &s, sql, args...); err != nil {
		if in.ExpectedUpdatedAt != nil && errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("upsert setting for %s: %w", in.Emotion, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "upsert emotion setting")
	}
	return &s, nil
}

// GetByEmotion returns the setting for one emotion;
// domain.ErrNotFound if the emotion has no setting.
func (r *Repo) GetByEmotion(ctx context.Context, emotion domain.Emotion) (*domain.EmotionSetting, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"emotion": emotion}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get setting: %w", err)
	}

	var s domain.EmotionSetting
	if err := pgxscan.Get(ctx, r.q(ctx), &s, sql, args...); err != nil {
		return nil, postgres.MapError(err, "get emotion setting")
	}
	return &s, nil
}

// Delete removes a setting by row id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete setting: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "delete emotion setting")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete emotion setting %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all settings ordered by emotion declaration order
// (happiness first, fear last). At most one row exists per emotion.
func (r *Repo) List(ctx context.Context) ([]domain.EmotionSetting, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list settings: %w", err)
	}

	settings := []domain.EmotionSetting{}
	if err := pgxscan.Select(ctx, r.q(ctx), &settings, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list emotion settings")
	}

	slices.SortFunc(settings, func(a, b domain.EmotionSetting) int {
		return a.Emotion.Index() - b.Emotion.Index()
	})
	return settings, nil
}
