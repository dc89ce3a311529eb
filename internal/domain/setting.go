package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmotionSetting binds one emotion to resource id sets and two command
// strings. Exactly one setting exists per emotion (DB-enforced). The id sets
// may reference resources that were later deleted or disabled; such ids are
// kept here and filtered out during resolution, not treated as corruption.
type EmotionSetting struct {
	ID               uuid.UUID   `db:"id"`
	Emotion          Emotion     `db:"emotion"`
	MusicResourceIDs []uuid.UUID `db:"music_resource_ids"`
	VideoResourceIDs []uuid.UUID `db:"video_resource_ids"`
	ColorResourceIDs []uuid.UUID `db:"color_resource_ids"`
	WallpaperCommand string      `db:"wallpaper_command"`
	MusicCommand     string      `db:"music_command"`
	Comments         string      `db:"comments"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
}

// UpsertSettingInput is the whole-record payload for creating or replacing
// the setting of one emotion. ExpectedUpdatedAt, when set, is a stale-write
// guard: the write fails with ErrConflict if the stored record has been
// modified since the caller last read it.
type UpsertSettingInput struct {
	Emotion           Emotion
	MusicResourceIDs  []uuid.UUID
	VideoResourceIDs  []uuid.UUID
	ColorResourceIDs  []uuid.UUID
	WallpaperCommand  string
	MusicCommand      string
	Comments          string
	ExpectedUpdatedAt *time.Time
}

// Validate checks the emotion against the enum and rejects nil ids coming
// from malformed payloads. Resource existence is intentionally not checked
// here; the catalog is consulted at resolution time instead.
func (in UpsertSettingInput) Validate() error {
	if !in.Emotion.IsValid() {
		return NewValidationError("emotion", "unknown emotion")
	}
	for field, ids := range map[string][]uuid.UUID{
		"music_resource_ids": in.MusicResourceIDs,
		"video_resource_ids": in.VideoResourceIDs,
		"color_resource_ids": in.ColorResourceIDs,
	} {
		for _, id := range ids {
			if id == uuid.Nil {
				return NewValidationError(field, "contains a zero id")
			}
		}
	}
	return nil
}

// Normalize collapses duplicate ids within each set, keeping the first
// occurrence so declared playback order is preserved.
func (in *UpsertSettingInput) Normalize() {
	in.MusicResourceIDs = dedupe(in.MusicResourceIDs)
	in.VideoResourceIDs = dedupe(in.VideoResourceIDs)
	in.ColorResourceIDs = dedupe(in.ColorResourceIDs)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return []uuid.UUID{}
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
