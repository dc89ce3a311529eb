package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedResource inserts an enabled catalog resource of the given kind and
// category. Returns the filled domain.Resource.
func SeedResource(t *testing.T, pool *pgxpool.Pool, kind domain.ResourceKind, category domain.Emotion) domain.Resource {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	res := domain.Resource{
		ID:         uuid.New(),
		Name:       "test-" + string(kind) + "-" + suffix,
		Kind:       kind,
		Category:   category,
		ContentRef: "file:///srv/media/" + suffix,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO resources (id, name, kind, category, content_ref, disabled, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		res.ID, res.Name, string(res.Kind), string(res.Category), res.ContentRef, res.Disabled, res.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResource insert: %v", err)
	}

	return res
}

// DisableResource flips the disabled flag of an existing resource directly
// in the database.
func DisableResource(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE resources SET disabled = true WHERE id = $1`, id)
	if err != nil {
		t.Fatalf("testhelper: DisableResource: %v", err)
	}
}

// SeedSetting inserts a full emotion setting row. Resource id lists may be
// nil. Returns the filled domain.EmotionSetting.
func SeedSetting(t *testing.T, pool *pgxpool.Pool, emotion domain.Emotion, music, video, color []uuid.UUID) domain.EmotionSetting {
	t.Helper()
	ctx := context.Background()

	if music == nil {
		music = []uuid.UUID{}
	}
	if video == nil {
		video = []uuid.UUID{}
	}
	if color == nil {
		color = []uuid.UUID{}
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	setting := domain.EmotionSetting{
		ID:               uuid.New(),
		Emotion:          emotion,
		MusicResourceIDs: music,
		VideoResourceIDs: video,
		ColorResourceIDs: color,
		WallpaperCommand: "feh --bg-scale /wallpapers/" + string(emotion) + ".png",
		MusicCommand:     "mpc play " + string(emotion),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO emotion_settings
		   (id, emotion, music_resource_ids, video_resource_ids, color_resource_ids,
		    wallpaper_command, music_command, comments, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		setting.ID, string(setting.Emotion),
		setting.MusicResourceIDs, setting.VideoResourceIDs, setting.ColorResourceIDs,
		setting.WallpaperCommand, setting.MusicCommand, setting.Comments,
		setting.CreatedAt, setting.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSetting insert: %v", err)
	}

	return setting
}

// SeedMessage inserts an inbox message with the given status.
// Returns the filled domain.Message.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, status domain.MessageStatus) domain.Message {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	msg := domain.Message{
		ID:        uuid.New(),
		Name:      "Test Sender " + suffix,
		Email:     "sender-" + suffix + "@example.com",
		Message:   "hello from " + suffix,
		Status:    status,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO messages (id, name, email, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.Name, msg.Email, msg.Message, string(msg.Status), msg.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert: %v", err)
	}

	return msg
}

// CleanTables truncates all application tables. Settings are unique per
// emotion, so tests that upsert them must start from a clean slate.
func CleanTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE resources, emotion_settings, messages`)
	if err != nil {
		t.Fatalf("testhelper: CleanTables: %v", err)
	}
}
