package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// settingsService defines the minimal interface needed by SettingsHandler.
type settingsService interface {
	UpsertSetting(ctx context.Context, input domain.UpsertSettingInput) (*domain.EmotionSetting, error)
	GetSetting(ctx context.Context, emotion domain.Emotion) (*domain.EmotionSetting, error)
	ListSettings(ctx context.Context) ([]domain.EmotionSetting, error)
	DeleteSetting(ctx context.Context, id uuid.UUID) error
}

// SettingsHandler serves emotion setting REST endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type upsertSettingRequest struct {
	Emotion           string     `json:"emotion"`
	MusicResourceIDs  []string   `json:"musicResourceIds"`
	VideoResourceIDs  []string   `json:"videoResourceIds"`
	ColorResourceIDs  []string   `json:"colorResourceIds"`
	WallpaperCommand  string     `json:"wallpaperCommand"`
	MusicCommand      string     `json:"musicCommand"`
	Comments          string     `json:"comments"`
	ExpectedUpdatedAt *time.Time `json:"expectedUpdatedAt"`
}

// Upsert handles POST /api/emotion-settings.
func (h *SettingsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	music, err := parseIDs(req.MusicResourceIDs, "musicResourceIds")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	video, err := parseIDs(req.VideoResourceIDs, "videoResourceIds")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	color, err := parseIDs(req.ColorResourceIDs, "colorResourceIds")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	setting, err := h.svc.UpsertSetting(r.Context(), domain.UpsertSettingInput{
		Emotion:           domain.Emotion(req.Emotion),
		MusicResourceIDs:  music,
		VideoResourceIDs:  video,
		ColorResourceIDs:  color,
		WallpaperCommand:  req.WallpaperCommand,
		MusicCommand:      req.MusicCommand,
		Comments:          req.Comments,
		ExpectedUpdatedAt: req.ExpectedUpdatedAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingResponse(setting))
}

// Get handles GET /api/emotion-settings/{emotion}.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	emotion := domain.Emotion(r.PathValue("emotion"))

	setting, err := h.svc.GetSetting(r.Context(), emotion)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingResponse(setting))
}

// List handles GET /api/emotion-settings.
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.ListSettings(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingResponses(settings))
}

// Delete handles DELETE /api/emotion-settings/{id}.
func (h *SettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteSetting(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func parseIDs(raw []string, field string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.NewValidationError(field, "contains a malformed id")
		}
		out = append(out, id)
	}
	return out, nil
}
