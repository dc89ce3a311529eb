package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

type resourceResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Category   string    `json:"category,omitempty"`
	ContentRef string    `json:"contentRef"`
	Disabled   bool      `json:"disabled"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toResourceResponse(res *domain.Resource) resourceResponse {
	return resourceResponse{
		ID:         res.ID.String(),
		Name:       res.Name,
		Kind:       res.Kind.String(),
		Category:   res.Category.String(),
		ContentRef: res.ContentRef,
		Disabled:   res.Disabled,
		CreatedAt:  res.CreatedAt,
	}
}

func toResourceResponses(resources []domain.Resource) []resourceResponse {
	out := make([]resourceResponse, 0, len(resources))
	for i := range resources {
		out = append(out, toResourceResponse(&resources[i]))
	}
	return out
}

type settingResponse struct {
	ID               string    `json:"id"`
	Emotion          string    `json:"emotion"`
	MusicResourceIDs []string  `json:"musicResourceIds"`
	VideoResourceIDs []string  `json:"videoResourceIds"`
	ColorResourceIDs []string  `json:"colorResourceIds"`
	WallpaperCommand string    `json:"wallpaperCommand"`
	MusicCommand     string    `json:"musicCommand"`
	Comments         string    `json:"comments,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toSettingResponse(s *domain.EmotionSetting) settingResponse {
	return settingResponse{
		ID:               s.ID.String(),
		Emotion:          s.Emotion.String(),
		MusicResourceIDs: idStrings(s.MusicResourceIDs),
		VideoResourceIDs: idStrings(s.VideoResourceIDs),
		ColorResourceIDs: idStrings(s.ColorResourceIDs),
		WallpaperCommand: s.WallpaperCommand,
		MusicCommand:     s.MusicCommand,
		Comments:         s.Comments,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toSettingResponses(settings []domain.EmotionSetting) []settingResponse {
	out := make([]settingResponse, 0, len(settings))
	for i := range settings {
		out = append(out, toSettingResponse(&settings[i]))
	}
	return out
}

type planResponse struct {
	Emotion          string             `json:"emotion"`
	MusicResources   []resourceResponse `json:"musicResources"`
	VideoResources   []resourceResponse `json:"videoResources"`
	ColorResources   []resourceResponse `json:"colorResources"`
	WallpaperCommand string             `json:"wallpaperCommand"`
	MusicCommand     string             `json:"musicCommand"`
	Confidence       *float64           `json:"confidence,omitempty"`
	ResolvedAt       time.Time          `json:"resolvedAt"`
}

func toPlanResponse(plan *domain.ActionPlan) planResponse {
	return planResponse{
		Emotion:          plan.Emotion.String(),
		MusicResources:   toResourceResponses(plan.MusicResources),
		VideoResources:   toResourceResponses(plan.VideoResources),
		ColorResources:   toResourceResponses(plan.ColorResources),
		WallpaperCommand: plan.WallpaperCommand,
		MusicCommand:     plan.MusicCommand,
		Confidence:       plan.Confidence,
		ResolvedAt:       plan.ResolvedAt,
	}
}

type messageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toMessageResponse(msg *domain.Message) messageResponse {
	return messageResponse{
		ID:        msg.ID.String(),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		Status:    msg.Status.String(),
		CreatedAt: msg.CreatedAt,
	}
}

func toMessageResponses(messages []domain.Message) []messageResponse {
	out := make([]messageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, toMessageResponse(&messages[i]))
	}
	return out
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
