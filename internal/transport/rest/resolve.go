package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// resolverService defines the minimal interface needed by ResolveHandler.
type resolverService interface {
	Resolve(ctx context.Context, emotion domain.Emotion, confidence *float64) (*domain.ActionPlan, error)
}

// ResolveHandler serves the emotion resolution endpoint.
type ResolveHandler struct {
	svc resolverService
	log *slog.Logger
}

// NewResolveHandler creates a ResolveHandler.
func NewResolveHandler(svc resolverService, logger *slog.Logger) *ResolveHandler {
	return &ResolveHandler{svc: svc, log: logger.With("handler", "resolve")}
}

type resolveRequest struct {
	Emotion    string   `json:"emotion"`
	Confidence *float64 `json:"confidence"`
}

// Resolve handles POST /api/resolve.
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.svc.Resolve(r.Context(), domain.Emotion(req.Emotion), req.Confidence)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}
