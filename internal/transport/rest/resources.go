package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// catalogService defines the minimal interface needed by ResourcesHandler.
type catalogService interface {
	CreateResource(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error)
	UpdateResource(ctx context.Context, id uuid.UUID, input domain.UpdateResourceInput) (*domain.Resource, error)
	DisableResource(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	EnableResource(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	DeleteResource(ctx context.Context, id uuid.UUID) error
	ListResources(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error)
}

// ResourcesHandler serves resource catalog REST endpoints.
type ResourcesHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewResourcesHandler creates a ResourcesHandler.
func NewResourcesHandler(svc catalogService, logger *slog.Logger) *ResourcesHandler {
	return &ResourcesHandler{svc: svc, log: logger.With("handler", "resources")}
}

type createResourceRequest struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Category   string `json:"category"`
	ContentRef string `json:"contentRef"`
}

type updateResourceRequest struct {
	Name       *string `json:"name"`
	Kind       *string `json:"kind"`
	Category   *string `json:"category"`
	ContentRef *string `json:"contentRef"`
}

// Create handles POST /api/resources.
func (h *ResourcesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.CreateResource(r.Context(), domain.CreateResourceInput{
		Name:       req.Name,
		Kind:       domain.ResourceKind(req.Kind),
		Category:   domain.Emotion(req.Category),
		ContentRef: req.ContentRef,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResourceResponse(res))
}

// Update handles PUT /api/resources/{id}.
func (h *ResourcesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := domain.UpdateResourceInput{
		Name:       req.Name,
		ContentRef: req.ContentRef,
	}
	if req.Kind != nil {
		kind := domain.ResourceKind(*req.Kind)
		input.Kind = &kind
	}
	if req.Category != nil {
		category := domain.Emotion(*req.Category)
		input.Category = &category
	}

	res, err := h.svc.UpdateResource(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toResourceResponse(res))
}

// Disable handles POST /api/resources/{id}/disable.
func (h *ResourcesHandler) Disable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.DisableResource(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toResourceResponse(res))
}

// Enable handles POST /api/resources/{id}/enable.
func (h *ResourcesHandler) Enable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.EnableResource(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toResourceResponse(res))
}

// Delete handles DELETE /api/resources/{id}.
func (h *ResourcesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteResource(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// List handles GET /api/resources?kind=&category=&include_disabled=.
func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.ResourceFilter

	if v := r.URL.Query().Get("kind"); v != "" {
		kind := domain.ResourceKind(v)
		filter.Kind = &kind
	}
	if v := r.URL.Query().Get("category"); v != "" {
		category := domain.Emotion(v)
		filter.Category = &category
	}
	filter.IncludeDisabled = r.URL.Query().Get("include_disabled") == "true"

	resources, err := h.svc.ListResources(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toResourceResponses(resources))
}

// pathID parses the {id} path segment; on failure it writes a 400 response.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
