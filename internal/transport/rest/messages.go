package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// inboxService defines the minimal interface needed by MessagesHandler.
type inboxService interface {
	SubmitMessage(ctx context.Context, input domain.CreateMessageInput) (*domain.Message, error)
	ListUnread(ctx context.Context) ([]domain.Message, error)
	ListMessages(ctx context.Context) ([]domain.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.MarkReadResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus) (*domain.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

// MessagesHandler serves contact form and inbox REST endpoints.
type MessagesHandler struct {
	svc inboxService
	log *slog.Logger
}

// NewMessagesHandler creates a MessagesHandler.
func NewMessagesHandler(svc inboxService, logger *slog.Logger) *MessagesHandler {
	return &MessagesHandler{svc: svc, log: logger.With("handler", "messages")}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type markReadResponse struct {
	Message     messageResponse `json:"message"`
	UnreadCount int             `json:"unreadCount"`
}

// Contact handles POST /api/contact. Submission is anonymous.
func (h *MessagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.svc.SubmitMessage(r.Context(), domain.CreateMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(msg))
}

// ListUnread handles GET /api/unread-messages.
func (h *MessagesHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.ListUnread(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponses(messages))
}

// ListAll handles GET /api/contact-messages.
func (h *MessagesHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.ListMessages(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponses(messages))
}

// MarkRead handles POST /api/mark-message-read/{id}.
func (h *MessagesHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, markReadResponse{
		Message:     toMessageResponse(&result.Message),
		UnreadCount: result.UnreadCount,
	})
}

// UpdateStatus handles POST /api/update-message-status/{id}.
func (h *MessagesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.svc.UpdateStatus(r.Context(), id, domain.MessageStatus(req.Status))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponse(msg))
}

// Delete handles DELETE /api/delete-message/{id}.
func (h *MessagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteMessage(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
