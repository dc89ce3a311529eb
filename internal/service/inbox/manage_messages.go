package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// ListUnread returns unread messages, oldest first.
func (s *Service) ListUnread(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.messages.ListUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unread messages: %w", err)
	}
	return messages, nil
}

// ListMessages returns every message regardless of status, oldest first.
func (s *Service) ListMessages(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// UpdateStatus sets a message to an arbitrary status. Unlike MarkRead this
// is an unconditional administrative write with no counting semantics.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus) (*domain.Message, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	msg, err := s.messages.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update message status: %w", err)
	}

	s.log.InfoContext(ctx, "message status updated",
		slog.String("message_id", msg.ID.String()),
		slog.String("status", msg.Status.String()),
	)

	return msg, nil
}

// DeleteMessage removes a message permanently.
func (s *Service) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.messages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	s.log.InfoContext(ctx, "message deleted",
		slog.String("message_id", id.String()),
	)

	return nil
}
