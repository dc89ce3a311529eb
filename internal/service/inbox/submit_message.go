package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// SubmitMessage accepts a contact-form message. Submission is anonymous;
// the sender identifies themselves in the form fields, not with a token.
func (s *Service) SubmitMessage(ctx context.Context, input domain.CreateMessageInput) (*domain.Message, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body := strings.TrimSpace(input.Message)
	if len(body) > s.maxLen {
		return nil, domain.NewValidationError("message", fmt.Sprintf("exceeds %d characters", s.maxLen))
	}

	msg, err := s.messages.Create(ctx, &domain.Message{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Message: body,
		Status:  domain.MessageStatusUnread,
	})
	if err != nil {
		return nil, fmt.Errorf("submit message: %w", err)
	}

	s.log.InfoContext(ctx, "message submitted",
		slog.String("message_id", msg.ID.String()),
		slog.String("name", msg.Name),
	)

	return msg, nil
}
