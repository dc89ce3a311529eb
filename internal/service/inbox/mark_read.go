package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// MarkRead acknowledges one message and reports the unread count that
// remains. The transition is a compare-and-swap: when two acknowledgements
// race, exactly one flips the status, and both observe the same final count.
// Acknowledging an already read message succeeds without changing anything.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.MarkReadResult, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var result domain.MarkReadResult
	var transitioned bool

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		msg, didTransition, err := s.messages.MarkReadCAS(ctx, id)
		if err != nil {
			return err
		}
		count, err := s.messages.CountUnread(ctx)
		if err != nil {
			return err
		}
		result = domain.MarkReadResult{Message: *msg, UnreadCount: count}
		transitioned = didTransition
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mark message read: %w", err)
	}

	s.log.InfoContext(ctx, "message acknowledged",
		slog.String("message_id", id.String()),
		slog.Bool("transitioned", transitioned),
		slog.Int("unread_left", result.UnreadCount),
	)

	return &result, nil
}
