// Package inbox manages contact-form messages submitted by household
// members: listing unread ones, acknowledging reads and tracking replies.
package inbox

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/domain"
)

// DefaultMaxMessageLength bounds the message body when no limit is
// configured.
const DefaultMaxMessageLength = 4000

type messageRepo interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListUnread(ctx context.Context) ([]domain.Message, error)
	ListAll(ctx context.Context) ([]domain.Message, error)
	MarkReadCAS(ctx context.Context, id uuid.UUID) (*domain.Message, bool, error)
	CountUnread(ctx context.Context) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus) (*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides notification inbox operations.
type Service struct {
	messages messageRepo
	tx       txManager
	log      *slog.Logger
	maxLen   int
}

// NewService creates a new Inbox service.
func NewService(
	log *slog.Logger,
	messages messageRepo,
	tx txManager,
	maxMessageLength int,
) *Service {
	if maxMessageLength <= 0 {
		maxMessageLength = DefaultMaxMessageLength
	}
	return &Service{
		messages: messages,
		tx:       tx,
		log:      log.With("service", "inbox"),
		maxLen:   maxMessageLength,
	}
}
