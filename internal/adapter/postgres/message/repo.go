// Package message implements the notification inbox repository using
// PostgreSQL. The read-acknowledgement is a single compare-and-swap UPDATE
// so concurrent acknowledgements of one message transition it exactly once.
package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feelhome/feelhome-backend/internal/adapter/postgres"
	"github.com/feelhome/feelhome-backend/internal/domain"
)

const table = "messages"

var columns = []string{"id", "name", "email", "message", "status", "created_at"}

const markReadSQL = `
UPDATE messages SET status = 'Read'
WHERE id = $1 AND status = 'Unread'
RETURNING id, name, email, message, status, created_at`

const countUnreadSQL = `SELECT count(*) FROM messages WHERE status = 'Unread'`

// Repo provides inbox message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a new message with status Unread.
func (r *Repo) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if msg == nil {
		return nil, domain.NewValidationError("message", "required")
	}
	if msg.ID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "email", "message", "status").
		Values(msg.ID, msg.Name, msg.Email, msg.Message, domain.MessageStatusUnread).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create message: %w", err)
	}

	var out domain.Message
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "create message")
	}
	return &out, nil
}

// GetByID returns one message; domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get message: %w", err)
	}

	var out domain.Message
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "get message")
	}
	return &out, nil
}

// ListUnread returns all Unread messages, oldest first.
func (r *Repo) ListUnread(ctx context.Context) ([]domain.Message, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.MessageStatusUnread}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list unread: %w", err)
	}

	messages := []domain.Message{}
	if err := pgxscan.Select(ctx, r.q(ctx), &messages, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list unread messages")
	}
	return messages, nil
}

// ListAll returns every message regardless of status, oldest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Message, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages: %w", err)
	}

	messages := []domain.Message{}
	if err := pgxscan.Select(ctx, r.q(ctx), &messages, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list messages")
	}
	return messages, nil
}

// MarkReadCAS transitions the message Unread → Read if and only if it is
// currently Unread. The bool result reports whether this call performed the
// transition; losers of a concurrent race get false plus the current record.
func (r *Repo) MarkReadCAS(ctx context.Context, id uuid.UUID) (*domain.Message, bool, error) {
	if id == uuid.Nil {
		return nil, false, domain.NewValidationError("id", "required")
	}

	var out domain.Message
	err := pgxscan.Get(ctx, r.q(ctx), &out, markReadSQL, id)
	if err == nil {
		return &out, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, postgres.MapError(err, "mark message read")
	}

	// No Unread row matched: either the message is gone (not found) or it
	// was already acknowledged. Return the current record in the latter case.
	msg, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, false, getErr
	}
	return msg, false, nil
}

// CountUnread returns the number of Unread messages.
func (r *Repo) CountUnread(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, countUnreadSQL).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "count unread messages")
	}
	return count, nil
}

// UpdateStatus sets the message status; the caller validates the enum.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus) (*domain.Message, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update message status: %w", err)
	}

	var out domain.Message
	if err := pgxscan.Get(ctx, r.q(ctx), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "update message status")
	}
	return &out, nil
}

// Delete removes a message permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete message: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "delete message")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete message %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
