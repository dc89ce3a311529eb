package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission held in the admin inbox.
// Status moves Unread → Read on acknowledgement and Unread|Read → Replied
// by explicit admin action; deletion is terminal.
type Message struct {
	ID        uuid.UUID     `db:"id"`
	Name      string        `db:"name"`
	Email     string        `db:"email"`
	Message   string        `db:"message"`
	Status    MessageStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
}

// CreateMessageInput carries a new contact-form submission.
type CreateMessageInput struct {
	Name    string
	Email   string
	Message string
}

// Validate checks required fields.
func (in CreateMessageInput) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	}
	if strings.TrimSpace(in.Message) == "" {
		errs = append(errs, FieldError{Field: "message", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// MarkReadResult is the outcome of a read-acknowledgement: the message in
// its post-transition state plus the unread count observed right after.
type MarkReadResult struct {
	Message     Message
	UnreadCount int
}
