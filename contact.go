package pagelens

import (
	"context"
	"net/mail"
	"time"
	"unicode/utf8"
)

// Field length limits for contact messages.
const (
	MaxContactNameLen    = 100
	MaxContactCompanyLen = 120
	MinContactMessageLen = 5
	MaxContactMessageLen = 5000
)

// ContactMessage represents a message submitted through the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the message contains invalid fields.
func (m *ContactMessage) Validate() error {
	if m.Name == "" {
		return Errorf(EINVALID, "contact name required")
	}
	if utf8.RuneCountInString(m.Name) > MaxContactNameLen {
		return Errorf(EINVALID, "contact name exceeds %d characters", MaxContactNameLen)
	}
	if m.Email == "" {
		return Errorf(EINVALID, "contact email required")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return Errorf(EINVALID, "contact email %q is not a valid address", m.Email)
	}
	if utf8.RuneCountInString(m.Company) > MaxContactCompanyLen {
		return Errorf(EINVALID, "contact company exceeds %d characters", MaxContactCompanyLen)
	}
	if utf8.RuneCountInString(m.Message) < MinContactMessageLen {
		return Errorf(EINVALID, "contact message must be at least %d characters", MinContactMessageLen)
	}
	if utf8.RuneCountInString(m.Message) > MaxContactMessageLen {
		return Errorf(EINVALID, "contact message exceeds %d characters", MaxContactMessageLen)
	}
	return nil
}

// ContactService represents a service for persisting contact messages.
type ContactService interface {
	// CreateContactMessage validates and stores a new message, assigning
	// its ID and CreatedAt.
	CreateContactMessage(ctx context.Context, msg *ContactMessage) error
}
