package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pagelens/pagelens"
)

// Compile-time interface verification.
var _ pagelens.ContactService = (*ContactService)(nil)

// ContactService implements pagelens.ContactService using SQLite.
type ContactService struct {
	db *DB
}

// NewContactService creates a new ContactService.
func NewContactService(db *DB) *ContactService {
	return &ContactService{db: db}
}

// CreateContactMessage validates and stores a new contact message.
func (s *ContactService) CreateContactMessage(ctx context.Context, msg *pagelens.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, company, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, msg.ID, msg.Name, msg.Email, msg.Company, msg.Message,
		msg.CreatedAt.Format(time.RFC3339))

	return err
}

// CountContactMessages returns the number of stored contact messages.
// Used by the health endpoint to prove the schema is reachable.
func (s *ContactService) CountContactMessages(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
