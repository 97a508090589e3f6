package mock

import (
	"context"

	"github.com/pagelens/pagelens"
)

var _ pagelens.ContactService = (*ContactService)(nil)

// ContactService is a mock implementation of pagelens.ContactService.
type ContactService struct {
	CreateContactMessageFn func(ctx context.Context, msg *pagelens.ContactMessage) error
}

func (s *ContactService) CreateContactMessage(ctx context.Context, msg *pagelens.ContactMessage) error {
	return s.CreateContactMessageFn(ctx, msg)
}
