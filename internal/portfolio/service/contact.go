package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
	"github.com/foliohq/folio/pkg/idx"
	"github.com/foliohq/folio/pkg/slogx"
)

var ErrInvalidContactMessage = errors.New("invalid contact message")

// maxContactMessageLen caps the public form body to keep drive-by abuse from
// bloating the table. The HTTP layer rate limits by IP on top of this.
const maxContactMessageLen = 4000

type ContactService struct {
	Store store.Store
}

// Submit stores a message from the public contact form.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (domain.ContactMessage, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	message = strings.TrimSpace(message)

	if name == "" || message == "" || len(message) > maxContactMessageLen {
		return domain.ContactMessage{}, ErrInvalidContactMessage
	}
	if email == "" || !strings.Contains(email, "@") {
		return domain.ContactMessage{}, ErrInvalidContactMessage
	}

	msg := domain.ContactMessage{
		ID:      idx.New().String(),
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.Store.Contacts().CreateContact(ctx, msg); err != nil {
		log.Error("failed to store contact message", slog.Any("error", err))
		return domain.ContactMessage{}, err
	}

	log.Info("contact message received", slog.String("message_id", msg.ID))
	return msg, nil
}

// List returns every stored message, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.Store.Contacts().ListContacts(ctx)
}
