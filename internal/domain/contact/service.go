// internal/domain/contact/service.go
package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/faraz365/storefront-backend/internal/store"
)

// Service stores contact-form submissions. Messages are only recorded;
// no delivery happens here.
type Service struct {
	store store.Store
	seq   *store.Sequencer
}

// NewService creates a new contact service
func NewService(st store.Store, seq *store.Sequencer) *Service {
	return &Service{store: st, seq: seq}
}

// CreateRequest represents a contact-form submission
type CreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Create stores a contact message.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Message, error) {
	m := Message{
		ID:        s.seq.Next(store.Contacts),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, store.Contacts, m); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}
	return &m, nil
}
