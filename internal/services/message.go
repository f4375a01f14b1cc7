package services

import (
	"context"
	"strings"
	"time"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"
	"matchdate-backend/internal/pagination"
	"matchdate-backend/internal/repository"

	"github.com/google/uuid"
)

// MessageService owns the message lifecycle: creation, boxed listings,
// threads with read-marking, and the two-sided delete that ends in a purge.
type MessageService struct {
	messages MessageStore
	users    UserStore
}

// NewMessageService creates a new message service
func NewMessageService(messages MessageStore, users UserStore) *MessageService {
	return &MessageService{messages: messages, users: users}
}

// Create inserts a new active message from senderID to recipientID. The
// recipient must exist.
func (s *MessageService) Create(ctx context.Context, senderID, recipientID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.ErrEmptyMessage
	}

	if _, err := s.users.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:          uuid.New().String(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		MessageSent: time.Now(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Get returns a single message, but only to one of its parties, and never a
// side the caller has already deleted.
func (s *MessageService) Get(ctx context.Context, callerID, messageID string) (*models.Message, error) {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if callerID != msg.SenderID && callerID != msg.RecipientID {
		return nil, apperrors.ErrUnauthorized
	}
	if !msg.VisibleTo(callerID) {
		return nil, apperrors.ErrNotFound
	}
	return msg, nil
}

// List returns one page of the user's selected box.
func (s *MessageService) List(ctx context.Context, userID string, box repository.MessageBox, p pagination.Params) ([]*models.Message, pagination.Meta, error) {
	messages, total, err := s.messages.ListForUser(ctx, userID, box, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return messages, pagination.NewMeta(p, total), nil
}

// Thread returns the full conversation between the caller and otherID in
// chronological order. Fetching the thread marks the caller's incoming
// unread messages as read.
func (s *MessageService) Thread(ctx context.Context, callerID, otherID string) ([]*models.Message, error) {
	if err := s.messages.MarkThreadRead(ctx, callerID, otherID); err != nil {
		return nil, err
	}
	return s.messages.Thread(ctx, callerID, otherID)
}

// Delete hides the message from the calling party. Once both parties have
// deleted their side the store purges the row permanently.
func (s *MessageService) Delete(ctx context.Context, callerID, messageID string) error {
	return s.messages.MarkDeleted(ctx, messageID, callerID)
}
