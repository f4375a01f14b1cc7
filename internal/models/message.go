package models

import (
	"time"

	"matchdate-backend/internal/apperrors"
)

// Message is a direct message between two users. Each party can hide its side
// independently; once both deleted flags are set the row is removed for good.
type Message struct {
	ID               string     `json:"id"`
	SenderID         string     `json:"sender_id"`
	RecipientID      string     `json:"recipient_id"`
	Content          string     `json:"content"`
	IsRead           bool       `json:"is_read"`
	DateRead         *time.Time `json:"date_read,omitempty"`
	MessageSent      time.Time  `json:"message_sent"`
	SenderDeleted    bool       `json:"-"`
	RecipientDeleted bool       `json:"-"`
}

// MarkDeletedBy sets the deleted flag belonging to partyID. It returns
// ErrUnauthorized when partyID is neither the sender nor the recipient.
func (m *Message) MarkDeletedBy(partyID string) error {
	switch partyID {
	case m.SenderID:
		m.SenderDeleted = true
	case m.RecipientID:
		m.RecipientDeleted = true
	default:
		return apperrors.ErrUnauthorized
	}
	return nil
}

// FullyDeleted reports whether both parties have deleted the message, at
// which point it must be purged from storage.
func (m *Message) FullyDeleted() bool {
	return m.SenderDeleted && m.RecipientDeleted
}

// VisibleTo reports whether partyID still sees the message.
func (m *Message) VisibleTo(partyID string) bool {
	switch partyID {
	case m.SenderID:
		return !m.SenderDeleted
	case m.RecipientID:
		return !m.RecipientDeleted
	default:
		return false
	}
}
