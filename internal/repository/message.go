package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matchdate-backend/internal/apperrors"
	"matchdate-backend/internal/models"
	"matchdate-backend/internal/pagination"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageBox selects which side of a user's messages a listing returns.
type MessageBox string

const (
	BoxUnread MessageBox = "Unread"
	BoxInbox  MessageBox = "Inbox"
	BoxOutbox MessageBox = "Outbox"
)

// ParseMessageBox maps a query value onto a box, defaulting to Unread.
func ParseMessageBox(raw string) MessageBox {
	switch MessageBox(raw) {
	case BoxInbox:
		return BoxInbox
	case BoxOutbox:
		return BoxOutbox
	default:
		return BoxUnread
	}
}

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

const messageColumns = `
	id, sender_id, recipient_id, content, is_read, date_read,
	message_sent, sender_deleted, recipient_deleted
`

func scanMessage(row pgx.Row) (*models.Message, error) {
	var msg models.Message
	err := row.Scan(
		&msg.ID, &msg.SenderID, &msg.RecipientID, &msg.Content,
		&msg.IsRead, &msg.DateRead, &msg.MessageSent,
		&msg.SenderDeleted, &msg.RecipientDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan message: %w", err)
	}
	return &msg, nil
}

// Create inserts a new message
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (
			id, sender_id, recipient_id, content, is_read, date_read,
			message_sent, sender_deleted, recipient_deleted
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		msg.ID, msg.SenderID, msg.RecipientID, msg.Content,
		msg.IsRead, msg.DateRead, msg.MessageSent,
		msg.SenderDeleted, msg.RecipientDeleted,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`
	return scanMessage(r.db.QueryRow(ctx, query, id))
}

// ListForUser returns one page of the user's selected box, newest first,
// excluding messages the user has deleted, plus the total count of matches.
func (r *MessageRepository) ListForUser(ctx context.Context, userID string, box MessageBox, p pagination.Params) ([]*models.Message, int, error) {
	var where string
	switch box {
	case BoxOutbox:
		where = `sender_id = $1 AND sender_deleted = false`
	case BoxInbox:
		where = `recipient_id = $1 AND recipient_deleted = false`
	default:
		where = `recipient_id = $1 AND recipient_deleted = false AND is_read = false`
	}

	countQuery := `SELECT COUNT(*) FROM messages WHERE ` + where
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE ` + where + `
		ORDER BY message_sent DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages, err := collectMessages(rows)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// Thread returns every non-purged message exchanged between the two users in
// chronological order, excluding any the requester has deleted.
func (r *MessageRepository) Thread(ctx context.Context, requesterID, otherID string) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2 AND sender_deleted = false)
		   OR (sender_id = $2 AND recipient_id = $1 AND recipient_deleted = false)
		ORDER BY message_sent
	`
	rows, err := r.db.Query(ctx, query, requesterID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	defer rows.Close()

	return collectMessages(rows)
}

func collectMessages(rows pgx.Rows) ([]*models.Message, error) {
	var messages []*models.Message
	for rows.Next() {
		var msg models.Message
		err := rows.Scan(
			&msg.ID, &msg.SenderID, &msg.RecipientID, &msg.Content,
			&msg.IsRead, &msg.DateRead, &msg.MessageSent,
			&msg.SenderDeleted, &msg.RecipientDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	return messages, nil
}

// MarkThreadRead flags every unread message sent by senderID to readerID as
// read, stamping the read time.
func (r *MessageRepository) MarkThreadRead(ctx context.Context, readerID, senderID string) error {
	query := `
		UPDATE messages
		SET is_read = true, date_read = $1
		WHERE recipient_id = $2 AND sender_id = $3 AND is_read = false
	`
	_, err := r.db.Exec(ctx, query, time.Now(), readerID, senderID)
	if err != nil {
		return fmt.Errorf("failed to mark thread read: %w", err)
	}
	return nil
}

// MarkDeleted records partyID's deletion of the message. The row is locked
// for the duration so a concurrent delete by the other party cannot race the
// purge decision: whichever transaction sees both flags set removes the row,
// exactly once.
func (r *MessageRepository) MarkDeleted(ctx context.Context, messageID, partyID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1 FOR UPDATE`
	msg, err := scanMessage(tx.QueryRow(ctx, query, messageID))
	if err != nil {
		return err
	}

	if err := msg.MarkDeletedBy(partyID); err != nil {
		return err
	}

	if msg.FullyDeleted() {
		if _, err := tx.Exec(ctx, `DELETE FROM messages WHERE id = $1`, messageID); err != nil {
			return fmt.Errorf("failed to purge message: %w", err)
		}
	} else {
		updateQuery := `
			UPDATE messages
			SET sender_deleted = $1, recipient_deleted = $2
			WHERE id = $3
		`
		if _, err := tx.Exec(ctx, updateQuery, msg.SenderDeleted, msg.RecipientDeleted, messageID); err != nil {
			return fmt.Errorf("failed to mark message deleted: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit message deletion: %w", err)
	}
	return nil
}
