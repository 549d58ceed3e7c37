package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_message_store.go -package=mocks docuchat/internal/storage MessageStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// MessageStore defines the interface for message storage operations.
type MessageStore interface {
	// ListByChat returns a chat's messages in creation order.
	ListByChat(ctx context.Context, chatID string) ([]MessageRecord, error)
	// Insert appends a message to a chat, generating its UUID if unset.
	Insert(ctx context.Context, msg *MessageRecord) error
	// CountByChat returns the number of messages in a chat.
	CountByChat(ctx context.Context, chatID string) (int, error)
}

// MessageRepo provides methods for message operations.
// It implements the MessageStore interface.
type MessageRepo struct {
	db *sql.DB
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// ListByChat returns a chat's messages in creation order.
func (r *MessageRepo) ListByChat(ctx context.Context, chatID string) ([]MessageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, chat_id, role, content, created_at
		 FROM messages WHERE chat_id = ? ORDER BY created_at, id`,
		chatID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var msgs []MessageRecord
	for rows.Next() {
		var msg MessageRecord
		var createdAt string
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Role, &msg.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if msg.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return msgs, nil
}

// Insert appends a message to a chat, generating its UUID if unset.
func (r *MessageRepo) Insert(ctx context.Context, msg *MessageRecord) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (id, chat_id, role, content) VALUES (?, ?, ?, ?)",
		msg.ID, msg.ChatID, msg.Role, msg.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// CountByChat returns the number of messages in a chat.
func (r *MessageRepo) CountByChat(ctx context.Context, chatID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM messages WHERE chat_id = ?", chatID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}
