package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_store.go -package=mocks docuchat/internal/storage ChatStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// ChatStore defines the interface for chat storage operations.
// Every lookup is scoped by project and user so one tenant's chats are never
// visible through another tenant's subdomain.
type ChatStore interface {
	// ListByProjectAndUser returns the user's chats in the project, most
	// recently updated first.
	ListByProjectAndUser(ctx context.Context, projectID, userID string) ([]ChatRecord, error)
	// GetByID gets a chat by ID, scoped to project and user.
	// Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id, projectID, userID string) (*ChatRecord, error)
	// Create inserts a new chat, generating its UUID if unset.
	Create(ctx context.Context, chat *ChatRecord) error
	// UpdateTitle renames a chat. Returns ErrNotFound when no row matched.
	UpdateTitle(ctx context.Context, id, projectID, userID, title string) error
	// Touch bumps a chat's updated_at to now.
	Touch(ctx context.Context, id string) error
	// Delete removes a chat and, via cascade, its messages.
	// Returns ErrNotFound when no row matched.
	Delete(ctx context.Context, id, projectID, userID string) error
}

// ChatRepo provides methods for chat operations.
// It implements the ChatStore interface.
type ChatRepo struct {
	db *sql.DB
}

// NewChatRepo creates a new ChatRepo.
func NewChatRepo(db *sql.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

// ListByProjectAndUser returns the user's chats in the project, most recently
// updated first.
func (r *ChatRepo) ListByProjectAndUser(ctx context.Context, projectID, userID string) ([]ChatRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, project_id, title, created_at, updated_at
		 FROM chats WHERE project_id = ? AND user_id = ?
		 ORDER BY updated_at DESC`,
		projectID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chats: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var chats []ChatRecord
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, *chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chats: %w", err)
	}

	return chats, nil
}

// GetByID gets a chat by ID, scoped to project and user.
// Returns nil and ErrNotFound if not found.
func (r *ChatRepo) GetByID(ctx context.Context, id, projectID, userID string) (*ChatRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, project_id, title, created_at, updated_at
		 FROM chats WHERE id = ? AND project_id = ? AND user_id = ?`,
		id, projectID, userID,
	)

	chat, err := scanChat(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return chat, nil
}

// Create inserts a new chat, generating its UUID if unset.
func (r *ChatRepo) Create(ctx context.Context, chat *ChatRecord) error {
	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}
	if chat.Title == "" {
		chat.Title = "New conversation"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chats (id, user_id, project_id, title) VALUES (?, ?, ?, ?)",
		chat.ID, chat.UserID, chat.ProjectID, chat.Title,
	)
	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}

	return nil
}

// UpdateTitle renames a chat. Returns ErrNotFound when no row matched.
func (r *ChatRepo) UpdateTitle(ctx context.Context, id, projectID, userID, title string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE chats SET title = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND project_id = ? AND user_id = ?`,
		title, id, projectID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update chat title: %w", err)
	}
	return requireRowAffected(res)
}

// Touch bumps a chat's updated_at to now.
func (r *ChatRepo) Touch(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE chats SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", id,
	)
	if err != nil {
		return fmt.Errorf("failed to touch chat: %w", err)
	}
	return nil
}

// Delete removes a chat and, via cascade, its messages.
// Returns ErrNotFound when no row matched.
func (r *ChatRepo) Delete(ctx context.Context, id, projectID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM chats WHERE id = ? AND project_id = ? AND user_id = ?",
		id, projectID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanChat(s scanner) (*ChatRecord, error) {
	var chat ChatRecord
	var createdAt, updatedAt string

	err := s.Scan(&chat.ID, &chat.UserID, &chat.ProjectID, &chat.Title, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan chat: %w", err)
	}

	if chat.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if chat.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &chat, nil
}
