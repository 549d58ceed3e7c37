package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_project_store.go -package=mocks docuchat/internal/storage ProjectStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// ProjectStore defines the interface for project storage operations.
type ProjectStore interface {
	// GetBySlug gets a project by its subdomain slug.
	// Returns nil and ErrNotFound if not found.
	GetBySlug(ctx context.Context, slug string) (*ProjectRecord, error)
	// GetOrCreate returns the project with the given slug, creating it with
	// the given name if it does not exist yet.
	GetOrCreate(ctx context.Context, slug, name string) (*ProjectRecord, error)
}

// ProjectRepo provides methods for project operations.
// It implements the ProjectStore interface.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// GetBySlug gets a project by its subdomain slug.
// Returns nil and ErrNotFound if not found.
func (r *ProjectRepo) GetBySlug(ctx context.Context, slug string) (*ProjectRecord, error) {
	var p ProjectRecord
	var logoURL sql.NullString
	var createdAt, updatedAt string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, slug, name, logo_url, created_at, updated_at FROM projects WHERE slug = ?",
		slug,
	).Scan(&p.ID, &p.Slug, &p.Name, &logoURL, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	p.LogoURL = logoURL.String
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

// GetOrCreate returns the project with the given slug, creating it with the
// given name if it does not exist yet.
func (r *ProjectRepo) GetOrCreate(ctx context.Context, slug, name string) (*ProjectRecord, error) {
	existing, err := r.GetBySlug(ctx, slug)
	if err == nil {
		return existing, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	id := uuid.New().String()
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO projects (id, slug, name) VALUES (?, ?, ?)",
		id, slug, name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return r.GetBySlug(ctx, slug)
}
