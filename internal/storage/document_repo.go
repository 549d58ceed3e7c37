package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks docuchat/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// DocumentStore defines the interface for document storage operations.
type DocumentStore interface {
	// ListByProject returns all documents of a project in the tenant's
	// configured order (sort_order, then slug as tiebreak).
	ListByProject(ctx context.Context, projectID string) ([]DocumentRecord, error)
	// GetBySlug gets a document by project ID and document slug.
	// Returns nil and ErrNotFound if not found.
	GetBySlug(ctx context.Context, projectID, slug string) (*DocumentRecord, error)
	// Upsert inserts a new document or replaces an existing one's content and
	// metadata, keyed by (project_id, slug).
	Upsert(ctx context.Context, doc *DocumentRecord) error
}

// DocumentRepo provides methods for document operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

const documentColumns = "id, project_id, slug, title, content, description, sort_order, hash, created_at, updated_at"

// ListByProject returns all documents of a project ordered by sort_order,
// then slug.
func (r *DocumentRepo) ListByProject(ctx context.Context, projectID string) ([]DocumentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s FROM documents WHERE project_id = ? ORDER BY sort_order, slug", documentColumns),
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []DocumentRecord
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

// GetBySlug gets a document by project ID and document slug.
// Returns nil and ErrNotFound if not found.
func (r *DocumentRepo) GetBySlug(ctx context.Context, projectID, slug string) (*DocumentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM documents WHERE project_id = ? AND slug = ?", documentColumns),
		projectID, slug,
	)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Upsert inserts a new document or replaces an existing one's content and
// metadata. New documents get a generated UUID; existing ones keep their ID.
func (r *DocumentRepo) Upsert(ctx context.Context, doc *DocumentRecord) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, project_id, slug, title, content, description, sort_order, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (project_id, slug) DO UPDATE SET
		 title = excluded.title, content = excluded.content,
		 description = excluded.description, sort_order = excluded.sort_order,
		 hash = excluded.hash, updated_at = CURRENT_TIMESTAMP`,
		doc.ID, doc.ProjectID, doc.Slug, doc.Title, doc.Content, doc.Description, doc.SortOrder, doc.Hash,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanDocument.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*DocumentRecord, error) {
	var doc DocumentRecord
	var description sql.NullString
	var createdAt, updatedAt string

	err := s.Scan(&doc.ID, &doc.ProjectID, &doc.Slug, &doc.Title, &doc.Content,
		&description, &doc.SortOrder, &doc.Hash, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	doc.Description = description.String
	if doc.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &doc, nil
}
