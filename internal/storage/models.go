package storage

import "time"

// ProjectRecord represents a tenant project in the database.
type ProjectRecord struct {
	ID        string // UUID
	Slug      string // Subdomain slug, unique across projects
	Name      string // Display name used in the assistant prompt
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentRecord represents one markdown document of a project.
type DocumentRecord struct {
	ID          string // UUID
	ProjectID   string // Foreign key to projects.id
	Slug        string // Document slug, unique within the project
	Title       string
	Content     string // Raw markdown
	Description string
	SortOrder   int    // Position in the tenant's configured document order
	Hash        string // xxhash hex of Content, used to skip unchanged imports
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChatRecord represents a chat conversation scoped to a project and user.
type ChatRecord struct {
	ID        string // UUID
	UserID    string
	ProjectID string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageRecord represents a single message within a chat.
type MessageRecord struct {
	ID        string // UUID
	ChatID    string
	Role      string // "user" | "assistant"
	Content   string
	CreatedAt time.Time
}
