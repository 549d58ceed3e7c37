package tenant

import (
	"context"

	"docuchat/internal/storage"
)

type contextKey string

const projectKey contextKey = "project"

// WithProject returns a context carrying the resolved project.
func WithProject(ctx context.Context, project *storage.ProjectRecord) context.Context {
	return context.WithValue(ctx, projectKey, project)
}

// FromContext returns the project resolved for this request, if any.
func FromContext(ctx context.Context) (*storage.ProjectRecord, bool) {
	p, ok := ctx.Value(projectKey).(*storage.ProjectRecord)
	return p, ok
}
