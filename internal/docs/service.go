package docs

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_service.go -package=mocks docuchat/internal/docs Service

import (
	"context"
	"errors"
	"fmt"

	"docuchat/internal/contextutil"
	"docuchat/internal/docindex"
	"docuchat/internal/storage"
	"docuchat/internal/tenant"
)

// Entry is a document listing item.
type Entry struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// View is a fetched document: transformed content, metadata, and the line
// range to highlight when a section was requested. Highlight is nil both when
// no section was requested and when the requested section did not resolve;
// the document still renders either way.
type View struct {
	Content   string          `json:"content"`
	Meta      Entry           `json:"meta"`
	Highlight *docindex.Range `json:"highlight"`
}

// Service provides access to the current project's documents and their
// section index. The project is taken from the request context, so every
// method operates on the tenant resolved for this request.
type Service interface {
	// Get fetches a document by slug, optionally resolving a section slug to
	// a highlight range. Returns storage.ErrNotFound for unknown documents.
	Get(ctx context.Context, slug, sectionSlug string) (*View, error)
	// Entries lists the project's documents, excluding the overview document.
	Entries(ctx context.Context) ([]Entry, error)
	// IndexContent returns the overview document's transformed content, or
	// "" when the project has none.
	IndexContent(ctx context.Context) (string, error)
	// SectionsIndex builds the per-document section index from current
	// content. Nothing is cached between calls.
	SectionsIndex(ctx context.Context) ([]docindex.DocumentIndex, error)
	// SectionsPrompt renders the section index into the grounding block
	// injected into the assistant's system prompt.
	SectionsPrompt(ctx context.Context) (string, error)
}

// service implements Service over the document store.
type service struct {
	documents storage.DocumentStore
}

// NewService creates a new document Service.
func NewService(documents storage.DocumentStore) Service {
	return &service{documents: documents}
}

// project returns the tenant project resolved for this request.
func project(ctx context.Context) (*storage.ProjectRecord, error) {
	p, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("no project in request context")
	}
	return p, nil
}

// Get fetches a document by slug, optionally resolving a section highlight.
func (s *service) Get(ctx context.Context, slug, sectionSlug string) (*View, error) {
	p, err := project(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.documents.GetBySlug(ctx, p.ID, slug)
	if err != nil {
		return nil, err
	}

	view := &View{
		Content: transformLinks(stripIndexNav(doc.Content)),
		Meta: Entry{
			Slug:        doc.Slug,
			Title:       doc.Title,
			Description: doc.Description,
		},
	}

	if sectionSlug != "" && doc.Slug != docindex.IndexDocSlug {
		// Resolution runs over the stored content, the same text the section
		// index is generated from.
		sections := docindex.ParseSections(doc.Content)
		view.Highlight = docindex.ResolveRange(sections, sectionSlug)
		if view.Highlight == nil {
			contextutil.LoggerFromContext(ctx).DebugContext(ctx, "section slug did not resolve",
				"doc", slug, "section", sectionSlug)
		}
	}

	return view, nil
}

// Entries lists the project's documents, excluding the overview document.
func (s *service) Entries(ctx context.Context) ([]Entry, error) {
	p, err := project(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.documents.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(records))
	for _, doc := range records {
		if doc.Slug == docindex.IndexDocSlug {
			continue
		}
		entries = append(entries, Entry{
			Slug:        doc.Slug,
			Title:       doc.Title,
			Description: doc.Description,
		})
	}

	return entries, nil
}

// IndexContent returns the overview document's transformed content, or ""
// when the project has none.
func (s *service) IndexContent(ctx context.Context) (string, error) {
	p, err := project(ctx)
	if err != nil {
		return "", err
	}

	doc, err := s.documents.GetBySlug(ctx, p.ID, docindex.IndexDocSlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return transformLinks(doc.Content), nil
}

// SectionsIndex builds the per-document section index from current content.
func (s *service) SectionsIndex(ctx context.Context) ([]docindex.DocumentIndex, error) {
	p, err := project(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.documents.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	docs := make([]docindex.Document, 0, len(records))
	for _, doc := range records {
		docs = append(docs, docindex.Document{
			Slug:    doc.Slug,
			Title:   doc.Title,
			Content: doc.Content,
		})
	}

	return docindex.BuildIndex(docs), nil
}

// SectionsPrompt renders the section index for the assistant's system prompt.
func (s *service) SectionsPrompt(ctx context.Context) (string, error) {
	index, err := s.SectionsIndex(ctx)
	if err != nil {
		return "", err
	}
	return docindex.RenderPrompt(index), nil
}
