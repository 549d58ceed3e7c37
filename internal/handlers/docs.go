package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"docuchat/internal/docs"
)

// DocsHandler handles the document endpoints, including the document-fetch
// boundary the citation UI resolves /ref links against.
type DocsHandler struct {
	docsService docs.Service
}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler(docsService docs.Service) *DocsHandler {
	return &DocsHandler{docsService: docsService}
}

// IndexResponse represents the docs landing page content.
type IndexResponse struct {
	Content string `json:"content"`
}

// List handles GET /api/docs.
func (h *DocsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.docsService.Entries(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Index handles GET /api/docs-index.
func (h *DocsHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	content, err := h.docsService.IndexContent(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load docs index")
		return
	}

	writeJSON(w, http.StatusOK, IndexResponse{Content: content})
}

// Get handles GET /api/docs/{slug}. An optional ?section= query names a
// section slug to resolve into a highlight range; a section that does not
// resolve yields highlight null, not an error.
func (h *DocsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.docsService.Get(ctx, chi.URLParam(r, "slug"), r.URL.Query().Get("section"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load document")
		return
	}

	writeJSON(w, http.StatusOK, view)
}
