package http

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	chatmocks "docuchat/internal/chat/mocks"
	"docuchat/internal/docs"
	docsmocks "docuchat/internal/docs/mocks"
	"docuchat/internal/storage"
	storagemocks "docuchat/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

// newTestRouter builds a router over mocked services and a real sqlite file.
func newTestRouter(t *testing.T) (http.Handler, *docsmocks.MockService, *storagemocks.MockProjectStore) {
	t.Helper()

	ctrl := gomock.NewController(t)

	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	docsService := docsmocks.NewMockService(ctrl)
	projects := storagemocks.NewMockProjectStore(ctrl)

	router := NewRouter(&Deps{
		DB:             db,
		ChatService:    chatmocks.NewMockService(ctrl),
		DocsService:    docsService,
		ProjectStore:   projects,
		BaseDomain:     "chat.example.com",
		DevProjectSlug: "dev",
	})

	return router, docsService, projects
}

func TestNewRouter_Health(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// Health sits outside the tenant group; an unknown host still answers
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Host = "chat.example.com"
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /api/health status = %v, want 200", w.Code)
	}
}

func TestNewRouter_TenantScopedRoutes(t *testing.T) {
	router, docsService, projects := newTestRouter(t)

	t.Run("resolved tenant reaches the docs handler", func(t *testing.T) {
		projects.EXPECT().
			GetBySlug(gomock.Any(), "tandem").
			Return(&storage.ProjectRecord{ID: "proj-1", Slug: "tandem"}, nil)
		docsService.EXPECT().
			Entries(gomock.Any()).
			Return([]docs.Entry{{Slug: "guide", Title: "Guide"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
		req.Host = "tandem.chat.example.com"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET /api/docs status = %v, want 200", w.Code)
		}
	})

	t.Run("apex host gets no project", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
		req.Host = "chat.example.com"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("GET /api/docs on apex status = %v, want 404", w.Code)
		}
	})

	t.Run("localhost maps to the dev project", func(t *testing.T) {
		projects.EXPECT().
			GetBySlug(gomock.Any(), "dev").
			Return(&storage.ProjectRecord{ID: "proj-dev", Slug: "dev"}, nil)
		docsService.EXPECT().
			IndexContent(gomock.Any()).
			Return("Welcome.", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/docs-index", nil)
		req.Host = "localhost:9000"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET /api/docs-index on localhost status = %v, want 200", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
		req.Host = "tandem.chat.example.com"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("GET /api/nope status = %v, want 404", w.Code)
		}
	})
}
