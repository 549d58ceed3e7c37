package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"docuchat/internal/contextutil"
)

func TestLoggerMiddleware(t *testing.T) {
	var sawRequestLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A request-scoped logger differs from the process default
		logger := contextutil.LoggerFromContext(r.Context())
		sawRequestLogger = logger != nil && logger != slog.Default()
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
	w := httptest.NewRecorder()

	LoggerMiddleware(next).ServeHTTP(w, req)

	if !sawRequestLogger {
		t.Error("LoggerMiddleware() should put a request-scoped logger in the context")
	}
	if w.Code != http.StatusOK {
		t.Errorf("LoggerMiddleware() status = %v, want 200", w.Code)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("echoes the origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
		req.Header.Set("Origin", "https://tandem.chat.example.com")
		w := httptest.NewRecorder()

		CORS(next).ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://tandem.chat.example.com" {
			t.Errorf("Allow-Origin = %q, want request origin echoed", got)
		}
		if got := w.Header().Get("Access-Control-Expose-Headers"); got != "X-Chat-Id" {
			t.Errorf("Expose-Headers = %q, want X-Chat-Id", got)
		}
	})

	t.Run("wildcard without origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
		w := httptest.NewRecorder()

		CORS(next).ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
		w := httptest.NewRecorder()

		called := false
		CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("preflight status = %v, want 204", w.Code)
		}
		if called {
			t.Error("preflight should not reach the next handler")
		}
	})
}
