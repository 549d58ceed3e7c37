package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"docuchat/internal/chat"
	"docuchat/internal/docs"
	"docuchat/internal/handlers"
	"docuchat/internal/storage"
	"docuchat/internal/tenant"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB             *sql.DB
	ChatService    chat.Service
	DocsService    docs.Service
	ProjectStore   storage.ProjectStore
	BaseDomain     string
	DevProjectSlug string
}

// NewRouter creates a new HTTP router with the provided dependencies.
// Every project-scoped route sits behind the tenant middleware, which
// resolves the request's project from the Host subdomain.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	healthHandler := handlers.NewHealthHandler(deps.DB)
	chatHandler := handlers.NewChatHandler(deps.ChatService)
	chatsHandler := handlers.NewChatsHandler(deps.ChatService)
	docsHandler := handlers.NewDocsHandler(deps.DocsService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Group(func(r chi.Router) {
			r.Use(tenant.Middleware(deps.ProjectStore, deps.BaseDomain, deps.DevProjectSlug))

			r.Method(http.MethodPost, "/chat", chatHandler)

			r.Route("/chats", func(r chi.Router) {
				r.Get("/", chatsHandler.List)
				r.Post("/", chatsHandler.Create)
				r.Get("/{id}", chatsHandler.Get)
				r.Patch("/{id}", chatsHandler.Rename)
				r.Delete("/{id}", chatsHandler.Delete)
			})

			r.Get("/docs", docsHandler.List)
			r.Get("/docs-index", docsHandler.Index)
			r.Get("/docs/{slug}", docsHandler.Get)
		})
	})

	return r
}
