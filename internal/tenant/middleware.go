package tenant

import (
	"errors"
	"net/http"
	"strings"

	"docuchat/internal/contextutil"
	"docuchat/internal/storage"
)

// SlugFromHost extracts the project slug from a request host.
//
// Localhost (or an empty base domain) falls back to devSlug so local
// development works without DNS. A subdomain of the base domain maps to that
// subdomain's project ({slug}.{baseDomain}). The apex domain and unrelated
// hosts carry no project; an empty string is returned.
func SlugFromHost(host, baseDomain, devSlug string) string {
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}

	if baseDomain == "" || host == "localhost" || host == "127.0.0.1" {
		return devSlug
	}

	if host == baseDomain {
		return ""
	}

	if strings.HasSuffix(host, "."+baseDomain) {
		return strings.TrimSuffix(host, "."+baseDomain)
	}

	return ""
}

// Middleware resolves the request's project from the Host header and stores
// it in the request context. Requests that resolve to no project, or to a
// project that does not exist, get a 404.
func Middleware(projects storage.ProjectStore, baseDomain, devSlug string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := contextutil.LoggerFromContext(ctx)

			slug := SlugFromHost(r.Host, baseDomain, devSlug)
			if slug == "" {
				logger.WarnContext(ctx, "no project for host", "host", r.Host)
				http.Error(w, "Not Found", http.StatusNotFound)
				return
			}

			project, err := projects.GetBySlug(ctx, slug)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					logger.WarnContext(ctx, "unknown project", "slug", slug)
					http.Error(w, "Not Found", http.StatusNotFound)
					return
				}
				logger.ErrorContext(ctx, "failed to resolve project", "slug", slug, "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithProject(ctx, project)))
		})
	}
}
