package middleware

import (
	"net/http"
	"strings"
)

// CacheControl sets Cache-Control headers based on the request path. Only
// GET and HEAD responses are cacheable; POST responses can carry issued
// credentials and always go out as no-store.
//
// Scan pages carry per-request form state and must never be cached, while
// embedded assets are content-stable for the lifetime of a build.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", cachePolicy(r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func cachePolicy(path string) string {
	switch {
	case path == "/favicon.svg" || path == "/style.css":
		return "public, max-age=31536000, immutable"
	case path == "/robots.txt":
		return "public, max-age=86400"
	case strings.HasPrefix(path, "/swagger/"):
		return "public, max-age=3600"
	case strings.HasPrefix(path, "/api/"):
		return "public, max-age=60, must-revalidate"
	case strings.HasPrefix(path, "/scan/"):
		return "no-store"
	default:
		return "public, max-age=300"
	}
}
