package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCacheControl(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedHeader string
	}{
		// Embedded assets - 1 year immutable
		{
			name:           "favicon.svg",
			path:           "/favicon.svg",
			expectedHeader: "public, max-age=31536000, immutable",
		},
		{
			name:           "stylesheet",
			path:           "/style.css",
			expectedHeader: "public, max-age=31536000, immutable",
		},

		// robots.txt - 1 day
		{
			name:           "robots.txt",
			path:           "/robots.txt",
			expectedHeader: "public, max-age=86400",
		},

		// Swagger - 1 hour
		{
			name:           "swagger docs",
			path:           "/swagger/doc.json",
			expectedHeader: "public, max-age=3600",
		},
		{
			name:           "swagger ui",
			path:           "/swagger/index.html",
			expectedHeader: "public, max-age=3600",
		},

		// API - 1 minute
		{
			name:           "tag lookup",
			path:           "/api/v1/tags/SB-1",
			expectedHeader: "public, max-age=60, must-revalidate",
		},

		// Scan pages carry form state - never cached
		{
			name:           "scan page",
			path:           "/scan/SB-1",
			expectedHeader: "no-store",
		},

		// Everything else - 5 minutes
		{
			name:           "home page",
			path:           "/",
			expectedHeader: "public, max-age=300",
		},

		// Non-GET responses can carry credentials - never cached
		{
			name:           "activation response",
			method:         http.MethodPost,
			path:           "/api/v1/tags/SB-1/activate",
			expectedHeader: "no-store",
		},
		{
			name:           "scan form post",
			method:         http.MethodPost,
			path:           "/scan/SB-1",
			expectedHeader: "no-store",
		},
		{
			name:           "scan ping",
			method:         http.MethodPost,
			path:           "/api/v1/tags/SB-1/scans",
			expectedHeader: "no-store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CacheControl(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if got := w.Header().Get("Cache-Control"); got != tt.expectedHeader {
				t.Errorf("path %s: got Cache-Control %q, want %q", tt.path, got, tt.expectedHeader)
			}
		})
	}
}
