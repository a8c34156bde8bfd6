package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the client IP for a request, preferring X-Forwarded-For
// (first entry) then X-Real-IP, falling back to RemoteAddr without the port.
//
// These headers are trusted, so the app must sit behind a reverse proxy that
// sets them; exposed directly to the internet they are spoofable and the
// rate limiter can be bypassed.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
