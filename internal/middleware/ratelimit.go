package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/samber/lo"
)

const defaultWindow = 1 * time.Minute

// Limiter rate-limits requests per client IP with a sliding window. Scan
// pages are the public face of the product and get hammered by bots probing
// tag codes, so the limiter fronts every route except embedded assets.
type Limiter struct {
	limit  int
	window time.Duration
	bypass map[string]bool

	mu       sync.Mutex
	requests map[string][]time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// LimiterOption configures a Limiter.
type LimiterOption func(*Limiter)

// WithWindow overrides the sliding-window duration.
func WithWindow(d time.Duration) LimiterOption {
	return func(l *Limiter) {
		if d > 0 {
			l.window = d
		}
	}
}

// NewLimiter creates a rate limiter allowing limit requests per window per
// IP. Paths in bypass (static assets) are never limited.
//
// Close must be called on shutdown to stop the cleanup goroutine.
func NewLimiter(limit int, bypass []string, opts ...LimiterOption) (*Limiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", limit)
	}
	l := &Limiter{
		limit:    limit,
		window:   defaultWindow,
		bypass:   lo.SliceToMap(bypass, func(p string) (string, bool) { return p, true }),
		requests: make(map[string][]time.Time),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	go l.cleanupLoop()

	slog.Info("rate limiter initialized", "limit", limit, "window", l.window.String())
	return l, nil
}

// Middleware wraps next with rate limiting.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.bypass[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		ip := ClientIP(r)
		if ip == "" {
			slog.Warn("failed to extract IP from request", "path", r.URL.Path)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		allowed, oldest := l.allow(ip)
		if !allowed {
			retryAfter := int(l.window.Seconds() - time.Since(oldest).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow records a request for ip and reports whether it fits the window.
// When rejected, the oldest in-window timestamp is returned for Retry-After.
func (l *Limiter) allow(ip string) (bool, time.Time) {
	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	valid := inWindow(l.requests[ip], cutoff)
	if len(valid) >= l.limit {
		return false, valid[0]
	}
	l.requests[ip] = append(valid, now)
	return true, time.Time{}
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(defaultWindow)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.done:
			return
		}
	}
}

// cleanup drops IPs with no requests in the current window so the map does
// not grow without bound.
func (l *Limiter) cleanup() {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, timestamps := range l.requests {
		valid := inWindow(timestamps, cutoff)
		if len(valid) == 0 {
			delete(l.requests, ip)
			continue
		}
		l.requests[ip] = valid
	}
}

func inWindow(timestamps []time.Time, cutoff time.Time) []time.Time {
	return lo.Filter(timestamps, func(ts time.Time, _ int) bool {
		return ts.After(cutoff)
	})
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (l *Limiter) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
	})
}
