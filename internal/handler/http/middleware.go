// Package http provides HTTP handlers and middleware for the association API.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"elbouchra-cms/internal/handler/http/requestid"
	"elbouchra-cms/internal/handler/http/respond"
	"elbouchra-cms/internal/handler/http/responsewriter"
)

// Logging logs each request with method, path, status, duration and request ID.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responsewriter.Wrap(w)

			next.ServeHTTP(rw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.StatusCode()),
				slog.Duration("duration", time.Since(start)),
				slog.Int("bytes", rw.BytesWritten()),
			}
			if reqID := requestid.FromContext(r.Context()); reqID != "" {
				attrs = append(attrs, slog.String("request_id", reqID))
			}
			if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
				attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
			}

			logger.LogAttrs(r.Context(), slog.LevelInfo, "http request", attrs...)
		})
	}
}

// Recover converts panics in downstream handlers into 500 responses.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					respond.ErrorMessage(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitRequestBody caps the request body size for all downstream handlers.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORS sets cross-origin headers for the public frontend and answers preflight
// requests. An empty allowedOrigin allows any origin.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter implements a sliding window rate limiter keyed by client IP.
type RateLimiter struct {
	requests sync.Map
	limit    int
	window   time.Duration
}

type requestLog struct {
	mu         sync.Mutex
	timestamps []time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per window.
// A background goroutine evicts idle clients until ctx is cancelled.
func NewRateLimiter(ctx context.Context, limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:  limit,
		window: window,
	}
	go rl.periodicCleanup(ctx)
	return rl
}

// Middleware enforces the rate limit and responds 429 when exceeded.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)
		if !rl.allow(ip) {
			w.Header().Set("Retry-After", "60")
			respond.ErrorMessage(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	val, _ := rl.requests.LoadOrStore(key, &requestLog{})
	log := val.(*requestLog)

	log.mu.Lock()
	defer log.mu.Unlock()

	kept := log.timestamps[:0]
	for _, ts := range log.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	log.timestamps = kept

	if len(log.timestamps) >= rl.limit {
		return false
	}
	log.timestamps = append(log.timestamps, now)
	return true
}

func (rl *RateLimiter) periodicCleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-rl.window)
			rl.requests.Range(func(key, val any) bool {
				log := val.(*requestLog)
				log.mu.Lock()
				idle := len(log.timestamps) == 0 || log.timestamps[len(log.timestamps)-1].Before(cutoff)
				log.mu.Unlock()
				if idle {
					rl.requests.Delete(key)
				}
				return true
			})
		}
	}
}

// extractIP determines the client IP, preferring X-Forwarded-For when present.
func extractIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := parseFirstIP(fwd); ip != "" {
			return ip
		}
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		if ip := net.ParseIP(strings.TrimSpace(real)); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func parseFirstIP(forwarded string) string {
	parts := strings.Split(forwarded, ",")
	if len(parts) == 0 {
		return ""
	}
	ip := net.ParseIP(strings.TrimSpace(parts[0]))
	if ip == nil {
		return ""
	}
	return ip.String()
}
