package auth

import (
	"net/http"
)

// Register mounts the token endpoint on the given mux. The handler is taken
// as an http.Handler so callers can wrap it, typically with a rate limiter.
func Register(mux *http.ServeMux, handler http.Handler) {
	mux.Handle("POST /auth/token", handler)
}
