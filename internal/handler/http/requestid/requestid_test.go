package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"elbouchra-cms/internal/handler/http/requestid"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	t.Parallel()

	var seen string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/articles", nil))

	if seen == "" {
		t.Fatal("no request ID in context")
	}
	if got := w.Header().Get(requestid.RequestIDHeader); got != seen {
		t.Errorf("response header = %q, context = %q", got, seen)
	}
}

func TestMiddleware_PropagatesExistingID(t *testing.T) {
	t.Parallel()

	var seen string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/articles", nil)
	r.Header.Set(requestid.RequestIDHeader, "client-supplied-id")
	h.ServeHTTP(httptest.NewRecorder(), r)

	if seen != "client-supplied-id" {
		t.Errorf("request ID = %q, want client-supplied-id", seen)
	}
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	if got := requestid.FromContext(httptest.NewRequest("GET", "/", nil).Context()); got != "" {
		t.Errorf("FromContext = %q, want empty", got)
	}
}
