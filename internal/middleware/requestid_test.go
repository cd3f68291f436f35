package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDKeepsInboundHeader(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "proxy-assigned-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "proxy-assigned-id" {
		t.Fatalf("context id = %q, want proxy-assigned-id", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "proxy-assigned-id" {
		t.Fatalf("echoed header = %q, want proxy-assigned-id", got)
	}
}

func TestRequestIDMintsWhenMissing(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatal("a request without the header should get a generated id")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("echoed header %q does not match context id %q", got, seen)
	}
}

func TestRequestIDFromContextDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty id without the middleware, got %q", got)
	}
}
