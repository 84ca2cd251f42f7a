package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

type failingSource struct{}

func (failingSource) Open(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func newTestHandler(t *testing.T, opts ...HandlerOption) http.Handler {
	t.Helper()
	reg := NewRegistry()
	if err := reg.Add(ForResource("Echo.Row", "js/Render.Row.js", testSource())); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(ForResource("Echo.Broken", "broken.js", failingSource{})); err != nil {
		t.Fatal(err)
	}

	r := chi.NewRouter()
	r.Mount("/_panekit/services", Handler(reg, opts...))
	return r
}

func TestHandlerServesService(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/_panekit/services/Echo.Row", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "// row" {
		t.Errorf("body = %q, want %q", got, "// row")
	}
	if got := rec.Header().Get("Content-Type"); got != ContentTypeJavaScript {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("ETag header missing")
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}
}

func TestHandlerNotModified(t *testing.T) {
	h := newTestHandler(t)

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/_panekit/services/Echo.Row", nil))
	etag := first.Header().Get("ETag")

	req := httptest.NewRequest(http.MethodGet, "/_panekit/services/Echo.Row", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 response should have no body, got %q", rec.Body.String())
	}
}

func TestHandlerIfNoneMatchForms(t *testing.T) {
	h := newTestHandler(t)

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/_panekit/services/Echo.Row", nil))
	etag := first.Header().Get("ETag")

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"wildcard", "*", http.StatusNotModified},
		{"list", `"deadbeef", ` + etag, http.StatusNotModified},
		{"weak", "W/" + etag, http.StatusNotModified},
		{"weak in list", `"deadbeef",W/` + etag, http.StatusNotModified},
		{"other tag", `"deadbeef"`, http.StatusOK},
		{"unquoted", strings.Trim(etag, `"`), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/_panekit/services/Echo.Row", nil)
			req.Header.Set("If-None-Match", tt.header)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("If-None-Match %q: status = %d, want %d", tt.header, rec.Code, tt.status)
			}
		})
	}
}

func TestHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown id", "/_panekit/services/Echo.Missing", http.StatusNotFound},
		{"load failure", "/_panekit/services/Echo.Broken", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestHandlerObserverAndMaxAge(t *testing.T) {
	type call struct {
		id     string
		status int
	}
	var calls []call
	h := newTestHandler(t,
		WithMaxAge(time.Hour),
		WithObserver(func(id string, status int, _ time.Duration) {
			calls = append(calls, call{id, status})
		}),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_panekit/services/Echo.Row", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/_panekit/services/Nope", nil))

	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("Cache-Control = %q", got)
	}
	if len(calls) != 2 {
		t.Fatalf("observer called %d times, want 2", len(calls))
	}
	if calls[0] != (call{"Echo.Row", 200}) || calls[1] != (call{"Nope", 404}) {
		t.Errorf("observer calls = %v", calls)
	}
}

func TestHandlerHead(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/_panekit/services/Echo.Row", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Error("HEAD response should have no body")
	}
}

func TestContentVersion(t *testing.T) {
	a := ContentVersion([]byte("a"))
	if len(a) != 8 {
		t.Errorf("ContentVersion length = %d, want 8", len(a))
	}
	if a == ContentVersion([]byte("b")) {
		t.Error("different payloads should have different versions")
	}
}
