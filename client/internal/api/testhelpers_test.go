package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wanderlust/travel-client/client/internal/rest"
	"github.com/wanderlust/travel-client/session"
)

// captured records the last request a test server received.
type captured struct {
	method string
	uri    string
	body   string
}

// newBackend starts a server that records each request and replies with
// status and body.
func newBackend(t *testing.T, status int, body string) (*rest.Client, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.uri = r.URL.RequestURI()
		b, _ := io.ReadAll(r.Body)
		got.body = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := rest.New(rest.Config{BaseURL: srv.URL, HTTP: srv.Client(), Store: session.NewMemoryStore()})
	if err != nil {
		t.Fatalf("rest.New: %v", err)
	}
	return c, got
}
