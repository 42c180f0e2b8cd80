package rest

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/wanderlust/travel-client/session"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{ calls int }

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) {
	e.calls++
	return nil, fmt.Errorf("boom")
}

func newTestClient(t *testing.T, baseURL string, hc *http.Client) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, HTTP: hc, Store: session.NewMemoryStore()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
