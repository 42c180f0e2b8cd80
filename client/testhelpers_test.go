package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// unreachable is an http.Client whose transport always fails, as if the
// backend were down.
func unreachable(calls *int) *http.Client {
	return &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		if calls != nil {
			*calls++
		}
		return nil, errors.New("connection refused")
	})}
}

// recorder is a fake backend that answers every request with a fixed
// status/body per "METHOD path" and remembers what it saw.
type recorder struct {
	mu      sync.Mutex
	replies map[string]reply
	seen    []string
}

type reply struct {
	status int
	body   string
}

func newRecorder(t *testing.T, replies map[string]reply, opts ...Option) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{replies: replies}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.seen = append(rec.seen, r.Method+" "+r.URL.RequestURI())
		rp, ok := rec.replies[r.Method+" "+r.URL.Path]
		rec.mu.Unlock()
		if !ok {
			rp = reply{http.StatusNotFound, `{"error":"not found"}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rp.status)
		_, _ = w.Write([]byte(rp.body))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, append([]Option{WithHTTPClient(srv.Client())}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, rec
}

func (r *recorder) requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seen...)
}

func bg() context.Context { return context.Background() }
