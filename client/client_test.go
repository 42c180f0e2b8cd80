package client

import (
	"net/http"
	"testing"
	"time"

	"github.com/wanderlust/travel-client/client/fallback"
	"github.com/wanderlust/travel-client/session"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("base URL = %q", c.BaseURL())
	}
	if c.AuthKey() != "admin123" {
		t.Fatalf("default admin key = %q", c.AuthKey())
	}
	if c.Token() != "" {
		t.Fatalf("token should start empty")
	}
	if c.FallbackMode() != fallback.ModeAuto {
		t.Fatalf("fallback mode = %q", c.FallbackMode())
	}
	if c.http.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	if _, err := New("not a url"); err == nil {
		t.Fatal("expected error for invalid base URL")
	}
	if _, err := New("http://x", WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for zero timeout")
	}
	if _, err := New("http://x", WithFallbackMode("sometimes")); err == nil {
		t.Fatal("expected error for unknown fallback mode")
	}
	if _, err := New("http://x", WithReadRetries(0)); err == nil {
		t.Fatal("expected error for zero read attempts")
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("TRAVEL_DEBUG", "true")
	c, err := New("http://example.com")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when TRAVEL_DEBUG=true")
	}
}

func TestDebugTransport_PassesThrough(t *testing.T) {
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	c, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true), WithDebugLogging(true))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	dt, ok := c.http.Transport.(*debugTransport)
	if !ok {
		t.Fatal("expected debugTransport")
	}
	if _, ok := dt.base.(*debugTransport); ok {
		t.Fatal("debug transport installed twice")
	}

	req, _ := http.NewRequest(http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatal("base transport not invoked")
	}
}

func TestSessionStore_LoadsCredentials(t *testing.T) {
	store := session.NewMemoryStore()
	_ = store.Set("authToken", "tok")
	_ = store.Set("authKey", "k1")

	c, err := New("http://example.com", WithSessionStore(store))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if c.Token() != "tok" || c.AuthKey() != "k1" {
		t.Fatalf("credentials not loaded: token=%q key=%q", c.Token(), c.AuthKey())
	}

	if err := c.SetToken(""); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get("authToken"); ok {
		t.Fatal("clearing the token must remove it from the store")
	}
}

func TestImageURL(t *testing.T) {
	c, _ := New("http://api.local:8091/")
	defer c.Close()
	if got := c.ImageURL("/uploads/a.png"); got != "http://api.local:8091/uploads/a.png" {
		t.Fatalf("got %q", got)
	}
	if got := c.ImageURL("https://cdn/x.png"); got != "https://cdn/x.png" {
		t.Fatalf("got %q", got)
	}

	c2, _ := New("http://api.local", WithImageBaseURL("http://img.local/"))
	defer c2.Close()
	if got := c2.ImageURL("a.png"); got != "http://img.local/a.png" {
		t.Fatalf("got %q", got)
	}
}

func TestRawRequest_HTTPErrorClassified(t *testing.T) {
	c, _ := newRecorder(t, nil)
	env := c.Get(bg(), "/nothing")
	if env.Success || env.Error != "HTTP error! status: 404" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if !IsHTTPStatus(env.Err, 404) || IsNetworkError(env.Err) || IsRetryable(env.Err) {
		t.Fatalf("unexpected classification for %v", env.Err)
	}
}

func TestFlush_AfterClose(t *testing.T) {
	c, _ := New("http://example.com")
	_ = c.Close()
	_ = c.Close()
	if err := c.Flush(bg(), "packages"); err == nil {
		t.Fatal("expected error after Close")
	}
}
