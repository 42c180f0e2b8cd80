package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/wanderlust/travel-client/client/fallback"
	"github.com/wanderlust/travel-client/session"
)

// Option configures a Client during construction in New.
//
// Options run before the REST wrapper is built, so transport options apply
// to every request the Client makes.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single HTTP exchange. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the http.Client. Options applied later (timeout,
// debug logging) modify the supplied client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true. Dumps include the bearer token; do not enable
// in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.http.Transport.(*debugTransport); ok {
			return nil
		}
		c.http.Transport = &debugTransport{base: c.http.Transport}
		return nil
	}
}

// WithSessionStore persists the token and admin key in store.
func WithSessionStore(store session.Store) Option {
	return func(c *Client) error {
		if store == nil {
			return fmt.Errorf("session store cannot be nil")
		}
		c.store = store
		return nil
	}
}

// WithFallbackMode selects how failed reads are answered.
func WithFallbackMode(mode fallback.Mode) Option {
	return func(c *Client) error {
		m, err := fallback.ParseMode(string(mode))
		if err != nil {
			return err
		}
		c.mode = m
		return nil
	}
}

// WithDataSource replaces the embedded demo dataset.
func WithDataSource(ds fallback.DataSource) Option {
	return func(c *Client) error {
		if ds == nil {
			return fmt.Errorf("data source cannot be nil")
		}
		c.data = ds
		return nil
	}
}

// WithImageBaseURL sets where relative image references resolve.
func WithImageBaseURL(u string) Option {
	return func(c *Client) error {
		c.imageBaseURL = strings.TrimRight(u, "/")
		return nil
	}
}

// WithReadRetries retries GET requests up to attempts times in total on
// recoverable failures. Writes are never retried by the REST layer.
func WithReadRetries(attempts int) Option {
	return func(c *Client) error {
		if attempts < 1 {
			return fmt.Errorf("read attempts must be >= 1")
		}
		c.readAttempts = attempts
		return nil
	}
}

// WithCircuitBreaker trips after maxFailures consecutive recoverable
// failures and stays open for openFor before probing again.
func WithCircuitBreaker(maxFailures uint32, openFor time.Duration) Option {
	return func(c *Client) error {
		if maxFailures == 0 {
			return fmt.Errorf("max failures must be > 0")
		}
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "travel-backend",
			Timeout: openFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			},
		})
		return nil
	}
}

// WithWorkers sizes the pool used by bulk operations such as Admin().Seed.
func WithWorkers(shards, queueSize int) Option {
	return func(c *Client) error {
		if shards < 1 || queueSize < 1 {
			return fmt.Errorf("workers need shards >= 1 and queue size >= 1")
		}
		c.workers.Shards = shards
		c.workers.QueueSize = queueSize
		return nil
	}
}
