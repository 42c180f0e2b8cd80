// Package client is the Go SDK for the Wanderlust travel-agency backend.
//
// A Client owns one REST wrapper (base URL, bearer token, admin key) and
// exposes one façade per backend resource. Façade methods never return a Go
// error: every outcome is a Result whose Success flag and Message mirror
// what the backend said, with the classified cause kept in Result.Err.
package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/wanderlust/travel-client/client/fallback"
	"github.com/wanderlust/travel-client/client/internal/rest"
	"github.com/wanderlust/travel-client/client/internal/types"
	"github.com/wanderlust/travel-client/client/internal/workqueue"
	"github.com/wanderlust/travel-client/session"
)

// DefaultBaseURL is used when neither configuration nor caller supplies one.
const DefaultBaseURL = "http://localhost:8091"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL      string
	imageBaseURL string
	http         *http.Client
	store        session.Store
	exec         executor
	workers      workqueue.Config

	mode fallback.Mode
	data fallback.DataSource

	readAttempts int
	breaker      *gobreaker.CircuitBreaker

	rest *rest.Client

	auth     *AuthService
	packages *PackageService
	travels  *TravelService
	hotels   *HotelService
	bookings *BookingService
	feedback *FeedbackService
	images   *ImageService
	admin    *AdminService

	closedOnce uint32
}

// New constructs a Client for baseURL. Credentials saved in the session
// store (memory by default) are loaded immediately.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		mode:    fallback.ModeAuto,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.store == nil {
		c.store = session.NewMemoryStore()
	}
	if c.data == nil {
		switch c.mode {
		case fallback.ModeOff:
			c.data = fallback.Empty{}
		default:
			ds, err := fallback.Demo()
			if err != nil {
				return nil, err
			}
			c.data = fallback.NewStatic(ds)
		}
	}
	if c.imageBaseURL == "" {
		c.imageBaseURL = c.baseURL
	}

	rc, err := rest.New(rest.Config{
		BaseURL:      c.baseURL,
		HTTP:         c.http,
		Store:        c.store,
		Breaker:      c.breaker,
		ReadAttempts: c.readAttempts,
	})
	if err != nil {
		return nil, err
	}
	c.rest = rc

	if c.exec == nil {
		c.exec = newDefaultExecutor(c.workers)
	}

	c.auth = &AuthService{c: c}
	c.packages = &PackageService{c: c}
	c.travels = &TravelService{c: c}
	c.hotels = &HotelService{c: c}
	c.bookings = &BookingService{c: c, now: time.Now}
	c.feedback = &FeedbackService{c: c}
	c.images = &ImageService{c: c}
	c.admin = &AdminService{c: c}
	return c, nil
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	if closer, ok := c.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("closing session store")
		}
	}
	return nil
}

// Flush blocks until every job previously submitted under key has run.
func (c *Client) Flush(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.exec.Barrier(ctx, key)
}

// newDefaultExecutor constructs the work pool with sane defaults.
func newDefaultExecutor(cfg workqueue.Config) *workqueue.Pool {
	if cfg.Shards == 0 {
		cfg.Shards = 4
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	cfg.ErrorHandler = reportFailure
	return workqueue.New(cfg)
}

// --------------------------------------------------------------------
// Credential state and raw requests - delegated to internal/rest
// --------------------------------------------------------------------

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// FallbackMode reports how failed reads are answered.
func (c *Client) FallbackMode() fallback.Mode { return c.mode }

// Token returns the bearer token, "" when logged out.
func (c *Client) Token() string { return c.rest.Token() }

// SetToken stores the bearer token; "" clears it.
func (c *Client) SetToken(token string) error { return c.rest.SetToken(token) }

// AuthKey returns the admin key appended to gated writes.
func (c *Client) AuthKey() string { return c.rest.AuthKey() }

// SetAuthKey stores the admin key.
func (c *Client) SetAuthKey(key string) error { return c.rest.SetAuthKey(key) }

// Request sends an arbitrary JSON request to path and returns the envelope.
func (c *Client) Request(ctx context.Context, method, path string, body any) Envelope {
	return c.rest.Request(ctx, method, path, body)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) Envelope { return c.rest.Get(ctx, path) }

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) Envelope {
	return c.rest.Post(ctx, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) Envelope {
	return c.rest.Put(ctx, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) Envelope { return c.rest.Delete(ctx, path) }

// UploadFile posts a multipart form with extra text fields and one file.
func (c *Client) UploadFile(ctx context.Context, path string, fields map[string]string, file FilePart) Envelope {
	return c.rest.UploadFile(ctx, path, fields, file)
}

// ImageURL resolves an image reference returned by the backend. Absolute
// URLs are returned unchanged; relative ones are joined to the image base.
func (c *Client) ImageURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return c.imageBaseURL + "/" + strings.TrimLeft(ref, "/")
}

// --------------------------------------------------------------------
// Façades
// --------------------------------------------------------------------

// Auth returns the service for login, registration and logout.
func (c *Client) Auth() *AuthService { return c.auth }
// Packages returns the service for tour packages.
func (c *Client) Packages() *PackageService { return c.packages }
// Travels returns the service for partner travel agencies.
func (c *Client) Travels() *TravelService { return c.travels }
// Hotels returns the service for partner hotels.
func (c *Client) Hotels() *HotelService { return c.hotels }
// Bookings returns the service for reservations.
func (c *Client) Bookings() *BookingService { return c.bookings }
// Feedback returns the service for customer testimonials.
func (c *Client) Feedback() *FeedbackService { return c.feedback }
// Images returns the service for uploaded images.
func (c *Client) Images() *ImageService { return c.images }
// Admin returns the service for admin session and seeding.
func (c *Client) Admin() *AdminService { return c.admin }

// served marks data as coming from the fallback source.
func served[T any](resource string, data T) types.Result[T] {
	fallbackServedTotal.WithLabelValues(resource).Inc()
	r := types.OK(data)
	r.Fallback = true
	return r
}

// readWithFallback applies the configured fallback mode to a list read.
func readWithFallback[T any](ctx context.Context, c *Client, resource string,
	live func(context.Context) types.Result[[]T], demo func() []T) types.Result[[]T] {
	if c.mode == fallback.ModeDemo {
		return served(resource, demo())
	}
	res := live(ctx)
	if res.Success || c.mode == fallback.ModeOff {
		return res
	}
	log.Warn().Err(res.Err).Str("resource", resource).Msg("backend read failed, serving fallback data")
	return served(resource, demo())
}
