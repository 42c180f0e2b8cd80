// Package rest is the single point of outbound request construction for the
// travel backend. It holds the base URL and the two credentials (bearer
// token and admin key), persists the credentials in a session.Store, and
// folds every outcome into a types.Envelope. Nothing in this package returns
// a Go error to the façades for a failed call; the cause travels in
// Envelope.Err instead.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/wanderlust/travel-client/client/internal/errors"
	"github.com/wanderlust/travel-client/client/internal/types"
	"github.com/wanderlust/travel-client/devmode"
	"github.com/wanderlust/travel-client/session"
)

// Session store keys, shared with the original browser application.
const (
	KeyAuthToken    = "authToken"
	KeyAuthKey      = "authKey"
	KeyAdminAuthKey = "adminAuthKey"
)

// maxBodyBytes bounds how much of a response body is read into memory.
const maxBodyBytes = 8 << 20

// Config wires a Client. BaseURL and HTTP are required.
type Config struct {
	BaseURL string
	HTTP    *http.Client
	Store   session.Store

	// Breaker, when set, wraps every outbound call.
	Breaker *gobreaker.CircuitBreaker

	// ReadAttempts bounds attempts for GET requests; <= 1 disables retry.
	ReadAttempts int
	BaseBackoff  time.Duration
	MaxBackoff   time.Duration
}

// Client performs requests and keeps the credential state.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	breaker *gobreaker.CircuitBreaker

	readAttempts int
	baseBackoff  time.Duration
	maxBackoff   time.Duration

	mu      sync.RWMutex
	token   string
	authKey string
}

// New builds a Client and loads any persisted credentials from the store.
// When no admin key was ever stored, the development key is used.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("http client cannot be nil")
	}
	if cfg.Store == nil {
		cfg.Store = session.NewMemoryStore()
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 200 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 5 * time.Second
	}

	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		http:         cfg.HTTP,
		store:        cfg.Store,
		breaker:      cfg.Breaker,
		readAttempts: cfg.ReadAttempts,
		baseBackoff:  cfg.BaseBackoff,
		maxBackoff:   cfg.MaxBackoff,
		authKey:      devmode.AdminKey,
	}

	tok, ok, err := c.store.Get(KeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyAuthToken, err)
	}
	if ok {
		c.token = tok
	}
	key, ok, err := c.store.Get(KeyAuthKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyAuthKey, err)
	}
	if ok {
		c.authKey = key
	}
	return c, nil
}

// BaseURL returns the configured backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Store exposes the credential store, used by the admin façade for its own key.
func (c *Client) Store() session.Store { return c.store }

// Token returns the current bearer token ("" when logged out).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// AuthKey returns the current admin key.
func (c *Client) AuthKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authKey
}

// SetToken stores token, or removes it when token is empty. The in-memory
// value changes even if persisting fails.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if token == "" {
		return c.store.Delete(KeyAuthToken)
	}
	return c.store.Set(KeyAuthToken, token)
}

// SetAuthKey stores the admin key used on gated writes.
func (c *Client) SetAuthKey(key string) error {
	c.mu.Lock()
	c.authKey = key
	c.mu.Unlock()
	return c.store.Set(KeyAuthKey, key)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) types.Envelope {
	return c.Request(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body (nil sends no body).
func (c *Client) Post(ctx context.Context, path string, body any) types.Envelope {
	return c.Request(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) types.Envelope {
	return c.Request(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) types.Envelope {
	return c.Request(ctx, http.MethodDelete, path, nil)
}

// Request sends method path with an optional JSON body and shapes the
// outcome into an Envelope. GET requests are retried on recoverable errors
// when ReadAttempts > 1.
func (c *Client) Request(ctx context.Context, method, path string, body any) types.Envelope {
	op := method + " " + path

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return c.fail(op, fmt.Errorf("%s: encode request: %w", op, err))
		}
		payload = b
	}

	build := func(ctx context.Context) (*http.Request, error) {
		var rd io.Reader
		if payload != nil {
			rd = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		c.decorate(ctx, req)
		return req, nil
	}

	attempts := 1
	if method == http.MethodGet && c.readAttempts > 1 {
		attempts = c.readAttempts
	}
	data, status, err := c.withRetry(ctx, op, attempts, build)
	if err != nil {
		return c.fail(op, err)
	}
	requestsTotal.WithLabelValues(method, "success").Inc()
	return types.Envelope{Success: true, Data: data, Status: status}
}

// UploadFile posts a multipart form. Only the bearer header is set
// explicitly; the content type carries the multipart boundary.
func (c *Client) UploadFile(ctx context.Context, path string, fields map[string]string, file types.FilePart) types.Envelope {
	op := http.MethodPost + " " + path

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if file.Content != nil {
		field := file.Field
		if field == "" {
			field = "file"
		}
		fw, err := mw.CreateFormFile(field, file.Filename)
		if err != nil {
			return c.fail(op, fmt.Errorf("%s: build form: %w", op, err))
		}
		if _, err := io.Copy(fw, file.Content); err != nil {
			return c.fail(op, fmt.Errorf("%s: read file: %w", op, err))
		}
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return c.fail(op, fmt.Errorf("%s: build form: %w", op, err))
		}
	}
	if err := mw.Close(); err != nil {
		return c.fail(op, fmt.Errorf("%s: build form: %w", op, err))
	}
	payload := buf.Bytes()
	contentType := mw.FormDataContentType()

	build := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		c.decorate(ctx, req)
		return req, nil
	}

	data, status, err := c.withRetry(ctx, op, 1, build)
	if err != nil {
		return c.fail(op, err)
	}
	requestsTotal.WithLabelValues(http.MethodPost, "success").Inc()
	return types.Envelope{Success: true, Data: data, Status: status}
}

// decorate adds the bearer token, a request id and trace propagation headers.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}

func (c *Client) withRetry(ctx context.Context, op string, attempts int, build func(context.Context) (*http.Request, error)) (json.RawMessage, int, error) {
	var (
		data   json.RawMessage
		status int
	)
	operation := func() error {
		d, s, err := c.roundTrip(ctx, op, build)
		status = s
		if err != nil {
			if errors.IsIrrecoverable(err) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		data = d
		return nil
	}
	if attempts <= 1 {
		err := operation()
		var perm *backoff.PermanentError
		if stderrors.As(err, &perm) {
			err = perm.Err
		}
		return data, status, err
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.baseBackoff
	exp.MaxInterval = c.maxBackoff
	exp.Multiplier = 2
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)
	err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		log.Debug().Err(err).Str("op", op).Dur("wait", wait).Msg("retrying request")
	})
	if err != nil && ctx.Err() != nil && !errors.IsNetwork(err) {
		// the policy gave up because the caller's context ended
		err = errors.NewNetworkError(op, err)
	}
	return data, status, err
}

// roundTrip performs one attempt, through the circuit breaker when set.
// Only recoverable failures count against the breaker.
func (c *Client) roundTrip(ctx context.Context, op string, build func(context.Context) (*http.Request, error)) (json.RawMessage, int, error) {
	if c.breaker == nil {
		return c.do(ctx, op, build)
	}
	var (
		data    json.RawMessage
		status  int
		callErr error
	)
	_, err := c.breaker.Execute(func() (interface{}, error) {
		data, status, callErr = c.do(ctx, op, build)
		if callErr != nil && !errors.IsIrrecoverable(callErr) {
			return nil, callErr
		}
		return nil, nil
	})
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, 0, errors.NewNetworkError(op, err)
	}
	return data, status, callErr
}

func (c *Client) do(ctx context.Context, op string, build func(context.Context) (*http.Request, error)) (json.RawMessage, int, error) {
	req, err := build(ctx)
	if err != nil {
		return nil, 0, errors.NewNetworkError(op, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, errors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, errors.NewNetworkError(op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return json.RawMessage(body), resp.StatusCode, errors.NewHTTPError(op, resp.StatusCode, string(body))
	}
	if !json.Valid(body) {
		return nil, resp.StatusCode, errors.NewDecodeError(op, fmt.Errorf("body is not valid JSON (%d bytes)", len(body)))
	}
	return json.RawMessage(body), resp.StatusCode, nil
}

func (c *Client) fail(op string, err error) types.Envelope {
	method := strings.SplitN(op, " ", 2)[0]
	requestsTotal.WithLabelValues(method, outcomeLabel(err)).Inc()
	log.Warn().Err(err).Str("op", op).Msg("API request failed")

	env := types.Envelope{Success: false, Error: err.Error(), Err: err}
	var he *errors.HTTPError
	if stderrors.As(err, &he) {
		env.Status = he.Status
		if json.Valid([]byte(he.Body)) {
			env.Data = json.RawMessage(he.Body)
		}
	}
	return env
}

func outcomeLabel(err error) string {
	switch {
	case errors.IsNetwork(err):
		return "network_error"
	case errors.IsDecode(err):
		return "decode_error"
	case errors.StatusOf(err) != 0:
		return "http_error"
	default:
		return "client_error"
	}
}
