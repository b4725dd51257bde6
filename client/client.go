// Package client implements the authenticated request gateway: every
// outbound API call passes through it, picking up the bearer credential
// and the single refresh-then-retry recovery on 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dchernov/campuskit/internal/uuid"
	"github.com/dchernov/campuskit/storage"
)

const defaultTimeout = 30 * time.Second

// Client mediates every outbound call to the platform API. It attaches
// the access token before send, classifies failures, and recovers
// recoverable 401s through the refresh protocol.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  *storage.TokenStore
	log     *slog.Logger

	refreshGroup singleflight.Group
	onExpired    []func()
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithLogger sets the structured logger for error classification.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// WithSessionExpiredHandler registers a handler fired when the refresh
// protocol fails terminally. The gateway performs no navigation itself;
// the surrounding application decides what returning to the login
// boundary means.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) {
		c.onExpired = append(c.onExpired, fn)
	}
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, tokens *storage.TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpc == nil {
		c.httpc = &http.Client{Timeout: defaultTimeout}
	}
	if c.log == nil {
		c.log = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return c
}

// OnSessionExpired registers an additional session-expiry handler.
func (c *Client) OnSessionExpired(fn func()) {
	c.onExpired = append(c.onExpired, fn)
}

// Get issues a GET request. A nil query is allowed. The response body
// is decoded into out unless out is nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// isAuthEndpoint reports whether path targets the login or refresh
// endpoint. Those calls are never subject to the refresh protocol.
func isAuthEndpoint(path string) bool {
	return strings.Contains(path, "/auth/login") || strings.Contains(path, "/auth/refresh")
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return c.fail(&APIError{Kind: KindSetup, Method: method, Path: path, err: err})
		}
	}

	retried := false
	for {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
		if err != nil {
			return c.fail(&APIError{Kind: KindSetup, Method: method, Path: path, err: err})
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("X-Request-Id", uuid.New())
		if token, ok := c.tokens.Access(); ok {
			// Absence of a token is not an error here: the call goes
			// out unauthenticated and the server decides.
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			return c.fail(&APIError{Kind: KindNetwork, Method: method, Path: path, err: err})
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return c.fail(&APIError{Kind: KindNetwork, Method: method, Path: path, err: err})
		}

		if resp.StatusCode < http.StatusMultipleChoices {
			if out == nil || len(respBody) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
			}
			return nil
		}

		apiErr := &APIError{
			Kind:       classifyStatus(resp.StatusCode),
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}

		if resp.StatusCode == http.StatusUnauthorized && !isAuthEndpoint(path) && !retried {
			retried = true
			if _, rerr := c.refreshAccessToken(ctx); rerr == nil {
				continue
			}
			// Refresh failed: the session is torn down, but the
			// caller still observes the original rejection.
			apiErr.err = ErrSessionExpired
		}

		return c.fail(apiErr)
	}
}

func classifyStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindUnknown
	}
}

// errorMessage pulls a human-readable message out of an error body.
// Backends in the wild disagree on the field name.
func errorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	switch {
	case envelope.Message != "":
		return envelope.Message
	case envelope.Detail != "":
		return envelope.Detail
	default:
		return envelope.Error
	}
}

// fail records the error for observability and returns it unchanged.
// Only the four kinds from the taxonomy are logged; everything
// propagates either way.
func (c *Client) fail(e *APIError) error {
	switch e.Kind {
	case KindServer:
		c.log.Error("server error", slog.String("method", e.Method), slog.String("path", e.Path), slog.Int("status", e.StatusCode))
	case KindNotFound:
		c.log.Warn("not found", slog.String("method", e.Method), slog.String("path", e.Path))
	case KindNetwork:
		c.log.Error("network error", slog.String("method", e.Method), slog.String("path", e.Path), slog.Any("cause", e.err))
	case KindSetup:
		c.log.Error("request setup error", slog.String("method", e.Method), slog.String("path", e.Path), slog.Any("cause", e.err))
	}
	return e
}
