// Package api implements the HTTP request pipeline shared by all portal
// service clients: request building against a configured base URL, bearer
// token attachment from the session store, a fixed request timeout, and
// cross-cutting 401 handling.
//
// The 401 policy is global, not per-call: any response with status 401
// clears the session store and notifies the registered session-invalidated
// handler, regardless of which call triggered it. Repeated 401s are safe
// because clearing is idempotent.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alumnihub/portal-cli/internal/common"
	"github.com/alumnihub/portal-cli/internal/logging"
)

// DefaultTimeout bounds every request. There is no other cancellation
// mechanism besides the caller's context.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response body is read when
// looking for a server envelope.
const maxErrorBody = 1 << 20

// TokenStore is the subset of the session store the wrapper needs: a
// synchronous local token read before each request, and an unconditional
// clear on authentication failure.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Client is the HTTP client wrapper. All domain service clients go through
// its Do method.
type Client struct {
	baseURL          string
	http             *http.Client
	tokens           TokenStore
	log              logging.Logger
	onSessionInvalid func()
}

func New(baseURL string, tokens TokenStore, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  tokens,
		log:     log,
	}
}

// SetTimeout overrides the default request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// OnSessionInvalid registers the handler invoked after a 401 has cleared
// the session store. The hosting application decides what "go to login"
// means; the wrapper never navigates by itself.
func (c *Client) OnSessionInvalid(fn func()) {
	c.onSessionInvalid = fn
}

// Do performs one request and decodes a 2xx response body into out (when
// out is non-nil). body, when non-nil, is JSON-encoded.
//
// Failures always come back as *Error: 401 as ErrUnauthorized (after the
// session-invalidation side effect), 404 as ErrNotFound, timeouts and
// connection failures as ErrUnavailable, and any other non-2xx as a plain
// server error carrying the server's message when one was parseable.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: "failed to encode request", Category: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: "failed to build request", Category: err}
	}

	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	// Token read is local; no network round-trip happens here.
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err == nil && token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &Error{Category: ErrUnavailable}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request completed",
		"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession(ctx)
		apiErr := c.decodeError(resp)
		apiErr.Category = ErrUnauthorized
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.decodeError(resp)
		if resp.StatusCode == http.StatusNotFound {
			apiErr.Category = ErrNotFound
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Status: resp.StatusCode, Message: "failed to decode response", Category: err}
	}
	return nil
}

// Ping checks backend liveness via the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.Do(ctx, http.MethodGet, PathHealth, nil, nil); err != nil {
		return ErrUnavailable
	}
	return nil
}

// invalidateSession clears the durable session and signals the host.
// Reachable from any in-flight request's completion; both steps tolerate
// being executed more than once.
func (c *Client) invalidateSession(ctx context.Context) {
	if c.tokens != nil {
		if err := c.tokens.Clear(ctx); err != nil {
			c.log.Error(ctx, "failed to clear session after 401", "error", err)
		}
	}
	if c.onSessionInvalid != nil {
		c.onSessionInvalid()
	}
}

// decodeError extracts the server's error envelope, or returns a bare
// *Error with an empty message when the body is not parseable JSON.
func (c *Client) decodeError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var env errEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return apiErr
	}

	apiErr.Message = env.Message
	apiErr.Errors = env.Errors
	return apiErr
}
