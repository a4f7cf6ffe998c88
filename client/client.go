// Package client implements the HTTP client for the Utsavia vendor API. It
// attaches bearer credentials from the session store, normalizes failures into
// the typed errors in utils, and transparently performs the single-shot token
// refresh on 401 responses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"utsavia/config"
	"utsavia/session"
	"utsavia/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client issues JSON requests against a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New builds a Client bound to the given session store. The base URL and
// timeout come from configuration when left empty.
func New(baseURL string, store session.Store, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = config.AppConfig.APIBaseURL
	}
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: config.HTTPTimeout()},
		store:   store,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin),
		logger:  logger,
	}
}

// Request sends a JSON request and returns the raw response body. When
// authRequired is set, a missing access token fails fast with AuthError before
// any network attempt, and a 401 triggers the refresh protocol.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}, authRequired bool) (json.RawMessage, error) {
	return c.RequestWithHeaders(ctx, method, path, body, authRequired, nil)
}

// RequestWithHeaders is Request with extra per-request headers (the items
// endpoints identify the vendor via a "vendorid" header).
func (c *Client) RequestWithHeaders(ctx context.Context, method, path string, body interface{}, authRequired bool, headers map[string]string) (json.RawMessage, error) {
	token := ""
	if authRequired {
		sess, err := session.Load(c.store)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if !sess.Authenticated() {
			return nil, utils.AuthError{Message: "authentication failed, please sign in again"}
		}
		token = sess.AccessToken
	}

	status, data, err := c.do(ctx, method, path, body, token, headers)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized && authRequired {
		return c.refreshAndRetry(ctx, method, path, body, headers)
	}

	if status < 200 || status >= 300 {
		return nil, apiError(status, data)
	}
	return data, nil
}

// DoJSON issues a request and decodes the response body into out. A nil out
// discards the body.
func (c *Client) DoJSON(ctx context.Context, method, path string, body interface{}, authRequired bool, out interface{}) error {
	data, err := c.Request(ctx, method, path, body, authRequired)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// do performs one HTTP round trip. It returns NetworkError when no response
// was received; status handling is the caller's concern.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, token string, headers map[string]string) (int, []byte, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	c.logger.Debug("api request", zap.String("method", method), zap.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", zap.String("path", path), zap.Error(err))
		return 0, nil, utils.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, utils.NetworkError{Err: err}
	}
	return resp.StatusCode, data, nil
}

// apiError extracts the server-supplied message from an error body, falling
// back to a generic one when the body is not the expected JSON envelope.
func apiError(status int, data []byte) error {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(data, &envelope) == nil {
		if envelope.Message != "" {
			msg = envelope.Message
		} else if envelope.Error != "" {
			msg = envelope.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return utils.APIError{Status: status, Message: msg}
}
