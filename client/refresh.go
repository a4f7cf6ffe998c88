package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"utsavia/models"
	"utsavia/session"
	"utsavia/utils"

	"go.uber.org/zap"
)

// refreshAndRetry runs the token refresh protocol after a 401: one refresh
// call, then exactly one retry of the original request with the new token.
// Without a stored refresh token, or when the refresh itself fails, the
// original call fails with AuthError and the caller must redirect to sign-in.
func (c *Client) refreshAndRetry(ctx context.Context, method, path string, body interface{}, headers map[string]string) (json.RawMessage, error) {
	refreshToken, ok, err := c.store.Get(session.KeyRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}
	if !ok || refreshToken == "" {
		return nil, utils.AuthError{Message: "session expired, please sign in again"}
	}

	c.logger.Debug("access token expired, refreshing", zap.String("path", path))

	status, data, err := c.do(ctx, http.MethodPost, "/auth/refresh-token", models.RefreshRequest{RefreshToken: refreshToken}, "", nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		c.logger.Warn("token refresh rejected", zap.Int("status", status))
		return nil, utils.AuthError{Message: "session expired, please sign in again"}
	}

	var refreshed models.RefreshResponse
	if err := json.Unmarshal(data, &refreshed); err != nil || refreshed.AccessToken == "" {
		return nil, utils.AuthError{Message: "session expired, please sign in again"}
	}
	if err := c.store.Set(session.KeyToken, refreshed.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	status, data, err = c.do(ctx, method, path, body, refreshed.AccessToken, headers)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		// The refreshed token was rejected too; no second refresh attempt.
		return nil, utils.AuthError{Message: "authentication failed, please sign in again"}
	}
	if status < 200 || status >= 300 {
		return nil, apiError(status, data)
	}
	return data, nil
}
