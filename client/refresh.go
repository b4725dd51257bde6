package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const refreshPath = "/auth/refresh"

// refreshGroupKey coalesces concurrent refresh attempts: the first 401
// starts the refresh, later 401s wait on the same in-flight call.
const refreshGroupKey = "refresh"

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// refreshAccessToken runs the refresh protocol and returns the new
// access token. On any failure the session is torn down exactly once
// per coalesced attempt: both tokens cleared and every session-expired
// handler fired.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := c.refreshGroup.Do(refreshGroupKey, func() (any, error) {
		token, err := c.exchangeRefreshToken(ctx)
		if err != nil {
			c.expireSession(err)
			return nil, err
		}
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// exchangeRefreshToken issues the dedicated refresh call. It goes out
// directly on the HTTP client, not through do, so a 401 from the
// refresh endpoint can never trigger another refresh.
func (c *Client) exchangeRefreshToken(ctx context.Context) (string, error) {
	refreshToken, ok := c.tokens.Refresh()
	if !ok {
		return "", fmt.Errorf("%w: no refresh token", ErrSessionExpired)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, strings.NewReader("{}"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+refreshToken)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: refresh rejected with status %d", ErrSessionExpired, resp.StatusCode)
	}

	var out refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decoding refresh response: %v", ErrSessionExpired, err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token in refresh response", ErrSessionExpired)
	}

	// The refresh token stays in place; only the access token rotates.
	if err := c.tokens.SetAccess(out.AccessToken); err != nil {
		return "", fmt.Errorf("%w: persisting access token: %v", ErrSessionExpired, err)
	}
	return out.AccessToken, nil
}

func (c *Client) expireSession(cause error) {
	if err := c.tokens.Clear(); err != nil {
		c.log.Error("clearing tokens", slog.Any("cause", err))
	}
	c.log.Warn("session expired", slog.Any("cause", cause))
	for _, fn := range c.onExpired {
		fn()
	}
}
