// Package auth checks an access token against the game server.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const initPath = "api/adv/init/"

// ErrInvalidToken is returned when the server rejects the token
var ErrInvalidToken = errors.New("invalid token")

// Validator decides whether a token grants access
type Validator interface {
	Validate(ctx context.Context, token string) error
}

// HTTPValidator asks the server's init endpoint
type HTTPValidator struct {
	baseURL string
	client  *http.Client
}

// NewHTTPValidator creates a validator for baseURL. A trailing slash is added when missing.
func NewHTTPValidator(baseURL string, timeout time.Duration) *HTTPValidator {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HTTPValidator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Validate returns nil for an accepted token, ErrInvalidToken for a
// rejected one, and a wrapped transport error otherwise.
func (v *HTTPValidator) Validate(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+initPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrInvalidToken
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

// AllowAll accepts every token; used with -skip-auth
type AllowAll struct{}

func (AllowAll) Validate(context.Context, string) error { return nil }
