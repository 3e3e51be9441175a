// Package identity integrates the external identity provider: password
// sign-in, sign-out, password maintenance and user lookup, plus the
// process-wide session broadcast that fans session changes out to every
// consumer. Credentials never live here; the provider owns them.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"granazap/internal/config"
	"granazap/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionRequired    = errors.New("an access token is required")
)

// DeadlineError reports an identity call that missed its deadline. Callers
// degrade instead of hanging: a timed-out user fetch yields a nil profile, a
// timed-out sign-out still clears the local session.
type DeadlineError struct {
	Operation string
	Err       error
}

func (e *DeadlineError) Error() string {
	return fmt.Sprintf("identity %s: deadline exceeded: %v", e.Operation, e.Err)
}

func (e *DeadlineError) Unwrap() error { return e.Err }

// IsDeadline reports whether err is (or wraps) an identity deadline miss
func IsDeadline(err error) bool {
	var de *DeadlineError
	return errors.As(err, &de)
}

// ProviderClientInterface defines the contract with the identity provider
type ProviderClientInterface interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*models.SessionUser, error)
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
}

// Client is the HTTP client for the identity provider's REST API
type Client struct {
	httpClient *http.Client
	config     *config.IdentityConfig
}

func NewClient(cfg *config.IdentityConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		config:     cfg,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	Password string `json:"password"`
}

type recoverRequest struct {
	Email string `json:"email"`
}

// SignIn exchanges email+password for a session
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	var session models.Session
	err := c.do(ctx, "sign_in", http.MethodPost,
		"/auth/v1/token?grant_type=password",
		"", signInRequest{Email: email, Password: password}, &session)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && (se.code == http.StatusBadRequest || se.code == http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &session, nil
}

// SignOut revokes the session server-side
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return ErrSessionRequired
	}
	return c.do(ctx, "sign_out", http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

// GetUser fetches the authenticated user's identity record
func (c *Client) GetUser(ctx context.Context, accessToken string) (*models.SessionUser, error) {
	if accessToken == "" {
		return nil, ErrSessionRequired
	}

	var user models.SessionUser
	if err := c.do(ctx, "get_user", http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword sets a new password for the bearer of the access token
func (c *Client) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	if accessToken == "" {
		return ErrSessionRequired
	}
	return c.do(ctx, "update_password", http.MethodPut, "/auth/v1/user",
		accessToken, updatePasswordRequest{Password: newPassword}, nil)
}

// RequestPasswordReset asks the provider to mail a recovery link pointing at
// the configured redirect target
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	path := "/auth/v1/recover"
	if c.config.ResetRedirect != "" {
		path += "?redirect_to=" + url.QueryEscape(c.config.ResetRedirect)
	}
	return c.do(ctx, "recover", http.MethodPost, path, "", recoverRequest{Email: email}, nil)
}

type statusError struct {
	operation string
	code      int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("identity %s: unexpected status %d", e.operation, e.code)
}

// do runs one provider call under the configured deadline
func (c *Client) do(ctx context.Context, operation, method, path, bearer string, body, out any) error {
	callCtx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("identity %s: encode request: %w", operation, err)
		}
		reader = bytes.NewReader(encoded)
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(callCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("identity %s: build request: %w", operation, err)
	}
	req.Header.Set("apikey", c.config.APIKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return &DeadlineError{Operation: operation, Err: err}
		}
		return fmt.Errorf("identity %s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &statusError{operation: operation, code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("identity %s: decode response: %w", operation, err)
	}
	return nil
}
