package handlers

import (
	"errors"
	"fmt"

	apierrors "granazap/internal/errors"
	"granazap/internal/identity"
	"granazap/internal/webhooks"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// getEmailFromContext extracts the session email, empty when absent
func getEmailFromContext(c echo.Context) string {
	email, ok := c.Get("user_email").(string)
	if !ok {
		return ""
	}
	return email
}

// getAccessTokenFromContext extracts the raw bearer token the session
// middleware verified, empty when absent
func getAccessTokenFromContext(c echo.Context) string {
	token, ok := c.Get("access_token").(string)
	if !ok {
		return ""
	}
	return token
}

// sendUpstreamError maps a failed upstream call onto the standardized error
// codes: timeout, open breaker, undecodable payload, or plain unavailability
func sendUpstreamError(c echo.Context, err error) error {
	switch {
	case webhooks.IsTimeout(err) || identity.IsDeadline(err):
		return SendError(c, apierrors.UpstreamTimeout)
	case errors.Is(err, webhooks.ErrCircuitBreakerOpen):
		return SendError(c, apierrors.UpstreamCircuitOpen)
	case errors.Is(err, webhooks.ErrBadPayload):
		return SendError(c, apierrors.UpstreamBadPayload)
	default:
		return SendError(c, apierrors.UpstreamUnavailable)
	}
}
