package handlers

import (
	"errors"
	"net/http"

	"granazap/internal/dto"
	apierrors "granazap/internal/errors"
	"granazap/internal/identity"

	"github.com/labstack/echo/v4"
)

// AuthHandler proxies sign-in, sign-out and password maintenance to the
// external identity provider
type AuthHandler struct {
	broadcaster *identity.Broadcaster
	provider    identity.ProviderClientInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(broadcaster *identity.Broadcaster, provider identity.ProviderClientInterface) *AuthHandler {
	return &AuthHandler{
		broadcaster: broadcaster,
		provider:    provider,
	}
}

// SignIn exchanges email+password for a provider session
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.SignInResponse "Provider session"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid credentials"
// @Failure 504 {object} errors.ErrorResponse "UPSTREAM_002 - Provider timed out"
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req dto.SignInRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.broadcaster.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		return sendUpstreamError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SignInResponse{Session: session})
}

// SignOut revokes the caller's own session. Always succeeds from the
// caller's point of view; a failed remote revocation is logged server-side.
// @Summary Sign out
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse "Signed out"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Session required"
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	accessToken := getAccessTokenFromContext(c)
	if accessToken == "" {
		return SendError(c, apierrors.AuthSessionRequired)
	}

	h.broadcaster.SignOut(c.Request().Context(), accessToken)
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Sessão encerrada."})
}

// RecoverPassword asks the provider to mail a recovery link
// @Summary Request password recovery
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RecoverPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse "Recovery mail requested"
// @Router /auth/recover [post]
func (h *AuthHandler) RecoverPassword(c echo.Context) error {
	var req dto.RecoverPasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.provider.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return sendUpstreamError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "E-mail de recuperação enviado."})
}

// UpdatePassword sets a new password for the bearer of the access token,
// including the short-lived recovery session from the reset link
// @Summary Update password
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse "Password updated"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Session required"
// @Router /auth/password [put]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	accessToken := getAccessTokenFromContext(c)
	if accessToken == "" {
		return SendError(c, apierrors.AuthSessionRequired)
	}

	var req dto.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.provider.UpdatePassword(c.Request().Context(), accessToken, req.Password); err != nil {
		if errors.Is(err, identity.ErrSessionRequired) {
			return SendError(c, apierrors.AuthSessionRequired)
		}
		return sendUpstreamError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Senha atualizada com sucesso."})
}

// GetUser returns the provider's identity record for the session. A lookup
// that misses its deadline degrades to an empty body instead of hanging.
// @Summary Current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.SessionUser "Identity record, possibly empty on a degraded lookup"
// @Router /auth/user [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	accessToken := getAccessTokenFromContext(c)
	if accessToken == "" {
		return SendError(c, apierrors.AuthSessionRequired)
	}

	user, err := h.broadcaster.FetchUser(c.Request().Context(), accessToken)
	if err != nil {
		return sendUpstreamError(c, err)
	}
	if user == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, user)
}
