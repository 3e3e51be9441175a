package middleware

import (
	"strings"

	"granazap/internal/config"
	"granazap/internal/errors"
	"granazap/internal/handlers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionClaims is the slice of the identity provider's access token this
// service reads. The provider signs with HS256 and a shared secret.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// RequireSession creates a middleware that verifies the identity provider's
// access token and injects the user identity into the request context. A
// missing or invalid session is a 401; the SPA handles the login redirect.
func RequireSession(cfg *config.IdentityConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}
			tokenString := parts[1]

			claims := &sessionClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil {
				if strings.Contains(err.Error(), "expired") {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}
			if !token.Valid {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			c.Set("access_token", tokenString)

			return next(c)
		}
	}
}
