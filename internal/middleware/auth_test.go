package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"granazap/internal/config"
	"granazap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-hs256-secret"

type AuthMiddlewareTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	handler echo.HandlerFunc
	userID  uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.echo = echo.New()
	s.userID = uuid.New()

	cfg := &config.IdentityConfig{JWTSecret: testJWTSecret}
	s.handler = RequireSession(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) signToken(claims jwt.Claims, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareTestSuite) validClaims() sessionClaims {
	return sessionClaims{
		Email: "maria@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func (s *AuthMiddlewareTestSuite) request(authorization string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return rec, s.echo.NewContext(req, rec)
}

func (s *AuthMiddlewareTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *AuthMiddlewareTestSuite) TestValidToken_InjectsIdentity() {
	token := s.signToken(s.validClaims(), testJWTSecret)
	rec, c := s.request("Bearer " + token)

	s.NoError(s.handler(c))
	s.Equal(http.StatusOK, rec.Code)

	s.Equal(s.userID, c.Get("user_id"))
	s.Equal("maria@example.com", c.Get("user_email"))
	s.Equal(token, c.Get("access_token"))
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	rec, c := s.request("")

	s.NoError(s.handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestMalformedHeader() {
	for _, header := range []string{"Bearer", "Bearer ", "Token abc", "abc"} {
		rec, c := s.request(header)

		s.NoError(s.handler(c))
		s.Equal(http.StatusUnauthorized, rec.Code, "header %q", header)
		s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
	}
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	claims := s.validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	rec, c := s.request("Bearer " + s.signToken(claims, testJWTSecret))

	s.NoError(s.handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestWrongSecret() {
	rec, c := s.request("Bearer " + s.signToken(s.validClaims(), "another-secret"))

	s.NoError(s.handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestWrongSigningAlgorithm() {
	// none-algorithm tokens must be rejected even with a valid payload
	claims := s.validClaims()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	rec, c := s.request("Bearer " + signed)

	s.NoError(s.handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestNonUUIDSubject() {
	claims := s.validClaims()
	claims.Subject = "not-a-uuid"
	rec, c := s.request("Bearer " + s.signToken(claims, testJWTSecret))

	s.NoError(s.handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestBearerPrefixIsCaseInsensitive() {
	token := s.signToken(s.validClaims(), testJWTSecret)
	rec, c := s.request("bearer " + token)

	s.NoError(s.handler(c))
	s.Equal(http.StatusOK, rec.Code)
}
