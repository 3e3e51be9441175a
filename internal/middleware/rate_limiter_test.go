package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"granazap/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RateLimiterTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RateLimiterTestSuite) SetupTest() {
	s.echo = echo.New()

	// The visitors map is process-wide; start each test from a clean slate
	mu.Lock()
	visitors = make(map[string]*visitor)
	mu.Unlock()
}

func TestRateLimiterSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) hit(handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(handler(c))
	return rec
}

func (s *RateLimiterTestSuite) TestAllowsWithinBurst() {
	handler := RateLimiterWithConfig(5, 10)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		rec := s.hit(handler, "10.0.0.1")
		s.Equal(http.StatusOK, rec.Code, "request %d within the burst must pass", i+1)
	}
}

func (s *RateLimiterTestSuite) TestRejectsPastBurst() {
	handler := RateLimiterWithConfig(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, s.hit(handler, "10.0.0.2").Code)
	s.Equal(http.StatusOK, s.hit(handler, "10.0.0.2").Code)

	rec := s.hit(handler, "10.0.0.2")
	s.Equal(http.StatusTooManyRequests, rec.Code)

	var response errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.SystemRateLimitExceeded), response.Error.Code)
}

func (s *RateLimiterTestSuite) TestLimitsArePerIP() {
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, s.hit(handler, "10.0.0.3").Code)
	s.Equal(http.StatusTooManyRequests, s.hit(handler, "10.0.0.3").Code)

	s.Equal(http.StatusOK, s.hit(handler, "10.0.0.4").Code, "a throttled IP must not affect others")
}

func (s *RateLimiterTestSuite) TestXForwardedForTakesPrecedence() {
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("172.16.0.%d", i))
		req.Header.Set("X-Real-IP", "10.0.0.5")
		rec := httptest.NewRecorder()
		c := s.echo.NewContext(req, rec)
		s.NoError(handler(c))
		s.Equal(http.StatusOK, rec.Code, "distinct forwarded IPs are tracked separately")
	}
}
