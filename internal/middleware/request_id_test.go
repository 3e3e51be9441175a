package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) TestGeneratesTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return nil
	})

	s.NoError(handler(c))
	s.NotEmpty(seen)

	_, err := uuid.Parse(seen)
	s.NoError(err, "generated trace IDs are UUIDs")
	s.Equal(seen, rec.Header().Get(TraceIDHeader), "the trace ID is echoed in the response header")
}

func (s *RequestIDTestSuite) TestPreservesIncomingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "client-trace-42")
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error { return nil })

	s.NoError(handler(c))
	s.Equal("client-trace-42", GetTraceID(c))
	s.Equal("client-trace-42", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestGetTraceID_MissingReturnsEmpty() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.echo.NewContext(req, httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
