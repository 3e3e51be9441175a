package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(ProfileNotFound, "trace-123")

	s.Equal(string(ProfileNotFound), response.Error.Code)
	s.Equal("Profile not found", response.Error.Message)
	s.Equal("trace-123", response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	response := NewErrorResponse(ValidationGeneral, "trace-123",
		WithDetails("startDate is required", "endDate is required"))

	s.Len(response.Error.Details, 2)
	s.Contains(response.Error.Details, "startDate is required")
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMessage() {
	response := NewErrorResponse(LimitInvalidAmount, "trace-123",
		WithMessage("Limite de Alimentação inválido"))

	s.Equal("Limite de Alimentação inválido", response.Error.Message)
	s.Equal(string(LimitInvalidAmount), response.Error.Code, "overriding the message keeps the code")
}

func (s *ResponseTestSuite) TestNewValidationError() {
	details := []string{"phone must be a Brazilian number"}
	response := NewValidationError("trace-123", details)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetail() {
	internal := errors.New("pq: connection refused")
	response, err := WrapSystemError(internal, "trace-123")

	s.Equal(internal, err, "the internal error comes back for logging")
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "pq:", "internal detail never reaches the client")
}

func (s *ResponseTestSuite) TestToJSON_Shape() {
	response := NewErrorResponse(AuthMissingToken, "trace-123")

	raw, err := response.ToJSON()
	s.NoError(err)

	var decoded map[string]map[string]any
	s.NoError(json.Unmarshal(raw, &decoded))
	s.Equal("AUTH_002", decoded["error"]["code"])
	s.Equal("trace-123", decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus_Mapping() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationDateRange, http.StatusBadRequest},
		{LimitInvalidAmount, http.StatusBadRequest},
		{TransactionNoIDs, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{ProfileNotFound, http.StatusNotFound},
		{ProfilePhoneInUse, http.StatusConflict},
		{ProfileInvalidPhone, http.StatusUnprocessableEntity},
		{TransactionDeleteFailed, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{UpstreamUnavailable, http.StatusBadGateway},
		{UpstreamCircuitOpen, http.StatusBadGateway},
		{UpstreamTimeout, http.StatusGatewayTimeout},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_CODE"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "status for %s", tc.code)
	}
}

func (s *ResponseTestSuite) TestClientServerErrorClassification() {
	clientErr := NewErrorResponse(ProfileNotFound, "trace-123")
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(UpstreamTimeout, "trace-123")
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}
