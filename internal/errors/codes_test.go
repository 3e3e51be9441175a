package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Invalid email or password",
		},
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Validation Date Range",
			code:     ValidationDateRange,
			expected: "End date cannot be earlier than start date",
		},
		{
			name:     "Profile Not Found",
			code:     ProfileNotFound,
			expected: "Profile not found",
		},
		{
			name:     "Profile Phone In Use",
			code:     ProfilePhoneInUse,
			expected: "This phone number is already in use by another account",
		},
		{
			name:     "Limit Invalid Category",
			code:     LimitInvalidCategory,
			expected: "Unknown spending category",
		},
		{
			name:     "Upstream Timeout",
			code:     UpstreamTimeout,
			expected: "Upstream service did not respond in time",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_UnknownCode tests the fallback message
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	message := GetErrorMessage(ErrorCode("DOES_NOT_EXIST"))
	s.NotEmpty(message, "unknown codes still produce a generic message")
}

// TestErrorCodes_AllHaveMessages verifies every declared code has a message
func (s *CodesTestSuite) TestErrorCodes_AllHaveMessages() {
	codes := []ErrorCode{
		AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken,
		AuthInvalidTokenFormat, AuthSessionRequired,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationInvalidEmail, ValidationInvalidPhone, ValidationInvalidDate,
		ValidationDateRange,
		ProfileNotFound, ProfilePhoneInUse, ProfileInvalidPhone,
		LimitInvalidAmount, LimitInvalidCategory,
		TransactionNoIDs, TransactionDeleteFailed,
		SubscriptionStatusUnavailable,
		UpstreamUnavailable, UpstreamTimeout, UpstreamBadPayload, UpstreamCircuitOpen,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
		SystemRateLimitExceeded,
	}

	for _, code := range codes {
		_, found := errorMessages[code]
		s.True(found, "code %s has no default message", code)
	}
}
