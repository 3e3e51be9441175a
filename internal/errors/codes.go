package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthSessionRequired    ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_004"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationDateRange     ErrorCode = "VALIDATION_007"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound     ErrorCode = "PROFILE_001"
	ProfilePhoneInUse   ErrorCode = "PROFILE_002"
	ProfileInvalidPhone ErrorCode = "PROFILE_003"
)

// Limit error codes (LIMIT_*)
const (
	LimitInvalidAmount   ErrorCode = "LIMIT_001"
	LimitInvalidCategory ErrorCode = "LIMIT_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNoIDs        ErrorCode = "TRANSACTION_001"
	TransactionDeleteFailed ErrorCode = "TRANSACTION_002"
)

// Subscription error codes (SUBSCRIPTION_*)
const (
	SubscriptionStatusUnavailable ErrorCode = "SUBSCRIPTION_001"
)

// Upstream error codes (UPSTREAM_*) for the automation webhooks and the
// identity provider
const (
	UpstreamUnavailable ErrorCode = "UPSTREAM_001"
	UpstreamTimeout     ErrorCode = "UPSTREAM_002"
	UpstreamBadPayload  ErrorCode = "UPSTREAM_003"
	UpstreamCircuitOpen ErrorCode = "UPSTREAM_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthSessionRequired:    "An active session is required for this operation",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidPhone:  "Invalid phone number format",
	ValidationInvalidDate:   "Invalid date format",
	ValidationDateRange:     "End date cannot be earlier than start date",

	// Profile errors
	ProfileNotFound:     "Profile not found",
	ProfilePhoneInUse:   "This phone number is already in use by another account",
	ProfileInvalidPhone: "Phone must be country code + area code + number (e.g. 553199766846)",

	// Limit errors
	LimitInvalidAmount:   "Limit amounts must be numeric with at most one decimal point",
	LimitInvalidCategory: "Unknown spending category",

	// Transaction errors
	TransactionNoIDs:        "At least one transaction id is required",
	TransactionDeleteFailed: "Failed to delete the selected transactions",

	// Subscription errors
	SubscriptionStatusUnavailable: "Failed to fetch the subscription status",

	// Upstream errors
	UpstreamUnavailable: "Upstream service is unavailable",
	UpstreamTimeout:     "Upstream service did not respond in time",
	UpstreamBadPayload:  "Upstream service returned an unexpected payload",
	UpstreamCircuitOpen: "Upstream service is temporarily suspended after repeated failures",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
