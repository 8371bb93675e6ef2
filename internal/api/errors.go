package api

import "fmt"

// Kind identifies the failure class of an API error.
type Kind string

const (
	// KindValidation is a client-side parameter or input failure raised
	// before any network call.
	KindValidation Kind = "validation"
	// KindAuthentication covers 401 and 403 responses.
	KindAuthentication Kind = "authentication"
	// KindInsufficientCredits covers 402 responses.
	KindInsufficientCredits Kind = "insufficient_credits"
	// KindRateLimit covers 429 responses.
	KindRateLimit Kind = "rate_limit"
	// KindGeneric covers every other non-2xx response and transport
	// failures that exhausted their retries.
	KindGeneric Kind = "generic"
)

// Error represents a classified API failure. Kind is always set;
// StatusCode and Response are populated for HTTP-level errors.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Response   Result
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NetworkError represents a connection-level failure where no HTTP
// response was obtained. These are the only failures eligible for retry.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
