package lingora

import (
	"errors"
	"fmt"

	"github.com/lingora/client-go/internal/api"
)

// Kind identifies the failure class of an APIError.
type Kind = api.Kind

// Error kinds callers can branch on.
const (
	KindValidation          = api.KindValidation
	KindAuthentication      = api.KindAuthentication
	KindInsufficientCredits = api.KindInsufficientCredits
	KindRateLimit           = api.KindRateLimit
	KindGeneric             = api.KindGeneric
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or lacks
	// access (HTTP 401 or 403).
	ErrUnauthorized = errors.New("invalid or unauthorized API key")

	// ErrInsufficientCredits is returned when the account balance cannot
	// cover the request (HTTP 402).
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrRateLimited is returned when the API rate limit is exceeded
	// (HTTP 429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrValidation is returned for invalid parameters detected before any
	// network call.
	ErrValidation = errors.New("invalid request parameters")
)

// LingoraError is implemented by all SDK errors.
type LingoraError interface {
	error
	LingoraError() // marker method
}

// APIError represents a failure of an API operation. Validation errors
// originate client-side and carry no status code; all other kinds carry
// the HTTP status and, when the server returned one, the parsed error
// payload.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Response   Result
	Cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// LingoraError implements the LingoraError interface.
func (e *APIError) LingoraError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindAuthentication:
		return target == ErrUnauthorized
	case KindInsufficientCredits:
		return target == ErrInsufficientCredits
	case KindRateLimit:
		return target == ErrRateLimited
	case KindValidation:
		return target == ErrValidation
	}
	return false
}

// validationError builds a client-side validation failure.
func validationError(msg string) *APIError {
	return &APIError{Kind: KindValidation, Message: msg}
}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work with the public sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &APIError{
			Kind:       apiErr.Kind,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Response:   Result(apiErr.Response),
			Cause:      apiErr.Cause,
		}
	}

	return err
}
