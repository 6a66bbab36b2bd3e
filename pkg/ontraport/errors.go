package ontraport

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the Ontraport API.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Status     string `json:"status"      yaml:"status"`
	Body       string `json:"body"        yaml:"body"`
}

// Error implements the error interface. The message carries the status line
// and, when the server returned one, the response body.
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ontraport API error: %d %s", e.StatusCode, e.Status)
	}

	return fmt.Sprintf("ontraport API error: %d %s: %s", e.StatusCode, e.Status, e.Body)
}

// Static errors for err113 compliance.
var (
	// ErrInvalidObjectType indicates a malformed object-type argument, for
	// example an empty string. Detected before any network call.
	ErrInvalidObjectType = errors.New("invalid object type")

	// ErrObjectNotFound indicates that no entry in the schema metadata
	// matches the requested object-type name.
	ErrObjectNotFound = errors.New("object type not found in schema metadata")

	ErrConfigRequired     = errors.New("config is required")
	ErrCredentialsMissing = errors.New("app id and API key are required")
	ErrCacheDisabled      = errors.New("cache disabled")
	ErrCacheKeyNotFound   = errors.New("key not found")
	ErrCacheEntryExpired  = errors.New("entry expired")
	ErrNATSConfigRequired = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCache   = errors.New("unsupported cache type")
)

// IsAPIError reports whether err is an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a schema lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsInvalidObjectType checks if the error is a malformed object-type argument.
func IsInvalidObjectType(err error) bool {
	return errors.Is(err, ErrInvalidObjectType)
}
