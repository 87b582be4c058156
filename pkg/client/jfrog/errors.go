package jfrog

import (
	"errors"
	"fmt"
)

// ErrNetwork indicates that the registry or the configured proxy could not be reached.
var ErrNetwork = errors.New("registry unreachable")

// HTTPError reports a non-success response from the registry.
type HTTPError struct {
	StatusCode int
	URL        string
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for URL %s: %s", e.StatusCode, e.URL, e.Message)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, url, message string) error {
	return &HTTPError{
		StatusCode: statusCode,
		URL:        url,
		Message:    message,
	}
}
