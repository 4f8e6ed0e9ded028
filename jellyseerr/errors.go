package jellyseerr

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid jellyseerr configuration")
	// ErrStatusUpdateFailed indicates the request status could not be updated
	ErrStatusUpdateFailed = errors.New("failed to update request status")
)

// APIError represents a Jellyseerr API error
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("jellyseerr API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates an unknown request
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
