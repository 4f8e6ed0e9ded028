package decision

import "errors"

// Errors the caller is expected to map to client-error responses
var (
	// ErrMissingIdentifier indicates no TMDB ID could be obtained from the
	// notification payload
	ErrMissingIdentifier = errors.New("no TMDB ID in notification payload")

	// ErrMissingRequestID indicates the notification carried no request ID
	// to key the status update on
	ErrMissingRequestID = errors.New("no request ID in notification payload")
)
