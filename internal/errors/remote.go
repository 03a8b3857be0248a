package errors

import (
	stdErrors "errors"
	"fmt"
)

// RemoteError is a non-success HTTP answer from the API. Payload carries the
// response body as received so callers can inspect what the service said.
type RemoteError struct {
	StatusCode int
	Payload    string
}

func (e *RemoteError) Error() string {
	if e.Payload != "" {
		return fmt.Sprintf("remote error (HTTP %d): %s", e.StatusCode, e.Payload)
	}
	return fmt.Sprintf("remote error (HTTP %d)", e.StatusCode)
}

// NewRemoteError creates a RemoteError for the given status and body.
func NewRemoteError(statusCode int, payload string) *RemoteError {
	return &RemoteError{StatusCode: statusCode, Payload: payload}
}

// IsRemoteError checks if err is a RemoteError
func IsRemoteError(err error) bool {
	var remoteErr *RemoteError
	return stdErrors.As(err, &remoteErr)
}
