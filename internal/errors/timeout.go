package errors

import (
	stdErrors "errors"
	"fmt"
	"time"
)

// TimeoutError is returned by the script transport when no callback arrived
// before the deadline.
type TimeoutError struct {
	After    time.Duration
	Callback string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("script callback %s timed out after %s", e.Callback, e.After)
}

// NewTimeoutError creates a TimeoutError.
func NewTimeoutError(callback string, after time.Duration) *TimeoutError {
	return &TimeoutError{After: after, Callback: callback}
}

// IsTimeoutError checks if err is a TimeoutError
func IsTimeoutError(err error) bool {
	var timeoutErr *TimeoutError
	return stdErrors.As(err, &timeoutErr)
}
