package apperror

import (
	"errors"
	"net/http"
)

// Error is a sentinel error carrying the HTTP status it should map to.
// Wrap with fmt.Errorf("%w: detail") to add context; errors.Is still
// matches the sentinel and StatusOf still finds the status.
type Error struct {
	Status  int
	Message string
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status of the first *Error in err's chain,
// or 500 when none is present.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// IsRetryable reports whether the error is safe to retry with backoff.
// Only contention on the venue-date critical section qualifies.
func IsRetryable(err error) bool {
	return StatusOf(err) == http.StatusServiceUnavailable
}
