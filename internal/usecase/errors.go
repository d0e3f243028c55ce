package usecase

import (
	"net/http"

	"campus-venue-booking/pkg/apperror"
)

// Error taxonomy for booking operations. Validation, permission, and
// terminal-state errors are final for the request; only ErrContention is
// retried, and only with bounded attempts.
var (
	ErrValidation         = apperror.New(http.StatusBadRequest, "validation failed")
	ErrInvalidTimeRange   = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrVenueDisabled      = apperror.New(http.StatusBadRequest, "venue is not available for new bookings")
	ErrCapacityExceeded   = apperror.New(http.StatusBadRequest, "expected attendees exceed venue capacity")
	ErrVenueNotFound      = apperror.New(http.StatusNotFound, "venue not found")
	ErrBookingNotFound    = apperror.New(http.StatusNotFound, "booking not found")
	ErrDocumentNotFound   = apperror.New(http.StatusNotFound, "document not found")
	ErrPermissionDenied   = apperror.New(http.StatusForbidden, "role lacks permission for this operation")
	ErrNotOwner           = apperror.New(http.StatusForbidden, "booking belongs to another user")
	ErrTerminalState      = apperror.New(http.StatusConflict, "booking already decided")
	ErrConflictAtApproval = apperror.New(http.StatusConflict, "booking now conflicts with an approved booking")
	ErrContention         = apperror.New(http.StatusServiceUnavailable, "venue is busy deciding another booking, retry shortly")
)
