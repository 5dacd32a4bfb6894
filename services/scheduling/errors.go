package scheduling

import (
	"errors"
	"fmt"
)

// Error codes for the scheduling taxonomy. Handlers map these to HTTP
// statuses; the engine never formats user-facing text.
const (
	CodeBookingNotFound        = "bookingNotFound"
	CodeNoProvidersAvailable   = "noProvidersAvailable"
	CodeAssignmentWriteFailure = "assignmentWriteFailure"
	CodeInvitationWriteFailure = "invitationWriteFailure"
)

// SchedulingError is a typed engine error carrying a stable code.
type SchedulingError struct {
	Code    string
	Message string
	Err     error
}

func (e *SchedulingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SchedulingError) Unwrap() error {
	return e.Err
}

func newSchedulingError(code, message string, err error) *SchedulingError {
	return &SchedulingError{Code: code, Message: message, Err: err}
}

// ErrorCode extracts the scheduling error code from err, or "".
func ErrorCode(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
