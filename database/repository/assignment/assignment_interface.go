package assignmentRepo

import (
	"errors"

	"servify/models"
)

// ErrNotFound is returned (wrapped) when no active assignment exists, so
// callers can tell "no row" apart from an infrastructure failure.
var ErrNotFound = errors.New("assignment not found")

// AssignmentRepository defines assignment data access. The Mongo impl backs
// the at-most-one-active-assignment invariant with a partial unique index.
type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	GetActiveByBooking(businessID, bookingID string) (*models.Assignment, error)
}
