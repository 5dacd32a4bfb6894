package earningsRepo

import "servify/models"

// EarningsRepository defines earnings data access.
type EarningsRepository interface {
	Create(earnings *models.Earnings) error
	GetByBooking(businessID, bookingID string) (*models.Earnings, error)
}
