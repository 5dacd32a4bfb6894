package bookingRepo

import "servify/models"

// BookingRepository defines the booking data access the engine needs. All
// operations are scoped to a tenant business.
type BookingRepository interface {
	GetByID(businessID, bookingID string) (*models.Booking, error)
	Create(booking *models.Booking) error
	CreateMany(bookings []models.Booking) error

	// ClaimForAssignment assigns a provider only if the booking is currently
	// unassigned, so two concurrent scheduling requests cannot both win.
	// Returns false when the booking was already claimed.
	ClaimForAssignment(businessID, bookingID, providerID string) (bool, error)

	// CountInDateRange counts bookings with scheduled_date in [from, to]
	// holding one of the capacity-occupying statuses.
	CountInDateRange(businessID, from, to string) (int, error)

	// ListActiveForDate returns the capacity-occupying bookings on a date.
	ListActiveForDate(businessID, date string) ([]models.Booking, error)

	// CountInSeriesAfter counts bookings in a series strictly after a date.
	CountInSeriesAfter(businessID, seriesID, date string) (int, error)

	// LatestDateInSeries returns the greatest scheduled_date in a series,
	// or the empty string when the series has no bookings yet.
	LatestDateInSeries(businessID, seriesID string) (string, error)
}
