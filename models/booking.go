package models

import "time"

// Booking lifecycle statuses. Cancelled is terminal; bookings are never deleted.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Booking represents a single service booking owned by a tenant business.
type Booking struct {
	ID                string    `bson:"id" json:"id"`                                       // Unique booking identifier (UUID)
	BusinessID        string    `bson:"business_id" json:"business_id"`                     // Owning tenant
	ServiceID         string    `bson:"service_id,omitempty" json:"service_id,omitempty"`   // Requested service, optional
	CustomerName      string    `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerEmail     string    `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	Address           string    `bson:"address,omitempty" json:"address,omitempty"`
	ScheduledDate     string    `bson:"scheduled_date" json:"scheduled_date"` // "YYYY-MM-DD"
	ScheduledTime     string    `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"`
	DurationMinutes   int       `bson:"duration_minutes" json:"duration_minutes"`
	Status            string    `bson:"status" json:"status"`
	ProviderID        string    `bson:"provider_id,omitempty" json:"provider_id,omitempty"` // Empty until assigned
	RecurringSeriesID string    `bson:"recurring_series_id,omitempty" json:"recurring_series_id,omitempty"`
	TotalPrice        float64   `bson:"total_price" json:"total_price"`
	ProviderWage      float64   `bson:"provider_wage,omitempty" json:"provider_wage,omitempty"`           // Per-booking wage override
	ProviderWageType  string    `bson:"provider_wage_type,omitempty" json:"provider_wage_type,omitempty"` // percentage | fixed | hourly
	Notes             string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// CountsAgainstLimits reports whether the booking occupies capacity.
// Completed and cancelled bookings never count against day/week/month limits.
func (b Booking) CountsAgainstLimits() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress:
		return true
	}
	return false
}
