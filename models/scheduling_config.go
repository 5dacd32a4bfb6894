package models

// Provider assignment modes and scheduling types, per-tenant settings.
const (
	AssignmentModeManual    = "manual"
	AssignmentModeAutomatic = "automatic"

	SchedulingAcceptedAutomatically = "accepted_automatically"
	SchedulingAcceptOrDecline       = "accept_or_decline"
	SchedulingAcceptsSameDayOnly    = "accepts_same_day_only"
)

// SchedulingConfig holds a tenant's scheduling behaviour. The router reads it
// per booking; it is never mutated by the engine.
type SchedulingConfig struct {
	BusinessID                      string `bson:"business_id" json:"business_id"`
	ProviderAssignmentMode          string `bson:"provider_assignment_mode" json:"provider_assignment_mode"` // manual | automatic
	SchedulingType                  string `bson:"scheduling_type" json:"scheduling_type"`
	MaxMinutesPerProviderPerBooking int    `bson:"max_minutes_per_provider_per_booking,omitempty" json:"max_minutes_per_provider_per_booking,omitempty"` // 0 = no cap
	HolidaySkipToNext               bool   `bson:"holiday_skip_to_next" json:"holiday_skip_to_next"`
	SpotLimitsEnabled               bool   `bson:"spot_limits_enabled" json:"spot_limits_enabled"`

	// Booking-count ceilings consulted by the capacity gate. 0 = unlimited.
	MaxBookingsPerDay   int `bson:"max_bookings_per_day,omitempty" json:"max_bookings_per_day,omitempty"`
	MaxBookingsPerWeek  int `bson:"max_bookings_per_week,omitempty" json:"max_bookings_per_week,omitempty"`
	MaxBookingsPerMonth int `bson:"max_bookings_per_month,omitempty" json:"max_bookings_per_month,omitempty"`
}
