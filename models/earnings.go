package models

import "time"

// Pay rate types resolved by the earnings calculator.
const (
	PayRatePercentage = "percentage"
	PayRateFixed      = "fixed"
	PayRateHourly     = "hourly"
)

// Rate sources, recorded for auditability.
const (
	RateSourceBookingOverride    = "booking_override"
	RateSourceProviderDefault    = "provider_default"
	RateSourceCommissionDefault  = "commission_default"
	RateSourceNotesRegexFallback = "notes_regex_fallback"
)

const (
	EarningsStatusPending = "pending"
	EarningsStatusPaid    = "paid"
)

// Earnings is the payable amount resolved for one completed booking.
type Earnings struct {
	ID               string    `bson:"id" json:"id"`
	BusinessID       string    `bson:"business_id" json:"business_id"`
	BookingID        string    `bson:"booking_id" json:"booking_id"`
	ProviderID       string    `bson:"provider_id" json:"provider_id"`
	GrossAmount      float64   `bson:"gross_amount" json:"gross_amount"`
	CommissionAmount float64   `bson:"commission_amount" json:"commission_amount"`
	NetAmount        float64   `bson:"net_amount" json:"net_amount"`
	PayRateType      string    `bson:"pay_rate_type" json:"pay_rate_type"` // percentage | fixed | hourly
	RateSource       string    `bson:"rate_source" json:"rate_source"`     // Which precedence step resolved the rate
	Status           string    `bson:"status" json:"status"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}
