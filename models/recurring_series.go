package models

import "time"

const (
	SeriesStatusActive = "active"
	SeriesStatusPaused = "paused"
	SeriesStatusEnded  = "ended"
)

// RecurringSeries is the template a recurring booking is stamped from, plus
// the frequency and rolling-lookahead settings. The series owns every booking
// carrying its ID.
type RecurringSeries struct {
	ID               string    `bson:"id" json:"id"`
	BusinessID       string    `bson:"business_id" json:"business_id"`
	ServiceID        string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	CustomerName     string    `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerEmail    string    `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	Address          string    `bson:"address,omitempty" json:"address,omitempty"`
	ScheduledTime    string    `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"`
	DurationMinutes  int       `bson:"duration_minutes" json:"duration_minutes"`
	TotalPrice       float64   `bson:"total_price" json:"total_price"`
	ProviderWage     float64   `bson:"provider_wage,omitempty" json:"provider_wage,omitempty"`
	ProviderWageType string    `bson:"provider_wage_type,omitempty" json:"provider_wage_type,omitempty"`
	ProviderID       string    `bson:"provider_id,omitempty" json:"provider_id,omitempty"` // Provider binding when SameProvider is set
	Frequency        string    `bson:"frequency" json:"frequency"`                         // Free-form name, e.g. "bi-weekly"
	FrequencyRepeats int       `bson:"frequency_repeats" json:"frequency_repeats"`
	StartDate        string    `bson:"start_date" json:"start_date"`                   // "YYYY-MM-DD"
	EndDate          string    `bson:"end_date,omitempty" json:"end_date,omitempty"`   // Empty = open ended
	OccurrencesAhead int       `bson:"occurrences_ahead" json:"occurrences_ahead"`     // Rolling lookahead window N
	SameProvider     bool      `bson:"same_provider" json:"same_provider"`
	Status           string    `bson:"status" json:"status"` // active | paused | ended
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}
