package models

import "time"

const (
	AssignmentTypeAuto   = "auto"
	AssignmentTypeManual = "manual"

	AssignmentStatusActive   = "active"
	AssignmentStatusInactive = "inactive"
)

// Assignment links a booking to exactly one provider. At most one active
// assignment may exist per booking; the repository enforces this with a
// partial unique index.
type Assignment struct {
	ID             string    `bson:"id" json:"id"`
	BusinessID     string    `bson:"business_id" json:"business_id"`
	BookingID      string    `bson:"booking_id" json:"booking_id"`
	ProviderID     string    `bson:"provider_id" json:"provider_id"`
	AssignmentType string    `bson:"assignment_type" json:"assignment_type"` // auto | manual
	Score          float64   `bson:"score" json:"score"`
	Status         string    `bson:"status" json:"status"` // active | inactive
	Reason         string    `bson:"reason,omitempty" json:"reason,omitempty"` // e.g. fallback explanation
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
