package models

import "time"

const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"
)

// Invitation is one link in a booking's ordered invitation chain. Only the
// first link (sort order 0) is created by the engine today; chain advancement
// on decline is an extension point, so sort order is persisted for it.
type Invitation struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	SortOrder  int       `bson:"sort_order" json:"sort_order"`
	Status     string    `bson:"status" json:"status"` // pending | accepted | declined
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
