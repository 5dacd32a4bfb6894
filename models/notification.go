package models

import "time"

// Admin notification types written to the tenant's feed.
const (
	AdminNotifyBookingAssigned = "booking_assigned"
	AdminNotifyInvitationSent  = "invitation_sent"
	AdminNotifyAssignManually  = "assign_manually"
	AdminNotifyNoProviderFound = "no_provider_found"
)

// AdminNotification is one entry in a tenant's admin feed.
type AdminNotification struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	Type       string    `bson:"type" json:"type"`
	Title      string    `bson:"title" json:"title"`
	Message    string    `bson:"message" json:"message"`
	Link       string    `bson:"link,omitempty" json:"link,omitempty"`
	Read       bool      `bson:"read" json:"read"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// AdminAlertPayload is the queue payload for an admin feed entry.
type AdminAlertPayload struct {
	BusinessID string `json:"businessId"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Link       string `json:"link,omitempty"`
}

// ProviderEmailPayload is the queue payload for a provider booking email.
type ProviderEmailPayload struct {
	BusinessID    string `json:"businessId"`
	ProviderID    string `json:"providerId"`
	ProviderName  string `json:"providerName"`
	ProviderEmail string `json:"providerEmail"`
	BookingID     string `json:"bookingId"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
}

// CustomerEmailPayload is the queue payload for a customer email.
type CustomerEmailPayload struct {
	BusinessID    string `json:"businessId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	BookingID     string `json:"bookingId"`
	ScheduledDate string `json:"scheduledDate"`
}
