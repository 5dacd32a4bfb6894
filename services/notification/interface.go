package notification

import (
	"context"

	"servify/models"
)

// AdminAlert is the admin-feed entry content the engine emits.
type AdminAlert struct {
	Title   string
	Message string
	Link    string
}

// NotificationDispatcher defines the side-effect calls the scheduling engine
// makes. Implementations are fire-and-forget relative to the caller: a send
// failure is logged and never rolls back a scheduling decision.
type NotificationDispatcher interface {
	// CreateAdminNotification posts an entry to the tenant's admin feed.
	CreateAdminNotification(ctx context.Context, businessID, notifType string, alert AdminAlert) error

	// SendProviderBookingAssigned emails a provider about a new assignment.
	// No-op when the provider opted out of emails or has no address.
	SendProviderBookingAssigned(ctx context.Context, provider models.Provider, booking models.Booking) error

	// SendNeverFoundProviderEmail tells the customer no provider could be
	// found for their booking.
	SendNeverFoundProviderEmail(ctx context.Context, booking models.Booking) error
}

// Mailer delivers the emails the worker drains from the queue. Content
// formatting and templating live outside this engine.
type Mailer interface {
	SendProviderBookingAssigned(ctx context.Context, p models.ProviderEmailPayload) error
	SendNoProviderFound(ctx context.Context, p models.CustomerEmailPayload) error
}
