package scheduling

import (
	"context"
	"time"

	"servify/database/repository"
	"servify/models"
	"servify/services/notification"
)

// Scheduling outcomes reported to the caller.
const (
	OutcomeAssigned       = "assigned"
	OutcomeInvited        = "invited"
	OutcomeUnassigned     = "unassigned"
	OutcomeProviderChosen = "provider_chosen"
)

// ScheduleOptions carries the optional intake parameters of a schedule call.
type ScheduleOptions struct {
	ProviderID    string `json:"providerId,omitempty"`    // Customer's explicit provider choice
	ScheduledDate string `json:"scheduledDate,omitempty"` // Overrides the booking's stored date
	ServiceID     string `json:"serviceId,omitempty"`
}

// ScheduleResult describes what the router decided for a booking.
type ScheduleResult struct {
	Outcome      string `json:"outcome"`
	ProviderID   string `json:"providerId,omitempty"`
	AssignmentID string `json:"assignmentId,omitempty"`
	InvitationID string `json:"invitationId,omitempty"`
	Fallback     bool   `json:"fallback,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// SchedulingService is the engine's inbound contract for booking assignment.
type SchedulingService interface {
	// ScheduleBooking routes a booking to auto-assignment, an invitation or
	// no action, per the tenant's scheduling config.
	ScheduleBooking(ctx context.Context, businessID, bookingID string, opts ScheduleOptions) (*ScheduleResult, error)

	// PreviewEligibility evaluates the active roster against a hypothetical
	// booking without committing anything. Used by the admin surface to
	// explain ranking.
	PreviewEligibility(businessID string, req EligibilityRequest) ([]EligibilityProvider, error)

	// IsSlotAvailable checks the tenant's booking ceilings and reserve-slot
	// limits for a date and time.
	IsSlotAvailable(businessID, date, timeOfDay string) (bool, error)

	// DeclineInvitation marks an invitation declined. Chain advancement to
	// the next provider is not performed here.
	DeclineInvitation(businessID, invitationID string) error

	// GetBookingWithAssignment returns a booking and its active assignment,
	// if any.
	GetBookingWithAssignment(businessID, bookingID string) (*models.Booking, *models.Assignment, error)
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	BookingRepo    repository.BookingRepository
	ProviderRepo   repository.ProviderRepository
	AssignmentRepo repository.AssignmentRepository
	InvitationRepo repository.InvitationRepository
	SettingsRepo   repository.SettingsRepository
	Gate           *CapacityGate
	Notifier       notification.NotificationDispatcher

	// Now overrides the clock, for same-day decisions in tests. Nil = time.Now.
	Now func() time.Time
}
