package scheduling

import (
	"context"
	"errors"
	"fmt"

	"servify/database/repository"
	"servify/models"
	"servify/services/notification"
	"servify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScheduleBooking is the entry point for a new or re-routed booking. The
// tenant's scheduling config decides between auto-assignment, an invitation,
// or leaving the booking unassigned.
func (s *DefaultSchedulingService) ScheduleBooking(ctx context.Context, businessID, bookingID string, opts ScheduleOptions) (*ScheduleResult, error) {
	booking, err := s.BookingRepo.GetByID(businessID, bookingID)
	if err != nil {
		return nil, newSchedulingError(CodeBookingNotFound, "booking not found", err)
	}
	if opts.ScheduledDate != "" {
		booking.ScheduledDate = opts.ScheduledDate
	}
	if opts.ServiceID != "" {
		booking.ServiceID = opts.ServiceID
	}

	// An explicit provider choice at intake is honored unconditionally.
	if booking.ProviderID != "" || opts.ProviderID != "" {
		providerID := booking.ProviderID
		if providerID == "" {
			providerID = opts.ProviderID
		}
		return &ScheduleResult{Outcome: OutcomeProviderChosen, ProviderID: providerID}, nil
	}

	cfg, err := s.SettingsRepo.GetSchedulingConfig(businessID)
	if err != nil {
		return nil, newSchedulingError(CodeAssignmentWriteFailure, "failed to load scheduling config", err)
	}

	// Manual mode: the admin assigns by hand. Terminal for this booking.
	if cfg.ProviderAssignmentMode == models.AssignmentModeManual {
		return &ScheduleResult{Outcome: OutcomeUnassigned, Reason: "tenant uses manual assignment"}, nil
	}

	switch cfg.SchedulingType {
	case models.SchedulingAcceptOrDecline:
		return s.invite(ctx, booking)
	case models.SchedulingAcceptsSameDayOnly:
		if booking.ScheduledDate == s.now().Format(dateLayout) {
			return s.invite(ctx, booking)
		}
		return s.autoAssign(ctx, booking, cfg)
	default: // accepted_automatically
		return s.autoAssign(ctx, booking, cfg)
	}
}

// invite creates the first link of the booking's invitation chain, aimed at
// the top-priority active provider, falling back to the full roster.
func (s *DefaultSchedulingService) invite(ctx context.Context, booking *models.Booking) (*ScheduleResult, error) {
	roster, err := s.ProviderRepo.ListActive(booking.BusinessID)
	if err != nil {
		return nil, newSchedulingError(CodeInvitationWriteFailure, "failed to load provider roster", err)
	}
	candidate := topByPriority(roster)
	if candidate == nil {
		roster, err = s.ProviderRepo.ListAll(booking.BusinessID)
		if err != nil {
			return nil, newSchedulingError(CodeInvitationWriteFailure, "failed to load provider roster", err)
		}
		candidate = topByPriority(roster)
	}
	if candidate == nil {
		s.reportNoProviders(ctx, booking)
		return nil, newSchedulingError(CodeNoProvidersAvailable, "tenant has no providers to invite", nil)
	}

	invitation := &models.Invitation{
		ID:         uuid.New().String(),
		BusinessID: booking.BusinessID,
		BookingID:  booking.ID,
		ProviderID: candidate.ID,
		SortOrder:  0,
		Status:     models.InvitationStatusPending,
		CreatedAt:  s.now().UTC(),
		UpdatedAt:  s.now().UTC(),
	}
	if err := s.InvitationRepo.Create(invitation); err != nil {
		// Reported for manual handling rather than silently retried.
		s.notifyAdmin(ctx, booking.BusinessID, models.AdminNotifyAssignManually, notification.AdminAlert{
			Title:   "Invitation failed",
			Message: "The invitation for booking " + booking.ID + " could not be created; assign manually.",
			Link:    "/bookings/" + booking.ID,
		})
		return nil, newSchedulingError(CodeInvitationWriteFailure, "failed to write invitation", err)
	}

	utils.GetLogger().Info("invitation created",
		zap.String("bookingId", booking.ID),
		zap.String("businessId", booking.BusinessID),
		zap.String("providerId", candidate.ID),
	)
	s.notifyAdmin(ctx, booking.BusinessID, models.AdminNotifyInvitationSent, notification.AdminAlert{
		Title:   "Invitation sent",
		Message: "Booking " + booking.ID + " was offered to " + candidate.Name + ".",
		Link:    "/bookings/" + booking.ID,
	})

	return &ScheduleResult{
		Outcome:      OutcomeInvited,
		ProviderID:   candidate.ID,
		InvitationID: invitation.ID,
	}, nil
}

// PreviewEligibility evaluates the active roster without committing anything.
func (s *DefaultSchedulingService) PreviewEligibility(businessID string, req EligibilityRequest) ([]EligibilityProvider, error) {
	cfg, err := s.SettingsRepo.GetSchedulingConfig(businessID)
	if err != nil {
		return nil, newSchedulingError(CodeAssignmentWriteFailure, "failed to load scheduling config", err)
	}
	roster, err := s.ProviderRepo.ListActive(businessID)
	if err != nil {
		return nil, newSchedulingError(CodeAssignmentWriteFailure, "failed to load provider roster", err)
	}
	evaluated := EvaluateProviders(roster, req, cfg.MaxMinutesPerProviderPerBooking)
	return RankEligible(evaluated), nil
}

// IsSlotAvailable answers the intake surface's "can one more booking go here"
// question: the tenant's day/week/month ceilings first, then the reserve-slot
// limits for the requested time.
func (s *DefaultSchedulingService) IsSlotAvailable(businessID, date, timeOfDay string) (bool, error) {
	cfg, err := s.SettingsRepo.GetSchedulingConfig(businessID)
	if err != nil {
		return false, fmt.Errorf("failed to load scheduling config: %w", err)
	}
	within, err := s.Gate.WithinBookingLimits(businessID, date, cfg)
	if err != nil {
		return false, err
	}
	if !within {
		return false, nil
	}
	return s.Gate.IsTimeSlotAvailableForBooking(businessID, date, timeOfDay)
}

// DeclineInvitation records a decline. Advancing the chain to the next
// candidate is an extension point, not current behaviour.
func (s *DefaultSchedulingService) DeclineInvitation(businessID, invitationID string) error {
	return s.InvitationRepo.UpdateStatus(businessID, invitationID, models.InvitationStatusDeclined)
}

// GetBookingWithAssignment returns a booking and its active assignment.
func (s *DefaultSchedulingService) GetBookingWithAssignment(businessID, bookingID string) (*models.Booking, *models.Assignment, error) {
	booking, err := s.BookingRepo.GetByID(businessID, bookingID)
	if err != nil {
		return nil, nil, newSchedulingError(CodeBookingNotFound, "booking not found", err)
	}
	if booking.ProviderID == "" {
		return booking, nil, nil
	}
	assignment, err := s.AssignmentRepo.GetActiveByBooking(businessID, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			// A claimed booking without an assignment row is still reportable.
			return booking, nil, nil
		}
		return nil, nil, newSchedulingError(CodeAssignmentWriteFailure, "failed to load assignment", err)
	}
	return booking, assignment, nil
}
