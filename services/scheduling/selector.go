package scheduling

import (
	"context"
	"sort"
	"time"

	"servify/models"
	"servify/services/notification"
	"servify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RankEligible orders evaluated providers for selection: invitation priority
// descending, then score descending, then earliest created_at. The ordering is
// total, so selection is deterministic.
func RankEligible(candidates []EligibilityProvider) []EligibilityProvider {
	ranked := make([]EligibilityProvider, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Provider.InvitationPriority != b.Provider.InvitationPriority {
			return a.Provider.InvitationPriority > b.Provider.InvitationPriority
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Provider.CreatedAt.Before(b.Provider.CreatedAt)
	})
	return ranked
}

// topByPriority picks the provider with the highest invitation priority,
// breaking ties on earliest created_at. Used for fallbacks and invitations.
func topByPriority(roster []models.Provider) *models.Provider {
	if len(roster) == 0 {
		return nil
	}
	best := roster[0]
	for _, p := range roster[1:] {
		if p.InvitationPriority > best.InvitationPriority ||
			(p.InvitationPriority == best.InvitationPriority && p.CreatedAt.Before(best.CreatedAt)) {
			best = p
		}
	}
	return &best
}

// autoAssign runs the eligibility evaluation and commits a single assignment.
func (s *DefaultSchedulingService) autoAssign(ctx context.Context, booking *models.Booking, cfg *models.SchedulingConfig) (*ScheduleResult, error) {
	logger := utils.GetLogger()

	roster, err := s.ProviderRepo.ListActive(booking.BusinessID)
	if err != nil {
		return nil, newSchedulingError(CodeAssignmentWriteFailure, "failed to load provider roster", err)
	}
	if len(roster) == 0 {
		s.reportNoProviders(ctx, booking)
		return nil, newSchedulingError(CodeNoProvidersAvailable, "tenant has no active providers", nil)
	}

	req := EligibilityRequest{
		ServiceID:       booking.ServiceID,
		DurationMinutes: booking.DurationMinutes,
		ScheduledDate:   booking.ScheduledDate,
	}
	evaluated := EvaluateProviders(roster, req, cfg.MaxMinutesPerProviderPerBooking)

	var eligible []EligibilityProvider
	for _, c := range evaluated {
		if c.Eligible {
			eligible = append(eligible, c)
		}
	}

	var chosen EligibilityProvider
	fallback := false
	reason := ""
	if len(eligible) > 0 {
		chosen = RankEligible(eligible)[0]
	} else {
		// Fallback: highest-priority active provider regardless of eligibility.
		fallback = true
		reason = "no eligible providers; fell back to highest invitation priority"
		top := topByPriority(roster)
		for _, c := range evaluated {
			if c.Provider.ID == top.ID {
				chosen = c
				break
			}
		}
		logger.Warn("assignment fallback",
			zap.String("bookingId", booking.ID),
			zap.String("providerId", chosen.Provider.ID),
			zap.Strings("reasons", chosen.Reasons),
		)
	}

	claimed, err := s.BookingRepo.ClaimForAssignment(booking.BusinessID, booking.ID, chosen.Provider.ID)
	if err != nil {
		return nil, newSchedulingError(CodeAssignmentWriteFailure, "failed to claim booking", err)
	}
	if !claimed {
		return nil, newSchedulingError(CodeAssignmentWriteFailure, "booking already assigned", nil)
	}

	assignment := &models.Assignment{
		ID:             uuid.New().String(),
		BusinessID:     booking.BusinessID,
		BookingID:      booking.ID,
		ProviderID:     chosen.Provider.ID,
		AssignmentType: models.AssignmentTypeAuto,
		Score:          chosen.Score,
		Status:         models.AssignmentStatusActive,
		Reason:         reason,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.AssignmentRepo.Create(assignment); err != nil {
		s.notifyAdmin(ctx, booking.BusinessID, models.AdminNotifyAssignManually, notification.AdminAlert{
			Title:   "Assignment record failed",
			Message: "Booking " + booking.ID + " was claimed but the assignment record could not be written; assign manually.",
			Link:    "/bookings/" + booking.ID,
		})
		return nil, newSchedulingError(CodeAssignmentWriteFailure, "failed to write assignment", err)
	}

	logger.Info("booking assigned",
		zap.String("bookingId", booking.ID),
		zap.String("businessId", booking.BusinessID),
		zap.String("providerId", chosen.Provider.ID),
		zap.Float64("score", chosen.Score),
		zap.Bool("fallback", fallback),
	)

	s.notifyAdmin(ctx, booking.BusinessID, models.AdminNotifyBookingAssigned, notification.AdminAlert{
		Title:   "Booking assigned",
		Message: "Booking " + booking.ID + " was assigned to " + chosen.Provider.Name + ".",
		Link:    "/bookings/" + booking.ID,
	})
	if err := s.Notifier.SendProviderBookingAssigned(ctx, chosen.Provider, *booking); err != nil {
		logger.Warn("provider email dispatch failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}

	return &ScheduleResult{
		Outcome:      OutcomeAssigned,
		ProviderID:   chosen.Provider.ID,
		AssignmentID: assignment.ID,
		Fallback:     fallback,
		Reason:       reason,
	}, nil
}

// reportNoProviders surfaces the no-provider condition to the admin feed and
// the customer. Failures here are logged only.
func (s *DefaultSchedulingService) reportNoProviders(ctx context.Context, booking *models.Booking) {
	s.notifyAdmin(ctx, booking.BusinessID, models.AdminNotifyNoProviderFound, notification.AdminAlert{
		Title:   "No provider found",
		Message: "No provider could be found for booking " + booking.ID + ".",
		Link:    "/bookings/" + booking.ID,
	})
	if err := s.Notifier.SendNeverFoundProviderEmail(ctx, *booking); err != nil {
		utils.GetLogger().Warn("customer email dispatch failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

// notifyAdmin posts to the admin feed, logging (never propagating) failures.
func (s *DefaultSchedulingService) notifyAdmin(ctx context.Context, businessID, notifType string, alert notification.AdminAlert) {
	if err := s.Notifier.CreateAdminNotification(ctx, businessID, notifType, alert); err != nil {
		utils.GetLogger().Warn("admin notification dispatch failed",
			zap.String("businessId", businessID),
			zap.String("type", notifType),
			zap.Error(err),
		)
	}
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
