package notification

import (
	"context"

	"servify/models"
	"servify/utils"

	"go.uber.org/zap"
)

// LogMailer is the default Mailer. Message composition belongs to the
// platform's mail service; until one is wired in, deliveries are logged.
type LogMailer struct{}

func (LogMailer) SendProviderBookingAssigned(_ context.Context, p models.ProviderEmailPayload) error {
	utils.GetLogger().Info("provider booking email",
		zap.String("providerId", p.ProviderID),
		zap.String("email", p.ProviderEmail),
		zap.String("bookingId", p.BookingID),
		zap.String("date", p.ScheduledDate),
	)
	return nil
}

func (LogMailer) SendNoProviderFound(_ context.Context, p models.CustomerEmailPayload) error {
	utils.GetLogger().Info("no-provider-found email",
		zap.String("email", p.CustomerEmail),
		zap.String("bookingId", p.BookingID),
		zap.String("date", p.ScheduledDate),
	)
	return nil
}
