package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"servify/models"
	"servify/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Task types consumed by the notification worker in cron/.
const (
	TypeAdminAlert    = "notify:admin"
	TypeProviderEmail = "notify:provider_email"
	TypeCustomerEmail = "notify:customer_email"
)

// AsynqDispatcher enqueues notification tasks on the redis-backed queue so
// sends never block or fail the scheduling decision that triggered them.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

func (d *AsynqDispatcher) CreateAdminNotification(ctx context.Context, businessID, notifType string, alert AdminAlert) error {
	payload := models.AdminAlertPayload{
		BusinessID: businessID,
		Type:       notifType,
		Title:      alert.Title,
		Message:    alert.Message,
		Link:       alert.Link,
	}
	return d.enqueue(ctx, TypeAdminAlert, payload)
}

func (d *AsynqDispatcher) SendProviderBookingAssigned(ctx context.Context, provider models.Provider, booking models.Booking) error {
	if !provider.Preferences.EmailNotifications || provider.Email == "" {
		return nil
	}
	payload := models.ProviderEmailPayload{
		BusinessID:    booking.BusinessID,
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		ProviderEmail: provider.Email,
		BookingID:     booking.ID,
		ScheduledDate: booking.ScheduledDate,
		ScheduledTime: booking.ScheduledTime,
	}
	return d.enqueue(ctx, TypeProviderEmail, payload)
}

func (d *AsynqDispatcher) SendNeverFoundProviderEmail(ctx context.Context, booking models.Booking) error {
	if booking.CustomerEmail == "" {
		return nil
	}
	payload := models.CustomerEmailPayload{
		BusinessID:    booking.BusinessID,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		BookingID:     booking.ID,
		ScheduledDate: booking.ScheduledDate,
	}
	return d.enqueue(ctx, TypeCustomerEmail, payload)
}

func (d *AsynqDispatcher) enqueue(ctx context.Context, taskType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}
	if _, err := d.Client.EnqueueContext(ctx, asynq.NewTask(taskType, data)); err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", taskType, err)
	}
	utils.GetLogger().Debug("notification task enqueued", zap.String("type", taskType))
	return nil
}
