package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"servify/config"
	"servify/database/repository"
	"servify/models"
	"servify/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async notification worker in background.
// Sends are fire-and-forget relative to the scheduling decisions that queued
// them; a failed delivery is retried here, never surfaced to the caller.
func InitNotificationWorker(feedRepo repository.AdminFeedRepository, mailer notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeAdminAlert, handleAdminAlert(feedRepo))
	mux.HandleFunc(notification.TypeProviderEmail, handleProviderEmail(mailer))
	mux.HandleFunc(notification.TypeCustomerEmail, handleCustomerEmail(mailer))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleAdminAlert(feedRepo repository.AdminFeedRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AdminAlertPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyWorker] Invalid admin alert payload: %v", err)
			return err
		}
		entry := &models.AdminNotification{
			ID:         uuid.New().String(),
			BusinessID: p.BusinessID,
			Type:       p.Type,
			Title:      p.Title,
			Message:    p.Message,
			Link:       p.Link,
			CreatedAt:  time.Now().UTC(),
		}
		if err := feedRepo.Create(entry); err != nil {
			log.Printf("[NotifyWorker] Failed to write admin notification: %v", err)
			return err
		}
		return nil
	}
}

func handleProviderEmail(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ProviderEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyWorker] Invalid provider email payload: %v", err)
			return err
		}
		if err := mailer.SendProviderBookingAssigned(ctx, p); err != nil {
			log.Printf("[NotifyWorker] Failed to send provider email: %v", err)
			return err
		}
		return nil
	}
}

func handleCustomerEmail(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.CustomerEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyWorker] Invalid customer email payload: %v", err)
			return err
		}
		if err := mailer.SendNoProviderFound(ctx, p); err != nil {
			log.Printf("[NotifyWorker] Failed to send customer email: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotifyWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
