// File: servify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servify/config"
	"servify/cron"
	"servify/database"
	"servify/database/repository"
	"servify/handlers"
	"servify/middleware"
	"servify/routes"
	"servify/services/earnings"
	"servify/services/notification"
	"servify/services/recurring"
	"servify/services/scheduling"
	"servify/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	if err := repository.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := repository.NewMongoBookingRepo()
	providerRepo := repository.NewMongoProviderRepo()
	assignmentRepo := repository.NewMongoAssignmentRepo()
	invitationRepo := repository.NewMongoInvitationRepo()
	seriesRepo := repository.NewMongoSeriesRepo()
	settingsRepo := repository.NewMongoSettingsRepo()
	earningsRepo := repository.NewMongoEarningsRepo()
	adminFeedRepo := repository.NewMongoAdminFeedRepo()

	// notification queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	defer asynqClient.Close()
	dispatcher := notification.NewAsynqDispatcher(asynqClient)
	cron.InitNotificationWorker(adminFeedRepo, notification.LogMailer{})

	// services.
	capacityGate := &scheduling.CapacityGate{
		BookingRepo:  bookingRepo,
		SettingsRepo: settingsRepo,
	}
	schedulingService := &scheduling.DefaultSchedulingService{
		BookingRepo:    bookingRepo,
		ProviderRepo:   providerRepo,
		AssignmentRepo: assignmentRepo,
		InvitationRepo: invitationRepo,
		SettingsRepo:   settingsRepo,
		Gate:           capacityGate,
		Notifier:       dispatcher,
	}
	recurringService := &recurring.DefaultRecurringService{
		SeriesRepo:   seriesRepo,
		BookingRepo:  bookingRepo,
		SettingsRepo: settingsRepo,
		Holidays:     capacityGate,
	}
	earningsService := &earnings.DefaultEarningsService{
		BookingRepo:  bookingRepo,
		ProviderRepo: providerRepo,
		EarningsRepo: earningsRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Scheduling:   handlers.NewSchedulingHandler(schedulingService, utils.GetCacheClient()),
		Recurring:    handlers.NewRecurringHandler(recurringService),
		Availability: handlers.NewAvailabilityHandler(schedulingService),
		Earnings:     handlers.NewEarningsHandler(earningsService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
