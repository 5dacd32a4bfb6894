package routes

import (
	"time"

	"servify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the engine's HTTP handlers for route registration.
type HandlerBundle struct {
	Scheduling   *handlers.SchedulingHandler
	Recurring    *handlers.RecurringHandler
	Availability *handlers.AvailabilityHandler
	Earnings     *handlers.EarningsHandler
}

// RegisterRoutes wires every engine endpoint. Authentication lives in the
// upstream gateway; routes here are tenant-scoped by path.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	api := r.Group("/api/businesses/:businessID")
	{
		scheduling := api.Group("/scheduling")
		{
			scheduling.POST("/bookings/:bookingID/schedule", hb.Scheduling.ScheduleBooking)
			scheduling.GET("/bookings/:bookingID", hb.Scheduling.GetBooking)
			scheduling.GET("/preview", hb.Scheduling.PreviewEligibility)
			scheduling.POST("/invitations/:invitationID/decline", hb.Scheduling.DeclineInvitation)
		}

		recurring := api.Group("/recurring")
		{
			recurring.POST("/series", hb.Recurring.CreateSeries)
			recurring.POST("/series/:seriesID/extend", hb.Recurring.ExtendSeries)
			recurring.POST("/extend-all", hb.Recurring.ExtendAllSeries)
		}

		api.GET("/availability/slot", hb.Availability.IsSlotAvailable)
		api.POST("/earnings/bookings/:bookingID/finalize", hb.Earnings.FinalizeBookingEarnings)
	}
}
