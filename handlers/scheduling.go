package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"servify/config"
	"servify/services/scheduling"
	"servify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SchedulingHandler exposes the booking scheduling engine over HTTP.
type SchedulingHandler struct {
	Svc   scheduling.SchedulingService
	Cache *redis.Client
}

func NewSchedulingHandler(svc scheduling.SchedulingService, cache *redis.Client) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc, Cache: cache}
}

// ScheduleBooking routes one booking through the assignment engine.
func (h *SchedulingHandler) ScheduleBooking(c *gin.Context) {
	businessID := c.Param("businessID")
	bookingID := c.Param("bookingID")

	var opts scheduling.ScheduleOptions
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	result, err := h.Svc.ScheduleBooking(c.Request.Context(), businessID, bookingID, opts)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PreviewEligibility evaluates the roster for a hypothetical booking. Results
// are cached briefly; the admin UI polls this while composing a booking.
func (h *SchedulingHandler) PreviewEligibility(c *gin.Context) {
	businessID := c.Param("businessID")

	var req scheduling.EligibilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	cacheKey := fmt.Sprintf("preview:%s:%s:%d:%s", businessID, req.ServiceID, req.DurationMinutes, req.ScheduledDate)
	ctx := c.Request.Context()
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	providers, err := h.Svc.PreviewEligibility(businessID, req)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}

	body, err := json.Marshal(gin.H{"providers": providers})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to encode preview", err.Error())
		return
	}
	if h.Cache != nil {
		ttl := time.Duration(config.AppConfig.PreviewCacheTTL) * time.Second
		if err := h.Cache.Set(ctx, cacheKey, body, ttl).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache preview: " + err.Error())
		}
	}
	c.Data(http.StatusOK, "application/json", body)
}

// GetBooking returns a booking with its active assignment, if any.
func (h *SchedulingHandler) GetBooking(c *gin.Context) {
	businessID := c.Param("businessID")
	bookingID := c.Param("bookingID")

	booking, assignment, err := h.Svc.GetBookingWithAssignment(businessID, bookingID)
	if err != nil {
		h.writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking, "assignment": assignment})
}

// DeclineInvitation marks an invitation declined.
func (h *SchedulingHandler) DeclineInvitation(c *gin.Context) {
	businessID := c.Param("businessID")
	invitationID := c.Param("invitationID")

	if err := h.Svc.DeclineInvitation(businessID, invitationID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to decline invitation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "declined"})
}

func (h *SchedulingHandler) writeSchedulingError(c *gin.Context, err error) {
	switch scheduling.ErrorCode(err) {
	case scheduling.CodeBookingNotFound:
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case scheduling.CodeNoProvidersAvailable:
		utils.JSONError(c, http.StatusConflict, "no providers available", err.Error())
	case scheduling.CodeAssignmentWriteFailure, scheduling.CodeInvitationWriteFailure:
		utils.JSONError(c, http.StatusInternalServerError, "scheduling write failed", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "scheduling failed", err.Error())
	}
}
