package handlers

import (
	"net/http"

	"servify/services/scheduling"
	"servify/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the reserve-slot availability check.
type AvailabilityHandler struct {
	Svc scheduling.SchedulingService
}

func NewAvailabilityHandler(svc scheduling.SchedulingService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// IsSlotAvailable checks whether a date/time slot still has room.
func (h *AvailabilityHandler) IsSlotAvailable(c *gin.Context) {
	businessID := c.Param("businessID")
	date := c.Query("date")
	timeOfDay := c.Query("time")
	if date == "" || timeOfDay == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "date and time are required")
		return
	}

	available, err := h.Svc.IsSlotAvailable(businessID, date, timeOfDay)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "availability check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}
