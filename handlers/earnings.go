package handlers

import (
	"net/http"

	"servify/services/earnings"
	"servify/utils"

	"github.com/gin-gonic/gin"
)

// EarningsHandler exposes the earnings finalization step, invoked by the
// platform's completion flow once a booking is marked completed.
type EarningsHandler struct {
	Svc earnings.EarningsService
}

func NewEarningsHandler(svc earnings.EarningsService) *EarningsHandler {
	return &EarningsHandler{Svc: svc}
}

// FinalizeBookingEarnings resolves and persists the payable amount.
func (h *EarningsHandler) FinalizeBookingEarnings(c *gin.Context) {
	businessID := c.Param("businessID")
	bookingID := c.Param("bookingID")

	record, err := h.Svc.FinalizeBookingEarnings(businessID, bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to finalize earnings", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}
