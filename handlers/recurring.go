package handlers

import (
	"net/http"

	"servify/services/recurring"
	"servify/utils"

	"github.com/gin-gonic/gin"
)

// RecurringHandler exposes recurring-series management over HTTP.
type RecurringHandler struct {
	Svc recurring.RecurringService
}

func NewRecurringHandler(svc recurring.RecurringService) *RecurringHandler {
	return &RecurringHandler{Svc: svc}
}

// CreateSeries persists a series and materializes its initial bookings.
func (h *RecurringHandler) CreateSeries(c *gin.Context) {
	businessID := c.Param("businessID")

	var input recurring.CreateSeriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.CreateSeries(businessID, input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create series", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ExtendSeries tops one series back up to its lookahead window.
func (h *RecurringHandler) ExtendSeries(c *gin.Context) {
	businessID := c.Param("businessID")
	seriesID := c.Param("seriesID")

	created, err := h.Svc.ExtendSeries(businessID, seriesID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to extend series", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// ExtendAllSeries extends every active series of the tenant.
func (h *RecurringHandler) ExtendAllSeries(c *gin.Context) {
	businessID := c.Param("businessID")

	result, err := h.Svc.ExtendAllSeries(businessID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to extend series", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
