package handlers

import (
	"errors"
	"net/http"

	"holistia/services/availability"
	"holistia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the weekly slot grid.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetWeekGridHandler returns the 7-day slot grid anchored at the "week"
// query date. With aligned=true the days are padded onto a shared time axis
// using not_offered slots.
func (h *AvailabilityHandler) GetWeekGridHandler(c *gin.Context) {
	logger := utils.GetLogger()

	professionalID := c.Param("id")
	if professionalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing professional ID in path"})
		return
	}
	anchorDate := c.Query("week")
	if anchorDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing week query parameter"})
		return
	}

	grid, err := h.Service.ComputeWeekGrid(c.Request.Context(), professionalID, anchorDate)
	if err != nil {
		var unknown *availability.UnknownAvailabilityError
		switch {
		case errors.Is(err, availability.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week date", "message": err.Error()})
		case errors.As(err, &unknown):
			// Not the same as "no hours configured": the caller should
			// offer a retry, not an empty state.
			logger.Error("Failed to load availability", zap.String("professionalID", professionalID), zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "Availability currently unknown", "Could not load this professional's availability. Please retry.")
		default:
			logger.Error("Failed to compute week grid", zap.String("professionalID", professionalID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability", "message": err.Error()})
		}
		return
	}

	days := grid.Days
	if c.Query("aligned") == "true" {
		days = availability.AlignGrids(days)
	}

	c.JSON(http.StatusOK, gin.H{
		"professional_id": grid.ProfessionalID,
		"anchor_date":     grid.AnchorDate,
		"configured":      grid.Configured,
		"days":            days,
	})
}
