package handlers

import (
	"errors"
	"net/http"
	"time"

	"holistia/models"
	"holistia/services/schedule"
	"holistia/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ScheduleHandler serves the working-hours and availability-block editing
// boundary.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) GetWorkingHoursHandler(c *gin.Context) {
	professionalID := c.Param("id")

	hours, err := h.Service.GetWorkingHours(c.Request.Context(), professionalID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch working hours", zap.String("professionalID", professionalID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch working hours", "message": err.Error()})
		return
	}
	if hours == nil {
		c.JSON(http.StatusOK, gin.H{"configured": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": true, "working_hours": hours})
}

func (h *ScheduleHandler) SetWorkingHoursHandler(c *gin.Context) {
	logger := utils.GetLogger()
	professionalID := c.Param("id")

	var req models.WorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid working hours payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	hours, err := h.Service.SetWorkingHours(c.Request.Context(), professionalID, req)
	if err != nil {
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid working hours", "message": vErr.Error()})
			return
		}
		logger.Error("Failed to save working hours", zap.String("professionalID", professionalID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save working hours", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Working hours saved",
		"working_hours": hours,
	})
}

func (h *ScheduleHandler) ListBlocksHandler(c *gin.Context) {
	professionalID := c.Param("id")

	startDate := c.Query("from")
	endDate := c.Query("to")
	if startDate == "" || endDate == "" {
		// Default to the next 30 days.
		now := time.Now()
		startDate = now.Format("2006-01-02")
		endDate = now.AddDate(0, 0, 30).Format("2006-01-02")
	}

	blocks, err := h.Service.ListBlocks(c.Request.Context(), professionalID, startDate, endDate)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch blocks", zap.String("professionalID", professionalID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blocks", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

func (h *ScheduleHandler) CreateBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	professionalID := c.Param("id")

	var req models.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid block payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	block, err := h.Service.CreateBlock(c.Request.Context(), professionalID, req)
	if err != nil {
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid block", "message": vErr.Error()})
			return
		}
		logger.Error("Failed to create block", zap.String("professionalID", professionalID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create block", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Availability block created",
		"block":   block,
	})
}

func (h *ScheduleHandler) DeleteBlockHandler(c *gin.Context) {
	professionalID := c.Param("id")
	blockID := c.Param("blockID")
	if blockID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing block ID in path"})
		return
	}

	if err := h.Service.DeleteBlock(c.Request.Context(), professionalID, blockID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete block", zap.String("professionalID", professionalID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete block", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability block deleted"})
}
