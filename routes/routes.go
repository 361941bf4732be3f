package routes

import (
	"net/http"
	"time"

	"holistia/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public slot-grid endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.GET("/:id/availability", hb.Availability.GetWeekGridHandler)
	}
}

// RegisterScheduleRoutes registers working-hours and block management
// endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.GET("/:id/working-hours", hb.Schedule.GetWorkingHoursHandler)
		api.PUT("/:id/working-hours", hb.Schedule.SetWorkingHoursHandler)
		api.GET("/:id/blocks", hb.Schedule.ListBlocksHandler)
		api.POST("/:id/blocks", hb.Schedule.CreateBlockHandler)
		api.DELETE("/:id/blocks/:blockID", hb.Schedule.DeleteBlockHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Holistia"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
