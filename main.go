// File: holistia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holistia/config"
	"holistia/cron"
	"holistia/database"
	appointmentRepo "holistia/database/repository/appointment"
	blockRepo "holistia/database/repository/block"
	workingHoursRepo "holistia/database/repository/workinghours"
	"holistia/handlers"
	"holistia/middleware"
	"holistia/routes"
	"holistia/services/availability"
	"holistia/services/schedule"
	"holistia/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	hoursRepo := workingHoursRepo.NewMongoWorkingHoursRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	blocksRepo := blockRepo.NewMongoBlockRepo()

	// services.
	gridCache := availability.NewRedisGridCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.GridCacheTTL)*time.Second,
	)
	availabilityService := &availability.DefaultAvailabilityService{
		HoursRepo:        hoursRepo,
		AppointmentsRepo: apptRepo,
		BlocksRepo:       blocksRepo,
		Cache:            gridCache,
	}

	invalidator := cron.NewAsynqGridInvalidator()
	scheduleService := &schedule.DefaultScheduleService{
		HoursRepo:   hoursRepo,
		BlocksRepo:  blocksRepo,
		Invalidator: invalidator,
	}

	// Background worker purging cached grids after schedule edits.
	cron.InitGridInvalidationWorker(gridCache)

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Schedule:     handlers.NewScheduleHandler(scheduleService),
	}
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
